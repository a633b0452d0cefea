//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_bulk_post_test
package shipments_bulk_post

import (
	"context"

	"connector/internal/entities"
	"connector/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	BulkCreateShipments(ctx context.Context, noteIDs []string) *entities.BulkShipmentResult
}
