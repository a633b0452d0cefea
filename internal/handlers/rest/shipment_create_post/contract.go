//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_create_post_test
package shipment_create_post

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
	CreateShipment(ctx context.Context, noteID string) (*entities.ShipmentCreated, error)
}
