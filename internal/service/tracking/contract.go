//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"connector/internal/entities"
)

type Repository interface {
	ListOpenShipments(ctx context.Context, limit int) ([]entities.OpenShipment, error)
	UpdateShippingStatus(ctx context.Context, noteID string, status entities.ShippingStatus) error
}

type CarrierTracker interface {
	TrackingStatus(ctx context.Context, trackingNumber string) (entities.ShippingStatus, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
