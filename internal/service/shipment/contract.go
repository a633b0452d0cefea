//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"connector/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, noteID string) (*entities.DeliveryNote, error)
	GetAddress(ctx context.Context, addressID string) (*entities.Address, error)
	GetCountryCode(ctx context.Context, country string) (string, error)
	SetShipmentResult(ctx context.Context, noteModify entities.DeliveryNoteModify) error
}

type CarrierGateway interface {
	BuildRequest(note *entities.DeliveryNote, address *entities.Address, countryCode string) (*entities.ShipmentRequest, error)
	CreateShipment(ctx context.Context, req *entities.ShipmentRequest) (*entities.ShipmentResult, error)
	TrackingURL(trackingNumber string) string
}

type FulfillmentGateway interface {
	CreateFulfillment(ctx context.Context, shopifyOrderID string, tracking entities.TrackingInfo) entities.SyncResult
}
