package deliverynote

import "time"

type DeliveryNoteDB struct {
	ID                 string
	DocStatus          string
	CustomerName       string
	ShippingAddressID  *string
	ShopifyOrderID     *string
	ShopifyOrderNumber *string
	ShippingCarrier    *string
	TrackingNumber     *string
	LabelURL           *string
	ShippingStatus     *string
	TotalWeight        float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DeliveryNoteModifyDB struct {
	ID              *string
	ShippingCarrier *string
	TrackingNumber  *string
	LabelURL        *string
	ShippingStatus  *string
}

type AddressDB struct {
	ID         string
	Title      *string
	Line1      string
	Line2      *string
	PostalCode string
	City       string
	Country    string
	Phone      *string
	Email      *string
}

type OpenShipmentDB struct {
	NoteID         string
	TrackingNumber string
	Carrier        string
	Status         string
}
