package entities

import "time"

type DocStatus string

const (
	DocStatusDraft     DocStatus = "draft"
	DocStatusSubmitted DocStatus = "submitted"
	DocStatusCancelled DocStatus = "cancelled"
)

func (s DocStatus) String() string {
	return string(s)
}

type ShippingStatus string

const (
	ShippingStatusNone           ShippingStatus = ""
	ShippingStatusLabelCreated   ShippingStatus = "Label Created"
	ShippingStatusPickedUp       ShippingStatus = "Picked Up"
	ShippingStatusInTransit      ShippingStatus = "In Transit"
	ShippingStatusOutForDelivery ShippingStatus = "Out for Delivery"
	ShippingStatusDelivered      ShippingStatus = "Delivered"
	ShippingStatusReturned       ShippingStatus = "Returned"
	ShippingStatusException      ShippingStatus = "Exception"
)

func (s ShippingStatus) String() string {
	return string(s)
}

type DeliveryNote struct {
	ID                 string
	DocStatus          DocStatus
	CustomerName       string
	ShippingAddressID  string
	ShopifyOrderID     string
	ShopifyOrderNumber string
	ShippingCarrier    string
	TrackingNumber     string
	LabelURL           string
	ShippingStatus     ShippingStatus
	TotalWeight        float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DeliveryNoteModify struct {
	ID              *string
	ShippingCarrier *string
	TrackingNumber  *string
	LabelURL        *string
	ShippingStatus  *ShippingStatus
}

type Address struct {
	ID         string
	Title      string
	Line1      string
	Line2      string
	PostalCode string
	City       string
	Country    string
	Phone      string
	Email      string
}
