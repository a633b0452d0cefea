package entities

type ShipmentRequest struct {
	ShipperID  string
	References []string
	Delivery   ShipmentAddress
	Parcels    []Parcel
}

type ShipmentAddress struct {
	Name1       string
	Street1     string
	Street2     string
	ZipCode     string
	City        string
	CountryCode string
	Phone       string
	Email       string
}

type Parcel struct {
	Weight  float64
	Comment string
}

// ShipmentResult is what the carrier returns for a created shipment.
type ShipmentResult struct {
	TrackingNumber string
	LabelURL       string
}

// ShipmentCreated is the workflow outcome handed back to the caller.
type ShipmentCreated struct {
	NoteID         string
	TrackingNumber string
	LabelURL       string
	SyncPending    bool
}

type BulkShipmentSuccess struct {
	NoteID         string
	TrackingNumber string
}

type BulkShipmentFailure struct {
	NoteID string
	Error  string
}

type BulkShipmentResult struct {
	Success []BulkShipmentSuccess
	Errors  []BulkShipmentFailure
}

// OpenShipment is the poller's projection of a delivery note still in transit.
type OpenShipment struct {
	NoteID         string
	TrackingNumber string
	Carrier        string
	Status         ShippingStatus
}

type TrackingStatus struct {
	TrackingNumber string
	Status         string
}

// TrackingInfo is the tracking block attached to an e-commerce fulfillment.
type TrackingInfo struct {
	Number  string
	Company string
	URL     string
}
