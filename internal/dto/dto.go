package dto

type ShipmentCreateRequest struct {
	DeliveryNote string `json:"delivery_note"`
}

type ShipmentCreateResponse struct {
	TrackingNumber string  `json:"tracking_number"`
	LabelURL       *string `json:"label_url,omitempty"`
	SyncPending    bool    `json:"sync_pending"`
}

type BulkShipmentsRequest struct {
	DeliveryNotes []string `json:"delivery_notes"`
}

type BulkShipmentSuccess struct {
	Order          string `json:"order"`
	TrackingNumber string `json:"tracking_number"`
}

type BulkShipmentError struct {
	Order string `json:"order"`
	Error string `json:"error"`
}

type BulkShipmentsResponse struct {
	Success []BulkShipmentSuccess `json:"success"`
	Errors  []BulkShipmentError   `json:"errors"`
}

type TrackingStatusResponse struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
