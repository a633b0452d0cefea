package shipment

import "errors"

var (
	ErrInvalidNoteID          = errors.New("invalid delivery note id")
	ErrNoteNotFound           = errors.New("delivery note not found")
	ErrNoteNotSubmitted       = errors.New("delivery note must be submitted")
	ErrShipmentExists         = errors.New("shipment already exists")
	ErrMissingShippingAddress = errors.New("shipping address required")
	ErrCountryNotFound        = errors.New("country code not found")
)
