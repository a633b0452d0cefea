package tracking

import "errors"

var (
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrUnsupportedCarrier    = errors.New("carrier not supported for tracking")
)
