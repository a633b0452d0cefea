package gls

import "errors"

var (
	ErrMissingAddress    = errors.New("shipping address required")
	ErrCarrierRequest    = errors.New("carrier request failed")
	ErrMalformedResponse = errors.New("carrier response missing parcel data")
)
