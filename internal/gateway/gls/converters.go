package gls

import "connector/internal/entities"

type shipmentRequestWire struct {
	ShipperID  string        `json:"shipperId"`
	References []string      `json:"references"`
	Addresses  addressesWire `json:"addresses"`
	Parcels    []parcelWire  `json:"parcels"`
}

type addressesWire struct {
	Delivery deliveryAddressWire `json:"delivery"`
}

type deliveryAddressWire struct {
	Name1       string `json:"name1"`
	Street1     string `json:"street1"`
	Street2     string `json:"street2,omitempty"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type parcelWire struct {
	Weight  float64 `json:"weight"`
	Comment string  `json:"comment,omitempty"`
}

type shipmentResponseWire struct {
	Parcels []parcelResultWire `json:"parcels"`
}

type parcelResultWire struct {
	TrackingNumber string `json:"trackingNumber"`
	LabelURL       string `json:"labelUrl"`
}

func toWire(req *entities.ShipmentRequest) *shipmentRequestWire {
	if req == nil {
		return nil
	}

	parcels := make([]parcelWire, 0, len(req.Parcels))
	for _, p := range req.Parcels {
		parcels = append(parcels, parcelWire{
			Weight:  p.Weight,
			Comment: p.Comment,
		})
	}

	return &shipmentRequestWire{
		ShipperID:  req.ShipperID,
		References: req.References,
		Addresses: addressesWire{
			Delivery: deliveryAddressWire{
				Name1:       req.Delivery.Name1,
				Street1:     req.Delivery.Street1,
				Street2:     req.Delivery.Street2,
				ZipCode:     req.Delivery.ZipCode,
				City:        req.Delivery.City,
				CountryCode: req.Delivery.CountryCode,
				Phone:       req.Delivery.Phone,
				Email:       req.Delivery.Email,
			},
		},
		Parcels: parcels,
	}
}

func toResultDomain(resp *shipmentResponseWire) *entities.ShipmentResult {
	if resp == nil || len(resp.Parcels) == 0 {
		return nil
	}

	first := resp.Parcels[0]
	return &entities.ShipmentResult{
		TrackingNumber: first.TrackingNumber,
		LabelURL:       first.LabelURL,
	}
}
