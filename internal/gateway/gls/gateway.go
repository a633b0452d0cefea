package gls

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"connector/internal/entities"
	"connector/internal/pkg/config"
	"connector/pkg/logger"
)

const (
	CarrierName = "GLS"

	sandboxAPIURL      = "https://api.gls-group.eu/public/v1/sandbox"
	trackingURLFormat  = "https://gls-group.com/IT/it/servizi-online/tracking?match=%s"
	demoTrackingPrefix = "DEMO"

	requestTimeout  = 30 * time.Second
	minParcelWeight = 1.0

	maxErrorBodyBytes = 512
)

type Gateway struct {
	log    logger.Logger
	cfg    config.GLS
	client httpDoer
}

func New(log logger.Logger, cfg config.GLS) *Gateway {
	gatewayLog := log.With(
		logger.NewField("gateway", "gls"),
	)

	return &Gateway{
		log: gatewayLog,
		cfg: cfg,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// BuildRequest assembles the carrier payload from a delivery note and its
// shipping address. The parcel weight is the note's item weight sum floored
// at the carrier minimum of 1.0.
func (g *Gateway) BuildRequest(note *entities.DeliveryNote, address *entities.Address, countryCode string) (*entities.ShipmentRequest, error) {
	if address == nil {
		return nil, ErrMissingAddress
	}

	weight := note.TotalWeight
	if weight < minParcelWeight {
		weight = minParcelWeight
	}

	name1 := address.Title
	if name1 == "" {
		name1 = note.CustomerName
	}

	comment := note.ShopifyOrderNumber
	if comment == "" {
		comment = note.ID
	}

	return &entities.ShipmentRequest{
		ShipperID:  g.cfg.CustomerID,
		References: []string{note.ID},
		Delivery: entities.ShipmentAddress{
			Name1:       name1,
			Street1:     address.Line1,
			Street2:     address.Line2,
			ZipCode:     address.PostalCode,
			City:        address.City,
			CountryCode: countryCode,
			Phone:       address.Phone,
			Email:       address.Email,
		},
		Parcels: []entities.Parcel{
			{
				Weight:  weight,
				Comment: comment,
			},
		},
	}, nil
}

// CreateShipment registers a shipment with GLS and returns the tracking
// number and label URL of the first parcel. Without a configured contact id
// it produces a synthetic demo tracking number and performs no network I/O.
func (g *Gateway) CreateShipment(ctx context.Context, req *entities.ShipmentRequest) (*entities.ShipmentResult, error) {
	if g.cfg.ContactID == "" {
		result := &entities.ShipmentResult{
			TrackingNumber: demoTrackingNumber(),
		}

		g.log.With(
			logger.NewField("tracking_number", result.TrackingNumber),
		).Warn("GLS not configured, returning demo shipment")
		return result, nil
	}

	body, err := json.Marshal(toWire(req))
	if err != nil {
		return nil, fmt.Errorf("marshal shipment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL()+"/shipments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build shipment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(g.cfg.ContactID, g.cfg.Password)

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.observe("CreateShipment", "transport_error", start)
		g.log.With(
			logger.NewField("error", err),
		).Error("GLS shipment request failed")
		return nil, fmt.Errorf("%w: %v", ErrCarrierRequest, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.log.With(
				logger.NewField("error", closeErr),
			).Error("close GLS response body")
		}
	}()

	g.observe("CreateShipment", strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		g.log.With(
			logger.NewField("status", resp.StatusCode),
			logger.NewField("body", string(snippet)),
		).Error("GLS shipment request rejected")
		return nil, fmt.Errorf("%w: status %d: %s", ErrCarrierRequest, resp.StatusCode, snippet)
	}

	var wire shipmentResponseWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformedResponse, err)
	}

	result := toResultDomain(&wire)
	if result == nil || result.TrackingNumber == "" {
		g.log.Error("GLS response carried no parcel tracking number")
		return nil, ErrMalformedResponse
	}

	return result, nil
}

// TrackingStatus queries the carrier for the current shipment status.
// TODO: wire the GLS partner tracking API once partner credentials exist;
// the public tracking page offers no machine-readable status. Until then
// every lookup reports no update.
func (g *Gateway) TrackingStatus(ctx context.Context, trackingNumber string) (entities.ShippingStatus, error) {
	return entities.ShippingStatusNone, nil
}

// TrackingURL returns the customer-facing tracking page for a shipment.
func (g *Gateway) TrackingURL(trackingNumber string) string {
	return fmt.Sprintf(trackingURLFormat, url.QueryEscape(trackingNumber))
}

func (g *Gateway) baseURL() string {
	if g.cfg.Sandbox {
		return sandboxAPIURL
	}
	return g.cfg.APIURL
}

func (g *Gateway) observe(method, code string, start time.Time) {
	CarrierRequestDuration.WithLabelValues(CarrierName, method, code).Observe(time.Since(start).Seconds())
	CarrierRequestsTotal.WithLabelValues(CarrierName, method, code).Inc()
}

// demoTrackingNumber fabricates a recognizable tracking number for
// environments without live carrier access. Collisions across demo records
// are tolerated, matching the relaxed demo-mode contract.
func demoTrackingNumber() string {
	return fmt.Sprintf("%s%09d", demoTrackingPrefix, rand.IntN(900_000_000)+100_000_000)
}
