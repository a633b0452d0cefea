package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"connector/internal/entities"
	"connector/internal/pkg/config"
	"connector/pkg/logger"
)

const (
	fulfillmentOrderStatusOpen = "open"

	accessTokenHeader = "X-Shopify-Access-Token"

	requestTimeout    = 30 * time.Second
	maxErrorBodyBytes = 512
)

type Gateway struct {
	log    logger.Logger
	cfg    config.Shopify
	client httpDoer
}

func New(log logger.Logger, cfg config.Shopify) *Gateway {
	gatewayLog := log.With(
		logger.NewField("gateway", "shopify"),
	)

	return &Gateway{
		log: gatewayLog,
		cfg: cfg,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CreateFulfillment posts a fulfillment with tracking info against the first
// open fulfillment order of a Shopify order. Every outcome is reported
// through SyncResult; the method never returns an error to the caller.
func (g *Gateway) CreateFulfillment(ctx context.Context, shopifyOrderID string, tracking entities.TrackingInfo) entities.SyncResult {
	if !g.cfg.Enabled {
		return entities.SkippedResult("shopify integration disabled")
	}

	fulfillmentOrders, err := g.fulfillmentOrders(ctx, shopifyOrderID)
	if err != nil {
		return entities.FailedResult(err)
	}
	if len(fulfillmentOrders) == 0 {
		return entities.SkippedResult("no fulfillment orders for order")
	}

	var open *fulfillmentOrderWire
	for i := range fulfillmentOrders {
		if fulfillmentOrders[i].Status == fulfillmentOrderStatusOpen {
			open = &fulfillmentOrders[i]
			break
		}
	}
	if open == nil {
		return entities.SkippedResult("no open fulfillment order")
	}

	if err := g.postFulfillment(ctx, open.ID, tracking); err != nil {
		return entities.FailedResult(err)
	}

	return entities.SyncedResult()
}

func (g *Gateway) fulfillmentOrders(ctx context.Context, shopifyOrderID string) ([]fulfillmentOrderWire, error) {
	reqURL := fmt.Sprintf("%s/orders/%s/fulfillment_orders.json", g.cfg.BaseURL, shopifyOrderID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build fulfillment orders request: %w", err)
	}
	httpReq.Header.Set(accessTokenHeader, g.cfg.AccessToken)

	var wire fulfillmentOrdersResponseWire
	if err := g.execute(httpReq, "GetFulfillmentOrders", &wire); err != nil {
		return nil, fmt.Errorf("fetch fulfillment orders: %w", err)
	}

	return wire.FulfillmentOrders, nil
}

func (g *Gateway) postFulfillment(ctx context.Context, fulfillmentOrderID int64, tracking entities.TrackingInfo) error {
	body, err := json.Marshal(fulfillmentRequestWire{
		Fulfillment: fulfillmentWire{
			LineItemsByFulfillmentOrder: []lineItemsByFulfillmentOrderWire{
				{FulfillmentOrderID: fulfillmentOrderID},
			},
			TrackingInfo: trackingInfoWire{
				Number:  tracking.Number,
				Company: tracking.Company,
				URL:     tracking.URL,
			},
			NotifyCustomer: true,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal fulfillment: %w", err)
	}

	reqURL := g.cfg.BaseURL + "/fulfillments.json"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build fulfillment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(accessTokenHeader, g.cfg.AccessToken)

	if err := g.execute(httpReq, "CreateFulfillment", nil); err != nil {
		return fmt.Errorf("create fulfillment: %w", err)
	}

	return nil
}

func (g *Gateway) execute(req *http.Request, method string, out interface{}) error {
	start := time.Now()

	resp, err := g.client.Do(req)
	if err != nil {
		g.observe(method, "transport_error", start)
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.log.With(
				logger.NewField("error", closeErr),
			).Error("close shopify response body")
		}
	}()

	g.observe(method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("shopify status %d: %s", resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode shopify response: %w", err)
	}
	return nil
}

func (g *Gateway) observe(method, code string, start time.Time) {
	FulfillmentRequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())
	FulfillmentRequestsTotal.WithLabelValues(method, code).Inc()
}
