package tracking

import (
	"context"
	"errors"
	"fmt"

	"connector/internal/entities"
	"connector/pkg/logger"
)

const (
	glsCarrierName = "GLS"

	// statusUnknown is what the host gets for an on-demand lookup: the
	// carrier exposes no queryable status yet.
	statusUnknown = "unknown"

	openShipmentsBatchLimit = 100
)

type Tracking struct {
	log        logger.Logger
	repository Repository
	glsTracker CarrierTracker
	txManager  TxManager
}

func New(
	log logger.Logger,
	repository Repository,
	glsTracker CarrierTracker,
	txManager TxManager,
) *Tracking {
	serviceLog := log.With(
		logger.NewField("service", "tracking"),
	)

	return &Tracking{
		log:        serviceLog,
		repository: repository,
		glsTracker: glsTracker,
		txManager:  txManager,
	}
}

// GetTrackingStatus is the host-facing on-demand lookup. It reports
// "unknown" until a carrier exposes a queryable tracking API.
func (t *Tracking) GetTrackingStatus(ctx context.Context, trackingNumber string) (*entities.TrackingStatus, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	return &entities.TrackingStatus{
		TrackingNumber: trackingNumber,
		Status:         statusUnknown,
	}, nil
}

// UpdateStatuses sweeps open shipments and refreshes their stored shipping
// status from the carrier. Per-shipment failures are logged and skipped;
// the accumulated updates are committed once at the end of the sweep.
// Returns the number of updated notes.
func (t *Tracking) UpdateStatuses(ctx context.Context) (int64, error) {
	shipments, err := t.repository.ListOpenShipments(ctx, openShipmentsBatchLimit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("tracking sweep timed out: %w", err)
		}
		return 0, fmt.Errorf("list open shipments: %w", err)
	}

	if len(shipments) == 0 {
		return 0, nil
	}

	var updated int64
	err = t.txManager.Do(ctx, func(ctx context.Context) error {
		for _, shipment := range shipments {
			if t.refreshStatus(ctx, shipment) {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("commit tracking updates: %w", err)
	}

	return updated, nil
}

// refreshStatus reports whether the stored status changed.
func (t *Tracking) refreshStatus(ctx context.Context, shipment entities.OpenShipment) bool {
	shipmentLog := t.log.With(
		logger.NewField("note", shipment.NoteID),
		logger.NewField("tracking_number", shipment.TrackingNumber),
	)

	tracker, err := t.trackerFor(shipment.Carrier)
	if err != nil {
		shipmentLog.With(
			logger.NewField("carrier", shipment.Carrier),
		).Info("skipping shipment of unsupported carrier")
		return false
	}

	status, err := tracker.TrackingStatus(ctx, shipment.TrackingNumber)
	if err != nil {
		shipmentLog.With(
			logger.NewField("error", err),
		).Error("carrier status lookup failed")
		return false
	}

	// ShippingStatusNone means the carrier had no update for this shipment.
	if status == entities.ShippingStatusNone || status == shipment.Status {
		return false
	}

	if err := t.repository.UpdateShippingStatus(ctx, shipment.NoteID, status); err != nil {
		shipmentLog.With(
			logger.NewField("error", err),
		).Error("update shipping status failed")
		return false
	}

	shipmentLog.With(
		logger.NewField("status", status),
	).Info("shipping status updated")
	return true
}

func (t *Tracking) trackerFor(carrier string) (CarrierTracker, error) {
	switch carrier {
	case glsCarrierName:
		return t.glsTracker, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCarrier, carrier)
	}
}
