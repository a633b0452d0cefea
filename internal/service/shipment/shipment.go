package shipment

import (
	"context"
	"errors"
	"fmt"

	"connector/internal/entities"
	"connector/pkg/logger"
)

const (
	carrierName        = "GLS"
	defaultCountryCode = "IT"
)

type Shipment struct {
	log         logger.Logger
	repository  Repository
	carrier     CarrierGateway
	fulfillment FulfillmentGateway
}

func New(
	log logger.Logger,
	repository Repository,
	carrier CarrierGateway,
	fulfillment FulfillmentGateway,
) *Shipment {
	serviceLog := log.With(
		logger.NewField("service", "shipment"),
	)

	return &Shipment{
		log:         serviceLog,
		repository:  repository,
		carrier:     carrier,
		fulfillment: fulfillment,
	}
}

// CreateShipment registers a carrier shipment for a submitted delivery note
// and persists the resulting tracking fields. The fulfillment sync that
// follows is best effort: its failure is reported via SyncPending, never as
// an error.
func (s *Shipment) CreateShipment(ctx context.Context, noteID string) (*entities.ShipmentCreated, error) {
	if !isValidNoteID(noteID) {
		return nil, ErrInvalidNoteID
	}

	note, err := s.repository.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("get delivery note: %w", err)
	}

	if note.DocStatus != entities.DocStatusSubmitted {
		return nil, fmt.Errorf("%w: status %s", ErrNoteNotSubmitted, note.DocStatus)
	}
	if note.TrackingNumber != "" {
		return nil, fmt.Errorf("%w: %s", ErrShipmentExists, note.TrackingNumber)
	}
	if note.ShippingAddressID == "" {
		return nil, ErrMissingShippingAddress
	}

	address, err := s.repository.GetAddress(ctx, note.ShippingAddressID)
	if err != nil {
		return nil, fmt.Errorf("get shipping address: %w", err)
	}

	countryCode, err := s.repository.GetCountryCode(ctx, address.Country)
	if err != nil {
		if !errors.Is(err, ErrCountryNotFound) {
			return nil, fmt.Errorf("resolve country code: %w", err)
		}
		countryCode = defaultCountryCode
	}
	// A countries row may carry an empty code; treat it as unresolved.
	if countryCode == "" {
		countryCode = defaultCountryCode
	}

	request, err := s.carrier.BuildRequest(note, address, countryCode)
	if err != nil {
		return nil, fmt.Errorf("build shipment request: %w", err)
	}

	result, err := s.carrier.CreateShipment(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("create carrier shipment: %w", err)
	}

	carrier := carrierName
	status := entities.ShippingStatusLabelCreated
	noteModify := entities.DeliveryNoteModify{
		ID:              &note.ID,
		ShippingCarrier: &carrier,
		TrackingNumber:  &result.TrackingNumber,
		LabelURL:        &result.LabelURL,
		ShippingStatus:  &status,
	}

	// Single conditional update, rejected when another request already
	// attached a tracking number. This is the serialization point against
	// double shipment creation.
	if err := s.repository.SetShipmentResult(ctx, noteModify); err != nil {
		return nil, fmt.Errorf("persist shipment result: %w", err)
	}

	created := &entities.ShipmentCreated{
		NoteID:         note.ID,
		TrackingNumber: result.TrackingNumber,
		LabelURL:       result.LabelURL,
	}

	if note.ShopifyOrderID != "" {
		created.SyncPending = s.syncFulfillment(ctx, note, result.TrackingNumber)
	}

	s.log.With(
		logger.NewField("note", note.ID),
		logger.NewField("tracking_number", result.TrackingNumber),
	).Info("shipment created")

	return created, nil
}

// BulkCreateShipments runs CreateShipment per id and partitions the outcome.
// One failing note never blocks its siblings.
func (s *Shipment) BulkCreateShipments(ctx context.Context, noteIDs []string) *entities.BulkShipmentResult {
	result := &entities.BulkShipmentResult{
		Success: make([]entities.BulkShipmentSuccess, 0, len(noteIDs)),
		Errors:  make([]entities.BulkShipmentFailure, 0),
	}

	for _, noteID := range noteIDs {
		created, err := s.CreateShipment(ctx, noteID)
		if err != nil {
			result.Errors = append(result.Errors, entities.BulkShipmentFailure{
				NoteID: noteID,
				Error:  err.Error(),
			})
			continue
		}

		result.Success = append(result.Success, entities.BulkShipmentSuccess{
			NoteID:         noteID,
			TrackingNumber: created.TrackingNumber,
		})
	}

	return result
}

// syncFulfillment reports true when the sync failed and a manual update may
// be needed.
func (s *Shipment) syncFulfillment(ctx context.Context, note *entities.DeliveryNote, trackingNumber string) bool {
	tracking := entities.TrackingInfo{
		Number:  trackingNumber,
		Company: carrierName,
		URL:     s.carrier.TrackingURL(trackingNumber),
	}

	syncResult := s.fulfillment.CreateFulfillment(ctx, note.ShopifyOrderID, tracking)

	syncLog := s.log.With(
		logger.NewField("note", note.ID),
		logger.NewField("shopify_order", note.ShopifyOrderID),
	)

	switch syncResult.State {
	case entities.SyncFailed:
		syncLog.With(
			logger.NewField("error", syncResult.Err),
		).Warn("fulfillment sync pending, manual update may be needed")
		return true
	case entities.SyncSkipped:
		syncLog.With(
			logger.NewField("reason", syncResult.Reason),
		).Info("fulfillment sync skipped")
	case entities.SyncSynced:
		syncLog.Info("fulfillment synced")
	}

	return false
}
