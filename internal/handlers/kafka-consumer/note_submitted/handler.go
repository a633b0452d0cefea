package note_submitted

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"connector/internal/service/shipment"
	"connector/pkg/logger"
)

// submittedEvent is the payload published by the ERP when a delivery note
// is submitted.
type submittedEvent struct {
	DeliveryNote string `json:"delivery_note"`
}

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("note.submitted: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// session closed (rebalance or consumer group shutdown)
			h.log.Info("note.submitted: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. Returns true when
// ConsumeClaim should exit (context cancelled); false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event submittedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("note.submitted handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("note", event.DeliveryNote),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("note.submitted processing")

	created, err := h.shipmentService.CreateShipment(ctx, event.DeliveryNote)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("note.submitted handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipment.ErrShipmentExists):
			// already shipped, a duplicate or replayed event
			msgLog.With(
				logger.NewField("error", err),
			).Warn("note.submitted handler shipment already exists for note")

		case errors.Is(err, shipment.ErrInvalidNoteID),
			errors.Is(err, shipment.ErrNoteNotFound),
			errors.Is(err, shipment.ErrNoteNotSubmitted),
			errors.Is(err, shipment.ErrMissingShippingAddress):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("note.submitted handler rejected note")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("note.submitted handler failed to create shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("tracking_number", created.TrackingNumber),
	).Info("note.submitted: shipment created")

	sess.MarkMessage(message, "")
	return false
}
