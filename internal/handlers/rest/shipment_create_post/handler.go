package shipment_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"connector/internal/dto"
	"connector/internal/gateway/gls"
	"connector/internal/service/shipment"
	"connector/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var shipmentCreateDTO dto.ShipmentCreateRequest
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	noteID := shipmentCreateDTO.DeliveryNote

	created, err := h.service.CreateShipment(r.Context(), noteID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidNoteID),
			errors.Is(err, shipment.ErrNoteNotSubmitted),
			errors.Is(err, shipment.ErrMissingShippingAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrNoteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrShipmentExists):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, gls.ErrCarrierRequest),
			errors.Is(err, gls.ErrMalformedResponse):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentCreateResponse{
		TrackingNumber: created.TrackingNumber,
		SyncPending:    created.SyncPending,
	}
	if created.LabelURL != "" {
		response.LabelURL = &created.LabelURL
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
