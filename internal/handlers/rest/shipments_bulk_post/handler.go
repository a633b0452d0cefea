package shipments_bulk_post

import (
	"encoding/json"
	"net/http"

	"connector/internal/dto"
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
	var bulkDTO dto.BulkShipmentsRequest
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(bulkDTO.DeliveryNotes) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result := h.service.BulkCreateShipments(r.Context(), bulkDTO.DeliveryNotes)

	response := dto.BulkShipmentsResponse{
		Success: make([]dto.BulkShipmentSuccess, 0, len(result.Success)),
		Errors:  make([]dto.BulkShipmentError, 0, len(result.Errors)),
	}
	for _, success := range result.Success {
		response.Success = append(response.Success, dto.BulkShipmentSuccess{
			Order:          success.NoteID,
			TrackingNumber: success.TrackingNumber,
		})
	}
	for _, failure := range result.Errors {
		response.Errors = append(response.Errors, dto.BulkShipmentError{
			Order: failure.NoteID,
			Error: failure.Error,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
