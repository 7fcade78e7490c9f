package handler

import (
	"net/http"

	"taste-heaven/internal/model"
	"taste-heaven/internal/service"

	"github.com/rs/zerolog"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	service service.InquiryService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.InquiryService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.InquiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.SubmitInquiry(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.APIResponse{Success: true, Message: service.MsgInquiryAck})
}
