package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
)

// MsgServerError is the only message clients see for store failures.
const MsgServerError = "Server error"

// maxBodyBytes caps request bodies; the largest payload is an order with a handful of items.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes the {success:false, message} envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.APIResponse{Success: false, Message: message})
}

// writeServiceError maps a service error onto the response. Domain errors are
// client mistakes and answer 400 with their own message; anything else is a
// store failure, logged here and hidden behind MsgServerError.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if de, ok := model.AsDomainError(err); ok {
		logger.Debug().Str("code", de.Code).Msg(de.Message)
		writeError(w, http.StatusBadRequest, de.Message)
		return
	}

	logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("handler error")
	writeError(w, http.StatusInternalServerError, MsgServerError)
}

// decodeJSON reads a JSON body into dst. An empty body decodes as the zero
// value so missing fields are reported by validation, not by the decoder.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return model.ErrInvalidJSON
	}
	return nil
}
