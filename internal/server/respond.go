package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"campushelp/pkg/types"
)

// envelope is the one response shape every endpoint uses: {message, data} on
// writes, {data} on reads, {message, error} on failures.
type envelope struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Service) respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{Message: message, Data: data}); err != nil {
		s.logger.WithError(err).Error("failed to write response body")
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := envelope{Message: message}
	if err != nil {
		body.Error = err.Error()
	}

	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		s.logger.WithError(encErr).Error("failed to write error response body")
	}
}

// handleError maps the error taxonomy onto HTTP statuses. Anything it does
// not recognize is a store failure and surfaces as a logged 500.
func (s *Service) handleError(w http.ResponseWriter, err error, logMsg string) {
	var validationErr types.ValidationError
	if errors.As(err, &validationErr) {
		s.respondError(w, http.StatusBadRequest, validationErr.Error(), nil)
		return
	}

	var uploadErr types.UploadError
	if errors.As(err, &uploadErr) {
		s.respondError(w, http.StatusBadRequest, uploadErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, types.ErrHelpRequestNotFound),
		errors.Is(err, types.ErrLostFoundNotFound),
		errors.Is(err, types.ErrMarketingHelpNotFound):
		s.respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, types.ErrPaymentStatusFinal):
		s.respondError(w, http.StatusConflict, err.Error(), nil)
	default:
		s.logger.WithError(err).Error(logMsg)
		s.respondError(w, http.StatusInternalServerError, logMsg, err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || contentType != "application/json" {
		return types.ValidationError("expected an application/json body")
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return types.ValidationError(fmt.Sprintf("invalid json body: %v", err))
	}

	return nil
}
