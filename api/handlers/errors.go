// ABOUTME: Error translation from core error types to HTTP responses
// ABOUTME: Maps the service error taxonomy onto status codes and JSON bodies

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"newshub-api/api/dto/responses"
	coreerrors "newshub-api/core/errors"
)

// statusClientClosedRequest is the nginx convention for cancelled requests
const statusClientClosedRequest = 499

// writeJSON serializes the payload with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps a service error onto an HTTP error response
func writeError(w http.ResponseWriter, err error) {
	var serverErr *coreerrors.ServerError

	switch {
	case coreerrors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, responses.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case coreerrors.IsCancelled(err):
		writeJSON(w, statusClientClosedRequest, responses.ErrorResponse{
			Error:   "cancelled",
			Message: err.Error(),
		})
	case coreerrors.IsConnectivity(err):
		writeJSON(w, http.StatusServiceUnavailable, responses.ErrorResponse{
			Error:   "upstream_unreachable",
			Message: err.Error(),
		})
	case errors.As(err, &serverErr):
		status := http.StatusBadGateway
		switch {
		case serverErr.StatusCode >= 500:
			status = http.StatusServiceUnavailable
		case serverErr.StatusCode == http.StatusTooManyRequests:
			status = http.StatusTooManyRequests
		case serverErr.StatusCode >= 400:
			status = http.StatusBadGateway
		}
		writeJSON(w, status, responses.ErrorResponse{
			Error:   "upstream_error",
			Message: err.Error(),
		})
	case coreerrors.IsDecoding(err):
		writeJSON(w, http.StatusBadGateway, responses.ErrorResponse{
			Error:   "decoding_error",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
