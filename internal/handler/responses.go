package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gradius/bitplanner/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error and sends the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Game data is temporarily unavailable. Please try again later."

	// Catalog messages
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgRecipeNotFoundError = "Recipe not found"

	// Planner messages
	ErrMsgInvalidAmountError   = "Amount must be a positive number"
	ErrMsgInvalidMaxDepthError = "Max depth must be a positive number"

	// Project messages
	ErrMsgProjectNotFoundError     = "Project not found"
	ErrMsgProjectItemNotFoundError = "That item is not in the project"
	ErrMsgProjectReadOnlyError     = "This link is read-only. Use the project's private link to make changes"
	ErrMsgInvalidProjectUUIDError  = "Invalid project id"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidMaxDepth):
		return http.StatusBadRequest, ErrMsgInvalidMaxDepthError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, ErrMsgProjectNotFoundError
	case errors.Is(err, domain.ErrProjectItemNotFound):
		return http.StatusNotFound, ErrMsgProjectItemNotFoundError
	case errors.Is(err, domain.ErrProjectReadOnly):
		return http.StatusForbidden, ErrMsgProjectReadOnlyError
	case errors.Is(err, domain.ErrInvalidProjectUUID):
		return http.StatusBadRequest, ErrMsgInvalidProjectUUIDError
	case errors.Is(err, domain.ErrInvalidRecipe):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
