package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Project-Sylos/Fixture/internal/types"
	"github.com/Project-Sylos/Fixture/sdk"
)

// BaseHandler provides common functionality for all API handlers
type BaseHandler struct{}

// sendJSON sends a JSON response with the given status code and data
func (h *BaseHandler) sendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response with the given status code and message
func (h *BaseHandler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, types.APIResponse{
		Success: false,
		Message: message,
	})
}

// sendFailure reports err with a status code derived from its kind
func (h *BaseHandler) sendFailure(w http.ResponseWriter, prefix string, err error) {
	h.sendError(w, statusForError(err), prefix+": "+err.Error())
}

// sendSuccess sends a success response with the given data
func (h *BaseHandler) sendSuccess(w http.ResponseWriter, message string, data any) {
	h.sendJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// sendCreated sends a 201 response with the given data
func (h *BaseHandler) sendCreated(w http.ResponseWriter, message string, data any) {
	h.sendJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, sdk.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, sdk.ErrInvalidCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
