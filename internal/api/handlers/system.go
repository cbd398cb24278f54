package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Fixture/internal/api/models"
	"github.com/Project-Sylos/Fixture/sdk"
)

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	BaseHandler
	fx *sdk.Fixture
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(fx *sdk.Fixture) *SystemHandler {
	return &SystemHandler{
		fx: fx,
	}
}

// GetConfig handles the get config endpoint
func (h *SystemHandler) GetConfig(w http.ResponseWriter, req *http.Request) {
	config := h.fx.GetConfig()
	h.sendSuccess(w, "Config retrieved successfully", config)
}

// GetRunCount handles the ledger size endpoint
func (h *SystemHandler) GetRunCount(w http.ResponseWriter, req *http.Request) {
	count, err := h.fx.CountRuns()
	if err != nil {
		h.sendFailure(w, "Failed to count runs", err)
		return
	}

	h.sendSuccess(w, "Run count retrieved successfully", models.RunCountResponse{Count: count})
}
