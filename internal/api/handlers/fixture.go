package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/Project-Sylos/Fixture/internal/api/models"
	"github.com/Project-Sylos/Fixture/sdk"
	"github.com/go-chi/chi/v5"
)

// FixtureHandler handles fixture generation and run ledger endpoints
type FixtureHandler struct {
	BaseHandler
	fx *sdk.Fixture
}

// NewFixtureHandler creates a new fixture handler
func NewFixtureHandler(fx *sdk.Fixture) *FixtureHandler {
	return &FixtureHandler{
		fx: fx,
	}
}

// errUnsafeOutputPath rejects output_path values that leave the API output directory
var errUnsafeOutputPath = errors.New("output_path must be a relative path inside the output directory")

// resolveOutputPath places a client supplied path under dir. Absolute paths
// and paths that climb out with ".." are rejected.
func resolveOutputPath(dir, path string) (string, error) {
	if !filepath.IsLocal(path) {
		return "", fmt.Errorf("%w: %q", errUnsafeOutputPath, path)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output dir: %w", err)
	}
	return filepath.Join(absDir, path), nil
}

// GenerateFixture handles POST /fixtures. The body must be JSON; an empty
// body uses the configured defaults.
func (h *FixtureHandler) GenerateFixture(w http.ResponseWriter, req *http.Request) {
	// Browsers send text/plain and form bodies cross-origin without a preflight
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		h.sendError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var body models.GenerateFixtureRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if body.Count != nil && *body.Count < 0 {
		h.sendError(w, http.StatusBadRequest, fmt.Sprintf("count must be non-negative, got %d", *body.Count))
		return
	}

	outputPath := ""
	if body.OutputPath != "" {
		resolved, err := resolveOutputPath(h.fx.GetConfig().API.OutputDir, body.OutputPath)
		if err != nil {
			h.sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		outputPath = resolved
	}

	run, err := h.fx.Generate(req.Context(), &sdk.GenerateRequest{
		Count:      body.Count,
		OutputPath: outputPath,
	})
	if err != nil {
		h.sendFailure(w, "Failed to generate fixture", err)
		return
	}

	h.sendCreated(w, "Fixture generated successfully", run)
}

// ListFixtures handles GET /fixtures with an optional ?limit=N
func (h *FixtureHandler) ListFixtures(w http.ResponseWriter, req *http.Request) {
	limit := 0
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit: %q", raw))
			return
		}
		limit = parsed
	}

	runs, err := h.fx.ListRuns(limit)
	if err != nil {
		h.sendFailure(w, "Failed to list runs", err)
		return
	}

	h.sendSuccess(w, "Runs retrieved successfully", runs)
}

// GetFixture handles GET /fixtures/{id}
func (h *FixtureHandler) GetFixture(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	run, err := h.fx.GetRun(id)
	if err != nil {
		h.sendFailure(w, "Failed to get run", err)
		return
	}

	h.sendSuccess(w, "Run retrieved successfully", run)
}

// GetFixtureData handles GET /fixtures/{id}/data by streaming the file as text
func (h *FixtureHandler) GetFixtureData(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	rc, run, err := h.fx.OpenRunData(id)
	if err != nil {
		h.sendFailure(w, "Failed to open fixture data", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Fixture-Checksum", run.Checksum)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		// Headers are already sent
		log.Printf("Error streaming fixture %s: %v", id, err)
	}
}

// DeleteFixture handles DELETE /fixtures/{id}
func (h *FixtureHandler) DeleteFixture(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	if err := h.fx.DeleteRun(id); err != nil {
		h.sendFailure(w, "Failed to delete run", err)
		return
	}

	h.sendSuccess(w, "Run deleted successfully", nil)
}
