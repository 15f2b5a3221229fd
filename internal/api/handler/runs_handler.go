package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cablestats/internal/model"
	"cablestats/internal/store"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger sets the logger handlers report response failures to
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// LatestStatsResponse is the body of GET /stats/latest
type LatestStatsResponse struct {
	RunID string                `json:"run_id"`
	Stats model.AggregateResult `json:"stats"`
}

// ListRuns retrieves all recorded runs
// @Summary List runs
// @Description Get all recorded cable stats runs, newest first
// @Tags runs
// @Produce json
// @Success 200 {array} model.RunSummary "List of runs"
// @Failure 500 {string} string "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, runs)
}

// GetRun retrieves a specific run
// @Summary Get run
// @Description Retrieve a run with its aggregate stats and unit warnings
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.RunSummary "Run details"
// @Failure 400 {string} string "Invalid run ID"
// @Failure 404 {string} string "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	// Extract run ID from URL path
	prefix := "/api/v1/runs/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	runID := strings.Trim(r.URL.Path[len(prefix):], "/")
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(runID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch run", http.StatusInternalServerError)
		return
	}

	writeJSON(w, run)
}

// GetLatestStats retrieves the stats of the latest completed run
// @Summary Latest stats
// @Description Retrieve the aggregate stats of the most recent completed run
// @Tags stats
// @Produce json
// @Success 200 {object} LatestStatsResponse "Latest stats"
// @Failure 404 {string} string "No completed run"
// @Router /stats/latest [get]
func GetLatestStats(w http.ResponseWriter, r *http.Request) {
	runID, stats, err := store.LatestStats()
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No completed run", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, LatestStatsResponse{RunID: runID, Stats: stats})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("failed to write response", zap.Error(err))
	}
}
