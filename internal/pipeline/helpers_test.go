package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cablestats/internal/config"
	"cablestats/internal/model"

	"github.com/stretchr/testify/require"
)

// cable is a detail document fixture; a nil length is written as null
type cable struct {
	ID        string
	Length    *string
	IsPlanned bool
}

func strPtr(s string) *string { return &s }

// writeDataset lays out a manifest and one detail file per cable under a
// fresh data dir and returns the matching config.
func writeDataset(t *testing.T, cables ...cable) config.Config {
	t.Helper()
	cfg := config.ForDataDir(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.ManifestPath), 0755))

	refs := make([]map[string]any, 0, len(cables))
	for _, c := range cables {
		refs = append(refs, map[string]any{"id": c.ID, "name": c.ID + " cable"})
		writeJSON(t, cfg.DetailPath(c.ID), map[string]any{
			"id":         c.ID,
			"name":       c.ID + " cable",
			"length":     c.Length,
			"is_planned": c.IsPlanned,
		})
	}
	writeJSON(t, cfg.ManifestPath, refs)
	return cfg
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// recordingTracker keeps everything a run reports
type recordingTracker struct {
	statuses []string
	warnings []string
	result   *model.AggregateResult
	records  int
	failed   error
}

func (r *recordingTracker) UpdateStatus(status string) error {
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *recordingTracker) RecordWarning(cableID, unit string) error {
	r.warnings = append(r.warnings, cableID+":"+unit)
	return nil
}

func (r *recordingTracker) Complete(result model.AggregateResult, recordCount int) error {
	r.result = &result
	r.records = recordCount
	return nil
}

func (r *recordingTracker) Fail(err error) error {
	r.failed = err
	return nil
}
