package store

import (
	"cablestats/internal/model"

	"github.com/google/uuid"
)

// RunTracker records the progress of one pipeline run in the run tables
type RunTracker struct {
	RunID string
}

// NewRunTracker registers a new pending run for manifest
func NewRunTracker(manifest string) (*RunTracker, error) {
	runID := uuid.New().String()
	if err := SaveRun(runID, manifest); err != nil {
		return nil, err
	}
	return &RunTracker{RunID: runID}, nil
}

func (t *RunTracker) UpdateStatus(status string) error {
	return UpdateRunStatus(t.RunID, status)
}

func (t *RunTracker) RecordWarning(cableID, unit string) error {
	return SaveWarning(t.RunID, cableID, unit)
}

func (t *RunTracker) Complete(result model.AggregateResult, recordCount int) error {
	return CompleteRun(t.RunID, result, recordCount)
}

func (t *RunTracker) Fail(err error) error {
	return FailRun(t.RunID, err)
}
