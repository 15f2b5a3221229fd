package pipeline

import "cablestats/internal/model"

// Tracker records the progress of a run. Tracker errors are logged by the
// pipeline and never change the result of a run.
type Tracker interface {
	UpdateStatus(status string) error
	RecordWarning(cableID, unit string) error
	Complete(result model.AggregateResult, recordCount int) error
	Fail(err error) error
}

// NopTracker records nothing
type NopTracker struct{}

func (NopTracker) UpdateStatus(string) error                 { return nil }
func (NopTracker) RecordWarning(string, string) error        { return nil }
func (NopTracker) Complete(model.AggregateResult, int) error { return nil }
func (NopTracker) Fail(error) error                          { return nil }
