package model

import "time"

// Run statuses, in the order a successful run moves through them
const (
	StatusPending     = "pending"
	StatusLoading     = "loading"
	StatusAggregating = "aggregating"
	StatusExporting   = "exporting"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
)

// RunSummary is one recorded batch run
type RunSummary struct {
	ID          string           `json:"id"`
	Status      string           `json:"status"`
	Manifest    string           `json:"manifest"`
	RecordCount int              `json:"record_count"`
	Error       string           `json:"error,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  *time.Time       `json:"finished_at,omitempty"`
	Stats       *AggregateResult `json:"stats,omitempty"`
	Warnings    []UnitWarning    `json:"warnings,omitempty"`
}

// UnitWarning records a length whose unit token was not "km"
type UnitWarning struct {
	CableID   string    `json:"cable_id"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}
