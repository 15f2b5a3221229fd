package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	"cablestats/internal/config"
	"cablestats/internal/model"

	"go.uber.org/zap"
)

// ------------------- Manifest -------------------

// ReadManifest reads the cable index at path, preserving its order.
func ReadManifest(path string) ([]model.CableReference, error) {
	var refs []model.CableReference
	if err := readJSONFile(path, &refs); err != nil {
		return nil, err
	}
	if refs == nil {
		return nil, &ParseError{Path: path, Err: errors.New("manifest is not a list")}
	}

	for i, ref := range refs {
		if ref.ID == "" {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("entry %d has no id", i)}
		}
	}
	return refs, nil
}

// ------------------- Detail records -------------------

// cableDocument is the on-disk shape of a detail file
type cableDocument struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Length    *string `json:"length"`
	IsPlanned *bool   `json:"is_planned"`
}

// Loader reads detail files for manifest entries
type Loader struct {
	cfg     config.Config
	logger  *zap.Logger
	tracker Tracker
}

// NewLoader creates a loader. A nil tracker records nothing.
func NewLoader(cfg config.Config, logger *zap.Logger, tracker Tracker) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracker == nil {
		tracker = NopTracker{}
	}
	return &Loader{cfg: cfg, logger: logger, tracker: tracker}
}

// LoadRecord reads and normalizes the detail file of ref.
func (l *Loader) LoadRecord(ref model.CableReference) (model.CableRecord, error) {
	path := l.cfg.DetailPath(ref.ID)

	var doc cableDocument
	if err := readJSONFile(path, &doc); err != nil {
		return model.CableRecord{}, err
	}
	if doc.IsPlanned == nil {
		return model.CableRecord{}, &ParseError{Path: path, Err: errors.New("missing is_planned")}
	}

	rec := model.CableRecord{
		ID:        ref.ID,
		Name:      doc.Name,
		LengthRaw: doc.Length,
		IsPlanned: *doc.IsPlanned,
	}
	if rec.Name == "" {
		rec.Name = ref.Name
	}

	unit, err := NormalizeLength(&rec)
	if err != nil {
		return model.CableRecord{}, err
	}
	if rec.LengthRaw != nil && unit != LengthUnitKM {
		l.warnUnit(rec, unit)
	}
	return rec, nil
}

// Records lazily loads one record per reference, in order. Iteration stops
// after the first error, which is yielded with a zero record.
func (l *Loader) Records(ctx context.Context, refs []model.CableReference) iter.Seq2[model.CableRecord, error] {
	return func(yield func(model.CableRecord, error) bool) {
		for _, ref := range refs {
			if err := ctx.Err(); err != nil {
				yield(model.CableRecord{}, err)
				return
			}

			rec, err := l.LoadRecord(ref)
			if err != nil {
				yield(model.CableRecord{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// CollectRecords materializes seq, returning the first error it yields.
func CollectRecords(seq iter.Seq2[model.CableRecord, error]) ([]model.CableRecord, error) {
	var records []model.CableRecord
	for rec, err := range seq {
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l *Loader) warnUnit(rec model.CableRecord, unit string) {
	l.logger.Warn("⚠️ unexpected length unit, value used unconverted",
		zap.String("cable_id", rec.ID),
		zap.String("unit", unit),
		zap.String("length", *rec.LengthRaw),
	)
	if err := l.tracker.RecordWarning(rec.ID, unit); err != nil {
		l.logger.Warn("failed to record unit warning", zap.String("cable_id", rec.ID), zap.Error(err))
	}
}

// readJSONFile decodes the whole file at path into v. The file is closed
// before returning.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingFileError{Path: path}
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
