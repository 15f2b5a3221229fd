package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"cablestats/internal/config"
	"cablestats/internal/model"
	"cablestats/pkg/utils"

	"go.uber.org/zap"
)

// Options configures a single run
type Options struct {
	Config  config.Config
	Logger  *zap.Logger
	Tracker Tracker   // nil records nothing
	Report  io.Writer // destination of the text report
}

// ------------------- Pipeline Runner -------------------

// Run loads the manifest and every detail file, aggregates them, prints the
// report and writes the summary JSON. The first error aborts the run and no
// output file is written.
func Run(ctx context.Context, opts Options) (result model.AggregateResult, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = NopTracker{}
	}
	report := opts.Report
	if report == nil {
		report = io.Discard
	}

	start := time.Now()
	logger.Info("🚀 Starting cable stats run", zap.String("manifest", opts.Config.ManifestPath))

	defer func() {
		if err != nil {
			track(logger, "fail run", tracker.Fail(err))
		}
	}()

	// --- LOADING STAGE ---
	track(logger, "update status", tracker.UpdateStatus(model.StatusLoading))
	stageStart := time.Now()

	refs, err := ReadManifest(opts.Config.ManifestPath)
	if err != nil {
		return model.AggregateResult{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	logger.Info("📄 Manifest loaded", zap.Int("cables", len(refs)))

	loader := NewLoader(opts.Config, logger, tracker)
	records, err := CollectRecords(loader.Records(ctx, refs))
	if err != nil {
		return model.AggregateResult{}, fmt.Errorf("failed to load cable records: %w", err)
	}
	logger.Info("✅ Loading stage complete",
		zap.Int("records", len(records)),
		zap.Duration("duration", time.Since(stageStart)),
	)

	// --- AGGREGATION STAGE ---
	track(logger, "update status", tracker.UpdateStatus(model.StatusAggregating))
	result = Aggregate(records)
	logger.Info("📊 Aggregation stage complete",
		zap.Int("total", result.Total()),
		zap.Int("active", result.Active.Count),
		zap.Int("planned", result.Planned.Count),
	)

	// --- EXPORT STAGE ---
	track(logger, "update status", tracker.UpdateStatus(model.StatusExporting))
	if err := WriteReport(report, result); err != nil {
		return model.AggregateResult{}, fmt.Errorf("failed to write report: %w", err)
	}

	om := utils.NewOutputManager(opts.Config.DataDir)
	n, err := ExportJSON(om, opts.Config.OutputPath, result)
	if err != nil {
		return model.AggregateResult{}, fmt.Errorf("failed to export stats: %w", err)
	}
	logger.Info("💾 Stats exported", zap.String("path", opts.Config.OutputPath), zap.Int("bytes", n))

	track(logger, "complete run", tracker.Complete(result, len(records)))
	logger.Info("🏁 Run completed", zap.Duration("duration", time.Since(start)))
	return result, nil
}

// track logs a tracker failure without failing the run.
func track(logger *zap.Logger, action string, err error) {
	if err != nil {
		logger.Warn("run tracking failed", zap.String("action", action), zap.Error(err))
	}
}
