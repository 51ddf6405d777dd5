package clean

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/apptclean/internal/config"
	"github.com/gyeh/apptclean/internal/csvread"
	"github.com/gyeh/apptclean/internal/model"
	"github.com/gyeh/apptclean/internal/normalize"
	"github.com/gyeh/apptclean/internal/writeout"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Stats aggregates value-level quality counts from the in-memory stages.
type Stats struct {
	UnparsedTimestamps map[string]int64
	UnmappedCategories map[string]int64
	UnknownBooleans    map[string]int64
	DuplicatesRemoved  int64
}

// Clean runs the in-memory cleaning sequence over a loaded dataset:
// coerce timestamps → map categories → parse booleans → dedupe → derive
// features. The order is fixed: dedupe needs comparable created_at values,
// and features are derived only for rows that survive dedupe. Every stage is
// copy-on-transform; the input dataset is left untouched. Value-level
// problems never fail the run, they degrade to missing values and are
// reported in Stats.
func Clean(log zerolog.Logger, ds *model.Dataset, tsCols []string) (*model.Dataset, *Stats) {
	stats := &Stats{}

	start := time.Now()
	out, unparsed := CoerceTimestamps(ds, tsCols)
	stats.UnparsedTimestamps = unparsed
	log.Info().
		Int("columns", len(tsCols)).
		Int64("unparsed", sumCounts(unparsed)).
		Dur("duration", time.Since(start)).
		Msg("timestamps coerced")

	start = time.Now()
	out, unmapped := MapCategories(out)
	stats.UnmappedCategories = unmapped
	log.Info().
		Int64("unmapped", sumCounts(unmapped)).
		Dur("duration", time.Since(start)).
		Msg("categories mapped")

	start = time.Now()
	out, unknown := ParseBooleans(out)
	stats.UnknownBooleans = unknown
	log.Info().
		Int64("unknown", sumCounts(unknown)).
		Dur("duration", time.Since(start)).
		Msg("booleans parsed")

	start = time.Now()
	out, removed := Dedupe(out)
	stats.DuplicatesRemoved = removed
	log.Info().
		Int64("removed", removed).
		Int("rows", len(out.Rows)).
		Dur("duration", time.Since(start)).
		Msg("deduplicated")

	start = time.Now()
	out = DeriveFeatures(out)
	log.Info().
		Dur("duration", time.Since(start)).
		Msg("features derived")

	return out, stats
}

// Run executes the full pipeline end to end: load → clean → write. Failures
// are wrapped in a PipelineError carrying the phase for exit-code mapping.
func Run(log zerolog.Logger, cfg *config.Config) (*model.CleanSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	// Phase 1: Load
	log.Info().Str("file", cfg.InputPath).Msg("loading appointments")
	loadStart := time.Now()
	ds, err := csvread.Load(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	loadDur := time.Since(loadStart)

	sha, err := normalize.FileHash(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	log.Info().
		Int("rows", len(ds.Rows)).
		Str("sha256", sha).
		Dur("duration", loadDur).
		Msg("load complete")

	// Phase 2: Clean
	cleanStart := time.Now()
	cleaned, stats := Clean(log, ds, cfg.TimestampColumns)
	cleanDur := time.Since(cleanStart)

	// Phase 3: Write
	log.Info().Str("file", cfg.OutputPath).Msg("writing cleaned dataset")
	writeStart := time.Now()
	if err := writeout.Write(cleaned, cfg.OutputPath); err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}
	writeDur := time.Since(writeStart)

	summary := &model.CleanSummary{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		RunID:      runID.String(),

		RowsLoaded:        int64(len(ds.Rows)),
		RowsOut:           int64(len(cleaned.Rows)),
		DuplicatesRemoved: stats.DuplicatesRemoved,

		UnparsedTimestamps: stats.UnparsedTimestamps,
		UnmappedCategories: stats.UnmappedCategories,
		UnknownBooleans:    stats.UnknownBooleans,

		DurationLoad:  loadDur,
		DurationClean: cleanDur,
		DurationWrite: writeDur,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_loaded", summary.RowsLoaded).
		Int64("rows_out", summary.RowsOut).
		Int64("duplicates_removed", summary.DuplicatesRemoved).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("clean pipeline complete")

	return summary, nil
}

func sumCounts(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}
