package model

import "time"

// CleanSummary captures metrics from a single pipeline run.
type CleanSummary struct {
	InputPath  string
	OutputPath string
	RunID      string

	RowsLoaded        int64
	RowsOut           int64
	DuplicatesRemoved int64

	// Per-column counts of non-empty raw values that failed to map or parse.
	UnparsedTimestamps map[string]int64
	UnmappedCategories map[string]int64
	UnknownBooleans    map[string]int64

	DurationLoad  time.Duration
	DurationClean time.Duration
	DurationWrite time.Duration
	DurationTotal time.Duration
}
