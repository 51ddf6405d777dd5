package csvread

import (
	"fmt"
	"strings"
)

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("appointments file not found: %s", e.Path)
}

// EmptyDatasetError reports an input file with a header but zero data rows.
type EmptyDatasetError struct {
	Path string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("appointments dataset is empty: %s", e.Path)
}

// SchemaError reports every required column absent from the input header.
type SchemaError struct {
	Missing []string // sorted
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
