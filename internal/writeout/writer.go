package writeout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/apptclean/internal/model"
)

// timeLayout is the on-disk format for timestamp cells in CSV output.
const timeLayout = "2006-01-02 15:04:05"

// UnsupportedFormatError reports an output path whose extension maps to no
// known format.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %s (want .parquet or .csv)", e.Path)
}

// Write persists a cleaned dataset to path, selecting the format by file
// extension: .parquet for columnar output, .csv for delimited text. The
// format check happens before anything touches disk; the parent directory
// is created if absent.
func Write(ds *model.Dataset, path string) error {
	var write func(*model.Dataset, *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		write = writeParquet
	case ".csv":
		write = writeCSV
	default:
		return &UnsupportedFormatError{Path: path}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := write(ds, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeParquet(ds *model.Dataset, f *os.File) error {
	rows := make([]model.OutputRow, len(ds.Rows))
	for i := range ds.Rows {
		rows[i] = model.ToOutputRow(&ds.Rows[i])
	}

	w := parquet.NewGenericWriter[model.OutputRow](f)
	if _, err := w.Write(rows); err != nil {
		w.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

func writeCSV(ds *model.Dataset, f *os.File) error {
	// Emit only the columns this dataset carries, in canonical order.
	var header []string
	for _, col := range model.OutputColumns() {
		if ds.Cols.Has(col) {
			header = append(header, col)
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for i := range ds.Rows {
		for j, col := range header {
			record[j] = cellValue(&ds.Rows[i], col)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// cellValue renders one cleaned cell as CSV text. Missing values of every
// kind become the empty cell.
func cellValue(a *model.Appointment, col string) string {
	if ts := a.TimestampField(col); ts != nil {
		if ts.Missing() {
			return ""
		}
		return ts.Time.Format(timeLayout)
	}
	if cat := a.CategoryField(col); cat != nil {
		if !cat.Known() {
			return ""
		}
		return *cat.Canonical
	}
	if fl := a.FlagField(col); fl != nil {
		if fl.Value == nil {
			return ""
		}
		return strconv.FormatBool(*fl.Value)
	}

	switch col {
	case model.ColAppointmentID:
		return a.AppointmentID
	case model.ColPatientID:
		return a.PatientID
	case model.ColProviderID:
		return a.ProviderID
	case model.ColClinicID:
		return a.ClinicID
	case model.ColCancelReason:
		return a.CancelReason
	case model.ColStatusDetail:
		return a.StatusDetail
	case model.ColReferralSource:
		return a.ReferralSource
	case model.ColLanguage:
		return a.Language
	case model.ColZip3:
		return a.Zip3
	case model.ColAgeBand:
		return a.AgeBand
	case model.ColLeadTimeMinutes:
		return formatMinutes(a.LeadTimeMinutes)
	case model.ColWaitTimeMinutes:
		return formatMinutes(a.WaitTimeMinutes)
	case model.ColVisitDurationMinutes:
		return formatMinutes(a.VisitDurationMinutes)
	}
	return ""
}

func formatMinutes(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
