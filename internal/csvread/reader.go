package csvread

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gyeh/apptclean/internal/model"
)

// Load reads a raw appointments CSV into a Dataset and validates its schema.
// It performs no value-level transformation: every cell lands in a Raw field
// exactly as read (sanitized to valid UTF-8, since the pipeline may persist
// to Parquet). Validation is strict: a missing file, an empty dataset, or
// any absent required column aborts the load with a typed error.
func Load(path string) (*model.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	bufReader := bufio.NewReaderSize(f, 256*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &EmptyDatasetError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}

	cols := model.NewColumnSet(model.RequiredColumns...)

	var rows []model.Appointment
	var rowNum int64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum+1, err)
		}

		// Skip fully empty rows
		if len(record) == 0 || (len(record) == 1 && record[0] == "") {
			continue
		}

		rowNum++
		rows = append(rows, toAppointment(record, colIdx, rowNum))
	}

	if len(rows) == 0 {
		return nil, &EmptyDatasetError{Path: path}
	}

	return &model.Dataset{Cols: cols, Rows: rows}, nil
}

func toAppointment(record []string, colIdx map[string]int, rowNum int64) model.Appointment {
	return model.Appointment{
		SourceRowNumber: rowNum,

		AppointmentID: cellAt(record, colIdx, model.ColAppointmentID),
		PatientID:     cellAt(record, colIdx, model.ColPatientID),
		ProviderID:    cellAt(record, colIdx, model.ColProviderID),
		ClinicID:      cellAt(record, colIdx, model.ColClinicID),

		ScheduledStart: model.Timestamp{Raw: cellAt(record, colIdx, model.ColScheduledStart)},
		ScheduledEnd:   model.Timestamp{Raw: cellAt(record, colIdx, model.ColScheduledEnd)},
		CreatedAt:      model.Timestamp{Raw: cellAt(record, colIdx, model.ColCreatedAt)},
		CheckInTime:    model.Timestamp{Raw: cellAt(record, colIdx, model.ColCheckInTime)},
		VisitStartTime: model.Timestamp{Raw: cellAt(record, colIdx, model.ColVisitStartTime)},
		VisitEndTime:   model.Timestamp{Raw: cellAt(record, colIdx, model.ColVisitEndTime)},
		CanceledAt:     model.Timestamp{Raw: cellAt(record, colIdx, model.ColCanceledAt)},

		Status:          model.Category{Raw: cellAt(record, colIdx, model.ColStatus)},
		AppointmentType: model.Category{Raw: cellAt(record, colIdx, model.ColAppointmentType)},
		InsuranceType:   model.Category{Raw: cellAt(record, colIdx, model.ColInsuranceType)},
		VisitModality:   model.Category{Raw: cellAt(record, colIdx, model.ColVisitModality)},

		FollowUpNeeded:    model.Flag{Raw: cellAt(record, colIdx, model.ColFollowUpNeeded)},
		FollowUpScheduled: model.Flag{Raw: cellAt(record, colIdx, model.ColFollowUpScheduled)},

		CancelReason:   cellAt(record, colIdx, model.ColCancelReason),
		StatusDetail:   cellAt(record, colIdx, model.ColStatusDetail),
		ReferralSource: cellAt(record, colIdx, model.ColReferralSource),
		Language:       cellAt(record, colIdx, model.ColLanguage),
		Zip3:           cellAt(record, colIdx, model.ColZip3),
		AgeBand:        cellAt(record, colIdx, model.ColAgeBand),
	}
}

func cellAt(record []string, colIdx map[string]int, col string) string {
	i, ok := colIdx[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.ToValidUTF8(record[i], "�")
}
