// Package ingest reads raw record datasets from tabular sources.
// Malformed input fails fast with an error naming the offending field
// and record index; there is no silent defaulting.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/pgzip"

	"energy_feature_lab/internal/model"
)

// CSV column indices for the raw dataset format.
const (
	ColTimestamp = 0
	ColPower     = 1
	ColTemp      = 2
	ColHumidity  = 3
	ColWind      = 4
	ColSolar     = 5
	ColDayOfWeek = 6

	// NumColumns is the exact column count of a valid raw record row.
	NumColumns = 7
)

// Header is the canonical raw dataset CSV header row.
var Header = []string{
	"timestamp",
	"power_kw",
	"temperature_c",
	"humidity_pct",
	"wind_speed_ms",
	"solar_radiation_wm2",
	"day_of_week",
}

// FieldError reports a validation failure for one field of one record.
// Record indices are zero-based and count data rows, not the header.
type FieldError struct {
	Record int
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %q: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CSVParser parses the canonical raw dataset CSV format.
type CSVParser struct{}

var _ Parser = CSVParser{}

// Parse reads all records from r. The first row must be the header.
func (CSVParser) Parse(r io.Reader) ([]model.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = NumColumns

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ingest: empty input, expected header row")
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: reading header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var records []model.RawRecord
	for i := 0; ; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: record %d: %w", i, err)
		}
		rec, err := parseRow(row, i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func checkHeader(header []string) error {
	for i, want := range Header {
		if i >= len(header) || strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("ingest: header column %d: want %q", i, want)
		}
	}
	return nil
}

func parseRow(row []string, idx int) (model.RawRecord, error) {
	var rec model.RawRecord
	var err error

	rec.Timestamp, err = time.Parse(time.RFC3339, strings.TrimSpace(row[ColTimestamp]))
	if err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColTimestamp], Err: err}
	}
	rec.Timestamp = rec.Timestamp.UTC()

	if rec.PowerKW, err = parseFloat(row[ColPower]); err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColPower], Err: err}
	}
	if rec.TemperatureC, err = parseFloat(row[ColTemp]); err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColTemp], Err: err}
	}
	if rec.HumidityPct, err = parseFloat(row[ColHumidity]); err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColHumidity], Err: err}
	}
	if rec.WindSpeedMS, err = parseFloat(row[ColWind]); err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColWind], Err: err}
	}
	if rec.SolarRadiationWM2, err = parseFloat(row[ColSolar]); err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColSolar], Err: err}
	}

	dow, err := strconv.Atoi(strings.TrimSpace(row[ColDayOfWeek]))
	if err != nil {
		return model.RawRecord{}, &FieldError{Record: idx, Field: Header[ColDayOfWeek], Err: err}
	}
	if dow < 0 || dow > 6 {
		return model.RawRecord{}, &FieldError{
			Record: idx,
			Field:  Header[ColDayOfWeek],
			Err:    fmt.Errorf("value %d outside [0,6]", dow),
		}
	}
	rec.DayOfWeek = dow

	return rec, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.ParseFloat(s, 64)
}

// ReadFile parses a raw dataset from a CSV file; a ".gz" suffix is
// decompressed transparently with parallel gzip.
func ReadFile(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ingest: opening gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	records, err := CSVParser{}.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
