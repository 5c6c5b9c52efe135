package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/pgzip"

	"energy_feature_lab/internal/ingest"
	"energy_feature_lab/internal/model"
)

// WriteRawCSV writes a raw dataset in the canonical ingest format.
// A ".gz" suffix enables parallel gzip compression.
func WriteRawCSV(path string, records []model.RawRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gz *pgzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = pgzip.NewWriter(f)
		w = gz
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ingest.Header); err != nil {
		f.Close()
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.UTC().Format(time.RFC3339),
			formatFloat(rec.PowerKW),
			formatFloat(rec.TemperatureC),
			formatFloat(rec.HumidityPct),
			formatFloat(rec.WindSpeedMS),
			formatFloat(rec.SolarRadiationWM2),
			strconv.Itoa(rec.DayOfWeek),
		}
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// WriteFeatureCSV writes feature rows as flat CSV for quick inspection.
// The target column is empty on rows without a forward target.
func WriteFeatureCSV(path string, rows []FeatureRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	header := append([]string{"timestamp"}, model.FeatureNames()...)
	header = append(header, "target")
	if err := cw.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, r := range rows {
		row := make([]string, 0, len(header))
		row = append(row, r.RowTime().Format(time.RFC3339))
		for _, v := range r.featureValues() {
			row = append(row, formatFloat(v))
		}
		if r.Target != nil {
			row = append(row, formatFloat(*r.Target))
		} else {
			row = append(row, "")
		}
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// featureValues returns the feature columns in FeatureNames order.
func (r FeatureRow) featureValues() []float64 {
	return []float64{
		r.HourSin,
		r.HourCos,
		r.DayOfWeekSin,
		r.DayOfWeekCos,
		r.MonthSin,
		r.MonthCos,
		r.IsWeekend,
		r.TemperatureC,
		r.HumidityPct,
		r.WindSpeedMS,
		r.SolarRadiationWM2,
		r.TempDeviation,
		r.NeedsHeating,
		r.NeedsCooling,
		r.PowerKW,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
