// Package export writes lab artifacts: Parquet/CSV feature sets and
// CSV raw datasets. Parquet is the primary record-oriented output,
// directly consumable by downstream training pipelines.
package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"energy_feature_lab/internal/model"
)

// FeatureRow is the flat tabular form of one transformed record plus
// its forecast target. Column names mirror the documented feature
// order; the target is the scaled power value horizon hours ahead and
// is absent on the trailing rows of a partition.
type FeatureRow struct {
	Timestamp         int64    `parquet:"timestamp"`
	HourSin           float64  `parquet:"hour_sin"`
	HourCos           float64  `parquet:"hour_cos"`
	DayOfWeekSin      float64  `parquet:"day_of_week_sin"`
	DayOfWeekCos      float64  `parquet:"day_of_week_cos"`
	MonthSin          float64  `parquet:"month_sin"`
	MonthCos          float64  `parquet:"month_cos"`
	IsWeekend         float64  `parquet:"is_weekend"`
	TemperatureC      float64  `parquet:"temperature_c"`
	HumidityPct       float64  `parquet:"humidity_pct"`
	WindSpeedMS       float64  `parquet:"wind_speed_ms"`
	SolarRadiationWM2 float64  `parquet:"solar_radiation_wm2"`
	TempDeviation     float64  `parquet:"temp_deviation"`
	NeedsHeating      float64  `parquet:"needs_heating"`
	NeedsCooling      float64  `parquet:"needs_cooling"`
	PowerKW           float64  `parquet:"power_kw"`
	Target            *float64 `parquet:"target,optional"`
}

// BuildRows pairs each feature vector with its timestamp and forward
// target. records and feats must be the same partition in the same
// order; targets never reach outside the partition.
func BuildRows(records []model.RawRecord, feats []model.FeatureVector, horizon int) ([]FeatureRow, error) {
	if len(records) != len(feats) {
		return nil, fmt.Errorf("export: %d records but %d feature vectors", len(records), len(feats))
	}
	rows := make([]FeatureRow, len(feats))
	for i, v := range feats {
		rows[i] = FeatureRow{
			Timestamp:         records[i].Timestamp.Unix(),
			HourSin:           v.HourSin,
			HourCos:           v.HourCos,
			DayOfWeekSin:      v.DayOfWeekSin,
			DayOfWeekCos:      v.DayOfWeekCos,
			MonthSin:          v.MonthSin,
			MonthCos:          v.MonthCos,
			IsWeekend:         v.IsWeekend,
			TemperatureC:      v.TemperatureC,
			HumidityPct:       v.HumidityPct,
			WindSpeedMS:       v.WindSpeedMS,
			SolarRadiationWM2: v.SolarRadiationWM2,
			TempDeviation:     v.TempDeviation,
			NeedsHeating:      v.NeedsHeating,
			NeedsCooling:      v.NeedsCooling,
			PowerKW:           v.PowerKW,
		}
		if horizon > 0 && i+horizon < len(feats) {
			target := feats[i+horizon].PowerKW
			rows[i].Target = &target
		}
	}
	return rows, nil
}

// WriteParquet writes feature rows to a Parquet file.
func WriteParquet(path string, rows []FeatureRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := parquet.NewGenericWriter[FeatureRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("export: closing %s: %w", path, err)
	}
	return f.Close()
}

// ReadParquet reads feature rows back from a Parquet file.
func ReadParquet(path string) ([]FeatureRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("export: opening %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[FeatureRow](pf)
	defer reader.Close()

	var rows []FeatureRow
	buf := make([]FeatureRow, 1000)
	for {
		n, err := reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("export: reading %s: %w", path, err)
		}
	}
	return rows, nil
}

// RowTime returns the row timestamp as a UTC time.
func (r FeatureRow) RowTime() time.Time {
	return time.Unix(r.Timestamp, 0).UTC()
}
