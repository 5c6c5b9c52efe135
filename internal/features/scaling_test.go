package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_feature_lab/internal/model"
)

func TestFit_ComputesMinMaxBounds(t *testing.T) {
	train := []model.RawRecord{
		{PowerKW: 20, TemperatureC: 5, HumidityPct: 40, WindSpeedMS: 2, SolarRadiationWM2: 0},
		{PowerKW: 80, TemperatureC: 30, HumidityPct: 90, WindSpeedMS: 10, SolarRadiationWM2: 800},
		{PowerKW: 50, TemperatureC: 18, HumidityPct: 60, WindSpeedMS: 5, SolarRadiationWM2: 400},
	}

	p, err := Fit(train)
	require.NoError(t, err)

	assert.Equal(t, Range{20, 80}, p.PowerKW)
	assert.Equal(t, Range{5, 30}, p.TemperatureC)
	assert.Equal(t, Range{40, 90}, p.HumidityPct)
	assert.Equal(t, Range{2, 10}, p.WindSpeedMS)
	assert.Equal(t, Range{0, 800}, p.SolarRadiationWM2)

	// TempDeviation bounds over |t−20|: |5−20|=15, |30−20|=10, |18−20|=2.
	assert.Equal(t, Range{2, 15}, p.TempDeviation)
}

func TestFit_EmptyTrainSet(t *testing.T) {
	_, err := Fit(nil)
	assert.ErrorIs(t, err, ErrEmptyTrainSet)
}

func TestRange_Scale(t *testing.T) {
	r := Range{Min: 5, Max: 30}

	assert.Equal(t, 1.0, r.Scale(30))
	assert.Equal(t, 0.0, r.Scale(5))
	assert.InDelta(t, 0.6, r.Scale(20), 1e-12)
}

func TestRange_Scale_DegenerateRangeYieldsZero(t *testing.T) {
	// min == max must emit 0 via an explicit guard, never NaN.
	r := Range{Min: 10, Max: 10}

	for _, x := range []float64{0, 10, 25, -3} {
		v := r.Scale(x)
		assert.Equal(t, 0.0, v, "Scale(%g) on degenerate range", x)
	}
}

func TestScalingParams_SaveLoadRoundtrip(t *testing.T) {
	p := ScalingParams{
		PowerKW:           Range{0, 120},
		TemperatureC:      Range{-10, 35},
		HumidityPct:       Range{20, 100},
		WindSpeedMS:       Range{0, 22},
		SolarRadiationWM2: Range{0, 950},
		TempDeviation:     Range{0, 30},
	}

	data, err := p.Save()
	require.NoError(t, err)

	loaded, err := LoadScalingParams(data)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoadScalingParams_InvalidJSON(t *testing.T) {
	_, err := LoadScalingParams([]byte("{not json"))
	assert.Error(t, err)
}

// hourlyRecords builds n consecutive hourly records with fixed values.
func hourlyRecords(n int, powerKW, tempC float64) []model.RawRecord {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]model.RawRecord, n)
	for i := range records {
		ts := start.Add(time.Duration(i) * time.Hour)
		records[i] = model.RawRecord{
			Timestamp:         ts,
			PowerKW:           powerKW,
			TemperatureC:      tempC,
			HumidityPct:       55,
			WindSpeedMS:       4,
			SolarRadiationWM2: 200,
			DayOfWeek:         model.DayOfWeekOf(ts),
		}
	}
	return records
}
