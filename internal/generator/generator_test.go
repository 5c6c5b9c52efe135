package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_feature_lab/internal/model"
)

func labConfig(seed uint64, count int) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Start = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg.Count = count
	return cfg
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	// seed=42, start=2020-01-01T00:00, N=10000 must reproduce
	// bit-for-bit across runs.
	first, err := Generate(labConfig(42, 10000))
	require.NoError(t, err)
	second, err := Generate(labConfig(42, 10000))
	require.NoError(t, err)

	require.Len(t, first, 10000)
	assert.Equal(t, first, second)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(labConfig(42, 200))
	require.NoError(t, err)
	b, err := Generate(labConfig(43, 200))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerate_ZeroSeedRejected(t *testing.T) {
	cfg := labConfig(0, 10)
	_, err := Generate(cfg)
	assert.ErrorIs(t, err, ErrZeroSeed)
}

func TestGenerate_HourlyCadenceAndOrdering(t *testing.T) {
	records, err := Generate(labConfig(7, 1000))
	require.NoError(t, err)

	for i := 1; i < len(records); i++ {
		gap := records[i].Timestamp.Sub(records[i-1].Timestamp)
		require.Equal(t, time.Hour, gap, "record %d", i)
	}
}

func TestGenerate_ValuesWithinDocumentedRanges(t *testing.T) {
	records, err := Generate(labConfig(42, 10000))
	require.NoError(t, err)

	for i, r := range records {
		assert.GreaterOrEqual(t, r.PowerKW, model.PowerMinKW, "record %d power", i)
		assert.LessOrEqual(t, r.PowerKW, model.PowerMaxKW, "record %d power", i)
		assert.GreaterOrEqual(t, r.TemperatureC, model.TemperatureMinC, "record %d temp", i)
		assert.LessOrEqual(t, r.TemperatureC, model.TemperatureMaxC, "record %d temp", i)
		assert.GreaterOrEqual(t, r.HumidityPct, model.HumidityMinPct, "record %d humidity", i)
		assert.LessOrEqual(t, r.HumidityPct, model.HumidityMaxPct, "record %d humidity", i)
		assert.GreaterOrEqual(t, r.WindSpeedMS, model.WindMinMS, "record %d wind", i)
		assert.LessOrEqual(t, r.WindSpeedMS, model.WindMaxMS, "record %d wind", i)
		assert.GreaterOrEqual(t, r.SolarRadiationWM2, model.SolarMinWM2, "record %d solar", i)
		assert.LessOrEqual(t, r.SolarRadiationWM2, model.SolarMaxWM2, "record %d solar", i)
		assert.GreaterOrEqual(t, r.DayOfWeek, 0, "record %d dow", i)
		assert.LessOrEqual(t, r.DayOfWeek, 6, "record %d dow", i)
	}
}

func TestGenerate_DayOfWeekMatchesTimestamp(t *testing.T) {
	records, err := Generate(labConfig(11, 24*14))
	require.NoError(t, err)

	for i, r := range records {
		assert.Equal(t, model.DayOfWeekOf(r.Timestamp), r.DayOfWeek, "record %d", i)
	}
}

func TestGenerate_WeekendReducesPower(t *testing.T) {
	// A full year averages out noise; the ~20% weekend reduction must
	// show clearly in the means.
	records, err := Generate(labConfig(42, 24*365))
	require.NoError(t, err)

	var weekdaySum, weekendSum float64
	var weekdayN, weekendN int
	for _, r := range records {
		if model.IsWeekendDay(r.DayOfWeek) {
			weekendSum += r.PowerKW
			weekendN++
		} else {
			weekdaySum += r.PowerKW
			weekdayN++
		}
	}
	require.Positive(t, weekdayN)
	require.Positive(t, weekendN)

	weekdayAvg := weekdaySum / float64(weekdayN)
	weekendAvg := weekendSum / float64(weekendN)
	assert.Less(t, weekendAvg, weekdayAvg*0.92, "weekend avg %.1f vs weekday avg %.1f", weekendAvg, weekdayAvg)
}

func TestGenerate_DaytimePeakNighttimeTrough(t *testing.T) {
	records, err := Generate(labConfig(42, 24*365))
	require.NoError(t, err)

	var daySum, nightSum float64
	var dayN, nightN int
	for _, r := range records {
		h := r.Timestamp.Hour()
		if h >= 9 && h < 21 {
			daySum += r.PowerKW
			dayN++
		} else if h < 5 {
			nightSum += r.PowerKW
			nightN++
		}
	}

	assert.Greater(t, daySum/float64(dayN), 1.5*nightSum/float64(nightN))
}

func TestGenerate_AnomaliesAreRareAndRetained(t *testing.T) {
	cfg := labConfig(42, 2000)
	cfg.AnomalyProb = 0.05 // boosted so the test sees a few

	records, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, records, 2000, "anomaly records must be retained, not removed")

	outages := 0
	for _, r := range records {
		if r.PowerKW < 1.0 {
			outages++
		}
	}
	// 5% of 2000 = 100 expected; allow generous slack.
	assert.Greater(t, outages, 50)
	assert.Less(t, outages, 200)
}

func TestGenerate_SolarZeroAtNight(t *testing.T) {
	records, err := Generate(labConfig(13, 24*30))
	require.NoError(t, err)

	for _, r := range records {
		h := r.Timestamp.Hour()
		if h < 4 || h > 22 {
			assert.Zero(t, r.SolarRadiationWM2, "hour %d", h)
		}
	}
}

func TestGenerate_CountZero(t *testing.T) {
	records, err := Generate(labConfig(42, 0))
	require.NoError(t, err)
	assert.Empty(t, records)
}
