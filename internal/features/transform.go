// Package features maps raw hourly records to fixed-order feature
// vectors: cyclical time encodings, min-max scaled environmental
// fields, and threshold indicators. Scaling parameters are fit on the
// train partition only and applied identically everywhere.
package features

import (
	"math"
	"runtime"
	"sync"

	"energy_feature_lab/internal/model"
)

// cyclical encodes a periodic value as a (sin, cos) pair so that the
// wrap-around point (hour 23 → 0) stays adjacent in feature space.
func cyclical(value, period float64) (sin, cos float64) {
	angle := 2 * math.Pi * value / period
	return math.Sin(angle), math.Cos(angle)
}

// Comfort thresholds for the behavioral indicators.
const (
	heatingThresholdC = 18.0
	coolingThresholdC = 25.0

	hoursPerDay = 24.0
	daysPerWeek = 7.0
	daysPerYear = 365.25
)

// Apply computes the feature vector for a single record. It is a pure
// function of the record and the scaling artifact: applying it twice
// yields bit-identical output.
func Apply(rec model.RawRecord, p ScalingParams) model.FeatureVector {
	hourSin, hourCos := cyclical(float64(rec.Timestamp.Hour()), hoursPerDay)
	dowSin, dowCos := cyclical(float64(rec.DayOfWeek), daysPerWeek)
	yearSin, yearCos := cyclical(float64(rec.Timestamp.YearDay()), daysPerYear)

	v := model.FeatureVector{
		HourSin:           hourSin,
		HourCos:           hourCos,
		DayOfWeekSin:      dowSin,
		DayOfWeekCos:      dowCos,
		MonthSin:          yearSin,
		MonthCos:          yearCos,
		TemperatureC:      p.TemperatureC.Scale(rec.TemperatureC),
		HumidityPct:       p.HumidityPct.Scale(rec.HumidityPct),
		WindSpeedMS:       p.WindSpeedMS.Scale(rec.WindSpeedMS),
		SolarRadiationWM2: p.SolarRadiationWM2.Scale(rec.SolarRadiationWM2),
		TempDeviation:     p.TempDeviation.Scale(tempDeviation(rec.TemperatureC)),
		PowerKW:           p.PowerKW.Scale(rec.PowerKW),
	}

	if model.IsWeekendDay(rec.DayOfWeek) {
		v.IsWeekend = 1
	}
	if rec.TemperatureC < heatingThresholdC {
		v.NeedsHeating = 1
	}
	if rec.TemperatureC > coolingThresholdC {
		v.NeedsCooling = 1
	}

	return v
}

// ApplyAll transforms every record using a bounded worker pool.
// Records have no cross-record dependency, so workers only share the
// read-only scaling artifact; output order matches input order.
func ApplyAll(records []model.RawRecord, p ScalingParams, workers int) []model.FeatureVector {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]model.FeatureVector, len(records))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range records {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = Apply(records[i], p)
		}(i)
	}

	wg.Wait()
	return out
}
