package features

import (
	"encoding/json"
	"errors"
	"math"

	"energy_feature_lab/internal/model"
)

// Range holds the min-max bounds for one continuous input.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Scale rescales x linearly into [0,1] over the range. A degenerate
// range (max == min) yields 0 by policy, never a division by zero.
func (r Range) Scale(x float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (x - r.Min) / (r.Max - r.Min)
}

// ScalingParams is the reusable scaling artifact. It is fit exactly
// once, on the training partition only, and then applied read-only to
// both partitions; refitting on test data would leak future values.
type ScalingParams struct {
	PowerKW           Range `json:"power_kw"`
	TemperatureC      Range `json:"temperature_c"`
	HumidityPct       Range `json:"humidity_pct"`
	WindSpeedMS       Range `json:"wind_speed_ms"`
	SolarRadiationWM2 Range `json:"solar_radiation_wm2"`
	TempDeviation     Range `json:"temp_deviation"`
}

// ErrEmptyTrainSet is returned when Fit is given no records.
var ErrEmptyTrainSet = errors.New("features: cannot fit scaling parameters on an empty train partition")

// Fit computes min-max bounds for every continuous field from the
// training records. TempDeviation bounds are fit over |t − 20| of the
// same records.
func Fit(train []model.RawRecord) (ScalingParams, error) {
	if len(train) == 0 {
		return ScalingParams{}, ErrEmptyTrainSet
	}

	first := train[0]
	p := ScalingParams{
		PowerKW:           Range{first.PowerKW, first.PowerKW},
		TemperatureC:      Range{first.TemperatureC, first.TemperatureC},
		HumidityPct:       Range{first.HumidityPct, first.HumidityPct},
		WindSpeedMS:       Range{first.WindSpeedMS, first.WindSpeedMS},
		SolarRadiationWM2: Range{first.SolarRadiationWM2, first.SolarRadiationWM2},
		TempDeviation:     Range{tempDeviation(first.TemperatureC), tempDeviation(first.TemperatureC)},
	}

	for _, rec := range train[1:] {
		p.PowerKW = p.PowerKW.extend(rec.PowerKW)
		p.TemperatureC = p.TemperatureC.extend(rec.TemperatureC)
		p.HumidityPct = p.HumidityPct.extend(rec.HumidityPct)
		p.WindSpeedMS = p.WindSpeedMS.extend(rec.WindSpeedMS)
		p.SolarRadiationWM2 = p.SolarRadiationWM2.extend(rec.SolarRadiationWM2)
		p.TempDeviation = p.TempDeviation.extend(tempDeviation(rec.TemperatureC))
	}

	return p, nil
}

func (r Range) extend(x float64) Range {
	return Range{Min: min(r.Min, x), Max: max(r.Max, x)}
}

// comfortTempC is the reference point for the temperature deviation feature.
const comfortTempC = 20.0

func tempDeviation(tempC float64) float64 {
	return math.Abs(tempC - comfortTempC)
}

// Save serializes the scaling artifact to indented JSON for reuse at
// inference time.
func (p ScalingParams) Save() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// LoadScalingParams deserializes a scaling artifact produced by Save.
func LoadScalingParams(data []byte) (ScalingParams, error) {
	var p ScalingParams
	if err := json.Unmarshal(data, &p); err != nil {
		return ScalingParams{}, err
	}
	return p, nil
}
