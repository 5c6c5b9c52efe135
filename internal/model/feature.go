package model

import "fmt"

// Feature names, in the fixed output order. Consumers look features up
// by name; the positional order exists only for flat serialization and
// is documented by FeatureNames.
const (
	FeatHourSin       = "Hour_sin"
	FeatHourCos       = "Hour_cos"
	FeatDayOfWeekSin  = "DayOfWeek_sin"
	FeatDayOfWeekCos  = "DayOfWeek_cos"
	FeatMonthSin      = "Month_sin"
	FeatMonthCos      = "Month_cos"
	FeatIsWeekend     = "Is_Weekend"
	FeatTemperature   = "Temperature_C"
	FeatHumidity      = "Humidity_pct"
	FeatWindSpeed     = "Wind_Speed_ms"
	FeatSolarRadiation = "Solar_Radiation_wm2"
	FeatTempDeviation = "Temp_Deviation"
	FeatNeedsHeating  = "Needs_Heating"
	FeatNeedsCooling  = "Needs_Cooling"
	FeatPower         = "Power_kW"
)

// FeatureCount is the number of scalar features in a FeatureVector.
const FeatureCount = 15

// featureOrder is the single source of truth for positional order.
var featureOrder = [FeatureCount]string{
	FeatHourSin,
	FeatHourCos,
	FeatDayOfWeekSin,
	FeatDayOfWeekCos,
	FeatMonthSin,
	FeatMonthCos,
	FeatIsWeekend,
	FeatTemperature,
	FeatHumidity,
	FeatWindSpeed,
	FeatSolarRadiation,
	FeatTempDeviation,
	FeatNeedsHeating,
	FeatNeedsCooling,
	FeatPower,
}

// FeatureNames returns the feature names in fixed output order.
func FeatureNames() []string {
	names := make([]string, FeatureCount)
	copy(names, featureOrder[:])
	return names
}

// FeatureVector is the engineered representation of one RawRecord.
// Cyclical pairs satisfy sin²+cos²≈1, scaled fields lie in [0,1] for
// values inside the fitted range, and indicators are exactly 0 or 1.
type FeatureVector struct {
	HourSin        float64
	HourCos        float64
	DayOfWeekSin   float64
	DayOfWeekCos   float64
	MonthSin       float64
	MonthCos       float64
	IsWeekend      float64
	TemperatureC   float64 // scaled
	HumidityPct    float64 // scaled
	WindSpeedMS    float64 // scaled
	SolarRadiationWM2 float64 // scaled
	TempDeviation  float64 // scaled |t − 20|
	NeedsHeating   float64
	NeedsCooling   float64
	PowerKW        float64 // scaled; also the windowing target field
}

// Get returns the feature value for a name. Unknown names are an error
// rather than a zero so that silent reordering or renaming cannot hide.
func (v FeatureVector) Get(name string) (float64, error) {
	switch name {
	case FeatHourSin:
		return v.HourSin, nil
	case FeatHourCos:
		return v.HourCos, nil
	case FeatDayOfWeekSin:
		return v.DayOfWeekSin, nil
	case FeatDayOfWeekCos:
		return v.DayOfWeekCos, nil
	case FeatMonthSin:
		return v.MonthSin, nil
	case FeatMonthCos:
		return v.MonthCos, nil
	case FeatIsWeekend:
		return v.IsWeekend, nil
	case FeatTemperature:
		return v.TemperatureC, nil
	case FeatHumidity:
		return v.HumidityPct, nil
	case FeatWindSpeed:
		return v.WindSpeedMS, nil
	case FeatSolarRadiation:
		return v.SolarRadiationWM2, nil
	case FeatTempDeviation:
		return v.TempDeviation, nil
	case FeatNeedsHeating:
		return v.NeedsHeating, nil
	case FeatNeedsCooling:
		return v.NeedsCooling, nil
	case FeatPower:
		return v.PowerKW, nil
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

// Values returns the features as a flat slice in FeatureNames order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.HourSin,
		v.HourCos,
		v.DayOfWeekSin,
		v.DayOfWeekCos,
		v.MonthSin,
		v.MonthCos,
		v.IsWeekend,
		v.TemperatureC,
		v.HumidityPct,
		v.WindSpeedMS,
		v.SolarRadiationWM2,
		v.TempDeviation,
		v.NeedsHeating,
		v.NeedsCooling,
		v.PowerKW,
	}
}

// Window is one supervised training pair: a history of consecutive
// feature vectors and the scaled power value horizon hours after the
// history ends. History and target never cross a partition boundary.
type Window struct {
	History []FeatureVector
	Target  float64
}
