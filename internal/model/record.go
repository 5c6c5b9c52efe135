package model

import "time"

// RawRecord is one hour of generated or ingested measurements.
// Records are immutable once produced and always ordered by timestamp.
type RawRecord struct {
	Timestamp        time.Time // UTC, hourly cadence
	PowerKW          float64   // consumption, kW
	TemperatureC     float64   // outside temperature, °C
	HumidityPct      float64   // relative humidity, %
	WindSpeedMS      float64   // wind speed, m/s
	SolarRadiationWM2 float64  // solar radiation, W/m²
	DayOfWeek        int       // 0=Monday … 6=Sunday
}

// Physical ranges every raw field is clipped to. The generator enforces
// them on output and ingest validation rejects values outside them.
const (
	PowerMinKW = 0.0
	PowerMaxKW = 120.0

	TemperatureMinC = -15.0
	TemperatureMaxC = 42.0

	HumidityMinPct = 0.0
	HumidityMaxPct = 100.0

	WindMinMS = 0.0
	WindMaxMS = 30.0

	SolarMinWM2 = 0.0
	SolarMaxWM2 = 1000.0
)

// DayOfWeekOf maps a timestamp to the 0=Monday … 6=Sunday convention
// used throughout the lab (Go's time.Weekday starts at Sunday).
func DayOfWeekOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekendDay reports whether a day-of-week value falls on Saturday or Sunday.
func IsWeekendDay(dayOfWeek int) bool {
	return dayOfWeek == 5 || dayOfWeek == 6
}

// TimeRange is a closed interval of timestamps.
type TimeRange struct {
	Start time.Time
	End   time.Time
}
