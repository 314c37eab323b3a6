package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// celsiusFactor approximates 5/9. Output is pinned to this constant.
const celsiusFactor = 0.5556

// MaxHours is the largest number of hourly periods rendered in one report.
const MaxHours = 24

// ForecastPeriod is one hourly slot of an NWS hourly forecast.
type ForecastPeriod struct {
	StartTime       string // RFC 3339 with offset
	Temperature     float64
	TemperatureUnit string // "F" from NWS
	WindSpeed       string // e.g. "5 mph"
	WindDirection   string // e.g. "NW"
	ShortForecast   string // e.g. "Partly Cloudy"
}

// ForecastResolver fetches the hourly forecast for a coordinate pair. The
// returned periods are in upstream (chronological) order.
type ForecastResolver interface {
	HourlyForecast(ctx context.Context, latitude, longitude string) ([]ForecastPeriod, error)
}

// Start parses the period's start time, keeping its original UTC offset.
func (p ForecastPeriod) Start() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, p.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: period start time %q: %w", ErrFormat, p.StartTime, err)
	}
	return t, nil
}

// FahrenheitToCelsius converts using the fixed 0.5556 multiplier.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * celsiusFactor
}

// RoundTemperature rounds half away from zero. Negative zero collapses to 0
// so "-0" is never displayed.
func RoundTemperature(t float64) float64 {
	r := math.Round(t)
	if r == 0 {
		return 0
	}
	return r
}
