package nws

import (
	"fmt"

	"github.com/couchcryptid/yawcli/internal/domain"
)

// NWS API response types. Every field the tool relies on is a pointer so an
// absent or null value can be told apart from a zero value.

type pointsResponse struct {
	Properties *pointsProperties `json:"properties"`
}

type pointsProperties struct {
	ForecastHourly *string `json:"forecastHourly"`
}

type hourlyResponse struct {
	Properties *hourlyProperties `json:"properties"`
}

type hourlyProperties struct {
	Periods *[]period `json:"periods"`
}

type period struct {
	StartTime       *string  `json:"startTime"`
	Temperature     *float64 `json:"temperature"`
	TemperatureUnit *string  `json:"temperatureUnit"`
	WindSpeed       *string  `json:"windSpeed"`
	WindDirection   *string  `json:"windDirection"`
	ShortForecast   *string  `json:"shortForecast"`
}

// hourlyURL returns the forecastHourly link, or the path of the first
// missing field.
func (r pointsResponse) hourlyURL() (string, string) {
	if r.Properties == nil {
		return "", "properties"
	}
	if r.Properties.ForecastHourly == nil || *r.Properties.ForecastHourly == "" {
		return "", "properties.forecastHourly"
	}
	return *r.Properties.ForecastHourly, ""
}

// periods converts the response to domain periods, or returns the path of
// the first missing field.
func (r hourlyResponse) periods() ([]domain.ForecastPeriod, string) {
	if r.Properties == nil {
		return nil, "properties"
	}
	if r.Properties.Periods == nil {
		return nil, "properties.periods"
	}

	raw := *r.Properties.Periods
	out := make([]domain.ForecastPeriod, 0, len(raw))
	for i, p := range raw {
		if missing := p.missingField(); missing != "" {
			return nil, fmt.Sprintf("properties.periods[%d].%s", i, missing)
		}
		out = append(out, domain.ForecastPeriod{
			StartTime:       *p.StartTime,
			Temperature:     *p.Temperature,
			TemperatureUnit: *p.TemperatureUnit,
			WindSpeed:       *p.WindSpeed,
			WindDirection:   *p.WindDirection,
			ShortForecast:   *p.ShortForecast,
		})
	}
	return out, ""
}

func (p period) missingField() string {
	switch {
	case p.StartTime == nil:
		return "startTime"
	case p.Temperature == nil:
		return "temperature"
	case p.TemperatureUnit == nil:
		return "temperatureUnit"
	case p.WindSpeed == nil:
		return "windSpeed"
	case p.WindDirection == nil:
		return "windDirection"
	case p.ShortForecast == nil:
		return "shortForecast"
	}
	return ""
}
