// Package report renders a resolved location and its hourly forecast as the
// terminal report printed by yawcli.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/couchcryptid/yawcli/internal/domain"
)

// Formatter writes forecast reports. The zero value is ready to use.
type Formatter struct{}

// Write renders the report to w one line at a time. It returns how many
// period lines were written; on a domain.ErrFormat failure the lines before
// the bad period have already been written.
func (Formatter) Write(w io.Writer, loc domain.Location, periods []domain.ForecastPeriod, opts domain.DisplayOptions) (int, error) {
	n := opts.EffectiveHours(len(periods))

	if _, err := fmt.Fprintf(w, "%s, %s | %s (%s, %s)\n",
		loc.City, loc.Region, loc.Country,
		domain.IntegerPart(loc.Latitude), domain.IntegerPart(loc.Longitude),
	); err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintf(w, "Weather for the next %d hour(s):\n", n); err != nil {
		return 0, err
	}

	for i, p := range periods[:n] {
		line, err := formatPeriod(i, p, opts)
		if err != nil {
			return i, err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return i, err
		}
	}
	return n, nil
}

func formatPeriod(index int, p domain.ForecastPeriod, opts domain.DisplayOptions) (string, error) {
	start, err := p.Start()
	if err != nil {
		return "", err
	}

	temp, unit := p.Temperature, p.TemperatureUnit
	if opts.Celsius {
		temp, unit = domain.FahrenheitToCelsius(temp), "C"
	}

	when := start.Format("Mon 3pm")
	tempText := "Temp: " + strconv.FormatFloat(domain.RoundTemperature(temp), 'f', 0, 64) + "°" + unit
	condText := "Conditions: " + p.ShortForecast
	windText := "Wind: " + p.WindSpeed + " " + p.WindDirection

	if !opts.Color {
		return fmt.Sprintf("  %s:  [ %s ]  [ %s ]  [ %s ]", when, tempText, condText, windText), nil
	}

	s := styleFor(index)
	return fmt.Sprintf("  %s:  %s%s%s", when,
		s.paint(s.temp, " "+tempText+" "),
		s.paint(s.conditions, " "+condText+" "),
		s.paint(s.wind, " "+windText+" "),
	), nil
}
