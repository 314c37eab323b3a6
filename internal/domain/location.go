package domain

import (
	"context"
	"strings"
)

// Location is the caller's approximate position as scraped from the
// geolocation page. Coordinates are kept as text so the precision the page
// reported is preserved in outgoing NWS URLs.
type Location struct {
	Latitude  string
	Longitude string
	Country   string
	Region    string
	City      string
}

// LocationResolver determines the caller's location.
type LocationResolver interface {
	Resolve(ctx context.Context) (Location, error)
}

// IntegerPart returns the text before the first "." in a decimal coordinate,
// e.g. "39.7456" -> "39", "-97" -> "-97", "" -> "".
func IntegerPart(coord string) string {
	whole, _, _ := strings.Cut(coord, ".")
	return whole
}
