// Package domain models the location and hourly forecast data that yawcli
// resolves and renders.
//
// # Data Sources
//
// Location comes from the public iplocation.com page. The page is HTML with
// no versioned contract, so fields are scraped from fixed markup positions:
//
//	td.lat             latitude, decimal degrees, e.g. "39.7456"
//	td.lng             longitude, decimal degrees, e.g. "-97.0892"
//	span.country_name  "United States"
//	span.region_name   "Kansas"
//	td.city            "Beloit"
//
// Forecasts come from the National Weather Service API (api.weather.gov) in
// two steps:
//
//	GET /points/{lat},{lon}   -> properties.forecastHourly (URL)
//	GET {forecastHourly}      -> properties.periods[]
//
// The NWS API only covers the United States and its territories. Points
// outside that area come back as 404 from /points.
//
// # Parsing Policies
//
// The two upstreams are parsed under different policies on purpose:
//
//	Location page: lenient. A missing element yields "" and never fails.
//	NWS JSON:      strict. Any absent or null required field is ErrDecode.
//
// # Units
//
// NWS hourly periods report temperature in Fahrenheit ("F"). Celsius output
// uses the fixed multiplier 0.5556 (see [FahrenheitToCelsius]), not 5/9.
//
// # Time
//
// Period start times are RFC 3339 with the forecast office's UTC offset, e.g.
// "2024-01-01T14:00:00-06:00". They are displayed in that offset's civil time
// and never converted to the caller's zone.
package domain
