package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/yawcli/internal/domain"
	"github.com/couchcryptid/yawcli/internal/observability"
)

// maxErrorBody caps how much of an error response ends up in the message.
const maxErrorBody = 512

// UserAgent builds the identifying header value the NWS API requires.
func UserAgent(version string) string {
	return fmt.Sprintf("yawcli/%s (github.com/couchcryptid/yawcli)", version)
}

// Client implements domain.ForecastResolver using the NWS API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an NWS API client.
func NewClient(userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   "https://api.weather.gov",
		userAgent: userAgent,
		metrics:   metrics,
		logger:    logger,
	}
}

// HourlyForecast resolves the coordinate to its hourly forecast link, then
// fetches the periods from it. Coordinates are used verbatim in the URL.
func (c *Client) HourlyForecast(ctx context.Context, latitude, longitude string) ([]domain.ForecastPeriod, error) {
	pointsURL := fmt.Sprintf("%s/points/%s,%s", c.baseURL, url.PathEscape(latitude), url.PathEscape(longitude))

	body, err := c.get(ctx, pointsURL, observability.UpstreamNWSPoints)
	if err != nil {
		return nil, err
	}

	var points pointsResponse
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("decode points response: %w: %w", domain.ErrDecode, err)
	}
	hourlyURL, missing := points.hourlyURL()
	if missing != "" {
		return nil, fmt.Errorf("decode points response: %w: missing required field %q", domain.ErrDecode, missing)
	}
	c.logger.Debug("forecast link resolved", "points_url", pointsURL, "hourly_url", hourlyURL)

	body, err = c.get(ctx, hourlyURL, observability.UpstreamNWSHourly)
	if err != nil {
		return nil, err
	}

	var hourly hourlyResponse
	if err := json.Unmarshal(body, &hourly); err != nil {
		return nil, fmt.Errorf("decode hourly forecast: %w: %w", domain.ErrDecode, err)
	}
	periods, missing := hourly.periods()
	if missing != "" {
		return nil, fmt.Errorf("decode hourly forecast: %w: missing required field %q", domain.ErrDecode, missing)
	}

	c.logger.Debug("hourly forecast fetched", "periods", len(periods))
	return periods, nil
}

func (c *Client) get(ctx context.Context, fullURL, upstream string) (body []byte, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveRequest(upstream, err, time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w: %w", upstream, domain.ErrNetwork, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w: %w", upstream, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%s request: %w: nws API error: status %d: %s", upstream, domain.ErrNetwork, resp.StatusCode, excerpt)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w: %w", upstream, domain.ErrNetwork, err)
	}
	return body, nil
}
