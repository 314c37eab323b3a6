package iplocation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/couchcryptid/yawcli/internal/domain"
	"github.com/couchcryptid/yawcli/internal/observability"
)

// Markup positions of each location field on the iplocation.com page.
const (
	selectorLatitude  = "td.lat"
	selectorLongitude = "td.lng"
	selectorCountry   = "span.country_name"
	selectorRegion    = "span.region_name"
	selectorCity      = "td.city"
)

// Client implements domain.LocationResolver by scraping iplocation.com.
type Client struct {
	httpClient *http.Client
	pageURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an iplocation scraper.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		pageURL: "https://iplocation.com/",
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve fetches the geolocation page for the caller's public IP and
// extracts the location fields. Missing fields are left empty; only a
// failed request or an unreadable body is an error.
func (c *Client) Resolve(ctx context.Context) (domain.Location, error) {
	body, err := c.fetch(ctx)
	if err != nil {
		return domain.Location{}, err
	}

	loc, err := ParseLocation(bytes.NewReader(body))
	if err != nil {
		return domain.Location{}, err
	}

	c.logger.Debug("location resolved",
		"city", loc.City,
		"region", loc.Region,
		"country", loc.Country,
		"lat", loc.Latitude,
		"lon", loc.Longitude,
	)
	return loc, nil
}

func (c *Client) fetch(ctx context.Context) (body []byte, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveRequest(observability.UpstreamIPLocation, err, time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create location request: %w: %w", domain.ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location request: %w: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	// The page is parsed whatever the status; a changed or error page just
	// yields empty fields.
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected location page status", "status", resp.StatusCode, "url", c.pageURL)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read location page: %w: %w", domain.ErrNetwork, err)
	}
	return body, nil
}

// ParseLocation extracts location fields from an iplocation.com HTML
// document. For each field the last matching element in document order
// wins; a field with no match stays empty.
func ParseLocation(r io.Reader) (domain.Location, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.Location{}, fmt.Errorf("read location page: %w: %w", domain.ErrNetwork, err)
	}

	return domain.Location{
		Latitude:  lastText(doc, selectorLatitude),
		Longitude: lastText(doc, selectorLongitude),
		Country:   lastText(doc, selectorCountry),
		Region:    lastText(doc, selectorRegion),
		City:      lastText(doc, selectorCity),
	}, nil
}

func lastText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).Last().Text())
}
