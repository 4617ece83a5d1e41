package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"pizzeria/internal/pkg/errs"
)

// Config holds the endpoints and shop position for the route estimator.
type Config struct {
	// NominatimURL is the base URL of the geocoding service.
	NominatimURL string

	// OSRMURL is the base URL of the routing service.
	OSRMURL string

	// ShopLat and ShopLon are the fixed coordinates of the shop.
	ShopLat string
	ShopLon string

	// Timeout bounds every outgoing request.
	Timeout time.Duration
}

// Client implements ports.RouteEstimator against the public Nominatim and
// OSRM services: the free-text location is geocoded first, then a driving
// route from the shop is requested and its duration converted to minutes.
//
// The estimate is informational only; callers treat any error as a
// non-fatal warning and continue without an estimate.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewClient creates a route estimator client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "geo_client"),
	}
}

// geocodeResult is the subset of the Nominatim search response we read.
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// routeResponse is the subset of the OSRM route response we read.
type routeResponse struct {
	Routes []struct {
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Estimate returns the estimated driving time from the shop to the
// location, in minutes.
func (c *Client) Estimate(ctx context.Context, location string) (int, error) {
	if location == "" {
		return 0, errs.NewValueIsRequiredError("location")
	}

	point, err := c.geocode(ctx, location)
	if err != nil {
		return 0, fmt.Errorf("geocoding %q: %w", location, err)
	}

	minutes, err := c.route(ctx, point)
	if err != nil {
		return 0, fmt.Errorf("routing to %q: %w", location, err)
	}

	c.logger.Debug("Delivery time estimated", "location", location, "minutes", minutes)
	return minutes, nil
}

// geocode resolves the free-text location to coordinates via Nominatim.
func (c *Client) geocode(ctx context.Context, location string) (geocodeResult, error) {
	reqURL := fmt.Sprintf("%s/search?format=json&q=%s", c.cfg.NominatimURL, url.QueryEscape(location))

	var results []geocodeResult
	if err := c.getJSON(ctx, reqURL, &results); err != nil {
		return geocodeResult{}, err
	}
	if len(results) == 0 {
		return geocodeResult{}, errs.NewObjectNotFoundError("location", location)
	}
	return results[0], nil
}

// route asks OSRM for a driving route from the shop to the point and
// converts the duration from seconds to minutes.
func (c *Client) route(ctx context.Context, point geocodeResult) (int, error) {
	// OSRM expects lon,lat pairs.
	reqURL := fmt.Sprintf("%s/route/v1/driving/%s,%s;%s,%s?overview=false",
		c.cfg.OSRMURL, c.cfg.ShopLon, c.cfg.ShopLat, point.Lon, point.Lat)

	var response routeResponse
	if err := c.getJSON(ctx, reqURL, &response); err != nil {
		return 0, err
	}
	if len(response.Routes) == 0 {
		return 0, errs.NewObjectNotFoundError("route", fmt.Sprintf("%s,%s", point.Lat, point.Lon))
	}
	return int(response.Routes[0].Duration / 60), nil
}

// getJSON performs a GET request and decodes the JSON body into target.
func (c *Client) getJSON(ctx context.Context, reqURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
