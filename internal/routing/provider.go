package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ProviderRoute is one geometry returned by the external routing provider
type ProviderRoute struct {
	DistanceMeters  float64
	DurationSeconds float64
	Coords          [][]float64 // [lon, lat]
}

// Provider supplies road-network route geometries between two points
type Provider interface {
	Routes(ctx context.Context, fromLat, fromLon, toLat, toLon float64, alternatives bool) ([]ProviderRoute, error)
}

// ErrNoRoute is returned when the provider answers but has no route.
// Callers treat it like any other provider failure and fall back.
var ErrNoRoute = errors.New("provider returned no route")

// OSRMClient queries an OSRM instance for cycling routes
type OSRMClient struct {
	baseURL    string
	profile    string
	httpClient *http.Client
}

// NewOSRMClient creates a client for the given OSRM base URL with a bounded
// request timeout
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	return &OSRMClient{
		baseURL: baseURL,
		profile: "bike",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Routes fetches route alternatives from OSRM. The request is cancelled when
// ctx is, so an aborted inbound request releases the outbound connection.
func (c *OSRMClient) Routes(ctx context.Context, fromLat, fromLon, toLat, toLon float64, alternatives bool) ([]ProviderRoute, error) {
	alt := "false"
	if alternatives {
		alt = "true"
	}
	url := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson&alternatives=%s&steps=true",
		c.baseURL, c.profile, fromLon, fromLat, toLon, toLat, alt,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, ErrNoRoute
	}

	routes := make([]ProviderRoute, 0, len(body.Routes))
	for _, r := range body.Routes {
		routes = append(routes, ProviderRoute{
			DistanceMeters:  r.Distance,
			DurationSeconds: r.Duration,
			Coords:          r.Geometry.Coordinates,
		})
	}
	return routes, nil
}
