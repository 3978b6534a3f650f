package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// RouteClient fetches drivable routes from an OSRM server
type RouteClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRouteClient creates a new routing client
func NewRouteClient(baseURL string) *RouteClient {
	return &RouteClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat] pairs
		} `json:"geometry"`
	} `json:"routes"`
}

// Route fetches a driving route through the given waypoints in order.
// When OSRM reports that no drivable path exists, Route returns (nil, nil);
// transport and decoding failures return an error.
func (c *RouteClient) Route(ctx context.Context, waypoints []models.GeoPoint) (*models.Route, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("route: need at least 2 waypoints, got %d", len(waypoints))
	}

	coords := make([]string, len(waypoints))
	for i, w := range waypoints {
		coords[i] = fmt.Sprintf("%f,%f", w.Lon, w.Lat)
	}
	u := fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=geojson",
		c.baseURL, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("route: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route: request failed: %w", err)
	}
	defer resp.Body.Close()

	// OSRM answers NoRoute with a 400, so decode before checking the status.
	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("route: failed to decode response: %w", err)
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, nil
	}

	r := parsed.Routes[0]
	geometry := make([]models.GeoPoint, 0, len(r.Geometry.Coordinates))
	for _, pair := range r.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, models.GeoPoint{Lat: pair[1], Lon: pair[0]})
	}

	return &models.Route{
		Geometry:        geometry,
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}, nil
}
