package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// GeocodeClient resolves free-text place names via the Open-Meteo geocoding API
type GeocodeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocodeClient creates a new geocoding client
func NewGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// Search resolves a free-text query to a place. A query with no match
// returns (nil, nil); transport and decoding failures return an error.
func (c *GeocodeClient) Search(ctx context.Context, query string) (*models.Place, error) {
	u := fmt.Sprintf("%s/v1/search?name=%s&count=1&language=en&format=json",
		c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("geocode: failed to decode response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return nil, nil
	}

	r := parsed.Results[0]
	return &models.Place{
		Lat:     r.Latitude,
		Lon:     r.Longitude,
		Name:    r.Name,
		Country: r.Country,
		Admin1:  r.Admin1,
	}, nil
}
