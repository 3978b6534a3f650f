package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tripcast/tripcast-backend-go/internal/models"
)

// WeatherClient fetches hourly forecasts from the Open-Meteo API
type WeatherClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewWeatherClient creates a new weather client
func NewWeatherClient(baseURL string) *WeatherClient {
	return &WeatherClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// openMeteoHourTime is the timestamp layout of Open-Meteo hourly series.
const openMeteoHourTime = "2006-01-02T15:04"

type forecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature   []float64 `json:"temperature_2m"`
		Precipitation []float64 `json:"precipitation"`
		WeatherCode   []int     `json:"weather_code"`
	} `json:"hourly"`
}

// ForecastAt fetches the forecast for the hour containing t at the given
// coordinates. Hours outside the forecast range return (nil, nil); transport
// and decoding failures return an error.
func (c *WeatherClient) ForecastAt(ctx context.Context, lat, lon float64, t time.Time) (*models.WeatherObservation, error) {
	day := t.UTC().Format("2006-01-02")
	u := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&hourly=temperature_2m,precipitation,weather_code&timezone=UTC&start_date=%s&end_date=%s",
		c.baseURL, lat, lon, day, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var parsed forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("weather: failed to decode response: %w", err)
	}

	want := t.UTC().Truncate(time.Hour).Format(openMeteoHourTime)
	for i, stamp := range parsed.Hourly.Time {
		if stamp != want {
			continue
		}
		if i >= len(parsed.Hourly.Temperature) || i >= len(parsed.Hourly.Precipitation) || i >= len(parsed.Hourly.WeatherCode) {
			return nil, nil
		}
		return &models.WeatherObservation{
			Temperature:   parsed.Hourly.Temperature[i],
			Precipitation: parsed.Hourly.Precipitation[i],
			WeatherCode:   parsed.Hourly.WeatherCode[i],
		}, nil
	}

	return nil, nil
}
