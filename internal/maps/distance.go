// Package maps wraps the Google Distance Matrix API used to price transfers
// by road distance.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type DistanceResult struct {
	DistanceKm      float64 `json:"distanceKm"`
	DistanceText    string  `json:"distanceText"`
	DurationMinutes int     `json:"durationMinutes"`
	DurationText    string  `json:"durationText"`
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance *struct {
				Text  string `json:"text"`
				Value int64  `json:"value"` // meters
			} `json:"distance"`
			Duration *struct {
				Text  string `json:"text"`
				Value int64  `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Distance resolves driving distance and duration between two addresses.
func (c *Client) Distance(ctx context.Context, origin, destination string) (DistanceResult, error) {
	if c.APIKey == "" {
		return DistanceResult{}, fmt.Errorf("clé Google Maps non configurée")
	}

	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("key", c.APIKey)
	q.Set("mode", "driving")
	q.Set("language", "fr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return DistanceResult{}, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("appel Distance Matrix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DistanceResult{}, fmt.Errorf("Distance Matrix HTTP %d", resp.StatusCode)
	}

	var data matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return DistanceResult{}, err
	}
	if data.Status != "OK" {
		return DistanceResult{}, fmt.Errorf("Distance Matrix status %s", data.Status)
	}
	if len(data.Rows) == 0 || len(data.Rows[0].Elements) == 0 {
		return DistanceResult{}, fmt.Errorf("aucun résultat pour ce trajet")
	}

	el := data.Rows[0].Elements[0]
	if el.Status != "OK" || el.Distance == nil || el.Duration == nil {
		return DistanceResult{}, fmt.Errorf("aucun résultat pour ce trajet")
	}

	km := float64(el.Distance.Value) / 1000.0
	return DistanceResult{
		DistanceKm:      math.Round(km*100) / 100,
		DistanceText:    el.Distance.Text,
		DurationMinutes: int(math.Ceil(float64(el.Duration.Value) / 60.0)),
		DurationText:    el.Duration.Text,
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
