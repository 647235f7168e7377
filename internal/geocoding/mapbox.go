package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const mapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxProvider geocodes free-text queries through the Mapbox forward
// geocoding API, constrained to US results with at most one match.
type MapboxProvider struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewMapboxProvider creates a provider using the given access token.
func NewMapboxProvider(token string) *MapboxProvider {
	return &MapboxProvider{
		token:   token,
		baseURL: mapboxBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// mapboxResponse is the subset of the Mapbox geocoding payload we read.
// Feature centers are [longitude, latitude].
type mapboxResponse struct {
	Features []struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

// Geocode issues a single forward-geocoding request. Returns (nil, nil)
// when the API answers with no features; every other failure is an
// error. No retries.
func (p *MapboxProvider) Geocode(ctx context.Context, query string) (*LatLng, error) {
	params := url.Values{}
	params.Add("access_token", p.token)
	params.Add("country", "US")
	params.Add("limit", "1")

	reqURL := fmt.Sprintf("%s/%s.json?%s", p.baseURL, url.PathEscape(query), params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mapbox API returned status %d", resp.StatusCode)
	}

	var result mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Features) == 0 {
		return nil, nil
	}

	center := result.Features[0].Center
	if len(center) != 2 {
		return nil, fmt.Errorf("malformed feature center in mapbox response")
	}

	return &LatLng{Lat: center[1], Lng: center[0]}, nil
}
