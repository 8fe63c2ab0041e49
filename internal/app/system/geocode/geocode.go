// Package geocode resolves street addresses and postal codes to coordinates
// through a MapQuest-style geocoding HTTP API. Providers return a ranked list
// of candidate matches; callers take the first.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// ErrNoResults means the provider answered but had no candidate for the
// query, which callers treat as bad input rather than a provider failure.
var ErrNoResults = errors.New("geocode: no results")

// Location is one candidate match from the provider.
type Location struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Client calls the geocoding provider. The zero value is not usable; use New.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

// New constructs a Client for the provider at baseURL. The provider's
// response format follows the MapQuest geocoding API shape.
func New(baseURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
		log:     logger,
	}
}

// providerResponse mirrors the MapQuest geocoding response envelope.
type providerResponse struct {
	Results []struct {
		Locations []struct {
			Street  string `json:"street"`
			City    string `json:"adminArea5"`
			State   string `json:"adminArea3"`
			Zipcode string `json:"postalCode"`
			Country string `json:"adminArea1"`
			LatLng  struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

// Geocode resolves a free-form address or postal code. It returns the
// provider's candidate list in rank order; an empty query, transport
// failure, non-200 status, or zero candidates are all errors (the caller
// propagates the first failure, no retries).
func (c *Client) Geocode(ctx context.Context, address string) ([]Location, error) {
	if address == "" {
		return nil, fmt.Errorf("geocode: empty address")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad provider url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("location", address)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}

	var out []Location
	for _, res := range body.Results {
		for _, loc := range res.Locations {
			out = append(out, Location{
				Latitude:         loc.LatLng.Lat,
				Longitude:        loc.LatLng.Lng,
				FormattedAddress: formatAddress(loc.Street, loc.City, loc.State, loc.Zipcode),
				Street:           loc.Street,
				City:             loc.City,
				State:            loc.State,
				Zipcode:          loc.Zipcode,
				Country:          loc.Country,
			})
		}
	}
	if len(out) == 0 {
		c.log.Warn("geocoder returned no candidates", zap.String("address", address))
		return nil, fmt.Errorf("%w for %q", ErrNoResults, address)
	}
	return out, nil
}

func formatAddress(parts ...string) string {
	joined := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if joined != "" {
			joined += ", "
		}
		joined += p
	}
	return joined
}
