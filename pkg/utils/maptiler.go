package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const maptilerAPIHost = "https://api.maptiler.com/geocoding"

// GeocodingClient resolves a free-text place query against a geocoding
// provider and returns the provider's raw JSON payload.
type GeocodingClient interface {
	Geocoding(ctx context.Context, query string, exact bool) (json.RawMessage, error)
}

// MaptilerClient forwards geocoding queries to the Maptiler API.
type MaptilerClient struct {
	apiKey     string
	apiHost    string
	httpClient *http.Client
}

func NewMaptilerClient(apiKey string) *MaptilerClient {
	return &MaptilerClient{
		apiKey:     apiKey,
		apiHost:    maptilerAPIHost,
		httpClient: http.DefaultClient,
	}
}

func (m *MaptilerClient) Geocoding(ctx context.Context, query string, exact bool) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("proximity", "ip")
	params.Set("fuzzyMatch", fmt.Sprintf("%t", !exact))
	params.Set("key", m.apiKey)

	endpoint := fmt.Sprintf("%s/%s?%s", m.apiHost, url.PathEscape(query), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("maptiler returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
