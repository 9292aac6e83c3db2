// Package geocoding turns place names into coordinates and back using
// Nominatim or Mapbox.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

const (
	defaultUserAgent = "travel-mcp-map-server/1.0"
	defaultTimeout   = 5 * time.Second
	resultLimit      = "5"
)

var ErrNoResult = pkgerror.NewBusiness("no results found for reverse geocoding", pkgerror.CodeNotFound)

type Geocoder interface {
	Geocode(ctx context.Context, query, country string) ([]entity.GeocodingResult, error)
	Reverse(ctx context.Context, lat, lon float64) (entity.GeocodingResult, error)
}

type Options struct {
	Provider    string
	MapboxToken string
	UserAgent   string
	Timeout     time.Duration
}

// New picks Mapbox when it is requested and a token is present, and
// Nominatim otherwise.
func New(opts Options) Geocoder {
	client := &http.Client{Timeout: opts.Timeout}
	if opts.Timeout <= 0 {
		client.Timeout = defaultTimeout
	}
	if strings.EqualFold(opts.Provider, "mapbox") && opts.MapboxToken != "" {
		return NewMapbox(client, opts.MapboxToken)
	}
	return NewNominatim(client, opts.UserAgent)
}

func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return pkgerror.Wrap(err, "geocoding request failed", pkgerror.CodeUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return pkgerror.Wrap(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			"geocoding service returned an error", pkgerror.CodeUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return pkgerror.Wrap(err, "geocoding response could not be decoded", pkgerror.CodeUpstream)
	}
	return nil
}
