package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

const mapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

type Mapbox struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewMapbox(client *http.Client, token string) *Mapbox {
	return &Mapbox{client: client, baseURL: mapboxBaseURL, token: token}
}

func (m *Mapbox) WithBaseURL(u string) *Mapbox {
	m.baseURL = strings.TrimRight(u, "/")
	return m
}

type mapboxResponse struct {
	Features []struct {
		Center    []float64 `json:"center"`
		PlaceName string    `json:"place_name"`
		PlaceType []string  `json:"place_type"`
		Relevance float64   `json:"relevance"`
		BBox      []float64 `json:"bbox"`
	} `json:"features"`
}

func (m *Mapbox) Geocode(ctx context.Context, query, country string) ([]entity.GeocodingResult, error) {
	params := url.Values{}
	params.Set("access_token", m.token)
	params.Set("limit", resultLimit)
	if country != "" {
		params.Set("country", strings.ToLower(country))
	}

	var resp mapboxResponse
	endpoint := fmt.Sprintf("%s/%s.json?%s", m.baseURL, url.PathEscape(query), params.Encode())
	if err := getJSON(ctx, m.client, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.results(), nil
}

func (m *Mapbox) Reverse(ctx context.Context, lat, lon float64) (entity.GeocodingResult, error) {
	params := url.Values{}
	params.Set("access_token", m.token)

	var resp mapboxResponse
	coords := strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
	endpoint := fmt.Sprintf("%s/%s.json?%s", m.baseURL, coords, params.Encode())
	if err := getJSON(ctx, m.client, endpoint, nil, &resp); err != nil {
		return entity.GeocodingResult{}, err
	}

	results := resp.results()
	if len(results) == 0 {
		return entity.GeocodingResult{}, ErrNoResult
	}
	return results[0], nil
}

func (r mapboxResponse) results() []entity.GeocodingResult {
	out := make([]entity.GeocodingResult, 0, len(r.Features))
	for _, f := range r.Features {
		if len(f.Center) < 2 {
			continue
		}
		res := entity.GeocodingResult{
			Longitude:   f.Center[0],
			Latitude:    f.Center[1],
			DisplayName: f.PlaceName,
			Importance:  f.Relevance,
		}
		if len(f.PlaceType) > 0 {
			res.Type = f.PlaceType[0]
		}
		// Mapbox orders the box as west, south, east, north.
		if len(f.BBox) == 4 {
			res.BoundingBox = &entity.BoundingBox{West: f.BBox[0], South: f.BBox[1], East: f.BBox[2], North: f.BBox[3]}
		}
		out = append(out, res)
	}
	return out
}
