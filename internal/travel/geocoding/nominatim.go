package geocoding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org"

type Nominatim struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewNominatim(client *http.Client, userAgent string) *Nominatim {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Nominatim{client: client, baseURL: nominatimBaseURL, userAgent: userAgent}
}

// WithBaseURL points the client at another Nominatim instance.
func (n *Nominatim) WithBaseURL(u string) *Nominatim {
	n.baseURL = strings.TrimRight(u, "/")
	return n
}

type nominatimPlace struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	Type        string   `json:"type"`
	Importance  float64  `json:"importance"`
	BoundingBox []string `json:"boundingbox"`
	Error       string   `json:"error"`
}

func (n *Nominatim) Geocode(ctx context.Context, query, country string) ([]entity.GeocodingResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", resultLimit)
	params.Set("addressdetails", "1")
	if country != "" {
		params.Set("countrycodes", strings.ToLower(country))
	}

	var places []nominatimPlace
	if err := getJSON(ctx, n.client, n.baseURL+"/search?"+params.Encode(), n.header(), &places); err != nil {
		return nil, err
	}

	results := make([]entity.GeocodingResult, 0, len(places))
	for _, p := range places {
		results = append(results, p.toResult())
	}
	return results, nil
}

func (n *Nominatim) Reverse(ctx context.Context, lat, lon float64) (entity.GeocodingResult, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	var place nominatimPlace
	if err := getJSON(ctx, n.client, n.baseURL+"/reverse?"+params.Encode(), n.header(), &place); err != nil {
		return entity.GeocodingResult{}, err
	}
	if place.Error != "" {
		return entity.GeocodingResult{}, pkgerror.NewBusiness("reverse geocoding failed: "+place.Error, pkgerror.CodeNotFound)
	}
	return place.toResult(), nil
}

func (n *Nominatim) header() http.Header {
	return http.Header{"User-Agent": []string{n.userAgent}}
}

func (p nominatimPlace) toResult() entity.GeocodingResult {
	r := entity.GeocodingResult{
		Latitude:    parseFloat(p.Lat),
		Longitude:   parseFloat(p.Lon),
		DisplayName: p.DisplayName,
		Type:        p.Type,
		Importance:  p.Importance,
	}
	// Nominatim orders the box as south, north, west, east.
	if len(p.BoundingBox) == 4 {
		r.BoundingBox = &entity.BoundingBox{
			South: parseFloat(p.BoundingBox[0]),
			North: parseFloat(p.BoundingBox[1]),
			West:  parseFloat(p.BoundingBox[2]),
			East:  parseFloat(p.BoundingBox[3]),
		}
	}
	return r
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
