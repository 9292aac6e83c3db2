package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/geo"
)

type DistanceInput struct {
	From entity.Point
	To   entity.Point
	Unit geo.Unit
}

func (u *Usecase) Distance(_ context.Context, in DistanceInput) (geo.DistanceResult, error) {
	unit := in.Unit
	if unit == "" {
		unit = geo.Kilometers
	}
	return geo.Distance(in.From, in.To, unit), nil
}

type GeocodeInput struct {
	Query   string
	Country string
}

// Geocode returns at most five candidates for the query, optionally limited
// to one country.
func (u *Usecase) Geocode(ctx context.Context, in GeocodeInput) ([]entity.GeocodingResult, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, pkgerror.NewBusiness("address is required", pkgerror.CodeInvalidInput)
	}
	country := strings.TrimSpace(in.Country)

	key := geocodeCacheKey(query, country)
	if u.geocodeCache != nil {
		if cached, ok := u.geocodeCache.Get(key); ok {
			return cached, nil
		}
	}

	results, err := u.geocoder.Geocode(ctx, query, country)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []entity.GeocodingResult{}
	}

	if u.geocodeCache != nil {
		u.geocodeCache.Set(key, results, u.cacheTTL)
	}
	return results, nil
}

func (u *Usecase) ReverseGeocode(ctx context.Context, at entity.Point) (entity.GeocodingResult, error) {
	return u.geocoder.Reverse(ctx, at.Latitude, at.Longitude)
}

type NearbyInput struct {
	Center   entity.Point
	Query    string
	RadiusKm float64
}

type NearbyPlace struct {
	Place      entity.GeocodingResult
	DistanceKm float64
}

// Nearby geocodes the query without a country filter and keeps the matches
// within the radius, nearest first.
func (u *Usecase) Nearby(ctx context.Context, in NearbyInput) ([]NearbyPlace, error) {
	results, err := u.Geocode(ctx, GeocodeInput{Query: in.Query})
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyPlace, 0, len(results))
	for _, r := range results {
		d := geo.Distance(in.Center, entity.Point{Latitude: r.Latitude, Longitude: r.Longitude}, geo.Kilometers)
		if d.Distance > in.RadiusKm {
			continue
		}
		nearby = append(nearby, NearbyPlace{Place: r, DistanceKm: d.Distance})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}
