package usecase

import (
	"context"
	"time"

	"github.com/ozkangu/travel-mcp/internal/travel/cache"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/geocoding"
	"github.com/ozkangu/travel-mcp/internal/travel/maprender"
	"github.com/ozkangu/travel-mcp/internal/travel/provider"
)

type MapRenderer interface {
	Render(ctx context.Context, opts maprender.Options) ([]byte, error)
}

// Dependency wires the usecase. A nil cache disables caching for that
// lookup.
type Dependency struct {
	Flights         provider.Provider
	Geocoder        geocoding.Geocoder
	Renderer        MapRenderer
	FlightCache     *cache.Cache[*FlightsOutput]
	GeocodeCache    *cache.Cache[[]entity.GeocodingResult]
	CacheTTL        time.Duration
	ProviderTimeout time.Duration
}

type Usecase struct {
	flights         provider.Provider
	geocoder        geocoding.Geocoder
	renderer        MapRenderer
	flightCache     *cache.Cache[*FlightsOutput]
	geocodeCache    *cache.Cache[[]entity.GeocodingResult]
	cacheTTL        time.Duration
	providerTimeout time.Duration
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		flights:         dep.Flights,
		geocoder:        dep.Geocoder,
		renderer:        dep.Renderer,
		flightCache:     dep.FlightCache,
		geocodeCache:    dep.GeocodeCache,
		cacheTTL:        dep.CacheTTL,
		providerTimeout: dep.ProviderTimeout,
	}
}
