package travel

import (
	"time"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgconfig"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkgrouter"
	"github.com/ozkangu/travel-mcp/internal/travel/cache"
	"github.com/ozkangu/travel-mcp/internal/travel/geocoding"
	"github.com/ozkangu/travel-mcp/internal/travel/inbound"
	"github.com/ozkangu/travel-mcp/internal/travel/maprender"
	"github.com/ozkangu/travel-mcp/internal/travel/provider"
	"github.com/ozkangu/travel-mcp/internal/travel/usecase"
)

// Dependency is what the module needs from the app. Router may be nil when
// the server only speaks stdio.
type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

type Module struct {
	MCP *inbound.MCP
}

func New(dep Dependency) (*Module, error) {
	cfg := dep.Config

	userAgent := cfg.GetString("modules.travel.geocoding.user_agent")

	var geocoder geocoding.Geocoder = geocoding.New(geocoding.Options{
		Provider:    cfg.GetString("modules.travel.geocoding.provider"),
		MapboxToken: cfg.GetString("modules.travel.map.mapbox_token"),
		UserAgent:   userAgent,
		Timeout:     millis(cfg.GetInt("modules.travel.geocoding.timeout_ms"), 5*time.Second),
	})
	if rateLimitMs := cfg.GetInt("modules.travel.geocoding.rate_limit_ms"); rateLimitMs > 0 {
		geocoder = geocoding.NewRateLimited(geocoder, time.Duration(rateLimitMs)*time.Millisecond)
	}

	renderer := maprender.New(maprender.Config{
		Provider:    cfg.GetString("modules.travel.map.provider"),
		MapboxToken: cfg.GetString("modules.travel.map.mapbox_token"),
		UserAgent:   userAgent,
		Timeout:     millis(cfg.GetInt("modules.travel.map.timeout_ms"), 10*time.Second),
		Concurrency: cfg.GetInt("modules.travel.map.tile_concurrency"),
	})

	cacheTTL := 300 * time.Second
	if ttlSeconds := cfg.GetInt("modules.travel.cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	dependency := usecase.Dependency{
		Flights:         provider.NewSynthetic(),
		Geocoder:        geocoder,
		Renderer:        renderer,
		CacheTTL:        cacheTTL,
		ProviderTimeout: 1 * time.Second,
	}
	if cfg.GetBool("modules.travel.cache.enabled") {
		dependency.FlightCache = cache.New(usecase.CloneFlightsOutput)
		dependency.GeocodeCache = cache.New(usecase.CloneGeocodingResults)
	}

	uc := usecase.New(dependency)

	info := inbound.ServerInfo{
		Name:    cfg.GetString("app.name"),
		Version: cfg.GetString("app.version"),
	}
	mcp := inbound.NewMCP(uc, info)

	if dep.Router != nil {
		inbound.RegisterHTTPEndpoint(dep.Router, uc, mcp, info)
	}

	return &Module{MCP: mcp}, nil
}

func millis(ms int, def time.Duration) time.Duration {
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
