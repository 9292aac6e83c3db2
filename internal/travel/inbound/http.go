package inbound

import (
	"context"
	"net/http"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgrouter"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/geo"
	"github.com/ozkangu/travel-mcp/internal/travel/maprender"
	"github.com/ozkangu/travel-mcp/internal/travel/usecase"
)

type uc interface {
	Flights(ctx context.Context, in usecase.FlightsInput) (*usecase.FlightsOutput, error)
	Distance(ctx context.Context, in usecase.DistanceInput) (geo.DistanceResult, error)
	Geocode(ctx context.Context, in usecase.GeocodeInput) ([]entity.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, at entity.Point) (entity.GeocodingResult, error)
	Nearby(ctx context.Context, in usecase.NearbyInput) ([]usecase.NearbyPlace, error)
	RenderMap(ctx context.Context, opts maprender.Options) ([]byte, error)
}

// ServerInfo identifies the server in health checks and the MCP handshake.
type ServerInfo struct {
	Name    string
	Version string
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, mcp *MCP, info ServerInfo) {
	end := &HTTPEndpoint{uc: uc, info: info}

	r.GET("/health", end.Health)
	r.GET("/flights", end.Flights)
	r.GET("/distance", end.Distance)
	r.Native(http.MethodPost, "/mcp", mcp)
}
