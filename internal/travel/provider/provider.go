package provider

import (
	"context"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

// SearchRequest carries the caller's raw origin and destination; providers
// resolve them against their own airport network.
type SearchRequest struct {
	From       string
	To         string
	Date       string
	Passengers int
}

type Provider interface {
	Name() string
	Search(ctx context.Context, req SearchRequest) ([]entity.FlightOffer, error)
}
