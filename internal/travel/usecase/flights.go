package usecase

import (
	"context"
	"log/slog"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/format"
	"github.com/ozkangu/travel-mcp/internal/travel/provider"
)

type FlightsInput struct {
	From       string
	To         string
	Date       string
	Passengers int
}

type FlightsOutput struct {
	Criteria  SearchCriteria
	Offers    []entity.FlightOffer
	Summaries []format.Summary
	Text      string
	CacheHit  bool
}

type SearchCriteria struct {
	From       string
	To         string
	Date       string
	Passengers int
}

// Flights synthesizes offers for the route and renders them. The provider's
// output is a pure function of the input, so cached results are identical to
// fresh ones.
func (u *Usecase) Flights(ctx context.Context, in FlightsInput) (*FlightsOutput, error) {
	if in.Passengers == 0 {
		in.Passengers = 1
	}

	key := flightsCacheKey(in)
	if u.flightCache != nil {
		if cached, ok := u.flightCache.Get(key); ok {
			cached.CacheHit = true
			return cached, nil
		}
	}

	searchCtx := ctx
	if u.providerTimeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, u.providerTimeout)
		defer cancel()
	}

	offers, err := u.flights.Search(searchCtx, provider.SearchRequest{
		From:       in.From,
		To:         in.To,
		Date:       in.Date,
		Passengers: in.Passengers,
	})
	if err != nil {
		slog.ErrorContext(ctx, "flight provider failed", "provider", u.flights.Name(), "error", err)
		return nil, err
	}
	if offers == nil {
		offers = []entity.FlightOffer{}
	}

	output := &FlightsOutput{
		Criteria: SearchCriteria{
			From:       in.From,
			To:         in.To,
			Date:       in.Date,
			Passengers: in.Passengers,
		},
		Offers:    offers,
		Summaries: format.Summaries(offers),
		Text:      format.FlightResults(offers, in.From, in.To, in.Date),
	}

	if u.flightCache != nil {
		u.flightCache.Set(key, output, u.cacheTTL)
	}
	return output, nil
}
