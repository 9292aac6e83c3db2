package usecase

import (
	"fmt"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/format"
)

// flightsCacheKey uses the inputs verbatim: the report quotes the raw
// origin and destination, so inputs differing only in case or padding must
// not share an entry.
func flightsCacheKey(in FlightsInput) string {
	return fmt.Sprintf("%q|%q|%q|%d", in.From, in.To, in.Date, in.Passengers)
}

func geocodeCacheKey(query, country string) string {
	return strings.ToLower(query) + "|" + strings.ToUpper(country)
}

// CloneFlightsOutput deep copies out for the cache.
func CloneFlightsOutput(out *FlightsOutput) *FlightsOutput {
	if out == nil {
		return nil
	}
	clone := *out
	clone.Offers = make([]entity.FlightOffer, len(out.Offers))
	for i, f := range out.Offers {
		if f.SeatsLeft != nil {
			seats := *f.SeatsLeft
			f.SeatsLeft = &seats
		}
		clone.Offers[i] = f
	}
	clone.Summaries = make([]format.Summary, len(out.Summaries))
	for i, s := range out.Summaries {
		if s.SeatsLeft != nil {
			seats := *s.SeatsLeft
			s.SeatsLeft = &seats
		}
		clone.Summaries[i] = s
	}
	return &clone
}

func CloneGeocodingResults(in []entity.GeocodingResult) []entity.GeocodingResult {
	if in == nil {
		return nil
	}
	out := make([]entity.GeocodingResult, len(in))
	for i, r := range in {
		if r.BoundingBox != nil {
			box := *r.BoundingBox
			r.BoundingBox = &box
		}
		out[i] = r
	}
	return out
}
