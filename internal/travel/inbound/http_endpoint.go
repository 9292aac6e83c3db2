package inbound

import (
	"context"
	"net/http"
)

type HTTPEndpoint struct {
	uc   uc
	info ServerInfo
}

func (h *HTTPEndpoint) Flights(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseFlightsInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Flights(ctx, input)
	if err != nil {
		return nil, err
	}

	return FlightsResponse{
		SearchCriteria: SearchCriteriaResponse{
			From:       output.Criteria.From,
			To:         output.Criteria.To,
			Date:       output.Criteria.Date,
			Passengers: output.Criteria.Passengers,
		},
		Metadata: MetadataResponse{
			TotalResults: len(output.Offers),
			CacheHit:     output.CacheHit,
		},
		Flights: mapFlightResponses(output.Offers),
	}, nil
}

func (h *HTTPEndpoint) Distance(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseDistanceInput(r)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Distance(ctx, input)
	if err != nil {
		return nil, err
	}

	return DistanceResponse{
		Distance: result.Distance,
		Unit:     string(result.Unit),
		From:     mapPoint(result.PointA),
		To:       mapPoint(result.PointB),
	}, nil
}

func (h *HTTPEndpoint) Health(context.Context, *http.Request) (any, error) {
	return HealthResponse{Status: "ok", Name: h.info.Name, Version: h.info.Version}, nil
}
