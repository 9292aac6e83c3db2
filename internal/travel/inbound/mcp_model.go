package inbound

import "github.com/ozkangu/travel-mcp/internal/travel/entity"

type flightOfferResponse struct {
	FlightNumber    string              `json:"flightNumber"`
	Airline         string              `json:"airline"`
	AirlineLogo     string              `json:"airlineLogo"`
	Departure       flightPointResponse `json:"departure"`
	Arrival         flightPointResponse `json:"arrival"`
	Duration        string              `json:"duration"`
	DurationMinutes int                 `json:"durationMinutes"`
	Stops           int                 `json:"stops"`
	StopInfo        string              `json:"stopInfo,omitempty"`
	Price           priceResponse       `json:"price"`
	Cabin           string              `json:"cabin"`
	Aircraft        string              `json:"aircraft"`
	SeatsLeft       *int                `json:"seatsLeft,omitempty"`
}

type flightPointResponse struct {
	AirportName string `json:"airportName"`
	AirportCode string `json:"airportCode"`
	City        string `json:"city"`
	Time        string `json:"time"`
}

type priceResponse struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type geocodeResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

type reverseGeocodeResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
	Type        string  `json:"type"`
}

type nearbyResponse struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DistanceKm  float64 `json:"distanceKm"`
	Type        string  `json:"type"`
}

func mapFlightOffers(offers []entity.FlightOffer) []flightOfferResponse {
	out := make([]flightOfferResponse, 0, len(offers))
	for _, f := range offers {
		out = append(out, flightOfferResponse{
			FlightNumber:    f.FlightNumber,
			Airline:         f.Airline,
			AirlineLogo:     f.AirlineLogo,
			Departure:       flightPointResponse(f.Departure),
			Arrival:         flightPointResponse(f.Arrival),
			Duration:        f.Duration,
			DurationMinutes: f.DurationMinute,
			Stops:           f.Stops,
			StopInfo:        f.StopInfo,
			Price:           priceResponse(f.Price),
			Cabin:           f.Cabin,
			Aircraft:        f.Aircraft,
			SeatsLeft:       f.SeatsLeft,
		})
	}
	return out
}
