package inbound

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/format"
	"github.com/ozkangu/travel-mcp/internal/travel/geo"
	"github.com/ozkangu/travel-mcp/internal/travel/usecase"
)

func parseFlightsInput(r *http.Request) (usecase.FlightsInput, error) {
	q := r.URL.Query()

	from := strings.TrimSpace(firstNotEmpty(q.Get("from"), q.Get("origin")))
	to := strings.TrimSpace(firstNotEmpty(q.Get("to"), q.Get("destination")))
	if from == "" || to == "" {
		return usecase.FlightsInput{}, pkgerror.NewBusiness("from and to are required", pkgerror.CodeInvalidInput)
	}

	date := strings.TrimSpace(q.Get("date"))
	if !isISODate(date) {
		return usecase.FlightsInput{}, pkgerror.NewBusiness("date must be in YYYY-MM-DD format", pkgerror.CodeInvalidInput)
	}

	passengers := defaultPassengers
	if value := strings.TrimSpace(q.Get("passengers")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < minPassengers || parsed > maxPassengers {
			return usecase.FlightsInput{}, pkgerror.NewBusiness("passengers must be between 1 and 9", pkgerror.CodeInvalidInput)
		}
		passengers = parsed
	}

	return usecase.FlightsInput{From: from, To: to, Date: date, Passengers: passengers}, nil
}

func parseDistanceInput(r *http.Request) (usecase.DistanceInput, error) {
	q := r.URL.Query()

	var coords [4]float64
	for i, key := range []string{"lat1", "lon1", "lat2", "lon2"} {
		value, err := strconv.ParseFloat(strings.TrimSpace(q.Get(key)), 64)
		if err != nil {
			return usecase.DistanceInput{}, pkgerror.NewBusiness("invalid "+key, pkgerror.CodeInvalidInput)
		}
		coords[i] = value
	}
	if err := checkLatLon(coords[0], coords[1]); err != nil {
		return usecase.DistanceInput{}, err
	}
	if err := checkLatLon(coords[2], coords[3]); err != nil {
		return usecase.DistanceInput{}, err
	}

	unit, err := geo.ParseUnit(q.Get("unit"))
	if err != nil {
		return usecase.DistanceInput{}, pkgerror.NewBusiness("unit must be one of km, mi, m", pkgerror.CodeInvalidInput)
	}

	return usecase.DistanceInput{
		From: entity.Point{Latitude: coords[0], Longitude: coords[1]},
		To:   entity.Point{Latitude: coords[2], Longitude: coords[3]},
		Unit: unit,
	}, nil
}

func checkLatLon(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return pkgerror.NewBusiness("coordinates out of range", pkgerror.CodeInvalidInput)
	}
	return nil
}

// isISODate checks the YYYY-MM-DD shape only; calendar correctness is not
// required.
func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func mapFlightResponses(offers []entity.FlightOffer) []FlightResponse {
	resp := make([]FlightResponse, 0, len(offers))
	for _, f := range offers {
		resp = append(resp, FlightResponse{
			FlightNumber: f.FlightNumber,
			Airline:      AirlineResponse{Name: f.Airline, Logo: f.AirlineLogo},
			Departure:    mapFlightPoint(f.Departure),
			Arrival:      mapFlightPoint(f.Arrival),
			Duration:     DurationResponse{TotalMinutes: f.DurationMinute, Formatted: f.Duration},
			Stops:        f.Stops,
			StopInfo:     f.StopInfo,
			Price:        PriceResponse{Amount: f.Price.Amount, Currency: f.Price.Currency, Formatted: format.Price(f.Price)},
			SeatsLeft:    f.SeatsLeft,
			CabinClass:   f.Cabin,
			Aircraft:     f.Aircraft,
		})
	}
	return resp
}

func mapFlightPoint(p entity.FlightPoint) FlightPoint {
	return FlightPoint{
		Airport:     p.AirportCode,
		AirportName: p.AirportName,
		City:        p.City,
		Time:        p.Time,
	}
}

func mapPoint(p entity.Point) PointResponse {
	return PointResponse{Latitude: p.Latitude, Longitude: p.Longitude}
}
