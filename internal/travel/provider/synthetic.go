package provider

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ozkangu/travel-mcp/internal/travel/directory"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

const (
	offPeakMultiplier  = 0.8
	businessMultiplier = 2.8
	stopThreshold      = 0.6
	businessThreshold  = 0.8
	scarceSeats        = 5
)

// synthetic returns deterministic offers for routes inside the directory.
type synthetic struct{}

func NewSynthetic() Provider {
	return synthetic{}
}

func (synthetic) Name() string {
	return "Synthetic"
}

func (synthetic) Search(ctx context.Context, req SearchRequest) ([]entity.FlightOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SearchFlights(req.From, req.To, req.Date, req.Passengers), nil
}

// SearchFlights resolves both endpoints and synthesizes offers for them. An
// unresolvable endpoint yields an empty, non-nil slice.
func SearchFlights(from, to, date string, passengers int) []entity.FlightOffer {
	origin, ok := directory.Resolve(from)
	if !ok {
		return []entity.FlightOffer{}
	}
	destination, ok := directory.Resolve(to)
	if !ok {
		return []entity.FlightOffer{}
	}
	return Synthesize(origin, destination, date, passengers)
}

// SeedKey is the generator key for a route and date.
func SeedKey(origin, destination, date string) string {
	return origin + "-" + destination + "-" + date
}

// Synthesize builds between three and five offers sorted by ascending
// price. Every random decision is drawn from one generator seeded by
// SeedKey, in a fixed order, so equal inputs give equal output. Prices are
// per-passenger fares multiplied by passengers.
func Synthesize(origin, destination entity.Airport, date string, passengers int) []entity.FlightOffer {
	rng := NewSeededRand(SeedKey(origin.Code, destination.Code, date))

	count := 3 + rng.Intn(3)
	domestic := directory.IsDomestic(origin.Code, destination.Code)
	net := network{
		airlines: directory.Airlines(domestic),
		aircraft: directory.AircraftTypes(),
		transits: transitCandidates(origin, destination),
	}
	departures := departureSlots(rng)[:count]

	offers := make([]entity.FlightOffer, 0, count)
	for _, dep := range departures {
		offers = append(offers, synthesizeOffer(rng, origin, destination, domestic, net, dep, passengers))
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price.Amount < offers[j].Price.Amount
	})

	return offers
}

// departureSlots draws one minute offset for each day-part, early morning
// through night. All seven are drawn regardless of how many are used.
func departureSlots(rng *SeededRand) []clock {
	return []clock{
		{hour: 6, minute: 5 + rng.Intn(50)},
		{hour: 8, minute: rng.Intn(55)},
		{hour: 11, minute: rng.Intn(55)},
		{hour: 14, minute: rng.Intn(55)},
		{hour: 17, minute: rng.Intn(55)},
		{hour: 20, minute: rng.Intn(50)},
		{hour: 22, minute: rng.Intn(30)},
	}
}

// network holds the tables one search draws from.
type network struct {
	airlines []entity.Airline
	aircraft []string
	transits []entity.Airport
}

func synthesizeOffer(
	rng *SeededRand,
	origin, destination entity.Airport,
	domestic bool,
	net network,
	dep clock,
	passengers int,
) entity.FlightOffer {
	airline := net.airlines[rng.Intn(len(net.airlines))]
	duration := flightMinutes(rng, domestic)
	arr := dep.add(duration)
	flightNumber := fmt.Sprintf("%s%d", airline.Code, 100+rng.Intn(900))

	var price int
	if domestic {
		price = 500 + rng.Intn(1500)
	} else {
		price = 2000 + rng.Intn(8000)
	}
	if dep.hour < 7 || dep.hour >= 21 {
		price = int(math.Floor(float64(price) * offPeakMultiplier))
	}

	stops, stopInfo := 0, ""
	if !domestic && rng.Float64() > stopThreshold {
		stops = 1
		stopInfo = transitInfo(rng, net.transits)
	}

	cabin := "Economy"
	if rng.Float64() > businessThreshold {
		cabin = "Business"
		price = int(math.Floor(float64(price) * businessMultiplier))
	}

	var seatsLeft *int
	if seats := 1 + rng.Intn(8); seats <= scarceSeats {
		seatsLeft = &seats
	}

	return entity.FlightOffer{
		FlightNumber: flightNumber,
		Airline:      airline.Name,
		AirlineLogo:  airline.Logo,
		Departure: entity.FlightPoint{
			AirportName: origin.Name,
			AirportCode: origin.Code,
			City:        origin.City,
			Time:        dep.String(),
		},
		Arrival: entity.FlightPoint{
			AirportName: destination.Name,
			AirportCode: destination.Code,
			City:        destination.City,
			Time:        arr.String(),
		},
		Duration:       formatDuration(duration),
		DurationMinute: duration,
		Stops:          stops,
		StopInfo:       stopInfo,
		Price:          entity.Price{Amount: price * passengers, Currency: directory.Currency},
		Cabin:          cabin,
		Aircraft:       net.aircraft[rng.Intn(len(net.aircraft))],
		SeatsLeft:      seatsLeft,
	}
}

// flightMinutes is 1h10m..1h49m on domestic routes and 2h05m..9h54m
// otherwise.
func flightMinutes(rng *SeededRand, domestic bool) int {
	if domestic {
		return 60 + 10 + rng.Intn(40)
	}
	hours := 2 + rng.Intn(8)
	return hours*60 + 5 + rng.Intn(50)
}

// transitCandidates lists every airport other than the two endpoints.
func transitCandidates(origin, destination entity.Airport) []entity.Airport {
	airports := directory.Airports()
	candidates := airports[:0]
	for _, a := range airports {
		if a.Code != origin.Code && a.Code != destination.Code {
			candidates = append(candidates, a)
		}
	}
	return candidates
}

func transitInfo(rng *SeededRand, candidates []entity.Airport) string {
	transit := candidates[rng.Intn(len(candidates))]
	layover := 1 + rng.Intn(2)
	return fmt.Sprintf("%s (%s) - %dh layover", transit.City, transit.Code, layover)
}
