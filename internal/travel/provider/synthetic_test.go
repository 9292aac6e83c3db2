package provider

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ozkangu/travel-mcp/internal/travel/directory"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flightNumberPattern = regexp.MustCompile(`^[A-Z]{2}\d{3}$`)

func airport(t *testing.T, code string) entity.Airport {
	t.Helper()
	a, ok := directory.Lookup(code)
	require.True(t, ok, code)
	return a
}

// dates returns n consecutive ISO dates starting at 2026-01-01.
func dates(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("2026-%02d-%02d", 1+(i/28)%12, 1+i%28))
	}
	return out
}

func TestSynthesizeDeterministic(t *testing.T) {
	for _, route := range [][2]string{{"IST", "AYT"}, {"IST", "LHR"}, {"JFK", "DXB"}} {
		o, d := airport(t, route[0]), airport(t, route[1])
		a := Synthesize(o, d, "2026-05-20", 3)
		b := Synthesize(o, d, "2026-05-20", 3)
		assert.Equal(t, a, b, route)
	}
}

func TestSynthesizeDateSensitivity(t *testing.T) {
	o, d := airport(t, "IST"), airport(t, "ESB")
	a := Synthesize(o, d, "2026-05-20", 1)
	b := Synthesize(o, d, "2026-05-21", 1)

	fingerprint := func(offers []entity.FlightOffer) string {
		parts := make([]string, 0, len(offers))
		for _, f := range offers {
			parts = append(parts, f.FlightNumber+f.Departure.Time+f.Arrival.Time)
		}
		return strings.Join(parts, "|")
	}
	assert.NotEqual(t, fingerprint(a), fingerprint(b))
}

func TestSynthesizeLinearPricing(t *testing.T) {
	o, d := airport(t, "IST"), airport(t, "ADB")
	single := Synthesize(o, d, "2026-04-10", 1)
	for _, p := range []int{2, 5, 9} {
		multi := Synthesize(o, d, "2026-04-10", p)
		require.Len(t, multi, len(single))
		for i := range single {
			assert.Equal(t, single[i].Price.Amount*p, multi[i].Price.Amount)
			assert.Equal(t, single[i].FlightNumber, multi[i].FlightNumber)
		}
	}
}

func TestSynthesizeInvariants(t *testing.T) {
	routes := [][2]string{{"IST", "AYT"}, {"SAW", "VAN"}, {"IST", "LHR"}, {"CDG", "ATH"}, {"ESB", "FRA"}}
	for _, route := range routes {
		o, d := airport(t, route[0]), airport(t, route[1])
		domestic := directory.IsDomestic(o.Code, d.Code)

		for _, date := range dates(60) {
			offers := Synthesize(o, d, date, 1)

			require.GreaterOrEqual(t, len(offers), 3)
			require.LessOrEqual(t, len(offers), 5)

			for i, f := range offers {
				if i > 0 {
					assert.GreaterOrEqual(t, f.Price.Amount, offers[i-1].Price.Amount)
				}
				assert.Regexp(t, flightNumberPattern, f.FlightNumber)
				assert.Equal(t, o.Code, f.Departure.AirportCode)
				assert.Equal(t, d.Code, f.Arrival.AirportCode)
				assert.Equal(t, directory.Currency, f.Price.Currency)
				assert.Contains(t, []string{"Economy", "Business"}, f.Cabin)
				assert.Contains(t, directory.AircraftTypes(), f.Aircraft)
				assert.Equal(t, formatDuration(f.DurationMinute), f.Duration)
				assertArrival(t, f)

				if f.SeatsLeft != nil {
					assert.GreaterOrEqual(t, *f.SeatsLeft, 1)
					assert.LessOrEqual(t, *f.SeatsLeft, 5)
				}

				if f.Stops == 1 {
					assert.False(t, domestic)
					assert.Contains(t, f.StopInfo, "layover")
					assert.NotContains(t, f.StopInfo, "("+o.Code+")")
					assert.NotContains(t, f.StopInfo, "("+d.Code+")")
				} else {
					assert.Equal(t, 0, f.Stops)
					assert.Empty(t, f.StopInfo)
				}

				if domestic {
					assert.GreaterOrEqual(t, f.DurationMinute, 70)
					assert.LessOrEqual(t, f.DurationMinute, 109)
					assert.GreaterOrEqual(t, f.Price.Amount, 400)
					assert.Less(t, f.Price.Amount, 5600)
				} else {
					assert.GreaterOrEqual(t, f.DurationMinute, 125)
					assert.LessOrEqual(t, f.DurationMinute, 594)
					assert.GreaterOrEqual(t, f.Price.Amount, 1600)
					assert.Less(t, f.Price.Amount, 28000)
				}
			}
		}
	}
}

func assertArrival(t *testing.T, f entity.FlightOffer) {
	t.Helper()
	dep, err := time.Parse("15:04", f.Departure.Time)
	require.NoError(t, err)
	arr, err := time.Parse("15:04", f.Arrival.Time)
	require.NoError(t, err)
	want := (dep.Hour()*60 + dep.Minute() + f.DurationMinute) % (24 * 60)
	assert.Equal(t, want, arr.Hour()*60+arr.Minute())
}

func TestSynthesizeDomesticAirlines(t *testing.T) {
	o, d := airport(t, "IST"), airport(t, "TZX")
	domestic := map[string]bool{}
	for _, a := range directory.Airlines(true) {
		domestic[a.Name] = true
	}
	for _, date := range dates(30) {
		for _, f := range Synthesize(o, d, date, 1) {
			assert.True(t, domestic[f.Airline], f.Airline)
		}
	}
}

func TestSynthesizeInternationalHasStops(t *testing.T) {
	o, d := airport(t, "IST"), airport(t, "JFK")
	withStop := 0
	for _, date := range dates(60) {
		for _, f := range Synthesize(o, d, date, 1) {
			withStop += f.Stops
		}
	}
	assert.Positive(t, withStop)
}

func TestSearchFlightsUnknownRoute(t *testing.T) {
	offers := SearchFlights("XYZ", "ABC", "2026-01-01", 1)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)

	assert.Empty(t, SearchFlights("IST", "ABC", "2026-01-01", 1))
	assert.Empty(t, SearchFlights("XYZ", "IST", "2026-01-01", 1))
}

func TestSearchFlightsResolvesCities(t *testing.T) {
	offers := SearchFlights("Istanbul", "Antalya", "2026-06-01", 1)
	require.NotEmpty(t, offers)
	assert.Equal(t, "Istanbul", offers[0].Departure.City)
	assert.Equal(t, "Antalya", offers[0].Arrival.City)
	assert.Equal(t, Synthesize(airport(t, "IST"), airport(t, "AYT"), "2026-06-01", 1), offers)
}

func TestSyntheticProvider(t *testing.T) {
	p := NewSynthetic()
	assert.Equal(t, "Synthetic", p.Name())

	offers, err := p.Search(context.Background(), SearchRequest{From: "IST", To: "AYT", Date: "2026-02-10", Passengers: 2})
	require.NoError(t, err)
	assert.Equal(t, SearchFlights("IST", "AYT", "2026-02-10", 2), offers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Search(ctx, SearchRequest{From: "IST", To: "AYT", Date: "2026-02-10", Passengers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransitCandidates(t *testing.T) {
	o, d := airport(t, "IST"), airport(t, "JFK")

	got := transitCandidates(o, d)
	assert.Len(t, got, len(directory.Airports())-2)
	for _, a := range got {
		assert.NotEqual(t, o.Code, a.Code)
		assert.NotEqual(t, d.Code, a.Code)
	}
	assert.Equal(t, directory.Airports()[0].Code, o.Code)
	assert.Equal(t, "Istanbul", directory.Airports()[0].City)
}

func TestSynthesizeTransitExcludesEndpoints(t *testing.T) {
	o, d := airport(t, "IST"), airport(t, "LHR")
	for _, date := range dates(60) {
		for _, f := range Synthesize(o, d, date, 1) {
			if f.Stops == 0 {
				continue
			}
			assert.NotContains(t, f.StopInfo, "(IST)")
			assert.NotContains(t, f.StopInfo, "(LHR)")
		}
	}
}

func TestClockAdd(t *testing.T) {
	assert.Equal(t, "23:10", clock{hour: 22, minute: 0}.add(70).String())
	assert.Equal(t, "01:15", clock{hour: 22, minute: 20}.add(175).String())
	assert.Equal(t, "06:05", clock{hour: 6, minute: 5}.add(0).String())
}

func TestSeedKey(t *testing.T) {
	assert.Equal(t, "IST-AYT-2026-02-10", SeedKey("IST", "AYT", "2026-02-10"))
}
