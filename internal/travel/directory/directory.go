// Package directory holds the static airport, airline and aircraft tables
// the flight engine draws from, and resolves free-text input to airports.
package directory

import (
	"strings"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
)

// airports is ordered; resolution scans it front to back and takes the
// first hit.
var airports = []entity.Airport{
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul"},
	{Code: "SAW", Name: "Sabiha Gokcen Airport", City: "Istanbul"},
	{Code: "ESB", Name: "Esenboga Airport", City: "Ankara"},
	{Code: "ADB", Name: "Adnan Menderes Airport", City: "Izmir"},
	{Code: "AYT", Name: "Antalya Airport", City: "Antalya"},
	{Code: "TZX", Name: "Trabzon Airport", City: "Trabzon"},
	{Code: "DLM", Name: "Dalaman Airport", City: "Mugla"},
	{Code: "BJV", Name: "Milas-Bodrum Airport", City: "Bodrum"},
	{Code: "GZT", Name: "Gaziantep Airport", City: "Gaziantep"},
	{Code: "VAN", Name: "Ferit Melen Airport", City: "Van"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris"},
	{Code: "LHR", Name: "Heathrow Airport", City: "London"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt"},
	{Code: "JFK", Name: "John F. Kennedy Airport", City: "New York"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai"},
	{Code: "FCO", Name: "Fiumicino Airport", City: "Rome"},
	{Code: "BCN", Name: "El Prat Airport", City: "Barcelona"},
	{Code: "AMS", Name: "Schiphol Airport", City: "Amsterdam"},
	{Code: "MUC", Name: "Munich Airport", City: "Munich"},
	{Code: "ATH", Name: "Eleftherios Venizelos Airport", City: "Athens"},
}

var byCode = func() map[string]entity.Airport {
	m := make(map[string]entity.Airport, len(airports))
	for _, a := range airports {
		m[a.Code] = a
	}
	return m
}()

// domesticCodes is the Turkish network.
var domesticCodes = map[string]struct{}{
	"IST": {}, "SAW": {}, "ESB": {}, "ADB": {}, "AYT": {},
	"TZX": {}, "DLM": {}, "BJV": {}, "GZT": {}, "VAN": {},
}

var airlines = []entity.Airline{
	{Name: "Turkish Airlines", Code: "TK", Logo: "https://www.turkishairlines.com/theme/img/logo.svg", Domestic: true},
	{Name: "Pegasus Airlines", Code: "PC", Logo: "https://www.flypgs.com/assets/images/logo.svg", Domestic: true},
	{Name: "AnadoluJet", Code: "TK", Logo: "https://www.anadolujet.com/theme/img/logo.svg", Domestic: true},
	{Name: "SunExpress", Code: "XQ", Logo: "https://www.sunexpress.com/assets/images/logo.svg", Domestic: true},
	{Name: "Lufthansa", Code: "LH", Logo: "https://www.lufthansa.com/content/dam/lh/logo.svg"},
	{Name: "British Airways", Code: "BA", Logo: "https://www.britishairways.com/assets/images/logo.svg"},
	{Name: "Emirates", Code: "EK", Logo: "https://www.emirates.com/content/dam/images/logo.svg"},
}

var aircraftTypes = []string{
	"Boeing 737-800",
	"Boeing 737 MAX 8",
	"Boeing 777-300ER",
	"Boeing 787-9 Dreamliner",
	"Airbus A320neo",
	"Airbus A321neo",
	"Airbus A330-300",
	"Airbus A350-900",
}

// Currency is the currency every synthesized fare is quoted in.
const Currency = "TRY"

// Airports returns the directory in resolution order. The slice is a copy.
func Airports() []entity.Airport {
	return append([]entity.Airport(nil), airports...)
}

// Airlines returns all carriers, or only the domestic-eligible ones.
func Airlines(domesticOnly bool) []entity.Airline {
	out := make([]entity.Airline, 0, len(airlines))
	for _, a := range airlines {
		if domesticOnly && !a.Domestic {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AircraftTypes returns the equipment names offers are assigned. The slice
// is a copy.
func AircraftTypes() []string {
	return append([]string(nil), aircraftTypes...)
}

// Lookup finds an airport by exact code, case-insensitively.
func Lookup(code string) (entity.Airport, bool) {
	a, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Resolve maps a code or city name to an airport. An exact code wins, then
// a city equal to or starting with the input, then a substring match of the
// airport name or city in either direction.
//
// Empty or whitespace-only input resolves to nothing. Every city starts with
// the empty prefix, so a literal prefix match would silently pick the first
// airport for a blank field.
func Resolve(input string) (entity.Airport, bool) {
	q := strings.ToUpper(strings.TrimSpace(input))
	if q == "" {
		return entity.Airport{}, false
	}

	if a, ok := byCode[q]; ok {
		return a, true
	}

	for _, a := range airports {
		city := strings.ToUpper(a.City)
		if city == q || strings.HasPrefix(city, q) {
			return a, true
		}
	}

	for _, a := range airports {
		name, city := strings.ToUpper(a.Name), strings.ToUpper(a.City)
		if strings.Contains(name, q) || strings.Contains(city, q) || strings.Contains(q, city) {
			return a, true
		}
	}

	return entity.Airport{}, false
}

// IsDomestic reports whether both codes are in the domestic network.
func IsDomestic(a, b string) bool {
	_, okA := domesticCodes[strings.ToUpper(a)]
	_, okB := domesticCodes[strings.ToUpper(b)]
	return okA && okB
}
