package format

import "github.com/ozkangu/travel-mcp/internal/travel/entity"

// Summary is the flattened view of an offer returned alongside the report.
type Summary struct {
	FlightNumber string `json:"flightNumber"`
	Airline      string `json:"airline"`
	From         string `json:"from"`
	To           string `json:"to"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Stops        int    `json:"stops"`
	StopInfo     string `json:"stopInfo,omitempty"`
	Cabin        string `json:"cabin"`
	Aircraft     string `json:"aircraft"`
	Price        string `json:"price"`
	SeatsLeft    *int   `json:"seatsLeft,omitempty"`
}

func Summaries(offers []entity.FlightOffer) []Summary {
	out := make([]Summary, 0, len(offers))
	for _, f := range offers {
		out = append(out, Summary{
			FlightNumber: f.FlightNumber,
			Airline:      f.Airline,
			From:         f.Departure.City + " (" + f.Departure.AirportCode + ")",
			To:           f.Arrival.City + " (" + f.Arrival.AirportCode + ")",
			Departure:    f.Departure.Time,
			Arrival:      f.Arrival.Time,
			Duration:     f.Duration,
			Stops:        f.Stops,
			StopInfo:     f.StopInfo,
			Cabin:        f.Cabin,
			Aircraft:     f.Aircraft,
			Price:        Price(f.Price),
			SeatsLeft:    f.SeatsLeft,
		})
	}
	return out
}
