package entity

type Airline struct {
	Name string
	Code string
	Logo string
	// Domestic marks carriers eligible for in-network routes.
	Domestic bool
}

type FlightPoint struct {
	AirportName string
	AirportCode string
	City        string
	Time        string
}

type Price struct {
	Amount   int
	Currency string
}

type FlightOffer struct {
	FlightNumber   string
	Airline        string
	AirlineLogo    string
	Departure      FlightPoint
	Arrival        FlightPoint
	Duration       string
	DurationMinute int
	Stops          int
	StopInfo       string
	Price          Price
	Cabin          string
	Aircraft       string
	SeatsLeft      *int
}
