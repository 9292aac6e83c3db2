package inbound

type FlightsResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Metadata       MetadataResponse       `json:"metadata"`
	Flights        []FlightResponse       `json:"flights"`
}

type SearchCriteriaResponse struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
}

type MetadataResponse struct {
	TotalResults int  `json:"total_results"`
	CacheHit     bool `json:"cache_hit"`
}

type FlightResponse struct {
	FlightNumber string           `json:"flight_number"`
	Airline      AirlineResponse  `json:"airline"`
	Departure    FlightPoint      `json:"departure"`
	Arrival      FlightPoint      `json:"arrival"`
	Duration     DurationResponse `json:"duration"`
	Stops        int              `json:"stops"`
	StopInfo     string           `json:"stop_info,omitempty"`
	Price        PriceResponse    `json:"price"`
	SeatsLeft    *int             `json:"seats_left,omitempty"`
	CabinClass   string           `json:"cabin_class"`
	Aircraft     string           `json:"aircraft"`
}

type AirlineResponse struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type FlightPoint struct {
	Airport     string `json:"airport"`
	AirportName string `json:"airport_name"`
	City        string `json:"city"`
	Time        string `json:"time"`
}

type DurationResponse struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type PriceResponse struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type DistanceResponse struct {
	Distance float64       `json:"distance"`
	Unit     string        `json:"unit"`
	From     PointResponse `json:"from"`
	To       PointResponse `json:"to"`
}

type PointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}
