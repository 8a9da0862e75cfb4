package serpflights

// Raw wire shapes for the search-engine flights upstream. Itineraries
// arrive as a flat leg list with no slice boundary marker; the
// normalizer infers boundaries for round trips.

type Response struct {
	SearchMetadata Metadata    `json:"search_metadata"`
	BestFlights    []Itinerary `json:"best_flights"`
	OtherFlights   []Itinerary `json:"other_flights"`
	Error          string      `json:"error"`
}

type Metadata struct {
	Status           string `json:"status"`
	GoogleFlightsURL string `json:"google_flights_url"`
}

type Itinerary struct {
	Flights        []Leg  `json:"flights"`
	TotalDuration  int    `json:"total_duration"`
	Price          float64 `json:"price"`
	AirlineLogo    string `json:"airline_logo"`
	DepartureToken string `json:"departure_token"`
	BookingToken   string `json:"booking_token"`
}

type Leg struct {
	DepartureAirport AirportTime `json:"departure_airport"`
	ArrivalAirport   AirportTime `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airline          string      `json:"airline"`
	AirlineLogo      string      `json:"airline_logo"`
	FlightNumber     string      `json:"flight_number"`
	Airplane         string      `json:"airplane"`
	TravelClass      string      `json:"travel_class"`
}

type AirportTime struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// Itineraries returns best and other flights as one list, best first,
// preserving provider order within each.
func (r *Response) Itineraries() []Itinerary {
	itineraries := make([]Itinerary, 0, len(r.BestFlights)+len(r.OtherFlights))
	itineraries = append(itineraries, r.BestFlights...)
	itineraries = append(itineraries, r.OtherFlights...)

	return itineraries
}
