package aviationstack

// Raw wire shapes for the legacy status aggregator.

type Response struct {
	Data  []Flight  `json:"data"`
	Error *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Flight struct {
	FlightDate   string      `json:"flight_date"`
	FlightStatus string      `json:"flight_status"`
	Departure    Stop        `json:"departure"`
	Arrival      Stop        `json:"arrival"`
	Airline      Airline     `json:"airline"`
	Flight       FlightIdent `json:"flight"`
}

type Stop struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
}

type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

type FlightIdent struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}
