package duffel

// Raw wire shapes for the offer-request upstream. Only the fields the
// normalizer consumes are declared; everything else in the payload is
// ignored on decode.

type offerRequestBody struct {
	Data offerRequestData `json:"data"`
}

type offerRequestData struct {
	Slices         []RequestSlice     `json:"slices"`
	Passengers     []RequestPassenger `json:"passengers"`
	CabinClass     string             `json:"cabin_class,omitempty"`
	MaxConnections *int               `json:"max_connections,omitempty"`
}

type RequestSlice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type RequestPassenger struct {
	Type string `json:"type"`
}

type Response struct {
	Data   ResponseData    `json:"data"`
	Errors []ResponseError `json:"errors"`
}

type ResponseData struct {
	Offers []Offer `json:"offers"`
}

type ResponseError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Offer struct {
	ID            string  `json:"id"`
	TotalAmount   string  `json:"total_amount"`
	TotalCurrency string  `json:"total_currency"`
	ExpiresAt     string  `json:"expires_at"`
	Owner         Carrier `json:"owner"`
	Slices        []Slice `json:"slices"`
}

type Carrier struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

type Slice struct {
	Origin      Place     `json:"origin"`
	Destination Place     `json:"destination"`
	Duration    string    `json:"duration"`
	Segments    []Segment `json:"segments"`
}

type Place struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

type Segment struct {
	OperatingCarrier             Carrier `json:"operating_carrier"`
	MarketingCarrier             Carrier `json:"marketing_carrier"`
	OperatingCarrierFlightNumber string  `json:"operating_carrier_flight_number"`
	MarketingCarrierFlightNumber string  `json:"marketing_carrier_flight_number"`
	DepartingAt                  string  `json:"departing_at"`
	ArrivingAt                   string  `json:"arriving_at"`
	Origin                       Place   `json:"origin"`
	Destination                  Place   `json:"destination"`
	Duration                     string  `json:"duration"`
}
