package aeroapi

// Raw wire shapes for the realtime and schedule-only endpoints.

type FlightsResponse struct {
	Flights []Flight `json:"flights"`
}

// Flight is one realtime/operational record. Timestamp fields are RFC
// 3339 strings or "".
type Flight struct {
	Ident          string  `json:"ident"`
	IdentIATA      string  `json:"ident_iata"`
	Operator       string  `json:"operator"`
	OperatorIATA   string  `json:"operator_iata"`
	Origin         Airport `json:"origin"`
	Destination    Airport `json:"destination"`
	ScheduledOut   string  `json:"scheduled_out"`
	EstimatedOut   string  `json:"estimated_out"`
	ActualOut      string  `json:"actual_out"`
	ScheduledIn    string  `json:"scheduled_in"`
	EstimatedIn    string  `json:"estimated_in"`
	ActualIn       string  `json:"actual_in"`
	FiledEte       int     `json:"filed_ete"` // seconds
	GateOrigin     string  `json:"gate_origin"`
	TerminalOrigin string  `json:"terminal_origin"`
}

type Airport struct {
	Code     string `json:"code"`
	CodeIATA string `json:"code_iata"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
}

type SchedulesResponse struct {
	Scheduled []ScheduledFlight `json:"scheduled"`
}

// ScheduledFlight is one schedule-only record; no operational data yet.
type ScheduledFlight struct {
	Ident           string `json:"ident"`
	IdentIATA       string `json:"ident_iata"`
	ActualIdent     string `json:"actual_ident"`
	Origin          string `json:"origin"`
	OriginIATA      string `json:"origin_iata"`
	Destination     string `json:"destination"`
	DestinationIATA string `json:"destination_iata"`
	ScheduledOut    string `json:"scheduled_out"`
	ScheduledIn     string `json:"scheduled_in"`
}

type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
