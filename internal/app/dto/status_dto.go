package dto

import (
	"fmt"
	"net/http"

	"github.com/tripwise/flight-engine/internal/pkg/exception"
)

// FlightStatusRecord is the canonical, presentation-ready status shape.
// Time labels and duration are pre-formatted human strings; the caller
// renders them verbatim.
type FlightStatusRecord struct {
	FlightNumber         string `json:"flight_number"`
	Airline              string `json:"airline"`
	AirlineLogoURL       string `json:"airline_logo_url,omitempty"`
	RouteFrom            string `json:"route_from"`
	RouteTo              string `json:"route_to"`
	DepartureAirportName string `json:"departure_airport_name"`
	ArrivalAirportName   string `json:"arrival_airport_name"`
	DepartureLocal       string `json:"departure_local"`
	ArrivalLocal         string `json:"arrival_local"`
	DepartureTimezone    string `json:"departure_timezone"`
	ArrivalTimezone      string `json:"arrival_timezone"`
	Duration             string `json:"duration"`
	TerminalGate         string `json:"terminal_gate,omitempty"`
	Stops                int    `json:"stops"`
}

// StatusRequest looks up live or scheduled status for one flight on one date.
type StatusRequest struct {
	FlightNumber string `json:"flight_number" validate:"required,min=3,max=8"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (r *StatusRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *StatusRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// StatusDiagnostics tells the caller which sources were configured and
// attempted, so "nothing scheduled" is distinguishable from "feature not
// configured" on a not-found outcome.
type StatusDiagnostics struct {
	RealtimeConfigured bool     `json:"realtime_configured"`
	ScheduleConfigured bool     `json:"schedule_configured"`
	LegacyConfigured   bool     `json:"legacy_configured"`
	SourcesAttempted   []string `json:"sources_attempted"`
}

type StatusResponse struct {
	OK     bool               `json:"ok"`
	Status FlightStatusRecord `json:"status"`
	Source string             `json:"source"`
}
