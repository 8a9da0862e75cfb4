package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/flight"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient/aeroapi"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient/aviationstack"
)

// RealtimeSource is the rich live/operational source: gate and terminal,
// live timestamps, delay-aware fields.
type RealtimeSource interface {
	Configured() bool
	Flights(ctx context.Context, ident, date string) ([]aeroapi.Flight, error)
}

// ScheduleSource only knows published schedules; it is the right first
// stop for dates where operational data does not exist yet.
type ScheduleSource interface {
	Configured() bool
	Scheduled(ctx context.Context, flightNumber, date string) ([]aeroapi.ScheduledFlight, error)
}

// LegacySource is the lower-fidelity aggregator used when the richer
// sources have no credential or came up empty.
type LegacySource interface {
	Configured() bool
	Flights(ctx context.Context, flightIATA, date string) ([]aviationstack.Flight, error)
}

const (
	sourceRealtime = "realtime"
	sourceSchedule = "schedule"
	sourceLegacy   = "legacy"

	durationUnknown = "Unknown"
)

// StatusService resolves a single best-matching status record from up to
// three disagreeing sources, ordered by suitability for the requested
// date.
type StatusService struct {
	Realtime      RealtimeSource
	Schedule      ScheduleSource
	Legacy        LegacySource
	FarFutureDays int
	Now           func() time.Time
}

func NewStatusService(realtime RealtimeSource, schedule ScheduleSource,
	legacy LegacySource, farFutureDays int) *StatusService {
	return &StatusService{
		Realtime:      realtime,
		Schedule:      schedule,
		Legacy:        legacy,
		FarFutureDays: farFutureDays,
		Now:           time.Now,
	}
}

// Status walks the source cascade:
//  1. far-future dates go to the schedule source first;
//  2. the realtime source;
//  3. the schedule source, if not already attempted;
//  4. the legacy aggregator;
//  5. not-found with diagnostics.
func (s *StatusService) Status(ctx context.Context,
	req dto.StatusRequest,
) (dto.StatusResponse, error) {
	ident := flight.NormalizeIdent(req.FlightNumber)
	farFuture := s.isFarFuture(req.Date)

	var attempted []string

	if farFuture && s.Schedule.Configured() {
		attempted = append(attempted, sourceSchedule)

		if record, ok := s.tryScheduled(ctx, ident, req.Date); ok {
			return dto.StatusResponse{OK: true, Status: record, Source: sourceSchedule}, nil
		}
	}

	if s.Realtime.Configured() {
		attempted = append(attempted, sourceRealtime)

		if record, ok := s.tryRealtime(ctx, ident, req.Date); ok {
			return dto.StatusResponse{OK: true, Status: record, Source: sourceRealtime}, nil
		}
	}

	if !farFuture && s.Schedule.Configured() {
		attempted = append(attempted, sourceSchedule)

		if record, ok := s.tryScheduled(ctx, ident, req.Date); ok {
			return dto.StatusResponse{OK: true, Status: record, Source: sourceSchedule}, nil
		}
	}

	if s.Legacy.Configured() {
		attempted = append(attempted, sourceLegacy)

		if record, ok := s.tryLegacy(ctx, ident, req.Date); ok {
			return dto.StatusResponse{OK: true, Status: record, Source: sourceLegacy}, nil
		}
	}

	return dto.StatusResponse{}, ErrNoMatchFound.WithDiagnostics(dto.StatusDiagnostics{
		RealtimeConfigured: s.Realtime.Configured(),
		ScheduleConfigured: s.Schedule.Configured(),
		LegacyConfigured:   s.Legacy.Configured(),
		SourcesAttempted:   attempted,
	})
}

func (s *StatusService) isFarFuture(date string) bool {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}

	cutoff := s.Now().AddDate(0, 0, s.FarFutureDays)

	return day.After(cutoff)
}

func (s *StatusService) tryRealtime(ctx context.Context, ident, date string) (dto.FlightStatusRecord, bool) {
	flights, err := s.Realtime.Flights(ctx, ident, date)
	if err != nil {
		slog.WarnContext(ctx, "realtime status source failed", slog.Any("error", err))

		return dto.FlightStatusRecord{}, false
	}

	best, ok := flight.BestMatch(flights, ident,
		func(f aeroapi.Flight) string {
			if f.IdentIATA != "" {
				return f.IdentIATA
			}

			return f.Ident
		},
		func(f aeroapi.Flight) (time.Time, bool) {
			return flight.EarliestTimestamp(f.ScheduledOut, f.EstimatedOut, f.ActualOut)
		})
	if !ok {
		return dto.FlightStatusRecord{}, false
	}

	return buildRealtimeRecord(best), true
}

func (s *StatusService) tryScheduled(ctx context.Context, ident, date string) (dto.FlightStatusRecord, bool) {
	scheduled, err := s.Schedule.Scheduled(ctx, ident, date)
	if err != nil {
		slog.WarnContext(ctx, "schedule status source failed", slog.Any("error", err))

		return dto.FlightStatusRecord{}, false
	}

	best, ok := flight.BestMatch(scheduled, ident,
		func(f aeroapi.ScheduledFlight) string {
			if f.IdentIATA != "" {
				return f.IdentIATA
			}

			return f.Ident
		},
		func(f aeroapi.ScheduledFlight) (time.Time, bool) {
			return flight.EarliestTimestamp(f.ScheduledOut)
		})
	if !ok {
		return dto.FlightStatusRecord{}, false
	}

	return buildScheduledRecord(best), true
}

func (s *StatusService) tryLegacy(ctx context.Context, ident, date string) (dto.FlightStatusRecord, bool) {
	flights, err := s.Legacy.Flights(ctx, ident, date)
	if err != nil {
		slog.WarnContext(ctx, "legacy status source failed", slog.Any("error", err))

		return dto.FlightStatusRecord{}, false
	}

	best, ok := flight.BestMatch(flights, ident,
		func(f aviationstack.Flight) string { return f.Flight.IATA },
		func(f aviationstack.Flight) (time.Time, bool) {
			return flight.EarliestTimestamp(f.Departure.Scheduled, f.Departure.Estimated, f.Departure.Actual)
		})
	if !ok {
		return dto.FlightStatusRecord{}, false
	}

	return buildLegacyRecord(best), true
}

func buildRealtimeRecord(f aeroapi.Flight) dto.FlightStatusRecord {
	ident := f.IdentIATA
	if ident == "" {
		ident = f.Ident
	}

	return dto.FlightStatusRecord{
		FlightNumber:         ident,
		Airline:              f.Operator,
		RouteFrom:            airportCode(f.Origin),
		RouteTo:              airportCode(f.Destination),
		DepartureAirportName: f.Origin.Name,
		ArrivalAirportName:   f.Destination.Name,
		DepartureLocal:       formatLocal(f.Origin.Timezone, f.ScheduledOut, f.EstimatedOut, f.ActualOut),
		ArrivalLocal:         formatLocal(f.Destination.Timezone, f.ScheduledIn, f.EstimatedIn, f.ActualIn),
		DepartureTimezone:    f.Origin.Timezone,
		ArrivalTimezone:      f.Destination.Timezone,
		Duration:             realtimeDuration(f),
		TerminalGate:         terminalGate(f.TerminalOrigin, f.GateOrigin),
		Stops:                0,
	}
}

func buildScheduledRecord(f aeroapi.ScheduledFlight) dto.FlightStatusRecord {
	ident := f.IdentIATA
	if ident == "" {
		ident = f.Ident
	}

	airline, _ := aeroapi.SplitFlightNumber(ident)

	routeFrom := f.OriginIATA
	if routeFrom == "" {
		routeFrom = f.Origin
	}

	routeTo := f.DestinationIATA
	if routeTo == "" {
		routeTo = f.Destination
	}

	return dto.FlightStatusRecord{
		FlightNumber:   ident,
		Airline:        airline,
		RouteFrom:      routeFrom,
		RouteTo:        routeTo,
		DepartureLocal: formatLocal("", f.ScheduledOut),
		ArrivalLocal:   formatLocal("", f.ScheduledIn),
		Duration:       computedDuration(f.ScheduledOut, f.ScheduledIn),
		Stops:          0,
	}
}

func buildLegacyRecord(f aviationstack.Flight) dto.FlightStatusRecord {
	return dto.FlightStatusRecord{
		FlightNumber:         f.Flight.IATA,
		Airline:              f.Airline.Name,
		RouteFrom:            f.Departure.IATA,
		RouteTo:              f.Arrival.IATA,
		DepartureAirportName: f.Departure.Airport,
		ArrivalAirportName:   f.Arrival.Airport,
		DepartureLocal:       formatLocal(f.Departure.Timezone, f.Departure.Scheduled, f.Departure.Estimated, f.Departure.Actual),
		ArrivalLocal:         formatLocal(f.Arrival.Timezone, f.Arrival.Scheduled, f.Arrival.Estimated, f.Arrival.Actual),
		DepartureTimezone:    f.Departure.Timezone,
		ArrivalTimezone:      f.Arrival.Timezone,
		Duration:             computedDuration(f.Departure.Scheduled, f.Arrival.Scheduled),
		TerminalGate:         terminalGate(f.Departure.Terminal, f.Departure.Gate),
		Stops:                0,
	}
}

func airportCode(a aeroapi.Airport) string {
	if a.CodeIATA != "" {
		return a.CodeIATA
	}

	return a.Code
}

// realtimeDuration prefers the provider-native elapsed-time field, then
// a computed departure/arrival difference, and reports unknown otherwise.
func realtimeDuration(f aeroapi.Flight) string {
	if f.FiledEte > 0 {
		return flight.FormatMinutes(f.FiledEte / 60)
	}

	return computedDuration(f.ScheduledOut, f.ScheduledIn)
}

func computedDuration(departure, arrival string) string {
	dep, depOK := flight.EarliestTimestamp(departure)
	arr, arrOK := flight.EarliestTimestamp(arrival)

	if !depOK || !arrOK || !arr.After(dep) {
		return durationUnknown
	}

	return flight.FormatMinutes(int(arr.Sub(dep).Minutes()))
}

// formatLocal renders the first usable timestamp in the airport's local
// timezone as a human label.
func formatLocal(timezone string, labels ...string) string {
	t, ok := flight.EarliestTimestamp(labels...)
	if !ok {
		return ""
	}

	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			t = t.In(loc)
		}
	}

	return t.Format("Mon, 2 Jan 2006 15:04")
}

func terminalGate(terminal, gate string) string {
	switch {
	case terminal != "" && gate != "":
		return fmt.Sprintf("Terminal %s, Gate %s", terminal, gate)
	case terminal != "":
		return fmt.Sprintf("Terminal %s", terminal)
	case gate != "":
		return fmt.Sprintf("Gate %s", gate)
	}

	return ""
}
