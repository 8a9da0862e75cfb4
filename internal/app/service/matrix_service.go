package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/flight"
)

// CellSearcher runs one single-date, single-route lookup.
type CellSearcher interface {
	Configured() bool
	SearchCell(ctx context.Context, origin, destination, date string) ([]dto.FlightOffer, error)
}

// MatrixService fans one origin out across a destination set and a date
// range, one upstream call per (destination, date) cell, and reports the
// cheapest offer per cell plus a global cheapest.
//
// Cells run sequentially: every cell is a billable upstream call against
// a finite provider rate budget.
type MatrixService struct {
	Cells               CellSearcher
	DefaultDays         int
	MaxDays             int
	DefaultDestinations []string
}

func NewMatrixService(cells CellSearcher, defaultDays, maxDays int,
	defaultDestinations []string) *MatrixService {
	return &MatrixService{
		Cells:               cells,
		DefaultDays:         defaultDays,
		MaxDays:             maxDays,
		DefaultDestinations: defaultDestinations,
	}
}

// SearchMatrix executes the fan-out. A cell that errors or returns zero
// offers is skipped, never fatal to the batch. Rows come back sorted
// ascending by their cheapest price.
func (s *MatrixService) SearchMatrix(ctx context.Context,
	req dto.MatrixSearchRequest,
) (dto.MatrixSearchResponse, error) {
	if !s.Cells.Configured() {
		return dto.MatrixSearchResponse{}, ErrProviderNotConfigured
	}

	span := req.DateSpan()
	if span <= 0 {
		span = s.DefaultDays
	}

	if span > s.MaxDays {
		return dto.MatrixSearchResponse{}, ErrDateRangeTooWide
	}

	destinations := s.DefaultDestinations
	if req.Destination != "" {
		destinations = []string{req.Destination}
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	var (
		rows    []dto.MatrixRow
		tracker flight.CheapestTracker
	)

	for _, destination := range destinations {
		for day := 0; day < span; day++ {
			// the hosting request is gone, remaining cells are wasted calls
			if ctx.Err() != nil {
				break
			}

			date := startDate.AddDate(0, 0, day).Format("2006-01-02")

			offers, err := s.Cells.SearchCell(ctx, req.Origin, destination, date)
			if err != nil {
				slog.WarnContext(ctx, "matrix cell failed",
					slog.String("destination", destination),
					slog.String("date", date),
					slog.Any("error", err))

				continue
			}

			cheapest, ok := flight.Cheapest(offers)
			if !ok {
				continue
			}

			rows = append(rows, dto.MatrixRow{
				Date:            date,
				Destination:     destination,
				DestinationName: destinationName(cheapest, destination),
				Offer:           cheapest,
			})

			tracker.Observe(cheapest)
		}
	}

	if len(rows) == 0 {
		return dto.MatrixSearchResponse{}, ErrNoOffersFound
	}

	sort.SliceStable(rows, func(i, j int) bool {
		pi := flight.PriceAmount(rows[i].Offer)
		pj := flight.PriceAmount(rows[j].Offer)

		// zero means the upstream omitted the price; those rows sort last
		if (pi > 0) != (pj > 0) {
			return pi > 0
		}

		return pi < pj
	})

	response := dto.MatrixSearchResponse{OK: true, Rows: rows}
	if best, ok := tracker.Best(); ok {
		response.OverallCheapest = &best
	}

	return response, nil
}

// destinationName prefers the offer's resolved destination name, then
// its IATA code, then the raw input code.
func destinationName(offer dto.FlightOffer, input string) string {
	if len(offer.Slices) > 0 {
		s := offer.Slices[len(offer.Slices)-1]

		if s.DestinationName != "" {
			return s.DestinationName
		}

		if s.Destination != "" {
			return s.Destination
		}
	}

	return input
}
