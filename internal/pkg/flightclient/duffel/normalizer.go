package duffel

import (
	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/flight"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

// NormalizeOffers converts a raw offer batch, dropping individually
// malformed offers and reporting how many were dropped.
func NormalizeOffers(raws []Offer) ([]dto.FlightOffer, int) {
	offers := make([]dto.FlightOffer, 0, len(raws))
	dropped := 0

	for _, raw := range raws {
		offer, err := NormalizeOffer(raw)
		if err != nil {
			dropped++

			continue
		}

		offers = append(offers, offer)
	}

	return offers, dropped
}

// NormalizeOffer converts one raw provider offer into the canonical
// shape. It fails only when the mandatory offer identifier is absent;
// every optional field degrades to "".
func NormalizeOffer(raw Offer) (dto.FlightOffer, error) {
	if raw.ID == "" {
		return dto.FlightOffer{}, flightclient.ErrMalformedOffer
	}

	amount := raw.TotalAmount
	if amount == "" {
		// keep downstream numeric sorting defined
		amount = "0"
	}

	slices := make([]dto.Slice, len(raw.Slices))
	for i, s := range raw.Slices {
		slices[i] = normalizeSlice(s)
	}

	return dto.FlightOffer{
		ID:            raw.ID,
		TotalAmount:   amount,
		TotalCurrency: raw.TotalCurrency,
		Owner: dto.Owner{
			Name:     raw.Owner.Name,
			IATACode: raw.Owner.IATACode,
		},
		Slices:    slices,
		ExpiresAt: raw.ExpiresAt,
	}, nil
}

func normalizeSlice(raw Slice) dto.Slice {
	segments := make([]dto.Segment, len(raw.Segments))
	for i, seg := range raw.Segments {
		segments[i] = normalizeSegment(seg)
	}

	return dto.Slice{
		Origin:          raw.Origin.IATACode,
		Destination:     raw.Destination.IATACode,
		OriginName:      raw.Origin.Name,
		DestinationName: raw.Destination.Name,
		// aggregate field when present, else left blank
		Duration: flight.FormatISODuration(raw.Duration),
		Segments: segments,
	}
}

func normalizeSegment(raw Segment) dto.Segment {
	// prefer the operating carrier's flight number, fall back to the
	// marketing carrier's when absent
	flightNumber := raw.OperatingCarrierFlightNumber
	carrier := raw.OperatingCarrier.Name

	if flightNumber == "" {
		flightNumber = raw.MarketingCarrierFlightNumber
	}

	if carrier == "" {
		carrier = raw.MarketingCarrier.Name
	}

	return dto.Segment{
		OperatingCarrier: carrier,
		MarketingCarrier: raw.MarketingCarrier.Name,
		FlightNumber:     flightNumber,
		DepartingAt:      raw.DepartingAt,
		ArrivingAt:       raw.ArrivingAt,
		Origin:           raw.Origin.IATACode,
		Destination:      raw.Destination.IATACode,
		Duration:         flight.FormatISODuration(raw.Duration),
	}
}
