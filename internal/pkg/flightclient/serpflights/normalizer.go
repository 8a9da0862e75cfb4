package serpflights

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/flight"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

// NormalizeRoundTrip converts a round-trip itinerary, inferring the
// slice boundary from the flat leg list: legs up to and including the
// first leg arriving at the requested outbound destination form the
// outbound slice, the rest the return slice. When no leg matches, the
// whole list becomes one unsplit slice.
func NormalizeRoundTrip(it Itinerary, idx int, outboundDestination, bookURL string) (dto.FlightOffer, error) {
	offer, err := normalizeCommon(it, idx, bookURL)
	if err != nil {
		return dto.FlightOffer{}, err
	}

	groups := SplitLegs(it.Flights, outboundDestination)

	slices := make([]dto.Slice, len(groups))
	for i, legs := range groups {
		// the upstream has no combined duration for synthetic slices
		slices[i] = buildSlice(legs, sumLegMinutes(legs))
	}

	offer.Slices = slices

	return offer, nil
}

// NormalizeOneWay converts a one-way itinerary into a single-slice offer.
func NormalizeOneWay(it Itinerary, idx int, bookURL string) (dto.FlightOffer, error) {
	return NormalizeSingleSlice(it, idx, bookURL)
}

// NormalizeSingleSlice is the explore/return-leg variant: one slice,
// continuation tokens carried forward unchanged so the caller can
// resolve a follow-up leg.
func NormalizeSingleSlice(it Itinerary, idx int, bookURL string) (dto.FlightOffer, error) {
	offer, err := normalizeCommon(it, idx, bookURL)
	if err != nil {
		return dto.FlightOffer{}, err
	}

	minutes := it.TotalDuration
	if minutes <= 0 {
		minutes = sumLegMinutes(it.Flights)
	}

	offer.Slices = []dto.Slice{buildSlice(it.Flights, minutes)}

	return offer, nil
}

// SplitLegs partitions a flat leg list at the first leg arriving at the
// outbound destination. One group comes back when no boundary is found
// or when the boundary is the final leg.
func SplitLegs(legs []Leg, outboundDestination string) [][]Leg {
	for i, leg := range legs {
		if strings.EqualFold(leg.ArrivalAirport.ID, outboundDestination) {
			if i == len(legs)-1 {
				break
			}

			return [][]Leg{legs[:i+1], legs[i+1:]}
		}
	}

	return [][]Leg{legs}
}

func normalizeCommon(it Itinerary, idx int, bookURL string) (dto.FlightOffer, error) {
	if len(it.Flights) == 0 {
		return dto.FlightOffer{}, flightclient.ErrMalformedOffer
	}

	token := it.BookingToken
	if token == "" {
		token = it.DepartureToken
	}

	first := it.Flights[0]

	return dto.FlightOffer{
		// the upstream has no stable offer identifier
		ID:            fmt.Sprintf("%s-%d-%s", ProviderTag, idx, token),
		TotalAmount:   formatPrice(it.Price),
		TotalCurrency: "USD",
		Owner: dto.Owner{
			Name:     first.Airline,
			IATACode: carrierCode(first.FlightNumber),
		},
		BookingToken:   it.BookingToken,
		DepartureToken: it.DepartureToken,
		BookURL:        bookURL,
		ExpiresAt:      "",
	}, nil
}

func buildSlice(legs []Leg, minutes int) dto.Slice {
	segments := make([]dto.Segment, len(legs))
	for i, leg := range legs {
		segments[i] = dto.Segment{
			OperatingCarrier: leg.Airline,
			MarketingCarrier: leg.Airline,
			FlightNumber:     leg.FlightNumber,
			DepartingAt:      leg.DepartureAirport.Time,
			ArrivingAt:       leg.ArrivalAirport.Time,
			Origin:           leg.DepartureAirport.ID,
			Destination:      leg.ArrivalAirport.ID,
			Duration:         flight.FormatMinutes(leg.Duration),
		}
	}

	s := dto.Slice{
		Duration: flight.FormatMinutes(minutes),
		Segments: segments,
	}

	if len(legs) > 0 {
		s.Origin = legs[0].DepartureAirport.ID
		s.OriginName = legs[0].DepartureAirport.Name
		s.Destination = legs[len(legs)-1].ArrivalAirport.ID
		s.DestinationName = legs[len(legs)-1].ArrivalAirport.Name
	}

	return s
}

func sumLegMinutes(legs []Leg) int {
	total := 0
	for _, leg := range legs {
		total += leg.Duration
	}

	return total
}

// formatPrice keeps the canonical decimal-as-string rule: a missing
// upstream price becomes "0", never an empty string.
func formatPrice(price float64) string {
	if price <= 0 {
		return "0"
	}

	return strconv.FormatFloat(price, 'f', -1, 64)
}

// carrierCode extracts the IATA prefix from a "BA 142"-style flight number.
func carrierCode(flightNumber string) string {
	fields := strings.Fields(flightNumber)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
