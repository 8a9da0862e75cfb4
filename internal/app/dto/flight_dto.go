package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tripwise/flight-engine/internal/pkg/exception"
)

// FlightOffer is the provider-agnostic offer shape every normalizer
// produces. Callers never branch on which upstream an offer came from.
// All fields are plain strings with "" for anything the upstream omits,
// so consumers can always render.
type FlightOffer struct {
	ID             string  `json:"id"`
	TotalAmount    string  `json:"total_amount"`
	TotalCurrency  string  `json:"total_currency"`
	Owner          Owner   `json:"owner"`
	Slices         []Slice `json:"slices"`
	BookingToken   string  `json:"booking_token,omitempty"`
	DepartureToken string  `json:"departure_token,omitempty"`
	BookURL        string  `json:"book_url,omitempty"`
	ExpiresAt      string  `json:"expires_at"`
}

// Owner is the operating brand shown to the user.
type Owner struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

// Slice is one directional portion of a trip: outbound or return.
type Slice struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	OriginName      string    `json:"origin_name"`
	DestinationName string    `json:"destination_name"`
	Duration        string    `json:"duration"`
	Segments        []Segment `json:"segments"`
}

// Segment is one non-stop flight leg within a slice.
type Segment struct {
	OperatingCarrier string `json:"operating_carrier"`
	MarketingCarrier string `json:"marketing_carrier"`
	FlightNumber     string `json:"flight_number"`
	DepartingAt      string `json:"departing_at"`
	ArrivingAt       string `json:"arriving_at"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Duration         string `json:"duration"`
}

// OfferSearchRequest covers both the offer-request and the search-engine
// search endpoints. ReturnDate empty means one-way.
type OfferSearchRequest struct {
	Origin         string `json:"origin" validate:"required,len=3,alpha"`
	Destination    string `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate  string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate     string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Passengers     int    `json:"passengers" validate:"required,min=1,max=9"`
	CabinClass     string `json:"cabin_class,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
	MaxConnections *int   `json:"max_connections,omitempty" validate:"omitempty,min=0,max=2"`
}

func (r *OfferSearchRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *OfferSearchRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.ReturnDate != "" && r.ReturnDate < r.DepartureDate {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "return_date must not be before departure_date",
		}
	}

	return nil
}

// RoundTrip reports whether the request asks for a return slice.
func (r *OfferSearchRequest) RoundTrip() bool {
	return r.ReturnDate != ""
}

// ReturnLegRequest resolves return-leg options for an outbound offer
// previously selected from the search-engine provider. DepartureToken is
// the continuation handle that offer carried.
type ReturnLegRequest struct {
	Origin         string `json:"origin" validate:"required,len=3,alpha"`
	Destination    string `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate  string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate     string `json:"return_date" validate:"required,datetime=2006-01-02"`
	DepartureToken string `json:"departure_token" validate:"required"`
}

func (r *ReturnLegRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *ReturnLegRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// MatrixSearchRequest drives the fan-out search. Either an explicit
// StartDate/EndDate range or a Days count from StartDate; Destination
// empty means the configured default destination set.
type MatrixSearchRequest struct {
	Origin      string `json:"origin" validate:"required,len=3,alpha"`
	Destination string `json:"destination,omitempty" validate:"omitempty,len=3,alpha"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Days        int    `json:"days,omitempty" validate:"omitempty,min=1"`
}

func (r *MatrixSearchRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *MatrixSearchRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.EndDate != "" && r.EndDate < r.StartDate {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "end_date must not be before start_date",
		}
	}

	return nil
}

// DateSpan returns the number of calendar days the request covers,
// before any cap is applied. Zero means "use the configured default".
func (r *MatrixSearchRequest) DateSpan() int {
	if r.EndDate != "" {
		start, _ := time.Parse("2006-01-02", r.StartDate)
		end, _ := time.Parse("2006-01-02", r.EndDate)

		return int(end.Sub(start).Hours()/24) + 1
	}

	return r.Days
}

// MatrixRow is one non-empty cell of the fan-out: the cheapest offer
// found for one (destination, date) pair.
type MatrixRow struct {
	Date            string      `json:"date"`
	Destination     string      `json:"destination"`
	DestinationName string      `json:"destination_name"`
	Offer           FlightOffer `json:"offer"`
}

// OfferSearchResponse is the search endpoints' payload. Offers keep
// provider order; single-route results are not re-sorted.
type OfferSearchResponse struct {
	OK     bool          `json:"ok"`
	Offers []FlightOffer `json:"offers"`
}

type MatrixSearchResponse struct {
	OK              bool         `json:"ok"`
	Rows            []MatrixRow  `json:"rows"`
	OverallCheapest *FlightOffer `json:"overall_cheapest,omitempty"`
}
