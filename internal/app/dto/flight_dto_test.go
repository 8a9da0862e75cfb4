//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOfferSearchRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req OfferSearchRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && wantMsg != "" {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	validRequest := OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
	}

	t.Run("valid_one_way", validateRequest(validRequest, false, ""))

	t.Run("valid_round_trip", validateRequest(OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		ReturnDate:    "2026-06-08",
		Passengers:    2,
		CabinClass:    "business",
	}, false, ""))

	t.Run("missing_origin", validateRequest(OfferSearchRequest{
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
	}, true, "origin is a required field"))

	t.Run("origin_wrong_length", validateRequest(OfferSearchRequest{
		Origin:        "NEWYORK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
	}, true, ""))

	t.Run("bad_departure_date", validateRequest(OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "01-06-2026",
		Passengers:    1,
	}, true, ""))

	t.Run("too_many_passengers", validateRequest(OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    10,
	}, true, ""))

	t.Run("unknown_cabin_class", validateRequest(OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
		CabinClass:    "luxury",
	}, true, ""))

	t.Run("return_before_departure", validateRequest(OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-08",
		ReturnDate:    "2026-06-01",
		Passengers:    1,
	}, true, "return_date must not be before departure_date"))
}

func TestOfferSearchRequest_RoundTrip(t *testing.T) {
	oneWay := OfferSearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-01"}
	if oneWay.RoundTrip() {
		t.Fatal("RoundTrip() = true for a request without a return date")
	}

	oneWay.ReturnDate = "2026-06-08"
	if !oneWay.RoundTrip() {
		t.Fatal("RoundTrip() = false for a request with a return date")
	}
}

func TestReturnLegRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req ReturnLegRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_request", validateRequest(ReturnLegRequest{
		Origin:         "JFK",
		Destination:    "LHR",
		DepartureDate:  "2026-06-01",
		ReturnDate:     "2026-06-08",
		DepartureToken: "dep-token",
	}, false))

	t.Run("missing_token", validateRequest(ReturnLegRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		ReturnDate:    "2026-06-08",
	}, true))
}

func TestMatrixSearchRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req MatrixSearchRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && wantMsg != "" {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("valid_range", validateRequest(MatrixSearchRequest{
		Origin:    "JFK",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-05",
	}, false, ""))

	t.Run("valid_days_only", validateRequest(MatrixSearchRequest{
		Origin:    "JFK",
		StartDate: "2026-06-01",
		Days:      3,
	}, false, ""))

	t.Run("missing_start_date", validateRequest(MatrixSearchRequest{
		Origin: "JFK",
	}, true, "start_date is a required field"))

	t.Run("end_before_start", validateRequest(MatrixSearchRequest{
		Origin:    "JFK",
		StartDate: "2026-06-05",
		EndDate:   "2026-06-01",
	}, true, "end_date must not be before start_date"))
}

func TestMatrixSearchRequest_DateSpan(t *testing.T) {
	spanRequest := func(req MatrixSearchRequest, want int) func(t *testing.T) {
		return func(t *testing.T) {
			if got := req.DateSpan(); got != want {
				t.Fatalf("DateSpan() = %d, want %d", got, want)
			}
		}
	}

	t.Run("inclusive_range", spanRequest(MatrixSearchRequest{
		StartDate: "2026-06-01", EndDate: "2026-06-03",
	}, 3))

	t.Run("single_day", spanRequest(MatrixSearchRequest{
		StartDate: "2026-06-01", EndDate: "2026-06-01",
	}, 1))

	t.Run("days_field", spanRequest(MatrixSearchRequest{
		StartDate: "2026-06-01", Days: 5,
	}, 5))

	t.Run("unset", spanRequest(MatrixSearchRequest{
		StartDate: "2026-06-01",
	}, 0))
}

func TestStatusRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req StatusRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_request", validateRequest(StatusRequest{
		FlightNumber: "AA100",
		Date:         "2026-06-02",
	}, false))

	t.Run("flight_number_too_short", validateRequest(StatusRequest{
		FlightNumber: "A1",
		Date:         "2026-06-02",
	}, true))

	t.Run("missing_date", validateRequest(StatusRequest{
		FlightNumber: "AA100",
	}, true))

	t.Run("bad_date", validateRequest(StatusRequest{
		FlightNumber: "AA100",
		Date:         "June 2nd",
	}, true))
}
