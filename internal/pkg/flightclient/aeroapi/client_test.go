//go:build unit

package aeroapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tripwise/flight-engine/internal/pkg/exception"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

func TestSplitFlightNumber(t *testing.T) {
	splitCase := func(input, wantAirline, wantNumber string) func(t *testing.T) {
		return func(t *testing.T) {
			airline, number := SplitFlightNumber(input)
			assert.Equal(t, wantAirline, airline)
			assert.Equal(t, wantNumber, number)
		}
	}

	t.Run("two_letter_designator", splitCase("BA142", "BA", "142"))
	t.Run("three_letter_designator", splitCase("AAL100", "AAL", "100"))
	t.Run("lowercase_with_space", splitCase("ba 142", "BA", "142"))
	t.Run("no_digits", splitCase("BA", "BA", ""))
	t.Run("empty", splitCase("", "", ""))
}

func TestDayWindow(t *testing.T) {
	t.Run("one_day_span", func(t *testing.T) {
		start, end, err := dayWindow("2026-06-02")
		assert.NoError(t, err)
		assert.Equal(t, "2026-06-02", start)
		assert.Equal(t, "2026-06-03", end)
	})

	t.Run("month_rollover", func(t *testing.T) {
		start, end, err := dayWindow("2026-06-30")
		assert.NoError(t, err)
		assert.Equal(t, "2026-06-30", start)
		assert.Equal(t, "2026-07-01", end)
	})

	t.Run("bad_date", func(t *testing.T) {
		_, _, err := dayWindow("June 2nd")

		var appErr exception.ApplicationError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})
}

func TestClient_Flights(t *testing.T) {
	t.Run("realtime_lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flights/AA100", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-apikey"))
			assert.Equal(t, "2026-06-02", r.URL.Query().Get("start"))
			assert.Equal(t, "2026-06-03", r.URL.Query().Get("end"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"flights":[{"ident":"AAL100","ident_iata":"AA100",` +
				`"origin":{"code_iata":"JFK"},"destination":{"code_iata":"LHR"}}]}`))
		}))
		defer server.Close()

		c := NewClient(flightclient.Config{
			BaseURL:    server.URL,
			Credential: "test-key",
			Timeout:    5 * time.Second,
		})

		flights, err := c.Flights(context.Background(), "AA100", "2026-06-02")
		assert.NoError(t, err)

		if assert.Len(t, flights, 1) {
			assert.Equal(t, "AA100", flights[0].IdentIATA)
			assert.Equal(t, "JFK", flights[0].Origin.CodeIATA)
		}
	})

	t.Run("upstream_server_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"title":"Internal","detail":"backend unavailable"}`))
		}))
		defer server.Close()

		c := NewClient(flightclient.Config{
			BaseURL:    server.URL,
			Credential: "test-key",
			Timeout:    5 * time.Second,
		})

		_, err := c.Flights(context.Background(), "AA100", "2026-06-02")

		var appErr exception.ApplicationError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("upstream_auth_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Unauthorized","detail":"bad key"}`))
		}))
		defer server.Close()

		c := NewClient(flightclient.Config{
			BaseURL:    server.URL,
			Credential: "wrong-key",
			Timeout:    5 * time.Second,
		})

		_, err := c.Flights(context.Background(), "AA100", "2026-06-02")

		var appErr exception.ApplicationError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})
}

func TestClient_Scheduled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedules/2026-06-20/2026-06-21", r.URL.Path)
		assert.Equal(t, "AA", r.URL.Query().Get("airline"))
		assert.Equal(t, "100", r.URL.Query().Get("flight_number"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"scheduled":[{"ident_iata":"AA100",` +
			`"origin_iata":"JFK","destination_iata":"LHR",` +
			`"scheduled_out":"2026-06-20T22:00:00Z","scheduled_in":"2026-06-21T05:10:00Z"}]}`))
	}))
	defer server.Close()

	c := NewClient(flightclient.Config{
		BaseURL:    server.URL,
		Credential: "test-key",
		Timeout:    5 * time.Second,
	})

	scheduled, err := c.Scheduled(context.Background(), "AA100", "2026-06-20")
	assert.NoError(t, err)

	if assert.Len(t, scheduled, 1) {
		assert.Equal(t, "AA100", scheduled[0].IdentIATA)
		assert.Equal(t, "LHR", scheduled[0].DestinationIATA)
	}
}
