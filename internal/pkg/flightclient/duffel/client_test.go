//go:build unit

package duffel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/exception"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

func newTestClient(url string) *Client {
	return NewClient(flightclient.Config{
		BaseURL:    url,
		Credential: "test-token",
		Timeout:    5 * time.Second,
	})
}

func TestClient_Search(t *testing.T) {
	first := rawOffer()
	second := rawOffer()
	second.ID = "off_0000EfGh"
	second.TotalAmount = "389.50"

	var gotBody offerRequestBody

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/air/offer_requests", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Duffel-Version"))

		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(Response{Data: ResponseData{
			Offers: []Offer{first, second},
		}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	offers, err := client.Search(context.Background(), dto.OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
	})
	assert.NoError(t, err)

	// provider order preserved, no re-sorting of single-route results
	assert.Len(t, offers, 2)
	assert.Equal(t, "off_0000AbCd", offers[0].ID)
	assert.Equal(t, "412.00", offers[0].TotalAmount)
	assert.Equal(t, "off_0000EfGh", offers[1].ID)
	assert.Equal(t, "389.50", offers[1].TotalAmount)
	assert.NotEmpty(t, offers[0].Slices[0].Segments)
	assert.NotEmpty(t, offers[1].Slices[0].Segments)

	// one-way request maps to a single slice with one adult per passenger
	assert.Len(t, gotBody.Data.Slices, 1)
	assert.Equal(t, "JFK", gotBody.Data.Slices[0].Origin)
	assert.Len(t, gotBody.Data.Passengers, 1)
}

func TestClient_Search_RoundTripSlices(t *testing.T) {
	var gotBody offerRequestBody

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(Response{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Search(context.Background(), dto.OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		ReturnDate:    "2026-06-08",
		Passengers:    2,
	})
	assert.NoError(t, err)

	assert.Len(t, gotBody.Data.Slices, 2)
	assert.Equal(t, "LHR", gotBody.Data.Slices[1].Origin)
	assert.Equal(t, "JFK", gotBody.Data.Slices[1].Destination)
	assert.Len(t, gotBody.Data.Passengers, 2)
}

func TestClient_Search_UpstreamErrors(t *testing.T) {
	errorRequest := func(status int, body string, wantCode int, wantMessage string) func(t *testing.T) {
		return func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.Search(context.Background(), dto.OfferSearchRequest{
				Origin:        "JFK",
				Destination:   "LHR",
				DepartureDate: "2026-06-01",
				Passengers:    1,
			})
			assert.Error(t, err)

			var appErr exception.ApplicationError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, wantCode, appErr.StatusCode)
			if wantMessage != "" {
				assert.Equal(t, wantMessage, appErr.Message)
			}
		}
	}

	// upstream 5xx remaps to 502, 4xx to 400; provider message surfaced
	// when decodable
	t.Run("upstream_500", errorRequest(http.StatusInternalServerError,
		`{"errors":[{"title":"server error","message":"offer engine down"}]}`,
		http.StatusBadGateway, "offer engine down"))
	t.Run("upstream_422", errorRequest(http.StatusUnprocessableEntity,
		`{"errors":[{"title":"bad slice","message":"invalid origin"}]}`,
		http.StatusBadRequest, "invalid origin"))
	t.Run("undecodable_error_body", errorRequest(http.StatusBadGateway,
		`<html>gateway</html>`, http.StatusBadGateway, ""))
}

func TestClient_Search_UnparseableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	offers, err := client.Search(context.Background(), dto.OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
	})

	// a failed parse degrades to an empty result, never an exception
	assert.NoError(t, err)
	assert.Empty(t, offers)
}
