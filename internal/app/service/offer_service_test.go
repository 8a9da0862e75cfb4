//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tripwise/flight-engine/internal/app/dto"
)

func twoOffers() []dto.FlightOffer {
	segment := dto.Segment{
		OperatingCarrier: "Transatlantic Air",
		MarketingCarrier: "Transatlantic Air",
		FlightNumber:     "100",
		Origin:           "JFK",
		Destination:      "LHR",
		Duration:         "7h 10m",
	}

	return []dto.FlightOffer{
		{ID: "off-1", TotalAmount: "412.00", TotalCurrency: "USD",
			Slices: []dto.Slice{{Origin: "JFK", Destination: "LHR", Segments: []dto.Segment{segment}}}},
		{ID: "off-2", TotalAmount: "389.50", TotalCurrency: "USD",
			Slices: []dto.Slice{{Origin: "JFK", Destination: "LHR", Segments: []dto.Segment{segment}}}},
	}
}

func TestOfferService_SearchOffers(t *testing.T) {
	criteria := dto.OfferSearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-01",
		Passengers:    1,
	}

	searchRequest := func(
		setupMock func(provider *MockOfferProvider),
		want dto.OfferSearchResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			provider := NewMockOfferProvider(t)
			setupMock(provider)

			s := NewOfferService(provider, NewMockOfferProvider(t), NewMockReturnLegProvider(t))

			got, err := s.SearchOffers(context.Background(), criteria)

			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			assert.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SearchOffers() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("offers_in_provider_order", searchRequest(
		func(provider *MockOfferProvider) {
			provider.On("Configured").Return(true)
			provider.On("Search", mock.Anything, criteria).Return(twoOffers(), nil)
		},
		dto.OfferSearchResponse{OK: true, Offers: twoOffers()},
		nil,
	))

	t.Run("missing_credential", searchRequest(
		func(provider *MockOfferProvider) {
			provider.On("Configured").Return(false)
		},
		dto.OfferSearchResponse{},
		ErrProviderNotConfigured,
	))

	t.Run("no_offers", searchRequest(
		func(provider *MockOfferProvider) {
			provider.On("Configured").Return(true)
			provider.On("Search", mock.Anything, criteria).Return([]dto.FlightOffer{}, nil)
		},
		dto.OfferSearchResponse{},
		ErrNoOffersFound,
	))

	errUpstream := errors.New("upstream down")

	t.Run("provider_error_surfaced", searchRequest(
		func(provider *MockOfferProvider) {
			provider.On("Configured").Return(true)
			provider.On("Search", mock.Anything, criteria).Return(nil, errUpstream)
		},
		dto.OfferSearchResponse{},
		errUpstream,
	))
}

func TestOfferService_ReturnLegs(t *testing.T) {
	req := dto.ReturnLegRequest{
		Origin:         "JFK",
		Destination:    "LHR",
		DepartureDate:  "2026-06-01",
		ReturnDate:     "2026-06-08",
		DepartureToken: "dep-token",
	}

	t.Run("legs_resolved", func(t *testing.T) {
		provider := NewMockReturnLegProvider(t)
		provider.On("Configured").Return(true)
		provider.On("ReturnLegs", mock.Anything, req).Return(twoOffers(), nil)

		s := NewOfferService(NewMockOfferProvider(t), NewMockOfferProvider(t), provider)

		got, err := s.ReturnLegs(context.Background(), req)
		assert.NoError(t, err)
		assert.True(t, got.OK)
		assert.Len(t, got.Offers, 2)
	})

	t.Run("missing_credential", func(t *testing.T) {
		provider := NewMockReturnLegProvider(t)
		provider.On("Configured").Return(false)

		s := NewOfferService(NewMockOfferProvider(t), NewMockOfferProvider(t), provider)

		_, err := s.ReturnLegs(context.Background(), req)
		assert.ErrorIs(t, err, ErrProviderNotConfigured)
	})
}
