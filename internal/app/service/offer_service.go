package service

import (
	"context"
	"fmt"

	"github.com/tripwise/flight-engine/internal/app/dto"
)

// OfferProvider is one upstream capable of a priced itinerary search.
type OfferProvider interface {
	Configured() bool
	Search(ctx context.Context, req dto.OfferSearchRequest) ([]dto.FlightOffer, error)
}

// ReturnLegProvider resolves return-leg options from a continuation token.
type ReturnLegProvider interface {
	Configured() bool
	ReturnLegs(ctx context.Context, req dto.ReturnLegRequest) ([]dto.FlightOffer, error)
}

// OfferService serves the single-route search endpoints. The offer
// provider and the search-engine provider stay behind the same canonical
// model; callers never see which one produced an offer.
type OfferService struct {
	OfferProvider     OfferProvider
	EngineProvider    OfferProvider
	ReturnLegProvider ReturnLegProvider
}

func NewOfferService(offerProvider OfferProvider, engineProvider OfferProvider,
	returnLegProvider ReturnLegProvider) *OfferService {
	return &OfferService{
		OfferProvider:     offerProvider,
		EngineProvider:    engineProvider,
		ReturnLegProvider: returnLegProvider,
	}
}

// SearchOffers runs one search against the offer-request provider.
// Offers come back in provider order; single-route results are not
// re-sorted.
func (s *OfferService) SearchOffers(ctx context.Context,
	req dto.OfferSearchRequest,
) (dto.OfferSearchResponse, error) {
	return s.search(ctx, s.OfferProvider, req)
}

// SearchEngineOffers runs one search against the search-engine provider.
func (s *OfferService) SearchEngineOffers(ctx context.Context,
	req dto.OfferSearchRequest,
) (dto.OfferSearchResponse, error) {
	return s.search(ctx, s.EngineProvider, req)
}

func (s *OfferService) search(ctx context.Context, provider OfferProvider,
	req dto.OfferSearchRequest,
) (dto.OfferSearchResponse, error) {
	if !provider.Configured() {
		return dto.OfferSearchResponse{}, ErrProviderNotConfigured
	}

	offers, err := provider.Search(ctx, req)
	if err != nil {
		return dto.OfferSearchResponse{}, fmt.Errorf("provider search: %w", err)
	}

	if len(offers) == 0 {
		return dto.OfferSearchResponse{}, ErrNoOffersFound
	}

	return dto.OfferSearchResponse{OK: true, Offers: offers}, nil
}

// ReturnLegs fetches return-leg options for an outbound offer selected
// earlier, using the departure token that offer carried.
func (s *OfferService) ReturnLegs(ctx context.Context,
	req dto.ReturnLegRequest,
) (dto.OfferSearchResponse, error) {
	if !s.ReturnLegProvider.Configured() {
		return dto.OfferSearchResponse{}, ErrProviderNotConfigured
	}

	offers, err := s.ReturnLegProvider.ReturnLegs(ctx, req)
	if err != nil {
		return dto.OfferSearchResponse{}, fmt.Errorf("return leg lookup: %w", err)
	}

	if len(offers) == 0 {
		return dto.OfferSearchResponse{}, ErrNoOffersFound
	}

	return dto.OfferSearchResponse{OK: true, Offers: offers}, nil
}
