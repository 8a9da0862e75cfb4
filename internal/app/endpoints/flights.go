package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripwise/flight-engine/internal/app/dto"
)

type OfferService interface {
	SearchOffers(ctx context.Context, req dto.OfferSearchRequest) (dto.OfferSearchResponse, error)
	SearchEngineOffers(ctx context.Context, req dto.OfferSearchRequest) (dto.OfferSearchResponse, error)
	ReturnLegs(ctx context.Context, req dto.ReturnLegRequest) (dto.OfferSearchResponse, error)
}

type MatrixService interface {
	SearchMatrix(ctx context.Context, req dto.MatrixSearchRequest) (dto.MatrixSearchResponse, error)
}

type StatusService interface {
	Status(ctx context.Context, req dto.StatusRequest) (dto.StatusResponse, error)
}

type Endpoints struct {
	FlightEndpoint FlightEndpoint
}

type FlightEndpoint struct {
	SearchOffers       endpoint.Endpoint
	SearchEngineOffers endpoint.Endpoint
	ReturnLegs         endpoint.Endpoint
	SearchMatrix       endpoint.Endpoint
	FlightStatus       endpoint.Endpoint
}

func MakeFlightEndpoint(offers OfferService, matrix MatrixService,
	status StatusService) FlightEndpoint {
	return FlightEndpoint{
		SearchOffers: makeEndpoint(func(ctx context.Context, req *dto.OfferSearchRequest) (interface{}, error) {
			return offers.SearchOffers(ctx, *req)
		}),
		SearchEngineOffers: makeEndpoint(func(ctx context.Context, req *dto.OfferSearchRequest) (interface{}, error) {
			return offers.SearchEngineOffers(ctx, *req)
		}),
		ReturnLegs: makeEndpoint(func(ctx context.Context, req *dto.ReturnLegRequest) (interface{}, error) {
			return offers.ReturnLegs(ctx, *req)
		}),
		SearchMatrix: makeEndpoint(func(ctx context.Context, req *dto.MatrixSearchRequest) (interface{}, error) {
			return matrix.SearchMatrix(ctx, *req)
		}),
		FlightStatus: makeEndpoint(func(ctx context.Context, req *dto.StatusRequest) (interface{}, error) {
			return status.Status(ctx, *req)
		}),
	}
}

func makeEndpoint[T any](handle func(ctx context.Context, req *T) (interface{}, error)) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*T)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := handle(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return response, nil
	}
}
