package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tripwise/flight-engine/internal/app/config"
	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/app/endpoints"
	httptransport "github.com/tripwise/flight-engine/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchOffers,
			httptransport.DecodeRequest[dto.OfferSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/search/engine", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchEngineOffers,
			httptransport.DecodeRequest[dto.OfferSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/return-legs", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.ReturnLegs,
			httptransport.DecodeRequest[dto.ReturnLegRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/matrix", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchMatrix,
			httptransport.DecodeRequest[dto.MatrixSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/status", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.FlightStatus,
			decodeStatusRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

// decodeStatusRequest builds the status lookup from query parameters.
func decodeStatusRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.StatusRequest{
		FlightNumber: r.URL.Query().Get("flight_number"),
		Date:         r.URL.Query().Get("date"),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}
