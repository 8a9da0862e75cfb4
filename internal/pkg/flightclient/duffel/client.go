package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/exception"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

const (
	ProviderTag = "duffel"

	apiVersion = "v2"
)

type Client struct {
	cfg        flightclient.Config
	httpClient *http.Client
}

func NewClient(cfg flightclient.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: flightclient.NewHTTPClient(cfg.Timeout),
	}
}

func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Search creates an offer request upstream and returns the normalized
// offers in provider order. Malformed offers in the batch are dropped
// individually, not fatal to the whole response.
func (c *Client) Search(ctx context.Context, req dto.OfferSearchRequest) ([]dto.FlightOffer, error) {
	if err := c.cfg.Allow(ctx, ProviderTag); err != nil {
		return nil, err
	}

	resp, status, err := c.createOfferRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var providerMessage string
		if resp != nil && len(resp.Errors) > 0 {
			providerMessage = resp.Errors[0].Message
		}

		return nil, flightclient.UpstreamError(status, providerMessage)
	}

	if resp == nil {
		return nil, nil
	}

	offers, dropped := NormalizeOffers(resp.Data.Offers)
	if dropped > 0 {
		slog.WarnContext(ctx, "dropped malformed provider offers",
			slog.String("provider", ProviderTag), slog.Int("dropped", dropped))
	}

	return offers, nil
}

// createOfferRequest issues the single POST /air/offer_requests call.
// The decoded response is nil when the body was not parseable JSON.
func (c *Client) createOfferRequest(ctx context.Context,
	req dto.OfferSearchRequest,
) (*Response, int, error) {
	slices := []RequestSlice{{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
	}}
	if req.RoundTrip() {
		slices = append(slices, RequestSlice{
			Origin:        req.Destination,
			Destination:   req.Origin,
			DepartureDate: req.ReturnDate,
		})
	}

	passengers := make([]RequestPassenger, req.Passengers)
	for i := range passengers {
		passengers[i] = RequestPassenger{Type: "adult"}
	}

	payload, err := json.Marshal(offerRequestBody{Data: offerRequestData{
		Slices:         slices,
		Passengers:     passengers,
		CabinClass:     req.CabinClass,
		MaxConnections: req.MaxConnections,
	}})
	if err != nil {
		return nil, 0, fmt.Errorf("marshal offer request: %w", err)
	}

	url := fmt.Sprintf("%s/air/offer_requests?return_offers=true", c.cfg.BaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("build offer request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Credential)
	httpReq.Header.Set("Duffel-Version", apiVersion)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	body, status, err := flightclient.Do(ctx, c.httpClient, httpReq)
	if err != nil {
		return nil, 0, exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    "offer provider unreachable",
			Cause:      err,
		}
	}

	var resp Response
	if !flightclient.DecodeLoose(body, &resp) {
		return nil, status, nil
	}

	return &resp, status, nil
}
