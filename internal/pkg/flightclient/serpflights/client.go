package serpflights

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/pkg/exception"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

const (
	ProviderTag = "serp"

	engineFlights = "google_flights"

	// upstream trip type discriminator
	tripRoundTrip = "1"
	tripOneWay    = "2"
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

// Search runs a one-way or round-trip search. Round-trip itineraries
// come back as flat leg lists, so the normalizer splits slices at the
// first leg arriving at the requested destination.
func (c *Client) Search(ctx context.Context, req dto.OfferSearchRequest) ([]dto.FlightOffer, error) {
	params := url.Values{}
	params.Set("departure_id", req.Origin)
	params.Set("arrival_id", req.Destination)
	params.Set("outbound_date", req.DepartureDate)

	if req.RoundTrip() {
		params.Set("type", tripRoundTrip)
		params.Set("return_date", req.ReturnDate)
	} else {
		params.Set("type", tripOneWay)
	}

	resp, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	normalize := func(it Itinerary, idx int) (dto.FlightOffer, error) {
		if req.RoundTrip() {
			return NormalizeRoundTrip(it, idx, req.Destination, resp.SearchMetadata.GoogleFlightsURL)
		}

		return NormalizeOneWay(it, idx, resp.SearchMetadata.GoogleFlightsURL)
	}

	return c.normalizeAll(ctx, resp.Itineraries(), normalize), nil
}

// ReturnLegs resolves return-leg options for a previously selected
// outbound offer, keyed by its departure token.
func (c *Client) ReturnLegs(ctx context.Context, req dto.ReturnLegRequest) ([]dto.FlightOffer, error) {
	params := url.Values{}
	params.Set("departure_id", req.Origin)
	params.Set("arrival_id", req.Destination)
	params.Set("outbound_date", req.DepartureDate)
	params.Set("return_date", req.ReturnDate)
	params.Set("type", tripRoundTrip)
	params.Set("departure_token", req.DepartureToken)

	resp, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	normalize := func(it Itinerary, idx int) (dto.FlightOffer, error) {
		return NormalizeSingleSlice(it, idx, resp.SearchMetadata.GoogleFlightsURL)
	}

	return c.normalizeAll(ctx, resp.Itineraries(), normalize), nil
}

// SearchCell runs the single-date, single-route lookup the matrix
// orchestrator issues per cell.
func (c *Client) SearchCell(ctx context.Context, origin, destination, date string) ([]dto.FlightOffer, error) {
	params := url.Values{}
	params.Set("departure_id", origin)
	params.Set("arrival_id", destination)
	params.Set("outbound_date", date)
	params.Set("type", tripOneWay)

	resp, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	normalize := func(it Itinerary, idx int) (dto.FlightOffer, error) {
		return NormalizeSingleSlice(it, idx, resp.SearchMetadata.GoogleFlightsURL)
	}

	return c.normalizeAll(ctx, resp.Itineraries(), normalize), nil
}

func (c *Client) normalizeAll(ctx context.Context, itineraries []Itinerary,
	normalize func(Itinerary, int) (dto.FlightOffer, error),
) []dto.FlightOffer {
	offers := make([]dto.FlightOffer, 0, len(itineraries))
	dropped := 0

	for idx, it := range itineraries {
		offer, err := normalize(it, idx)
		if err != nil {
			dropped++

			continue
		}

		offers = append(offers, offer)
	}

	if dropped > 0 {
		slog.WarnContext(ctx, "dropped malformed provider offers",
			slog.String("provider", ProviderTag), slog.Int("dropped", dropped))
	}

	return offers
}

// search issues the single GET /search call shared by all lookups.
func (c *Client) search(ctx context.Context, params url.Values) (*Response, error) {
	if err := c.cfg.Allow(ctx, ProviderTag); err != nil {
		return nil, err
	}

	params.Set("engine", engineFlights)
	params.Set("api_key", c.cfg.Credential)

	reqURL := fmt.Sprintf("%s/search?%s", c.cfg.BaseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	body, status, err := flightclient.Do(ctx, c.httpClient, httpReq)
	if err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    "search-engine provider unreachable",
			Cause:      err,
		}
	}

	var resp Response
	decoded := flightclient.DecodeLoose(body, &resp)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, flightclient.UpstreamError(status, resp.Error)
	}

	if !decoded {
		// unparseable 2xx body is treated as an empty result set
		return &Response{}, nil
	}

	// the upstream reports some failures inside a 200 body
	if resp.Error != "" || strings.EqualFold(resp.SearchMetadata.Status, "Error") {
		return nil, flightclient.UpstreamError(http.StatusInternalServerError, resp.Error)
	}

	return &resp, nil
}
