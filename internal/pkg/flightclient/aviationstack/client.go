package aviationstack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tripwise/flight-engine/internal/pkg/exception"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

const ProviderTag = "aviationstack"

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

// Flights looks up status records by IATA flight number and date
// (GET /flights?access_key&flight_iata&flight_date).
func (c *Client) Flights(ctx context.Context, flightIATA, date string) ([]Flight, error) {
	if err := c.cfg.Allow(ctx, ProviderTag); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("access_key", c.cfg.Credential)
	params.Set("flight_iata", flightIATA)
	params.Set("flight_date", date)

	reqURL := fmt.Sprintf("%s/flights?%s", c.cfg.BaseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}

	body, status, err := flightclient.Do(ctx, c.httpClient, httpReq)
	if err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    "legacy status provider unreachable",
			Cause:      err,
		}
	}

	var resp Response
	decoded := flightclient.DecodeLoose(body, &resp)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var providerMessage string
		if decoded && resp.Error != nil {
			providerMessage = resp.Error.Message
		}

		return nil, flightclient.UpstreamError(status, providerMessage)
	}

	// the aggregator reports some failures inside a 200 body
	if decoded && resp.Error != nil {
		return nil, flightclient.UpstreamError(http.StatusInternalServerError, resp.Error.Message)
	}

	return resp.Data, nil
}
