package aeroapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/tripwise/flight-engine/internal/pkg/exception"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
)

const ProviderTag = "aeroapi"

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

// Flights fetches realtime records for one flight ident on one date
// (GET /flights/{ident}?start&end).
func (c *Client) Flights(ctx context.Context, ident, date string) ([]Flight, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)

	reqURL := fmt.Sprintf("%s/flights/%s?%s",
		c.cfg.BaseURL, url.PathEscape(ident), params.Encode())

	var resp FlightsResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Flights, nil
}

// Scheduled fetches schedule-only records for one airline/flight-number
// pair on one date (GET /schedules/{start}/{end}?airline&flight_number).
func (c *Client) Scheduled(ctx context.Context, flightNumber, date string) ([]ScheduledFlight, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return nil, err
	}

	airline, number := SplitFlightNumber(flightNumber)

	params := url.Values{}
	params.Set("airline", airline)
	params.Set("flight_number", number)

	reqURL := fmt.Sprintf("%s/schedules/%s/%s?%s",
		c.cfg.BaseURL, start, end, params.Encode())

	var resp SchedulesResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Scheduled, nil
}

func (c *Client) get(ctx context.Context, reqURL string, out interface{}) error {
	if err := c.cfg.Allow(ctx, ProviderTag); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build status request: %w", err)
	}

	httpReq.Header.Set("x-apikey", c.cfg.Credential)
	httpReq.Header.Set("Accept", "application/json")

	body, status, err := flightclient.Do(ctx, c.httpClient, httpReq)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    "status provider unreachable",
			Cause:      err,
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var apiErr errorResponse
		flightclient.DecodeLoose(body, &apiErr)

		return flightclient.UpstreamError(status, apiErr.Detail)
	}

	flightclient.DecodeLoose(body, out)

	return nil
}

// SplitFlightNumber breaks "BA142" into its airline designator and
// numeric part. A query with no digit tail comes back whole as airline.
func SplitFlightNumber(flightNumber string) (string, string) {
	trimmed := strings.ToUpper(strings.Join(strings.Fields(flightNumber), ""))

	idx := strings.IndexFunc(trimmed, unicode.IsDigit)
	if idx < 0 {
		return trimmed, ""
	}

	return trimmed[:idx], trimmed[idx:]
}

// dayWindow returns the [date, date+1) bounds the upstream expects.
func dayWindow(date string) (string, string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid date format",
			Cause:      err,
		}
	}

	return day.Format("2006-01-02"), day.AddDate(0, 0, 1).Format("2006-01-02"), nil
}
