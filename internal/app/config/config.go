package config

import (
	"log/slog"
	"strings"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Providers Provider   `mapstructure:",squash"`
	Matrix    Matrix     `mapstructure:",squash"`
	Status    Status     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Redis is optional. When Addr is empty the outbound provider rate
// limiter is disabled and every upstream call goes straight out.
type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// DuffelProvider is the offer-request upstream (POST /air/offer_requests).
type DuffelProvider struct {
	APIURL   string        `mapstructure:"DUFFEL_API_URL"`
	APIToken string        `mapstructure:"DUFFEL_API_TOKEN"`
	Timeout  time.Duration `mapstructure:"DUFFEL_TIMEOUT"`
}

// SerpProvider is the search-engine flights upstream (GET /search?engine=google_flights).
type SerpProvider struct {
	APIURL  string        `mapstructure:"SERPAPI_URL"`
	APIKey  string        `mapstructure:"SERPAPI_KEY"`
	Timeout time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
}

// AeroAPIProvider serves both the realtime and the schedule-only status sources.
type AeroAPIProvider struct {
	APIURL  string        `mapstructure:"AEROAPI_URL"`
	APIKey  string        `mapstructure:"AEROAPI_KEY"`
	Timeout time.Duration `mapstructure:"AEROAPI_TIMEOUT"`
}

// AviationStackProvider is the legacy status aggregator, keyed by access key.
type AviationStackProvider struct {
	APIURL    string        `mapstructure:"AVIATIONSTACK_API_URL"`
	AccessKey string        `mapstructure:"AVIATIONSTACK_ACCESS_KEY"`
	Timeout   time.Duration `mapstructure:"AVIATIONSTACK_TIMEOUT"`
}

type Provider struct {
	Duffel        DuffelProvider        `mapstructure:",squash"`
	Serp          SerpProvider          `mapstructure:",squash"`
	AeroAPI       AeroAPIProvider       `mapstructure:",squash"`
	AviationStack AviationStackProvider `mapstructure:",squash"`
	RateLimitRPS  int                   `mapstructure:"PROVIDER_RATE_LIMIT"`
}

// Matrix bounds the date/destination fan-out. Every cell is one upstream
// call, so the caps guard third-party rate and cost budgets.
type Matrix struct {
	DefaultDays         int    `mapstructure:"MATRIX_DEFAULT_DAYS"`
	MaxDays             int    `mapstructure:"MATRIX_MAX_DAYS"`
	DefaultDestinations string `mapstructure:"MATRIX_DEFAULT_DESTINATIONS"`
}

// DestinationList returns the configured default destination set.
func (m Matrix) DestinationList() []string {
	raw := strings.Split(m.DefaultDestinations, ",")
	codes := make([]string, 0, len(raw))

	for _, code := range raw {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			codes = append(codes, code)
		}
	}

	return codes
}

type Status struct {
	FarFutureDays int `mapstructure:"STATUS_FAR_FUTURE_DAYS"`
}
