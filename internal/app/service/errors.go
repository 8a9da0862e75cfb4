package service

import (
	"net/http"

	"github.com/tripwise/flight-engine/internal/pkg/exception"
)

var ErrNoOffersFound = exception.ApplicationError{
	Message:    "no offers found",
	StatusCode: http.StatusNotFound,
}

var ErrNoMatchFound = exception.ApplicationError{
	Message:    "no matching flight found",
	StatusCode: http.StatusNotFound,
}

var ErrProviderNotConfigured = exception.ApplicationError{
	Message:    "provider credentials not configured",
	StatusCode: http.StatusServiceUnavailable,
}

var ErrDateRangeTooWide = exception.ApplicationError{
	Message:    "date range exceeds the maximum allowed days",
	StatusCode: http.StatusBadRequest,
}
