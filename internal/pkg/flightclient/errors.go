package flightclient

import (
	"fmt"
	"net/http"

	"github.com/tripwise/flight-engine/internal/pkg/exception"
)

// ErrMalformedOffer signals a provider payload missing its mandatory
// identifier or price. The orchestrator drops the single affected offer
// and continues with the rest of the batch.
var ErrMalformedOffer = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "malformed provider offer",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

// UpstreamError classifies a non-2xx upstream response. Upstream 5xx is
// remapped to 502 and 4xx to 400 so provider-specific status semantics
// never leak to the caller. The provider's own message is surfaced when
// it was decodable.
func UpstreamError(status int, providerMessage string) error {
	code := http.StatusBadRequest
	if status >= http.StatusInternalServerError {
		code = http.StatusBadGateway
	}

	message := providerMessage
	if message == "" {
		message = fmt.Sprintf("provider request failed with status %d", status)
	}

	return exception.ApplicationError{
		StatusCode: code,
		Message:    message,
	}
}
