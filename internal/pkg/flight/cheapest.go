package flight

import (
	"strconv"

	"github.com/tripwise/flight-engine/internal/app/dto"
)

// PriceAmount parses an offer's decimal-string amount. Offers with a
// missing or unparseable amount carry "0" and parse to 0, so comparisons
// are always defined.
func PriceAmount(offer dto.FlightOffer) float64 {
	amount, err := strconv.ParseFloat(offer.TotalAmount, 64)
	if err != nil {
		return 0
	}

	return amount
}

// cheaperThan reports whether a candidate amount beats the current best.
// A zero amount marks a missing upstream price: it never beats a positive
// amount, and among zero amounts the first-seen offer is kept.
func cheaperThan(candidate, best float64) bool {
	if candidate <= 0 {
		return false
	}

	return best <= 0 || candidate < best
}

// Cheapest returns the minimum-priced offer of a batch. Ties keep the
// first-seen offer.
func Cheapest(offers []dto.FlightOffer) (dto.FlightOffer, bool) {
	if len(offers) == 0 {
		return dto.FlightOffer{}, false
	}

	best := offers[0]
	bestAmount := PriceAmount(best)

	for _, offer := range offers[1:] {
		if amount := PriceAmount(offer); cheaperThan(amount, bestAmount) {
			best = offer
			bestAmount = amount
		}
	}

	return best, true
}

// CheapestTracker keeps a running global cheapest across batches, so the
// matrix orchestrator updates it incrementally instead of re-scanning.
type CheapestTracker struct {
	best   dto.FlightOffer
	amount float64
	seen   bool
}

// Observe offers the candidate to the tracker. Earlier offers win ties.
func (t *CheapestTracker) Observe(offer dto.FlightOffer) {
	amount := PriceAmount(offer)

	if !t.seen || cheaperThan(amount, t.amount) {
		t.best = offer
		t.amount = amount
		t.seen = true
	}
}

// Best returns the cheapest offer observed so far.
func (t *CheapestTracker) Best() (dto.FlightOffer, bool) {
	return t.best, t.seen
}
