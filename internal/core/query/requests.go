package query

import (
	"fmt"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

// Direction restricts requests by the session user's role in them.
type Direction string

const (
	DirectionAll      Direction = "all"
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// StatusAll is the UI sentinel meaning "no status filter".
const StatusAll = "all"

// RequestFilter selects the session user's swap requests.
type RequestFilter struct {
	SessionUserID string
	Direction     Direction
	Status        string // a domain.SwapStatus, "all" or empty
}

// Validate rejects directions and statuses outside the known sets.
func (f RequestFilter) Validate() error {
	switch f.Direction {
	case "", DirectionAll, DirectionSent, DirectionReceived:
	default:
		return fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidInput, f.Direction)
	}
	if f.Status != "" && f.Status != StatusAll && !domain.SwapStatus(f.Status).Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, f.Status)
	}
	return nil
}

// Requests returns the requests the session user participates in that
// match both the direction and the status filter.
func Requests(requests []domain.SwapRequest, f RequestFilter) []domain.SwapRequest {
	out := make([]domain.SwapRequest, 0)
	for _, r := range requests {
		if !r.Involves(f.SessionUserID) {
			continue
		}
		if f.Direction == DirectionSent && r.FromUserID != f.SessionUserID {
			continue
		}
		if f.Direction == DirectionReceived && r.ToUserID != f.SessionUserID {
			continue
		}
		if f.Status != "" && f.Status != StatusAll && string(r.Status) != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CountByStatus tallies requests per status.
func CountByStatus(requests []domain.SwapRequest) map[domain.SwapStatus]int {
	counts := make(map[domain.SwapStatus]int, 4)
	for _, r := range requests {
		counts[r.Status]++
	}
	return counts
}
