package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

// RatingAggregator folds completion ratings into the rated member's running
// average. It is wired behind the event dispatcher and only when enabled.
type RatingAggregator struct {
	store ports.DirectoryStore
	log   zerolog.Logger
}

func NewRatingAggregator(store ports.DirectoryStore, log zerolog.Logger) *RatingAggregator {
	return &RatingAggregator{store: store, log: log}
}

// Process applies one completion event.
func (a *RatingAggregator) Process(ctx context.Context, event domain.SwapCompletedEvent) error {
	rating := event.Request.Rating
	if rating == nil {
		return fmt.Errorf("aggregate rating for swap %s: %w", event.Request.ID, domain.ErrInvalidRating)
	}

	u, err := a.store.MutateUser(ctx, event.RatedUserID, func(u *domain.User) error {
		u.AddReview(*rating)
		return nil
	})
	if err != nil {
		return fmt.Errorf("aggregate rating for swap %s: %w", event.Request.ID, err)
	}

	a.log.Info().
		Str("swap_id", event.Request.ID).
		Str("user_id", u.ID).
		Float64("rating", u.Rating).
		Int("review_count", u.ReviewCount).
		Msg("rating aggregated")
	return nil
}
