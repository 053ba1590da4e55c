package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

func TestRatingAggregator_FoldsRatingIntoCounterpart(t *testing.T) {
	store := seededStore()
	swaps := newSwapService(store)
	agg := NewRatingAggregator(store, zerolog.Nop())
	ctx := context.Background()

	var processErr error
	swaps.OnSwapCompleted(func(ctx context.Context, e domain.SwapCompletedEvent) {
		processErr = agg.Process(ctx, e)
	})

	// user 1 closes seed request 2 and rates user 3 (4.7 over 18 reviews)
	if _, err := swaps.Complete(ctx, "1", "2", ports.CompleteSwapInput{Rating: 1}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if processErr != nil {
		t.Fatalf("process: %v", processErr)
	}

	u, _ := store.GetUser(ctx, "3")
	if u.ReviewCount != 19 {
		t.Fatalf("expected 19 reviews, got %d", u.ReviewCount)
	}
	want := (4.7*18 + 1) / 19
	if diff := u.Rating - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected rating %v, got %v", want, u.Rating)
	}

	completer, _ := store.GetUser(ctx, "1")
	if completer.ReviewCount != 24 {
		t.Fatal("completer's own rating changed")
	}
}

func TestRatingAggregator_RequiresRating(t *testing.T) {
	agg := NewRatingAggregator(seededStore(), zerolog.Nop())
	err := agg.Process(context.Background(), domain.SwapCompletedEvent{
		Request:     domain.SwapRequest{ID: "x"},
		RatedUserID: "3",
	})
	if !errors.Is(err, domain.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
}
