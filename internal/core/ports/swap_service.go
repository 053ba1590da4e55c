package ports

import (
	"context"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

// ProposeSwapInput carries everything the requester supplies for a new swap.
type ProposeSwapInput struct {
	ToUserID         string
	OfferedSkillID   string // from the requester's skills offered
	RequestedSkillID string // from the recipient's skills offered
	Message          string
	IdempotencyKey   string
}

// ProposeSwapResult is returned by Propose.
type ProposeSwapResult struct {
	Request domain.SwapRequest
	// AlreadyExisted is true when the idempotency key matched an earlier proposal.
	AlreadyExisted bool
}

// CompleteSwapInput carries the closing rating.
type CompleteSwapInput struct {
	Rating   int
	Feedback string
}

// SwapCompletedHandler is notified after a swap reaches completed.
type SwapCompletedHandler func(ctx context.Context, event domain.SwapCompletedEvent)

// SwapService defines the swap lifecycle use cases. actorID is always the
// session user performing the action.
type SwapService interface {
	Propose(ctx context.Context, actorID string, input ProposeSwapInput) (*ProposeSwapResult, error)
	Accept(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error)
	Reject(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error)
	Withdraw(ctx context.Context, actorID, swapID string) error
	Complete(ctx context.Context, actorID, swapID string, input CompleteSwapInput) (*domain.SwapRequest, error)
	Get(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error)
	List(ctx context.Context, filter query.RequestFilter) ([]domain.SwapRequest, error)
	OnSwapCompleted(handler SwapCompletedHandler)
}

// IdempotencyStore remembers which swap a proposal key produced. A key is
// reserved before the swap is created and then pointed at the swap id.
type IdempotencyStore interface {
	// Lookup reports whether key is taken. swapID is empty while the key is
	// reserved but its proposal has not finished.
	Lookup(ctx context.Context, actorID, key string) (swapID string, found bool, err error)
	// Reserve claims key for a proposal in progress. It returns false when
	// the key is already taken.
	Reserve(ctx context.Context, actorID, key string) (bool, error)
	// Remember points a reserved key at the swap it produced.
	Remember(ctx context.Context, actorID, key, swapID string) error
	// Release drops key so a later proposal may use it again.
	Release(ctx context.Context, actorID, key string) error
}
