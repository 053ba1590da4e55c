package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

var _ ports.SwapService = (*SwapService)(nil)

// SwapService enforces who may move a swap request through its lifecycle.
// The store enforces which moves exist.
type SwapService struct {
	store ports.DirectoryStore
	idem  ports.IdempotencyStore
	log   zerolog.Logger
	now   func() time.Time

	// lifecycle serialises check-then-act sequences on swap requests.
	lifecycle sync.Mutex
	proposals sync.Mutex

	hooksMu sync.RWMutex
	hooks   []ports.SwapCompletedHandler
}

func NewSwapService(store ports.DirectoryStore, idem ports.IdempotencyStore, log zerolog.Logger) *SwapService {
	if idem == nil {
		idem = NopIdempotencyStore{}
	}
	return &SwapService{
		store: store,
		idem:  idem,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// OnSwapCompleted registers handler to run after every successful completion.
func (s *SwapService) OnSwapCompleted(handler ports.SwapCompletedHandler) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, handler)
}

// Propose creates a pending request from actorID to input.ToUserID. A
// replayed idempotency key returns the request created the first time.
func (s *SwapService) Propose(ctx context.Context, actorID string, input ports.ProposeSwapInput) (*ports.ProposeSwapResult, error) {
	if input.ToUserID == actorID {
		return nil, domain.ErrSelfSwap
	}
	if input.IdempotencyKey == "" {
		return s.propose(ctx, actorID, input)
	}

	// keyed proposals run one at a time so a concurrent retry in this
	// process replays instead of racing the reservation
	s.proposals.Lock()
	defer s.proposals.Unlock()

	key := input.IdempotencyKey
	existing, reserved, err := s.claim(ctx, actorID, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Info().Str("idempotency_key", key).Str("swap_id", existing.ID).Msg("idempotent replay")
		return &ports.ProposeSwapResult{Request: *existing, AlreadyExisted: true}, nil
	}

	res, err := s.propose(ctx, actorID, input)
	if err != nil {
		if reserved {
			if relErr := s.idem.Release(ctx, actorID, key); relErr != nil {
				s.log.Warn().Err(relErr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}
	if reserved {
		if err := s.idem.Remember(ctx, actorID, key, res.Request.ID); err != nil {
			s.log.Warn().Err(err).Str("swap_id", res.Request.ID).Msg("failed to store idempotency key")
		}
	}
	return res, nil
}

// claim reserves key for a new proposal or returns the request it already
// produced. reserved is false when the idempotency store is unreachable, in
// which case the proposal goes ahead unprotected.
func (s *SwapService) claim(ctx context.Context, actorID, key string) (existing *domain.SwapRequest, reserved bool, err error) {
	won, err := s.idem.Reserve(ctx, actorID, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency reservation failed, proposing anyway")
		return nil, false, nil
	}
	if won {
		return nil, true, nil
	}

	swapID, found, err := s.idem.Lookup(ctx, actorID, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, proposing anyway")
		return nil, false, nil
	}
	if found && swapID == "" {
		// another instance holds the reservation
		return nil, false, domain.ErrProposalInFlight
	}
	if found {
		if r, err := s.store.GetSwapRequest(ctx, swapID); err == nil {
			return r, false, nil
		}
		// withdrawn since; the key no longer protects anything
		if err := s.idem.Release(ctx, actorID, key); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to release stale idempotency key")
			return nil, false, nil
		}
	}

	won, err = s.idem.Reserve(ctx, actorID, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency reservation failed, proposing anyway")
		return nil, false, nil
	}
	if !won {
		return nil, false, domain.ErrProposalInFlight
	}
	return nil, true, nil
}

func (s *SwapService) propose(ctx context.Context, actorID string, input ports.ProposeSwapInput) (*ports.ProposeSwapResult, error) {
	requester, err := s.store.GetUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("propose swap: requester: %w", err)
	}
	if requester.IsBanned {
		return nil, fmt.Errorf("propose swap: requester: %w", domain.ErrUserBanned)
	}

	recipient, err := s.store.GetUser(ctx, input.ToUserID)
	if err != nil || !recipient.IsPublic {
		return nil, fmt.Errorf("propose swap: recipient %s: %w", input.ToUserID, domain.ErrUserNotFound)
	}
	if recipient.IsBanned {
		return nil, fmt.Errorf("propose swap: recipient: %w", domain.ErrUserBanned)
	}

	offered, ok := domain.FindSkill(requester.SkillsOffered, input.OfferedSkillID)
	if !ok {
		return nil, fmt.Errorf("propose swap: offered skill %s: %w", input.OfferedSkillID, domain.ErrSkillNotFound)
	}
	requested, ok := domain.FindSkill(recipient.SkillsOffered, input.RequestedSkillID)
	if !ok {
		return nil, fmt.Errorf("propose swap: requested skill %s: %w", input.RequestedSkillID, domain.ErrSkillNotFound)
	}

	created, err := s.store.CreateSwapRequest(ctx, domain.SwapDraft{
		FromUserID:     requester.ID,
		ToUserID:       recipient.ID,
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Message:        input.Message,
	})
	if err != nil {
		s.log.Error().Err(err).Str("from_user_id", actorID).Msg("failed to create swap request")
		return nil, err
	}

	s.log.Info().
		Str("swap_id", created.ID).
		Str("from_user_id", created.FromUserID).
		Str("to_user_id", created.ToUserID).
		Msg("swap proposed")

	return &ports.ProposeSwapResult{Request: *created}, nil
}

// Accept moves a pending request to accepted. Only the recipient may.
func (s *SwapService) Accept(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error) {
	return s.respond(ctx, actorID, swapID, domain.SwapAccepted)
}

// Reject moves a pending request to rejected. Only the recipient may.
func (s *SwapService) Reject(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error) {
	return s.respond(ctx, actorID, swapID, domain.SwapRejected)
}

func (s *SwapService) respond(ctx context.Context, actorID, swapID string, next domain.SwapStatus) (*domain.SwapRequest, error) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	current, err := s.participantView(ctx, actorID, swapID)
	if err != nil {
		return nil, err
	}
	if current.ToUserID != actorID {
		return nil, fmt.Errorf("only the recipient can %s: %w", verb(next), domain.ErrForbidden)
	}

	updated, err := s.store.PatchSwapRequest(ctx, swapID, domain.SwapPatch{Status: &next})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("swap_id", swapID).Str("status", string(next)).Str("actor_id", actorID).Msg("swap status changed")
	return updated, nil
}

// Withdraw deletes a pending request. Only the requester may.
func (s *SwapService) Withdraw(ctx context.Context, actorID, swapID string) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	current, err := s.participantView(ctx, actorID, swapID)
	if err != nil {
		return err
	}
	if current.FromUserID != actorID {
		return fmt.Errorf("only the requester can withdraw: %w", domain.ErrForbidden)
	}
	if current.Status != domain.SwapPending {
		return fmt.Errorf("%w (withdraw from %s)", domain.ErrInvalidTransition, current.Status)
	}

	if err := s.store.DeleteSwapRequest(ctx, swapID); err != nil {
		return err
	}

	s.log.Info().Str("swap_id", swapID).Str("actor_id", actorID).Msg("swap withdrawn")
	return nil
}

// Complete closes an accepted request with a rating from either participant
// and then notifies the completion handlers.
func (s *SwapService) Complete(ctx context.Context, actorID, swapID string, input ports.CompleteSwapInput) (*domain.SwapRequest, error) {
	updated, err := s.complete(ctx, actorID, swapID, input)
	if err != nil {
		return nil, err
	}

	event := domain.SwapCompletedEvent{
		Request:     updated.Clone(),
		CompletedBy: actorID,
		RatedUserID: updated.Counterpart(actorID),
		OccurredAt:  s.now(),
	}

	s.hooksMu.RLock()
	hooks := append([]ports.SwapCompletedHandler(nil), s.hooks...)
	s.hooksMu.RUnlock()
	for _, h := range hooks {
		h(ctx, event)
	}

	return updated, nil
}

func (s *SwapService) complete(ctx context.Context, actorID, swapID string, input ports.CompleteSwapInput) (*domain.SwapRequest, error) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if _, err := s.participantView(ctx, actorID, swapID); err != nil {
		return nil, err
	}

	completed := domain.SwapCompleted
	rating := input.Rating
	patch := domain.SwapPatch{Status: &completed, Rating: &rating}
	if input.Feedback != "" {
		feedback := input.Feedback
		patch.Feedback = &feedback
	}

	updated, err := s.store.PatchSwapRequest(ctx, swapID, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("swap_id", swapID).Int("rating", rating).Str("actor_id", actorID).Msg("swap completed")
	return updated, nil
}

// Get returns a request the actor participates in.
func (s *SwapService) Get(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error) {
	return s.participantView(ctx, actorID, swapID)
}

// List returns the session user's requests matching filter.
func (s *SwapService) List(ctx context.Context, filter query.RequestFilter) ([]domain.SwapRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	snap := s.store.Snapshot(ctx, filter.SessionUserID)
	return query.Requests(snap.SwapRequests, filter), nil
}

// participantView loads swapID and hides it from anyone who is not a
// participant.
func (s *SwapService) participantView(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error) {
	r, err := s.store.GetSwapRequest(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !r.Involves(actorID) {
		return nil, domain.ErrSwapNotFound
	}
	return r, nil
}

func verb(next domain.SwapStatus) string {
	if next == domain.SwapRejected {
		return "reject"
	}
	return "accept"
}

// NopIdempotencyStore never remembers anything, so every reservation wins.
// It is used when no Redis address is configured.
type NopIdempotencyStore struct{}

func (NopIdempotencyStore) Lookup(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}

func (NopIdempotencyStore) Reserve(context.Context, string, string) (bool, error) { return true, nil }

func (NopIdempotencyStore) Remember(context.Context, string, string, string) error { return nil }

func (NopIdempotencyStore) Release(context.Context, string, string) error { return nil }
