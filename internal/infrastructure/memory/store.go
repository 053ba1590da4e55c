// Package memory holds the process-local directory: the canonical users and
// swap requests. Nothing here survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

var _ ports.DirectoryStore = (*Store)(nil)

// Store implements ports.DirectoryStore. Writers hold the write lock for the
// whole mutation; readers receive deep copies taken under the read lock.
type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	requests []domain.SwapRequest

	now   func() time.Time
	newID func() string
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides swap request id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithSeed loads users and requests as the initial directory.
func WithSeed(users []domain.User, requests []domain.SwapRequest) Option {
	return func(s *Store) {
		for _, u := range users {
			s.users = append(s.users, u.Clone())
		}
		for _, r := range requests {
			s.requests = append(s.requests, r.Clone())
		}
	}
}

// NewStore returns an empty store unless WithSeed is given.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Snapshot(_ context.Context, sessionUserID string) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Snapshot{
		Users:        make([]domain.User, len(s.users)),
		SwapRequests: make([]domain.SwapRequest, len(s.requests)),
	}
	for i, u := range s.users {
		snap.Users[i] = u.Clone()
		if sessionUserID != "" && u.ID == sessionUserID {
			session := snap.Users[i].Clone()
			snap.SessionUser = &session
		}
	}
	for i, r := range s.requests {
		snap.SwapRequests[i] = r.Clone()
	}
	return snap
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}
	u := s.users[i].Clone()
	return &u, nil
}

func (s *Store) ReplaceUser(_ context.Context, user domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(user.ID)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	s.users[i] = user.Clone()
	return nil
}

func (s *Store) MutateUser(_ context.Context, id string, fn func(u *domain.User) error) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}

	working := s.users[i].Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	// the record's identity is not mutable
	working.ID = id
	if err := working.Validate(); err != nil {
		return nil, err
	}

	s.users[i] = working.Clone()
	return &working, nil
}

func (s *Store) GetSwapRequest(_ context.Context, id string) (*domain.SwapRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.requestIndex(id)
	if i < 0 {
		return nil, domain.ErrSwapNotFound
	}
	r := s.requests[i].Clone()
	return &r, nil
}

func (s *Store) CreateSwapRequest(_ context.Context, draft domain.SwapDraft) (*domain.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(draft.FromUserID) < 0 {
		return nil, fmt.Errorf("requester %s: %w", draft.FromUserID, domain.ErrUserNotFound)
	}
	if s.userIndex(draft.ToUserID) < 0 {
		return nil, fmt.Errorf("recipient %s: %w", draft.ToUserID, domain.ErrUserNotFound)
	}

	id := s.newID()
	for s.requestIndex(id) >= 0 {
		id = s.newID()
	}

	r := domain.SwapRequest{
		ID:             id,
		FromUserID:     draft.FromUserID,
		ToUserID:       draft.ToUserID,
		OfferedSkill:   draft.OfferedSkill,
		RequestedSkill: draft.RequestedSkill,
		Status:         domain.SwapPending,
		Message:        draft.Message,
		CreatedAt:      s.now(),
	}
	s.requests = append(s.requests, r)

	out := r.Clone()
	return &out, nil
}

func (s *Store) PatchSwapRequest(_ context.Context, id string, patch domain.SwapPatch) (*domain.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.requestIndex(id)
	if i < 0 {
		return nil, domain.ErrSwapNotFound
	}

	merged, err := patch.ApplyTo(s.requests[i])
	if err != nil {
		return nil, err
	}
	s.requests[i] = merged

	out := merged.Clone()
	return &out, nil
}

func (s *Store) DeleteSwapRequest(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.requestIndex(id)
	if i < 0 {
		return domain.ErrSwapNotFound
	}
	s.requests = append(s.requests[:i:i], s.requests[i+1:]...)
	return nil
}

func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) requestIndex(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}
