package ports

import (
	"context"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

// DirectoryStore is the single writer of User and SwapRequest records.
// Every read returns copies; a mutation is either fully visible or not at all.
type DirectoryStore interface {
	// Snapshot returns the whole directory plus the session user resolved
	// from the same view. SessionUser is nil when sessionUserID is unknown.
	Snapshot(ctx context.Context, sessionUserID string) domain.Snapshot

	GetUser(ctx context.Context, id string) (*domain.User, error)
	// ReplaceUser swaps the stored record for user wholesale.
	ReplaceUser(ctx context.Context, user domain.User) error
	// MutateUser applies fn to a copy of the stored record and replaces the
	// record with the result, all under one write lock.
	MutateUser(ctx context.Context, id string, fn func(u *domain.User) error) (*domain.User, error)

	GetSwapRequest(ctx context.Context, id string) (*domain.SwapRequest, error)
	CreateSwapRequest(ctx context.Context, draft domain.SwapDraft) (*domain.SwapRequest, error)
	// PatchSwapRequest merges patch into the stored record field by field.
	PatchSwapRequest(ctx context.Context, id string, patch domain.SwapPatch) (*domain.SwapRequest, error)
	DeleteSwapRequest(ctx context.Context, id string) error
}
