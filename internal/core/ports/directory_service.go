package ports

import (
	"context"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

// ProfileInput holds the user-editable profile fields. Rating, review count,
// ban state and join date are never taken from callers.
type ProfileInput struct {
	Name         string
	Location     string
	Bio          string
	ProfilePhoto string
	Availability []string
	IsPublic     bool
}

// NewSkillInput describes a skill to append to one of the user's lists.
type NewSkillInput struct {
	Kind     domain.SkillKind
	Name     string
	Level    domain.SkillLevel
	Category string
}

// Dashboard summarises the session user's activity.
type Dashboard struct {
	SkillsOffered  int `json:"skills_offered"`
	SkillsWanted   int `json:"skills_wanted"`
	PendingSwaps   int `json:"pending_swaps"`
	AcceptedSwaps  int `json:"accepted_swaps"`
	CompletedSwaps int `json:"completed_swaps"`
}

// Catalog lists the recommended values the UI offers.
type Catalog struct {
	Categories   []string            `json:"categories"`
	Levels       []domain.SkillLevel `json:"levels"`
	Availability []string            `json:"availability"`
}

// DirectoryService defines profile and browsing use cases.
type DirectoryService interface {
	Me(ctx context.Context, sessionUserID string) (*domain.User, error)
	Profile(ctx context.Context, viewerID, userID string) (*domain.User, error)
	Browse(ctx context.Context, filter query.BrowseFilter) ([]domain.User, error)
	UpdateProfile(ctx context.Context, sessionUserID string, input ProfileInput) (*domain.User, error)
	AddSkill(ctx context.Context, sessionUserID string, input NewSkillInput) (*domain.Skill, error)
	RemoveSkill(ctx context.Context, sessionUserID string, kind domain.SkillKind, skillID string) error
	Dashboard(ctx context.Context, sessionUserID string) (*Dashboard, error)
	Catalog() Catalog
}
