package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

var _ ports.DirectoryService = (*DirectoryService)(nil)

// DirectoryService serves profiles, browsing and the session user's own
// skill lists.
type DirectoryService struct {
	store ports.DirectoryStore
	log   zerolog.Logger
	newID func() string
}

func NewDirectoryService(store ports.DirectoryStore, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{store: store, log: log, newID: uuid.NewString}
}

func (s *DirectoryService) Me(ctx context.Context, sessionUserID string) (*domain.User, error) {
	return s.store.GetUser(ctx, sessionUserID)
}

// Profile returns userID as seen by viewerID. Private and banned members are
// only visible to themselves.
func (s *DirectoryService) Profile(ctx context.Context, viewerID, userID string) (*domain.User, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.ID != viewerID && (!u.IsPublic || u.IsBanned) {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *DirectoryService) Browse(ctx context.Context, filter query.BrowseFilter) ([]domain.User, error) {
	snap := s.store.Snapshot(ctx, filter.SessionUserID)
	return query.Browse(snap.Users, filter), nil
}

// UpdateProfile overwrites the editable profile fields. Skills, rating,
// review count, ban state and join date are carried over untouched.
func (s *DirectoryService) UpdateProfile(ctx context.Context, sessionUserID string, input ports.ProfileInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	updated, err := s.store.MutateUser(ctx, sessionUserID, func(u *domain.User) error {
		u.Name = name
		u.Location = strings.TrimSpace(input.Location)
		u.Bio = strings.TrimSpace(input.Bio)
		u.ProfilePhoto = strings.TrimSpace(input.ProfilePhoto)
		u.Availability = dedupe(input.Availability)
		u.IsPublic = input.IsPublic
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", sessionUserID).Bool("is_public", updated.IsPublic).Msg("profile updated")
	return updated, nil
}

// AddSkill appends a new skill to one of the session user's lists. Level
// defaults to Beginner.
func (s *DirectoryService) AddSkill(ctx context.Context, sessionUserID string, input ports.NewSkillInput) (*domain.Skill, error) {
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown skill list %q", domain.ErrInvalidInput, input.Kind)
	}
	skill := domain.Skill{
		ID:       s.newID(),
		Name:     strings.TrimSpace(input.Name),
		Level:    input.Level,
		Category: strings.TrimSpace(input.Category),
	}
	if skill.Name == "" || skill.Category == "" {
		return nil, fmt.Errorf("%w: skill name and category are required", domain.ErrInvalidInput)
	}
	if skill.Level == "" {
		skill.Level = domain.LevelBeginner
	}
	if !skill.Level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %q", domain.ErrInvalidInput, skill.Level)
	}

	_, err := s.store.MutateUser(ctx, sessionUserID, func(u *domain.User) error {
		u.SetSkills(input.Kind, append(u.Skills(input.Kind), skill))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", sessionUserID).Str("skill_id", skill.ID).Str("kind", string(input.Kind)).Msg("skill added")
	return &skill, nil
}

// RemoveSkill drops skillID from the selected list. Swap requests keep their
// own copies of the skill.
func (s *DirectoryService) RemoveSkill(ctx context.Context, sessionUserID string, kind domain.SkillKind, skillID string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown skill list %q", domain.ErrInvalidInput, kind)
	}

	_, err := s.store.MutateUser(ctx, sessionUserID, func(u *domain.User) error {
		current := u.Skills(kind)
		kept := make([]domain.Skill, 0, len(current))
		for _, sk := range current {
			if sk.ID != skillID {
				kept = append(kept, sk)
			}
		}
		if len(kept) == len(current) {
			return domain.ErrSkillNotFound
		}
		u.SetSkills(kind, kept)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", sessionUserID).Str("skill_id", skillID).Str("kind", string(kind)).Msg("skill removed")
	return nil
}

func (s *DirectoryService) Dashboard(ctx context.Context, sessionUserID string) (*ports.Dashboard, error) {
	snap := s.store.Snapshot(ctx, sessionUserID)
	if snap.SessionUser == nil {
		return nil, domain.ErrUserNotFound
	}

	mine := query.Requests(snap.SwapRequests, query.RequestFilter{SessionUserID: sessionUserID})
	counts := query.CountByStatus(mine)

	return &ports.Dashboard{
		SkillsOffered:  len(snap.SessionUser.SkillsOffered),
		SkillsWanted:   len(snap.SessionUser.SkillsWanted),
		PendingSwaps:   counts[domain.SwapPending],
		AcceptedSwaps:  counts[domain.SwapAccepted],
		CompletedSwaps: counts[domain.SwapCompleted],
	}, nil
}

func (s *DirectoryService) Catalog() ports.Catalog {
	return ports.Catalog{
		Categories:   append([]string(nil), domain.SkillCategories...),
		Levels:       append([]domain.SkillLevel(nil), domain.SkillLevels...),
		Availability: append([]string(nil), domain.AvailabilityOptions...),
	}
}

// dedupe trims tags and drops blanks and repeats, keeping first-seen order.
func dedupe(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
