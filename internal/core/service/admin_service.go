package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

var _ ports.AdminService = (*AdminService)(nil)

const reportQueued = "queued"

// AdminService backs the moderation panel. Flags and announcements live in
// memory next to the directory; report generation is not implemented.
type AdminService struct {
	store     ports.DirectoryStore
	publisher ports.AnnouncementPublisher
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string

	mu            sync.RWMutex
	flags         []domain.FlaggedContent
	announcements []domain.Announcement
}

// NewAdminService returns an AdminService seeded with flags. publisher may be
// nil, in which case announcements are only recorded.
func NewAdminService(store ports.DirectoryStore, flags []domain.FlaggedContent, publisher ports.AnnouncementPublisher, log zerolog.Logger) *AdminService {
	return &AdminService{
		store:     store,
		publisher: publisher,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		flags:     append([]domain.FlaggedContent(nil), flags...),
	}
}

func (s *AdminService) Stats(ctx context.Context) ports.PlatformStats {
	snap := s.store.Snapshot(ctx, "")

	stats := ports.PlatformStats{TotalUsers: len(snap.Users)}
	for _, u := range snap.Users {
		if u.IsBanned {
			stats.BannedUsers++
		}
	}
	counts := query.CountByStatus(snap.SwapRequests)
	stats.PendingSwaps = counts[domain.SwapPending]
	stats.CompletedSwaps = counts[domain.SwapCompleted]
	return stats
}

func (s *AdminService) Users(ctx context.Context) ports.UserPartition {
	snap := s.store.Snapshot(ctx, "")

	out := ports.UserPartition{Active: []domain.User{}, Banned: []domain.User{}}
	for _, u := range snap.Users {
		if u.IsBanned {
			out.Banned = append(out.Banned, u)
		} else {
			out.Active = append(out.Active, u)
		}
	}
	return out
}

func (s *AdminService) Ban(ctx context.Context, userID string) (*domain.User, error) {
	return s.setBanned(ctx, userID, true)
}

func (s *AdminService) Unban(ctx context.Context, userID string) (*domain.User, error) {
	return s.setBanned(ctx, userID, false)
}

func (s *AdminService) setBanned(ctx context.Context, userID string, banned bool) (*domain.User, error) {
	u, err := s.store.MutateUser(ctx, userID, func(u *domain.User) error {
		u.IsBanned = banned
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Bool("banned", banned).Msg("ban state changed")
	return u, nil
}

func (s *AdminService) FlaggedContent(_ context.Context) []domain.FlaggedContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.FlaggedContent{}, s.flags...)
}

// ResolveFlag marks a flag resolved. Resolving twice is not an error.
func (s *AdminService) ResolveFlag(_ context.Context, flagID string) (*domain.FlaggedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.flags {
		if s.flags[i].ID == flagID {
			s.flags[i].Status = domain.FlagResolved
			out := s.flags[i]
			s.log.Info().Str("flag_id", flagID).Msg("flag resolved")
			return &out, nil
		}
	}
	return nil, domain.ErrFlagNotFound
}

// Announce records message and pushes it to live subscribers.
func (s *AdminService) Announce(_ context.Context, message string) (*domain.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: announcement message is required", domain.ErrInvalidInput)
	}

	a := domain.Announcement{ID: s.newID(), Message: message, CreatedAt: s.now()}

	s.mu.Lock()
	s.announcements = append(s.announcements, a)
	s.mu.Unlock()

	if s.publisher != nil {
		s.publisher.Publish(a)
	}
	s.log.Info().Str("announcement_id", a.ID).Msg("announcement published")
	return &a, nil
}

func (s *AdminService) Announcements(_ context.Context) []domain.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Announcement{}, s.announcements...)
}

// RequestReport acknowledges a report request with a queued ticket.
func (s *AdminService) RequestReport(_ context.Context, reportType domain.ReportType) (*domain.ReportTicket, error) {
	if !reportType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReport, reportType)
	}
	ticket := &domain.ReportTicket{
		ID:          s.newID(),
		Type:        reportType,
		Status:      reportQueued,
		RequestedAt: s.now(),
	}
	s.log.Info().Str("report_id", ticket.ID).Str("type", string(reportType)).Msg("report requested")
	return ticket, nil
}
