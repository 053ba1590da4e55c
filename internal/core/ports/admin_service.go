package ports

import (
	"context"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

// PlatformStats is the admin overview.
type PlatformStats struct {
	TotalUsers     int `json:"total_users"`
	PendingSwaps   int `json:"pending_swaps"`
	BannedUsers    int `json:"banned_users"`
	CompletedSwaps int `json:"completed_swaps"`
}

// UserPartition splits the directory by ban state.
type UserPartition struct {
	Active []domain.User `json:"active"`
	Banned []domain.User `json:"banned"`
}

// AnnouncementPublisher pushes announcements to live subscribers.
type AnnouncementPublisher interface {
	Publish(a domain.Announcement)
}

// AdminService defines moderation use cases. Callers are expected to have
// passed the admin role check already.
type AdminService interface {
	Stats(ctx context.Context) PlatformStats
	Users(ctx context.Context) UserPartition
	Ban(ctx context.Context, userID string) (*domain.User, error)
	Unban(ctx context.Context, userID string) (*domain.User, error)
	FlaggedContent(ctx context.Context) []domain.FlaggedContent
	ResolveFlag(ctx context.Context, flagID string) (*domain.FlaggedContent, error)
	Announce(ctx context.Context, message string) (*domain.Announcement, error)
	Announcements(ctx context.Context) []domain.Announcement
	RequestReport(ctx context.Context, reportType domain.ReportType) (*domain.ReportTicket, error)
}
