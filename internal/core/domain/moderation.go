package domain

import (
	"errors"
	"time"
)

var (
	ErrFlagNotFound  = errors.New("flagged content not found")
	ErrUnknownReport = errors.New("unknown report type")
)

// FlagStatus is the review state of a flagged item.
type FlagStatus string

const (
	FlagPending  FlagStatus = "pending"
	FlagResolved FlagStatus = "resolved"
)

// FlaggedContent is an item queued for moderator review.
type FlaggedContent struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"` // skill, profile or message
	Content  string     `json:"content"`
	Reporter string     `json:"user"`
	Status   FlagStatus `json:"status"`
}

// Announcement is a platform-wide message broadcast by an admin.
type Announcement struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportType names an exportable admin report.
type ReportType string

const (
	ReportUserActivity ReportType = "user-activity"
	ReportSwapStats    ReportType = "swap-stats"
	ReportFeedbackLogs ReportType = "feedback-logs"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportUserActivity, ReportSwapStats, ReportFeedbackLogs:
		return true
	}
	return false
}

// ReportTicket acknowledges a report request. Generation itself is not
// implemented; every ticket stays queued.
type ReportTicket struct {
	ID          string     `json:"id"`
	Type        ReportType `json:"type"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
}

// Snapshot is a consistent, deep-copied view of the directory.
type Snapshot struct {
	SessionUser  *User
	Users        []User
	SwapRequests []SwapRequest
}
