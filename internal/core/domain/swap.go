package domain

import (
	"errors"
	"fmt"
	"time"
)

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
)

const (
	MinRating = 1
	MaxRating = 5
)

// validSwapTransitions defines the allowed state machine transitions.
// Withdrawal of a pending request is a deletion, not a transition.
var validSwapTransitions = map[SwapStatus][]SwapStatus{
	SwapPending:  {SwapAccepted, SwapRejected},
	SwapAccepted: {SwapCompleted},
}

var (
	ErrSwapNotFound      = errors.New("swap request not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSwapLocked        = errors.New("swap request can no longer be edited")
	ErrInvalidRating     = errors.New("rating must be an integer between 1 and 5 and is only allowed on completion")
	ErrSelfSwap          = errors.New("cannot propose a swap to yourself")
	ErrProposalInFlight  = errors.New("a proposal with this idempotency key is still in progress")
)

// Valid reports whether s is one of the four known statuses.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapPending, SwapAccepted, SwapRejected, SwapCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	for _, allowed := range validSwapTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s SwapStatus) IsTerminal() bool {
	return len(validSwapTransitions[s]) == 0
}

// SwapRequest is a proposal to exchange one of the requester's offered
// skills for one of the recipient's offered skills. The skills are value
// copies taken at creation time.
type SwapRequest struct {
	ID             string     `json:"id"`
	FromUserID     string     `json:"from_user_id"`
	ToUserID       string     `json:"to_user_id"`
	OfferedSkill   Skill      `json:"offered_skill"`
	RequestedSkill Skill      `json:"requested_skill"`
	Status         SwapStatus `json:"status"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
	Rating         *int       `json:"rating,omitempty"`
	Feedback       *string    `json:"feedback,omitempty"`
}

// Clone returns a copy that shares no pointers with r.
func (r SwapRequest) Clone() SwapRequest {
	out := r
	if r.Rating != nil {
		v := *r.Rating
		out.Rating = &v
	}
	if r.Feedback != nil {
		v := *r.Feedback
		out.Feedback = &v
	}
	return out
}

// Involves reports whether userID is either participant.
func (r SwapRequest) Involves(userID string) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Counterpart returns the other participant's id.
func (r SwapRequest) Counterpart(userID string) string {
	if r.FromUserID == userID {
		return r.ToUserID
	}
	return r.FromUserID
}

// SwapDraft carries the caller-supplied fields of a new request.
type SwapDraft struct {
	FromUserID     string
	ToUserID       string
	OfferedSkill   Skill
	RequestedSkill Skill
	Message        string
}

// SwapPatch lists the fields a swap request merge may touch. Nil fields
// are left unchanged.
type SwapPatch struct {
	Status   *SwapStatus
	Message  *string
	Rating   *int
	Feedback *string
}

// IsEmpty reports whether the patch changes nothing.
func (p SwapPatch) IsEmpty() bool {
	return p.Status == nil && p.Message == nil && p.Rating == nil && p.Feedback == nil
}

// ApplyTo merges p into a copy of r and returns it. The record itself is
// never modified, so a rejected patch leaves no trace.
func (p SwapPatch) ApplyTo(r SwapRequest) (SwapRequest, error) {
	if p.IsEmpty() {
		return r.Clone(), nil
	}

	if r.Status.IsTerminal() {
		if p.Status != nil {
			return SwapRequest{}, fmt.Errorf("%w (from %s to %s)", ErrInvalidTransition, r.Status, *p.Status)
		}
		return SwapRequest{}, fmt.Errorf("%w (status %s)", ErrSwapLocked, r.Status)
	}

	next := r.Status
	if p.Status != nil {
		if !r.Status.CanTransitionTo(*p.Status) {
			return SwapRequest{}, fmt.Errorf("%w (from %s to %s)", ErrInvalidTransition, r.Status, *p.Status)
		}
		next = *p.Status
	}

	if p.Message != nil && r.Status != SwapPending {
		return SwapRequest{}, fmt.Errorf("%w: message is editable only while pending", ErrSwapLocked)
	}

	if next == SwapCompleted {
		if p.Rating == nil || *p.Rating < MinRating || *p.Rating > MaxRating {
			return SwapRequest{}, ErrInvalidRating
		}
	} else if p.Rating != nil || p.Feedback != nil {
		return SwapRequest{}, ErrInvalidRating
	}

	out := r.Clone()
	out.Status = next
	if p.Message != nil {
		out.Message = *p.Message
	}
	if p.Rating != nil {
		v := *p.Rating
		out.Rating = &v
	}
	if p.Feedback != nil {
		v := *p.Feedback
		out.Feedback = &v
	}
	return out, nil
}

// SwapCompletedEvent is published after a request reaches completed.
type SwapCompletedEvent struct {
	Request     SwapRequest
	CompletedBy string
	// RatedUserID is the counterpart of CompletedBy; the rating is about them.
	RatedUserID string
	OccurredAt  time.Time
}
