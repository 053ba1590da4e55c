package handler

import (
	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Admin requests an admin-mode session.
	Admin bool `json:"admin"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Directory ---

type updateProfileRequest struct {
	Name         string   `json:"name"          validate:"required,max=100"`
	Location     string   `json:"location"      validate:"max=100"`
	Bio          string   `json:"bio"           validate:"max=500"`
	ProfilePhoto string   `json:"profile_photo" validate:"omitempty,url"`
	Availability []string `json:"availability"  validate:"max=7,dive,max=30"`
	IsPublic     *bool    `json:"is_public"     validate:"required"`
}

type addSkillRequest struct {
	Name     string `json:"name"     validate:"required,max=80"`
	Level    string `json:"level"    validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Category string `json:"category" validate:"required,max=50"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}

// --- Swaps ---

type proposeSwapRequest struct {
	ToUserID         string `json:"to_user_id"         validate:"required"`
	OfferedSkillID   string `json:"offered_skill_id"   validate:"required"`
	RequestedSkillID string `json:"requested_skill_id" validate:"required"`
	Message          string `json:"message"            validate:"max=1000"`
}

type completeSwapRequest struct {
	Rating   int    `json:"rating"   validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"max=1000"`
}

type swapLinks struct {
	Self string `json:"self"`
}

type swapResponse struct {
	domain.SwapRequest
	Links swapLinks `json:"_links"`
}

type swapsResponse struct {
	Swaps []swapResponse `json:"swaps"`
	Count int            `json:"count"`
}

// --- Admin ---

type announceRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type announcementsResponse struct {
	Announcements []domain.Announcement `json:"announcements"`
}

type flagsResponse struct {
	Flags []domain.FlaggedContent `json:"flags"`
}
