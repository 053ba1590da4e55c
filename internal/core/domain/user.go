package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserBanned         = errors.New("user is banned")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidInput       = errors.New("invalid input")
)

// User is a directory member and the owner of two skill lists.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	ProfilePhoto  string    `json:"profile_photo,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	SkillsOffered []Skill   `json:"skills_offered"`
	SkillsWanted  []Skill   `json:"skills_wanted"`
	Availability  []string  `json:"availability"`
	IsPublic      bool      `json:"is_public"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	IsBanned      bool      `json:"is_banned"`
	JoinDate      time.Time `json:"join_date"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (u User) Clone() User {
	out := u
	out.SkillsOffered = append([]Skill(nil), u.SkillsOffered...)
	out.SkillsWanted = append([]Skill(nil), u.SkillsWanted...)
	out.Availability = append([]string(nil), u.Availability...)
	return out
}

// Skills returns the list selected by kind.
func (u *User) Skills(kind SkillKind) []Skill {
	if kind == SkillsWanted {
		return u.SkillsWanted
	}
	return u.SkillsOffered
}

// SetSkills replaces the list selected by kind.
func (u *User) SetSkills(kind SkillKind, skills []Skill) {
	if kind == SkillsWanted {
		u.SkillsWanted = skills
		return
	}
	u.SkillsOffered = skills
}

// Validate enforces the per-user skill id uniqueness invariant.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := ValidateSkillIDs(u.SkillsOffered); err != nil {
		return fmt.Errorf("skills offered: %w", err)
	}
	if err := ValidateSkillIDs(u.SkillsWanted); err != nil {
		return fmt.Errorf("skills wanted: %w", err)
	}
	return nil
}

// AddReview folds a single 1–5 rating into the running average.
func (u *User) AddReview(rating int) {
	total := u.Rating*float64(u.ReviewCount) + float64(rating)
	u.ReviewCount++
	u.Rating = total / float64(u.ReviewCount)
}
