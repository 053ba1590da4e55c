package domain

import (
	"errors"
	"fmt"
)

// SkillLevel is the self-assessed proficiency attached to a skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists every level in ascending order.
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// SkillCategories is the recommended category set. Categories are free text
// and are not checked against this list.
var SkillCategories = []string{
	"Programming", "Design", "Creative", "Language",
	"Business", "Music", "Lifestyle", "Sports",
}

// AvailabilityOptions is the recommended availability tag set.
var AvailabilityOptions = []string{"Mornings", "Afternoons", "Evenings", "Weekends", "Weekdays"}

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrDuplicateSkill = errors.New("duplicate skill id")
)

// Valid reports whether l is one of the four known levels.
func (l SkillLevel) Valid() bool {
	for _, known := range SkillLevels {
		if l == known {
			return true
		}
	}
	return false
}

// Skill is immutable once created and identified by ID within its owner's list.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// SkillKind selects one of a user's two skill lists.
type SkillKind string

const (
	SkillsOffered SkillKind = "offered"
	SkillsWanted  SkillKind = "wanted"
)

func (k SkillKind) Valid() bool {
	return k == SkillsOffered || k == SkillsWanted
}

// FindSkill returns the skill with the given id from skills.
func FindSkill(skills []Skill, id string) (Skill, bool) {
	for _, s := range skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

// ValidateSkillIDs checks that no id repeats within a single skill list.
func ValidateSkillIDs(skills []Skill) error {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSkill, s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
