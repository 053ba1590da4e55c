// Package query holds read-only projections over a directory snapshot.
// Every function here is pure: the same inputs always give the same output.
package query

import (
	"strings"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

// CategoryAll is the UI sentinel meaning "no category filter".
const CategoryAll = "All"

// BrowseFilter selects users for the directory view.
type BrowseFilter struct {
	SessionUserID string
	Search        string
	Category      string
}

// Browse returns the public, non-banned users other than the session user
// that match the search text and category, in directory order.
func Browse(users []domain.User, f BrowseFilter) []domain.User {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)
	if category == CategoryAll {
		category = ""
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID == f.SessionUserID || !u.IsPublic || u.IsBanned {
			continue
		}
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		if category != "" && !offersCategory(u, category) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesSearch(u domain.User, needle string) bool {
	if strings.Contains(strings.ToLower(u.Name), needle) {
		return true
	}
	for _, s := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			return true
		}
	}
	return u.Location != "" && strings.Contains(strings.ToLower(u.Location), needle)
}

func offersCategory(u domain.User, category string) bool {
	for _, s := range u.SkillsOffered {
		if s.Category == category {
			return true
		}
	}
	return false
}
