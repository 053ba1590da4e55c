package memory

import (
	"time"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

var seedJoinDate = time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)

// SeedUsers returns the demo directory loaded at process start.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:       "1",
			Name:     "Chota Bheem",
			Location: "India, Dholakpur",
			SkillsOffered: []domain.Skill{
				{ID: "1", Name: "React Development", Level: domain.LevelExpert, Category: "Programming"},
				{ID: "2", Name: "UI/UX Design", Level: domain.LevelAdvanced, Category: "Design"},
			},
			SkillsWanted: []domain.Skill{
				{ID: "3", Name: "Cooking Ladoo", Level: domain.LevelBeginner, Category: "Creative"},
				{ID: "4", Name: "Hindi", Level: domain.LevelIntermediate, Category: "Language"},
			},
			Availability: []string{"Weekends", "Evenings"},
			IsPublic:     true,
			Rating:       4.8,
			ReviewCount:  24,
			JoinDate:     seedJoinDate,
			Bio:          "Passionate developer designer and fighter looking to expand creative skills.",
		},
		{
			ID:       "2",
			Name:     "Shizuka",
			Location: "Japan, Tokyo",
			SkillsOffered: []domain.Skill{
				{ID: "5", Name: "Photography", Level: domain.LevelExpert, Category: "Creative"},
				{ID: "6", Name: "japanese", Level: domain.LevelExpert, Category: "Language"},
			},
			SkillsWanted: []domain.Skill{
				{ID: "7", Name: "Web Development", Level: domain.LevelBeginner, Category: "Programming"},
				{ID: "8", Name: "Digital Marketing", Level: domain.LevelIntermediate, Category: "Business"},
			},
			Availability: []string{"Weekends", "Mornings"},
			IsPublic:     true,
			Rating:       4.9,
			ReviewCount:  31,
			JoinDate:     seedJoinDate,
			Bio:          "Professional photographer and language tutor interested in tech skills.",
		},
		{
			ID:       "3",
			Name:     "Shinchan",
			Location: "Japan, Kasukabe",
			SkillsOffered: []domain.Skill{
				{ID: "9", Name: "Data Science", Level: domain.LevelExpert, Category: "Programming"},
				{ID: "10", Name: "Machine Learning", Level: domain.LevelAdvanced, Category: "Programming"},
			},
			SkillsWanted: []domain.Skill{
				{ID: "11", Name: "Guitar", Level: domain.LevelBeginner, Category: "Music"},
				{ID: "12", Name: "Cooking", Level: domain.LevelIntermediate, Category: "Lifestyle"},
			},
			Availability: []string{"Evenings", "Weekends"},
			IsPublic:     true,
			Rating:       4.7,
			ReviewCount:  18,
			JoinDate:     seedJoinDate,
			Bio:          "Data scientist seeking creative and practical life skills.",
		},
	}
}

// SeedSwapRequests returns the demo requests loaded at process start.
func SeedSwapRequests() []domain.SwapRequest {
	return []domain.SwapRequest{
		{
			ID:             "1",
			FromUserID:     "2",
			ToUserID:       "1",
			OfferedSkill:   domain.Skill{ID: "5", Name: "Photography", Level: domain.LevelExpert, Category: "Creative"},
			RequestedSkill: domain.Skill{ID: "1", Name: "React Development", Level: domain.LevelExpert, Category: "Programming"},
			Status:         domain.SwapPending,
			Message:        "Hi! I'd love to teach you photography in exchange for React lessons.",
			CreatedAt:      time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			FromUserID:     "3",
			ToUserID:       "1",
			OfferedSkill:   domain.Skill{ID: "9", Name: "Data Science", Level: domain.LevelExpert, Category: "Programming"},
			RequestedSkill: domain.Skill{ID: "2", Name: "UI/UX Design", Level: domain.LevelAdvanced, Category: "Design"},
			Status:         domain.SwapAccepted,
			Message:        "Interested in learning design principles from you!",
			CreatedAt:      time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
		},
	}
}

// SeedFlaggedContent returns the moderation queue shown to admins.
func SeedFlaggedContent() []domain.FlaggedContent {
	return []domain.FlaggedContent{
		{ID: "1", Type: "skill", Content: "Inappropriate cosmic ability description", Reporter: "User123", Status: domain.FlagPending},
		{ID: "2", Type: "profile", Content: "Spam in bio dimension", Reporter: "SpamUser", Status: domain.FlagPending},
		{ID: "3", Type: "message", Content: "Inappropriate portal message", Reporter: "BadActor", Status: domain.FlagResolved},
	}
}
