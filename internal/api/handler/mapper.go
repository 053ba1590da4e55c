package handler

import (
	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

// --- Request → Service input ---

func toProfileInput(req updateProfileRequest) ports.ProfileInput {
	return ports.ProfileInput{
		Name:         req.Name,
		Location:     req.Location,
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
		Availability: req.Availability,
		IsPublic:     req.IsPublic != nil && *req.IsPublic,
	}
}

func toNewSkillInput(kind string, req addSkillRequest) ports.NewSkillInput {
	return ports.NewSkillInput{
		Kind:     domain.SkillKind(kind),
		Name:     req.Name,
		Level:    domain.SkillLevel(req.Level),
		Category: req.Category,
	}
}

func toProposeInput(req proposeSwapRequest, idempotencyKey string) ports.ProposeSwapInput {
	return ports.ProposeSwapInput{
		ToUserID:         req.ToUserID,
		OfferedSkillID:   req.OfferedSkillID,
		RequestedSkillID: req.RequestedSkillID,
		Message:          req.Message,
		IdempotencyKey:   idempotencyKey,
	}
}

func toCompleteInput(req completeSwapRequest) ports.CompleteSwapInput {
	return ports.CompleteSwapInput{Rating: req.Rating, Feedback: req.Feedback}
}

// --- Domain → Response ---

func toSwapResponse(r domain.SwapRequest) swapResponse {
	return swapResponse{SwapRequest: r, Links: swapLinks{Self: "/v1/swaps/" + r.ID}}
}

func toSwapsResponse(rs []domain.SwapRequest) swapsResponse {
	out := swapsResponse{Swaps: make([]swapResponse, 0, len(rs)), Count: len(rs)}
	for _, r := range rs {
		out.Swaps = append(out.Swaps, toSwapResponse(r))
	}
	return out
}
