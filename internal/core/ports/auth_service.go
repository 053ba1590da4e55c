package ports

import (
	"context"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

// AuthService is the identity boundary: it decides who the session user is.
type AuthService interface {
	Login(ctx context.Context, email, password string, adminMode bool) (string, *domain.User, error)
}
