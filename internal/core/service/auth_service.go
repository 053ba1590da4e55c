package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

var _ ports.AuthService = (*AuthService)(nil)

// Credentials is the single login the directory accepts and the member it
// signs in as.
type Credentials struct {
	Email    string
	Password string
	UserID   string
}

// AuthService checks the configured credential and mints session tokens.
type AuthService struct {
	store        ports.DirectoryStore
	email        string
	passwordHash []byte
	userID       string
	jwtSecret    string
	tokenTTL     time.Duration
}

// NewAuthService hashes the configured password once so the plaintext is not
// kept in memory.
func NewAuthService(store ports.DirectoryStore, creds Credentials, jwtSecret string, tokenTTL time.Duration) (*AuthService, error) {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		store:        store,
		email:        strings.TrimSpace(creds.Email),
		passwordHash: hash,
		userID:       creds.UserID,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}, nil
}

// Login returns a signed token for the session user. adminMode only changes
// the role claim; admin routes check that claim.
func (s *AuthService) Login(ctx context.Context, email, password string, adminMode bool) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.email) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.GetUser(ctx, s.userID)
	if err != nil {
		return "", nil, err
	}
	if user.IsBanned {
		return "", nil, domain.ErrUserBanned
	}

	role := domain.RoleMember
	if adminMode {
		role = domain.RoleAdmin
	}

	token, err := s.generateToken(user.ID, role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
