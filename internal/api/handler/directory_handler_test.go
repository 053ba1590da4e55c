package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

// stubDirectoryService overrides only what each test needs; calling anything
// else panics on the nil embedded interface.
type stubDirectoryService struct {
	ports.DirectoryService
	updateFn      func(ctx context.Context, userID string, input ports.ProfileInput) (*domain.User, error)
	addSkillFn    func(ctx context.Context, userID string, input ports.NewSkillInput) (*domain.Skill, error)
	removeSkillFn func(ctx context.Context, userID string, kind domain.SkillKind, skillID string) error
	browseFn      func(ctx context.Context, filter query.BrowseFilter) ([]domain.User, error)
	profileFn     func(ctx context.Context, viewerID, userID string) (*domain.User, error)
}

func (s *stubDirectoryService) UpdateProfile(ctx context.Context, userID string, input ports.ProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, input)
}

func (s *stubDirectoryService) AddSkill(ctx context.Context, userID string, input ports.NewSkillInput) (*domain.Skill, error) {
	return s.addSkillFn(ctx, userID, input)
}

func (s *stubDirectoryService) RemoveSkill(ctx context.Context, userID string, kind domain.SkillKind, skillID string) error {
	return s.removeSkillFn(ctx, userID, kind, skillID)
}

func (s *stubDirectoryService) Browse(ctx context.Context, filter query.BrowseFilter) ([]domain.User, error) {
	return s.browseFn(ctx, filter)
}

func (s *stubDirectoryService) Profile(ctx context.Context, viewerID, userID string) (*domain.User, error) {
	return s.profileFn(ctx, viewerID, userID)
}

func TestDirectoryHandler_UpdateMe(t *testing.T) {
	e := newTestEcho()
	stub := &stubDirectoryService{
		updateFn: func(ctx context.Context, userID string, input ports.ProfileInput) (*domain.User, error) {
			if userID != "1" || input.Name != "Marc" || input.IsPublic {
				t.Fatalf("unexpected args: %s %+v", userID, input)
			}
			if len(input.Availability) != 1 || input.Availability[0] != "Weekends" {
				t.Fatalf("unexpected availability: %v", input.Availability)
			}
			return &domain.User{ID: "1", Name: input.Name}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/v1/me", `{"name":"Marc","availability":["Weekends"],"is_public":false}`), rec)
	c.Set("user_id", "1")

	if err := NewDirectoryHandler(stub).UpdateMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDirectoryHandler_UpdateMe_RequiresVisibility(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/v1/me", `{"name":"Marc"}`), rec)
	c.Set("user_id", "1")

	err := NewDirectoryHandler(&stubDirectoryService{}).UpdateMe(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDirectoryHandler_AddSkill(t *testing.T) {
	e := newTestEcho()
	stub := &stubDirectoryService{
		addSkillFn: func(ctx context.Context, userID string, input ports.NewSkillInput) (*domain.Skill, error) {
			if input.Kind != domain.SkillsWanted || input.Name != "Go" || input.Category != "Programming" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Skill{ID: "s1", Name: input.Name, Level: domain.LevelBeginner, Category: input.Category}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/me/skills/wanted", `{"name":"Go","category":"Programming"}`), rec)
	c.SetParamNames("kind")
	c.SetParamValues("wanted")
	c.Set("user_id", "1")

	if err := NewDirectoryHandler(stub).AddSkill(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestDirectoryHandler_AddSkill_UnknownLevel(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/me/skills/offered", `{"name":"Go","category":"Programming","level":"Wizard"}`), rec)
	c.SetParamNames("kind")
	c.SetParamValues("offered")
	c.Set("user_id", "1")

	if err := NewDirectoryHandler(&stubDirectoryService{}).AddSkill(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDirectoryHandler_RemoveSkill(t *testing.T) {
	e := newTestEcho()
	stub := &stubDirectoryService{
		removeSkillFn: func(ctx context.Context, userID string, kind domain.SkillKind, skillID string) error {
			if kind != domain.SkillsOffered || skillID != "2" {
				t.Fatalf("unexpected args: %s %s", kind, skillID)
			}
			return nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/me/skills/offered/2", nil), rec)
	c.SetParamNames("kind", "skill_id")
	c.SetParamValues("offered", "2")
	c.Set("user_id", "1")

	if err := NewDirectoryHandler(stub).RemoveSkill(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestDirectoryHandler_Browse(t *testing.T) {
	e := newTestEcho()
	stub := &stubDirectoryService{
		browseFn: func(ctx context.Context, filter query.BrowseFilter) ([]domain.User, error) {
			if filter.SessionUserID != "1" || filter.Search != "photo" || filter.Category != "Creative" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []domain.User{{ID: "2", Name: "Michell"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/users?search=photo&category=Creative", nil), rec)
	c.Set("user_id", "1")

	if err := NewDirectoryHandler(stub).Browse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp struct {
		Users []domain.User `json:"users"`
		Count int           `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || resp.Users[0].ID != "2" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestDirectoryHandler_Profile_Hidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubDirectoryService{
		profileFn: func(ctx context.Context, viewerID, userID string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/users/3", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set("user_id", "1")

	if err := NewDirectoryHandler(stub).Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
