package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

// DirectoryHandler serves profiles, browsing and skill list edits.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Catalog handles GET /v1/catalog.
//
// @Summary      Recommended categories, levels and availability tags
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Catalog
// @Router       /v1/catalog [get]
func (h *DirectoryHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Catalog())
}

// Me handles GET /v1/me.
//
// @Summary      Session user profile
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/me [get]
func (h *DirectoryHandler) Me(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	u, err := h.service.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateMe handles PUT /v1/me.
//
// @Summary      Update the session user's profile
// @Tags         directory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me [put]
func (h *DirectoryHandler) UpdateMe(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := h.service.UpdateProfile(c.Request().Context(), userID, toProfileInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Dashboard handles GET /v1/me/dashboard.
//
// @Summary      Session user's skill and swap counters
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Dashboard
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/dashboard [get]
func (h *DirectoryHandler) Dashboard(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	d, err := h.service.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// AddSkill handles POST /v1/me/skills/:kind.
//
// @Summary      Add a skill to the offered or wanted list
// @Tags         directory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string           true  "offered or wanted"
// @Param        body  body      addSkillRequest  true  "Skill"
// @Success      201   {object}  domain.Skill
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me/skills/{kind} [post]
func (h *DirectoryHandler) AddSkill(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var req addSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sk, err := h.service.AddSkill(c.Request().Context(), userID, toNewSkillInput(c.Param("kind"), req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sk)
}

// RemoveSkill handles DELETE /v1/me/skills/:kind/:skill_id.
//
// @Summary      Remove a skill from the offered or wanted list
// @Tags         directory
// @Security     BearerAuth
// @Param        kind      path  string  true  "offered or wanted"
// @Param        skill_id  path  string  true  "Skill id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/me/skills/{kind}/{skill_id} [delete]
func (h *DirectoryHandler) RemoveSkill(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	kind := domain.SkillKind(c.Param("kind"))
	if err := h.service.RemoveSkill(c.Request().Context(), userID, kind, c.Param("skill_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Browse handles GET /v1/users.
//
// @Summary      Browse public members
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        search    query     string  false  "Matches name, offered skill or location"
// @Param        category  query     string  false  "Offered skill category, All for any"
// @Success      200       {object}  usersResponse
// @Router       /v1/users [get]
func (h *DirectoryHandler) Browse(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	users, err := h.service.Browse(c.Request().Context(), query.BrowseFilter{
		SessionUserID: userID,
		Search:        c.QueryParam("search"),
		Category:      c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users, Count: len(users)})
}

// Profile handles GET /v1/users/:id.
//
// @Summary      Public profile of a member
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *DirectoryHandler) Profile(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	u, err := h.service.Profile(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
