package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsaathi/skill-swap/internal/api/metrics"
	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

// AdminHandler serves the moderation panel. Routes are mounted behind
// RBAC(admin).
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Platform overview
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.PlatformStats
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Stats(c.Request().Context()))
}

// Users handles GET /v1/admin/users.
//
// @Summary      Members split by ban state
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.UserPartition
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Users(c.Request().Context()))
}

// Ban handles POST /v1/admin/users/:id/ban.
//
// @Summary      Ban a member
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id}/ban [post]
func (h *AdminHandler) Ban(c echo.Context) error {
	u, err := h.service.Ban(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Unban handles POST /v1/admin/users/:id/unban.
//
// @Summary      Lift a ban
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id}/unban [post]
func (h *AdminHandler) Unban(c echo.Context) error {
	u, err := h.service.Unban(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Flags handles GET /v1/admin/flags.
//
// @Summary      Flagged content queue
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  flagsResponse
// @Router       /v1/admin/flags [get]
func (h *AdminHandler) Flags(c echo.Context) error {
	return c.JSON(http.StatusOK, flagsResponse{Flags: h.service.FlaggedContent(c.Request().Context())})
}

// ResolveFlag handles POST /v1/admin/flags/:id/resolve.
//
// @Summary      Mark flagged content resolved
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Flag id"
// @Success      200  {object}  domain.FlaggedContent
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/flags/{id}/resolve [post]
func (h *AdminHandler) ResolveFlag(c echo.Context) error {
	f, err := h.service.ResolveFlag(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Announce handles POST /v1/admin/announcements.
//
// @Summary      Broadcast an announcement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      announceRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/announcements [post]
func (h *AdminHandler) Announce(c echo.Context) error {
	var req announceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := h.service.Announce(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	metrics.AnnouncementsPublishedTotal.Inc()
	return c.JSON(http.StatusCreated, a)
}

// Announcements handles GET /v1/admin/announcements and GET /v1/announcements.
//
// @Summary      Announcements published so far
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  announcementsResponse
// @Router       /v1/announcements [get]
func (h *AdminHandler) Announcements(c echo.Context) error {
	return c.JSON(http.StatusOK, announcementsResponse{Announcements: h.service.Announcements(c.Request().Context())})
}

// RequestReport handles POST /v1/admin/reports/:type.
//
// @Summary      Queue a report export
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string  true  "user-activity, swap-stats or feedback-logs"
// @Success      202   {object}  domain.ReportTicket
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/reports/{type} [post]
func (h *AdminHandler) RequestReport(c echo.Context) error {
	ticket, err := h.service.RequestReport(c.Request().Context(), domain.ReportType(c.Param("type")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, ticket)
}
