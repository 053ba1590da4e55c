package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsaathi/skill-swap/internal/api/metrics"
	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/query"
)

// SwapHandler exposes the swap lifecycle.
type SwapHandler struct {
	service ports.SwapService
}

func NewSwapHandler(service ports.SwapService) *SwapHandler {
	return &SwapHandler{service: service}
}

// List handles GET /v1/swaps.
//
// @Summary      Session user's swap requests
// @Tags         swaps
// @Produce      json
// @Security     BearerAuth
// @Param        direction  query     string  false  "all, sent or received"
// @Param        status     query     string  false  "all, pending, accepted, rejected or completed"
// @Success      200        {object}  swapsResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/swaps [get]
func (h *SwapHandler) List(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	swaps, err := h.service.List(c.Request().Context(), query.RequestFilter{
		SessionUserID: userID,
		Direction:     query.Direction(c.QueryParam("direction")),
		Status:        c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSwapsResponse(swaps))
}

// Propose handles POST /v1/swaps.
//
// @Summary      Propose a skill swap
// @Tags         swaps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Replays return the original request"
// @Param        body             body      proposeSwapRequest  true   "Proposal"
// @Success      200              {object}  swapResponse        "Replayed proposal"
// @Success      201              {object}  swapResponse
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/swaps [post]
func (h *SwapHandler) Propose(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var req proposeSwapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	result, err := h.service.Propose(c.Request().Context(), userID, toProposeInput(req, idempotencyKey))
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.SwapsProposedTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, toSwapResponse(result.Request))
	}
	metrics.SwapsProposedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toSwapResponse(result.Request))
}

// Get handles GET /v1/swaps/:id.
//
// @Summary      Get a swap request
// @Tags         swaps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Swap id"
// @Success      200  {object}  swapResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/swaps/{id} [get]
func (h *SwapHandler) Get(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	r, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSwapResponse(*r))
}

// Withdraw handles DELETE /v1/swaps/:id.
//
// @Summary      Withdraw a pending request (requester only)
// @Tags         swaps
// @Security     BearerAuth
// @Param        id  path  string  true  "Swap id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/swaps/{id} [delete]
func (h *SwapHandler) Withdraw(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	if err := h.service.Withdraw(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	metrics.SwapTransitionsTotal.WithLabelValues("withdrawn").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Accept handles POST /v1/swaps/:id/accept.
//
// @Summary      Accept a pending request (recipient only)
// @Tags         swaps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Swap id"
// @Success      200  {object}  swapResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/swaps/{id}/accept [post]
func (h *SwapHandler) Accept(c echo.Context) error {
	return h.respond(c, h.service.Accept)
}

// Reject handles POST /v1/swaps/:id/reject.
//
// @Summary      Reject a pending request (recipient only)
// @Tags         swaps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Swap id"
// @Success      200  {object}  swapResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/swaps/{id}/reject [post]
func (h *SwapHandler) Reject(c echo.Context) error {
	return h.respond(c, h.service.Reject)
}

type transitionFunc func(ctx context.Context, actorID, swapID string) (*domain.SwapRequest, error)

func (h *SwapHandler) respond(c echo.Context, move transitionFunc) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	r, err := move(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.SwapTransitionsTotal.WithLabelValues(string(r.Status)).Inc()
	return c.JSON(http.StatusOK, toSwapResponse(*r))
}

// Complete handles POST /v1/swaps/:id/complete.
//
// @Summary      Complete an accepted swap with a rating (either participant)
// @Tags         swaps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Swap id"
// @Param        body  body      completeSwapRequest  true  "Rating and feedback"
// @Success      200   {object}  swapResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/swaps/{id}/complete [post]
func (h *SwapHandler) Complete(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var req completeSwapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	r, err := h.service.Complete(c.Request().Context(), userID, c.Param("id"), toCompleteInput(req))
	if err != nil {
		return err
	}
	metrics.SwapTransitionsTotal.WithLabelValues(string(domain.SwapCompleted)).Inc()
	return c.JSON(http.StatusOK, toSwapResponse(*r))
}
