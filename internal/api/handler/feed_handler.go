package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LiveFeed upgrades a request into an announcement subscription.
type LiveFeed interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

// FeedHandler serves the announcement websocket.
type FeedHandler struct {
	feed LiveFeed
	log  zerolog.Logger
}

func NewFeedHandler(feed LiveFeed, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{feed: feed, log: log}
}

// Subscribe handles GET /v1/announcements/ws.
//
// @Summary      Live announcement feed (websocket)
// @Tags         announcements
// @Security     BearerAuth
// @Param        access_token  query  string  false  "JWT for clients that cannot set headers"
// @Success      101
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/announcements/ws [get]
func (h *FeedHandler) Subscribe(c echo.Context) error {
	if h.feed == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "live feed unavailable")
	}
	if err := h.feed.Serve(c.Response(), c.Request()); err != nil {
		// the upgrader has already written the failure response
		h.log.Warn().
			Err(err).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("announcement feed subscription failed")
	}
	return nil
}
