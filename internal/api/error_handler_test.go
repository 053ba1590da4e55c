package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("propose swap: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{domain.ErrSwapNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserBanned, http.StatusForbidden},
		{domain.ErrInvalidTransition, http.StatusConflict},
		{domain.ErrProposalInFlight, http.StatusConflict},
		{domain.ErrInvalidRating, http.StatusUnprocessableEntity},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/swaps", nil), rec)
		handle(tc.err, c)
		if rec.Code != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestHTTPErrorHandler_HidesUnexpectedErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/me", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("redis: connection refused"), c)

	if body := rec.Body.String(); body != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}
