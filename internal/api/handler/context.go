package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// sessionUserID extracts the session user injected by the Auth middleware.
// A token without a user_id claim is structurally valid but cannot act on
// the directory, so it is rejected with 401.
func sessionUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}
	return userID, nil
}
