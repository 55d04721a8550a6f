// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"quickchat/auth"

	"github.com/labstack/echo/v4"
)

const usernameKey = "username"

// VerifyAuthMiddleware rejects requests without a valid bearer login token.
func VerifyAuthMiddleware(secret []byte) func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				}
			}

			username, err := auth.ParseToken(secret, token)
			if err != nil {
				logger.Error("Authentication failed.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired authentication token",
				}
			}

			c.Set(usernameKey, username)
			return next(c)
		}
	}
}

func GetAuthenticatedUsername(c echo.Context) (string, error) {
	if username, ok := c.Get(usernameKey).(string); ok && username != "" {
		return username, nil
	}
	return "", errors.New("no authenticated user found")
}
