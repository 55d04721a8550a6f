// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"quickchat/auth"

	"github.com/labstack/echo/v4"
)

// LoginHandler godoc
// @Summary      Login
// @Description  Checks the configured account credentials and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} LoginResponse      "Login successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/login [post]
func (h *Handler) LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Username == "" {
		logger.Error("Username is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "username field is required",
		}
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	if !h.Account.Login(req.Username, req.Password) {
		logger.Error("Password verification failed.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Credentials are incorrect, please check your username and password",
		}
	}

	token, err := auth.IssueToken(h.Secret, req.Username)
	if err != nil {
		logger.Errorf("Failed to sign token: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, LoginResponse{SessionToken: token, Message: "Login successful"})
}
