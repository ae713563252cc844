package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/supabase"
)

type AuthHandler struct {
	client *supabase.Client
}

func NewAuthHandler(client *supabase.Client) *AuthHandler {
	return &AuthHandler{
		client: client,
	}
}

// Login godoc
// @Summary     Operator sign-in
// @Description Authenticates the studio operator against Supabase Auth and returns the access token for the admin API
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body models.LoginRequest true "Operator credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid login request",
			Message: err.Error(),
		})
		return
	}

	session, err := h.client.SignIn(req.Email, req.Password)
	if err != nil {
		log.Printf("sign-in failed for %s: %v", req.Email, err)

		// GoTrue reports bad credentials as a 400-level grant error;
		// anything that doesn't look like one is the service misbehaving.
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "invalid") || strings.Contains(msg, "grant") || strings.Contains(msg, "credentials") {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "invalid credentials",
			})
			return
		}
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "authentication service unavailable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		Email:       session.User.Email,
	})
}

// Logout godoc
// @Summary     Operator sign-out
// @Description Acknowledges sign-out. Sessions are stateless JWTs: the client discards the token and its lifetime is governed by the auth service.
// @Tags        auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MessageResponse
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "signed out"})
}
