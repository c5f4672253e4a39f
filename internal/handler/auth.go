package handler

import (
	"net/http"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth service.AuthService }

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login never distinguishes unknown user from wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid refresh token"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
