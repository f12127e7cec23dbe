package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sahara/services/auth"
	"sahara/utils"
)

// AuthHandler exposes admin login and token verification.
type AuthHandler struct {
	Service auth.AuthService
	Logger  *zap.Logger
}

// NewAuthHandler wires an AuthHandler.
func NewAuthHandler(svc auth.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Logger: logger}
}

// Login exchanges email and password for a one-hour bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	result, err := h.Service.Login(input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Info("admin logged in", zap.String("email", result.Admin.Email))
	c.JSON(http.StatusOK, result)
}

// Verify validates the bearer token and returns the admin identity.
func (h *AuthHandler) Verify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	admin, err := h.Service.Verify(token)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
