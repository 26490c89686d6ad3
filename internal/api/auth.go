package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matjipduo/backend/internal/service"
	"github.com/matjipduo/backend/internal/types"
)

// AuthHandler exposes login and logout for the shared-passphrase gate.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Secret)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong secret"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("session_token")
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
