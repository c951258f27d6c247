package handlers

import (
	"net/http"
	"time"

	"hotelops/config"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler issues back-office session tokens.
type AuthHandler struct {
	Logger *zap.Logger
}

func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Logger: logger}
}

// AdminLoginHandler checks the configured admin password and returns a JWT.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "admin login not configured", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		h.Logger.Warn("rejected admin login attempt")
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken("admin", adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}
