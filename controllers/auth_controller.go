package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanahdev/ramadan-companion/config"
	"github.com/amanahdev/ramadan-companion/utils"
)

const tokenLifetime = 24 * time.Hour

// AuthController exchanges the configured access key for a bearer token.
type AuthController struct{}

// NewAuthController creates a new controller instance.
func NewAuthController() *AuthController { return &AuthController{} }

type tokenRequest struct {
	AccessKey string `json:"access_key"`
}

// Token validates the access key and issues a JWT.
func (a *AuthController) Token(ctx *gin.Context) {
	cfg := config.Get()
	if cfg.AccessKey == "" {
		utils.Error(ctx, http.StatusBadRequest, 40010, "authentication is disabled")
		return
	}

	var req tokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid request body")
		return
	}

	if !utils.CheckAccessKey(cfg.AccessKey, req.AccessKey) {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "invalid access key")
		return
	}

	token, err := utils.GenerateToken(tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":      token,
		"expires_in": int(tokenLifetime.Seconds()),
	})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusBadRequest, 40012, "missing bearer token")
		return
	}
	tokenString := strings.TrimSpace(parts[1])

	claims, err := utils.ParseToken(tokenString)
	if err == nil && claims.ExpiresAt != nil {
		utils.BlacklistToken(tokenString, claims.ExpiresAt.Time)
	}

	utils.Success(ctx, gin.H{"message": "logged out"})
}
