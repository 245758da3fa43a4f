package middleware

import (
	"strings"

	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
	"learnify_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthGate is the fail-open authentication filter applied to every request.
// It resolves a Bearer token to a user and attaches the claims and a
// role-derived authority to the request context. On any failure (missing
// header, bad token, unknown user) it logs and lets the request continue
// unauthenticated. Rejection is the job of RequireAuth and RequireRoles
// further down the chain, never of the gate itself.
func AuthGate(cfg *config.Config, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("token rejected", zap.Error(err))
			c.Next()
			return
		}

		// An earlier middleware may already have authenticated the request.
		if util.GetUserFromContext(c) != nil {
			c.Next()
			return
		}

		user, err := userRepo.FindByUsername(claims.Subject)
		if err != nil {
			logger.Log.Warn("no user for token subject", zap.String("username", claims.Subject))
			c.Next()
			return
		}
		if !user.Active {
			logger.Log.Warn("token for deactivated account", zap.String("username", claims.Subject))
			c.Next()
			return
		}

		c.Set("user", claims)
		c.Set("authority", user.Role.Authority())
		c.Next()
	}
}

// RequireAuth rejects requests the gate left unauthenticated.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if util.GetUserFromContext(c) == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoles rejects authenticated requests whose role is not listed.
// Admins pass every role check.
func RequireRoles(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role == model.Admin {
			c.Next()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}
