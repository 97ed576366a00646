package middleware

import (
	"errors"
	"net/http"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/internal/model"
	"skill_assessment_backend/internal/util"
	"skill_assessment_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bearerToken 只认 Authorization: Bearer <token>，scheme 不区分大小写
func bearerToken(c *gin.Context) (string, bool) {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Header("WWW-Authenticate", `Bearer realm="skill-assessment"`)
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if errors.Is(err, util.ErrTokenExpired) {
			util.Error(c, http.StatusUnauthorized, "token expired")
			c.Abort()
			return
		}
		if err != nil {
			logger.Log.Debug("JWT rejected", zap.Error(err), zap.String("path", c.FullPath()))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ClaimsKey, claims)
		c.Next()
	}
}

// RoleMiddleware 管理员直接放行
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		allowed := user.IsAdmin()
		for _, role := range roles {
			if user.Role == role {
				allowed = true
				break
			}
		}

		if !allowed {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
