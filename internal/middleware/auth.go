package middleware

import (
	"errors"
	"strings"

	"quizapp_backend/internal/model"
	"quizapp_backend/internal/service"
	"quizapp_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware resolves the bearer token (or ?token=) to its session user.
// Expired and unknown tokens both end the request here.
func AuthMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := sessions.Validate(token)
		if err != nil {
			if errors.Is(err, util.ErrTokenNotFound) || errors.Is(err, util.ErrSessionExpired) {
				util.Error(c, 401, err.Error())
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Set("token", token)
		c.Next()
	}
}

// RoleMiddleware admits only the listed roles.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) *model.User {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func GetTokenFromContext(c *gin.Context) string {
	v, exists := c.Get("token")
	if !exists {
		return ""
	}
	token, _ := v.(string)
	return token
}
