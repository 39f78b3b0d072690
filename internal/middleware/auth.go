package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/pkg"
	"github.com/thomasdhughes/realworld/internal/response"
)

const userIDKey = "user_id"

// extractToken 从 Authorization header 中提取 token
// 支持 "Token <jwt>" 和 "Bearer <jwt>" 两种格式
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && (parts[0] == "Token" || parts[0] == "Bearer") {
		return parts[1]
	}
	return ""
}

// JWTAuth JWT 认证中间件（必需认证）
// 未携带令牌返回 401，令牌校验失败返回 403
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			dto.ErrorResponse(c, response.Unauthenticated("Missing authentication token"))
			c.Abort()
			return
		}

		userID, err := pkg.ParseToken(tokenString)
		if err != nil {
			dto.ErrorResponse(c, response.Forbidden("Invalid authentication token"))
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证中间件
// 无令牌或令牌无效时照常放行，只是不设置用户上下文
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString != "" {
			if userID, err := pkg.ParseToken(tokenString); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 取必需认证场景下的用户ID
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

// OptionalUserID 取可选认证场景下的用户ID，未认证返回 nil
func OptionalUserID(c *gin.Context) *uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
