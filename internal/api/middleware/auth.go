package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/cinefeed/pkg/response"
)

const contextUserIDKey = "auth.user_id"

// Auth 校验 Bearer JWT 并把用户 id 放进请求上下文
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		c.Set(contextUserIDKey, sub)
		c.Next()
	}
}

// CurrentUserID 取认证中间件写入的用户 id；未认证路由上为空串
func CurrentUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
