package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/pkg/jwt"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
)

const (
	UserIDKey = "userID"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		return "", false
	}
	return token, true
}

// Auth 로그인 필수
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			response.AuthError(c, "로그인이 필요합니다")
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			response.AuthError(c, "Authorization 헤더 형식이 잘못되었습니다")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(token, jwtSecret)
		if err != nil {
			response.AuthError(c, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 토큰이 있고 유효할 때만 사용자 설정. 잘못된 토큰은 비로그인으로 취급
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwt.ParseToken(token, jwtSecret); err == nil {
				c.Set(UserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}

// ViewerID 비로그인이면 nil
func ViewerID(c *gin.Context) *int64 {
	if id, ok := GetUserID(c); ok {
		return &id
	}
	return nil
}
