package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey 是 Request ID 在 gin.Context 中的键
	RequestIDKey    = "requestID"
	RequestIDHeader = "X-Request-Id"
)

// RequestID 优先沿用客户端传入的 X-Request-Id，否则生成新的，并写回响应头。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
