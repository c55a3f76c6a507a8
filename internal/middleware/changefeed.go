package middleware

import (
	"net/http"
	"strings"

	"filosofia_go/internal/events"

	"github.com/gin-gonic/gin"
)

// Publisher 接收目录变更事件，events.Hub 实现了该接口。
type Publisher interface {
	Publish(e events.Event)
}

// ChangeFeed 在 /api 下的写请求成功（状态码 < 400）后发布一条变更事件。
func ChangeFeed(pub Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if pub == nil || !isMutation(c.Request.Method) {
			return
		}
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/") {
			return
		}
		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			return
		}
		pub.Publish(events.Event{
			Type:   events.TypeCatalogChanged,
			Method: c.Request.Method,
			Path:   path,
			Status: status,
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
