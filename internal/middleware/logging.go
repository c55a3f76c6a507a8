package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"filosofia_go/pkg/log"

	"github.com/gin-gonic/gin"
)

// maxLoggedBody 超过该长度的请求/响应体被截断后再写日志
const maxLoggedBody = 4 << 10

// BodyLogWriter 用于记录请求和响应的body
type BodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 实现了 io.Writer 接口，将响应写入 gin.ResponseWriter 和一个内部的 buffer
func (w *BodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// RequestLogger 作为gin.HandlerFunc，记录每个请求的耗时和状态码。
// 只有 /api 下的接口会额外记录请求体和响应体，静态资源只记录概要。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		path := c.Request.URL.Path
		withBody := strings.HasPrefix(path, "/api/") && path != "/api/ws"

		var requestBody []byte
		var blw *BodyLogWriter
		if withBody {
			// 读取并重新缓存请求体
			if c.Request.Body != nil {
				requestBody, _ = io.ReadAll(c.Request.Body)
			}
			// 将读取的请求体重新设置回 c.Request.Body，以便后续处理函数可以正常读取
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))

			blw = &BodyLogWriter{
				ResponseWriter: c.Writer,
				body:           &bytes.Buffer{},
			}
			c.Writer = blw
		}

		c.Next()

		fields := []interface{}{
			"latency", time.Since(startTime),
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
			"request_id", c.GetString(RequestIDKey),
		}
		if withBody {
			fields = append(fields,
				"request_body", truncate(string(requestBody)),
				"response_body", truncate(blw.body.String()),
			)
		}
		log.Infow("HTTP request", fields...)
	}
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "...(truncated)"
}
