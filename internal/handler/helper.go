package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"filosofia_go/internal/service"
	"filosofia_go/pkg/log"

	"github.com/gin-gonic/gin"
)

// mapServiceError 把 Service 层哨兵错误转换为 HTTP 状态码和对外消息。
// 只有主题不存在是 404；其余错误（包括数据库约束错误）一律 400 并返回原始消息，
// 前端直接把 error 字段展示给管理员。
func mapServiceError(err error) (httpStatus int, message string) {
	switch {
	case errors.Is(err, service.ErrTopicNotFound):
		return http.StatusNotFound, service.ErrTopicNotFound.Error()
	case errors.Is(err, service.ErrInternal):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusBadRequest, err.Error()
	}
}

func respondError(c *gin.Context, op string, err error) {
	status, msg := mapServiceError(err)
	log.Warnw(op+" failed", "status", status, "error", err)
	c.JSON(status, gin.H{"error": msg})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    data,
	})
}

func respondDeleted(c *gin.Context, changes int64) {
	c.JSON(http.StatusOK, gin.H{
		"message": "deleted",
		"changes": changes,
	})
}

// parseIDParam 解析路径参数中的整数 ID，失败时写 400 并返回 false。
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// bindJSON 解析请求体。空请求体按 {} 处理，让缺失字段交给存储层约束去拒绝。
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		log.Warnw("invalid request body", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// FlexID 接受 JSON 数字、数字字符串、空字符串或 null。
// 浏览器表单里的 select / checkbox 值都是字符串，所以两种写法都要支持。
// 空字符串和 null 视为未设置。
type FlexID struct {
	Value int64
	Valid bool
}

func (f *FlexID) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	*f = FlexID{}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return nil
		}
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// 兼容 3.0 这类整数值的浮点写法
		fv, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || fv != float64(int64(fv)) {
			return fmt.Errorf("invalid id %q", text)
		}
		v = int64(fv)
	}
	f.Value, f.Valid = v, true
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

// Ptr 未设置时返回 nil。
func (f FlexID) Ptr() *int64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
