package handler

import (
	"filosofia_go/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler 负责 /api/tags 路由。标签没有更新接口。
type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

type TagRequest struct {
	Nome *string `json:"nome"`
}

func (h *TagHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/tags", h.List)
	api.POST("/tags", h.Create)
	api.DELETE("/tags/:id", h.Delete)
}

// List 按名称升序返回全部标签。
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		respondError(c, "TagHandler.List", err)
		return
	}
	respondData(c, tags)
}

// Create 名称重复时返回 400 和数据库的原始错误信息。
func (h *TagHandler) Create(c *gin.Context) {
	var req TagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), req.Nome)
	if err != nil {
		respondError(c, "TagHandler.Create", err)
		return
	}
	respondData(c, tag)
}

// Delete 只删除标签本身，主题上的关联保留但不再出现在详情中。
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	changes, err := h.tagService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, "TagHandler.Delete", err)
		return
	}
	respondDeleted(c, changes)
}
