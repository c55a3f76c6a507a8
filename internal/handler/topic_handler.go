package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"filosofia_go/internal/service"

	"github.com/gin-gonic/gin"
)

// TopicHandler 负责 /api/topicos 以及主题-标签关联路由。
type TopicHandler struct {
	topicService service.TopicService
}

func NewTopicHandler(topicService service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// TopicRequest 是创建和更新主题的请求体。
// categoria_id 可以是数字、数字字符串、空字符串或 null。
type TopicRequest struct {
	CategoriaID FlexID  `json:"categoria_id"`
	Questao     *string `json:"questao"`
	Topico      *string `json:"topico"`
}

// TopicTagRequest 是添加单个关联的请求体。
type TopicTagRequest struct {
	TagID FlexID `json:"tag_id"`
}

// SetTopicTagsRequest 是整体替换主题标签集合的请求体。
type SetTopicTagsRequest struct {
	TagIDs []FlexID `json:"tag_ids"`
}

func (h *TopicHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/topicos", h.List)
	api.GET("/topicos/:id", h.Detail)
	api.POST("/topicos", h.Create)
	api.PUT("/topicos/:id", h.Update)
	api.DELETE("/topicos/:id", h.Delete)

	api.POST("/topicos/:id/tags", h.AddTag)
	api.PUT("/topicos/:id/tags", h.SetTags)
	api.DELETE("/topicos/:id/tags/:tag_id", h.RemoveTag)
}

// List 支持可选的 categoria_id 过滤，空值等同于不过滤。
func (h *TopicHandler) List(c *gin.Context) {
	var categoryID *int64
	if raw := strings.TrimSpace(c.Query("categoria_id")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoria_id"})
			return
		}
		categoryID = &v
	}

	topics, err := h.topicService.List(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, "TopicHandler.List", err)
		return
	}
	respondData(c, topics)
}

// Detail 返回主题及其标签和图片。无法解析的 id 与不存在的 id 一样返回 404。
func (h *TopicHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, "TopicHandler.Detail", service.ErrTopicNotFound)
		return
	}

	detail, err := h.topicService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, "TopicHandler.Detail", err)
		return
	}
	respondData(c, detail)
}

func (h *TopicHandler) Create(c *gin.Context) {
	var req TopicRequest
	if !bindJSON(c, &req) {
		return
	}

	topic, err := h.topicService.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, "TopicHandler.Create", err)
		return
	}
	respondData(c, topic)
}

func (h *TopicHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TopicRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.topicService.Update(c.Request.Context(), id, req.input()); err != nil {
		respondError(c, "TopicHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func (h *TopicHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	changes, err := h.topicService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, "TopicHandler.Delete", err)
		return
	}
	respondDeleted(c, changes)
}

// AddTag 幂等：重复添加同一关联仍返回成功。
func (h *TopicHandler) AddTag(c *gin.Context) {
	topicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TopicTagRequest
	if !bindJSON(c, &req) {
		return
	}
	if !req.TagID.Valid {
		respondError(c, "TopicHandler.AddTag", fmt.Errorf("%w: tag_id is required", service.ErrInvalidInput))
		return
	}

	if err := h.topicService.AddTag(c.Request.Context(), topicID, req.TagID.Value); err != nil {
		respondError(c, "TopicHandler.AddTag", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// RemoveTag 关联不存在时 changes 为 0，不视为错误。
func (h *TopicHandler) RemoveTag(c *gin.Context) {
	topicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}

	changes, err := h.topicService.RemoveTag(c.Request.Context(), topicID, tagID)
	if err != nil {
		respondError(c, "TopicHandler.RemoveTag", err)
		return
	}
	respondDeleted(c, changes)
}

// SetTags 用请求中的集合替换主题的全部标签，返回实际新增和移除的标签 ID。
func (h *TopicHandler) SetTags(c *gin.Context) {
	topicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetTopicTagsRequest
	if !bindJSON(c, &req) {
		return
	}

	tagIDs := make([]int64, 0, len(req.TagIDs))
	for _, id := range req.TagIDs {
		if !id.Valid {
			respondError(c, "TopicHandler.SetTags", fmt.Errorf("%w: tag_ids must not contain empty values", service.ErrInvalidInput))
			return
		}
		tagIDs = append(tagIDs, id.Value)
	}

	diff, err := h.topicService.SetTags(c.Request.Context(), topicID, tagIDs)
	if err != nil {
		respondError(c, "TopicHandler.SetTags", err)
		return
	}
	respondData(c, diff)
}

func (r TopicRequest) input() service.TopicInput {
	return service.TopicInput{
		CategoryID: r.CategoriaID.Ptr(),
		Question:   r.Questao,
		Body:       r.Topico,
	}
}
