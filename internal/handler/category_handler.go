package handler

import (
	"net/http"

	"filosofia_go/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 负责 /api/categorias 路由。
type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest 是创建和更新分类的请求体，缺失字段以 NULL 写入。
type CategoryRequest struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
}

func (h *CategoryHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/categorias", h.List)
	api.POST("/categorias", h.Create)
	api.PUT("/categorias/:id", h.Update)
	api.DELETE("/categorias/:id", h.Delete)
}

// List 返回全部分类，不保证顺序。
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, "CategoryHandler.List", err)
		return
	}
	respondData(c, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Nome, req.Descricao)
	if err != nil {
		respondError(c, "CategoryHandler.Create", err)
		return
	}
	respondData(c, category)
}

// Update 不检查分类是否存在；id 不存在时同样返回成功。
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.categoryService.Update(c.Request.Context(), id, req.Nome, req.Descricao); err != nil {
		respondError(c, "CategoryHandler.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	changes, err := h.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, "CategoryHandler.Delete", err)
		return
	}
	respondDeleted(c, changes)
}
