package handler

import (
	"net/http"

	"filosofia_go/internal/events"
	"filosofia_go/internal/middleware"
	"filosofia_go/internal/service"
	"filosofia_go/web"

	"github.com/gin-gonic/gin"
)

// RouterDeps 汇总构建路由所需的服务。Hub 为 nil 时不注册 /api/ws，也不发布变更事件。
type RouterDeps struct {
	Categories  service.CategoryService
	Topics      service.TopicService
	Tags        service.TagService
	Hub         *events.Hub
	CORSOrigins []string
	// Frontend 为 nil 时使用内嵌的 web/static
	Frontend http.FileSystem
}

// NewRouter 组装中间件、REST 接口、变更推送和前端静态资源。
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.CORS(deps.CORSOrigins),
	)

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
	r.GET("/health", health)

	api := r.Group("/api")
	if deps.Hub != nil {
		api.Use(middleware.ChangeFeed(deps.Hub))
		api.GET("/ws", deps.Hub.ServeWS)
	}
	api.GET("/health", health)

	NewCategoryHandler(deps.Categories).RegisterRoutes(api)
	NewTopicHandler(deps.Topics).RegisterRoutes(api)
	NewTagHandler(deps.Tags).RegisterRoutes(api)

	frontendFS := deps.Frontend
	if frontendFS == nil {
		frontendFS = web.FileSystem()
	}
	mountFrontend(r, frontendFS)

	return r
}
