package handler

import (
	"net/http"
	"strings"

	"filosofia_go/web"

	"github.com/gin-gonic/gin"
)

// serveFrontend 返回静态资源；未知的页面路径回退到 index.html。
func serveFrontend(frontendFS http.FileSystem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tryServe(w, r, frontendFS, web.AssetPath(r.URL.Path)) {
			return
		}
		if tryServe(w, r, frontendFS, "index.html") {
			return
		}
		http.NotFound(w, r)
	}
}

func tryServe(w http.ResponseWriter, r *http.Request, frontendFS http.FileSystem, name string) bool {
	f, err := frontendFS.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	if name == "sw.js" {
		// Service Worker 必须每次重新校验
		w.Header().Set("Cache-Control", "no-cache")
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// mountFrontend 注册静态资源处理：/api 下未匹配的路径返回 JSON 404，其余交给前端。
func mountFrontend(r *gin.Engine, frontendFS http.FileSystem) {
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		serveFrontend(frontendFS).ServeHTTP(c.Writer, c.Request)
	})
}
