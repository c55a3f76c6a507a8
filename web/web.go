// Package web 内嵌浏览器端的阅读器、管理界面和 Service Worker。
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

// CacheName 与 static/sw.js 中的 CACHE_NAME 保持一致。
const CacheName = "filosofia-app-v2"

// PrecacheAssets 是离线缓存安装时预取的资源，与 static/sw.js 中的 ASSETS 保持一致。
var PrecacheAssets = []string{
	"/",
	"/index.html",
	"/admin.html",
	"/styles.css",
	"/admin.css",
	"/app.js",
	"/admin.js",
	"/manifest.json",
	"/icons/icon.svg",
}

//go:embed static
var embedded embed.FS

// Static 返回以 static 目录为根的文件系统。
func Static() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		// static 目录在编译期嵌入，不会失败
		panic(err)
	}
	return sub
}

// FileSystem 供 gin / net/http 使用。
func FileSystem() http.FileSystem {
	return http.FS(Static())
}

// AssetPath 把 URL 路径映射为 static 下的文件名，"/" 对应 index.html。
func AssetPath(urlPath string) string {
	p := strings.TrimPrefix(urlPath, "/")
	if p == "" {
		return "index.html"
	}
	return p
}
