// Package offline 实现与 web/static/sw.js 相同的离线缓存策略，
// 以 http.RoundTripper 的形式供 Go 客户端使用。
//
//   - /api/ 下的请求网络优先：成功的 GET 200 写入缓存；网络失败时返回缓存，
//     没有缓存则合成 503 {"error": "...", "data": []}。
//   - 其他请求缓存优先：未命中再走网络并缓存成功的 GET；
//     网络也失败时，页面导航请求回退到缓存的 "/"。
//   - 非 http(s) 请求直接透传。
package offline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"filosofia_go/pkg/log"
	"filosofia_go/web"
)

const (
	DefaultCacheName = web.CacheName
	DefaultAPIPrefix = "/api/"

	// HeaderSource 标记响应来源：network、cache 或 offline（合成的 503）
	HeaderSource = "X-Offline-Source"
)

// Transport 是带离线缓存的 http.RoundTripper。
type Transport struct {
	Base      http.RoundTripper
	Store     Store
	CacheName string
	APIPrefix string
}

// NewTransport 创建 Transport；base 为 nil 时使用 http.DefaultTransport。
func NewTransport(base http.RoundTripper, store Store, cacheName string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if cacheName == "" {
		cacheName = DefaultCacheName
	}
	return &Transport{
		Base:      base,
		Store:     store,
		CacheName: cacheName,
		APIPrefix: DefaultAPIPrefix,
	}
}

// Install 预取 assets 并写入当前缓存。任意一个资源失败则整体失败，缓存保持不变。
func (t *Transport) Install(ctx context.Context, baseURL string, assets []string) error {
	base, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}

	type fetched struct {
		key   string
		entry *Entry
	}
	all := make([]fetched, 0, len(assets))
	for _, asset := range assets {
		u := base.ResolveReference(&url.URL{Path: asset})
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		resp, err := t.Base.RoundTrip(req)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		entry, err := readEntry(resp)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		if entry.Status < 200 || entry.Status > 299 {
			return fmt.Errorf("precache %s: unexpected status %d", asset, entry.Status)
		}
		all = append(all, fetched{key: requestKey(req), entry: entry})
	}

	for _, f := range all {
		if err := t.Store.Put(ctx, t.CacheName, f.key, f.entry); err != nil {
			return fmt.Errorf("store precached asset: %w", err)
		}
	}
	log.Infow("offline cache installed", "cache", t.CacheName, "assets", len(all))
	return nil
}

// Activate 删除除当前缓存以外的所有缓存。
func (t *Transport) Activate(ctx context.Context) error {
	names, err := t.Store.Names(ctx)
	if err != nil {
		return fmt.Errorf("list caches: %w", err)
	}
	for _, name := range names {
		if name == t.CacheName {
			continue
		}
		if err := t.Store.DeleteCache(ctx, name); err != nil {
			return fmt.Errorf("delete cache %s: %w", name, err)
		}
		log.Infow("offline cache removed", "cache", name)
	}
	return nil
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return t.Base.RoundTrip(req)
	}
	if strings.HasPrefix(req.URL.Path, t.apiPrefix()) {
		return t.networkFirst(req)
	}
	return t.cacheFirst(req)
}

func (t *Transport) apiPrefix() string {
	if t.APIPrefix == "" {
		return DefaultAPIPrefix
	}
	return t.APIPrefix
}

func (t *Transport) networkFirst(req *http.Request) (*http.Response, error) {
	resp, err := t.Base.RoundTrip(req)
	if err == nil {
		if req.Method == http.MethodGet && resp.StatusCode == http.StatusOK {
			return t.storeAndReplay(req, resp)
		}
		resp.Header.Set(HeaderSource, "network")
		return resp, nil
	}

	if cached := t.lookup(req, requestKey(req)); cached != nil {
		return cached, nil
	}

	log.Warnw("offline: api request failed with no cached copy", "url", req.URL.String(), "error", err)
	body, _ := json.Marshal(map[string]interface{}{
		"error": "offline: " + err.Error(),
		"data":  []interface{}{},
	})
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return buildResponse(req, &Entry{Status: http.StatusServiceUnavailable, Header: header, Body: body}, "offline"), nil
}

func (t *Transport) cacheFirst(req *http.Request) (*http.Response, error) {
	if cached := t.lookup(req, requestKey(req)); cached != nil {
		return cached, nil
	}

	resp, err := t.Base.RoundTrip(req)
	if err == nil {
		if req.Method == http.MethodGet && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			return t.storeAndReplay(req, resp)
		}
		resp.Header.Set(HeaderSource, "network")
		return resp, nil
	}

	if isNavigation(req) {
		root := *req.URL
		root.Path, root.RawPath, root.RawQuery, root.Fragment = "/", "", "", ""
		if shell := t.lookup(req, root.String()); shell != nil {
			return shell, nil
		}
	}
	return nil, err
}

// lookup 只匹配 GET 请求，与 Cache.match 的默认行为一致。
func (t *Transport) lookup(req *http.Request, key string) *http.Response {
	if req.Method != http.MethodGet || t.Store == nil {
		return nil
	}
	entry, ok, err := t.Store.Get(req.Context(), t.CacheName, key)
	if err != nil {
		log.Warnw("offline: cache lookup failed", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return buildResponse(req, entry, "cache")
}

// storeAndReplay 读取网络响应并写入缓存，再把响应体还原给调用方。
func (t *Transport) storeAndReplay(req *http.Request, resp *http.Response) (*http.Response, error) {
	entry, err := readEntry(resp)
	if err != nil {
		return nil, err
	}
	if t.Store != nil {
		if err := t.Store.Put(req.Context(), t.CacheName, requestKey(req), entry); err != nil {
			log.Warnw("offline: cache write failed", "url", req.URL.String(), "error", err)
		}
	}
	return buildResponse(req, entry, "network"), nil
}

func readEntry(resp *http.Response) (*Entry, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Entry{Status: resp.StatusCode, Header: resp.Header.Clone(), Body: body}, nil
}

func buildResponse(req *http.Request, entry *Entry, source string) *http.Response {
	header := entry.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set(HeaderSource, source)
	header.Set("Content-Length", strconv.Itoa(len(entry.Body)))
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", entry.Status, http.StatusText(entry.Status)),
		StatusCode:    entry.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.Body)),
		ContentLength: int64(len(entry.Body)),
		Request:       req,
	}
}

// requestKey 以去掉 fragment 的完整 URL 作为缓存键。
func requestKey(req *http.Request) string {
	u := *req.URL
	u.Fragment = ""
	return u.String()
}

// isNavigation 识别页面导航请求：浏览器会带 Sec-Fetch-Mode: navigate，其他客户端以 Accept 判断。
func isNavigation(req *http.Request) bool {
	if req.Method != http.MethodGet {
		return false
	}
	if req.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}
