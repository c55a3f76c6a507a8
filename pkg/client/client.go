// Package client 是目录 REST 接口的 Go 客户端，终端阅读器通过它访问服务端。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"filosofia_go/internal/model"
)

// APIError 是服务端返回的 {"error": "..."} 响应。
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound 判断 err 是否为 404 响应。
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Changes int64           `json:"changes"`
	Error   string          `json:"error"`
}

// Client 封装 /api 下的全部接口。
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type Option func(*Client)

// WithTransport 只替换 RoundTripper，例如 offline.Transport。
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

// WithTimeout 设置整个请求的超时，0 表示不限制。
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	c := &Client{baseURL: u, httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL 返回服务端根地址。
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0)
	_, err := c.do(ctx, http.MethodGet, "/api/categorias", nil, nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, name, description *string) (*model.Category, error) {
	var out model.Category
	body := map[string]*string{"nome": name, "descricao": description}
	if _, err := c.do(ctx, http.MethodPost, "/api/categorias", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, name, description *string) error {
	body := map[string]*string{"nome": name, "descricao": description}
	_, err := c.do(ctx, http.MethodPut, "/api/categorias/"+itoa(id), nil, body, nil)
	return err
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	return c.do(ctx, http.MethodDelete, "/api/categorias/"+itoa(id), nil, nil, nil)
}

// Topics 返回主题列表，categoryID 为 nil 时不过滤。
func (c *Client) Topics(ctx context.Context, categoryID *int64) ([]model.Topic, error) {
	var query url.Values
	if categoryID != nil {
		query = url.Values{"categoria_id": []string{itoa(*categoryID)}}
	}
	out := make([]model.Topic, 0)
	_, err := c.do(ctx, http.MethodGet, "/api/topicos", query, nil, &out)
	return out, err
}

// Topic 返回主题详情，不存在时 IsNotFound(err) 为 true。
func (c *Client) Topic(ctx context.Context, id int64) (*model.TopicDetail, error) {
	var out model.TopicDetail
	if _, err := c.do(ctx, http.MethodGet, "/api/topicos/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type topicBody struct {
	CategoriaID *int64  `json:"categoria_id"`
	Questao     *string `json:"questao"`
	Topico      *string `json:"topico"`
}

func (c *Client) CreateTopic(ctx context.Context, categoryID *int64, question, body *string) (*model.Topic, error) {
	var out model.Topic
	in := topicBody{CategoriaID: categoryID, Questao: question, Topico: body}
	if _, err := c.do(ctx, http.MethodPost, "/api/topicos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTopic(ctx context.Context, id int64, categoryID *int64, question, body *string) error {
	in := topicBody{CategoriaID: categoryID, Questao: question, Topico: body}
	_, err := c.do(ctx, http.MethodPut, "/api/topicos/"+itoa(id), nil, in, nil)
	return err
}

func (c *Client) DeleteTopic(ctx context.Context, id int64) (int64, error) {
	return c.do(ctx, http.MethodDelete, "/api/topicos/"+itoa(id), nil, nil, nil)
}

func (c *Client) Tags(ctx context.Context) ([]model.Tag, error) {
	out := make([]model.Tag, 0)
	_, err := c.do(ctx, http.MethodGet, "/api/tags", nil, nil, &out)
	return out, err
}

func (c *Client) CreateTag(ctx context.Context, name *string) (*model.Tag, error) {
	var out model.Tag
	if _, err := c.do(ctx, http.MethodPost, "/api/tags", nil, map[string]*string{"nome": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTag(ctx context.Context, id int64) (int64, error) {
	return c.do(ctx, http.MethodDelete, "/api/tags/"+itoa(id), nil, nil, nil)
}

func (c *Client) AddTopicTag(ctx context.Context, topicID, tagID int64) error {
	_, err := c.do(ctx, http.MethodPost, "/api/topicos/"+itoa(topicID)+"/tags", nil, map[string]int64{"tag_id": tagID}, nil)
	return err
}

func (c *Client) RemoveTopicTag(ctx context.Context, topicID, tagID int64) (int64, error) {
	return c.do(ctx, http.MethodDelete, "/api/topicos/"+itoa(topicID)+"/tags/"+itoa(tagID), nil, nil, nil)
}

// SetTopicTags 用 tagIDs 替换主题的标签集合。
func (c *Client) SetTopicTags(ctx context.Context, topicID int64, tagIDs []int64) (model.TagDiff, error) {
	if tagIDs == nil {
		tagIDs = []int64{}
	}
	var out model.TagDiff
	_, err := c.do(ctx, http.MethodPut, "/api/topicos/"+itoa(topicID)+"/tags", nil, map[string][]int64{"tag_ids": tagIDs}, &out)
	return out, err
}

// do 发送请求并解析统一的响应信封，返回 changes 字段（仅删除接口有意义）。
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) (int64, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return 0, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return 0, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, fmt.Errorf("decode data: %w", err)
		}
	}
	return env.Changes, nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
