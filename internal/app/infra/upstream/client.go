package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"threadly/console/internal/app/config"
	"threadly/console/internal/app/infra/session"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

// Client 上游核心 API 的统一访问客户端
// 认证策略只有一种（bearer 或 cookie），由配置选定，不再混用
type Client struct {
	httpClient *http.Client
	cfg        *config.UpstreamConfig
	sessions   *session.Store
	logger     logger.Logger
}

// NewClient 创建上游客户端
func NewClient(cfg *config.UpstreamConfig, sessions *session.Store, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		sessions:   sessions,
		logger:     log,
	}
}

// ResolveBase 解析某角色的上游基地址
// 优先级：显式覆盖 > 会话存储覆盖 > 角色默认 > 全局默认
func (c *Client) ResolveBase(ctx context.Context, role string) string {
	if c.cfg.Override != "" {
		return c.cfg.Override
	}

	if c.sessions != nil {
		if base, err := c.sessions.APIBaseOverride(ctx, role); err == nil && base != "" {
			return base
		}
	}

	if base, ok := c.cfg.Bases[role]; ok && base != "" {
		return base
	}

	return c.cfg.DefaultBase
}

// doJSON 发起 JSON 请求并解码响应
// out 为 nil 时只检查错误不解码
func (c *Client) doJSON(ctx context.Context, role, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := strings.TrimRight(c.ResolveBase(ctx, role), "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.attachAuth(ctx, req)

	return c.send(ctx, req, out)
}

// doMultipart 发起 multipart 上传请求
func (c *Client) doMultipart(ctx context.Context, role, path, fieldName, fileName string, payload []byte, extra map[string]string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("create form file failed: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return fmt.Errorf("write form file failed: %w", err)
	}
	for k, v := range extra {
		if err := writer.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field failed: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer failed: %w", err)
	}

	url := strings.TrimRight(c.ResolveBase(ctx, role), "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.attachAuth(ctx, req)

	return c.send(ctx, req, out)
}

// attachAuth 按统一策略附加认证信息，token 来自请求上下文
func (c *Client) attachAuth(ctx context.Context, req *http.Request) {
	token, _ := ctx.Value("token").(string)
	if token == "" {
		return
	}

	switch c.cfg.AuthMode {
	case "cookie":
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	default:
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// send 发送请求并统一解码错误
func (c *Client) send(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf(ctx, "[Upstream] request failed: %s %s: %v", req.Method, req.URL.Path, err)
		return errorx.Connection(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorx.Connection(err)
	}

	// 先嗅探 HTML 错误页，避免对误路由的请求做 JSON 解析
	if sniffHTML(data) {
		c.logger.Warnf(ctx, "[Upstream] html response: %s %s status=%d", req.Method, req.URL.Path, resp.StatusCode)
		return errorx.InvalidResponse()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorx.Upstream(resp.StatusCode, extractErrorMessage(data, resp.StatusCode))
	}

	// 部分接口用 200 + {ok:false, error:"..."} 表达失败，error 字段必须原样透传
	var probe struct {
		OK    *bool  `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.OK != nil && !*probe.OK {
		msg := probe.Error
		if msg == "" {
			msg = "request failed"
		}
		return errorx.Upstream(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errorx.InvalidResponse()
	}
	return nil
}

// sniffHTML 检测响应体是否为 HTML 错误页
func sniffHTML(data []byte) bool {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}

// extractErrorMessage 从错误响应体提取消息，提取不到时退回通用消息
func extractErrorMessage(data []byte, statusCode int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Meta    struct {
			Message string `json:"message"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
		if body.Meta.Message != "" {
			return body.Meta.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", statusCode)
}
