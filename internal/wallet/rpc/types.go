package rpc

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// DefaultTimeout 单次 HTTP 请求的默认超时
	DefaultTimeout = 30 * time.Second

	chainAPIPath    = "/v1/chain/"
	requestIDHeader = "X-Request-ID"
)

// NodeError 节点返回的错误响应
type NodeError struct {
	StatusCode int
	Code       int
	Name       string
	Message    string
	What       string
	Details    []string
}

func (e *NodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "node returned %d: %s", e.StatusCode, e.Message)
	if e.What != "" {
		b.WriteString(": " + e.What)
	}
	if len(e.Details) > 0 {
		b.WriteString(" (" + strings.Join(e.Details, "; ") + ")")
	}
	return b.String()
}

// nodeErrorBody 节点错误响应的 JSON 结构
type nodeErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   struct {
		Code    int    `json:"code"`
		Name    string `json:"name"`
		What    string `json:"what"`
		Details []struct {
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

// Option 客户端配置项
type Option func(*Client)

// WithTimeout 设置 HTTP 超时
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRegisterer 注册 prometheus 指标，nil 时不注册
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}
