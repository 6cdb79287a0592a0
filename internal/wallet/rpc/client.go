package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github/chapool/go-rixsdk/internal/util"
	"github/chapool/go-rixsdk/internal/wallet/provider"
)

const (
	resultOK          = "ok"
	resultNodeError   = "node_error"
	resultUnavailable = "unavailable"

	maxErrorBodySize = 1 << 20
)

// Client 链节点 HTTP RPC 客户端，支持多个 URL 和故障转移
type Client struct {
	urls       []string
	httpClient *http.Client
	registerer prometheus.Registerer
	metrics    *metrics
	mu         sync.RWMutex
	current    int // 当前使用的 URL 索引
}

var _ provider.RPCProvider = (*Client)(nil)

// NewClient 创建新的 RPC 客户端
func NewClient(urls []string, opts ...Option) (*Client, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	cleaned := make([]string, 0, len(urls))
	for _, url := range urls {
		url = strings.TrimRight(strings.TrimSpace(url), "/")
		if url == "" {
			continue
		}
		cleaned = append(cleaned, url)
	}
	if len(cleaned) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	c := &Client{
		urls:       cleaned,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics = newMetrics(c.registerer)

	return c, nil
}

// GetInfo 获取链信息
func (c *Client) GetInfo(ctx context.Context) (*provider.GetInfoResponse, error) {
	var resp provider.GetInfoResponse
	if err := c.call(ctx, "get_info", struct{}{}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to get chain info")
	}

	return &resp, nil
}

// GetBlock 根据区块号或区块 ID 获取区块
func (c *Client) GetBlock(ctx context.Context, req *provider.GetBlockRequest) (*provider.GetBlockResponse, error) {
	var resp provider.GetBlockResponse
	if err := c.call(ctx, "get_block", req, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get block %s", req.BlockNumOrID)
	}

	return &resp, nil
}

// GetRawAbi 获取合约的原始 ABI (base64)
func (c *Client) GetRawAbi(ctx context.Context, req *provider.GetRawAbiRequest) (*provider.GetRawAbiResponse, error) {
	var resp provider.GetRawAbiResponse
	if err := c.call(ctx, "get_raw_abi", req, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get raw abi of %s", req.AccountName)
	}

	return &resp, nil
}

// GetRequiredKeys 获取交易所需的签名公钥
func (c *Client) GetRequiredKeys(ctx context.Context, req *provider.GetRequiredKeysRequest) (*provider.GetRequiredKeysResponse, error) {
	var resp provider.GetRequiredKeysResponse
	if err := c.call(ctx, "get_required_keys", req, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to get required keys")
	}

	return &resp, nil
}

// PushTransaction 广播已签名的交易
func (c *Client) PushTransaction(ctx context.Context, req *provider.PushTransactionRequest) (*provider.PushTransactionResponse, error) {
	var resp provider.PushTransactionResponse
	if err := c.call(ctx, "push_transaction", req, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to push transaction")
	}

	return &resp, nil
}

// call 依次尝试各个 URL，只在传输错误时切换到下一个节点；节点返回的错误直接返回
func (c *Client) call(ctx context.Context, endpoint string, req any, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}

	log := util.LogFromContext(ctx)
	requestID := uuid.NewString()

	c.mu.RLock()
	start := c.current
	c.mu.RUnlock()

	var lastErr error
	for i := range len(c.urls) {
		idx := (start + i) % len(c.urls)

		err := c.do(ctx, c.urls[idx], endpoint, requestID, body, resp)
		if err == nil {
			// 更新当前索引
			if idx != start {
				c.mu.Lock()
				c.current = idx
				c.mu.Unlock()
			}
			return nil
		}

		var nodeErr *NodeError
		if errors.As(err, &nodeErr) {
			return err
		}

		// 上下文已取消时不再尝试其他节点
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "request cancelled")
		}

		log.Warn().
			Str("url", c.urls[idx]).
			Str("endpoint", endpoint).
			Str("request_id", requestID).
			Err(err).
			Msg("RPC node request failed, trying next node")
		c.metrics.failoversTotal.Inc()
		lastErr = err
	}

	return errors.Wrap(lastErr, "all RPC nodes are unavailable")
}

func (c *Client) do(ctx context.Context, baseURL, endpoint, requestID string, body []byte, resp any) error {
	timer := prometheus.NewTimer(c.metrics.requestDuration.WithLabelValues(endpoint))
	defer timer.ObserveDuration()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+chainAPIPath+endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.requestsTotal.WithLabelValues(endpoint, resultUnavailable).Inc()
		return errors.Wrap(err, "failed to send request")
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusBadRequest {
		c.metrics.requestsTotal.WithLabelValues(endpoint, resultNodeError).Inc()
		return decodeNodeError(httpResp)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		c.metrics.requestsTotal.WithLabelValues(endpoint, resultNodeError).Inc()
		return &NodeError{StatusCode: httpResp.StatusCode, Message: "invalid response body", What: err.Error()}
	}

	c.metrics.requestsTotal.WithLabelValues(endpoint, resultOK).Inc()

	return nil
}

func decodeNodeError(httpResp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodySize))
	if err != nil {
		return &NodeError{StatusCode: httpResp.StatusCode, Message: http.StatusText(httpResp.StatusCode)}
	}

	var body nodeErrorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return &NodeError{
			StatusCode: httpResp.StatusCode,
			Code:       httpResp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	nodeErr := &NodeError{
		StatusCode: httpResp.StatusCode,
		Code:       body.Error.Code,
		Name:       body.Error.Name,
		Message:    body.Message,
		What:       body.Error.What,
	}
	if nodeErr.Code == 0 {
		nodeErr.Code = body.Code
	}
	for _, d := range body.Error.Details {
		nodeErr.Details = append(nodeErr.Details, d.Message)
	}

	return nodeErr
}

// BlockNumOrID 将区块号转换为 get_block 请求参数
func BlockNumOrID(blockNum uint32) string {
	return strconv.FormatUint(uint64(blockNum), 10)
}

// WithRequestTimeout 为操作添加超时控制
func WithRequestTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
