package abi

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github/chapool/go-rixsdk/internal/util"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/transaction"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCacheSize 默认缓存的 ABI 数量
	DefaultCacheSize = 256
	// maxConcurrentFetches GetAbis 并发拉取上限
	maxConcurrentFetches = 4
)

var (
	ErrEmptyAbi        = errors.New("node returned an empty abi")
	ErrAbiHashMismatch = errors.New("abi hash does not match")
)

// Provider 从节点拉取原始 ABI，校验哈希并转换为 JSON，结果按 (chainID, account) 缓存
type Provider struct {
	rpc           provider.RPCProvider
	serialization provider.SerializationProvider
	cache         *lru.Cache[string, string]
	cacheSize     int
	group         singleflight.Group
}

var _ provider.ABIProvider = (*Provider)(nil)

// NewProvider 创建 ABI provider，cacheSize <= 0 时使用 DefaultCacheSize
func NewProvider(rpc provider.RPCProvider, serialization provider.SerializationProvider, cacheSize int) (*Provider, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create abi cache")
	}

	return &Provider{
		rpc:           rpc,
		serialization: serialization,
		cache:         cache,
		cacheSize:     cacheSize,
	}, nil
}

// CacheSize 返回缓存容量
func (p *Provider) CacheSize() int {
	return p.cacheSize
}

// GetAbi 获取账户的 ABI JSON
func (p *Provider) GetAbi(ctx context.Context, chainID string, account transaction.Name) (string, error) {
	if err := account.Validate(); err != nil {
		return "", err
	}

	key := cacheKey(chainID, account)
	if abiJSON, ok := p.cache.Get(key); ok {
		return abiJSON, nil
	}

	// 同一账户的并发请求只拉取一次
	v, err, _ := p.group.Do(key, func() (any, error) {
		abiJSON, err := p.fetch(ctx, account)
		if err != nil {
			return "", err
		}
		p.cache.Add(key, abiJSON)
		return abiJSON, nil
	})
	if err != nil {
		return "", err
	}

	abiJSON, _ := v.(string)

	return abiJSON, nil
}

// GetAbis 并发获取多个账户的 ABI，任一失败则整体失败
func (p *Provider) GetAbis(ctx context.Context, chainID string, accounts []transaction.Name) (map[transaction.Name]string, error) {
	var mu sync.Mutex
	result := make(map[transaction.Name]string, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	seen := make(map[transaction.Name]struct{}, len(accounts))
	for _, account := range accounts {
		if _, ok := seen[account]; ok {
			continue
		}
		seen[account] = struct{}{}

		g.Go(func() error {
			abiJSON, err := p.GetAbi(gctx, chainID, account)
			if err != nil {
				return errors.Wrapf(err, "failed to get abi of %s", account)
			}

			mu.Lock()
			result[account] = abiJSON
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// fetch 拉取原始 ABI 并转换为 JSON
func (p *Provider) fetch(ctx context.Context, account transaction.Name) (string, error) {
	log := util.LogFromContext(ctx)

	resp, err := p.rpc.GetRawAbi(ctx, &provider.GetRawAbiRequest{AccountName: account})
	if err != nil {
		return "", errors.Wrap(err, "failed to get raw abi")
	}

	raw, err := decodeBase64(resp.Abi)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode raw abi")
	}
	if len(raw) == 0 {
		return "", errors.Wrapf(ErrEmptyAbi, "account %s", account)
	}

	// 校验 ABI 哈希
	sum := sha256.Sum256(raw)
	if !strings.EqualFold(hex.EncodeToString(sum[:]), resp.AbiHash) {
		log.Warn().
			Str("account", account.String()).
			Str("abi_hash", resp.AbiHash).
			Msg("Raw ABI hash mismatch")
		return "", errors.Wrapf(ErrAbiHashMismatch, "account %s", account)
	}

	abiJSON, err := p.serialization.DeserializeAbi(ctx, hex.EncodeToString(raw))
	if err != nil {
		return "", errors.Wrap(err, "failed to deserialize abi")
	}
	if abiJSON == "" {
		return "", errors.Wrapf(ErrEmptyAbi, "account %s", account)
	}

	log.Debug().Str("account", account.String()).Msg("Fetched contract ABI")

	return abiJSON, nil
}

// decodeBase64 节点返回的 base64 可能没有 padding
func decodeBase64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

func cacheKey(chainID string, account transaction.Name) string {
	return chainID + ":" + account.String()
}
