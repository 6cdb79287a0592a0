package session

import (
	"github.com/pkg/errors"
	"github/chapool/go-rixsdk/internal/config"
	"github/chapool/go-rixsdk/internal/wallet/abi"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/rpc"
	"github/chapool/go-rixsdk/internal/wallet/signer"
)

// NewSessionFromConfig wires the node client, the cached ABI provider and the soft key signer
// from cfg around the given serialization provider. Processors created by the session use
// cfg.Transaction.
func NewSessionFromConfig(cfg config.Server, serialization provider.SerializationProvider, opts ...rpc.Option) (*Session, error) {
	if serialization == nil {
		return nil, errors.New("serialization provider is required")
	}
	if cfg.Transaction.ExpiresSeconds < 0 || cfg.Transaction.BlocksBehind < 0 {
		return nil, newError("", ErrInvalidConfig, nil, "")
	}

	if cfg.RPC.Timeout > 0 {
		opts = append([]rpc.Option{rpc.WithTimeout(cfg.RPC.Timeout)}, opts...)
	}

	client, err := rpc.NewClient(cfg.RPC.URLs, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create RPC client")
	}

	abiProvider, err := abi.NewProvider(client, serialization, cfg.ABI.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ABI provider")
	}

	signerService, err := signer.NewService(cfg.Signer.PrivateKeys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create signer service")
	}

	s := NewSession(serialization, client, abiProvider, signerService)
	s.config = cfg.Transaction

	return s, nil
}
