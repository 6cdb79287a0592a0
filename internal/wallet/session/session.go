package session

import (
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/transaction"
)

// Session bundles the collaborators shared by the processors it creates.
type Session struct {
	serialization provider.SerializationProvider
	rpc           provider.RPCProvider
	abi           provider.ABIProvider
	signature     provider.SignatureProvider
	config        transaction.Config
}

func NewSession(
	serialization provider.SerializationProvider,
	rpc provider.RPCProvider,
	abi provider.ABIProvider,
	signature provider.SignatureProvider,
) *Session {
	return &Session{
		serialization: serialization,
		rpc:           rpc,
		abi:           abi,
		signature:     signature,
		config:        transaction.DefaultConfig(),
	}
}

// NewProcessor returns an empty processor using the session's transaction config.
func (s *Session) NewProcessor() *Processor {
	p := NewProcessor(s.serialization, s.rpc, s.abi, s.signature)
	p.config = s.config

	return p
}

func (s *Session) NewProcessorWithTransaction(tx *transaction.Transaction) (*Processor, error) {
	p, err := NewProcessorWithTransaction(s.serialization, s.rpc, s.abi, s.signature, tx)
	if err != nil {
		return nil, err
	}
	p.config = s.config

	return p, nil
}

func (s *Session) Config() transaction.Config {
	return s.config
}

func (s *Session) SerializationProvider() provider.SerializationProvider {
	return s.serialization
}

func (s *Session) RPCProvider() provider.RPCProvider {
	return s.rpc
}

func (s *Session) ABIProvider() provider.ABIProvider {
	return s.abi
}

func (s *Session) SignatureProvider() provider.SignatureProvider {
	return s.signature
}
