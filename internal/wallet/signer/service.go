package signer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

var (
	ErrNoKeys       = errors.New("no private keys configured")
	ErrUnknownKey   = errors.New("no private key for public key")
	ErrNoSigningKey = errors.New("signature request has no signing keys")
)

type service struct {
	keys  map[string]*softKey
	order []string
}

// NewService creates a signer holding the given formatted private keys
// (legacy WIF, PVT_K1_ or PVT_R1_).
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(privateKeys []string) (Service, error) {
	if len(privateKeys) == 0 {
		return nil, ErrNoKeys
	}

	s := &service{keys: make(map[string]*softKey, len(privateKeys))}
	for i, formatted := range privateKeys {
		key, err := loadKey(formatted)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load private key #%d", i)
		}

		if _, ok := s.keys[key.publicKey]; ok {
			continue
		}
		s.keys[key.publicKey] = key
		s.order = append(s.order, key.publicKey)
	}

	log.Debug().Int("keys", len(s.order)).Msg("Loaded signing keys")

	return s, nil
}

// GetAvailableKeys returns the public keys of all loaded private keys
func (s *service) GetAvailableKeys(_ context.Context) ([]string, error) {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys, nil
}

// SignTransaction signs the request's signable bytes once per signing public key
func (s *service) SignTransaction(ctx context.Context, req *provider.SignatureRequest) (*provider.SignatureResponse, error) {
	if len(req.SigningPublicKeys) == 0 {
		return nil, ErrNoSigningKey
	}

	signable, err := rix.SignableBytes(req.SerializedTransaction, req.ChainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build signable transaction")
	}

	signatures := make([]string, 0, len(req.SigningPublicKeys))
	for _, publicKey := range req.SigningPublicKeys {
		key, err := s.lookup(publicKey)
		if err != nil {
			return nil, err
		}

		signature, err := key.sign(ctx, signable)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sign with %s", key.publicKey)
		}
		signatures = append(signatures, signature)
	}

	return &provider.SignatureResponse{
		SerializedTransaction: req.SerializedTransaction,
		Signatures:            signatures,
	}, nil
}

// lookup accepts both the legacy and the modern form of a public key
func (s *service) lookup(publicKey string) (*softKey, error) {
	if key, ok := s.keys[publicKey]; ok {
		return key, nil
	}

	decoded, err := rix.DecodeFormattedKey(publicKey)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid signing key %q", publicKey)
	}

	decoded.Legacy = false
	modern, err := rix.FormatKey(decoded)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid signing key %q", publicKey)
	}

	key, ok := s.keys[modern]
	if !ok {
		return nil, errors.Wrap(ErrUnknownKey, publicKey)
	}

	return key, nil
}
