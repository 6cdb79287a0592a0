package signer

import (
	"crypto/ecdsa"

	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

// Service signs transactions with private keys held in memory
type Service interface {
	provider.SignatureProvider
}

// softKey is a loaded private key with its formatted public key
type softKey struct {
	curve     rix.Curve
	private   *ecdsa.PrivateKey
	publicKey string // PUB_K1_ / PUB_R1_ form
	publicPEM string
}
