package rix

import "github.com/pkg/errors"

// Decoding errors. Callers match them with errors.Is; conversion functions join the
// outer error with its inner cause so both stay reachable.
var (
	ErrBase58Decoding     = errors.New("base58 decoding failed")
	ErrInvalidChecksum    = errors.New("base58 checksum does not match")
	ErrUnrecognizedPrefix = errors.New("unrecognized key prefix")
	ErrUnexpectedRole     = errors.New("formatted value has an unexpected role")
	ErrUnsupportedCurve   = errors.New("unsupported curve")
	ErrInvalidKeyLength   = errors.New("invalid key length")
	ErrInvalidPEM         = errors.New("invalid PEM")
	ErrDERDecoding        = errors.New("DER decoding failed")

	ErrInvalidSignature         = errors.New("invalid signature")
	ErrSignatureConversion      = errors.New("could not convert signature to formatted signature")
	ErrCouldNotRecoverPublicKey = errors.New("could not recover public key from signature")
	ErrInvalidPointCompression  = errors.New("invalid point compression")

	ErrSignableEmptyInput = errors.New("signable transaction input is empty")
	ErrSignableLength     = errors.New("signable transaction is too short")
	ErrSignableStructure  = errors.New("signable transaction has an invalid structure")
	ErrInvalidChainID     = errors.New("chain id must be 32 bytes of hex")
)
