package rix

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	chainIDHexLength = 64
	// contextFreeDigestHex is the zero-filled 32 byte placeholder for the context-free data digest.
	contextFreeDigestHex = "0000000000000000000000000000000000000000000000000000000000000000"

	// MinimumSignableLength is the smallest signable in hex characters: chain id,
	// one character of transaction and the digest placeholder.
	MinimumSignableLength = chainIDHexLength + len(contextFreeDigestHex) + 1
)

// BuildSignable returns chainID ‖ serializedTx ‖ 32 zero bytes, all hex encoded.
func BuildSignable(serializedTx string, chainID string) (string, error) {
	if serializedTx == "" || chainID == "" {
		return "", ErrSignableEmptyInput
	}

	signable := chainID + serializedTx + contextFreeDigestHex
	if len(signable) < MinimumSignableLength {
		return "", fmt.Errorf("%w: must be at least %d characters", ErrSignableLength, MinimumSignableLength)
	}

	if len(chainID) != chainIDHexLength || !isHex(chainID) {
		return "", errors.Wrapf(ErrInvalidChainID, "expected %d hex characters", chainIDHexLength)
	}

	return signable, nil
}

// ExtractSerialized returns the serialized transaction inside a signable built by BuildSignable.
func ExtractSerialized(signable string) (string, error) {
	if signable == "" {
		return "", ErrSignableEmptyInput
	}

	if len(signable) < MinimumSignableLength {
		return "", fmt.Errorf("%w: must be at least %d characters", ErrSignableLength, MinimumSignableLength)
	}

	tail := signable[len(signable)-len(contextFreeDigestHex):]
	if !strings.EqualFold(tail, contextFreeDigestHex) {
		return "", ErrSignableStructure
	}

	return signable[chainIDHexLength : len(signable)-len(contextFreeDigestHex)], nil
}

// SignableBytes builds the signable and decodes it to the bytes that get hashed and signed.
func SignableBytes(serializedTx string, chainID string) ([]byte, error) {
	signable, err := BuildSignable(serializedTx, chainID)
	if err != nil {
		return nil, err
	}

	data, err := hex.DecodeString(signable)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignableStructure, err)
	}

	return data, nil
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)
	return err == nil
}
