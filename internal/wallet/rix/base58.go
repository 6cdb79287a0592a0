package rix

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is mandated by the key format
)

// checksumFunc computes the 4-byte checksum appended to a Base58Check payload.
type checksumFunc func(payload []byte) []byte

// curveChecksum is used by the modern encoding: ripemd160(payload || curve tag).
func curveChecksum(curve Curve) checksumFunc {
	return func(payload []byte) []byte {
		h := ripemd160.New()
		h.Write(payload)
		h.Write([]byte(curve.String()))
		return h.Sum(nil)[:checksumLength]
	}
}

// legacyPublicChecksum is ripemd160(payload) without a curve tag.
func legacyPublicChecksum(payload []byte) []byte {
	h := ripemd160.New()
	h.Write(payload)
	return h.Sum(nil)[:checksumLength]
}

// wifChecksum is the double sha256 used by WIF private keys.
func wifChecksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

func checkEncode(payload []byte, sum checksumFunc) string {
	buf := make([]byte, 0, len(payload)+checksumLength)
	buf = append(buf, payload...)
	buf = append(buf, sum(payload)...)
	return base58.Encode(buf)
}

func checkDecode(text string, sum checksumFunc) ([]byte, error) {
	decoded := base58.Decode(text)
	if len(decoded) <= checksumLength {
		return nil, fmt.Errorf("%w: payload is empty or contains invalid characters", ErrBase58Decoding)
	}

	payload := decoded[:len(decoded)-checksumLength]
	if !bytes.Equal(decoded[len(decoded)-checksumLength:], sum(payload)) {
		return nil, fmt.Errorf("%w: %w", ErrBase58Decoding, ErrInvalidChecksum)
	}

	return payload, nil
}
