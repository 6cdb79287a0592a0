package rix

import (
	"bytes"
	"crypto/sha256"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

const (
	// recoveryHeaderBase is added to the recovery id to form the first signature byte
	// (27 plus 4 for compressed public keys).
	recoveryHeaderBase = 27 + 4
	maxRecoveryID      = 3
)

// Signature is a decoded compact signature.
type Signature struct {
	Curve      Curve
	RecoveryID int
	R          *big.Int
	S          *big.Int
}

type derSignature struct {
	R, S *big.Int
}

// DERSignatureToFormatted converts an ASN.1 DER signature over signable into the SIG_
// form, using pemPublicKey to select the recovery id.
func DERSignatureToFormatted(der []byte, signable []byte, pemPublicKey string) (string, error) {
	var sig derSignature
	rest, err := asn1.Unmarshal(der, &sig)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSignatureConversion, fmt.Errorf("%w: %w", ErrDERDecoding, err))
	}
	if len(rest) > 0 {
		return "", fmt.Errorf("%w: %w", ErrSignatureConversion, ErrDERDecoding)
	}

	return RawRSToFormatted(sig.R, sig.S, signable, pemPublicKey)
}

// RawRSToFormatted converts an (r, s) pair over signable into the SIG_ form. The recovery id
// is the one whose recovered key equals pemPublicKey.
func RawRSToFormatted(r, s *big.Int, signable []byte, pemPublicKey string) (string, error) {
	curve, expected, err := parsePEMPublicKey(pemPublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSignatureConversion, err)
	}

	formatted, err := formatRecoverable(curve, expected, r, s, signable)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSignatureConversion, err)
	}

	return formatted, nil
}

func formatRecoverable(curve Curve, expected []byte, r, s *big.Int, signable []byte) (string, error) {
	dom, err := domainFor(curve)
	if err != nil {
		return "", err
	}

	n := dom.curve.Params().N
	if r == nil || s == nil || r.Sign() <= 0 || s.Sign() <= 0 || r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return "", ErrInvalidSignature
	}

	s = lowS(s, n)
	digest := sha256.Sum256(signable)

	for recID := 0; recID <= maxRecoveryID; recID++ {
		candidate, err := dom.recoverPoint(digest[:], r, s, recID)
		if errors.Is(err, ErrCouldNotRecoverPublicKey) {
			continue
		}
		if err != nil {
			return "", err
		}

		if bytes.Equal(candidate, expected) {
			return FormatSignature(&Signature{Curve: curve, RecoveryID: recID, R: r, S: s})
		}
	}

	return "", ErrCouldNotRecoverPublicKey
}

// FormatSignature encodes sig in the SIG_ form.
func FormatSignature(sig *Signature) (string, error) {
	if sig.RecoveryID < 0 || sig.RecoveryID > maxRecoveryID {
		return "", errors.Wrapf(ErrInvalidSignature, "recovery id %d", sig.RecoveryID)
	}

	data := make([]byte, SignatureLength)
	data[0] = byte(recoveryHeaderBase + sig.RecoveryID)
	sig.R.FillBytes(data[1 : 1+coordinateLength])
	sig.S.FillBytes(data[1+coordinateLength:])

	return FormatKey(&Key{Role: RoleSignature, Curve: sig.Curve, Data: data})
}

// DecodeFormattedSignature parses a SIG_ value.
func DecodeFormattedSignature(text string) (*Signature, error) {
	key, err := decodeWithRole(text, RoleSignature)
	if err != nil {
		return nil, err
	}

	recID := int(key.Data[0]) - recoveryHeaderBase
	if recID < 0 || recID > maxRecoveryID {
		return nil, errors.Wrapf(ErrInvalidSignature, "unexpected header byte %d", key.Data[0])
	}

	return &Signature{
		Curve:      key.Curve,
		RecoveryID: recID,
		R:          new(big.Int).SetBytes(key.Data[1 : 1+coordinateLength]),
		S:          new(big.Int).SetBytes(key.Data[1+coordinateLength:]),
	}, nil
}

// RecoverPublicKey returns the PUB_ key that produced the formatted signature over signable.
func RecoverPublicKey(formattedSignature string, signable []byte) (string, error) {
	sig, err := DecodeFormattedSignature(formattedSignature)
	if err != nil {
		return "", err
	}

	dom, err := domainFor(sig.Curve)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(signable)
	point, err := dom.recoverPoint(digest[:], sig.R, sig.S, sig.RecoveryID)
	if err != nil {
		return "", err
	}

	return FormatKey(&Key{Role: RolePublicKey, Curve: sig.Curve, Data: point})
}

// lowS maps s into the lower half of the group order.
func lowS(s, n *big.Int) *big.Int {
	half := new(big.Int).Rsh(n, 1)
	if s.Cmp(half) > 0 {
		return new(big.Int).Sub(n, s)
	}
	return s
}
