package signer

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/go-rixsdk/internal/util"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

// maxSigningAttempts bounds the retries for a canonical K1 signature.
const maxSigningAttempts = 64

var ErrNonCanonical = errors.New("could not produce a canonical signature")

func loadKey(formatted string) (*softKey, error) {
	decoded, err := rix.DecodeFormattedKey(formatted)
	if err != nil {
		return nil, err
	}
	if decoded.Role != rix.RolePrivateKey {
		return nil, errors.Wrap(rix.ErrUnexpectedRole, "expected a private key")
	}

	var private *ecdsa.PrivateKey
	switch decoded.Curve {
	case rix.CurveK1:
		private, err = crypto.ToECDSA(decoded.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert private key to ECDSA")
		}
	case rix.CurveR1:
		private, err = toP256(decoded.Data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, rix.ErrUnsupportedCurve
	}

	publicKey, err := rix.FormatKey(&rix.Key{
		Role:  rix.RolePublicKey,
		Curve: decoded.Curve,
		Data:  elliptic.MarshalCompressed(private.Curve, private.X, private.Y),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to format public key")
	}

	publicPEM, err := rix.PublicKeyToPEM(publicKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert public key to PEM")
	}

	return &softKey{
		curve:     decoded.Curve,
		private:   private,
		publicKey: publicKey,
		publicPEM: publicPEM,
	}, nil
}

func toP256(d []byte) (*ecdsa.PrivateKey, error) {
	curve := elliptic.P256()
	k := new(big.Int).SetBytes(d)
	if k.Sign() == 0 || k.Cmp(curve.Params().N) >= 0 {
		return nil, errors.New("invalid P-256 private key")
	}

	private := &ecdsa.PrivateKey{D: k}
	private.Curve = curve
	private.X, private.Y = curve.ScalarBaseMult(d)

	return private, nil
}

// sign signs sha256(signable) and returns the SIG_ form
func (k *softKey) sign(ctx context.Context, signable []byte) (string, error) {
	digest := sha256.Sum256(signable)

	for attempt := 1; attempt <= maxSigningAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, "signing cancelled")
		}

		r, s, err := ecdsa.Sign(rand.Reader, k.private, digest[:])
		if err != nil {
			return "", errors.Wrap(err, "failed to sign digest")
		}

		formatted, err := rix.RawRSToFormatted(r, s, signable, k.publicPEM)
		if err != nil {
			return "", err
		}

		if k.curve != rix.CurveK1 {
			return formatted, nil
		}

		// K1 nodes only accept canonical signatures; retry with a new nonce
		sig, err := rix.DecodeFormattedSignature(formatted)
		if err != nil {
			return "", err
		}
		if isCanonical(sig.R, sig.S) {
			return formatted, nil
		}

		util.LogFromContext(ctx).Debug().Int("attempt", attempt).Msg("Discarding non-canonical signature")
	}

	return "", ErrNonCanonical
}

// isCanonical requires r and s to be 32 bytes without a sign bit or a redundant leading zero.
func isCanonical(r, s *big.Int) bool {
	const size = 32

	var buf [2 * size]byte
	r.FillBytes(buf[:size])
	s.FillBytes(buf[size:])

	for _, part := range [][]byte{buf[:size], buf[size:]} {
		if part[0]&0x80 != 0 {
			return false
		}
		if part[0] == 0 && part[1]&0x80 == 0 {
			return false
		}
	}

	return true
}
