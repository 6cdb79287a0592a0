package rix

import (
	"crypto/elliptic"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	coordinateLength        = 32
	uncompressedPointLength = 1 + 2*coordinateLength

	compressedEven = 0x02
	compressedOdd  = 0x03
)

// curveDomain carries the short Weierstrass coefficient a, which elliptic.CurveParams
// does not expose. b and the field prime come from Params().
type curveDomain struct {
	curve elliptic.Curve
	a     *big.Int
}

func domainFor(curve Curve) (curveDomain, error) {
	switch curve {
	case CurveK1:
		return curveDomain{curve: crypto.S256(), a: big.NewInt(0)}, nil
	case CurveR1:
		return curveDomain{curve: elliptic.P256(), a: big.NewInt(-3)}, nil //nolint:mnd // P-256 coefficient
	default:
		return curveDomain{}, ErrUnsupportedCurve
	}
}

// EllipticCurve returns the curve implementation backing c.
func (c Curve) EllipticCurve() (elliptic.Curve, error) {
	dom, err := domainFor(c)
	if err != nil {
		return nil, err
	}
	return dom.curve, nil
}

// decompress finds y for x with the parity of odd. It fails with
// ErrInvalidPointCompression when x is not on the curve.
func (s curveDomain) decompress(x *big.Int, odd bool) (*big.Int, *big.Int, error) {
	params := s.curve.Params()
	p := params.P

	// y^2 = x^3 + a*x + b
	rhs := new(big.Int).Exp(x, big.NewInt(3), p) //nolint:mnd
	ax := new(big.Int).Mul(s.a, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, params.B)
	rhs.Mod(rhs, p)

	y := new(big.Int).ModSqrt(rhs, p)
	if y == nil {
		return nil, nil, ErrInvalidPointCompression
	}

	if (y.Bit(0) == 1) != odd {
		y.Sub(p, y)
	}

	return x, y, nil
}

func compressPoint(x, y *big.Int) []byte {
	out := make([]byte, PublicKeyLength)
	out[0] = compressedEven
	if y.Bit(0) == 1 {
		out[0] = compressedOdd
	}
	x.FillBytes(out[1:])
	return out
}

func compressUncompressed(point []byte) []byte {
	x := new(big.Int).SetBytes(point[1 : 1+coordinateLength])
	y := new(big.Int).SetBytes(point[1+coordinateLength:])
	return compressPoint(x, y)
}

// recoverPoint computes the public key for recovery id recID from the signature (r, s)
// over digest e, returning it in compressed form.
func (s curveDomain) recoverPoint(digest []byte, r, sig *big.Int, recID int) ([]byte, error) {
	params := s.curve.Params()
	n := params.N

	x := new(big.Int).Mul(big.NewInt(int64(recID/2)), n) //nolint:mnd
	x.Add(x, r)
	if x.Cmp(params.P) >= 0 {
		return nil, ErrCouldNotRecoverPublicKey
	}

	rx, ry, err := s.decompress(x, recID&1 == 1)
	if err != nil {
		return nil, err
	}

	e := new(big.Int).SetBytes(digest)
	rInv := new(big.Int).ModInverse(r, n)
	if rInv == nil {
		return nil, ErrInvalidSignature
	}

	// Q = r^-1 (sR - eG)
	u1 := new(big.Int).Neg(e)
	u1.Mul(u1, rInv)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig, rInv)
	u2.Mod(u2, n)

	x1, y1 := s.curve.ScalarBaseMult(padScalar(u1))
	x2, y2 := s.curve.ScalarMult(rx, ry, padScalar(u2))
	qx, qy := s.curve.Add(x1, y1, x2, y2)

	if qx.Sign() == 0 && qy.Sign() == 0 {
		return nil, ErrCouldNotRecoverPublicKey
	}

	return compressPoint(qx, qy), nil
}

func padScalar(k *big.Int) []byte {
	return k.FillBytes(make([]byte, coordinateLength))
}
