package rix

// Role tells whether a formatted value holds a public key, a private key or a signature.
type Role uint8

const (
	RolePublicKey Role = iota + 1
	RolePrivateKey
	RoleSignature
)

func (r Role) String() string {
	if p := r.prefix(); p != "" {
		return p
	}
	return "unknown"
}

func (r Role) prefix() string {
	switch r {
	case RolePublicKey:
		return PublicKeyPrefix
	case RolePrivateKey:
		return PrivateKeyPrefix
	case RoleSignature:
		return SignaturePrefix
	default:
		return ""
	}
}

// Curve identifies the elliptic curve a key or signature belongs to.
type Curve uint8

const (
	// CurveK1 is secp256k1.
	CurveK1 Curve = iota + 1
	// CurveR1 is secp256r1 (NIST P-256).
	CurveR1
)

func (c Curve) String() string {
	switch c {
	case CurveK1:
		return "K1"
	case CurveR1:
		return "R1"
	default:
		return "unknown"
	}
}

func parseCurve(s string) (Curve, bool) {
	switch s {
	case "K1":
		return CurveK1, true
	case "R1":
		return CurveR1, true
	default:
		return 0, false
	}
}

const (
	PublicKeyPrefix       = "PUB"
	PrivateKeyPrefix      = "PVT"
	SignaturePrefix       = "SIG"
	LegacyPublicKeyPrefix = "RSN"

	prefixSeparator = "_"

	PublicKeyLength  = 33 // compressed point
	PrivateKeyLength = 32
	SignatureLength  = 65 // header byte, r, s

	checksumLength = 4

	// wifVersion prefixes legacy K1 private keys before checksumming.
	wifVersion = 0x80
	// wifLeadingChar is the first base58 character of every uncompressed WIF key.
	wifLeadingChar = "5"
)

// Key is a decoded formatted key or signature.
//
// Legacy is set for keys using the pre-curve-tag encoding: public keys with the
// LegacyPublicKeyPrefix and WIF private keys. Both are K1 only.
type Key struct {
	Role   Role
	Curve  Curve
	Legacy bool
	Data   []byte
}

func expectedLength(role Role) int {
	switch role {
	case RolePublicKey:
		return PublicKeyLength
	case RolePrivateKey:
		return PrivateKeyLength
	case RoleSignature:
		return SignatureLength
	default:
		return 0
	}
}
