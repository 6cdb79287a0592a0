package rix

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	pemPrivateKeyType = "EC PRIVATE KEY"
	pemPublicKeyType  = "PUBLIC KEY"

	ecPrivateKeyVersion = 1
)

var (
	oidPublicKeyECDSA      = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidNamedCurveP256      = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// ecPrivateKey is the SEC 1 ECPrivateKey structure.
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

func curveOID(curve Curve) (asn1.ObjectIdentifier, error) {
	switch curve {
	case CurveK1:
		return oidNamedCurveSecp256k1, nil
	case CurveR1:
		return oidNamedCurveP256, nil
	default:
		return nil, ErrUnsupportedCurve
	}
}

func curveFromOID(oid asn1.ObjectIdentifier) (Curve, error) {
	switch {
	case oid.Equal(oidNamedCurveSecp256k1):
		return CurveK1, nil
	case oid.Equal(oidNamedCurveP256):
		return CurveR1, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedCurve, "curve oid %s", oid)
	}
}

// PrivateKeyToPEM converts a formatted private key to an "EC PRIVATE KEY" PEM block.
func PrivateKeyToPEM(formatted string) (string, error) {
	key, err := decodeWithRole(formatted, RolePrivateKey)
	if err != nil {
		return "", fmt.Errorf("could not convert private key to PEM: %w", err)
	}

	oid, err := curveOID(key.Curve)
	if err != nil {
		return "", err
	}

	der, err := asn1.Marshal(ecPrivateKey{
		Version:       ecPrivateKeyVersion,
		PrivateKey:    key.Data,
		NamedCurveOID: oid,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal EC private key")
	}

	return encodePEM(pemPrivateKeyType, der), nil
}

// PEMToPrivateKey converts an "EC PRIVATE KEY" PEM block to a formatted private key.
// K1 keys come back in the legacy WIF encoding, R1 keys as PVT_R1_.
func PEMToPrivateKey(pemText string) (string, error) {
	der, err := decodePEM(pemText, pemPrivateKeyType)
	if err != nil {
		return "", err
	}

	var parsed ecPrivateKey
	rest, err := asn1.Unmarshal(der, &parsed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDERDecoding, err)
	}
	if len(rest) > 0 || parsed.Version != ecPrivateKeyVersion {
		return "", errors.Wrap(ErrDERDecoding, "malformed EC private key")
	}

	curve, err := curveFromOID(parsed.NamedCurveOID)
	if err != nil {
		return "", err
	}

	if len(parsed.PrivateKey) > PrivateKeyLength {
		return "", errors.Wrapf(ErrInvalidKeyLength, "private key has %d bytes", len(parsed.PrivateKey))
	}

	// SEC 1 allows the scalar to be shorter than the field size.
	data := make([]byte, PrivateKeyLength)
	copy(data[PrivateKeyLength-len(parsed.PrivateKey):], parsed.PrivateKey)

	return FormatKey(&Key{Role: RolePrivateKey, Curve: curve, Legacy: curve == CurveK1, Data: data})
}

// PublicKeyToPEM converts a formatted public key to a "PUBLIC KEY" PEM block holding
// the compressed point.
func PublicKeyToPEM(formatted string) (string, error) {
	key, err := decodeWithRole(formatted, RolePublicKey)
	if err != nil {
		return "", fmt.Errorf("could not convert public key to PEM: %w", err)
	}

	der, err := marshalPublicKey(key.Curve, key.Data)
	if err != nil {
		return "", err
	}

	return encodePEM(pemPublicKeyType, der), nil
}

// PEMToPublicKey converts a "PUBLIC KEY" PEM block to a formatted public key. Uncompressed
// points are compressed first. legacy selects the LegacyPublicKeyPrefix form for K1 keys and
// is ignored for R1.
func PEMToPublicKey(pemText string, legacy bool) (string, error) {
	curve, point, err := parsePEMPublicKey(pemText)
	if err != nil {
		return "", err
	}

	return FormatKey(&Key{Role: RolePublicKey, Curve: curve, Legacy: legacy && curve == CurveK1, Data: point})
}

func marshalPublicKey(curve Curve, point []byte) ([]byte, error) {
	oid, err := curveOID(curve)
	if err != nil {
		return nil, err
	}

	params, err := asn1.Marshal(oid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal curve oid")
	}

	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		PublicKey: asn1.BitString{Bytes: point, BitLength: len(point) * 8}, //nolint:mnd // bits per byte
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal public key")
	}

	return der, nil
}

// parsePEMPublicKey returns the curve and the compressed point of a PEM public key.
func parsePEMPublicKey(pemText string) (Curve, []byte, error) {
	der, err := decodePEM(pemText, pemPublicKeyType)
	if err != nil {
		return 0, nil, err
	}

	var spki subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrDERDecoding, err)
	}
	if len(rest) > 0 || !spki.Algorithm.Algorithm.Equal(oidPublicKeyECDSA) {
		return 0, nil, errors.Wrap(ErrDERDecoding, "not an EC public key")
	}

	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(spki.Algorithm.Parameters.FullBytes, &oid); err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrDERDecoding, err)
	}

	curve, err := curveFromOID(oid)
	if err != nil {
		return 0, nil, err
	}

	point := spki.PublicKey.RightAlign()
	switch {
	case len(point) == PublicKeyLength && (point[0] == 0x02 || point[0] == 0x03):
		return curve, point, nil
	case len(point) == uncompressedPointLength && point[0] == 0x04:
		return curve, compressUncompressed(point), nil
	default:
		return 0, nil, errors.Wrapf(ErrInvalidKeyLength, "public key point has %d bytes", len(point))
	}
}

// encodePEM writes the body as a single base64 line. encoding/pem wraps at 64 columns,
// which does not match the expected text.
func encodePEM(blockType string, der []byte) string {
	var b strings.Builder
	b.WriteString("-----BEGIN " + blockType + "-----\n")
	b.WriteString(base64.StdEncoding.EncodeToString(der))
	b.WriteString("\n-----END " + blockType + "-----")
	return b.String()
}

// decodePEM requires the text to be exactly one block of blockType with a non-empty body.
func decodePEM(pemText string, blockType string) ([]byte, error) {
	trimmed := bytes.TrimSpace([]byte(pemText))
	if !bytes.HasPrefix(trimmed, []byte("-----BEGIN "+blockType+"-----")) {
		return nil, errors.Wrapf(ErrInvalidPEM, "expected %q header", blockType)
	}

	block, rest := pem.Decode(trimmed)
	if block == nil || block.Type != blockType || len(block.Headers) > 0 {
		return nil, errors.Wrapf(ErrInvalidPEM, "malformed %q block", blockType)
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return nil, errors.Wrap(ErrInvalidPEM, "trailing data after PEM block")
	}
	if len(block.Bytes) == 0 {
		return nil, errors.Wrap(ErrInvalidPEM, "PEM block has no key data")
	}

	return block.Bytes, nil
}
