package rix

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DecodeFormattedKey parses a formatted public key, private key or signature.
//
// Accepted forms are PUB_<curve>_..., PVT_<curve>_..., SIG_<curve>_..., legacy public keys
// starting with LegacyPublicKeyPrefix and legacy WIF private keys. Checksum failures are
// reported as ErrBase58Decoding wrapping ErrInvalidChecksum. Input matching no known prefix
// additionally carries ErrUnrecognizedPrefix.
func DecodeFormattedKey(text string) (*Key, error) {
	switch {
	case strings.HasPrefix(text, PublicKeyPrefix+prefixSeparator):
		return decodeModern(text, RolePublicKey)
	case strings.HasPrefix(text, PrivateKeyPrefix+prefixSeparator):
		return decodeModern(text, RolePrivateKey)
	case strings.HasPrefix(text, SignaturePrefix+prefixSeparator):
		return decodeModern(text, RoleSignature)
	case strings.HasPrefix(text, LegacyPublicKeyPrefix):
		return decodeLegacyPublic(text)
	case strings.HasPrefix(text, wifLeadingChar):
		return decodeWIF(text)
	default:
		// still tried as WIF so checksum causes stay reachable
		key, err := decodeWIF(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnrecognizedPrefix, err)
		}
		return key, nil
	}
}

// FormatKey is the inverse of DecodeFormattedKey.
func FormatKey(key *Key) (string, error) {
	if key == nil {
		return "", errors.New("key is nil")
	}

	if want := expectedLength(key.Role); want == 0 || len(key.Data) != want {
		return "", errors.Wrapf(ErrInvalidKeyLength, "expected %d bytes, got %d", expectedLength(key.Role), len(key.Data))
	}

	if !key.Legacy {
		if _, ok := parseCurve(key.Curve.String()); !ok {
			return "", ErrUnsupportedCurve
		}
		return key.Role.prefix() + prefixSeparator + key.Curve.String() + prefixSeparator +
			checkEncode(key.Data, curveChecksum(key.Curve)), nil
	}

	if key.Curve != CurveK1 {
		return "", errors.Wrap(ErrUnsupportedCurve, "legacy encoding is only defined for K1")
	}

	switch key.Role {
	case RolePublicKey:
		return LegacyPublicKeyPrefix + checkEncode(key.Data, legacyPublicChecksum), nil
	case RolePrivateKey:
		payload := make([]byte, 0, 1+len(key.Data))
		payload = append(payload, wifVersion)
		payload = append(payload, key.Data...)
		return checkEncode(payload, wifChecksum), nil
	default:
		return "", errors.Wrap(ErrUnexpectedRole, "signatures have no legacy encoding")
	}
}

func decodeModern(text string, role Role) (*Key, error) {
	parts := strings.SplitN(text, prefixSeparator, 3) //nolint:mnd // role, curve, payload
	if len(parts) != 3 || parts[2] == "" {
		return nil, errors.Wrapf(ErrUnrecognizedPrefix, "malformed %s value", role.prefix())
	}

	curve, ok := parseCurve(parts[1])
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedCurve, "curve tag %q", parts[1])
	}

	data, err := checkDecode(parts[2], curveChecksum(curve))
	if err != nil {
		return nil, err
	}

	if len(data) != expectedLength(role) {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, expectedLength(role), len(data))
	}

	return &Key{Role: role, Curve: curve, Data: data}, nil
}

func decodeLegacyPublic(text string) (*Key, error) {
	data, err := checkDecode(strings.TrimPrefix(text, LegacyPublicKeyPrefix), legacyPublicChecksum)
	if err != nil {
		return nil, err
	}

	if len(data) != PublicKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, PublicKeyLength, len(data))
	}

	return &Key{Role: RolePublicKey, Curve: CurveK1, Legacy: true, Data: data}, nil
}

func decodeWIF(text string) (*Key, error) {
	payload, err := checkDecode(text, wifChecksum)
	if err != nil {
		return nil, err
	}

	if len(payload) != 1+PrivateKeyLength || payload[0] != wifVersion {
		return nil, fmt.Errorf("%w: not a WIF private key", ErrInvalidKeyLength)
	}

	return &Key{Role: RolePrivateKey, Curve: CurveK1, Legacy: true, Data: payload[1:]}, nil
}

func decodeWithRole(text string, role Role) (*Key, error) {
	key, err := DecodeFormattedKey(text)
	if err != nil {
		return nil, err
	}

	if key.Role != role {
		return nil, errors.Wrapf(ErrUnexpectedRole, "expected a %s value", role.prefix())
	}

	return key, nil
}
