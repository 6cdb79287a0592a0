package rix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

const (
	r1PrivateKey    = "PVT_R1_g6vV9tiGqN3LkhD53pVUbxDn76PuVeR6XfmJzrnLR3PbGWLys"
	k1WIFPrivateKey = "5JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zU"
	r1PublicKey     = "PUB_R1_5AvUuRssyb7Z2HgNHVofX5heUV5dk8Gni1BGNMzMRCGbhdhBbu"
	k1PublicKey     = "PUB_K1_8CbY5PhQZGF2gzPKRBaNG4YzB4AwpmfnDcVZMSPZTqQMn1uFhB"
	legacyPublicKey = "RSN5AzPqKAx4caCrRSAuyojY6rRKA3KJf4A1MY3paNVqV5eADEVm2"
)

func TestDecodeFormattedKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		role   rix.Role
		curve  rix.Curve
		legacy bool
		length int
	}{
		{"r1 private", r1PrivateKey, rix.RolePrivateKey, rix.CurveR1, false, rix.PrivateKeyLength},
		{"k1 wif private", k1WIFPrivateKey, rix.RolePrivateKey, rix.CurveK1, true, rix.PrivateKeyLength},
		{"r1 public", r1PublicKey, rix.RolePublicKey, rix.CurveR1, false, rix.PublicKeyLength},
		{"k1 public", k1PublicKey, rix.RolePublicKey, rix.CurveK1, false, rix.PublicKeyLength},
		{"legacy public", legacyPublicKey, rix.RolePublicKey, rix.CurveK1, true, rix.PublicKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := rix.DecodeFormattedKey(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.role, key.Role)
			assert.Equal(t, tt.curve, key.Curve)
			assert.Equal(t, tt.legacy, key.Legacy)
			assert.Len(t, key.Data, tt.length)

			formatted, err := rix.FormatKey(key)
			require.NoError(t, err)
			assert.Equal(t, tt.text, formatted)
		})
	}
}

func TestFormatLegacyAndModernK1PublicKeyShareData(t *testing.T) {
	key, err := rix.DecodeFormattedKey(legacyPublicKey)
	require.NoError(t, err)

	key.Legacy = false
	modern, err := rix.FormatKey(key)
	require.NoError(t, err)
	assert.Regexp(t, "^PUB_K1_", modern)

	again, err := rix.DecodeFormattedKey(modern)
	require.NoError(t, err)
	assert.Equal(t, key.Data, again.Data)
}

func TestDecodeFormattedKeyChecksumMismatch(t *testing.T) {
	for _, text := range []string{
		"PVT_R1_5JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zU",
		"4JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zU",
	} {
		_, err := rix.DecodeFormattedKey(text)
		require.Error(t, err, text)
		assert.ErrorIs(t, err, rix.ErrBase58Decoding)
		assert.ErrorIs(t, err, rix.ErrInvalidChecksum)
	}
}

func TestDecodeFormattedKeyUnrecognizedPrefix(t *testing.T) {
	for _, text := range []string{"hello world", "XYZ_K1_abc", "4JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zU"} {
		_, err := rix.DecodeFormattedKey(text)
		require.Error(t, err, text)
		assert.ErrorIs(t, err, rix.ErrUnrecognizedPrefix, text)
	}

	// A WIF-looking key with a bad checksum is not a prefix problem.
	_, err := rix.DecodeFormattedKey("5JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zV")
	require.Error(t, err)
	assert.NotErrorIs(t, err, rix.ErrUnrecognizedPrefix)
	assert.ErrorIs(t, err, rix.ErrInvalidChecksum)
}

func TestDecodeFormattedKeyMutatedPayload(t *testing.T) {
	// Swap one payload character for another valid base58 character.
	mutated := []byte(r1PublicKey)
	pos := len(mutated) - 10
	if mutated[pos] == 'a' {
		mutated[pos] = 'b'
	} else {
		mutated[pos] = 'a'
	}

	_, err := rix.DecodeFormattedKey(string(mutated))
	require.Error(t, err)
	assert.ErrorIs(t, err, rix.ErrInvalidChecksum)
}

func TestDecodeFormattedKeyRejectsUnknownCurve(t *testing.T) {
	_, err := rix.DecodeFormattedKey("PUB_X1_5AvUuRssyb7Z2HgNHVofX5heUV5dk8Gni1BGNMzMRCGbhdhBbu")
	assert.ErrorIs(t, err, rix.ErrUnsupportedCurve)
}

func TestFormatKeyRejectsWrongLength(t *testing.T) {
	_, err := rix.FormatKey(&rix.Key{Role: rix.RolePublicKey, Curve: rix.CurveR1, Data: make([]byte, 10)})
	assert.ErrorIs(t, err, rix.ErrInvalidKeyLength)
}

func TestFormatKeyRejectsLegacyR1(t *testing.T) {
	key, err := rix.DecodeFormattedKey(r1PublicKey)
	require.NoError(t, err)

	key.Legacy = true
	_, err = rix.FormatKey(key)
	assert.ErrorIs(t, err, rix.ErrUnsupportedCurve)
}
