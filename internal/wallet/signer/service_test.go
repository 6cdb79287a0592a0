package signer_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/rix"
	"github/chapool/go-rixsdk/internal/wallet/signer"
)

const (
	r1PrivateKey    = "PVT_R1_g6vV9tiGqN3LkhD53pVUbxDn76PuVeR6XfmJzrnLR3PbGWLys"
	k1WIFPrivateKey = "5JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zU"

	testChainID    = "687fa513e18843ad3e820744f4ffcf93b1354036d80737db8dc444fe4b15ad17"
	testSerialized = "8BC2A35CF56E6CC25F7F000000000100A6823403EA3055000000572D3CCDCD01000000000000C03400000000A8ED32322A000000000000C034000000000000A682A08601000000000004454F530000000009536F6D657468696E6700"
)

func newService(t *testing.T) (signer.Service, []string) {
	t.Helper()

	svc, err := signer.NewService([]string{r1PrivateKey, k1WIFPrivateKey, r1PrivateKey})
	require.NoError(t, err)

	keys, err := svc.GetAvailableKeys(t.Context())
	require.NoError(t, err)
	require.Len(t, keys, 2)

	return svc, keys
}

func signable(t *testing.T) []byte {
	t.Helper()

	data, err := hex.DecodeString(testChainID + testSerialized + strings.Repeat("00", 32))
	require.NoError(t, err)

	return data
}

func TestNewServiceRequiresKeys(t *testing.T) {
	_, err := signer.NewService(nil)
	assert.ErrorIs(t, err, signer.ErrNoKeys)
}

func TestNewServiceRejectsInvalidKeys(t *testing.T) {
	_, err := signer.NewService([]string{"PUB_R1_5AvUuRssyb7Z2HgNHVofX5heUV5dk8Gni1BGNMzMRCGbhdhBbu"})
	require.ErrorIs(t, err, rix.ErrUnexpectedRole)

	_, err = signer.NewService([]string{"4JKVeYzRs42DpnHU1rUeJHPZyXb1pCdhyayx7FD2qKHV63F71zU"})
	require.ErrorIs(t, err, rix.ErrInvalidChecksum)
}

func TestGetAvailableKeys(t *testing.T) {
	_, keys := newService(t)

	assert.True(t, strings.HasPrefix(keys[0], "PUB_R1_"), keys[0])
	assert.True(t, strings.HasPrefix(keys[1], "PUB_K1_"), keys[1])
}

func TestSignTransactionRecoversToSigningKey(t *testing.T) {
	svc, keys := newService(t)

	resp, err := svc.SignTransaction(t.Context(), &provider.SignatureRequest{
		SerializedTransaction: testSerialized,
		SigningPublicKeys:     keys,
		ChainID:               testChainID,
	})
	require.NoError(t, err)
	assert.Equal(t, testSerialized, resp.SerializedTransaction)
	require.Len(t, resp.Signatures, 2)

	for i, sig := range resp.Signatures {
		recovered, err := rix.RecoverPublicKey(sig, signable(t))
		require.NoError(t, err)
		assert.Equal(t, keys[i], recovered)
	}

	assert.True(t, strings.HasPrefix(resp.Signatures[0], "SIG_R1_"))
	assert.True(t, strings.HasPrefix(resp.Signatures[1], "SIG_K1_"))
}

func TestSignTransactionK1SignaturesAreCanonical(t *testing.T) {
	svc, keys := newService(t)

	for range 10 {
		resp, err := svc.SignTransaction(t.Context(), &provider.SignatureRequest{
			SerializedTransaction: testSerialized,
			SigningPublicKeys:     keys[1:],
			ChainID:               testChainID,
		})
		require.NoError(t, err)

		sig, err := rix.DecodeFormattedSignature(resp.Signatures[0])
		require.NoError(t, err)

		r := sig.R.FillBytes(make([]byte, 32))
		s := sig.S.FillBytes(make([]byte, 32))
		assert.Zero(t, r[0]&0x80)
		assert.Zero(t, s[0]&0x80)
		assert.False(t, r[0] == 0 && r[1]&0x80 == 0)
		assert.False(t, s[0] == 0 && s[1]&0x80 == 0)
	}
}

func TestSignTransactionAcceptsLegacyKey(t *testing.T) {
	svc, keys := newService(t)

	decoded, err := rix.DecodeFormattedKey(keys[1])
	require.NoError(t, err)
	decoded.Legacy = true
	legacy, err := rix.FormatKey(decoded)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(legacy, rix.LegacyPublicKeyPrefix))

	resp, err := svc.SignTransaction(t.Context(), &provider.SignatureRequest{
		SerializedTransaction: testSerialized,
		SigningPublicKeys:     []string{legacy},
		ChainID:               testChainID,
	})
	require.NoError(t, err)

	recovered, err := rix.RecoverPublicKey(resp.Signatures[0], signable(t))
	require.NoError(t, err)
	assert.Equal(t, keys[1], recovered)
}

func TestSignTransactionUnknownKey(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.SignTransaction(t.Context(), &provider.SignatureRequest{
		SerializedTransaction: testSerialized,
		SigningPublicKeys:     []string{"PUB_R1_5AvUuRssyb7Z2HgNHVofX5heUV5dk8Gni1BGNMzMRCGbhdhBbu"},
		ChainID:               testChainID,
	})
	assert.ErrorIs(t, err, signer.ErrUnknownKey)
}

func TestSignTransactionInvalidRequest(t *testing.T) {
	svc, keys := newService(t)

	_, err := svc.SignTransaction(t.Context(), &provider.SignatureRequest{SerializedTransaction: testSerialized, ChainID: testChainID})
	require.ErrorIs(t, err, signer.ErrNoSigningKey)

	_, err = svc.SignTransaction(t.Context(), &provider.SignatureRequest{
		SerializedTransaction: testSerialized,
		SigningPublicKeys:     keys,
		ChainID:               "abc",
	})
	require.ErrorIs(t, err, rix.ErrInvalidChainID)
}
