package rix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

const (
	testChainID      = "687fa513e18843ad3e820744f4ffcf93b1354036d80737db8dc444fe4b15ad17"
	testSerializedTx = "8BC2A35CF56E6CC25F7F000000000100A6823403EA3055000000572D3CCDCD01000000000000C03400000000A8ED32322A000000000000C034000000000000A682A08601000000000004454F530000000009536F6D657468696E6700"
)

var zeroDigest = strings.Repeat("00", 32)

func TestBuildSignable(t *testing.T) {
	signable, err := rix.BuildSignable(testSerializedTx, testChainID)
	require.NoError(t, err)
	assert.Equal(t, testChainID+testSerializedTx+zeroDigest, signable)

	tx, err := rix.ExtractSerialized(signable)
	require.NoError(t, err)
	assert.Equal(t, testSerializedTx, tx)
}

func TestBuildSignableEmptyInput(t *testing.T) {
	_, err := rix.BuildSignable("", testChainID)
	assert.ErrorIs(t, err, rix.ErrSignableEmptyInput)

	_, err = rix.BuildSignable(testSerializedTx, "")
	assert.ErrorIs(t, err, rix.ErrSignableEmptyInput)
}

func TestBuildSignableTooShort(t *testing.T) {
	_, err := rix.BuildSignable("8", "687fa513e18843ad3e820744f4ffcf9")
	require.Error(t, err)
	assert.ErrorIs(t, err, rix.ErrSignableLength)
	assert.Contains(t, err.Error(), "129")
}

func TestBuildSignableInvalidChainID(t *testing.T) {
	_, err := rix.BuildSignable(testSerializedTx, strings.Repeat("z", 64))
	assert.ErrorIs(t, err, rix.ErrInvalidChainID)

	_, err = rix.BuildSignable(testSerializedTx, testChainID[:60])
	assert.ErrorIs(t, err, rix.ErrInvalidChainID)
}

func TestExtractSerializedEmpty(t *testing.T) {
	_, err := rix.ExtractSerialized("")
	assert.ErrorIs(t, err, rix.ErrSignableEmptyInput)
}

func TestExtractSerializedTooShort(t *testing.T) {
	_, err := rix.ExtractSerialized("8BC2A35CF56E6CC25F7F000000000100A6823403EA30550000")
	require.Error(t, err)
	assert.ErrorIs(t, err, rix.ErrSignableLength)
	assert.Contains(t, err.Error(), "129")
}

func TestExtractSerializedInvalidStructure(t *testing.T) {
	_, err := rix.ExtractSerialized(testChainID + testSerializedTx + strings.Repeat("00", 30))
	assert.ErrorIs(t, err, rix.ErrSignableStructure)
}

func TestSignableBytes(t *testing.T) {
	data, err := rix.SignableBytes(testSerializedTx, testChainID)
	require.NoError(t, err)
	assert.Len(t, data, (len(testChainID)+len(testSerializedTx))/2+32)
}
