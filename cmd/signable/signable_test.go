package signable_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/cmd/signable"
)

const (
	testChainID    = "687fa513e18843ad3e820744f4ffcf93b1354036d80737db8dc444fe4b15ad17"
	testSerialized = "8BC2A35CF56E6CC25F7F000000000100A6823403EA3055000000572D3CCDCD01000000000000C03400000000A8ED32322A000000000000C034000000000000A682A08601000000000004454F530000000009536F6D657468696E6700"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := signable.New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return strings.TrimSpace(out.String()), err
}

func TestBuildAndExtract(t *testing.T) {
	built, err := run(t, "build", "--chain-id", testChainID, testSerialized)
	require.NoError(t, err)
	assert.Equal(t, testChainID+testSerialized+strings.Repeat("0", 64), built)

	extracted, err := run(t, "extract", built)
	require.NoError(t, err)
	assert.Equal(t, testSerialized, extracted)
}

func TestBuildRequiresChainID(t *testing.T) {
	_, err := run(t, "build", testSerialized)
	require.Error(t, err)
}
