package sign_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/cmd/sig"
	"github/chapool/go-rixsdk/cmd/sign"
)

const (
	r1PrivateKey   = "PVT_R1_g6vV9tiGqN3LkhD53pVUbxDn76PuVeR6XfmJzrnLR3PbGWLys"
	testChainID    = "687fa513e18843ad3e820744f4ffcf93b1354036d80737db8dc444fe4b15ad17"
	testSerialized = "8BC2A35CF56E6CC25F7F000000000100A6823403EA3055000000572D3CCDCD01000000000000C03400000000A8ED32322A000000000000C034000000000000A682A08601000000000004454F530000000009536F6D657468696E6700"
)

func TestSignThenRecover(t *testing.T) {
	t.Setenv("RIX_SIGNER_PRIVATE_KEYS", r1PrivateKey)

	cmd := sign.New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--chain-id", testChainID, testSerialized})
	require.NoError(t, cmd.ExecuteContext(t.Context()))

	var result struct {
		SerializedTransaction string   `json:"serializedTransaction"`
		Signatures            []string `json:"signatures"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, testSerialized, result.SerializedTransaction)
	require.Len(t, result.Signatures, 1)
	assert.True(t, strings.HasPrefix(result.Signatures[0], "SIG_R1_"))

	recoverCmd := sig.New()
	var recovered bytes.Buffer
	recoverCmd.SetOut(&recovered)
	recoverCmd.SetArgs([]string{"recover", "--chain-id", testChainID, "--tx", testSerialized, result.Signatures[0]})
	require.NoError(t, recoverCmd.ExecuteContext(t.Context()))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(recovered.String()), "PUB_R1_"))
}

func TestSignWithoutKeys(t *testing.T) {
	t.Setenv("RIX_SIGNER_PRIVATE_KEYS", "")

	cmd := sign.New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--chain-id", testChainID, testSerialized})
	require.Error(t, cmd.ExecuteContext(t.Context()))
}
