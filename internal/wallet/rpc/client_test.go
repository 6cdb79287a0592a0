package rpc_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/rpc"
)

const testChainID = "687fa513e18843ad3e820744f4ffcf93b1354036d80737db8dc444fe4b15ad17"

func newNode(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func deadURL(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	return url
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	return total
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := rpc.NewClient(nil)
	require.Error(t, err)

	_, err = rpc.NewClient([]string{" ", ""})
	require.Error(t, err)
}

func TestGetInfo(t *testing.T) {
	srv, _ := newNode(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chain/get_info", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"chain_id":        testChainID,
			"head_block_num":  100,
			"head_block_time": "2019-04-01T22:08:40.000",
		})
	})

	client, err := rpc.NewClient([]string{srv.URL + "/"})
	require.NoError(t, err)

	info, err := client.GetInfo(t.Context())
	require.NoError(t, err)
	assert.Equal(t, testChainID, info.ChainID)
	assert.Equal(t, uint32(100), info.HeadBlockNum)
	assert.Equal(t, "2019-04-01T22:08:40.000", info.HeadBlockTime)
}

func TestGetBlockSendsBlockNum(t *testing.T) {
	srv, _ := newNode(t, func(w http.ResponseWriter, r *http.Request) {
		var req provider.GetBlockRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "97", req.BlockNumOrID)

		writeJSON(t, w, http.StatusOK, map[string]any{"block_num": 97, "ref_block_prefix": 2823710138})
	})

	client, err := rpc.NewClient([]string{srv.URL})
	require.NoError(t, err)

	block, err := client.GetBlock(t.Context(), &provider.GetBlockRequest{BlockNumOrID: rpc.BlockNumOrID(97)})
	require.NoError(t, err)
	assert.Equal(t, uint32(97), block.BlockNum)
	assert.Equal(t, uint32(2823710138), block.RefBlockPrefix)
}

func TestPushTransaction(t *testing.T) {
	srv, _ := newNode(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chain/push_transaction", r.URL.Path)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0, req["compression"], 0)
		assert.Equal(t, "", req["packed_context_free_data"])
		assert.Equal(t, "deadbeef", req["packed_trx"])
		assert.Equal(t, []any{"SIG_K1_abc"}, req["signatures"])

		writeJSON(t, w, http.StatusAccepted, map[string]any{"transaction_id": "abc123", "processed": map[string]any{"id": "abc123"}})
	})

	client, err := rpc.NewClient([]string{srv.URL})
	require.NoError(t, err)

	resp, err := client.PushTransaction(t.Context(), &provider.PushTransactionRequest{
		Signatures: []string{"SIG_K1_abc"},
		PackedTrx:  "deadbeef",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.TransactionID)
	assert.Equal(t, "abc123", resp.Processed["id"])
}

func TestFailoverOnTransportError(t *testing.T) {
	srv, hits := newNode(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"chain_id": testChainID})
	})

	reg := prometheus.NewRegistry()
	client, err := rpc.NewClient([]string{deadURL(t), srv.URL}, rpc.WithRegisterer(reg), rpc.WithTimeout(5*time.Second))
	require.NoError(t, err)

	info, err := client.GetInfo(t.Context())
	require.NoError(t, err)
	assert.Equal(t, testChainID, info.ChainID)
	assert.Equal(t, int32(1), hits.Load())
	assert.InDelta(t, 1, counterValue(t, reg, "rix_rpc_failovers_total"), 0)

	// The healthy node is tried first from now on.
	_, err = client.GetInfo(t.Context())
	require.NoError(t, err)
	assert.InDelta(t, 1, counterValue(t, reg, "rix_rpc_failovers_total"), 0)
	assert.InDelta(t, 3, counterValue(t, reg, "rix_rpc_requests_total"), 0)
}

func TestNodeErrorIsNotRetried(t *testing.T) {
	failing, _ := newNode(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{
			"code":    500,
			"message": "Internal Service Error",
			"error": map[string]any{
				"code": 3050003,
				"name": "eosio_assert_message_exception",
				"what": "eosio_assert_message assertion failure",
				"details": []map[string]any{
					{"message": "assertion failure with message: overdrawn balance"},
				},
			},
		})
	})
	healthy, healthyHits := newNode(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"transaction_id": "abc"})
	})

	client, err := rpc.NewClient([]string{failing.URL, healthy.URL})
	require.NoError(t, err)

	_, err = client.PushTransaction(t.Context(), &provider.PushTransactionRequest{PackedTrx: "00"})
	require.Error(t, err)

	var nodeErr *rpc.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, http.StatusInternalServerError, nodeErr.StatusCode)
	assert.Equal(t, 3050003, nodeErr.Code)
	assert.Equal(t, "Internal Service Error", nodeErr.Message)
	assert.Equal(t, []string{"assertion failure with message: overdrawn balance"}, nodeErr.Details)
	assert.Contains(t, err.Error(), "overdrawn balance")
	assert.Equal(t, int32(0), healthyHits.Load())
}

func TestNodeErrorWithPlainBody(t *testing.T) {
	srv, _ := newNode(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	client, err := rpc.NewClient([]string{srv.URL})
	require.NoError(t, err)

	_, err = client.GetInfo(t.Context())

	var nodeErr *rpc.NodeError
	require.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, http.StatusBadGateway, nodeErr.StatusCode)
	assert.Equal(t, "bad gateway", nodeErr.Message)
}

func TestAllNodesUnavailable(t *testing.T) {
	client, err := rpc.NewClient([]string{deadURL(t), deadURL(t)})
	require.NoError(t, err)

	_, err = client.GetInfo(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all RPC nodes are unavailable")
}
