package session_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-rixsdk/internal/wallet/session"
)

func TestErrorIsMatchesKindAndMessage(t *testing.T) {
	cause := errors.New("boom")
	err := error(&session.Error{Kind: session.KindCollaborator, Op: "sign", Msg: session.ErrGetAbi.Msg, Detail: "rix.token", Err: cause})

	assert.ErrorIs(t, err, session.ErrGetAbi)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, session.ErrSerializeAction)
	assert.Equal(t, "session: sign: failed to get abi (rix.token): boom", err.Error())

	var sessionErr *session.Error
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, session.KindCollaborator, sessionErr.Kind)
}

func TestErrorMarshalJSON(t *testing.T) {
	err := &session.Error{Kind: session.KindConsistency, Msg: session.ErrTransactionModified.Msg}

	raw, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"errorType":"RixError","errorInfo":{"errorCode":"ConsistencyError","reason":"transaction was modified by the signature provider"}}`, string(raw))
}
