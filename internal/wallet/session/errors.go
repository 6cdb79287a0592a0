package session

import (
	"encoding/json"
	"strings"
)

// Kind classifies processor errors.
type Kind string

const (
	KindInput        Kind = "InputError"
	KindCollaborator Kind = "CollaboratorError"
	KindConsistency  Kind = "ConsistencyError"
	KindDecoding     Kind = "DecodingError"
	KindPrecondition Kind = "PreconditionError"
)

const errorType = "RixError"

// Error is returned by every Processor operation. Msg is a stable message, Detail carries
// the formatted context (account names, chain ids) and Err the collaborator's cause.
//
// errors.Is matches an Error against one of the Err* values by Kind and Msg.
type Error struct {
	Kind   Kind
	Op     string
	Msg    string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("session")
	if e.Op != "" {
		b.WriteString(": " + e.Op)
	}
	b.WriteString(": " + e.Msg)
	if e.Detail != "" {
		b.WriteString(" (" + e.Detail + ")")
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == e.Msg
}

// MarshalJSON renders {"errorType":"RixError","errorInfo":{"errorCode":kind,"reason":message}}.
func (e *Error) MarshalJSON() ([]byte, error) {
	reason := e.Msg
	if e.Detail != "" {
		reason += " (" + e.Detail + ")"
	}

	return json.Marshal(struct {
		ErrorType string `json:"errorType"`
		ErrorInfo struct {
			ErrorCode Kind   `json:"errorCode"`
			Reason    string `json:"reason"`
		} `json:"errorInfo"`
	}{
		ErrorType: errorType,
		ErrorInfo: struct {
			ErrorCode Kind   `json:"errorCode"`
			Reason    string `json:"reason"`
		}{ErrorCode: e.Kind, Reason: reason},
	})
}

var (
	ErrNoActions             = &Error{Kind: KindInput, Msg: "transaction must contain at least one action"}
	ErrInvalidConfig         = &Error{Kind: KindInput, Msg: "transaction config values must not be negative"}
	ErrNoTransaction         = &Error{Kind: KindPrecondition, Msg: "processor has no transaction"}
	ErrNotSerialized         = &Error{Kind: KindPrecondition, Msg: "transaction has not been serialized"}
	ErrNotSigned             = &Error{Kind: KindPrecondition, Msg: "transaction has no signatures"}
	ErrChainIDMismatch       = &Error{Kind: KindConsistency, Msg: "chain id does not match the node's chain id"}
	ErrRequiredKeysNotSubset = &Error{Kind: KindConsistency, Msg: "required keys are not a subset of the available keys"}
	ErrTransactionModified   = &Error{Kind: KindConsistency, Msg: "transaction was modified by the signature provider"}
	ErrCloneTransaction      = &Error{Kind: KindConsistency, Msg: "failed to copy transaction"}
	ErrHeadBlockTime         = &Error{Kind: KindDecoding, Msg: "failed to parse head block time"}
	ErrTransactionJSON       = &Error{Kind: KindDecoding, Msg: "failed to convert transaction json"}

	ErrGetInfo                = &Error{Kind: KindCollaborator, Msg: "failed to get chain info"}
	ErrGetBlock               = &Error{Kind: KindCollaborator, Msg: "failed to get reference block"}
	ErrGetAbi                 = &Error{Kind: KindCollaborator, Msg: "failed to get abi"}
	ErrSerializeAction        = &Error{Kind: KindCollaborator, Msg: "failed to serialize action data"}
	ErrSerializeTransaction   = &Error{Kind: KindCollaborator, Msg: "failed to serialize transaction"}
	ErrDeserializeTransaction = &Error{Kind: KindCollaborator, Msg: "failed to deserialize transaction"}
	ErrGetAvailableKeys       = &Error{Kind: KindCollaborator, Msg: "failed to get available keys"}
	ErrNoAvailableKeys        = &Error{Kind: KindCollaborator, Msg: "signature provider has no available keys"}
	ErrGetRequiredKeys        = &Error{Kind: KindCollaborator, Msg: "failed to get required keys"}
	ErrNoRequiredKeys         = &Error{Kind: KindCollaborator, Msg: "node returned no required keys"}
	ErrSignTransaction        = &Error{Kind: KindCollaborator, Msg: "signature provider failed to sign transaction"}
	ErrEmptySignedTransaction = &Error{Kind: KindCollaborator, Msg: "signature provider returned an empty serialized transaction"}
	ErrNoSignatures           = &Error{Kind: KindCollaborator, Msg: "signature provider returned no signatures"}
	ErrPushTransaction        = &Error{Kind: KindCollaborator, Msg: "failed to push transaction"}
)

func newError(op string, kind *Error, cause error, detail string) *Error {
	return &Error{Kind: kind.Kind, Op: op, Msg: kind.Msg, Detail: detail, Err: cause}
}
