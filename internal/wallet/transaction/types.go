package transaction

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// ErrNoActions is returned when a transaction would be created without actions.
var ErrNoActions = errors.New("transaction must contain at least one action")

const (
	// ExpirationLayout is the timestamp format nodes use for expiration and block times.
	ExpirationLayout = "2006-01-02T15:04:05.000"

	DefaultExpiresSeconds = 300
	DefaultBlocksBehind   = 3
)

// Authorization is a permission level authorizing an action.
type Authorization struct {
	Actor      Name `json:"actor"`
	Permission Name `json:"permission"`
}

// Action is a single contract call. Data holds the JSON encoded arguments until the
// action is serialized and the hex encoded binary form afterwards.
type Action struct {
	Account       Name            `json:"account"`
	Name          Name            `json:"name"`
	Authorization []Authorization `json:"authorization"`
	Data          string          `json:"data"`

	// Serialized is set once Data holds the binary hex form.
	Serialized bool `json:"-"`
}

// Transaction is the chain-agnostic action bundle that gets serialized, signed and pushed.
type Transaction struct {
	Expiration            string   `json:"expiration"`
	RefBlockNum           uint16   `json:"ref_block_num"`
	RefBlockPrefix        uint32   `json:"ref_block_prefix"`
	MaxNetUsageWords      uint32   `json:"max_net_usage_words"`
	MaxCPUUsageMs         uint32   `json:"max_cpu_usage_ms"`
	DelaySec              uint32   `json:"delay_sec"`
	ContextFreeActions    []Action `json:"context_free_actions"`
	Actions               []Action `json:"actions"`
	TransactionExtensions []string `json:"transaction_extensions"`
	ContextFreeData       []string `json:"context_free_data"`
}

// Config controls how a prepared transaction is anchored to the chain.
type Config struct {
	// ExpiresSeconds is added to the head block time to compute the expiration.
	ExpiresSeconds int `json:"expiresSeconds"`
	// BlocksBehind selects the reference block relative to the head block.
	BlocksBehind int `json:"blocksBehind"`
}

func DefaultConfig() Config {
	return Config{
		ExpiresSeconds: DefaultExpiresSeconds,
		BlocksBehind:   DefaultBlocksBehind,
	}
}

// New returns a transaction holding copies of the given actions.
func New(actions []Action, contextFreeActions []Action) (*Transaction, error) {
	if len(actions) == 0 {
		return nil, ErrNoActions
	}

	return &Transaction{
		ContextFreeActions: append([]Action(nil), contextFreeActions...),
		Actions:            append([]Action(nil), actions...),
	}, nil
}

// MarshalJSON emits empty lists instead of null, which nodes and serializers expect.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	p := plain(t)

	if p.ContextFreeActions == nil {
		p.ContextFreeActions = []Action{}
	}
	if p.Actions == nil {
		p.Actions = []Action{}
	}
	if p.TransactionExtensions == nil {
		p.TransactionExtensions = []string{}
	}
	if p.ContextFreeData == nil {
		p.ContextFreeData = []string{}
	}

	return json.Marshal(p)
}

func (a Action) MarshalJSON() ([]byte, error) {
	type plain Action
	p := plain(a)

	if p.Authorization == nil {
		p.Authorization = []Authorization{}
	}

	return json.Marshal(p)
}

// FormatTime renders t in ExpirationLayout (UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(ExpirationLayout)
}

// ParseTime parses node timestamps, with or without milliseconds or a trailing Z.
func ParseTime(s string) (time.Time, error) {
	if len(s) > 0 && s[len(s)-1] == 'Z' {
		s = s[:len(s)-1]
	}

	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}
