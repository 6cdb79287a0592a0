package session

import (
	"encoding/json"
	"slices"

	"github/chapool/go-rixsdk/internal/wallet/transaction"
)

func (p *Processor) ID() string {
	return p.id.String()
}

func (p *Processor) State() State {
	return p.state
}

// Transaction returns the current transaction. After serialization its actions hold hex data.
func (p *Processor) Transaction() *transaction.Transaction {
	return p.tx
}

// OriginalTransaction returns the transaction as it was before the last successful Sign.
// The snapshot is only recorded when Sign succeeds, so a failed Sign, including one rejected
// because the signer modified a transaction that may not be modified, leaves the previous
// snapshot (or nil) in place.
func (p *Processor) OriginalTransaction() *transaction.Transaction {
	return p.originalTx
}

func (p *Processor) Signatures() []string {
	return slices.Clone(p.signatures)
}

func (p *Processor) SerializedTransaction() string {
	return p.serializedTx
}

func (p *Processor) ChainID() string {
	return p.chainID
}

func (p *Processor) Config() transaction.Config {
	return p.config
}

func (p *Processor) SetConfig(cfg transaction.Config) error {
	if cfg.ExpiresSeconds < 0 || cfg.BlocksBehind < 0 {
		return newError("", ErrInvalidConfig, nil, "")
	}

	p.config = cfg

	return nil
}

// SetChainID pins the chain id. Prepare then fails when the node reports a different one.
func (p *Processor) SetChainID(chainID string) {
	p.chainID = chainID
}

func (p *Processor) SetAvailableKeys(keys []string) {
	p.availableKeys = slices.Clone(keys)
}

// SetRequiredKeys skips key discovery: Sign signs with exactly these keys. The keys are kept
// across Prepare.
func (p *Processor) SetRequiredKeys(keys []string) {
	p.requiredKeys = slices.Clone(keys)
	p.requiredKeysPinned = len(keys) > 0
}

func (p *Processor) IsTransactionModificationAllowed() bool {
	return p.modificationAllowed
}

func (p *Processor) SetTransactionModificationAllowed(allowed bool) {
	p.modificationAllowed = allowed
}

// ToJSON returns the current transaction as JSON, or an empty string when there is none.
func (p *Processor) ToJSON() (string, error) {
	if p.tx == nil {
		return "", nil
	}

	raw, err := json.Marshal(p.tx)
	if err != nil {
		return "", newError("", ErrTransactionJSON, err, "")
	}

	return string(raw), nil
}
