package transaction

import (
	"encoding/hex"

	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"
)

// Clone returns a deep copy of t, so a failed mutation never reaches the original.
func (t *Transaction) Clone() (*Transaction, error) {
	if t == nil {
		return nil, nil //nolint:nilnil
	}

	copied, err := copystructure.Copy(t)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy transaction")
	}

	clone, ok := copied.(*Transaction)
	if !ok {
		return nil, errors.Errorf("unexpected copy type %T", copied)
	}

	return clone, nil
}

// MarkSerialized flags every action and context free action as holding hex data.
func (t *Transaction) MarkSerialized() {
	for i := range t.Actions {
		t.Actions[i].Serialized = true
	}
	for i := range t.ContextFreeActions {
		t.ContextFreeActions[i].Serialized = true
	}
}

// MarkHexActions flags the actions whose Data already holds binary hex, as in a transaction
// restored from JSON after it was serialized. JSON argument objects never decode as hex.
func (t *Transaction) MarkHexActions() {
	for i := range t.Actions {
		t.Actions[i].Serialized = t.Actions[i].Serialized || isHexData(t.Actions[i].Data)
	}
	for i := range t.ContextFreeActions {
		t.ContextFreeActions[i].Serialized = t.ContextFreeActions[i].Serialized || isHexData(t.ContextFreeActions[i].Data)
	}
}

func isHexData(data string) bool {
	if data == "" {
		return false
	}
	_, err := hex.DecodeString(data)
	return err == nil
}
