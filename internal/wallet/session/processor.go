package session

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github/chapool/go-rixsdk/internal/util"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/transaction"
)

const (
	opPrepare   = "prepare"
	opSerialize = "serialize"
	opSign      = "sign"
	opBroadcast = "broadcast"

	refBlockNumMask = 0xffff
)

// Processor drives one transaction through prepare, serialize, sign and broadcast.
//
// A Processor is not safe for concurrent use. All state is replaced only when an
// operation succeeds.
type Processor struct {
	id uuid.UUID

	serialization provider.SerializationProvider
	rpc           provider.RPCProvider
	abi           provider.ABIProvider
	signature     provider.SignatureProvider

	config              transaction.Config
	tx                  *transaction.Transaction
	originalTx          *transaction.Transaction
	serializedTx        string
	signatures          []string
	availableKeys       []string
	requiredKeys        []string
	requiredKeysPinned  bool
	chainID             string
	modificationAllowed bool
	state               State
}

// NewProcessor returns an empty processor using the given collaborators.
func NewProcessor(
	serialization provider.SerializationProvider,
	rpc provider.RPCProvider,
	abi provider.ABIProvider,
	signature provider.SignatureProvider,
) *Processor {
	return &Processor{
		id:            uuid.New(),
		serialization: serialization,
		rpc:           rpc,
		abi:           abi,
		signature:     signature,
		config:        transaction.DefaultConfig(),
		state:         StateEmpty,
	}
}

// NewProcessorWithTransaction returns a processor that starts from a copy of an existing
// transaction, for example one restored from ToJSON. The transaction must have actions.
// Actions whose data is already hex are not serialized again.
func NewProcessorWithTransaction(
	serialization provider.SerializationProvider,
	rpc provider.RPCProvider,
	abi provider.ABIProvider,
	signature provider.SignatureProvider,
	tx *transaction.Transaction,
) (*Processor, error) {
	if tx == nil || len(tx.Actions) == 0 {
		return nil, newError("", ErrNoActions, transaction.ErrNoActions, "")
	}

	restored, err := tx.Clone()
	if err != nil {
		return nil, newError("", ErrCloneTransaction, err, "")
	}
	restored.MarkHexActions()

	p := NewProcessor(serialization, rpc, abi, signature)
	p.tx = restored
	p.state = StatePrepared

	return p, nil
}

// Prepare builds a new transaction from actions and anchors it to a recent block: the
// expiration is the head block time plus Config.ExpiresSeconds and the reference block is
// max(head - BlocksBehind, BlocksBehind).
func (p *Processor) Prepare(ctx context.Context, actions []transaction.Action, contextFreeActions []transaction.Action) error {
	log := util.LogFromContext(ctx)

	// 先校验 actions，避免无意义的 RPC 调用
	tx, err := transaction.New(actions, contextFreeActions)
	if err != nil {
		return newError(opPrepare, ErrNoActions, err, "")
	}

	info, err := p.rpc.GetInfo(ctx)
	if err != nil {
		log.Error().Err(err).Str("processor_id", p.id.String()).Msg("Failed to get chain info")
		return newError(opPrepare, ErrGetInfo, err, "")
	}
	if info == nil {
		return newError(opPrepare, ErrGetInfo, nil, "empty response")
	}

	chainID := p.chainID
	switch {
	case chainID == "":
		chainID = info.ChainID
	case !strings.EqualFold(chainID, info.ChainID):
		return newError(opPrepare, ErrChainIDMismatch, nil, fmt.Sprintf("expected %s, node reports %s", chainID, info.ChainID))
	}

	if tx.Expiration == "" {
		headTime, err := transaction.ParseTime(info.HeadBlockTime)
		if err != nil {
			return newError(opPrepare, ErrHeadBlockTime, err, info.HeadBlockTime)
		}
		tx.Expiration = transaction.FormatTime(headTime.Add(time.Duration(p.config.ExpiresSeconds) * time.Second))
	}

	refBlock := referenceBlockNum(info.HeadBlockNum, p.config.BlocksBehind)
	block, err := p.rpc.GetBlock(ctx, &provider.GetBlockRequest{BlockNumOrID: strconv.FormatUint(uint64(refBlock), 10)})
	if err != nil {
		log.Error().Err(err).Str("processor_id", p.id.String()).Uint32("block_num", refBlock).Msg("Failed to get reference block")
		return newError(opPrepare, ErrGetBlock, err, fmt.Sprintf("block %d", refBlock))
	}
	if block == nil {
		return newError(opPrepare, ErrGetBlock, nil, "empty response")
	}

	tx.RefBlockNum = uint16(block.BlockNum & refBlockNumMask) //nolint:gosec // masked to 16 bits
	tx.RefBlockPrefix = block.RefBlockPrefix

	p.chainID = chainID
	p.tx = tx
	p.originalTx = nil
	p.serializedTx = ""
	p.signatures = nil
	if !p.requiredKeysPinned {
		p.requiredKeys = nil
	}
	p.transition(ctx, StatePrepared)

	return nil
}

// referenceBlockNum returns max(head - behind, behind).
func referenceBlockNum(head uint32, behind int) uint32 {
	ref := max(int64(head)-int64(behind), int64(behind))
	return uint32(max(ref, 0)) //nolint:gosec // bounded by head or behind
}

// Serialize returns the hex serialized transaction, serializing it on first use.
func (p *Processor) Serialize(ctx context.Context) (string, error) {
	if p.serializedTx != "" {
		return p.serializedTx, nil
	}

	serialized, err := p.serializeTransaction(ctx, opSerialize)
	if err != nil {
		return "", err
	}

	p.serializedTx = serialized
	p.transition(ctx, StateSerialized)

	return serialized, nil
}

// Sign serializes the transaction, resolves the signing keys and asks the signature
// provider for signatures. The signatures are available through Signatures afterwards.
func (p *Processor) Sign(ctx context.Context) error {
	req, err := p.createSignatureRequest(ctx)
	if err != nil {
		return err
	}

	return p.getSignature(ctx, req)
}

// Broadcast pushes the signed transaction to the node.
func (p *Processor) Broadcast(ctx context.Context) (*provider.PushTransactionResponse, error) {
	if p.serializedTx == "" {
		return nil, newError(opBroadcast, ErrNotSerialized, nil, "")
	}
	if len(p.signatures) == 0 {
		return nil, newError(opBroadcast, ErrNotSigned, nil, "")
	}

	resp, err := p.rpc.PushTransaction(ctx, &provider.PushTransactionRequest{
		Signatures:            slices.Clone(p.signatures),
		Compression:           0,
		PackedContextFreeData: "",
		PackedTrx:             p.serializedTx,
	})
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Str("processor_id", p.id.String()).Msg("Failed to push transaction")
		return nil, newError(opBroadcast, ErrPushTransaction, err, "")
	}

	p.transition(ctx, StateBroadcast)

	return resp, nil
}

// SignAndBroadcast signs with a fresh signature request and pushes the result.
func (p *Processor) SignAndBroadcast(ctx context.Context) (*provider.PushTransactionResponse, error) {
	if err := p.Sign(ctx); err != nil {
		return nil, err
	}

	return p.Broadcast(ctx)
}

func (p *Processor) createSignatureRequest(ctx context.Context) (*provider.SignatureRequest, error) {
	if p.tx == nil {
		return nil, newError(opSign, ErrNoTransaction, nil, "")
	}
	if len(p.tx.Actions) == 0 {
		return nil, newError(opSign, ErrNoActions, nil, "")
	}

	serialized, err := p.serializeTransaction(ctx, opSign)
	if err != nil {
		return nil, err
	}

	req := &provider.SignatureRequest{
		SerializedTransaction: serialized,
		ChainID:               p.chainID,
		IsModifiable:          p.modificationAllowed,
	}

	// 已设置 required keys 时直接使用
	if len(p.requiredKeys) > 0 {
		req.SigningPublicKeys = slices.Clone(p.requiredKeys)
		return req, nil
	}

	if len(p.availableKeys) == 0 {
		keys, err := p.signature.GetAvailableKeys(ctx)
		if err != nil {
			return nil, newError(opSign, ErrGetAvailableKeys, err, "")
		}
		if len(keys) == 0 {
			return nil, newError(opSign, ErrNoAvailableKeys, nil, "")
		}
		p.availableKeys = keys
	}

	resp, err := p.rpc.GetRequiredKeys(ctx, &provider.GetRequiredKeysRequest{
		Transaction:   p.tx,
		AvailableKeys: p.availableKeys,
	})
	if err != nil {
		return nil, newError(opSign, ErrGetRequiredKeys, err, "")
	}
	if resp == nil || len(resp.RequiredKeys) == 0 {
		return nil, newError(opSign, ErrNoRequiredKeys, nil, "")
	}

	for _, key := range resp.RequiredKeys {
		if !slices.Contains(p.availableKeys, key) {
			return nil, newError(opSign, ErrRequiredKeysNotSubset, nil, key)
		}
	}

	p.requiredKeys = resp.RequiredKeys
	req.SigningPublicKeys = slices.Clone(p.requiredKeys)

	return req, nil
}

func (p *Processor) getSignature(ctx context.Context, req *provider.SignatureRequest) error {
	log := util.LogFromContext(ctx)

	resp, err := p.signature.SignTransaction(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("processor_id", p.id.String()).Msg("Signature provider failed")
		return newError(opSign, ErrSignTransaction, err, "")
	}
	if resp == nil {
		return newError(opSign, ErrEmptySignedTransaction, nil, "")
	}
	if resp.Error != nil {
		return newError(opSign, ErrSignTransaction, resp.Error, "")
	}
	if resp.SerializedTransaction == "" {
		return newError(opSign, ErrEmptySignedTransaction, nil, "")
	}
	if len(resp.Signatures) == 0 {
		return newError(opSign, ErrNoSignatures, nil, "")
	}

	original := p.tx
	current := p.tx

	if resp.SerializedTransaction != req.SerializedTransaction {
		if !p.modificationAllowed {
			return newError(opSign, ErrTransactionModified, nil, "")
		}

		// 签名方修改了交易，反序列化后替换当前交易
		modified, err := p.deserializeTransaction(ctx, resp.SerializedTransaction)
		if err != nil {
			return err
		}
		current = modified
	}

	p.originalTx = original
	p.tx = current
	p.signatures = slices.Clone(resp.Signatures)
	p.serializedTx = resp.SerializedTransaction
	p.transition(ctx, StateSigned)

	return nil
}

func (p *Processor) deserializeTransaction(ctx context.Context, serialized string) (*transaction.Transaction, error) {
	txJSON, err := p.serialization.DeserializeTransaction(ctx, serialized)
	if err != nil {
		return nil, newError(opSign, ErrDeserializeTransaction, err, "")
	}
	if txJSON == "" {
		return nil, newError(opSign, ErrDeserializeTransaction, nil, "empty result")
	}

	var tx transaction.Transaction
	if err := json.Unmarshal([]byte(txJSON), &tx); err != nil {
		return nil, newError(opSign, ErrTransactionJSON, err, "")
	}
	tx.MarkSerialized()

	return &tx, nil
}

// serializeTransaction encodes every action's data with its contract ABI on a copy of the
// transaction, swaps the copy in and serializes the whole transaction.
func (p *Processor) serializeTransaction(ctx context.Context, op string) (string, error) {
	if p.tx == nil {
		return "", newError(op, ErrNoTransaction, nil, "")
	}

	clone, err := p.tx.Clone()
	if err != nil {
		return "", newError(op, ErrCloneTransaction, err, "")
	}

	if p.chainID == "" {
		info, err := p.rpc.GetInfo(ctx)
		if err != nil {
			return "", newError(op, ErrGetInfo, err, "")
		}
		if info == nil {
			return "", newError(op, ErrGetInfo, nil, "empty response")
		}
		p.chainID = info.ChainID
	}

	for i := range clone.Actions {
		if err := p.serializeAction(ctx, op, &clone.Actions[i]); err != nil {
			return "", err
		}
	}
	for i := range clone.ContextFreeActions {
		if err := p.serializeAction(ctx, op, &clone.ContextFreeActions[i]); err != nil {
			return "", err
		}
	}

	// 之后 getRequiredKeys 使用已序列化的 actions
	p.tx = clone

	raw, err := json.Marshal(clone)
	if err != nil {
		return "", newError(op, ErrTransactionJSON, err, "")
	}

	serialized, err := p.serialization.SerializeTransaction(ctx, string(raw))
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Str("processor_id", p.id.String()).Msg("Failed to serialize transaction")
		return "", newError(op, ErrSerializeTransaction, err, "")
	}
	if serialized == "" {
		return "", newError(op, ErrSerializeTransaction, nil, "empty result")
	}

	return serialized, nil
}

func (p *Processor) serializeAction(ctx context.Context, op string, action *transaction.Action) error {
	if action.Serialized {
		return nil
	}

	account := action.Account.String()

	abiJSON, err := p.abi.GetAbi(ctx, p.chainID, action.Account)
	if err != nil {
		return newError(op, ErrGetAbi, err, account)
	}
	if abiJSON == "" {
		return newError(op, ErrGetAbi, nil, account)
	}

	hexData, err := p.serialization.Serialize(ctx, &provider.SerializationObject{
		ContractName: action.Account,
		Name:         action.Name,
		JSON:         action.Data,
		ABI:          abiJSON,
	})
	if err != nil {
		return newError(op, ErrSerializeAction, err, account)
	}
	if hexData == "" {
		return newError(op, ErrSerializeAction, nil, account)
	}

	action.Data = hexData
	action.Serialized = true

	return nil
}

func (p *Processor) transition(ctx context.Context, state State) {
	p.state = state
	util.LogFromContext(ctx).Debug().
		Str("processor_id", p.id.String()).
		Str("state", state.String()).
		Str("chain_id", p.chainID).
		Msg("Transaction processor state changed")
}
