// Package provider declares the collaborators a transaction processor depends on: node RPC,
// ABI lookup, ABI serialization and signing.
package provider

import (
	"context"

	"github/chapool/go-rixsdk/internal/wallet/transaction"
)

//go:generate mockgen -source types.go -destination mocks/provider_mock.go -package mocks

// RPCProvider talks to a chain node.
type RPCProvider interface {
	GetInfo(ctx context.Context) (*GetInfoResponse, error)
	GetBlock(ctx context.Context, req *GetBlockRequest) (*GetBlockResponse, error)
	GetRawAbi(ctx context.Context, req *GetRawAbiRequest) (*GetRawAbiResponse, error)
	GetRequiredKeys(ctx context.Context, req *GetRequiredKeysRequest) (*GetRequiredKeysResponse, error)
	PushTransaction(ctx context.Context, req *PushTransactionRequest) (*PushTransactionResponse, error)
}

// ABIProvider resolves contract ABIs as JSON.
type ABIProvider interface {
	GetAbi(ctx context.Context, chainID string, account transaction.Name) (string, error)
	GetAbis(ctx context.Context, chainID string, accounts []transaction.Name) (map[transaction.Name]string, error)
}

// SerializationProvider converts between JSON and the binary (hex) wire form.
type SerializationProvider interface {
	// Serialize encodes obj.JSON with obj.ABI and returns the hex result.
	Serialize(ctx context.Context, obj *SerializationObject) (string, error)
	SerializeTransaction(ctx context.Context, json string) (string, error)
	DeserializeTransaction(ctx context.Context, hex string) (string, error)
	// DeserializeAbi converts a binary ABI in hex to its JSON form.
	DeserializeAbi(ctx context.Context, hex string) (string, error)
}

// SignatureProvider holds keys and signs serialized transactions.
type SignatureProvider interface {
	GetAvailableKeys(ctx context.Context) ([]string, error)
	SignTransaction(ctx context.Context, req *SignatureRequest) (*SignatureResponse, error)
}

type GetInfoResponse struct {
	ServerVersion            string `json:"server_version"`
	ChainID                  string `json:"chain_id"`
	HeadBlockNum             uint32 `json:"head_block_num"`
	LastIrreversibleBlockNum uint32 `json:"last_irreversible_block_num"`
	HeadBlockID              string `json:"head_block_id"`
	HeadBlockTime            string `json:"head_block_time"`
	HeadBlockProducer        string `json:"head_block_producer"`
}

type GetBlockRequest struct {
	BlockNumOrID string `json:"block_num_or_id"`
}

type GetBlockResponse struct {
	ID             string `json:"id"`
	BlockNum       uint32 `json:"block_num"`
	RefBlockPrefix uint32 `json:"ref_block_prefix"`
	Timestamp      string `json:"timestamp"`
	Producer       string `json:"producer"`
}

type GetRawAbiRequest struct {
	AccountName transaction.Name `json:"account_name"`
}

type GetRawAbiResponse struct {
	AccountName string `json:"account_name"`
	CodeHash    string `json:"code_hash"`
	AbiHash     string `json:"abi_hash"`
	// Abi is the base64 encoded binary ABI.
	Abi string `json:"abi"`
}

type GetRequiredKeysRequest struct {
	Transaction   *transaction.Transaction `json:"transaction"`
	AvailableKeys []string                 `json:"available_keys"`
}

type GetRequiredKeysResponse struct {
	RequiredKeys []string `json:"required_keys"`
}

type PushTransactionRequest struct {
	Signatures            []string `json:"signatures"`
	Compression           int      `json:"compression"`
	PackedContextFreeData string   `json:"packed_context_free_data"`
	PackedTrx             string   `json:"packed_trx"`
}

type PushTransactionResponse struct {
	TransactionID string         `json:"transaction_id"`
	Processed     map[string]any `json:"processed"`
}

// SerializationObject is the input of SerializationProvider.Serialize.
type SerializationObject struct {
	ContractName transaction.Name
	Name         transaction.Name
	// Type overrides the ABI type to encode with; empty means the action type Name.
	Type string
	JSON string
	ABI  string
}

// SignatureRequest asks a SignatureProvider to sign SerializedTransaction for ChainID with
// SigningPublicKeys.
type SignatureRequest struct {
	SerializedTransaction string
	SigningPublicKeys     []string
	ChainID               string
	// IsModifiable tells the signer it may return a different transaction than it received.
	IsModifiable bool
}

type SignatureResponse struct {
	SerializedTransaction string
	Signatures            []string
	// Error is set when the signer failed after producing a response.
	Error error
}
