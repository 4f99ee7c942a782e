// Package events turns gateway event batches into pool-level token events.
package events

import (
	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
)

// Kind names a correlated event as delivered to clients.
type Kind string

const (
	KindPool     Kind = "token-pool"
	KindMint     Kind = "token-mint"
	KindTransfer Kind = "token-transfer"
	KindBurn     Kind = "token-burn"
	KindApproval Kind = "token-approval"
	KindReceipt  Kind = "receipt"
)

// Message is one correlated event.
type Message struct {
	Event Kind `json:"event"`
	Data  any  `json:"data"`
}

// BlockchainInfo is the on-chain origin of an event.
type BlockchainInfo struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Signature string         `json:"signature"`
	Timestamp string         `json:"timestamp,omitempty"`
	Output    map[string]any `json:"output"`
	Info      map[string]any `json:"info"`
}

// PoolEvent announces a pool deployed by the factory.
type PoolEvent struct {
	Standard    string           `json:"standard"`
	PoolLocator string           `json:"poolLocator"`
	Type        tokens.TokenType `json:"type"`
	Signer      string           `json:"signer,omitempty"`
	Data        string           `json:"data,omitempty"`
	Name        string           `json:"name,omitempty"`
	Symbol      string           `json:"symbol,omitempty"`
	Info        service.PoolInfo `json:"info"`
	Blockchain  BlockchainInfo   `json:"blockchain"`
}

// TransferEvent is a mint, transfer or burn.
type TransferEvent struct {
	ID          string         `json:"id"`
	PoolLocator string         `json:"poolLocator"`
	Signer      string         `json:"signer,omitempty"`
	From        string         `json:"from,omitempty"`
	To          string         `json:"to,omitempty"`
	Amount      string         `json:"amount"`
	TokenIndex  string         `json:"tokenIndex,omitempty"`
	Data        string         `json:"data,omitempty"`
	Blockchain  BlockchainInfo `json:"blockchain"`
}

// ApprovalEvent records an operator being granted or revoked.
type ApprovalEvent struct {
	ID          string         `json:"id"`
	Subject     string         `json:"subject"`
	PoolLocator string         `json:"poolLocator"`
	Signer      string         `json:"signer"`
	Operator    string         `json:"operator"`
	Approved    bool           `json:"approved"`
	Data        string         `json:"data,omitempty"`
	Blockchain  BlockchainInfo `json:"blockchain"`
}

// ReceiptEvent is the outcome of a submitted transaction.
type ReceiptEvent struct {
	ID              string `json:"id"`
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Message         string `json:"message,omitempty"`
}
