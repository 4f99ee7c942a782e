package service

import "github.com/Mohsinsiddi/w3tokens/internal/tokens"

// PoolConfig is the caller-supplied configuration of a new pool.
type PoolConfig struct {
	Address  string `json:"address,omitempty"`
	WithData *bool  `json:"withData,omitempty"`
}

// CreatePoolRequest asks for a new token pool, either over an existing
// contract (Config.Address) or by deploying one through the factory.
type CreatePoolRequest struct {
	Type      tokens.TokenType `json:"type" binding:"required,oneof=fungible nonfungible"`
	RequestID string           `json:"requestId,omitempty"`
	Signer    string           `json:"signer,omitempty"`
	Data      string           `json:"data,omitempty"`
	Name      string           `json:"name,omitempty"`
	Symbol    string           `json:"symbol,omitempty"`
	Config    PoolConfig       `json:"config"`
}

// TokenPool describes a pool whose locator is known.
type TokenPool struct {
	Type        tokens.TokenType `json:"type"`
	PoolLocator string           `json:"poolLocator"`
	Standard    string           `json:"standard"`
	Signer      string           `json:"signer,omitempty"`
	Data        string           `json:"data,omitempty"`
	Info        PoolInfo         `json:"info"`
}

// PoolInfo is the decoded content of a pool locator.
type PoolInfo struct {
	Address string        `json:"address"`
	Schema  tokens.Schema `json:"schema"`
}

// CreatePoolResult is either a synchronous pool or the ID of the factory
// transaction that will create one.
type CreatePoolResult struct {
	Pool *TokenPool
	ID   string
}

// ActivatePoolRequest starts event delivery for a pool.
type ActivatePoolRequest struct {
	PoolLocator string `json:"poolLocator" binding:"required"`
	RequestID   string `json:"requestId,omitempty"`
}

// MintRequest creates tokens in a pool.
type MintRequest struct {
	PoolLocator string `json:"poolLocator" binding:"required"`
	RequestID   string `json:"requestId,omitempty"`
	Signer      string `json:"signer,omitempty"`
	To          string `json:"to" binding:"required"`
	Amount      string `json:"amount,omitempty"`
	TokenIndex  string `json:"tokenIndex,omitempty"`
	Data        string `json:"data,omitempty"`
}

// TransferRequest moves tokens between accounts.
type TransferRequest struct {
	PoolLocator string `json:"poolLocator" binding:"required"`
	RequestID   string `json:"requestId,omitempty"`
	Signer      string `json:"signer,omitempty"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to" binding:"required"`
	Amount      string `json:"amount,omitempty"`
	TokenIndex  string `json:"tokenIndex,omitempty"`
	Data        string `json:"data,omitempty"`
}

// BurnRequest destroys tokens held by From.
type BurnRequest struct {
	PoolLocator string `json:"poolLocator" binding:"required"`
	RequestID   string `json:"requestId,omitempty"`
	Signer      string `json:"signer,omitempty"`
	From        string `json:"from" binding:"required"`
	Amount      string `json:"amount,omitempty"`
	TokenIndex  string `json:"tokenIndex,omitempty"`
	Data        string `json:"data,omitempty"`
}

// ApprovalConfig tunes an approval. Allowance applies to fungible pools only.
type ApprovalConfig struct {
	Allowance string `json:"allowance,omitempty"`
}

// ApprovalRequest grants or revokes an operator's rights over the signer's tokens.
type ApprovalRequest struct {
	PoolLocator string         `json:"poolLocator" binding:"required"`
	RequestID   string         `json:"requestId,omitempty"`
	Signer      string         `json:"signer,omitempty"`
	Operator    string         `json:"operator" binding:"required"`
	Approved    bool           `json:"approved"`
	Data        string         `json:"data,omitempty"`
	Config      ApprovalConfig `json:"config"`
}

// BalanceRequest reads an account balance.
type BalanceRequest struct {
	PoolLocator string `form:"poolLocator" json:"poolLocator" binding:"required"`
	Account     string `form:"account" json:"account" binding:"required"`
	TokenIndex  string `form:"tokenIndex" json:"tokenIndex,omitempty"`
}

// Balance is the result of a balance query.
type Balance struct {
	Balance string `json:"balance"`
}
