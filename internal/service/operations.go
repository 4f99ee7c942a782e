package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/ethereum/go-ethereum/common"
)

// Mint submits a mint to the pool's contract and returns the operation ID.
func (s *Service) Mint(ctx context.Context, req MintRequest) (string, error) {
	pool, err := resolvePool(req.PoolLocator)
	if err != nil {
		return "", err
	}
	if err := checkQuantity(pool, req.Amount, req.TokenIndex); err != nil {
		return "", err
	}
	f := tokens.OperationFields{To: req.To, Amount: req.Amount, TokenIndex: req.TokenIndex, Data: req.Data}
	return s.invoke(ctx, string(pool.Schema), pool.Address, req.Signer, pool.Schema, tokens.OpMint, f, req.RequestID)
}

// Transfer submits a transfer and returns the operation ID.
func (s *Service) Transfer(ctx context.Context, req TransferRequest) (string, error) {
	pool, err := resolvePool(req.PoolLocator)
	if err != nil {
		return "", err
	}
	if err := checkQuantity(pool, req.Amount, req.TokenIndex); err != nil {
		return "", err
	}
	f := tokens.OperationFields{From: req.From, To: req.To, Amount: req.Amount, TokenIndex: req.TokenIndex, Data: req.Data}
	return s.invoke(ctx, string(pool.Schema), pool.Address, req.Signer, pool.Schema, tokens.OpTransfer, f, req.RequestID)
}

// Burn submits a burn and returns the operation ID.
func (s *Service) Burn(ctx context.Context, req BurnRequest) (string, error) {
	pool, err := resolvePool(req.PoolLocator)
	if err != nil {
		return "", err
	}
	if err := checkQuantity(pool, req.Amount, req.TokenIndex); err != nil {
		return "", err
	}
	f := tokens.OperationFields{From: req.From, Amount: req.Amount, TokenIndex: req.TokenIndex, Data: req.Data}
	return s.invoke(ctx, string(pool.Schema), pool.Address, req.Signer, pool.Schema, tokens.OpBurn, f, req.RequestID)
}

// Approval grants or revokes an operator and returns the operation ID.
func (s *Service) Approval(ctx context.Context, req ApprovalRequest) (string, error) {
	pool, err := resolvePool(req.PoolLocator)
	if err != nil {
		return "", err
	}
	if req.Operator == "" {
		return "", fmt.Errorf("%w: operator is required", ErrInvalidRequest)
	}
	f := tokens.OperationFields{
		Operator:  req.Operator,
		Approved:  req.Approved,
		Allowance: req.Config.Allowance,
		Data:      req.Data,
	}
	return s.invoke(ctx, string(pool.Schema), pool.Address, req.Signer, pool.Schema, tokens.OpApprove, f, req.RequestID)
}

// BalanceOf reads an account's balance. For non-fungible pools with a token
// index the result is "1" when the account owns that token and "0" otherwise.
func (s *Service) BalanceOf(ctx context.Context, req BalanceRequest) (*Balance, error) {
	pool, err := resolvePool(req.PoolLocator)
	if err != nil {
		return nil, err
	}
	if req.Account == "" {
		return nil, fmt.Errorf("%w: account is required", ErrInvalidRequest)
	}

	if pool.Type == tokens.TokenTypeNonFungible && req.TokenIndex != "" {
		owner, err := s.query(ctx, pool, "ownerOf", []any{req.TokenIndex})
		if err != nil {
			return nil, err
		}
		if sameAddress(owner, req.Account) {
			return &Balance{Balance: "1"}, nil
		}
		return &Balance{Balance: "0"}, nil
	}

	bal, err := s.query(ctx, pool, "balanceOf", []any{req.Account})
	if err != nil {
		return nil, err
	}
	return &Balance{Balance: bal}, nil
}

func (s *Service) query(ctx context.Context, pool tokens.PoolLocator, name string, args []any) (string, error) {
	method, err := contract.FindMethod(string(pool.Schema), name)
	if err != nil {
		return "", err
	}
	if _, err := contract.EncodeCall(*method, args); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	resp, err := s.gw.Query(ctx, pool.Address, *method, args)
	if err != nil {
		return "", err
	}
	return outputString(resp.Output)
}

// outputString accepts the gateway's single output as a JSON string or number.
func outputString(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", fmt.Errorf("unexpected query output %s", string(raw))
	}
	return num.String(), nil
}

// checkQuantity validates the amount/tokenIndex pair for the pool type.
// Non-fungible tokens move one at a time.
func checkQuantity(pool tokens.PoolLocator, amount, tokenIndex string) error {
	if pool.Type == tokens.TokenTypeNonFungible {
		if tokenIndex == "" {
			return fmt.Errorf("%w: tokenIndex is required for %s pools", ErrInvalidRequest, pool.Type)
		}
		if amount != "" && amount != "1" {
			return fmt.Errorf("%w: amount must be 1 for %s pools", ErrInvalidRequest, pool.Type)
		}
		return nil
	}
	if amount == "" {
		return fmt.Errorf("%w: amount is required", ErrInvalidRequest)
	}
	return nil
}

func sameAddress(a, b string) bool {
	if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
		return false
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}
