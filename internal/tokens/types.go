// Package tokens holds the pool identity and schema resolution rules shared
// by every operation the connector performs.
package tokens

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTokenType is returned for a type outside the closed set.
	ErrInvalidTokenType = errors.New("invalid token type")
	// ErrUnsupportedOperation is returned when a schema has no method for an operation.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrMissingField is returned when an operation lacks a required argument.
	ErrMissingField = errors.New("missing required field")
)

// TokenType is the fungibility of a pool.
type TokenType string

const (
	TokenTypeFungible    TokenType = "fungible"
	TokenTypeNonFungible TokenType = "nonfungible"
)

// ParseTokenType validates s against the known token types.
func ParseTokenType(s string) (TokenType, error) {
	switch t := TokenType(s); t {
	case TokenTypeFungible, TokenTypeNonFungible:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTokenType, s)
}

// Operation is a logical token action.
type Operation string

const (
	OpCreate   Operation = "create"
	OpMint     Operation = "mint"
	OpTransfer Operation = "transfer"
	OpBurn     Operation = "burn"
	OpApprove  Operation = "approve"
)

// Operations lists every operation in a fixed order.
var Operations = []Operation{OpCreate, OpMint, OpTransfer, OpBurn, OpApprove}

// OperationFields carries the caller-supplied values an operation may need.
// Only the fields relevant to a given (schema, operation) pair are read.
type OperationFields struct {
	Name       string
	Symbol     string
	From       string
	To         string
	Amount     string
	TokenIndex string
	Operator   string
	Approved   bool
	Allowance  string
	Data       string
}
