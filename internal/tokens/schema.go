package tokens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
)

// Schema names the ABI variant a pool's contract implements.
type Schema string

const (
	SchemaERC20WithData  Schema = "ERC20WithData"
	SchemaERC20NoData    Schema = "ERC20NoData"
	SchemaERC721WithData Schema = "ERC721WithData"
	SchemaERC721NoData   Schema = "ERC721NoData"
)

// Schemas lists every known schema.
var Schemas = []Schema{SchemaERC20WithData, SchemaERC20NoData, SchemaERC721WithData, SchemaERC721NoData}

// DefaultWithData is used when a pool's config does not say whether the
// contract takes a data argument.
const DefaultWithData = true

type schemaInfo struct {
	typ      TokenType
	withData bool
	methods  map[Operation]string
}

var schemaTable = map[Schema]schemaInfo{
	SchemaERC20WithData: {
		typ:      TokenTypeFungible,
		withData: true,
		methods: map[Operation]string{
			OpCreate:   "createWithData",
			OpMint:     "mintWithData",
			OpTransfer: "transferWithData",
			OpBurn:     "burnWithData",
			OpApprove:  "approveWithData",
		},
	},
	SchemaERC20NoData: {
		typ: TokenTypeFungible,
		methods: map[Operation]string{
			OpCreate:   "create",
			OpMint:     "mint",
			OpTransfer: "transferFrom",
			OpBurn:     "burnFrom",
			OpApprove:  "approve",
		},
	},
	SchemaERC721WithData: {
		typ:      TokenTypeNonFungible,
		withData: true,
		methods: map[Operation]string{
			OpCreate:   "createWithData",
			OpMint:     "mintWithData",
			OpTransfer: "transferWithData",
			OpBurn:     "burnWithData",
			OpApprove:  "setApprovalForAllWithData",
		},
	},
	SchemaERC721NoData: {
		typ: TokenTypeNonFungible,
		methods: map[Operation]string{
			OpCreate:   "create",
			OpMint:     "mint",
			OpTransfer: "safeTransferFrom",
			OpBurn:     "burn",
			OpApprove:  "setApprovalForAll",
		},
	},
}

// ResolveSchemaName returns the schema for a token type and data flag.
func ResolveSchemaName(t TokenType, withData bool) (Schema, error) {
	for name, info := range schemaTable {
		if info.typ == t && info.withData == withData {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTokenType, t)
}

// WithDataOrDefault resolves an optional with-data flag.
func WithDataOrDefault(withData *bool) bool {
	if withData == nil {
		return DefaultWithData
	}
	return *withData
}

// HasData reports whether the schema's mutating methods take a data argument.
func (s Schema) HasData() bool {
	return schemaTable[s].withData
}

// TokenType returns the fungibility a schema implements, or "" if unknown.
func (s Schema) TokenType() TokenType {
	return schemaTable[s].typ
}

// Known reports whether s is one of the canonical schema names.
func (s Schema) Known() bool {
	_, ok := schemaTable[s]
	return ok
}

// ResolveMethod returns the contract method implementing op for a schema.
func ResolveMethod(s Schema, op Operation) (string, error) {
	info, ok := schemaTable[s]
	if !ok {
		return "", fmt.Errorf("%w: unknown schema %q", ErrUnsupportedOperation, s)
	}
	method, ok := info.methods[op]
	if !ok {
		return "", fmt.Errorf("%w: %s has no %q method", ErrUnsupportedOperation, s, op)
	}
	return method, nil
}

// BuildArguments returns the positional arguments for op's method on a
// contract implementing schema s. With-data schemas always get the encoded
// data as the last argument; other schemas never do.
func BuildArguments(s Schema, op Operation, f OperationFields) ([]any, error) {
	info, ok := schemaTable[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown schema %q", ErrUnsupportedOperation, s)
	}

	var (
		args []any
		err  error
	)
	if info.typ == TokenTypeFungible {
		args, err = fungibleArguments(op, f)
	} else {
		args, err = nonFungibleArguments(op, f, info.withData)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", s, op, err)
	}

	if info.withData {
		args = append(args, EncodeHex(f.Data))
	}
	return args, nil
}

func fungibleArguments(op Operation, f OperationFields) ([]any, error) {
	switch op {
	case OpCreate:
		return []any{f.Name, f.Symbol, true}, nil
	case OpMint:
		return []any{f.To, f.Amount}, nil
	case OpTransfer:
		return []any{f.From, f.To, f.Amount}, nil
	case OpBurn:
		return []any{f.From, f.Amount}, nil
	case OpApprove:
		return []any{f.Operator, allowance(f)}, nil
	}
	return nil, ErrUnsupportedOperation
}

func nonFungibleArguments(op Operation, f OperationFields, withData bool) ([]any, error) {
	switch op {
	case OpCreate:
		return []any{f.Name, f.Symbol, false}, nil
	case OpApprove:
		return []any{f.Operator, f.Approved}, nil
	}

	if f.TokenIndex == "" {
		return nil, fmt.Errorf("%w: tokenIndex", ErrMissingField)
	}
	switch op {
	case OpMint:
		return []any{f.To, f.TokenIndex}, nil
	case OpTransfer:
		return []any{f.From, f.To, f.TokenIndex}, nil
	case OpBurn:
		if withData {
			return []any{f.From, f.TokenIndex}, nil
		}
		return []any{f.TokenIndex}, nil
	}
	return nil, ErrUnsupportedOperation
}

// allowance is the ERC20 approval amount: the configured allowance, the
// maximum uint256 when approving without one, and zero when revoking.
func allowance(f OperationFields) string {
	if !f.Approved {
		return "0"
	}
	if f.Allowance != "" {
		return f.Allowance
	}
	return math.MaxBig256.String()
}
