package contract

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// Selector returns the 0x-prefixed 4-byte function selector.
func Selector(fn ABIEntry) string {
	return "0x" + hex.EncodeToString(keccak([]byte(fn.Signature()))[:4])
}

// Topic returns the 0x-prefixed event topic hash.
func Topic(ev ABIEntry) string {
	return "0x" + hex.EncodeToString(keccak([]byte(ev.Signature())))
}

func keccak(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// EncodeCall builds calldata (selector + ABI-encoded args) for fn. Arguments
// are accepted in the loose JSON form a gateway takes: strings for
// addresses, integers and hex bytes, and bool or "true"/"false" for bools.
// It fails if the argument count or any value does not fit the ABI.
func EncodeCall(fn ABIEntry, args []any) ([]byte, error) {
	if len(args) != len(fn.Inputs) {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", fn.Signature(), len(fn.Inputs), len(args))
	}

	arguments := make(abi.Arguments, len(fn.Inputs))
	values := make([]any, len(fn.Inputs))
	for i, p := range fn.Inputs {
		typ, err := abi.NewType(p.Type, "", nil)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", paramName(p, i), err)
		}
		v, err := convertArg(typ, args[i])
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", paramName(p, i), err)
		}
		arguments[i] = abi.Argument{Name: p.Name, Type: typ}
		values[i] = v
	}

	packed, err := arguments.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", fn.Signature(), err)
	}

	out := make([]byte, 0, 4+len(packed))
	out = append(out, keccak([]byte(fn.Signature()))[:4]...)
	return append(out, packed...), nil
}

func paramName(p ABIParam, i int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("#%d", i)
}

// convertArg turns a loosely-typed value into the Go type abi.Pack expects.
func convertArg(typ abi.Type, v any) (any, error) {
	switch typ.T {
	case abi.AddressTy:
		s, ok := v.(string)
		if !ok || !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address: %v", v)
		}
		return common.HexToAddress(s), nil

	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		if typ.T == abi.UintTy && n.Sign() < 0 {
			return nil, fmt.Errorf("negative value for %s: %s", typ.String(), n)
		}
		rt := typ.GetType()
		if rt.Kind() == reflect.Ptr {
			return n, nil
		}
		// 8/16/32/64-bit sizes are packed from native Go integers.
		rv := reflect.New(rt).Elem()
		if typ.T == abi.UintTy {
			if !n.IsUint64() || rv.OverflowUint(n.Uint64()) {
				return nil, fmt.Errorf("value out of range for %s: %s", typ.String(), n)
			}
			rv.SetUint(n.Uint64())
		} else {
			if !n.IsInt64() || rv.OverflowInt(n.Int64()) {
				return nil, fmt.Errorf("value out of range for %s: %s", typ.String(), n)
			}
			rv.SetInt(n.Int64())
		}
		return rv.Interface(), nil

	case abi.BoolTy:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			switch b {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, fmt.Errorf("invalid bool: %v", v)

	case abi.StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("invalid string: %v", v)
		}
		return s, nil

	case abi.BytesTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("invalid bytes: %v", v)
		}
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes %q: %w", s, err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unsupported ABI type %s", typ.String())
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case string:
		s, base := strings.TrimSpace(n), 10
		if digits, ok := strings.CutPrefix(s, "0x"); ok {
			s, base = digits, 16
		}
		out, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, fmt.Errorf("invalid integer: %q", n)
		}
		return out, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case *big.Int:
		return n, nil
	}
	return nil, fmt.Errorf("invalid integer: %v", v)
}
