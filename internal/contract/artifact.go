package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrInvalidArtifact is returned for files that hold no usable ABI.
var ErrInvalidArtifact = errors.New("invalid ABI artifact")

// LoadArtifact reads the ABI from a compiled contract file. Both a raw ABI
// array and a Hardhat/Foundry artifact object with an "abi" key are
// accepted.
func LoadArtifact(path string) ([]ABIEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	abi, err := ParseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return abi, nil
}

// ParseArtifact is LoadArtifact on bytes already read.
func ParseArtifact(data []byte) ([]ABIEntry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidArtifact)
	}

	if data[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
		}
		data = bytes.TrimSpace(artifact.ABI)
		if len(data) == 0 || data[0] != '[' {
			return nil, fmt.Errorf("%w: object has no \"abi\" array", ErrInvalidArtifact)
		}
	}

	var abi []ABIEntry
	if err := json.Unmarshal(data, &abi); err != nil {
		return nil, fmt.Errorf("%w: expected an array of ABI entries: %v", ErrInvalidArtifact, err)
	}
	for _, e := range abi {
		if e.Type == "function" || e.Type == "event" {
			return abi, nil
		}
	}
	return nil, fmt.Errorf("%w: no functions or events", ErrInvalidArtifact)
}

// MissingFromABI lists the signatures of built-in ABI id that abi lacks,
// functions first then events, each sorted. An empty result means a
// contract with this ABI can serve pools of that schema.
func MissingFromABI(id string, abi []ABIEntry) ([]string, error) {
	b, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown ABI %q", id)
	}
	have := make(map[string]bool, len(abi))
	for _, e := range abi {
		have[e.Type+" "+e.Signature()] = true
	}

	var funcs, events []string
	for _, e := range b.ABI {
		if have[e.Type+" "+e.Signature()] {
			continue
		}
		switch e.Type {
		case "function":
			funcs = append(funcs, e.Signature())
		case "event":
			events = append(events, e.Signature())
		}
	}
	sort.Strings(funcs)
	sort.Strings(events)
	return append(funcs, events...), nil
}
