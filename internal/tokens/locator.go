package tokens

import (
	"net/url"
	"strings"
)

const (
	locatorKeyAddress = "address"
	locatorKeySchema  = "schema"
	locatorKeyType    = "type"

	// locatorKeyLegacySchema is the name the schema field was stored under
	// before it was renamed. Locators issued with it are still accepted.
	locatorKeyLegacySchema = "standard"
)

// PoolLocator is a fully-resolved pool identity.
type PoolLocator struct {
	Address string
	Schema  Schema
	Type    TokenType
}

// PartialPoolLocator is the decoded form of a locator string. Fields missing
// from the input are nil. Use Valid to obtain a PoolLocator.
type PartialPoolLocator struct {
	Address *string
	Schema  *Schema
	Type    *TokenType
}

// IsValid reports whether every field is present.
func (p PartialPoolLocator) IsValid() bool {
	return p.Address != nil && p.Schema != nil && p.Type != nil
}

// Valid returns the populated locator. ok is false if any field is missing,
// in which case the returned locator must not be used.
func (p PartialPoolLocator) Valid() (PoolLocator, bool) {
	if !p.IsValid() {
		return PoolLocator{}, false
	}
	return PoolLocator{Address: *p.Address, Schema: *p.Schema, Type: *p.Type}, true
}

// Consistent reports whether l can drive contract calls: the address is set,
// the schema is one of the four known ones, and it agrees with the type.
func (l PoolLocator) Consistent() bool {
	return l.Address != "" && l.Schema.Known() && l.Schema.TokenType() == l.Type
}

// PackPoolLocator encodes a locator as a query string. The result is the
// durable identifier of the pool: call it once, when the pool is created,
// and hand the string out unchanged from then on.
func PackPoolLocator(l PoolLocator) string {
	v := url.Values{}
	v.Set(locatorKeyAddress, l.Address)
	v.Set(locatorKeySchema, string(l.Schema))
	v.Set(locatorKeyType, string(l.Type))
	return v.Encode()
}

// UnpackPoolLocator decodes a locator string. It never fails: malformed or
// incomplete input produces a locator whose IsValid is false.
func UnpackPoolLocator(data string) PartialPoolLocator {
	// ParseQuery keeps every pair it could decode alongside the error.
	v, _ := url.ParseQuery(strings.TrimPrefix(data, "?"))

	var p PartialPoolLocator
	if s, ok := lookup(v, locatorKeyAddress); ok {
		p.Address = &s
	}
	if s, ok := lookup(v, locatorKeySchema); ok {
		schema := Schema(s)
		p.Schema = &schema
	} else if s, ok := lookup(v, locatorKeyLegacySchema); ok {
		schema := Schema(s)
		p.Schema = &schema
	}
	if s, ok := lookup(v, locatorKeyType); ok {
		typ := TokenType(s)
		p.Type = &typ
	}
	return p
}

func lookup(v url.Values, key string) (string, bool) {
	vs, ok := v[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
