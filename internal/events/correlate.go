package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Mohsinsiddi/w3tokens/internal/ethconnect"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// SubscriptionSource resolves a subscription ID to its definition.
type SubscriptionSource interface {
	GetSubscription(ctx context.Context, id string) (*ethconnect.Subscription, error)
}

// Correlator maps raw gateway events to the pool they belong to. Only
// events whose subscription name carries this connector's prefix are kept.
type Correlator struct {
	prefix string
	subs   SubscriptionSource
	logger zerolog.Logger

	mu    sync.Mutex
	names map[string]string
}

// NewCorrelator creates a correlator for subscriptions named with prefix.
func NewCorrelator(prefix string, subs SubscriptionSource) *Correlator {
	return &Correlator{
		prefix: prefix,
		subs:   subs,
		logger: klog.WithComponent("events"),
		names:  make(map[string]string),
	}
}

// Correlate returns the token event for ev, or nil if ev is not ours or
// cannot be attributed to a valid pool.
func (c *Correlator) Correlate(ctx context.Context, ev ethconnect.Event) (*Message, error) {
	subName, err := c.subscriptionName(ctx, ev.SubID)
	if errors.Is(err, ethconnect.ErrNotFound) {
		c.logger.Warn().Str("subId", ev.SubID).Msg("event for unknown subscription")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	name := tokens.UnpackSubscriptionName(c.prefix, subName)
	if !name.Matched() {
		c.logger.Debug().Str("subscription", subName).Msg("ignoring event from foreign subscription")
		return nil, nil
	}
	if name.PoolLocator == "" {
		c.logger.Warn().Str("subscription", subName).Msg("subscription has our prefix but no pool locator")
		return nil, nil
	}
	event := name.Event
	if event == "" {
		event, _, _ = strings.Cut(ev.Signature, "(")
	}

	if event == service.PoolCreationEvent {
		return c.poolCreated(ev)
	}

	pool, ok := tokens.UnpackPoolLocator(name.PoolLocator).Valid()
	if !ok || !pool.Consistent() {
		c.logger.Warn().Str("subscription", subName).Msg("subscription does not name a valid pool")
		return nil, nil
	}

	switch event {
	case "Transfer":
		return transferMessage(name.PoolLocator, pool, event, ev), nil
	case "Approval", "ApprovalForAll":
		return approvalMessage(name.PoolLocator, pool, event, ev), nil
	}
	c.logger.Debug().Str("event", event).Msg("ignoring unhandled event")
	return nil, nil
}

func (c *Correlator) subscriptionName(ctx context.Context, id string) (string, error) {
	c.mu.Lock()
	name, ok := c.names[id]
	c.mu.Unlock()
	if ok {
		return name, nil
	}

	sub, err := c.subs.GetSubscription(ctx, id)
	if err != nil {
		return "", fmt.Errorf("resolving subscription %s: %w", id, err)
	}
	c.mu.Lock()
	c.names[id] = sub.Name
	c.mu.Unlock()
	return sub.Name, nil
}

func (c *Correlator) poolCreated(ev ethconnect.Event) (*Message, error) {
	address := field(ev.Data, "contract_address")
	if address == "" {
		c.logger.Warn().Str("tx", ev.TransactionHash).Msg("pool creation event without contract address")
		return nil, nil
	}
	typ := tokens.TokenTypeNonFungible
	if truthy(ev.Data["is_fungible"]) {
		typ = tokens.TokenTypeFungible
	}
	withData := ev.InputMethod != "create"
	schema, err := tokens.ResolveSchemaName(typ, withData)
	if err != nil {
		return nil, err
	}

	locator := tokens.PackPoolLocator(tokens.PoolLocator{Address: address, Schema: schema, Type: typ})
	return &Message{Event: KindPool, Data: &PoolEvent{
		Standard:    service.Standard(typ),
		PoolLocator: locator,
		Type:        typ,
		Signer:      ev.InputSigner,
		Data:        decodeData(ev.Data["data"]),
		Name:        field(ev.Data, "name"),
		Symbol:      field(ev.Data, "symbol"),
		Info:        service.PoolInfo{Address: address, Schema: schema},
		Blockchain:  blockchainInfo(service.PoolCreationEvent, ev),
	}}, nil
}

func transferMessage(locator string, pool tokens.PoolLocator, event string, ev ethconnect.Event) *Message {
	t := &TransferEvent{
		ID:          EventID(ev),
		PoolLocator: locator,
		Signer:      ev.InputSigner,
		From:        field(ev.Data, "from"),
		To:          field(ev.Data, "to"),
		Blockchain:  blockchainInfo(event, ev),
	}
	if pool.Type == tokens.TokenTypeNonFungible {
		t.TokenIndex = field(ev.Data, "tokenId")
		t.Amount = "1"
	} else {
		t.Amount = field(ev.Data, "value")
	}
	if pool.Schema.HasData() {
		t.Data = decodeData(ev.InputArgs["data"])
	}

	kind := KindTransfer
	switch {
	case isZeroAddress(t.From):
		kind, t.From = KindMint, ""
	case isZeroAddress(t.To):
		kind, t.To = KindBurn, ""
	}
	return &Message{Event: kind, Data: t}
}

func approvalMessage(locator string, pool tokens.PoolLocator, event string, ev ethconnect.Event) *Message {
	a := &ApprovalEvent{
		ID:          EventID(ev),
		PoolLocator: locator,
		Signer:      field(ev.Data, "owner"),
		Blockchain:  blockchainInfo(event, ev),
	}
	if event == "ApprovalForAll" {
		a.Operator = field(ev.Data, "operator")
		a.Approved = truthy(ev.Data["approved"])
	} else {
		a.Operator = field(ev.Data, "spender")
		value := field(ev.Data, "value")
		a.Approved = value != "" && value != "0"
	}
	a.Subject = a.Signer + ":" + a.Operator
	if pool.Schema.HasData() {
		a.Data = decodeData(ev.InputArgs["data"])
	}
	return &Message{Event: KindApproval, Data: a}
}

// EventID orders events by block, transaction and log position.
func EventID(ev ethconnect.Event) string {
	return padLeft(ev.BlockNumber, 12) + "/" + padLeft(ev.TransactionIndex, 6) + "/" + padLeft(ev.LogIndex, 6)
}

func blockchainInfo(name string, ev ethconnect.Event) BlockchainInfo {
	return BlockchainInfo{
		ID:        EventID(ev),
		Name:      name,
		Location:  "address=" + ev.Address,
		Signature: ev.Signature,
		Timestamp: ev.Timestamp,
		Output:    ev.Data,
		Info: map[string]any{
			"address":          ev.Address,
			"signature":        ev.Signature,
			"blockNumber":      ev.BlockNumber,
			"transactionIndex": ev.TransactionIndex,
			"transactionHash":  ev.TransactionHash,
			"logIndex":         ev.LogIndex,
		},
	}
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

func field(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

func decodeData(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return ""
	}
	return tokens.DecodeHex(s)
}

func isZeroAddress(addr string) bool {
	return common.IsHexAddress(addr) && common.HexToAddress(addr) == (common.Address{})
}
