// Package service implements the token pool operations on top of the
// locator/schema rules in package tokens and a blockchain gateway.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Mohsinsiddi/w3tokens/internal/config"
	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/Mohsinsiddi/w3tokens/internal/ethconnect"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidRequest is returned when a request is missing or has malformed fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidPoolLocator is returned when a locator does not decode to a complete pool identity.
	ErrInvalidPoolLocator = errors.New("invalid pool locator")
	// ErrFactoryNotConfigured is returned when a pool without an address is requested
	// and no factory contract is configured.
	ErrFactoryNotConfigured = errors.New("token factory not configured")
	// ErrNotActivated is returned by operations that need the event stream before Init ran.
	ErrNotActivated = errors.New("event stream not initialized")
)

// Gateway is the subset of the gateway client the service uses.
type Gateway interface {
	SendTransaction(ctx context.Context, from, to string, method contract.ABIEntry, params []any, id string) (*ethconnect.AsyncResponse, error)
	Query(ctx context.Context, to string, method contract.ABIEntry, params []any) (*ethconnect.QueryResponse, error)
	EnsureEventStream(ctx context.Context, name, topic string, batchSize int) (*ethconnect.EventStream, error)
	GetSubscriptions(ctx context.Context) ([]ethconnect.Subscription, error)
	CreateSubscription(ctx context.Context, streamID, name, address string, event contract.ABIEntry, fromBlock string) (*ethconnect.Subscription, error)
}

// Service performs token pool operations.
type Service struct {
	gw      Gateway
	events  config.Events
	factory string
	signer  string
	logger  zerolog.Logger

	mu     sync.Mutex
	stream *ethconnect.EventStream
}

// New creates a service from config.
func New(gw Gateway, cfg *config.Config) *Service {
	return &Service{
		gw:      gw,
		events:  cfg.Events,
		factory: cfg.Factory,
		signer:  cfg.DefaultSigner,
		logger:  klog.WithComponent("service"),
	}
}

// Topic is the event stream topic, which is also the subscription name prefix.
func (s *Service) Topic() string {
	return s.events.Topic
}

// Init ensures the event stream exists and, when a factory is configured,
// that its pool creation event is subscribed.
func (s *Service) Init(ctx context.Context) error {
	stream, err := s.gw.EnsureEventStream(ctx, s.events.Stream, s.events.Topic, s.events.BatchSize)
	if err != nil {
		return fmt.Errorf("initializing event stream: %w", err)
	}
	s.mu.Lock()
	s.stream = stream
	s.mu.Unlock()

	if s.factory == "" {
		return nil
	}
	ev, err := contract.FindEvent(contract.FactoryID, PoolCreationEvent)
	if err != nil {
		return err
	}
	existing, err := s.subscriptionNames(ctx)
	if err != nil {
		return err
	}
	name := tokens.PackSubscriptionName(s.events.Topic, s.factory, PoolCreationEvent)
	return s.ensureSubscription(ctx, existing, stream.ID, name, s.factory, *ev)
}

// PoolCreationEvent is the factory event announcing a deployed pool contract.
const PoolCreationEvent = "TokenPoolCreation"

func (s *Service) streamID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stream == nil {
		return "", ErrNotActivated
	}
	return s.stream.ID, nil
}

func (s *Service) subscriptionNames(ctx context.Context) (map[string]bool, error) {
	subs, err := s.gw.GetSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	names := make(map[string]bool, len(subs))
	for _, sub := range subs {
		names[sub.Name] = true
	}
	return names, nil
}

func (s *Service) ensureSubscription(ctx context.Context, existing map[string]bool, streamID, name, address string, event contract.ABIEntry) error {
	if existing[name] {
		s.logger.Debug().Str("subscription", name).Msg("subscription exists")
		return nil
	}
	if _, err := s.gw.CreateSubscription(ctx, streamID, name, address, event, s.events.FromBlock); err != nil {
		return fmt.Errorf("subscribing %s: %w", name, err)
	}
	s.logger.Info().Str("subscription", name).Str("address", address).Msg("subscription created")
	return nil
}

// resolvePool unpacks a caller-supplied locator. It never packs.
func resolvePool(locator string) (tokens.PoolLocator, error) {
	if locator == "" {
		return tokens.PoolLocator{}, fmt.Errorf("%w: poolLocator is required", ErrInvalidRequest)
	}
	pool, ok := tokens.UnpackPoolLocator(locator).Valid()
	if !ok {
		return tokens.PoolLocator{}, fmt.Errorf("%w: %q", ErrInvalidPoolLocator, locator)
	}
	if !pool.Consistent() {
		return tokens.PoolLocator{}, fmt.Errorf("%w: %q: address %q, schema %s and type %s do not name a pool", ErrInvalidPoolLocator, locator, pool.Address, pool.Schema, pool.Type)
	}
	return pool, nil
}

// Standard is the token standard name of a token type.
func Standard(t tokens.TokenType) string {
	if t == tokens.TokenTypeNonFungible {
		return "ERC721"
	}
	return "ERC20"
}

// PoolEvents returns the contract events a pool of schema s is subscribed to.
func PoolEvents(s tokens.Schema) []string {
	if s.TokenType() == tokens.TokenTypeNonFungible {
		return []string{"Transfer", "ApprovalForAll"}
	}
	return []string{"Transfer", "Approval"}
}

func (s *Service) signerOr(signer string) (string, error) {
	if signer != "" {
		return signer, nil
	}
	if s.signer != "" {
		return s.signer, nil
	}
	return "", fmt.Errorf("%w: signer is required", ErrInvalidRequest)
}

// invoke resolves and validates a call, then submits it through the gateway.
func (s *Service) invoke(ctx context.Context, abiID, to, signer string, schema tokens.Schema, op tokens.Operation, f tokens.OperationFields, requestID string) (string, error) {
	from, err := s.signerOr(signer)
	if err != nil {
		return "", err
	}
	name, err := tokens.ResolveMethod(schema, op)
	if err != nil {
		return "", err
	}
	args, err := tokens.BuildArguments(schema, op, f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	method, err := contract.FindMethod(abiID, name)
	if err != nil {
		return "", err
	}
	if _, err := contract.EncodeCall(*method, args); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	resp, err := s.gw.SendTransaction(ctx, from, to, *method, args, requestID)
	if err != nil {
		return "", err
	}
	s.logger.Info().
		Str("op", string(op)).
		Str("schema", string(schema)).
		Str("method", name).
		Str("id", resp.ID).
		Msg("transaction sent")
	return resp.ID, nil
}
