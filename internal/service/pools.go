package service

import (
	"context"
	"fmt"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
)

// CreatePool registers a pool. With an existing contract address the locator
// is packed here, once, and returned. Without one the factory deploys a
// contract and the pool is announced later by its creation event.
func (s *Service) CreatePool(ctx context.Context, req CreatePoolRequest) (*CreatePoolResult, error) {
	typ, err := tokens.ParseTokenType(string(req.Type))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	schema, err := tokens.ResolveSchemaName(typ, tokens.WithDataOrDefault(req.Config.WithData))
	if err != nil {
		return nil, err
	}

	if req.Config.Address != "" {
		pool := tokens.PoolLocator{Address: req.Config.Address, Schema: schema, Type: typ}
		locator := tokens.PackPoolLocator(pool)
		s.logger.Info().Str("poolLocator", locator).Msg("pool created")
		return &CreatePoolResult{Pool: &TokenPool{
			Type:        typ,
			PoolLocator: locator,
			Standard:    Standard(typ),
			Signer:      req.Signer,
			Data:        req.Data,
			Info:        PoolInfo{Address: pool.Address, Schema: schema},
		}}, nil
	}

	if s.factory == "" {
		return nil, ErrFactoryNotConfigured
	}
	f := tokens.OperationFields{Name: req.Name, Symbol: req.Symbol, Data: req.Data}
	id, err := s.invoke(ctx, contract.FactoryID, s.factory, req.Signer, schema, tokens.OpCreate, f, req.RequestID)
	if err != nil {
		return nil, err
	}
	return &CreatePoolResult{ID: id}, nil
}

// ActivatePool subscribes to the pool's contract events so they are
// correlated back to it. Subscriptions that already exist are reused.
func (s *Service) ActivatePool(ctx context.Context, req ActivatePoolRequest) (*TokenPool, error) {
	pool, err := resolvePool(req.PoolLocator)
	if err != nil {
		return nil, err
	}
	streamID, err := s.streamID()
	if err != nil {
		return nil, err
	}
	existing, err := s.subscriptionNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range PoolEvents(pool.Schema) {
		ev, err := contract.FindEvent(string(pool.Schema), name)
		if err != nil {
			return nil, err
		}
		sub := tokens.PackSubscriptionName(s.events.Topic, req.PoolLocator, name)
		if err := s.ensureSubscription(ctx, existing, streamID, sub, pool.Address, *ev); err != nil {
			return nil, err
		}
	}
	return &TokenPool{
		Type:        pool.Type,
		PoolLocator: req.PoolLocator,
		Standard:    Standard(pool.Type),
		Info:        PoolInfo{Address: pool.Address, Schema: pool.Schema},
	}, nil
}
