package ethconnect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
)

// EnsureEventStream returns the websocket event stream called name,
// creating it if missing or updating it if its settings drifted.
func (c *Client) EnsureEventStream(ctx context.Context, name, topic string, batchSize int) (*EventStream, error) {
	var streams []EventStream
	if err := c.do(ctx, http.MethodGet, "/eventstreams", nil, &streams); err != nil {
		return nil, fmt.Errorf("listing event streams: %w", err)
	}

	want := EventStream{
		Name:           name,
		ErrorHandling:  "block",
		BatchSize:      batchSize,
		BatchTimeoutMS: 500,
		Type:           "websocket",
		WebSocket:      WebSocketConfig{Topic: topic},
		Timestamps:     true,
	}

	for _, s := range streams {
		if s.Name != name {
			continue
		}
		if s.WebSocket.Topic == topic && s.BatchSize == batchSize {
			return &s, nil
		}
		var updated EventStream
		if err := c.do(ctx, http.MethodPatch, "/eventstreams/"+url.PathEscape(s.ID), want, &updated); err != nil {
			return nil, fmt.Errorf("updating event stream %s: %w", s.ID, err)
		}
		c.logger.Info().Str("stream", s.ID).Msg("event stream updated")
		return &updated, nil
	}

	var created EventStream
	if err := c.do(ctx, http.MethodPost, "/eventstreams", want, &created); err != nil {
		return nil, fmt.Errorf("creating event stream: %w", err)
	}
	c.logger.Info().Str("stream", created.ID).Str("topic", topic).Msg("event stream created")
	return &created, nil
}

// GetSubscriptions lists every subscription on the gateway.
func (c *Client) GetSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.do(ctx, http.MethodGet, "/subscriptions", nil, &subs); err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	return subs, nil
}

// GetSubscription fetches one subscription by ID.
func (c *Client) GetSubscription(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodGet, "/subscriptions/"+url.PathEscape(id), nil, &sub); err != nil {
		return nil, fmt.Errorf("getting subscription %s: %w", id, err)
	}
	return &sub, nil
}

// CreateSubscription subscribes stream to event emitted by address.
func (c *Client) CreateSubscription(ctx context.Context, streamID, name, address string, event contract.ABIEntry, fromBlock string) (*Subscription, error) {
	in := Subscription{
		Name:      name,
		Stream:    streamID,
		Address:   address,
		FromBlock: fromBlock,
		Event:     &event,
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", in, &sub); err != nil {
		return nil, fmt.Errorf("creating subscription %s: %w", name, err)
	}
	c.logger.Info().Str("subscription", sub.ID).Str("name", name).Msg("subscription created")
	return &sub, nil
}
