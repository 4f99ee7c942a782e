package events

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Mohsinsiddi/w3tokens/internal/config"
	"github.com/Mohsinsiddi/w3tokens/internal/ethconnect"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Handler receives the correlated events of one batch. The batch is
// acknowledged to the gateway only after HandleEvents returns nil.
type Handler interface {
	HandleEvents(ctx context.Context, msgs []Message) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msgs []Message) error

// HandleEvents calls f.
func (f HandlerFunc) HandleEvents(ctx context.Context, msgs []Message) error {
	return f(ctx, msgs)
}

type wsCommand struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
}

// Listener consumes the gateway's websocket event stream.
type Listener struct {
	url            string
	topic          string
	header         http.Header
	correlator     *Correlator
	handler        Handler
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
	logger         zerolog.Logger
}

// NewListener creates a listener for the configured gateway and topic.
func NewListener(cfg *config.Config, subs SubscriptionSource, h Handler) *Listener {
	header := http.Header{}
	if cfg.Gateway.Username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(cfg.Gateway.Username + ":" + cfg.Gateway.Password))
		header.Set("Authorization", "Basic "+auth)
	}
	return &Listener{
		url:            cfg.WebSocketURL(),
		topic:          cfg.Events.Topic,
		header:         header,
		correlator:     NewCorrelator(cfg.Events.Topic, subs),
		handler:        h,
		dialer:         &websocket.Dialer{HandshakeTimeout: config.WebSocketDialTimeout},
		reconnectDelay: config.ReconnectDelay,
		logger:         klog.WithComponent("events"),
	}
}

// Run listens until ctx is cancelled, reconnecting after failures.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.logger.Warn().Err(err).Dur("retry_in", l.reconnectDelay).Msg("event stream disconnected")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) session(ctx context.Context) error {
	conn, _, err := l.dialer.DialContext(ctx, l.url, l.header)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", l.url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for _, cmd := range []wsCommand{{Type: "listen", Topic: l.topic}, {Type: "listenreplies"}} {
		if err := conn.WriteJSON(cmd); err != nil {
			return fmt.Errorf("sending %s: %w", cmd.Type, err)
		}
	}
	l.logger.Info().Str("url", l.url).Str("topic", l.topic).Msg("listening for events")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if err := l.handleMessage(ctx, conn, data); err != nil {
			return err
		}
	}
}

func (l *Listener) handleMessage(ctx context.Context, conn *websocket.Conn, data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	if data[0] != '[' {
		return l.handleReply(ctx, data)
	}

	var batch []ethconnect.Event
	if err := json.Unmarshal(data, &batch); err != nil {
		batchesTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("decoding event batch: %w", err)
	}
	msgs, err := l.correlateBatch(ctx, batch)
	if err != nil {
		batchesTotal.WithLabelValues("failed").Inc()
		return err
	}
	if len(msgs) > 0 {
		if err := l.handler.HandleEvents(ctx, msgs); err != nil {
			batchesTotal.WithLabelValues("failed").Inc()
			return fmt.Errorf("handling batch: %w", err)
		}
	}
	for _, m := range msgs {
		eventsTotal.WithLabelValues(string(m.Event)).Inc()
	}
	batchesTotal.WithLabelValues("acked").Inc()
	l.logger.Debug().Int("events", len(batch)).Int("delivered", len(msgs)).Msg("batch handled")
	return conn.WriteJSON(wsCommand{Type: "ack", Topic: l.topic})
}

// correlateBatch correlates a batch, dropping events that are not ours.
func (l *Listener) correlateBatch(ctx context.Context, batch []ethconnect.Event) ([]Message, error) {
	msgs := make([]Message, 0, len(batch))
	for _, ev := range batch {
		m, err := l.correlator.Correlate(ctx, ev)
		if err != nil {
			return nil, err
		}
		if m == nil {
			eventsSkipped.Inc()
			continue
		}
		msgs = append(msgs, *m)
	}
	return msgs, nil
}

func (l *Listener) handleReply(ctx context.Context, data []byte) error {
	var r ethconnect.Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("decoding reply: %w", err)
	}
	if r.Headers.RequestID == "" {
		l.logger.Warn().RawJSON("message", data).Msg("unexpected message on event stream")
		return nil
	}
	msg := Message{Event: KindReceipt, Data: &ReceiptEvent{
		ID:              r.Headers.RequestID,
		Success:         r.Headers.Type == ethconnect.ReceiptSuccess,
		TransactionHash: r.TransactionHash,
		Message:         r.ErrorMessage,
	}}
	if err := l.handler.HandleEvents(ctx, []Message{msg}); err != nil {
		return fmt.Errorf("handling receipt %s: %w", r.Headers.RequestID, err)
	}
	eventsTotal.WithLabelValues(string(KindReceipt)).Inc()
	return nil
}
