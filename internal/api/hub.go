package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Mohsinsiddi/w3tokens/internal/events"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// ErrNoClients is returned when events arrive and nobody is listening.
// The gateway keeps the batch and delivers it again later.
var ErrNoClients = errors.New("no websocket clients connected")

const writeTimeout = 10 * time.Second

type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) send(msgs []events.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	for _, m := range msgs {
		if err := c.conn.WriteJSON(m); err != nil {
			return err
		}
	}
	return nil
}

// Hub broadcasts correlated events to connected websocket clients.
type Hub struct {
	upgrader websocket.Upgrader
	logger   zerolog.Logger

	mu      sync.RWMutex
	clients map[*wsClient]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(*http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  klog.WithComponent("api"),
		clients: make(map[*wsClient]struct{}),
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleEvents sends msgs to every client. It fails only if no client
// received them.
func (h *Hub) HandleEvents(_ context.Context, msgs []events.Message) error {
	h.mu.RLock()
	clients := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return ErrNoClients
	}
	delivered := 0
	for _, c := range clients {
		if err := c.send(msgs); err != nil {
			h.logger.Warn().Err(err).Str("remote_addr", c.conn.RemoteAddr().String()).Msg("dropping websocket client")
			h.remove(c)
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return ErrNoClients
	}
	return nil
}

// ServeWS upgrades the request and keeps the client until it disconnects.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	client := &wsClient{conn: conn}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	h.logger.Info().Str("remote_addr", conn.RemoteAddr().String()).Msg("websocket client connected")

	defer h.remove(client)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}
	}
}

func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
		h.logger.Info().Str("remote_addr", c.conn.RemoteAddr().String()).Msg("websocket client disconnected")
	}
}
