// Package api exposes the token operations over HTTP and streams
// correlated events to websocket clients.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Mohsinsiddi/w3tokens/internal/config"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// TokenService is the set of operations served by the API.
type TokenService interface {
	CreatePool(ctx context.Context, req service.CreatePoolRequest) (*service.CreatePoolResult, error)
	ActivatePool(ctx context.Context, req service.ActivatePoolRequest) (*service.TokenPool, error)
	Mint(ctx context.Context, req service.MintRequest) (string, error)
	Transfer(ctx context.Context, req service.TransferRequest) (string, error)
	Burn(ctx context.Context, req service.BurnRequest) (string, error)
	Approval(ctx context.Context, req service.ApprovalRequest) (string, error)
	BalanceOf(ctx context.Context, req service.BalanceRequest) (*service.Balance, error)
}

// Server is the connector's HTTP front end.
type Server struct {
	svc    TokenService
	hub    *Hub
	router *gin.Engine
	logger zerolog.Logger
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// NewServer builds the router.
func NewServer(svc TokenService, hub *Hub) *Server {
	s := &Server{
		svc:    svc,
		hub:    hub,
		router: gin.New(),
		logger: klog.WithComponent("api"),
	}
	s.router.Use(gin.Recovery(), requestID(), accessLog(s.logger), metrics())
	s.routes()
	return s
}

func (s *Server) routes() {
	v1 := s.router.Group("/api/v1")
	v1.GET("/health", s.health)
	v1.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1.GET("/ws", s.hub.ServeWS)

	v1.POST("/createpool", s.createPool)
	v1.POST("/activatepool", s.activatePool)
	v1.POST("/mint", s.mint)
	v1.POST("/transfer", s.transfer)
	v1.POST("/burn", s.burn)
	v1.POST("/approval", s.approval)
	v1.GET("/balance", s.balance)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("API listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
