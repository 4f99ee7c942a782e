package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mohsinsiddi/w3tokens/internal/api"
	"github.com/Mohsinsiddi/w3tokens/internal/ethconnect"
	"github.com/Mohsinsiddi/w3tokens/internal/events"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/spf13/cobra"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the token connector",
	Long: `Start the HTTP API and the gateway event listener.

The gateway URL comes from the config file or W3TOKENS_ETHCONNECT_URL.

Examples:
  w3tokens serve
  W3TOKENS_ETHCONNECT_URL=http://localhost:5102 w3tokens serve --listen :3001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveListen != "" {
			cfg.Listen = serveListen
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	logger := klog.WithComponent("serve")

	gw := ethconnect.NewClient(cfg.Gateway)
	svc := service.New(gw, cfg)
	if err := svc.Init(ctx); err != nil {
		return err
	}

	hub := api.NewHub()
	listener := events.NewListener(cfg, gw, hub)
	server := api.NewServer(svc, hub)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	listenErr := make(chan error, 1)
	go func() { listenErr <- listener.Run(ctx) }()

	err := server.ListenAndServe(ctx, cfg.Listen)
	cancel()
	if lerr := <-listenErr; lerr != nil && !errors.Is(lerr, context.Canceled) {
		logger.Error().Err(lerr).Msg("event listener stopped")
	}
	if err != nil {
		return fmt.Errorf("serving API: %w", err)
	}
	logger.Info().Msg("shut down")
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "HTTP listen address (overrides config)")
}
