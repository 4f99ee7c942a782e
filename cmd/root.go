package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/w3tokens/internal/config"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3tokens/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3tokens",
	Short: "ERC-20 / ERC-721 token connector",
	Long: `w3tokens maps token pool operations onto ERC-20 and ERC-721 contracts
through an ethconnect-style blockchain gateway, and streams the resulting
on-chain events back to the pool that issued them.

Run the connector with "w3tokens serve". The other commands inspect pool
locators, subscription names, data payloads and contract methods offline.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		klog.Init(cfg.LogLevel, cfg.LogJSON)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// W3TOKENS_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv(config.EnvConfigDir); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.w3tokens)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		serveCmd,
		locatorCmd,
		hexCmd,
		subscriptionCmd,
		methodsCmd,
		selectorCmd,
		configCmd,
	)
}
