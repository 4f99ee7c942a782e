package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3tokens/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		shown := *cfg
		if shown.Gateway.Password != "" {
			shown.Gateway.Password = "********"
		}
		data, err := json.MarshalIndent(shown, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.Title("Current Configuration"))
		fmt.Fprintln(out, string(data))
		fmt.Fprintln(out, ui.Meta("Config directory: "+cfg.Dir()))
		return nil
	},
}

var configSetGatewayCmd = &cobra.Command{
	Use:   "set-gateway <url> [username] [password]",
	Short: "Set the blockchain gateway URL and credentials",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Gateway.URL = args[0]
		if len(args) > 1 {
			cfg.Gateway.Username = args[1]
		}
		if len(args) > 2 {
			cfg.Gateway.Password = args[2]
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return saveConfig(cmd, fmt.Sprintf("Gateway set to %s", args[0]))
	},
}

var configSetFactoryCmd = &cobra.Command{
	Use:   "set-factory <address>",
	Short: "Set the token factory used for pools without an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Factory = args[0]
		return saveConfig(cmd, fmt.Sprintf("Token factory set to %s", args[0]))
	},
}

var configSetSignerCmd = &cobra.Command{
	Use:   "set-signer <address>",
	Short: "Set the signer used when a request names none",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultSigner = args[0]
		return saveConfig(cmd, fmt.Sprintf("Default signer set to %s", args[0]))
	},
}

var configSetTopicCmd = &cobra.Command{
	Use:   "set-topic <topic>",
	Short: "Set the event stream topic and subscription prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Events.Topic = args[0]
		if err := cfg.Validate(); err != nil {
			return err
		}
		return saveConfig(cmd, fmt.Sprintf("Event topic set to %q", args[0]))
	},
}

func saveConfig(cmd *cobra.Command, msg string) error {
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(msg))
	return nil
}

func init() {
	configCmd.AddCommand(configListCmd, configSetGatewayCmd, configSetFactoryCmd, configSetSignerCmd, configSetTopicCmd)
}
