package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/Mohsinsiddi/w3tokens/internal/ui"
	"github.com/spf13/cobra"
)

var subscriptionPrefix string

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Pack and inspect event subscription names",
}

var subscriptionPackCmd = &cobra.Command{
	Use:   "pack <locator> [event]",
	Short: "Build the subscription name for a pool event",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		event := ""
		if len(args) == 2 {
			event = args[1]
		}
		fmt.Fprintln(cmd.OutOrStdout(), tokens.PackSubscriptionName(prefixOrTopic(), args[0], event))
		return nil
	},
}

var subscriptionUnpackCmd = &cobra.Command{
	Use:   "unpack <name>",
	Short: "Split a subscription name into pool locator and event",
	Long: `Split a subscription name into pool locator and event. Names that do
not start with the prefix belong to another connector.

Examples:
  w3tokens subscription unpack "token:address=0x1&schema=ERC20WithData&type=fungible:Transfer"
  w3tokens subscription unpack --prefix tokens2 "tokens2:address=0x1:Approval"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := prefixOrTopic()
		name := tokens.UnpackSubscriptionName(prefix, args[0])
		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Subscription", subscriptionPairs(prefix, name)))
		return nil
	},
}

func prefixOrTopic() string {
	if subscriptionPrefix != "" {
		return subscriptionPrefix
	}
	return cfg.Events.Topic
}

func subscriptionPairs(prefix string, name tokens.SubscriptionName) [][2]string {
	if !name.Matched() {
		return [][2]string{
			{"Prefix", prefix},
			{"Status", ui.Warn("not ours")},
		}
	}
	event := name.Event
	if event == "" {
		event = ui.Meta("(none)")
	}
	if name.PoolLocator == "" {
		return [][2]string{
			{"Prefix", prefix},
			{"Pool Locator", ui.Meta("(missing)")},
			{"Event", event},
			{"Status", ui.Err("ours, no pool locator")},
		}
	}
	return [][2]string{
		{"Prefix", prefix},
		{"Pool Locator", ui.Locator(name.PoolLocator)},
		{"Event", event},
		{"Status", ui.Success("matched")},
	}
}

func init() {
	subscriptionCmd.PersistentFlags().StringVar(&subscriptionPrefix, "prefix", "", "subscription name prefix (default: configured event topic)")
	subscriptionCmd.AddCommand(subscriptionPackCmd, subscriptionUnpackCmd)
}
