package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/Mohsinsiddi/w3tokens/internal/ui"
	"github.com/spf13/cobra"
)

var (
	locatorAddress string
	locatorType    string
	locatorNoData  bool
)

var errEmptyAddress = errors.New("--address must not be empty")

var locatorCmd = &cobra.Command{
	Use:   "locator",
	Short: "Pack and inspect pool locators",
}

var locatorPackCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build the locator of a pool over an existing contract",
	Long: `Build the locator a pool over an existing contract is identified by.

Examples:
  w3tokens locator pack --address 0x123456 --type fungible
  w3tokens locator pack --address 0x123456 --type nonfungible --no-data`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(locatorAddress) == "" {
			return errEmptyAddress
		}
		typ, err := tokens.ParseTokenType(locatorType)
		if err != nil {
			return err
		}
		schema, err := tokens.ResolveSchemaName(typ, !locatorNoData)
		if err != nil {
			return err
		}
		locator := tokens.PackPoolLocator(tokens.PoolLocator{Address: locatorAddress, Schema: schema, Type: typ})
		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Pool Locator", [][2]string{
			{"Locator", ui.Val(locator)},
			{"Address", ui.Addr(locatorAddress)},
			{"Schema", string(schema)},
			{"Type", string(typ)},
		}))
		return nil
	},
}

var locatorUnpackCmd = &cobra.Command{
	Use:   "unpack <locator>",
	Short: "Decode a pool locator",
	Long: `Decode a pool locator and report whether it names a complete pool.
Locators written with the older "standard" key are accepted.

Examples:
  w3tokens locator unpack "address=0x123456&schema=ERC20WithData&type=fungible"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tokens.UnpackPoolLocator(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Pool Locator", locatorPairs(p)))
		if !p.IsValid() {
			return fmt.Errorf("invalid pool locator %q", args[0])
		}
		return nil
	},
}

// locatorPairs renders a decoded locator, marking absent fields.
func locatorPairs(p tokens.PartialPoolLocator) [][2]string {
	missing := ui.Meta("(missing)")
	pairs := [][2]string{{"Address", missing}, {"Schema", missing}, {"Type", missing}}
	if p.Address != nil {
		pairs[0][1] = ui.Addr(*p.Address)
	}
	if p.Schema != nil {
		pairs[1][1] = string(*p.Schema)
	}
	if p.Type != nil {
		pairs[2][1] = string(*p.Type)
	}
	status := ui.Success("valid")
	if !p.IsValid() {
		status = ui.Err("incomplete")
	}
	return append(pairs, [2]string{"Status", status})
}

func init() {
	locatorPackCmd.Flags().StringVar(&locatorAddress, "address", "", "token contract address")
	locatorPackCmd.Flags().StringVar(&locatorType, "type", "", "token type: fungible or nonfungible")
	locatorPackCmd.Flags().BoolVar(&locatorNoData, "no-data", false, "contract methods take no data argument")
	_ = locatorPackCmd.MarkFlagRequired("address")
	_ = locatorPackCmd.MarkFlagRequired("type")

	locatorCmd.AddCommand(locatorPackCmd, locatorUnpackCmd)
}
