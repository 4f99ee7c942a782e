package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/spf13/cobra"
)

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Encode and decode the data argument of with-data contracts",
}

var hexEncodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Hex-encode text as sent to a with-data contract",
	Long: `Hex-encode text as sent to a with-data contract. Empty text encodes
to 0x00.

Examples:
  w3tokens hex encode hello     # 0x68656c6c6f
  w3tokens hex encode           # 0x00`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		if len(args) == 1 {
			text = args[0]
		}
		fmt.Fprintln(cmd.OutOrStdout(), tokens.EncodeHex(text))
		return nil
	},
}

var hexDecodeCmd = &cobra.Command{
	Use:   "decode <payload>",
	Short: "Decode a data argument back to text",
	Long: `Decode a data argument back to text. Decoding stops at the first
malformed byte; 0x00 decodes to the empty string.

Examples:
  w3tokens hex decode 0x68656c6c6f     # hello`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), tokens.DecodeHex(args[0]))
		return nil
	},
}

func init() {
	hexCmd.AddCommand(hexEncodeCmd, hexDecodeCmd)
}
