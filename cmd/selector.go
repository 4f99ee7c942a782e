package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/Mohsinsiddi/w3tokens/internal/ui"
	"github.com/spf13/cobra"
)

var selectorCmd = &cobra.Command{
	Use:   "selector <signature-or-selector>",
	Short: "Compute a function selector or find it in the token ABIs",
	Long: `Compute a 4-byte function selector from a signature, or look up a
selector in the built-in token and factory ABIs.

Examples:
  w3tokens selector "mintWithData(address to, uint256 amount, bytes data)"
  w3tokens selector 0x40c10f19`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		out := cmd.OutOrStdout()

		if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
			matches := lookupSelector(input)
			method := ui.Meta("(not in built-in ABIs)")
			if len(matches) > 0 {
				method = ui.Val(strings.Join(matches, ", "))
			}
			fmt.Fprintln(out, ui.KeyValueBlock("Selector Lookup", [][2]string{
				{"Selector", input},
				{"Method", method},
			}))
			return nil
		}

		sig := normalizeSignature(input)
		entry := signatureEntry(sig)
		fmt.Fprintln(out, ui.KeyValueBlock("Function Selector", [][2]string{
			{"Signature", sig},
			{"Selector", ui.Val(contract.Selector(entry))},
			{"Full Hash", contract.Topic(entry)},
		}))
		return nil
	},
}

// lookupSelector returns "ABI.method" for every built-in function with sel.
func lookupSelector(sel string) []string {
	sel = strings.ToLower(sel)
	var out []string
	for _, b := range contract.All() {
		for _, e := range b.ABI {
			if e.Type == "function" && contract.Selector(e) == sel {
				out = append(out, b.ID+"."+e.Name)
			}
		}
	}
	return out
}

// signatureEntry builds an ABI entry whose Signature is sig.
func signatureEntry(sig string) contract.ABIEntry {
	name, params, _ := strings.Cut(sig, "(")
	params = strings.TrimSuffix(params, ")")
	e := contract.ABIEntry{Name: name, Type: "function"}
	if params == "" {
		return e
	}
	for _, t := range strings.Split(params, ",") {
		e.Inputs = append(e.Inputs, contract.ABIParam{Type: t})
	}
	return e
}

// normalizeSignature removes parameter names, keeping only types.
// "transfer(address to, uint256 amount)" → "transfer(address,uint256)"
func normalizeSignature(sig string) string {
	parenIdx := strings.Index(sig, "(")
	if parenIdx < 0 {
		return sig
	}

	name := strings.TrimSpace(sig[:parenIdx])
	paramStr := strings.TrimSuffix(strings.TrimSpace(sig[parenIdx+1:]), ")")

	var types []string
	for _, p := range strings.Split(paramStr, ",") {
		// Take only the first word (the type), skip the name.
		if parts := strings.Fields(p); len(parts) > 0 {
			types = append(types, parts[0])
		}
	}
	return name + "(" + strings.Join(types, ",") + ")"
}
