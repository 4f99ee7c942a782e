package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/Mohsinsiddi/w3tokens/internal/ui"
	"github.com/spf13/cobra"
)

var methodsArtifact string

var methodsCmd = &cobra.Command{
	Use:   "methods <schema>",
	Short: "List the contract methods and events a schema maps to",
	Long: `List the contract method each pool operation calls for a schema,
with its selector, followed by the events pools of that schema subscribe to.

Schemas: ERC20WithData, ERC20NoData, ERC721WithData, ERC721NoData

With --artifact, a compiled contract (raw ABI array or Hardhat/Foundry
artifact) is checked for every function and event the schema needs.

Examples:
  w3tokens methods ERC20WithData
  w3tokens methods ERC721NoData
  w3tokens methods ERC20WithData --artifact out/Token.sol/Token.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := tokens.Schema(args[0])
		if !schema.Known() {
			return fmt.Errorf("unknown schema %q (want one of %s)", args[0], schemaList())
		}
		rows, err := methodRows(schema)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if methodsArtifact != "" {
			return checkArtifact(cmd, schema, methodsArtifact)
		}
		b, _ := contract.Lookup(string(schema))
		fmt.Fprintln(out, ui.Title(string(schema)))
		fmt.Fprintln(out, ui.Meta(b.Description))

		tbl := ui.NewTable([]ui.Column{
			{Title: "Operation", Width: 10},
			{Title: "Method", Width: 26},
			{Title: "Selector", Width: 10},
			{Title: "Signature", Width: 56},
		})
		for _, r := range rows {
			tbl.AddRow(r)
		}
		fmt.Fprintln(out, tbl.Render())

		evRows, err := eventRows(schema)
		if err != nil {
			return err
		}
		evTbl := ui.NewTable([]ui.Column{
			{Title: "Event", Width: 16},
			{Title: "Topic", Width: 66},
		})
		for _, r := range evRows {
			evTbl.AddRow(r)
		}
		fmt.Fprintln(out, evTbl.Render())
		return nil
	},
}

func checkArtifact(cmd *cobra.Command, schema tokens.Schema, path string) error {
	abi, err := contract.LoadArtifact(path)
	if err != nil {
		return err
	}
	missing, err := contract.MissingFromABI(string(schema), abi)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(missing) == 0 {
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s implements %s", path, schema)))
		return nil
	}
	pairs := make([][2]string, len(missing))
	for i, sig := range missing {
		pairs[i] = [2]string{"Missing", sig}
	}
	fmt.Fprintln(out, ui.KeyValueBlock(fmt.Sprintf("%s does not implement %s", path, schema), pairs))
	return fmt.Errorf("%d of the %s methods and events are missing", len(missing), schema)
}

// methodRows lists operation, method, selector and signature for a schema.
// Create is served by the token factory.
func methodRows(schema tokens.Schema) ([]ui.Row, error) {
	rows := make([]ui.Row, 0, len(tokens.Operations))
	for _, op := range tokens.Operations {
		name, err := tokens.ResolveMethod(schema, op)
		if err != nil {
			return nil, err
		}
		abiID := string(schema)
		if op == tokens.OpCreate {
			abiID = contract.FactoryID
		}
		m, err := contract.FindMethod(abiID, name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ui.Row{string(op), name, contract.Selector(*m), m.Signature()})
	}
	return rows, nil
}

func eventRows(schema tokens.Schema) ([]ui.Row, error) {
	var rows []ui.Row
	for _, name := range service.PoolEvents(schema) {
		ev, err := contract.FindEvent(string(schema), name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ui.Row{name, contract.Topic(*ev)})
	}
	return rows, nil
}

func init() {
	methodsCmd.Flags().StringVar(&methodsArtifact, "artifact", "", "check a compiled contract ABI against the schema")
}

func schemaList() string {
	names := make([]string, len(tokens.Schemas))
	for i, s := range tokens.Schemas {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
