package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/nfa/internal/presentation/graph"
	httpAdapter "github.com/aretw0/nfa/pkg/adapters/http"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <input>",
	Short: "Show the active states after each symbol of an input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		checker, err := newChecker(cmd, logger)
		if err != nil {
			return err
		}

		input := args[0]
		tr := checker.Trace(input)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(httpAdapter.NewTraceResponse(input, tr))
		}

		fmt.Printf("start: %s\n", formatStates(tr.Start))
		for i, step := range tr.Steps {
			fmt.Printf("%3d %-6s %s\n", i+1, graph.SymbolLabel(step.Symbol), formatStates(step.States))
		}
		fmt.Printf("%s: %s\n", input, domain.Label(tr.Accepted))
		return nil
	},
}

func formatStates(states []domain.State) string {
	out := "{"
	for i, q := range states {
		if i > 0 {
			out += ","
		}
		out += q.String()
	}
	return out + "}"
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Bool("json", false, "Emit the trace as JSON")
}
