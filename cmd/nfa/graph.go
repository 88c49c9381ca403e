package main

import (
	"fmt"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton as a diagram",
	Long:  `Outputs a Mermaid (graph LR) or Graphviz DOT diagram of the automaton. With --input the states active after that input are highlighted (Mermaid only).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		checker, err := newChecker(cmd, logger)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		input, _ := cmd.Flags().GetString("input")

		switch format {
		case "mermaid":
			var overlay *graph.GraphOverlay
			if cmd.Flags().Changed("input") {
				tr := checker.Trace(input)
				overlay = &graph.GraphOverlay{Active: tr.Final()}
			}
			fmt.Print(graph.GenerateMermaid(checker.Automaton(), overlay))
		case "dot":
			fmt.Print(graph.GenerateDOT(checker.Automaton()))
		default:
			return fmt.Errorf("unknown format %q (want mermaid or dot)", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format (mermaid, dot)")
	graphCmd.Flags().String("input", "", "Highlight the states active after this input")
}
