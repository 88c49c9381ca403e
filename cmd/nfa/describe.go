package main

import (
	"fmt"

	"github.com/aretw0/nfa/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Render the automaton as a transition table",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		checker, err := newChecker(cmd, logger)
		if err != nil {
			return err
		}

		markdown := tui.Describe(checker.Name(), checker.Automaton())
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Print(markdown)
			return nil
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		render := tui.NewRenderer(!noColor)
		out, err := render(markdown)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
}
