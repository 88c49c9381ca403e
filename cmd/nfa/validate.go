package main

import (
	"fmt"
	"os"

	"github.com/aretw0/nfa/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the automaton for consistency",
	Long:  `Loads the definition, then crawls the automaton from its initial state and reports unreachable states, dead states and an empty language.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Automaton is valid!")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	// 1. Load and compile the definition (symbol checks happen here)
	checker, err := newChecker(cmd, logger)
	if err != nil {
		return err
	}

	// 2. Run structural validation
	return validator.ValidateAutomaton(checker.Automaton()).Err()
}
