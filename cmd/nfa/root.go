package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "nfa",
	Short: "nfa checks input lines against a nondeterministic finite automaton",
	Long: `nfa reads text files line by line and reports, for each line,
whether the configured automaton accepts it. Each byte of a line is one symbol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code out of a command.
// Its cause has already been reported, so Execute only exits.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var ee *exitError
	if !errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("definition", "d", "", "Automaton definition file (YAML or JSON); defaults to the built-in reference automaton")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// newLogger builds the stderr logger from the --log-level flag.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// newChecker builds a checker from the persistent flags plus any extra options.
func newChecker(cmd *cobra.Command, logger *slog.Logger, opts ...nfa.Option) (*nfa.Checker, error) {
	path, _ := cmd.Flags().GetString("definition")

	base := []nfa.Option{nfa.WithLogger(logger)}
	if path != "" {
		base = append(base, nfa.WithDefinitionFile(path))
	}
	return nfa.New(append(base, opts...)...)
}

// colorProfile picks the termenv profile for stdout.
// Colors are only used on a terminal and when --no-color is unset.
func colorProfile(cmd *cobra.Command) termenv.Profile {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
