package main

import (
	"context"
	"errors"
	"os"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/adapters/redis"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/aretw0/nfa/pkg/report"
	"github.com/spf13/cobra"
)

// defaultInputs are checked when no file is given.
var defaultInputs = []string{"test1.txt", "test2.txt"}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check every line of the given files",
	Long: `Evaluates each line of each file against the automaton and prints
"<line>: Accepted" or "<line>: Rejected", followed by a per-file summary.
Use "-" to read standard input. Without arguments test1.txt and test2.txt are checked.
Processing stops at the first file that cannot be opened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		redisAddr, _ := cmd.Flags().GetString("redis")

		var opts []nfa.Option
		if redisAddr != "" {
			cache := redis.New(redisAddr, "", 0)
			defer cache.Close()
			if err := cache.Ping(cmd.Context()); err != nil {
				logger.Warn("verdict cache unavailable, continuing without it", "addr", redisAddr, "error", err)
			} else {
				opts = append(opts, nfa.WithCache(cache))
			}
		}

		checker, err := newChecker(cmd, logger, opts...)
		if err != nil {
			return err
		}

		var reporter ports.Reporter
		if asJSON {
			reporter = report.NewJSONReporter(os.Stdout)
		} else {
			reporter = report.NewTextReporter(os.Stdout, report.WithProfile(colorProfile(cmd)))
		}

		return checkFiles(cmd.Context(), checker, reporter, args)
	},
}

// checkFiles runs the given files (or the default inputs) through the checker.
// A source that cannot be opened becomes an exitError with code 1; the runner
// has already logged it.
func checkFiles(ctx context.Context, checker *nfa.Checker, reporter ports.Reporter, files []string) error {
	if len(files) == 0 {
		files = defaultInputs
	}

	if _, err := checker.Check(ctx, reporter, files...); err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			return &exitError{code: 1, err: err}
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("json", false, "Emit newline-delimited JSON events instead of text")
	checkCmd.Flags().String("redis", "", "Redis address used as a shared verdict cache (e.g. localhost:6379)")
}
