/*
Package runner implements the batch evaluation loop of the nfa checker.

It is the bridge between the automaton and the outside world: it opens each
line source in turn, evaluates every line, hands the verdicts to a Reporter
and emits a per-source summary once the source is exhausted. A source that
cannot be opened stops the run; sources already processed keep their reports.

# Usage

	r := runner.New(eng, report.NewTextReporter(os.Stdout),
		runner.WithLogger(logger),
		runner.WithCache(memory.NewCache(), automaton.Fingerprint(eng)),
	)

	if _, err := r.Run(ctx, file.NewSources("test1.txt", "test2.txt")...); err != nil {
		log.Fatal(err)
	}
*/
package runner
