package ports

import "context"

// VerdictCache stores acceptance results.
// Keys must identify both the automaton and the input (see automaton.Fingerprint).
type VerdictCache interface {
	// Get returns the cached verdict and whether it was found.
	Get(ctx context.Context, key string) (accepted bool, found bool, err error)

	// Set stores a verdict.
	Set(ctx context.Context, key string, accepted bool) error
}
