package runner

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/nfa/pkg/domain"
)

var (
	// DefaultMaxInputSize is 64KB.
	DefaultMaxInputSize = 64 * 1024
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "NFA_MAX_INPUT_SIZE"
)

// CheckInput enforces the size limit on inputs that arrive over the network.
// Inputs are never rewritten: every byte is a symbol.
func CheckInput(input string) error {
	limit := MaxInputSize()
	if len(input) > limit {
		return fmt.Errorf("%w: size=%d limit=%d", domain.ErrInputTooLarge, len(input), limit)
	}
	return nil
}

// MaxInputSize returns the configured limit, honoring NFA_MAX_INPUT_SIZE.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
			return limit
		}
	}
	return DefaultMaxInputSize
}
