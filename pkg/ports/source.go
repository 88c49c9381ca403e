package ports

import "context"

// LineSource is a named input that produces lines lazily.
type LineSource interface {
	// Name identifies the source in reports and errors (e.g. a file path).
	Name() string

	// Open prepares the source for reading.
	// It returns an error wrapping domain.ErrSourceUnavailable if the source cannot be opened.
	Open(ctx context.Context) (LineReader, error)
}

// LineReader iterates over the lines of an opened source.
// It follows the bufio.Scanner protocol: call Scan until it returns false,
// then check Err.
type LineReader interface {
	Scan() bool
	Text() string
	Err() error
	Close() error
}
