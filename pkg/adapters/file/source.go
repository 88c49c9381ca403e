// Package file provides line sources backed by files and standard input.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
)

// StdinName is the source name that selects standard input.
const StdinName = "-"

// Source implements ports.LineSource for a file path.
// The file is not touched until Open is called.
type Source struct {
	path  string
	stdin io.Reader
}

// NewSource creates a source for the given path.
// The path "-" reads from standard input.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// NewSources creates one source per path, preserving order.
func NewSources(paths ...string) []ports.LineSource {
	out := make([]ports.LineSource, 0, len(paths))
	for _, p := range paths {
		out = append(out, NewSource(p))
	}
	return out
}

// NewReaderSource wraps an already open reader (e.g. stdin in tests) under a name.
func NewReaderSource(name string, r io.Reader) *Source {
	return &Source{path: name, stdin: r}
}

// Name returns the path the source reads from.
func (s *Source) Name() string {
	return s.path
}

// Open opens the file. A missing or unreadable file yields domain.ErrSourceUnavailable.
func (s *Source) Open(ctx context.Context) (ports.LineReader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.stdin != nil {
		return NewLineReader(io.NopCloser(s.stdin)), nil
	}
	if s.path == StdinName {
		return NewLineReader(io.NopCloser(os.Stdin)), nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}

	info, err := f.Stat()
	if err == nil && info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s: is a directory", domain.ErrSourceUnavailable, s.path)
	}

	return NewLineReader(f), nil
}

// LineReader splits a stream on '\n' only.
// Lines keep every other byte (including '\r'), there is no length limit,
// and a final line without a trailing newline is still a line.
type LineReader struct {
	rc   io.ReadCloser
	r    *bufio.Reader
	line string
	err  error
	done bool
}

// NewLineReader creates a LineReader over rc. Close closes rc.
func NewLineReader(rc io.ReadCloser) *LineReader {
	return &LineReader{
		rc: rc,
		r:  bufio.NewReader(rc),
	}
}

// Scan advances to the next line.
func (l *LineReader) Scan() bool {
	if l.done {
		return false
	}

	text, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
			return false
		}
		if text == "" {
			return false
		}
	}

	l.line = strings.TrimSuffix(text, "\n")
	return true
}

// Text returns the current line without its newline.
func (l *LineReader) Text() string {
	return l.line
}

// Err returns the first non-EOF read error.
func (l *LineReader) Err() error {
	return l.err
}

// Close releases the underlying reader.
func (l *LineReader) Close() error {
	return l.rc.Close()
}
