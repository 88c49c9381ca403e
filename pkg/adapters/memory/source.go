// Package memory provides in-memory implementations of the nfa ports.
package memory

import (
	"context"
	"slices"

	"github.com/aretw0/nfa/pkg/ports"
)

// Source implements ports.LineSource over a fixed list of lines.
type Source struct {
	name  string
	lines []string
}

// NewSource creates a source that yields lines in order.
func NewSource(name string, lines ...string) *Source {
	return &Source{
		name:  name,
		lines: slices.Clone(lines),
	}
}

// Name returns the source name.
func (s *Source) Name() string {
	return s.name
}

// Open never fails for an in-memory source.
func (s *Source) Open(ctx context.Context) (ports.LineReader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &lineReader{lines: s.lines, pos: -1}, nil
}

type lineReader struct {
	lines []string
	pos   int
}

func (r *lineReader) Scan() bool {
	if r.pos+1 >= len(r.lines) {
		r.pos = len(r.lines)
		return false
	}
	r.pos++
	return true
}

func (r *lineReader) Text() string {
	if r.pos < 0 || r.pos >= len(r.lines) {
		return ""
	}
	return r.lines[r.pos]
}

func (r *lineReader) Err() error   { return nil }
func (r *lineReader) Close() error { return nil }
