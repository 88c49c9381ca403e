package domain

import "strconv"

// State is an opaque state identifier.
// States need no registration: any value is valid, and a state without
// outgoing transitions is simply a dead end.
type State uint32

// String returns the decimal representation of the state.
func (s State) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Symbol is a single element of the input alphabet.
type Symbol byte

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string([]byte{byte(s)})
}

// Symbols converts a line into the sequence of symbols it is made of.
// Each byte is one symbol; no Unicode decoding is performed.
func Symbols(line string) []Symbol {
	out := make([]Symbol, len(line))
	for i := 0; i < len(line); i++ {
		out[i] = Symbol(line[i])
	}
	return out
}
