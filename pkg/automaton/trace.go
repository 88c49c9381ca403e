package automaton

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/aretw0/nfa/pkg/domain"
)

// Step is the set of active states after consuming one symbol.
type Step struct {
	Symbol domain.Symbol  `json:"symbol"`
	States []domain.State `json:"states"`
}

// Trace records how the active state set evolved over an input.
type Trace struct {
	Start    []domain.State `json:"start"`
	Steps    []Step         `json:"steps"`
	Accepted bool           `json:"accepted"`
}

// Final returns the active set after the last symbol.
func (t Trace) Final() []domain.State {
	if n := len(t.Steps); n > 0 {
		return t.Steps[n-1].States
	}
	return t.Start
}

// Trace evaluates input like Accept and records the active set after every symbol.
// Once the set becomes empty every remaining step is recorded as empty.
func (m *machine) Trace(input []domain.Symbol) Trace {
	tr := Trace{
		Start: []domain.State{m.initial},
		Steps: make([]Step, 0, len(input)),
	}
	final := m.evolve(input, func(_ int, sym domain.Symbol, set *stateSet) {
		tr.Steps = append(tr.Steps, Step{Symbol: sym, States: set.sorted()})
	})
	for _, q := range final.states {
		if m.IsAccepting(q) {
			tr.Accepted = true
			break
		}
	}
	return tr
}

// Fingerprint returns a stable hex digest of the automaton definition.
// Two automata with the same initial state, accepting set and edge list
// (including order within a source state) share a fingerprint.
func Fingerprint(d Definition) string {
	h := sha256.New()
	var buf [4]byte

	write := func(v uint32) {
		binary.BigEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}

	write(uint32(d.Initial()))
	acc := d.Accepting()
	write(uint32(len(acc)))
	for _, q := range acc {
		write(uint32(q))
	}
	edges := d.Edges()
	write(uint32(len(edges)))
	for _, e := range edges {
		write(uint32(e.From))
		h.Write([]byte{byte(e.Symbol)})
		write(uint32(e.To))
	}
	return hex.EncodeToString(h.Sum(nil))
}
