// Package definition loads automaton definitions from YAML or JSON files.
//
// Definitions are read-only configuration: the package parses and validates
// them and compiles them into an automaton.Engine, but never writes them back.
package definition

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/nfa/pkg/automaton"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var referenceYAML []byte

// Definition describes an automaton as it appears in a configuration file.
type Definition struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Initial     domain.State   `json:"initial" yaml:"initial" mapstructure:"initial"`
	Accepting   []domain.State `json:"accepting" yaml:"accepting,flow" mapstructure:"accepting"`
	Transitions []Transition   `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// Transition is a single edge in a definition file.
// Symbol is kept as a string so the file format stays readable; it must be exactly one byte.
type Transition struct {
	From   domain.State `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string       `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     domain.State `json:"to" yaml:"to" mapstructure:"to"`
}

// Load reads a definition file. Files ending in .json are parsed as JSON,
// everything else as YAML.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}

	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

// Parse decodes a definition from raw bytes in the given format ("yaml" or "json").
func Parse(data []byte, format string) (*Definition, error) {
	raw := make(map[string]any)

	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDefinition, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDefinition, err)
		}
	}

	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(symbolHook, stateHook),
		ErrorUnused: true,
		Result:      &def,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDefinition, err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// symbolHook lets numeric symbols such as `symbol: 1` decode into strings.
func symbolHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return data, nil
}

var stateType = reflect.TypeOf(domain.State(0))

// stateHook rejects state ids that do not fit a State instead of letting
// them wrap around or lose their fractional part.
func stateHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != stateType {
		return data, nil
	}

	var (
		n  float64
		ok = true
	)
	switch v := data.(type) {
	case int:
		n = float64(v)
		ok = v >= 0 && uint64(v) <= math.MaxUint32
	case int64:
		n = float64(v)
		ok = v >= 0 && uint64(v) <= math.MaxUint32
	case uint64:
		n = float64(v)
		ok = v <= math.MaxUint32
	case float64:
		n = v
		ok = v >= 0 && v <= math.MaxUint32 && v == math.Trunc(v)
	default:
		return data, nil
	}
	if !ok {
		return nil, fmt.Errorf("%w: state %v is not an integer in [0, %d]", domain.ErrInvalidDefinition, data, uint32(math.MaxUint32))
	}
	return domain.State(n), nil
}

// Default returns the built-in reference automaton.
func Default() *Definition {
	def, err := Parse(referenceYAML, "yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded reference definition is invalid: %v", err))
	}
	return def
}

// Validate checks that every transition names exactly one symbol.
func (d *Definition) Validate() error {
	for i, t := range d.Transitions {
		if len(t.Symbol) != 1 {
			return fmt.Errorf("%w: transition %d (%d -> %d) has symbol %q", domain.ErrInvalidSymbol, i, t.From, t.To, t.Symbol)
		}
	}
	return nil
}

// Compile validates the definition and builds an Engine from it.
// Transitions are registered in file order.
func (d *Definition) Compile() (*automaton.Engine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	eng := automaton.New(d.Initial, d.Accepting...)
	for _, t := range d.Transitions {
		eng.AddTransition(t.From, domain.Symbol(t.Symbol[0]), t.To)
	}
	return eng, nil
}

// FromAutomaton renders the definition of an existing automaton.
func FromAutomaton(name string, a automaton.Definition) *Definition {
	def := &Definition{
		Name:      name,
		Initial:   a.Initial(),
		Accepting: a.Accepting(),
	}
	for _, e := range a.Edges() {
		def.Transitions = append(def.Transitions, Transition{
			From:   e.From,
			Symbol: e.Symbol.String(),
			To:     e.To,
		})
	}
	return def
}

// YAML encodes the definition in the same format Load accepts.
func (d *Definition) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
