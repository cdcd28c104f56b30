package reaction

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-sandbox/internal/element"
)

var (
	// ErrNonBinaryReaction is returned for a rule without exactly two reactants.
	ErrNonBinaryReaction = errors.New("reaction: reactions must have exactly two reactants")
	// ErrNonPositiveEnergy is returned for a rule whose energy scalar is not > 0.
	ErrNonPositiveEnergy = errors.New("reaction: energy scalar must be positive")
	// ErrInvalidKind is returned for a rule naming a kind outside the catalog.
	ErrInvalidKind = errors.New("reaction: invalid element kind")
)

type pair struct {
	a, b element.Kind
}

// Registry maps ordered kind pairs to rules. It is meant to be filled once
// at startup and only read afterwards; it is not safe for concurrent writes.
type Registry struct {
	rules map[pair]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[pair]Rule)}
}

// Register validates spec and installs it for both reactant orders.
// Registering a pair that already has a rule replaces it in both directions.
// On error the registry is left unchanged.
func (r *Registry) Register(spec Spec) error {
	if len(spec.Reactants) != 2 {
		return fmt.Errorf("%w: got %d", ErrNonBinaryReaction, len(spec.Reactants))
	}
	if !(spec.EnergyScalar > 0) {
		return fmt.Errorf("%w: got %v", ErrNonPositiveEnergy, spec.EnergyScalar)
	}
	for _, k := range append([]element.Kind{spec.Product}, spec.Reactants...) {
		if !k.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidKind, uint8(k))
		}
	}

	rule := Rule{
		Reactants:    [2]element.Kind{spec.Reactants[0], spec.Reactants[1]},
		Product:      spec.Product,
		EnergyScalar: spec.EnergyScalar,
	}
	r.rules[pair{rule.Reactants[0], rule.Reactants[1]}] = rule
	r.rules[pair{rule.Reactants[1], rule.Reactants[0]}] = rule.Mirror()
	return nil
}

// Find returns the rule for the ordered pair (a, b). The returned rule's
// reactants are in query order. A missing rule is not an error.
func (r *Registry) Find(a, b element.Kind) (Rule, bool) {
	rule, ok := r.rules[pair{a, b}]
	return rule, ok
}

// Len returns the number of ordered pairs with a rule.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Rules returns one rule per unordered pair, with the lower kind first,
// sorted by reactants.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.rules)/2+1)
	for p, rule := range r.rules {
		if p.a <= p.b {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reactants[0] != out[j].Reactants[0] {
			return out[i].Reactants[0] < out[j].Reactants[0]
		}
		return out[i].Reactants[1] < out[j].Reactants[1]
	})
	return out
}

// Build creates a registry from specs in order. The first invalid spec
// aborts the build.
func Build(specs []Spec) (*Registry, error) {
	r := NewRegistry()
	for i, s := range specs {
		if err := r.Register(s); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return r, nil
}

// MustBuild is like Build but panics on error. Intended for rule tables
// written in code.
func MustBuild(specs []Spec) *Registry {
	r, err := Build(specs)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRules returns the built-in rule table.
func DefaultRules() []Spec {
	return []Spec{
		{Reactants: []element.Kind{element.Water, element.Fire}, Product: element.Steam, EnergyScalar: 1.2},
		{Reactants: []element.Kind{element.Oil, element.Fire}, Product: element.Fire, EnergyScalar: 5.0},
		{Reactants: []element.Kind{element.Powder, element.Fire}, Product: element.Sand, EnergyScalar: 0.8},
		{Reactants: []element.Kind{element.Water, element.Powder}, Product: element.Sand, EnergyScalar: 1.0},
		{Reactants: []element.Kind{element.Water, element.Steam}, Product: element.Water, EnergyScalar: 0.8},
	}
}

// Default builds a registry from DefaultRules.
func Default() *Registry {
	return MustBuild(DefaultRules())
}
