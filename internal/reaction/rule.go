// Package reaction holds the pairwise reaction rules between element kinds.
//
// A Registry maps an ordered pair of kinds to a Rule. Registering a rule for
// (A, B) installs the mirrored rule for (B, A) as well, so lookups never
// depend on which particle touched which.
package reaction

import (
	"fmt"

	"github.com/vovakirdan/tui-sandbox/internal/element"
)

// Rule says what two touching particles turn into.
type Rule struct {
	Reactants    [2]element.Kind
	Product      element.Kind
	EnergyScalar float64
}

// Spec is an unvalidated rule as written in code or config. Reactants must
// hold exactly two kinds.
type Spec struct {
	Reactants    []element.Kind
	Product      element.Kind
	EnergyScalar float64
}

// Balance classifies a rule by its energy scalar.
type Balance int

const (
	Neutral Balance = iota
	Endothermic
	Exothermic
)

func (b Balance) String() string {
	switch b {
	case Endothermic:
		return "endothermic"
	case Exothermic:
		return "exothermic"
	default:
		return "neutral"
	}
}

// Balance returns whether the rule absorbs, releases or keeps energy.
func (r Rule) Balance() Balance {
	switch {
	case r.EnergyScalar < 1:
		return Endothermic
	case r.EnergyScalar > 1:
		return Exothermic
	default:
		return Neutral
	}
}

// Apply scales the reactants' total energy by the rule's scalar.
func (r Rule) Apply(total float64) float64 {
	return total * r.EnergyScalar
}

// Mirror returns the rule with its reactants swapped.
func (r Rule) Mirror() Rule {
	r.Reactants[0], r.Reactants[1] = r.Reactants[1], r.Reactants[0]
	return r
}

func (r Rule) String() string {
	return fmt.Sprintf("%s + %s -> %s (x%.2f)", r.Reactants[0], r.Reactants[1], r.Product, r.EnergyScalar)
}
