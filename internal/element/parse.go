package element

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a name to be suggested.
const maxSuggestDistance = 3

// UnknownKindError is returned by ParseKind for a name that matches no kind.
type UnknownKindError struct {
	Name       string
	Suggestion string
}

func (e *UnknownKindError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("element: unknown kind %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("element: unknown kind %q", e.Name)
}

// ParseKind resolves a kind by name, case-insensitively. A number selects
// the kind at that 1-based palette position.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := Kind(0); k < KindCount; k++ {
		if kindNames[k] == n {
			return k, nil
		}
	}
	if len(n) == 1 && n[0] >= '1' && n[0] < '1'+byte(KindCount) {
		return Kind(n[0] - '1'), nil
	}
	return 0, &UnknownKindError{Name: name, Suggestion: Suggest(n)}
}

// Suggest returns the kind name closest to s, or "" if nothing is close.
func Suggest(s string) string {
	s = strings.ToLower(s)
	best, bestDist := "", maxSuggestDistance+1
	for _, name := range kindNames {
		d := levenshtein.ComputeDistance(s, name)
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// ParseMotionClass resolves a motion class by name. The older names solid,
// liquid and gas are accepted as aliases.
func ParseMotionClass(name string) (MotionClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "frozen", "static":
		return Frozen, nil
	case "fall", "solid":
		return Fall, nil
	case "fill", "liquid":
		return Fill, nil
	case "diffuse", "gas":
		return Diffuse, nil
	}
	return 0, fmt.Errorf("element: unknown motion class %q", name)
}
