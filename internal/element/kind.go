// Package element defines the closed set of placeable substances and their
// static properties. Everything here is immutable after package
// initialization and safe to share between simulations.
package element

// Kind identifies a placeable substance.
type Kind uint8

const (
	Powder Kind = iota
	Sand
	Water
	Oil
	Fire
	Steam
	Wall

	// KindCount is the number of kinds. It sizes the catalog table and must
	// stay last.
	KindCount
)

var kindNames = [KindCount]string{
	Powder: "powder",
	Sand:   "sand",
	Water:  "water",
	Oil:    "oil",
	Fire:   "fire",
	Steam:  "steam",
	Wall:   "wall",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		out = append(out, k)
	}
	return out
}

// MotionClass governs how a particle is represented physically and how it
// moves each tick.
type MotionClass uint8

const (
	Frozen  MotionClass = iota // static, never moves
	Fall                       // settles under gravity with friction
	Fill                       // flows sideways to fill space
	Diffuse                    // random walk, drifts upward
)

// String returns the lowercase name of the motion class.
func (m MotionClass) String() string {
	switch m {
	case Frozen:
		return "frozen"
	case Fall:
		return "fall"
	case Fill:
		return "fill"
	case Diffuse:
		return "diffuse"
	default:
		return "unknown"
	}
}

// Static reports whether bodies of this class are immovable.
func (m MotionClass) Static() bool {
	return m == Frozen
}
