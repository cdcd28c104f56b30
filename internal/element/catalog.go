package element

import "fmt"

// Properties is the static data for one kind.
type Properties struct {
	Name      string
	Glyph     rune
	Color     RGBA
	Motion    MotionClass
	Density   float64
	Flammable bool
}

// catalog is indexed by Kind. A zero entry means a kind was added without
// authoring its properties; validateCatalog rejects that at startup.
var catalog = [KindCount]Properties{
	Powder: {Name: "Powder", Glyph: '░', Color: rgb(1.0, 0.894, 0.769), Motion: Fall, Density: 1.0, Flammable: true},
	Sand:   {Name: "Sand", Glyph: '▒', Color: rgb(0.824, 0.706, 0.549), Motion: Fall, Density: 1.5},
	Water:  {Name: "Water", Glyph: '≈', Color: rgb(0.255, 0.412, 0.882), Motion: Fill, Density: 1.0},
	Oil:    {Name: "Oil", Glyph: '~', Color: rgb(0.502, 0.0, 0.0), Motion: Fill, Density: 0.8, Flammable: true},
	Fire:   {Name: "Fire", Glyph: '^', Color: rgb(1.0, 0.271, 0.0), Motion: Diffuse, Density: 0.5, Flammable: true},
	Steam:  {Name: "Steam", Glyph: '∙', Color: rgb(1.0, 1.0, 1.0), Motion: Diffuse, Density: 0.1},
	Wall:   {Name: "Wall", Glyph: '█', Color: rgb(0.502, 0.502, 0.502), Motion: Frozen, Density: 2.0},
}

func init() {
	if err := validateCatalog(catalog[:]); err != nil {
		panic(err)
	}
}

// MissingEntryError reports a kind with no authored properties.
type MissingEntryError struct {
	Kind Kind
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("element: missing catalog entry for kind %d", uint8(e.Kind))
}

func validateCatalog(entries []Properties) error {
	for i, p := range entries {
		if p.Name == "" || p.Density <= 0 {
			return &MissingEntryError{Kind: Kind(i)}
		}
	}
	return nil
}

// Lookup returns the properties of k. It is total over the defined kinds and
// panics on a value outside them.
func Lookup(k Kind) Properties {
	if !k.Valid() {
		panic(fmt.Sprintf("element: lookup of invalid kind %d", uint8(k)))
	}
	return catalog[k]
}

// Catalog returns a copy of the whole table in kind order.
func Catalog() []Properties {
	out := make([]Properties, KindCount)
	copy(out, catalog[:])
	return out
}
