package world

import "fmt"

// BoundaryConfig selects which sides of the visible world have a wall.
type BoundaryConfig struct {
	Top    bool `yaml:"top"`
	Bottom bool `yaml:"bottom"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
}

// DefaultBoundary closes the top and bottom and leaves the sides open.
func DefaultBoundary() BoundaryConfig {
	return BoundaryConfig{Top: true, Bottom: true}
}

// Sides returns the number of enabled sides.
func (b BoundaryConfig) Sides() int {
	n := 0
	for _, on := range []bool{b.Top, b.Bottom, b.Left, b.Right} {
		if on {
			n++
		}
	}
	return n
}

func (b BoundaryConfig) String() string {
	mark := func(on bool, c byte) byte {
		if on {
			return c
		}
		return '-'
	}
	return fmt.Sprintf("%c%c%c%c", mark(b.Top, 'T'), mark(b.Bottom, 'B'), mark(b.Left, 'L'), mark(b.Right, 'R'))
}

// Bounds is the inclusive range of visible world cells.
type Bounds struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// wallOverhang is how far each wall reaches past the wrap window on its long
// axis. A body moves at most two cells per tick before it is folded back.
const wallOverhang = 2

// segments returns one wall per enabled side. Each wall sits on the edge row
// or column of bounds and spans the whole wrap window along that edge, so
// bodies in the margin are held too.
func (b BoundaryConfig) segments(r Bounds, window Vec2) []Segment {
	hx, hy := window.X/2+wallOverhang, window.Y/2+wallOverhang
	var out []Segment
	if b.Top {
		out = append(out, Segment{A: Vec2{X: -hx, Y: r.Max.Y}, B: Vec2{X: hx, Y: r.Max.Y}})
	}
	if b.Bottom {
		out = append(out, Segment{A: Vec2{X: -hx, Y: r.Min.Y}, B: Vec2{X: hx, Y: r.Min.Y}})
	}
	if b.Left {
		out = append(out, Segment{A: Vec2{X: r.Min.X, Y: -hy}, B: Vec2{X: r.Min.X, Y: hy}})
	}
	if b.Right {
		out = append(out, Segment{A: Vec2{X: r.Max.X, Y: -hy}, B: Vec2{X: r.Max.X, Y: hy}})
	}
	return out
}

// SetBoundary changes the wall configuration and rebuilds the walls if it
// differs from the current one.
func (s *Simulation) SetBoundary(b BoundaryConfig) {
	if b == s.boundary {
		return
	}
	s.boundary = b
	s.rebuildWalls()
}

// Boundary returns the current wall configuration.
func (s *Simulation) Boundary() BoundaryConfig {
	return s.boundary
}

// WallCount returns the number of boundary walls currently present.
func (s *Simulation) WallCount() int {
	return len(s.walls)
}

// rebuildWalls removes every boundary wall and creates one per enabled side.
func (s *Simulation) rebuildWalls() {
	for _, id := range s.walls {
		s.phys.Remove(id)
	}
	s.walls = s.walls[:0]
	for _, seg := range s.boundary.segments(s.Bounds(), s.wrap.Size) {
		s.walls = append(s.walls, s.phys.CreateWall(seg))
	}
	s.log.Debug("rebuilt boundary walls", "sides", s.boundary.String(), "walls", len(s.walls))
}
