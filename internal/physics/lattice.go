package physics

import (
	"math"
	"math/rand"
	"sort"
)

type cell struct {
	x, y int
}

func cellOf(p Vec2) cell {
	return cell{int(math.Floor(p.X + 0.5)), int(math.Floor(p.Y + 0.5))}
}

func (c cell) add(dx, dy int) cell {
	return cell{c.x + dx, c.y + dy}
}

type body struct {
	Body
	cell  cell
	wall  bool
	cells []cell // wall footprint
}

// Lattice stores bodies on integer cells. Several bodies may share a cell
// when placed there directly; movement never enters an occupied cell.
// A Lattice is not safe for concurrent use.
type Lattice struct {
	params Params
	rng    *rand.Rand
	next   BodyID

	bodies map[BodyID]*body
	occ    map[cell][]BodyID
	walls  map[cell]int
	nWalls int
}

// NewLattice creates an empty lattice.
func NewLattice(p Params) *Lattice {
	return &Lattice{
		params: p,
		rng:    rand.New(rand.NewSource(p.Seed)),
		bodies: make(map[BodyID]*body),
		occ:    make(map[cell][]BodyID),
		walls:  make(map[cell]int),
	}
}

// Params returns the current tuning.
func (l *Lattice) Params() Params {
	return l.params
}

// CreateBody adds a particle body and returns its id.
func (l *Lattice) CreateBody(req BodyRequest) BodyID {
	l.next++
	b := &body{Body: Body{
		ID:       l.next,
		Position: req.Position,
		Velocity: req.Velocity,
		Shape:    req.Shape,
		Static:   req.Static,
		Mass:     req.Mass,
		Behavior: req.Behavior,
	}}
	if b.Static {
		b.Behavior = Static
		b.Velocity = Vec2{}
	}
	l.bodies[b.ID] = b
	l.place(b, cellOf(req.Position))
	return b.ID
}

// CreateWall adds a static wall covering every cell the segment crosses.
func (l *Lattice) CreateWall(seg Segment) BodyID {
	l.next++
	b := &body{
		Body: Body{ID: l.next, Position: seg.A.Add(seg.B).Scale(0.5), Static: true},
		wall: true,
	}
	b.cells = rasterize(cellOf(seg.A), cellOf(seg.B))
	for _, c := range b.cells {
		l.walls[c]++
	}
	l.bodies[b.ID] = b
	l.nWalls++
	return b.ID
}

// Remove deletes a body. Unknown ids are ignored.
func (l *Lattice) Remove(id BodyID) {
	b, ok := l.bodies[id]
	if !ok {
		return
	}
	if b.wall {
		for _, c := range b.cells {
			if l.walls[c]--; l.walls[c] <= 0 {
				delete(l.walls, c)
			}
		}
		l.nWalls--
	} else {
		l.unplace(b)
	}
	delete(l.bodies, id)
}

// Body returns a snapshot of a body.
func (l *Lattice) Body(id BodyID) (Body, bool) {
	b, ok := l.bodies[id]
	if !ok {
		return Body{}, false
	}
	return b.Body, true
}

// Position returns the body's position.
func (l *Lattice) Position(id BodyID) (Vec2, bool) {
	b, ok := l.bodies[id]
	if !ok {
		return Vec2{}, false
	}
	return b.Position, true
}

// SetPosition teleports a particle body. It always succeeds, even into an
// occupied cell.
func (l *Lattice) SetPosition(id BodyID, p Vec2) {
	b, ok := l.bodies[id]
	if !ok || b.wall {
		return
	}
	l.unplace(b)
	b.Position = p
	l.place(b, cellOf(p))
}

// Velocity returns the body's velocity in cells per tick.
func (l *Lattice) Velocity(id BodyID) Vec2 {
	if b, ok := l.bodies[id]; ok {
		return b.Velocity
	}
	return Vec2{}
}

// SetVelocity sets a dynamic body's velocity, clamped to MaxSpeed.
func (l *Lattice) SetVelocity(id BodyID, v Vec2) {
	b, ok := l.bodies[id]
	if !ok || b.Static {
		return
	}
	if limit := l.params.MaxSpeed; limit > 0 && v.Len() > limit {
		v = v.Normalize().Scale(limit)
	}
	b.Velocity = v
}

// Count returns the number of particle bodies.
func (l *Lattice) Count() int {
	return len(l.bodies) - l.nWalls
}

// WallCount returns the number of wall bodies.
func (l *Lattice) WallCount() int {
	return l.nWalls
}

// Blocked reports whether a world point lies on a wall.
func (l *Lattice) Blocked(p Vec2) bool {
	return l.walls[cellOf(p)] > 0
}

func (l *Lattice) place(b *body, c cell) {
	b.cell = c
	l.occ[c] = append(l.occ[c], b.ID)
}

func (l *Lattice) unplace(b *body) {
	ids := l.occ[b.cell]
	for i, id := range ids {
		if id == b.ID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(l.occ, b.cell)
	} else {
		l.occ[b.cell] = ids
	}
}

func (l *Lattice) free(c cell) bool {
	return l.walls[c] == 0 && len(l.occ[c]) == 0
}

// sorted returns particles ordered bottom-up, then left to right, then by id.
func (l *Lattice) sorted() []*body {
	out := make([]*body, 0, len(l.bodies))
	for _, b := range l.bodies {
		if !b.wall {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.cell.y != b.cell.y {
			return a.cell.y < b.cell.y
		}
		if a.cell.x != b.cell.x {
			return a.cell.x < b.cell.x
		}
		return a.ID < b.ID
	})
	return out
}

// Contacts returns every pair of particles in the same or adjacent cells,
// sorted by (A, B).
func (l *Lattice) Contacts() []Contact {
	var out []Contact
	for _, b := range l.bodies {
		if b.wall {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, other := range l.occ[b.cell.add(dx, dy)] {
					if other > b.ID {
						out = append(out, Contact{A: b.ID, B: other})
					}
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// rasterize returns the cells on the line from a to b inclusive.
func rasterize(a, b cell) []cell {
	dx, dy := b.x-a.x, b.y-a.y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return []cell{a}
	}
	out := make([]cell, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, cell{
			a.x + int(math.Round(float64(dx)*t)),
			a.y + int(math.Round(float64(dy)*t)),
		})
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
