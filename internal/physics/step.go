package physics

import "math"

// velocityEpsilon is the speed below which a body's velocity is zeroed.
const velocityEpsilon = 0.05

var (
	down      = [2]int{0, -1}
	downSides = [2][2]int{{-1, -1}, {1, -1}}
	sides     = [2][2]int{{-1, 0}, {1, 0}}
	// Upward bias: up appears twice.
	wanderDirs = [][2]int{{0, 1}, {0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
)

// Step advances every dynamic body by one tick.
func (l *Lattice) Step() {
	for _, b := range l.sorted() {
		if b.Static {
			continue
		}
		switch b.Behavior {
		case Settle:
			l.settle(b)
		case Flow:
			l.flow(b)
		case Wander:
			l.wander(b)
		}
		l.drift(b)
	}
}

func (l *Lattice) settle(b *body) {
	if l.tryMove(b, down[0], down[1]) {
		return
	}
	if l.rng.Float64() < l.params.Friction {
		return
	}
	l.tryEither(b, downSides)
}

func (l *Lattice) flow(b *body) {
	if l.tryMove(b, down[0], down[1]) {
		return
	}
	if l.tryEither(b, downSides) {
		return
	}
	l.tryEither(b, sides)
}

func (l *Lattice) wander(b *body) {
	if l.rng.Float64() >= l.params.Wander {
		return
	}
	d := wanderDirs[l.rng.Intn(len(wanderDirs))]
	l.tryMove(b, d[0], d[1])
}

// drift applies velocity as at most one extra cell of displacement and damps it.
func (l *Lattice) drift(b *body) {
	v := b.Velocity
	if v.LenSq() < velocityEpsilon*velocityEpsilon {
		b.Velocity = Vec2{}
		return
	}
	dx := int(math.Round(clampUnit(v.X)))
	dy := int(math.Round(clampUnit(v.Y)))
	if (dx != 0 || dy != 0) && !l.tryMove(b, dx, dy) {
		// Hitting something absorbs the component along the blocked axis.
		if dx != 0 && !l.free(b.cell.add(dx, 0)) {
			v.X = 0
		}
		if dy != 0 && !l.free(b.cell.add(0, dy)) {
			v.Y = 0
		}
	}
	b.Velocity = v.Scale(l.params.Damping)
}

// tryEither tries the two directions in random order.
func (l *Lattice) tryEither(b *body, dirs [2][2]int) bool {
	first := l.rng.Intn(2)
	if l.tryMove(b, dirs[first][0], dirs[first][1]) {
		return true
	}
	return l.tryMove(b, dirs[1-first][0], dirs[1-first][1])
}

// tryMove moves b by (dx, dy) if the target is free. Moving down into a
// single lighter dynamic body swaps the two.
func (l *Lattice) tryMove(b *body, dx, dy int) bool {
	target := b.cell.add(dx, dy)
	if l.free(target) {
		l.moveTo(b, target)
		return true
	}
	if dy >= 0 || l.walls[target] > 0 {
		return false
	}
	ids := l.occ[target]
	if len(ids) != 1 {
		return false
	}
	other := l.bodies[ids[0]]
	if other.Static || other.Mass >= b.Mass {
		return false
	}
	from := b.cell
	l.moveTo(other, from)
	l.moveTo(b, target)
	return true
}

func (l *Lattice) moveTo(b *body, c cell) {
	l.unplace(b)
	b.Position = b.Position.Add(Vec2{float64(c.x - b.cell.x), float64(c.y - b.cell.y)})
	l.place(b, c)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
