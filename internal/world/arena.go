package world

import "fmt"

// Handle addresses a particle in a Simulation. A handle stays valid until
// its particle is removed; after that it never resolves again, even if the
// slot is reused. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

// Less orders handles by slot, then generation.
func (h Handle) Less(o Handle) bool {
	if h.index != o.index {
		return h.index < o.index
	}
	return h.gen < o.gen
}

type slot struct {
	gen   uint32
	alive bool
	p     particle
}

// arena is a generational slot store.
type arena struct {
	slots []slot
	free  []uint32
	live  int
}

func (a *arena) insert(p particle) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[idx]
	s.gen++
	s.alive = true
	s.p = p
	a.live++
	return Handle{index: idx, gen: s.gen}
}

func (a *arena) get(h Handle) (*particle, bool) {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return &s.p, true
}

func (a *arena) remove(h Handle) (particle, bool) {
	p, ok := a.get(h)
	if !ok {
		return particle{}, false
	}
	out := *p
	s := &a.slots[h.index]
	s.alive = false
	s.p = particle{}
	a.free = append(a.free, h.index)
	a.live--
	return out, true
}

// each visits live particles in slot order.
func (a *arena) each(fn func(Handle, *particle)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(Handle{index: uint32(i), gen: s.gen}, &s.p)
		}
	}
}
