// Package physics is a small deterministic body store on an integer lattice.
// It moves bodies with per-behavior heuristics instead of solving rigid-body
// dynamics, which is enough for a falling-sand style sandbox.
package physics

import "math"

// Vec2 is a world-space vector. Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns v scaled to unit length, or zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// BodyID identifies a body. Zero is never issued.
type BodyID uint32

// ShapeKind is the footprint of a body.
type ShapeKind uint8

const (
	Rectangle ShapeKind = iota
	Circle
)

func (s ShapeKind) String() string {
	if s == Circle {
		return "circle"
	}
	return "rectangle"
}

// Shape describes a body's footprint in world units.
type Shape struct {
	Kind   ShapeKind
	HalfW  float64 // rectangle only
	HalfH  float64 // rectangle only
	Radius float64 // circle only
}

// Rect returns a rectangle footprint of the given size.
func Rect(w, h float64) Shape {
	return Shape{Kind: Rectangle, HalfW: w / 2, HalfH: h / 2}
}

// Round returns a circle footprint.
func Round(radius float64) Shape {
	return Shape{Kind: Circle, Radius: radius}
}

// Behavior selects the per-tick movement heuristic of a dynamic body.
type Behavior uint8

const (
	Static Behavior = iota
	Settle
	Flow
	Wander
)

func (b Behavior) String() string {
	switch b {
	case Static:
		return "static"
	case Settle:
		return "settle"
	case Flow:
		return "flow"
	case Wander:
		return "wander"
	default:
		return "unknown"
	}
}

// BodyRequest describes a body to create.
type BodyRequest struct {
	Position Vec2
	Shape    Shape
	Static   bool
	Mass     float64
	Behavior Behavior
	Velocity Vec2
}

// Body is a snapshot of a body's state.
type Body struct {
	ID       BodyID
	Position Vec2
	Velocity Vec2
	Shape    Shape
	Static   bool
	Mass     float64
	Behavior Behavior
}

// Segment is a straight wall between two points.
type Segment struct {
	A, B Vec2
}

// Contact is an unordered pair of touching bodies with A < B.
type Contact struct {
	A, B BodyID
}

// Params tunes the movement heuristics.
type Params struct {
	Friction float64 // chance a settling body holds still when only a diagonal is free
	Wander   float64 // chance a wandering body moves on a given tick
	Damping  float64 // velocity multiplier per tick
	MaxSpeed float64 // velocity clamp, in cells per tick
	Seed     int64
}

// DefaultParams returns tuning that looks reasonable at 30-60 ticks/s.
func DefaultParams() Params {
	return Params{
		Friction: 0.3,
		Wander:   0.6,
		Damping:  0.8,
		MaxSpeed: 3,
	}
}
