package lattice

// Vec2i is an exact point (or direction) on the integer note lattice.
// X conventionally counts large steps, Y small steps.
type Vec2i struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }

// Scale returns k·v.
func (v Vec2i) Scale(k int) Vec2i { return Vec2i{k * v.X, k * v.Y} }

// Neg returns -v.
func (v Vec2i) Neg() Vec2i { return Vec2i{-v.X, -v.Y} }

// Vec2 is a point in continuous tuning space: X is log₂ of the frequency
// ratio against the root, Y is the position across the unit strip.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Vec returns the same point as a Vec2.
func (v Vec2i) Vec() Vec2 { return Vec2{float64(v.X), float64(v.Y)} }
