package quadtree

import "gravsim/internal/vecmath"

// Bound is an axis-aligned rectangle, always square in this simulation
// since every node of the tree is a quadrant of the [-1,1]^2 root. The
// size-squared cache exists to avoid repeating the same subtraction on
// every Barnes-Hut opening-criterion check.
type Bound struct {
	BotLeft     vecmath.Vec2
	TopRight    vecmath.Vec2
	SizeSquared float32
}

// NewBound returns the bound spanning [botLeft, topRight].
func NewBound(botLeft, topRight vecmath.Vec2) Bound {
	size := topRight.X - botLeft.X
	return Bound{
		BotLeft:     botLeft,
		TopRight:    topRight,
		SizeSquared: size * size,
	}
}

// dim returns the (width, height) of the bound as a vector.
func (b Bound) dim() vecmath.Vec2 {
	return b.TopRight.Sub(b.BotLeft)
}

// Overlaps reports whether b and other share any area. Touching edges do
// not count as overlap.
func (b Bound) Overlaps(other Bound) bool {
	if b.TopRight.X <= other.BotLeft.X || b.BotLeft.X >= other.TopRight.X {
		return false
	}
	if b.TopRight.Y <= other.BotLeft.Y || b.BotLeft.Y >= other.TopRight.Y {
		return false
	}
	return true
}

// Contains reports whether pos lies within b, inclusive of the boundary.
func (b Bound) Contains(pos vecmath.Vec2) bool {
	return pos.X >= b.BotLeft.X && pos.X <= b.TopRight.X &&
		pos.Y >= b.BotLeft.Y && pos.Y <= b.TopRight.Y
}
