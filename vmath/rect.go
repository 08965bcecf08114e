package vmath

// Rect is an axis-aligned rectangle stored as center and full size
type Rect struct {
	Center Vec2
	Size   Vec2
}

// NewRect builds a rectangle from its center and size
func NewRect(center, size Vec2) Rect {
	return Rect{Center: center, Size: size}
}

// RectFromEdges builds a rectangle from its min and max corners
func RectFromEdges(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Center: Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Size:   Vec2{X: maxX - minX, Y: maxY - minY},
	}
}

// Min returns the bottom-left corner
func (r Rect) Min() Vec2 {
	return r.Center.Sub(r.Size.Half())
}

// Max returns the top-right corner
func (r Rect) Max() Vec2 {
	return r.Center.Add(r.Size.Half())
}

// Overlaps reports strict AABB intersection
// Rectangles that only touch along an edge do not overlap
func (r Rect) Overlaps(o Rect) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := o.Min(), o.Max()

	if aMin.X >= bMax.X || bMin.X >= aMax.X {
		return false
	}
	if aMin.Y >= bMax.Y || bMin.Y >= aMax.Y {
		return false
	}
	return true
}

// Contains reports whether point p lies inside r, edges inclusive
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Expand grows the rectangle by margin on every side
func (r Rect) Expand(margin float64) Rect {
	return Rect{Center: r.Center, Size: Vec2{X: r.Size.X + 2*margin, Y: r.Size.Y + 2*margin}}
}
