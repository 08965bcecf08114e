package component

import "github.com/lixenwraith/invaders/vmath"

// PositionComponent is the world-space center of an entity's rectangle, y up
type PositionComponent struct {
	X, Y float64
}

// Vec returns the position as a vector
func (p PositionComponent) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// SizeComponent holds rectangle extents, fixed after spawn
type SizeComponent struct {
	Width, Height float64
}

// HalfWidth returns half the width
func (s SizeComponent) HalfWidth() float64 {
	return s.Width / 2
}

// HalfHeight returns half the height
func (s SizeComponent) HalfHeight() float64 {
	return s.Height / 2
}

// VelocityComponent is linear speed in world units per second
type VelocityComponent struct {
	X, Y float64
}

// Bounds builds the axis-aligned rectangle covered by an entity
func Bounds(pos PositionComponent, size SizeComponent) vmath.Rect {
	return vmath.NewRect(pos.Vec(), vmath.Vec2{X: size.Width, Y: size.Height})
}
