// Package core provides fundamental types and utilities for the hopper game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a continuous axis-aligned box on the ground plane (X across the
// lane, Z along the lane axis). Used for actor/vehicle hitboxes.
type RectF struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// BoxAround returns a box centred on (x, z) with the given half extents.
func BoxAround(x, z, halfW, halfD float64) RectF {
	return RectF{MinX: x - halfW, MinZ: z - halfD, MaxX: x + halfW, MaxZ: z + halfD}
}

// Intersects returns true if the boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.MinX >= other.MaxX || other.MinX >= r.MaxX {
		return false
	}
	if r.MinZ >= other.MaxZ || other.MinZ >= r.MaxZ {
		return false
	}
	return true
}

// Vec3 is a world-space position. X runs across a lane, Y is height and Z
// is the lane axis (lane index N sits at Z = N).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// LerpVec returns the linear interpolation between a and b at t (unclamped).
func LerpVec(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*ClampF(t, 0, 1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round returns the nearest integer to x, halves away from zero.
func Round(x float64) int {
	return int(math.Round(x))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
