// internal/utils/math.go
package utils

import "math"

// Circle is the collision shape every entity exposes.
type Circle struct {
	X, Y float64
	R    float64
}

// Distance returns the straight-line distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// DetectCollision reports whether two circles overlap.
// Touching circles (distance == r1+r2) do not collide.
func DetectCollision(a, b Circle) bool {
	return Distance(a.X, a.Y, b.X, b.Y) < a.R+b.R
}

// WithinDistance reports whether the points are at most d apart (inclusive).
func WithinDistance(ax, ay, bx, by, d float64) bool {
	return DistanceSq(ax, ay, bx, by) <= d*d
}

// Bearing returns the angle in radians from (fromX, fromY) towards (toX, toY).
func Bearing(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// StepToward moves (x, y) by step units in the direction of (tx, ty).
func StepToward(x, y, tx, ty, step float64) (float64, float64) {
	angle := Bearing(x, y, tx, ty)
	return x + math.Cos(angle)*step, y + math.Sin(angle)*step
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
