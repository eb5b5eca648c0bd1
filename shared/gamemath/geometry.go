package gamemath

import (
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlaps reports whether two AABB objects intersect. Used as the narrow
// phase after resolv's cell check, which only guarantees shared cells.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// ClosestPointOnObject returns the point on the object's AABB closest to
// (x, y). A point inside the box maps to itself.
func ClosestPointOnObject(x, y float64, o *resolv.Object) vector.Vector {
	return vector.Vector{
		Clamp(x, o.X, o.X+o.W),
		Clamp(y, o.Y, o.Y+o.H),
	}
}

// Center returns the center point of an object's AABB.
func Center(o *resolv.Object) vector.Vector {
	return vector.Vector{o.X + o.W/2, o.Y + o.H/2}
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
