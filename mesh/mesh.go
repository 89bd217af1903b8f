package mesh

import "math"

// Point is a location in model space. Coordinates are in millimeters.
type Point struct {
	X, Y, Z float64
}

// Vector is a direction in model space.
type Vector struct {
	X, Y, Z float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Cross returns the cross product v x w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns v scaled to length 1. The zero vector is returned unchanged.
func (v Vector) Unit() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l, v.Z / l}
}

// Triangle is a single mesh facet. Vertices are ordered counter-clockwise
// when viewed from outside the solid along Normal.
type Triangle struct {
	Normal     Vector
	V1, V2, V3 Point
}
