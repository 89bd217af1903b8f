package mesh

// Box is an axis-aligned rectangular volume defined by two opposite
// corners. The corners may be given in any order.
type Box struct {
	A, B Point
}

// canonical returns the corners reordered so that min <= max on every axis.
func (b Box) canonical() (min, max Point) {
	min, max = b.A, b.B
	if max.X < min.X {
		min.X, max.X = max.X, min.X
	}
	if max.Y < min.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	if max.Z < min.Z {
		min.Z, max.Z = max.Z, min.Z
	}
	return min, max
}

// Triangles tessellates the box surface into its 12 triangles.
func (b Box) Triangles() []Triangle {
	return AppendBox(make([]Triangle, 0, 12), b.A, b.B)
}

// AppendBox appends the closed surface of the box spanning corners a and b
// to dst and returns the extended slice. Each of the 6 faces is emitted as
// two triangles sharing a diagonal, with outward normals. A degenerate box
// (equal coordinates on some axis) yields zero-area triangles; callers that
// care must guarantee positive extents.
func AppendBox(dst []Triangle, a, b Point) []Triangle {
	lo, hi := Box{A: a, B: b}.canonical()

	// The 8 corners, named by their position on each axis (x, y, z).
	p000 := Point{lo.X, lo.Y, lo.Z}
	p100 := Point{hi.X, lo.Y, lo.Z}
	p110 := Point{hi.X, hi.Y, lo.Z}
	p010 := Point{lo.X, hi.Y, lo.Z}
	p001 := Point{lo.X, lo.Y, hi.Z}
	p101 := Point{hi.X, lo.Y, hi.Z}
	p111 := Point{hi.X, hi.Y, hi.Z}
	p011 := Point{lo.X, hi.Y, hi.Z}

	face := func(n Vector, a, b, c, d Point) {
		dst = append(dst, Triangle{n, a, b, c}, Triangle{n, a, c, d})
	}

	face(Vector{0, 0, -1}, p000, p100, p110, p010) // bottom
	face(Vector{0, 0, 1}, p001, p011, p111, p101)  // top
	face(Vector{-1, 0, 0}, p000, p010, p011, p001) // -X
	face(Vector{1, 0, 0}, p100, p101, p111, p110)  // +X
	face(Vector{0, -1, 0}, p000, p001, p101, p100) // -Y
	face(Vector{0, 1, 0}, p010, p110, p111, p011)  // +Y

	return dst
}
