package tray

import (
	"fmt"

	"traygen/mesh"
)

// Params are the tray dimensions. All lengths are in millimeters.
//
// The coordinate system puts X along the width, Y along the length, and Z
// up, with the base resting on z=0.
type Params struct {
	OuterWidth    float64
	OuterLength   float64
	BaseThickness float64
	WallThickness float64
	WallHeight    float64
	Cols          int
	Rows          int
}

// DefaultParams returns the stock 21.5cm x 11.5cm tray with a 5x3 grid.
func DefaultParams() Params {
	return Params{
		OuterWidth:    215.0,
		OuterLength:   115.0,
		BaseThickness: 2.0,
		WallThickness: 2.0,
		WallHeight:    20.0,
		Cols:          5,
		Rows:          3,
	}
}

// innerWidth is the space left for cells and dividers inside the outer walls.
func (p Params) innerWidth() float64  { return p.OuterWidth - 2*p.WallThickness }
func (p Params) innerLength() float64 { return p.OuterLength - 2*p.WallThickness }

// cellSize computes uniform cell dimensions after subtracting the internal
// wall budget. Any remainder stays in floating-point rounding; cells are
// not snapped to tile exactly.
func (p Params) cellSize() (w, l float64) {
	w = (p.innerWidth() - float64(p.Cols-1)*p.WallThickness) / float64(p.Cols)
	l = (p.innerLength() - float64(p.Rows-1)*p.WallThickness) / float64(p.Rows)
	return w, l
}

// Validate checks every geometric precondition. A nil return guarantees
// that Plan and Build succeed with strictly positive box extents.
func (p Params) Validate() error {
	if p.Cols < 1 || p.Rows < 1 {
		return fmt.Errorf("%w: cols and rows must be >= 1", ErrInvalidParameter)
	}
	if p.WallThickness <= 0 || p.BaseThickness <= 0 || p.WallHeight <= 0 {
		return fmt.Errorf("%w: thicknesses and heights must be > 0", ErrInvalidParameter)
	}
	if p.innerWidth() <= 0 || p.innerLength() <= 0 {
		return fmt.Errorf("%w: outer size is too small for the chosen wall thickness", ErrInvalidParameter)
	}
	if w, l := p.cellSize(); w <= 0 || l <= 0 {
		return fmt.Errorf("%w: outer size is too small for the chosen wall thickness and grid count", ErrInvalidParameter)
	}
	return nil
}

// CellSize returns the uniform interior cell dimensions.
func (p Params) CellSize() (width, length float64, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	width, length = p.cellSize()
	return width, length, nil
}

// SolidName returns the name embedded in the serialized solid.
func (p Params) SolidName() string {
	return fmt.Sprintf("grid_%dx%d", p.Cols, p.Rows)
}

// Plan derives one box extent per solid region, in emission order: base
// slab, left, right, front, and back outer walls, then the internal
// vertical dividers left to right, then the horizontal dividers front to
// back. The order carries no geometric meaning but is fixed so output is
// deterministic.
func (p Params) Plan() ([]mesh.Box, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cellW, cellL := p.cellSize()
	totalHeight := p.BaseThickness + p.WallHeight
	boxes := make([]mesh.Box, 0, 5+(p.Cols-1)+(p.Rows-1))

	// Base slab spans the full footprint.
	boxes = append(boxes, mesh.Box{
		A: mesh.Point{},
		B: mesh.Point{X: p.OuterWidth, Y: p.OuterLength, Z: p.BaseThickness},
	})

	// Outer walls sit on the base and rise to the full height. Left and
	// right run the whole length; front and back fill the span between them.
	boxes = append(boxes,
		mesh.Box{
			A: mesh.Point{Z: p.BaseThickness},
			B: mesh.Point{X: p.WallThickness, Y: p.OuterLength, Z: totalHeight},
		},
		mesh.Box{
			A: mesh.Point{X: p.OuterWidth - p.WallThickness, Z: p.BaseThickness},
			B: mesh.Point{X: p.OuterWidth, Y: p.OuterLength, Z: totalHeight},
		},
		mesh.Box{
			A: mesh.Point{X: p.WallThickness, Z: p.BaseThickness},
			B: mesh.Point{X: p.OuterWidth - p.WallThickness, Y: p.WallThickness, Z: totalHeight},
		},
		mesh.Box{
			A: mesh.Point{X: p.WallThickness, Y: p.OuterLength - p.WallThickness, Z: p.BaseThickness},
			B: mesh.Point{X: p.OuterWidth - p.WallThickness, Y: p.OuterLength, Z: totalHeight},
		},
	)

	// Vertical dividers between columns. The cursor alternates between a
	// cell span and a wall span; the last cell gets no trailing divider.
	x := p.WallThickness
	for col := 0; col < p.Cols-1; col++ {
		x += cellW
		boxes = append(boxes, mesh.Box{
			A: mesh.Point{X: x, Y: p.WallThickness, Z: p.BaseThickness},
			B: mesh.Point{X: x + p.WallThickness, Y: p.OuterLength - p.WallThickness, Z: totalHeight},
		})
		x += p.WallThickness
	}

	// Horizontal dividers between rows, same walk along Y.
	y := p.WallThickness
	for row := 0; row < p.Rows-1; row++ {
		y += cellL
		boxes = append(boxes, mesh.Box{
			A: mesh.Point{X: p.WallThickness, Y: y, Z: p.BaseThickness},
			B: mesh.Point{X: p.OuterWidth - p.WallThickness, Y: y + p.WallThickness, Z: totalHeight},
		})
		y += p.WallThickness
	}

	return boxes, nil
}

// Build assembles the full tray mesh by tessellating each planned extent
// in order. Adjacent boxes may share coincident faces (base top against
// wall bottom); those are left in place rather than merged, which keeps
// every box an independent closed solid.
func (p Params) Build() ([]mesh.Triangle, error) {
	boxes, err := p.Plan()
	if err != nil {
		return nil, err
	}
	tris := make([]mesh.Triangle, 0, 12*len(boxes))
	for _, b := range boxes {
		tris = mesh.AppendBox(tris, b.A, b.B)
	}
	return tris, nil
}

// Generate builds the tray mesh and writes it to path as an ASCII STL
// solid. Invalid parameters abort before any file is created.
func Generate(p Params, path string) error {
	tris, err := p.Build()
	if err != nil {
		return err
	}
	return mesh.WriteFile(path, p.SolidName(), tris)
}
