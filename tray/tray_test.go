package tray

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"traygen/mesh"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Params) {},
			wantErr: false,
		},
		{
			name:    "single cell is valid",
			mutate:  func(p *Params) { p.Cols, p.Rows = 1, 1 },
			wantErr: false,
		},
		{
			name:    "zero cols",
			mutate:  func(p *Params) { p.Cols = 0 },
			wantErr: true,
		},
		{
			name:    "negative rows",
			mutate:  func(p *Params) { p.Rows = -1 },
			wantErr: true,
		},
		{
			name:    "zero wall thickness",
			mutate:  func(p *Params) { p.WallThickness = 0 },
			wantErr: true,
		},
		{
			name:    "negative base thickness",
			mutate:  func(p *Params) { p.BaseThickness = -2 },
			wantErr: true,
		},
		{
			name:    "zero wall height",
			mutate:  func(p *Params) { p.WallHeight = 0 },
			wantErr: true,
		},
		{
			name: "walls consume the footprint",
			mutate: func(p *Params) {
				p.OuterWidth = 10
				p.WallThickness = 6
			},
			wantErr: true,
		},
		{
			name: "grid count leaves no cell width",
			mutate: func(p *Params) {
				p.OuterWidth = 50
				p.WallThickness = 2
				p.Cols = 100
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("Validate() error = %v, want ErrInvalidParameter", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestBuildTriangleCount(t *testing.T) {
	// Mesh size is 12 * (5 + (cols-1) + (rows-1)).
	tests := []struct {
		name       string
		cols, rows int
		want       int
	}{
		{"5x3", 5, 3, 132},
		{"1x1", 1, 1, 60},
		{"2x2", 2, 2, 84},
		{"10x1", 10, 1, 168},
		{"1x5", 1, 5, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Cols, p.Rows = tt.cols, tt.rows
			tris, err := p.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(tris) != tt.want {
				t.Errorf("Build() produced %d triangles, want %d", len(tris), tt.want)
			}
		})
	}
}

func TestBuildWindingConsistency(t *testing.T) {
	tris, err := DefaultParams().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, tri := range tris {
		got := tri.V2.Sub(tri.V1).Cross(tri.V3.Sub(tri.V1)).Unit()
		if math.Abs(got.X-tri.Normal.X) > 1e-9 ||
			math.Abs(got.Y-tri.Normal.Y) > 1e-9 ||
			math.Abs(got.Z-tri.Normal.Z) > 1e-9 {
			t.Errorf("triangle %d: winding disagrees with normal %+v (computed %+v)", i, tri.Normal, got)
		}
	}
}

func TestBuildVertexRange(t *testing.T) {
	p := DefaultParams()
	tris, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	maxZ := p.BaseThickness + p.WallHeight
	for i, tri := range tris {
		for _, v := range []mesh.Point{tri.V1, tri.V2, tri.V3} {
			if v.Z < 0 || v.Z > maxZ {
				t.Errorf("triangle %d: vertex z=%g outside [0, %g]", i, v.Z, maxZ)
			}
			if v.X < 0 || v.X > p.OuterWidth || v.Y < 0 || v.Y > p.OuterLength {
				t.Errorf("triangle %d: vertex %+v outside the footprint", i, v)
			}
		}
	}
}

func TestCellSize(t *testing.T) {
	p := DefaultParams()
	w, l, err := p.CellSize()
	if err != nil {
		t.Fatalf("CellSize() error = %v", err)
	}
	// (215 - 2*2 - 4*2) / 5 and (115 - 2*2 - 2*2) / 3.
	if math.Abs(w-40.6) > 1e-9 {
		t.Errorf("cell width = %g, want 40.6", w)
	}
	if math.Abs(l-107.0/3.0) > 1e-9 {
		t.Errorf("cell length = %g, want %g", l, 107.0/3.0)
	}

	p.Cols = 0
	if _, _, err := p.CellSize(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("CellSize() error = %v, want ErrInvalidParameter", err)
	}
}

func TestSolidName(t *testing.T) {
	p := DefaultParams()
	if got := p.SolidName(); got != "grid_5x3" {
		t.Errorf("SolidName() = %q, want %q", got, "grid_5x3")
	}
	p.Cols, p.Rows = 1, 12
	if got := p.SolidName(); got != "grid_1x12" {
		t.Errorf("SolidName() = %q, want %q", got, "grid_1x12")
	}
}

func TestPlanOrderAndExtents(t *testing.T) {
	p := DefaultParams()
	boxes, err := p.Plan()
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(boxes) != 11 {
		t.Fatalf("Plan() produced %d boxes, want 11", len(boxes))
	}

	cellW, _ := 40.6, 107.0/3.0
	const totalHeight = 22.0
	approx := func(a, b mesh.Point) bool {
		return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
	}

	want := []mesh.Box{
		{A: mesh.Point{}, B: mesh.Point{X: 215, Y: 115, Z: 2}},                                      // base
		{A: mesh.Point{Z: 2}, B: mesh.Point{X: 2, Y: 115, Z: totalHeight}},                          // left
		{A: mesh.Point{X: 213, Z: 2}, B: mesh.Point{X: 215, Y: 115, Z: totalHeight}},                // right
		{A: mesh.Point{X: 2, Z: 2}, B: mesh.Point{X: 213, Y: 2, Z: totalHeight}},                    // front
		{A: mesh.Point{X: 2, Y: 113, Z: 2}, B: mesh.Point{X: 213, Y: 115, Z: totalHeight}},          // back
		{A: mesh.Point{X: 2 + cellW, Y: 2, Z: 2}, B: mesh.Point{X: 4 + cellW, Y: 113, Z: totalHeight}}, // first divider
	}
	for i, wb := range want {
		if !approx(boxes[i].A, wb.A) || !approx(boxes[i].B, wb.B) {
			t.Errorf("box %d = %+v, want %+v", i, boxes[i], wb)
		}
	}

	// Vertical dividers advance left to right, horizontal front to back.
	for i := 5; i < 9; i++ {
		if i > 5 && boxes[i].A.X <= boxes[i-1].A.X {
			t.Errorf("vertical divider %d does not advance: %g after %g", i, boxes[i].A.X, boxes[i-1].A.X)
		}
		if math.Abs(boxes[i].B.X-boxes[i].A.X-p.WallThickness) > 1e-9 {
			t.Errorf("vertical divider %d width = %g, want %g", i, boxes[i].B.X-boxes[i].A.X, p.WallThickness)
		}
	}
	for i := 9; i < 11; i++ {
		if i > 9 && boxes[i].A.Y <= boxes[i-1].A.Y {
			t.Errorf("horizontal divider %d does not advance: %g after %g", i, boxes[i].A.Y, boxes[i-1].A.Y)
		}
		if math.Abs(boxes[i].B.Y-boxes[i].A.Y-p.WallThickness) > 1e-9 {
			t.Errorf("horizontal divider %d depth = %g, want %g", i, boxes[i].B.Y-boxes[i].A.Y, p.WallThickness)
		}
	}
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tray.stl")
	if err := Generate(DefaultParams(), path); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "solid grid_5x3\n") {
		t.Errorf("output does not open with the solid name:\n%.60s", out)
	}
	if !strings.HasSuffix(out, "endsolid grid_5x3\n") {
		t.Errorf("output does not close with the solid name")
	}
	if got := strings.Count(out, "facet normal"); got != 132 {
		t.Errorf("output holds %d facets, want 132", got)
	}
}

func TestGenerateInvalidParamsWritesNothing(t *testing.T) {
	p := DefaultParams()
	p.Cols = 0
	path := filepath.Join(t.TempDir(), "bad.stl")

	if err := Generate(p, path); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Generate() error = %v, want ErrInvalidParameter", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Generate() left a file behind for invalid parameters")
	}
}
