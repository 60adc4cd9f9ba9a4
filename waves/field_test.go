package waves

import (
	"math"
	"testing"
)

func newTestField(t *testing.T) *Field {
	t.Helper()
	f, err := New(16, 16, 16, 16, 0.03, 4.0, 0.2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestNew_InvalidParams(t *testing.T) {
	cases := []struct {
		name         string
		rows, cols   int
		width, depth float32
		dt, speed    float32
		damping      float32
	}{
		{"rows too small", 2, 16, 16, 16, 0.03, 4, 0.2},
		{"cols too small", 16, 2, 16, 16, 0.03, 4, 0.2},
		{"zero dt", 16, 16, 16, 16, 0, 4, 0.2},
		{"negative dt", 16, 16, 16, 16, -0.03, 4, 0.2},
		{"zero speed", 16, 16, 16, 16, 0.03, 0, 0.2},
		{"zero width", 16, 16, 0, 16, 0.03, 4, 0.2},
		{"negative depth", 16, 16, 16, -1, 0.03, 4, 0.2},
		{"negative damping", 16, 16, 16, 16, 0.03, 4, -0.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.rows, tc.cols, tc.width, tc.depth, tc.dt, tc.speed, tc.damping); err == nil {
				t.Error("expected construction error, got nil")
			}
		})
	}
}

func TestField_Counts(t *testing.T) {
	f := newTestField(t)

	if got := f.VertexCount(); got != 256 {
		t.Errorf("VertexCount = %d, want 256", got)
	}
	if got := f.TriangleCount(); got != 2*15*15 {
		t.Errorf("TriangleCount = %d, want %d", got, 2*15*15)
	}
	if f.RowCount() != 16 || f.ColumnCount() != 16 {
		t.Errorf("grid = %dx%d, want 16x16", f.RowCount(), f.ColumnCount())
	}
}

func TestPosition_GridMapping(t *testing.T) {
	f := newTestField(t)

	const tol = 1e-5
	for row := 0; row < f.RowCount(); row++ {
		for col := 0; col < f.ColumnCount(); col++ {
			p := f.Position(row*f.ColumnCount() + col)

			wantX := -f.Width()/2 + float32(col)*f.CellWidth()
			wantZ := -f.Depth()/2 + float32(row)*f.CellDepth()

			if math.Abs(float64(p.X-wantX)) > tol {
				t.Fatalf("vertex (%d,%d): x = %g, want %g", row, col, p.X, wantX)
			}
			if math.Abs(float64(p.Z-wantZ)) > tol {
				t.Fatalf("vertex (%d,%d): z = %g, want %g", row, col, p.Z, wantZ)
			}
		}
	}
}

func TestPosition_MappingIndependentOfHeight(t *testing.T) {
	f := newTestField(t)
	before := f.Position(8*16 + 8)

	f.Disturb(8, 8, 1.5)
	f.Update(0.3)

	after := f.Position(8*16 + 8)
	if after.X != before.X || after.Z != before.Z {
		t.Errorf("x,z moved from (%g,%g) to (%g,%g)", before.X, before.Z, after.X, after.Z)
	}
}

func TestPosition_OutOfRangePanics(t *testing.T) {
	f := newTestField(t)

	for _, i := range []int{-1, 256, 1000} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Position(%d): expected panic", i)
				}
			}()
			f.Position(i)
		}()
	}
}

func TestNormal_FlatFieldPointsUp(t *testing.T) {
	f := newTestField(t)

	for i := 0; i < f.VertexCount(); i++ {
		n := f.Normal(i)
		if n.X != 0 || n.Y != 1 || n.Z != 0 {
			t.Fatalf("vertex %d: normal = %+v, want (0,1,0)", i, n)
		}
	}
}

func TestNormal_UnitLength(t *testing.T) {
	f := newTestField(t)

	// Rough the surface up, including near the edges.
	f.Disturb(2, 2, 0.8)
	f.Disturb(13, 13, -0.6)
	f.Disturb(8, 8, 1.2)
	f.Update(0.3)

	const eps = 1e-4
	for i := 0; i < f.VertexCount(); i++ {
		n := f.Normal(i)
		length := math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z))
		if math.Abs(length-1) > eps {
			t.Fatalf("vertex %d: |normal| = %g, want 1", i, length)
		}
	}
}
