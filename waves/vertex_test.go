package waves

import (
	"math"
	"testing"
)

func TestFillVertexData_MatchesAccessors(t *testing.T) {
	f := newTestField(t)
	f.Disturb(5, 9, 0.4)
	f.Update(0.1)

	n := f.VertexCount()
	positions := make([]float32, 3*n)
	normals := make([]float32, 3*n)
	texcoords := make([]float32, 2*n)
	f.FillVertexData(positions, normals, texcoords)

	for i := 0; i < n; i++ {
		p := f.Position(i)
		if positions[3*i] != p.X || positions[3*i+1] != p.Y || positions[3*i+2] != p.Z {
			t.Fatalf("vertex %d: stream position (%g,%g,%g) != %+v",
				i, positions[3*i], positions[3*i+1], positions[3*i+2], p)
		}
		nm := f.Normal(i)
		if normals[3*i] != nm.X || normals[3*i+1] != nm.Y || normals[3*i+2] != nm.Z {
			t.Fatalf("vertex %d: stream normal differs from Normal()", i)
		}
	}
}

func TestFillVertexData_TexcoordMapping(t *testing.T) {
	f := newTestField(t)

	n := f.VertexCount()
	positions := make([]float32, 3*n)
	normals := make([]float32, 3*n)
	texcoords := make([]float32, 2*n)
	f.FillVertexData(positions, normals, texcoords)

	const tol = 1e-5
	check := func(i int, wantU, wantV float32) {
		t.Helper()
		if math.Abs(float64(texcoords[2*i]-wantU)) > tol || math.Abs(float64(texcoords[2*i+1]-wantV)) > tol {
			t.Errorf("vertex %d: uv = (%g,%g), want (%g,%g)", i, texcoords[2*i], texcoords[2*i+1], wantU, wantV)
		}
	}

	cols := f.ColumnCount()
	// Row 0 sits at z=-depth/2, so v starts at 1 and shrinks northward.
	check(0, 0, 1)
	check(cols-1, 1, 1)
	check((f.RowCount()-1)*cols, 0, 0)
	check(f.RowCount()*cols-1, 1, 0)
}

func TestIndices_Topology(t *testing.T) {
	f := newTestField(t)
	indices := f.Indices()

	if len(indices) != 3*f.TriangleCount() {
		t.Fatalf("len(indices) = %d, want %d", len(indices), 3*f.TriangleCount())
	}

	seen := make([]bool, f.VertexCount())
	for _, idx := range indices {
		if int(idx) >= f.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("vertex %d unused by index list", i)
		}
	}

	// Every triangle must keep a counter-clockwise winding seen from +y.
	for tri := 0; tri < len(indices); tri += 3 {
		a := f.Position(int(indices[tri]))
		b := f.Position(int(indices[tri+1]))
		c := f.Position(int(indices[tri+2]))
		cross := (b.X-a.X)*(c.Z-a.Z) - (b.Z-a.Z)*(c.X-a.X)
		if cross >= 0 {
			t.Fatalf("triangle %d wound clockwise", tri/3)
		}
	}
}
