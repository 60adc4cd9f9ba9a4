package scene

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
)

func TestMaze_OneWallPerHashCell(t *testing.T) {
	items := Maze()
	if len(items) != MazeWallCount() {
		t.Errorf("maze items = %d, want %d wall cells", len(items), MazeWallCount())
	}

	minX, maxX, minZ, maxZ := MazeBounds()
	for _, it := range items {
		p := it.Transform.Position
		if p.X < minX || p.X > maxX || p.Z < minZ || p.Z > maxZ {
			t.Fatalf("maze wall at (%g,%g) outside bounds [%g,%g]x[%g,%g]", p.X, p.Z, minX, maxX, minZ, maxZ)
		}
		if it.Renderable.Shape != ShapeBox {
			t.Fatalf("maze wall has shape %d, want box", it.Renderable.Shape)
		}
	}
}

func TestMaze_LayoutRowsUniform(t *testing.T) {
	want := len(mazeLayout[0])
	for i, line := range mazeLayout {
		if len(line) != want {
			t.Errorf("maze row %d has %d cells, want %d", i, len(line), want)
		}
	}
}

func TestTrees_DeterministicAndOutsideGrounds(t *testing.T) {
	a := Trees(32, 7)
	b := Trees(32, 7)

	if len(a) != 64 {
		t.Fatalf("tree items = %d, want 64 (trunk+canopy per tree)", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tree item %d differs across runs with same seed", i)
		}
	}

	for i := 0; i < len(a); i += 2 {
		p := a[i].Transform.Position
		if TreeKeepOut(p.X, p.Z) {
			t.Errorf("tree %d at (%g,%g) inside castle or maze grounds", i/2, p.X, p.Z)
		}
	}
}

func TestTrees_DifferentSeedsDiffer(t *testing.T) {
	a := Trees(16, 1)
	b := Trees(16, 2)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical forests")
	}
}

func TestBuild_TableComposition(t *testing.T) {
	withMaze := Build(8, 7, true)
	withoutMaze := Build(8, 7, false)

	if len(withMaze)-len(withoutMaze) != MazeWallCount() {
		t.Errorf("maze toggle changed item count by %d, want %d", len(withMaze)-len(withoutMaze), MazeWallCount())
	}

	for i, it := range withMaze {
		if int(it.Renderable.Material) >= len(Materials()) {
			t.Fatalf("item %d references material %d outside palette", i, it.Renderable.Material)
		}
		s := it.Transform.Size
		if s.X < 0 || s.Y < 0 || s.Z < 0 {
			t.Fatalf("item %d has negative extent %+v", i, s)
		}
	}
}

func TestPopulate_CreatesOneEntityPerItem(t *testing.T) {
	world := ecs.NewWorld()
	items := Build(4, 7, true)

	n := Populate(world, items)
	if n != len(items) {
		t.Fatalf("Populate returned %d, want %d", n, len(items))
	}

	filter := ecs.NewFilter2[Transform, Renderable](world)
	count := 0
	query := filter.Query()
	for query.Next() {
		count++
	}
	if count != len(items) {
		t.Errorf("queried %d entities, want %d", count, len(items))
	}
}

func TestPalette_Complete(t *testing.T) {
	for id, m := range Materials() {
		if m.Name == "" {
			t.Errorf("material %d has no name", id)
		}
		if m.Tint.A == 0 {
			t.Errorf("material %q is fully transparent", m.Name)
		}
	}
}
