package scene

import "math/rand"

// Tree placement keeps trees outside the castle grounds and the maze.
// Candidates landing inside either rectangle are pushed to its nearest
// edge plus a small random skirt, so the tree line hugs the perimeter.
const (
	treeSkirt       = 20.0
	trunkDiameter   = 1.6
	trunkHeight     = 6.0
	canopyDiameter  = 8.0
	canopyHeight    = 10.0
	castleHalfWidth = 90.0
)

type bounds struct {
	minX, maxX, minZ, maxZ float32
}

func (b bounds) contains(x, z float32) bool {
	return x > b.minX && x < b.maxX && z > b.minZ && z < b.maxZ
}

// Trees returns count trunk/canopy pairs placed deterministically from
// the given seed around the castle and maze perimeter.
func Trees(count int, seed int64) []Item {
	rng := rand.New(rand.NewSource(seed))
	keepOut := treeKeepOutBounds()

	items := make([]Item, 0, 2*count)
	for i := 0; i < count; i++ {
		x := keepOut.minX - treeSkirt + rng.Float32()*(keepOut.maxX-keepOut.minX+2*treeSkirt)
		z := keepOut.minZ - treeSkirt + rng.Float32()*(keepOut.maxZ-keepOut.minZ+2*treeSkirt)

		if keepOut.contains(x, z) {
			// Push to the nearest edge of the keep-out rectangle.
			dxMin := x - keepOut.minX
			dxMax := keepOut.maxX - x
			dzMin := z - keepOut.minZ
			dzMax := keepOut.maxZ - z
			switch minIndex(dxMin, dxMax, dzMin, dzMax) {
			case 0:
				x = keepOut.minX - rng.Float32()*treeSkirt
			case 1:
				x = keepOut.maxX + rng.Float32()*treeSkirt
			case 2:
				z = keepOut.minZ - rng.Float32()*treeSkirt
			default:
				z = keepOut.maxZ + rng.Float32()*treeSkirt
			}
		}

		scale := 0.8 + rng.Float32()*0.5
		items = append(items,
			cylinder(x, 0, z, trunkDiameter*scale, trunkHeight*scale, MatTreeTrunk),
			cone(x, trunkHeight*scale, z, canopyDiameter*scale, canopyHeight*scale, MatTreeLeaf),
		)
	}
	return items
}

// treeKeepOutBounds merges the castle grounds and the maze into one
// rectangle spanning from the castle's west edge to the maze's east edge.
func treeKeepOutBounds() bounds {
	_, mazeMaxX, mazeMinZ, mazeMaxZ := MazeBounds()
	return bounds{
		minX: -castleHalfWidth,
		maxX: mazeMaxX,
		minZ: minf(-castleHalfWidth, mazeMinZ),
		maxZ: maxf(castleHalfWidth, mazeMaxZ),
	}
}

// TreeKeepOut reports whether a point lies inside the region trees are
// excluded from.
func TreeKeepOut(x, z float32) bool {
	return treeKeepOutBounds().contains(x, z)
}

func minIndex(vals ...float32) int {
	best := 0
	for i, v := range vals {
		if v < vals[best] {
			best = i
		}
	}
	return best
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
