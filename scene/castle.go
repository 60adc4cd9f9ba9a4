package scene

// Castle footprint in world units. The outer walls enclose a square
// courtyard centered on the origin; the water moat surrounds it and the
// maze grounds lie to the east.
const (
	wallLength    = 100.0
	wallHeight    = 16.0
	wallThickness = 18.0
	wallOffset    = 59.0 // wall center distance from origin

	towerDiameter = 16.0
	towerHeight   = 28.0
	capHeight     = 12.0

	railY       = 17.0
	railHeight  = 2.0
	spikeHeight = 3.0
	spikeStep   = 6.4
)

// Ground returns the grass planes. The main grounds carry the castle
// and maze; the west bank sits across the moat gap, where the water
// plane below shows through.
func Ground() []Item {
	return []Item{
		{
			Transform:  Transform{Position: Vec3{134, 0, 0}, Size: Vec3{360, 0, 200}},
			Renderable: Renderable{Shape: ShapePlane, Material: MatGrass},
		},
		{
			Transform:  Transform{Position: Vec3{-105, 0, 0}, Size: Vec3{50, 0, 200}},
			Renderable: Renderable{Shape: ShapePlane, Material: MatGrass},
		},
	}
}

// Walls returns the four curtain walls and the gate leaves. The east
// wall is split in two to leave the gate opening.
func Walls() []Item {
	items := []Item{
		// north and south walls
		box(0, wallHeight/2, -wallOffset, wallLength, wallHeight, wallThickness, 0, MatBrick),
		box(0, wallHeight/2, wallOffset, wallLength, wallHeight, wallThickness, 0, MatBrick),
		// west wall
		box(-wallOffset, wallHeight/2, 0, wallLength, wallHeight, wallThickness, 90, MatBrick),
		// east wall halves flanking the gate opening
		box(wallOffset, wallHeight/2, -32.5, 35, wallHeight, wallThickness, 90, MatBrick),
		box(wallOffset, wallHeight/2, 32.5, 35, wallHeight, wallThickness, 90, MatBrick),
		// gate leaves
		box(68, 7, -9, 1, 14, 18, 25, MatWood),
		box(68, 7, 9, 1, 14, 18, -25, MatWood),
	}
	return items
}

// Towers returns the four corner towers, each a cylinder with a cone cap.
func Towers() []Item {
	corners := []Vec3{
		{-wallOffset, 0, -wallOffset},
		{wallOffset, 0, -wallOffset},
		{-wallOffset, 0, wallOffset},
		{wallOffset, 0, wallOffset},
	}

	items := make([]Item, 0, 2*len(corners))
	for _, c := range corners {
		items = append(items,
			cylinder(c.X, 0, c.Z, towerDiameter, towerHeight, MatStone),
			cone(c.X, towerHeight, c.Z, towerDiameter+2, capHeight, MatTile),
		)
	}
	return items
}

// Railings returns the parapet rails and spikes running along each wall
// top between the towers.
func Railings() []Item {
	var items []Item

	span := float32(wallLength - towerDiameter - 4)
	half := span / 2

	addRun := func(cx, cz float32, alongX bool) {
		// rail beam
		if alongX {
			items = append(items, box(cx, railY, cz, span, railHeight, 1, 0, MatWood))
		} else {
			items = append(items, box(cx, railY, cz, span, railHeight, 1, 90, MatWood))
		}
		// spikes
		for d := -half; d <= half; d += spikeStep {
			x, z := cx+d, cz
			if !alongX {
				x, z = cx, cz+d
			}
			items = append(items, cone(x, railY+railHeight/2, z, 1.2, spikeHeight, MatMetal))
		}
	}

	inner := float32(wallOffset - wallThickness/2 + 0.5)
	outer := float32(wallOffset + wallThickness/2 - 0.5)

	// both edges of the north and south wall walks
	addRun(0, -outer, true)
	addRun(0, -inner, true)
	addRun(0, inner, true)
	addRun(0, outer, true)
	// both edges of the east and west wall walks
	addRun(-outer, 0, false)
	addRun(-inner, 0, false)
	addRun(inner, 0, false)
	addRun(outer, 0, false)

	return items
}

// Keep returns the inner keep: a central hall with a tiled roof and four
// courtyard columns crowned with spheres.
func Keep() []Item {
	items := []Item{
		box(0, 10, 0, 30, 20, 30, 0, MatStone),
		cone(0, 20, 0, 36, 10, MatTile),
	}

	columns := []Vec3{{-22, 0, -22}, {22, 0, -22}, {-22, 0, 22}, {22, 0, 22}}
	for _, c := range columns {
		items = append(items, cylinder(c.X, 0, c.Z, 3, 12, MatTile))
		items = append(items, Item{
			Transform:  Transform{Position: Vec3{c.X, 13.5, c.Z}, Size: Vec3{3, 3, 3}},
			Renderable: Renderable{Shape: ShapeSphere, Material: MatMetal},
		})
	}
	return items
}
