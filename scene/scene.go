// Package scene defines the static castle scenery as declarative data:
// flat tables of shape/transform/material records that the renderer draws
// every frame. Nothing here is procedural at runtime except tree
// placement, which is seeded and deterministic.
package scene

// Vec3 is a position or extent in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Shape selects the primitive used to draw an item.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeCone
	ShapeSphere
	ShapePlane
)

// MaterialID indexes the material palette.
type MaterialID uint8

const (
	MatGrass MaterialID = iota
	MatTile
	MatWood
	MatMetal
	MatStone
	MatBrick
	MatTreeTrunk
	MatTreeLeaf
	matCount
)

// Color is an 8-bit RGBA tint.
type Color struct {
	R, G, B, A uint8
}

// Material describes how an item surface is tinted.
type Material struct {
	Name  string
	Tint  Color
	Rough float32
}

// palette mirrors the material set of the scene: mostly mid-rough
// stone and brick, grass for the grounds, wood for gates and railings.
var palette = [matCount]Material{
	MatGrass:     {Name: "grass", Tint: Color{86, 125, 70, 255}, Rough: 0.125},
	MatTile:      {Name: "tile", Tint: Color{158, 158, 150, 255}, Rough: 0.25},
	MatWood:      {Name: "wood", Tint: Color{117, 81, 57, 255}, Rough: 0.25},
	MatMetal:     {Name: "metal", Tint: Color{140, 144, 152, 255}, Rough: 0.25},
	MatStone:     {Name: "stone", Tint: Color{125, 120, 115, 255}, Rough: 0.25},
	MatBrick:     {Name: "brick", Tint: Color{150, 100, 80, 255}, Rough: 0.25},
	MatTreeTrunk: {Name: "tree_trunk", Tint: Color{94, 66, 41, 255}, Rough: 0.25},
	MatTreeLeaf:  {Name: "tree_leaf", Tint: Color{52, 102, 49, 255}, Rough: 0.125},
}

// Materials returns the material palette.
func Materials() []Material {
	return palette[:]
}

// Lookup returns the material for the given id.
func Lookup(id MaterialID) Material {
	return palette[id]
}

// Transform places and sizes an item. Size is the full extent per axis;
// for cylinders and cones X is the diameter and Y the height. Yaw is a
// rotation around the vertical axis in degrees.
type Transform struct {
	Position Vec3
	Size     Vec3
	Yaw      float32
}

// Renderable picks the primitive and material for an item.
type Renderable struct {
	Shape    Shape
	Material MaterialID
}

// Item is one scenery record: a primitive, where it sits, what it looks
// like. The whole castle is a concatenation of these tables.
type Item struct {
	Transform  Transform
	Renderable Renderable
}

func box(x, y, z, sx, sy, sz float32, yaw float32, mat MaterialID) Item {
	return Item{
		Transform:  Transform{Position: Vec3{x, y, z}, Size: Vec3{sx, sy, sz}, Yaw: yaw},
		Renderable: Renderable{Shape: ShapeBox, Material: mat},
	}
}

func cylinder(x, y, z, diameter, height float32, mat MaterialID) Item {
	return Item{
		Transform:  Transform{Position: Vec3{x, y, z}, Size: Vec3{diameter, height, diameter}},
		Renderable: Renderable{Shape: ShapeCylinder, Material: mat},
	}
}

func cone(x, y, z, diameter, height float32, mat MaterialID) Item {
	return Item{
		Transform:  Transform{Position: Vec3{x, y, z}, Size: Vec3{diameter, height, diameter}},
		Renderable: Renderable{Shape: ShapeCone, Material: mat},
	}
}
