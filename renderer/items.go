package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"bastion/scene"
)

// ItemRenderer draws the static scenery entities.
type ItemRenderer struct {
	filter *ecs.Filter2[scene.Transform, scene.Renderable]

	// Wireframe switches primitive fills for outlines.
	Wireframe bool
}

// NewItemRenderer creates a renderer over the given world's scenery.
func NewItemRenderer(world *ecs.World) *ItemRenderer {
	return &ItemRenderer{
		filter: ecs.NewFilter2[scene.Transform, scene.Renderable](world),
	}
}

// Draw renders every scenery entity. Must run inside BeginMode3D.
func (r *ItemRenderer) Draw() {
	query := r.filter.Query()
	for query.Next() {
		transform, renderable := query.Get()
		r.drawItem(transform, renderable)
	}
}

func (r *ItemRenderer) drawItem(t *scene.Transform, rb *scene.Renderable) {
	mat := scene.Lookup(rb.Material)
	tint := rl.NewColor(mat.Tint.R, mat.Tint.G, mat.Tint.B, mat.Tint.A)
	size := t.Size

	rl.PushMatrix()
	rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
	if t.Yaw != 0 {
		rl.Rotatef(t.Yaw, 0, 1, 0)
	}

	origin := rl.NewVector3(0, 0, 0)
	switch rb.Shape {
	case scene.ShapeBox:
		if r.Wireframe {
			rl.DrawCubeWires(origin, size.X, size.Y, size.Z, tint)
		} else {
			rl.DrawCube(origin, size.X, size.Y, size.Z, tint)
		}
	case scene.ShapeCylinder:
		// Position is the base center; radius is half the x extent.
		if r.Wireframe {
			rl.DrawCylinderWires(origin, size.X/2, size.X/2, size.Y, 16, tint)
		} else {
			rl.DrawCylinder(origin, size.X/2, size.X/2, size.Y, 16, tint)
		}
	case scene.ShapeCone:
		if r.Wireframe {
			rl.DrawCylinderWires(origin, 0, size.X/2, size.Y, 16, tint)
		} else {
			rl.DrawCylinder(origin, 0, size.X/2, size.Y, 16, tint)
		}
	case scene.ShapeSphere:
		if r.Wireframe {
			rl.DrawSphereWires(origin, size.X/2, 12, 12, tint)
		} else {
			rl.DrawSphere(origin, size.X/2, tint)
		}
	case scene.ShapePlane:
		rl.DrawPlane(origin, rl.NewVector2(size.X, size.Z), tint)
	}

	rl.PopMatrix()
}
