// Package renderer draws the castle scenery and the dynamic water
// surface with raylib.
package renderer

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bastion/waves"
)

// Mesh buffer slots as assigned by rlgl for the default vertex layout.
const (
	meshBufferPositions = 0
	meshBufferTexcoords = 1
	meshBufferNormals   = 2
)

// Water owns the dynamic surface mesh fed from the wave field. The
// vertex streams are refilled and re-uploaded every frame after the
// simulation update; the index buffer never changes.
type Water struct {
	level float32
	tint  rl.Color

	positions []float32
	normals   []float32
	texcoords []float32
	indices   []uint16

	mesh  rl.Mesh
	model rl.Model
}

// NewWater builds the mesh for the given field and uploads it as a
// dynamic mesh. Must be called after the raylib window exists.
func NewWater(field *waves.Field, level float32) *Water {
	n := field.VertexCount()

	w := &Water{
		level:     level,
		tint:      rl.NewColor(70, 120, 200, 170),
		positions: make([]float32, 3*n),
		normals:   make([]float32, 3*n),
		texcoords: make([]float32, 2*n),
		indices:   field.Indices(),
	}
	field.FillVertexData(w.positions, w.normals, w.texcoords)

	w.mesh = rl.Mesh{
		VertexCount:   int32(n),
		TriangleCount: int32(field.TriangleCount()),
	}
	w.mesh.Vertices = &w.positions[0]
	w.mesh.Normals = &w.normals[0]
	w.mesh.Texcoords = &w.texcoords[0]
	w.mesh.Indices = &w.indices[0]

	rl.UploadMesh(&w.mesh, true)
	w.model = rl.LoadModelFromMesh(w.mesh)

	return w
}

// Refill copies the current field state into the CPU-side vertex
// streams. Upload pushes them to the GPU; the two are separate so the
// caller can time them independently.
func (w *Water) Refill(field *waves.Field) {
	field.FillVertexData(w.positions, w.normals, w.texcoords)
}

// Upload re-uploads the position and normal buffers. Texcoords depend
// only on the grid layout and are never re-uploaded.
func (w *Water) Upload() {
	rl.UpdateMeshBuffer(w.mesh, meshBufferPositions, floatBytes(w.positions), 0)
	rl.UpdateMeshBuffer(w.mesh, meshBufferNormals, floatBytes(w.normals), 0)
}

// Draw renders the water plane at its configured level.
func (w *Water) Draw() {
	rl.DrawModel(w.model, rl.NewVector3(0, w.level, 0), 1, w.tint)
}

// Unload frees the GPU mesh.
func (w *Water) Unload() {
	rl.UnloadModel(w.model)
}

// floatBytes reinterprets a float32 slice as raw bytes for buffer upload.
func floatBytes(data []float32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), 4*len(data))
}
