// Package waves simulates a liquid surface as a rectangular grid of
// vertex heights evolving under a damped finite-difference wave equation.
// The field is advanced with a fixed internal time step decoupled from the
// caller's frame delta, and exposes per-vertex positions and normals for
// upload into a dynamic mesh buffer.
package waves

import (
	"fmt"
	"math"
)

// Vec3 is a position or direction in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Field holds the simulation state: two height buffers selected by a
// parity index, plus derived normals. Heights are mutated only by Update
// and Disturb; positions and normals are pure functions of the current
// height buffer.
type Field struct {
	rows, cols   int
	width, depth float32
	dx, dz       float32 // cell spacing

	dt         float32 // fixed integration step
	k1, k2, k3 float32 // update recurrence coefficients

	// h[curr] is the live solution, h[1-curr] the previous step.
	h    [2][]float32
	curr int

	normals      []float32 // 3 floats per vertex
	normalsDirty bool

	accum float32 // unconsumed simulation time
}

// New creates a field of rows*cols vertices spanning width*depth world
// units. dt is the fixed integration step in seconds, speed the wave
// propagation constant, damping the velocity decay factor. Construction
// fails if the grid is too small for the update stencil or if dt, speed
// or the extents are not positive.
func New(rows, cols int, width, depth, dt, speed, damping float32) (*Field, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("waves: grid %dx%d too small, need at least 3x3", rows, cols)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("waves: time step must be positive, got %g", dt)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("waves: wave speed must be positive, got %g", speed)
	}
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("waves: extents must be positive, got %gx%g", width, depth)
	}
	if damping < 0 {
		return nil, fmt.Errorf("waves: damping must not be negative, got %g", damping)
	}

	f := &Field{
		rows:  rows,
		cols:  cols,
		width: width,
		depth: depth,
		dx:    width / float32(cols-1),
		dz:    depth / float32(rows-1),
		dt:    dt,
	}

	// Coefficients of the damped wave equation recurrence. The spacing
	// term uses dx; the grid is expected to be near-square.
	d := damping*dt + 2
	e := speed * speed * dt * dt / (f.dx * f.dx)
	f.k1 = (4 - 8*e) / d
	f.k2 = (damping*dt - 2) / d
	f.k3 = 2 * e / d

	n := rows * cols
	f.h[0] = make([]float32, n)
	f.h[1] = make([]float32, n)
	f.normals = make([]float32, 3*n)
	for i := 0; i < n; i++ {
		f.normals[3*i+1] = 1
	}
	return f, nil
}

// RowCount returns the number of grid rows.
func (f *Field) RowCount() int { return f.rows }

// ColumnCount returns the number of grid columns.
func (f *Field) ColumnCount() int { return f.cols }

// VertexCount returns the number of grid vertices.
func (f *Field) VertexCount() int { return f.rows * f.cols }

// TriangleCount returns the number of triangles in the surface mesh.
func (f *Field) TriangleCount() int { return 2 * (f.rows - 1) * (f.cols - 1) }

// Width returns the world-space extent along x.
func (f *Field) Width() float32 { return f.width }

// Depth returns the world-space extent along z.
func (f *Field) Depth() float32 { return f.depth }

// CellWidth returns the spacing between columns.
func (f *Field) CellWidth() float32 { return f.dx }

// CellDepth returns the spacing between rows.
func (f *Field) CellDepth() float32 { return f.dz }

// StepSize returns the fixed integration step in seconds.
func (f *Field) StepSize() float32 { return f.dt }

// Position returns the world-space position of vertex i (row-major
// indexing). Panics if i is out of range.
func (f *Field) Position(i int) Vec3 {
	f.checkIndex(i)
	row := i / f.cols
	col := i % f.cols
	return Vec3{
		X: -0.5*f.width + float32(col)*f.dx,
		Y: f.h[f.curr][i],
		Z: -0.5*f.depth + float32(row)*f.dz,
	}
}

// Normal returns the unit surface normal at vertex i. Interior vertices
// use central differences against their row and column neighbors; edge
// vertices fall back to one-sided differences. Panics if i is out of range.
func (f *Field) Normal(i int) Vec3 {
	f.checkIndex(i)
	if f.normalsDirty {
		f.computeNormals()
	}
	return Vec3{f.normals[3*i], f.normals[3*i+1], f.normals[3*i+2]}
}

// Height returns the current height of the cell at (row, col).
// Panics if the cell is out of range.
func (f *Field) Height(row, col int) float32 {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		panic(fmt.Sprintf("waves: cell (%d,%d) out of range %dx%d", row, col, f.rows, f.cols))
	}
	return f.h[f.curr][row*f.cols+col]
}

func (f *Field) checkIndex(i int) {
	if i < 0 || i >= f.rows*f.cols {
		panic(fmt.Sprintf("waves: vertex index %d out of range [0,%d)", i, f.rows*f.cols))
	}
}

// computeNormals rebuilds the normal buffer from the current heights.
func (f *Field) computeNormals() {
	h := f.h[f.curr]
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			i := row*f.cols + col

			// Height slope along x and z, one-sided at the edges.
			var sx, sz float32
			switch {
			case col == 0:
				sx = (h[i+1] - h[i]) / f.dx
			case col == f.cols-1:
				sx = (h[i] - h[i-1]) / f.dx
			default:
				sx = (h[i+1] - h[i-1]) / (2 * f.dx)
			}
			switch {
			case row == 0:
				sz = (h[i+f.cols] - h[i]) / f.dz
			case row == f.rows-1:
				sz = (h[i] - h[i-f.cols]) / f.dz
			default:
				sz = (h[i+f.cols] - h[i-f.cols]) / (2 * f.dz)
			}

			nx, ny, nz := -sx, float32(1), -sz
			inv := 1 / float32(math.Sqrt(float64(nx*nx+ny*ny+nz*nz)))
			f.normals[3*i] = nx * inv
			f.normals[3*i+1] = ny * inv
			f.normals[3*i+2] = nz * inv
		}
	}
	f.normalsDirty = false
}
