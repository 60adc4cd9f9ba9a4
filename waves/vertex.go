package waves

// FillVertexData writes the current surface into flat per-vertex streams
// ready for a dynamic mesh upload: positions and normals hold 3 floats
// per vertex, texcoords 2. Texture coordinates map world x,z linearly
// onto [0,1]^2 with v flipped so the image's top edge faces +z. Slices
// shorter than required cause a panic, matching the backend's fixed
// buffer sizes.
func (f *Field) FillVertexData(positions, normals, texcoords []float32) {
	if f.normalsDirty {
		f.computeNormals()
	}

	h := f.h[f.curr]
	n := f.rows * f.cols
	_ = positions[3*n-1]
	_ = texcoords[2*n-1]
	copy(normals, f.normals[:3*n])

	i := 0
	for row := 0; row < f.rows; row++ {
		z := -0.5*f.depth + float32(row)*f.dz
		for col := 0; col < f.cols; col++ {
			x := -0.5*f.width + float32(col)*f.dx

			positions[3*i] = x
			positions[3*i+1] = h[i]
			positions[3*i+2] = z

			texcoords[2*i] = 0.5 + x/f.width
			texcoords[2*i+1] = 0.5 - z/f.depth
			i++
		}
	}
}

// Indices returns the static triangle index list for the surface mesh,
// two triangles per grid quad. The list never changes after construction;
// only the vertex streams are re-uploaded each frame.
func (f *Field) Indices() []uint16 {
	indices := make([]uint16, 3*f.TriangleCount())
	m, n := f.rows, f.cols

	k := 0
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-1; j++ {
			// Counter-clockwise as seen from above (+y).
			indices[k] = uint16(i*n + j)
			indices[k+1] = uint16((i+1)*n + j)
			indices[k+2] = uint16(i*n + j + 1)

			indices[k+3] = uint16(i*n + j + 1)
			indices[k+4] = uint16((i+1)*n + j)
			indices[k+5] = uint16((i+1)*n + j + 1)
			k += 6
		}
	}
	return indices
}
