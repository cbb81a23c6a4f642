package mesh

import (
	"math"
)

// NewCube creates an axis-aligned cube centered at the origin with per-face
// normals. Each face contributes 4 unique vertices so that normals stay hard
// at the edges, giving 24 vertices and 36 indices total.
//
// Parameters:
//   - name: the mesh identifier
//   - size: edge length of the cube
//   - color: vertex color applied to every face
//
// Returns:
//   - Mesh: the cube mesh
func NewCube(name string, size float32, color [4]float32) Mesh {
	half := size / 2

	type faceData struct {
		positions [4][3]float32
		normal    [3]float32
	}

	faces := []faceData{
		// +X
		{positions: [4][3]float32{{half, -half, -half}, {half, half, -half}, {half, half, half}, {half, -half, half}}, normal: [3]float32{1, 0, 0}},
		// -X
		{positions: [4][3]float32{{-half, -half, half}, {-half, half, half}, {-half, half, -half}, {-half, -half, -half}}, normal: [3]float32{-1, 0, 0}},
		// +Y
		{positions: [4][3]float32{{-half, half, -half}, {-half, half, half}, {half, half, half}, {half, half, -half}}, normal: [3]float32{0, 1, 0}},
		// -Y
		{positions: [4][3]float32{{-half, -half, half}, {-half, -half, -half}, {half, -half, -half}, {half, -half, half}}, normal: [3]float32{0, -1, 0}},
		// +Z
		{positions: [4][3]float32{{-half, -half, half}, {half, -half, half}, {half, half, half}, {-half, half, half}}, normal: [3]float32{0, 0, 1}},
		// -Z
		{positions: [4][3]float32{{half, -half, -half}, {-half, -half, -half}, {-half, half, -half}, {half, half, -half}}, normal: [3]float32{0, 0, -1}},
	}

	vertices := make([]Vertex, 0, 24)
	for _, face := range faces {
		for _, pos := range face.positions {
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   face.normal,
				Color:    color,
			})
		}
	}

	indices := make([]uint32, 0, 36)
	for fi := range 6 {
		base := uint32(fi * 4)
		indices = append(indices,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}

	return NewMesh(name, vertices, indices)
}

// NewUVSphere creates a UV sphere centered at the origin with smooth normals.
// Ring 0 is the north pole, ring `rings` the south pole; each ring shares its
// seam vertex so texture-free shading wraps cleanly.
//
// Parameters:
//   - name: the mesh identifier
//   - radius: sphere radius
//   - rings: number of latitude subdivisions (>= 2)
//   - segments: number of longitude subdivisions (>= 3)
//   - color: vertex color applied to every vertex
//
// Returns:
//   - Mesh: the sphere mesh
func NewUVSphere(name string, radius float32, rings, segments int, color [4]float32) Mesh {
	var vertices []Vertex
	var indices []uint32

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := float32(math.Cos(phi)) * radius
		ringRadius := float32(math.Sin(phi)) * radius

		for s := 0; s <= segments; s++ {
			theta := 2.0 * math.Pi * float64(s) / float64(segments)
			x := ringRadius * float32(math.Cos(theta))
			z := ringRadius * float32(math.Sin(theta))

			nx := float32(math.Sin(phi) * math.Cos(theta))
			ny := float32(math.Cos(phi))
			nz := float32(math.Sin(phi) * math.Sin(theta))

			vertices = append(vertices, Vertex{
				Position: [3]float32{x, y, z},
				Normal:   [3]float32{nx, ny, nz},
				Color:    color,
			})
		}
	}

	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r*stride + s)
			b := uint32(r*stride + s + 1)
			c := uint32((r+1)*stride + s)
			d := uint32((r+1)*stride + s + 1)

			indices = append(indices, a, c, b)
			indices = append(indices, b, c, d)
		}
	}

	return NewMesh(name, vertices, indices)
}

// NewGrid creates a reference grid of lines in the XZ plane at y = 0,
// intended for a line-list pipeline. The two lines passing through the origin
// use axisColor so the world axes stand out.
//
// Parameters:
//   - name: the mesh identifier
//   - halfExtent: number of grid cells from the center to each edge
//   - spacing: world-space distance between adjacent lines
//   - color: color of regular grid lines
//   - axisColor: color of the two center lines
//
// Returns:
//   - Mesh: the grid line mesh
func NewGrid(name string, halfExtent int, spacing float32, color, axisColor [4]float32) Mesh {
	var vertices []Vertex
	var indices []uint32

	extent := float32(halfExtent) * spacing
	normal := [3]float32{0, 1, 0}

	addLine := func(x0, z0, x1, z1 float32, c [4]float32) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			Vertex{Position: [3]float32{x0, 0, z0}, Normal: normal, Color: c},
			Vertex{Position: [3]float32{x1, 0, z1}, Normal: normal, Color: c},
		)
		indices = append(indices, base, base+1)
	}

	for i := -halfExtent; i <= halfExtent; i++ {
		offset := float32(i) * spacing
		c := color
		if i == 0 {
			c = axisColor
		}
		addLine(offset, -extent, offset, extent, c)
		addLine(-extent, offset, extent, offset, c)
	}

	return NewMesh(name, vertices, indices)
}
