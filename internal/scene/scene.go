// Package scene builds procedural demo geometry in the vertex layout the
// shading package expects. Each builder exercises a different primitive
// mode of the pipeline's assembler.
package scene

import (
	"fmt"
	"math"

	"clipraster/internal/mathutil"
	"clipraster/internal/pipeline"
	"clipraster/internal/shading"
)

// Mesh is one draw call's worth of geometry: a flattened vertex array in
// the shading layout plus, for Indexed meshes, an index array.
type Mesh struct {
	Name     string
	Type     pipeline.RenderType
	Vertices []float64 // NumVertices * shading.Stride
	Indices  []int     // Indexed only, 3 per triangle
	Emissive bool      // rendered in the glow pass instead of the lit pass
}

// NumVertices returns the vertex count of the flattened array.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices) / shading.Stride
}

// NumTriangles returns the triangle count for Indexed meshes.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Build returns the meshes of a named demo scene.
func Build(name string) ([]Mesh, error) {
	switch name {
	case "cube":
		return []Mesh{Cube(1), Plane(2.5, -0.5)}, nil
	case "disc":
		return []Mesh{Disc(24, 1), Plane(2.5, -0.5)}, nil
	case "ribbon":
		return []Mesh{Ribbon(16, 0.3, 1.2), Plane(2.5, -0.5)}, nil
	case "glow":
		glow := Disc(24, 1.3)
		glow.Emissive = true
		return []Mesh{Cube(1), glow}, nil
	default:
		return nil, fmt.Errorf("scene: unknown scene %q", name)
	}
}

// vertex appends one vertex in the shading layout.
func vertex(dst []float64, pos, normal, color mathutil.Vec3, u, v float64) []float64 {
	return append(dst,
		pos[0], pos[1], pos[2],
		normal[0], normal[1], normal[2],
		color[0], color[1], color[2],
		u, v,
	)
}

// Cube returns an Indexed axis-aligned cube with per-face normals and
// colors, four shared vertices per face.
func Cube(size float64) Mesh {
	h := size / 2
	faces := []struct {
		normal mathutil.Vec3
		color  mathutil.Vec3
		// corners in CCW order seen from outside
		corners [4]mathutil.Vec3
	}{
		{mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0.85, 0.3, 0.3},
			[4]mathutil.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mathutil.Vec3{0, 0, -1}, mathutil.Vec3{0.3, 0.85, 0.3},
			[4]mathutil.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0.3, 0.3, 0.85},
			[4]mathutil.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mathutil.Vec3{-1, 0, 0}, mathutil.Vec3{0.85, 0.85, 0.3},
			[4]mathutil.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0.3, 0.85, 0.85},
			[4]mathutil.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mathutil.Vec3{0, -1, 0}, mathutil.Vec3{0.85, 0.3, 0.85},
			[4]mathutil.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	var verts []float64
	var idx []int
	uv := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for f, face := range faces {
		base := f * 4
		for c, corner := range face.corners {
			verts = vertex(verts, corner, face.normal, face.color, uv[c][0], uv[c][1])
		}
		idx = append(idx, base, base+1, base+2, base, base+2, base+3)
	}

	return Mesh{Name: "cube", Type: pipeline.Indexed, Vertices: verts, Indices: idx}
}

// Plane returns a List ground plane of the given half-extent at height y,
// squashed flat through a diagonal scale so the same corner template
// serves any extent.
func Plane(extent, y float64) Mesh {
	scale := mathutil.Mat3Diag(extent, 1, extent)
	up := mathutil.Vec3{0, 1, 0}
	color := mathutil.Vec3{0.55, 0.55, 0.6}

	corners := [4]mathutil.Vec3{{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1}}
	var p [4]mathutil.Vec3
	for i, c := range corners {
		p[i] = scale.MulVec3(c)
		p[i][1] = y
	}

	var verts []float64
	verts = vertex(verts, p[0], up, color, 0, 0)
	verts = vertex(verts, p[2], up, color, 1, 1)
	verts = vertex(verts, p[1], up, color, 1, 0)
	verts = vertex(verts, p[0], up, color, 0, 0)
	verts = vertex(verts, p[3], up, color, 0, 1)
	verts = vertex(verts, p[2], up, color, 1, 1)

	return Mesh{Name: "plane", Type: pipeline.List, Vertices: verts}
}

// Disc returns a Fan disc in the XY plane: a center vertex plus a ring,
// hue shifting around the rim.
func Disc(segments int, radius float64) Mesh {
	normal := mathutil.Vec3{0, 0, 1}

	var verts []float64
	verts = vertex(verts, mathutil.Vec3{}, normal, mathutil.Vec3{1, 1, 1}, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pos := mathutil.Vec3{radius * math.Cos(a), radius * math.Sin(a), 0}
		verts = vertex(verts, pos, normal, rimColor(a),
			0.5+0.5*math.Cos(a), 0.5+0.5*math.Sin(a))
	}

	return Mesh{Name: "disc", Type: pipeline.Fan, Vertices: verts}
}

// Ribbon returns a Strip zigzag band: two rails of vertices advancing
// along X, the strip assembler stitching them into triangles.
func Ribbon(segments int, width, length float64) Mesh {
	normal := mathutil.Vec3{0, 0, 1}

	var verts []float64
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := (t - 0.5) * 2 * length
		wave := 0.2 * math.Sin(3*math.Pi*t)
		color := mathutil.Vec3{0.4 + 0.6*t, 0.3, 1 - 0.6*t}
		verts = vertex(verts, mathutil.Vec3{x, wave - width/2, 0}, normal, color, t, 0)
		verts = vertex(verts, mathutil.Vec3{x, wave + width/2, 0}, normal, color, t, 1)
	}

	return Mesh{Name: "ribbon", Type: pipeline.Strip, Vertices: verts}
}

func rimColor(a float64) mathutil.Vec3 {
	return mathutil.Vec3{
		0.5 + 0.5*math.Cos(a),
		0.5 + 0.5*math.Cos(a+2*math.Pi/3),
		0.5 + 0.5*math.Cos(a+4*math.Pi/3),
	}
}
