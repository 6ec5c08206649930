package pipeline

import "fmt"

// triangleIndices returns the (i0, i1, i2) vertex indices for every
// triangle rt assembles from numVertices vertices.
func triangleIndices(rt RenderType, numVertices int, indexData []int) ([][3]int, error) {
	switch rt {
	case List:
		count := numVertices / 3
		out := make([][3]int, count)
		for t := 0; t < count; t++ {
			out[t] = [3]int{3 * t, 3*t + 1, 3*t + 2}
		}
		return out, nil

	case Indexed:
		count := len(indexData) / 3
		out := make([][3]int, count)
		for t := 0; t < count; t++ {
			tri := [3]int{indexData[3*t], indexData[3*t+1], indexData[3*t+2]}
			for _, vi := range tri {
				if vi < 0 || vi >= numVertices {
					return nil, errIndex(vi, numVertices)
				}
			}
			out[t] = tri
		}
		return out, nil

	case Fan:
		if numVertices < 3 {
			return nil, nil
		}
		count := numVertices - 2
		out := make([][3]int, count)
		for t := 0; t < count; t++ {
			out[t] = [3]int{0, t + 1, t + 2}
		}
		return out, nil

	case Strip:
		if numVertices < 3 {
			return nil, nil
		}
		count := numVertices - 2
		out := make([][3]int, count)
		for t := 0; t < count; t++ {
			out[t] = [3]int{t, t + 1, t + 2}
		}
		return out, nil

	default:
		return nil, errRenderType(rt)
	}
}

// assembleAndClip walks the triangle list, runs the vertex shader on each
// of its three vertices, and hands the assembled triangle to the clipper
// at face 0. Each triangle's geometry vertices are
// carved from c.arena and released before the next triangle begins.
func (c *renderCtx) assembleAndClip(s *State, triangles [][3]int) error {
	for _, idx := range triangles {
		if procErr := c.processTriangle(s, idx); procErr != nil {
			return procErr
		}
	}
	return nil
}

func (c *renderCtx) processTriangle(s *State, idx [3]int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	defer c.arena.reset()

	var tri [3]*GeometryVertex
	for i, vi := range idx {
		gv := &GeometryVertex{Attr: c.arena.alloc(c.floatsPerVertex)}
		in := VertexInput{Attr: s.VertexData[vi*s.FloatsPerVertex : (vi+1)*s.FloatsPerVertex]}
		s.VertexShader(&in, gv, s.UniformData)
		tri[i] = gv
	}
	c.clipTriangle(tri, 0)
	return nil
}
