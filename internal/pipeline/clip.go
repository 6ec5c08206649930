package pipeline

import "clipraster/internal/mathutil"

// planeValue returns the signed distance of p from the given canonical
// view-volume plane; p is INSIDE the half-space when value >= 0.
//
//	face 0: x ≥ −w    face 1: x ≤ +w
//	face 2: y ≥ −w    face 3: y ≤ +w
//	face 4: z ≥ −w    face 5: z ≤ +w
func planeValue(face int, p mathutil.Vec4) float64 {
	switch face {
	case 0:
		return p[0] + p[3]
	case 1:
		return p[3] - p[0]
	case 2:
		return p[1] + p[3]
	case 3:
		return p[3] - p[1]
	case 4:
		return p[2] + p[3]
	case 5:
		return p[3] - p[2]
	default:
		return 0
	}
}

// clipTriangle recursively clips tri against the six canonical planes,
// handing any surviving triangle(s) to the rasterizer once face reaches 6.
func (c *renderCtx) clipTriangle(tri [3]*GeometryVertex, face int) {
	if face == 6 {
		c.rasterizeTriangle(tri)
		return
	}

	var inside [3]bool
	var dist [3]float64
	k := 0
	for i := 0; i < 3; i++ {
		dist[i] = planeValue(face, tri[i].Position)
		inside[i] = dist[i] >= 0
		if inside[i] {
			k++
		}
	}

	switch k {
	case 3:
		c.clipTriangle(tri, face+1)
	case 0:
		// fully outside: discard
	case 1:
		idxIn := 0
		for i := 0; i < 3; i++ {
			if inside[i] {
				idxIn = i
			}
		}
		idxOut1 := (idxIn + 1) % 3
		idxOut2 := (idxIn + 2) % 3

		in := tri[idxIn]
		p1 := c.intersectEdge(face, tri[0], in, tri[idxOut1])
		p2 := c.intersectEdge(face, tri[0], in, tri[idxOut2])

		// The rasterizer reads Flat attributes from a triangle's first
		// vertex. p1 carries tri[0]'s Flat values, so it leads whenever
		// the surviving vertex is not tri[0] itself.
		if idxIn == 0 {
			c.clipTriangle([3]*GeometryVertex{in, p1, p2}, face+1)
		} else {
			c.clipTriangle([3]*GeometryVertex{p1, p2, in}, face+1)
		}
	case 2:
		idxOut := 0
		for i := 0; i < 3; i++ {
			if !inside[i] {
				idxOut = i
			}
		}
		in1 := (idxOut + 1) % 3 // IN1: shares the edge (OUT, IN1)
		in0 := (idxOut + 2) % 3 // IN0: shares the edge (IN0, OUT)

		out := tri[idxOut]
		inA := tri[in0]
		inB := tri[in1]

		p1 := c.intersectEdge(face, tri[0], out, inB) // edge (IN1, OUT)
		p0 := c.intersectEdge(face, tri[0], inA, out) // edge (IN0, OUT)

		if in0 == 0 {
			c.clipTriangle([3]*GeometryVertex{inA, inB, p1}, face+1)
			c.clipTriangle([3]*GeometryVertex{inA, p1, p0}, face+1)
		} else {
			// Same triangles, rotated so p1 (tri[0]'s Flat values) leads.
			c.clipTriangle([3]*GeometryVertex{p1, inA, inB}, face+1)
			c.clipTriangle([3]*GeometryVertex{p1, p0, inA}, face+1)
		}
	}
}

// intersectEdge builds the new vertex where edge (a, b) crosses the plane
// for face, interpolating its clip-space position and attributes. first
// is the current triangle's first vertex, used for Flat attributes: Flat
// always takes the value from the triangle's first vertex, never from
// a or b.
func (c *renderCtx) intersectEdge(face int, first, a, b *GeometryVertex) *GeometryVertex {
	da := planeValue(face, a.Position)
	db := planeValue(face, b.Position)
	t := da / (da - db)

	v := &GeometryVertex{
		Position: a.Position.Lerp(b.Position, t),
		Attr:     c.arena.alloc(c.floatsPerVertex),
	}
	for i, rule := range c.rules {
		if rule == Flat {
			v.Attr[i] = first.Attr[i]
		} else {
			v.Attr[i] = a.Attr[i] + t*(b.Attr[i]-a.Attr[i])
		}
	}
	return v
}
