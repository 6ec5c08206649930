package pipeline

import "math"

// orient2D returns twice the signed area of triangle (a, b, c) in screen
// space; its sign gives the edge-function test used for barycentric
// coverage test.
func orient2D(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// rasterizeTriangle scan-converts one clip-space triangle that survived
// all six clipping planes: viewport transform, bounding box, barycentric
// coverage test, depth test, and fragment-shader invocation.
func (c *renderCtx) rasterizeTriangle(tri [3]*GeometryVertex) {
	w := float64(c.width)
	h := float64(c.height)

	var sx, sy, sz, sw [3]float64
	for i, v := range tri {
		p := v.Position
		sw[i] = p[3]
		sx[i] = (w/2)*(p[0]/p[3]) + w/2 - 0.5
		sy[i] = (h/2)*(p[1]/p[3]) + h/2 - 0.5
		sz[i] = p[2] / p[3]
	}

	minX := int(math.Floor(math.Min(sx[0], math.Min(sx[1], sx[2]))))
	maxX := int(math.Ceil(math.Max(sx[0], math.Max(sx[1], sx[2]))))
	minY := int(math.Floor(math.Min(sy[0], math.Min(sy[1], sy[2]))))
	maxY := int(math.Ceil(math.Max(sy[0], math.Max(sy[1], sy[2]))))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > c.width-1 {
		maxX = c.width - 1
	}
	if maxY > c.height-1 {
		maxY = c.height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area2 := orient2D(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area2 > -1e-12 && area2 < 1e-12 {
		return
	}
	invArea2 := 1.0 / area2

	fb := c.fb
	for py := minY; py <= maxY; py++ {
		pyc := float64(py)
		for px := minX; px <= maxX; px++ {
			pxc := float64(px)

			w0 := orient2D(sx[1], sy[1], sx[2], sy[2], pxc, pyc) * invArea2
			w1 := orient2D(sx[2], sy[2], sx[0], sy[0], pxc, pyc) * invArea2
			w2 := orient2D(sx[0], sy[0], sx[1], sy[1], pxc, pyc) * invArea2

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*sz[0] + w1*sz[1] + w2*sz[2]
			di := py*c.width + px
			if depth > fb.Depth[di] {
				continue
			}

			interpolateAttributes(c.scratchAttr, c.rules, tri[0].Attr, tri[1].Attr, tri[2].Attr, w0, w1, w2, sw[0], sw[1], sw[2])

			c.fragIn.Attr = c.scratchAttr
			c.fragOut.R, c.fragOut.G, c.fragOut.B, c.fragOut.A = 0, 0, 0, 0
			c.fragmentShader(&c.fragIn, &c.fragOut, c.uniform)

			fb.Depth[di] = depth
			fb.setPixel(px, py,
				clampChannel(c.fragOut.R),
				clampChannel(c.fragOut.G),
				clampChannel(c.fragOut.B),
				clampChannel(c.fragOut.A),
			)
		}
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
