package pipeline

import (
	"errors"
	"testing"

	"clipraster/internal/mathutil"
)

func passthroughVS(in *VertexInput, out *GeometryVertex, _ Uniform) {
	// in.Attr: x, y, z, w, then payload floats
	out.Position = mathutil.Vec4{in.Attr[0], in.Attr[1], in.Attr[2], in.Attr[3]}
	out.Attr = out.Attr[:0]
	out.Attr = append(out.Attr, in.Attr[4:]...)
}

func solidFS(r, g, b, a float64) FragmentShader {
	return func(_ *FragmentInput, out *FragmentOutput, _ Uniform) {
		out.R, out.G, out.B, out.A = r, g, b, a
	}
}

func newTestState(w, h, floatsPerVertex int, fs FragmentShader) *State {
	s := NewState()
	if err := s.InitializeRender(w, h); err != nil {
		panic(err)
	}
	s.FloatsPerVertex = floatsPerVertex
	s.VertexShader = passthroughVS
	s.FragmentShader = fs
	return s
}

func pixelAt(fb *Framebuffer, x, y int) (r, g, b, a uint8) {
	i := (y*fb.Width + x) * 4
	return fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]
}

// A render with no vertices touches no pixel: color stays opaque black,
// depth stays at the sentinel.
func TestRenderBlankLeavesFramebufferUntouched(t *testing.T) {
	s := newTestState(4, 4, 7, solidFS(1, 1, 1, 1))
	s.NumVertices = 0
	s.InterpRules = []InterpRule{Flat, Flat, Flat}

	if err := s.Render(List); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, c := range s.Framebuffer.Color {
		want := uint8(0)
		if i%4 == 3 {
			want = 255
		}
		if c != want {
			t.Fatalf("Color[%d] = %d, want %d", i, c, want)
		}
	}
	for _, d := range s.Framebuffer.Depth {
		if d != depthSentinel {
			t.Fatalf("Depth = %v, want sentinel", d)
		}
	}
}

// A single triangle covering the whole viewport paints every pixel with
// the fragment shader's flat color.
func TestRenderFullScreenTriangleFillsEveryPixel(t *testing.T) {
	const w, h = 8, 8
	s := newTestState(w, h, 4, solidFS(0.2, 0.4, 0.6, 1.0))
	s.InterpRules = []InterpRule{}
	s.NumVertices = 3
	s.FloatsPerVertex = 4
	s.VertexData = []float64{
		-4, -4, 0, 1,
		4, -4, 0, 1,
		0, 4, 0, 1,
	}

	if err := s.Render(List); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := pixelAt(s.Framebuffer, x, y)
			if r != clampChannel(0.2) || g != clampChannel(0.4) || b != clampChannel(0.6) || a != 255 {
				t.Fatalf("pixel (%d,%d) = %d,%d,%d,%d", x, y, r, g, b, a)
			}
		}
	}
}

// Of two overlapping triangles, only the nearer one's color survives,
// regardless of submission order. Each vertex carries its own z again as
// attribute 0 so the fragment shader can pick a color by depth without
// needing per-triangle state.
func TestRenderDepthTestKeepsNearerFragment(t *testing.T) {
	const w, h = 4, 4

	pack := func(z float64) []float64 {
		return []float64{
			-4, -4, z, 1, z,
			4, -4, z, 1, z,
			0, 4, z, 1, z,
		}
	}
	byDepth := func(in *FragmentInput, out *FragmentOutput, _ Uniform) {
		if in.Attr[0] < 0.5 {
			out.R, out.G, out.B, out.A = 1, 0, 0, 1 // near: red
		} else {
			out.R, out.G, out.B, out.A = 0, 0, 1, 1 // far: blue
		}
	}

	run := func(nearFirst bool) (r, g, b uint8) {
		s := newTestState(w, h, 5, byDepth)
		s.InterpRules = []InterpRule{NoPerspective}
		s.NumVertices = 6
		near, far := pack(0.1), pack(0.9)
		if nearFirst {
			s.VertexData = append(append([]float64{}, near...), far...)
		} else {
			s.VertexData = append(append([]float64{}, far...), near...)
		}
		if err := s.Render(List); err != nil {
			t.Fatalf("Render: %v", err)
		}
		r, g, b, _ = pixelAt(s.Framebuffer, w/2, h/2)
		return
	}

	r1, g1, b1 := run(true)
	r2, g2, b2 := run(false)
	if r1 != 255 || g1 != 0 || b1 != 0 {
		t.Fatalf("near-first center pixel = %d,%d,%d, want red", r1, g1, b1)
	}
	if r2 != 255 || g2 != 0 || b2 != 0 {
		t.Fatalf("far-first center pixel = %d,%d,%d, want red", r2, g2, b2)
	}
}

// Flat interpolation always takes the first vertex's attribute, never
// blending across the triangle.
func TestFlatInterpolationUsesFirstVertex(t *testing.T) {
	const w, h = 4, 4
	s := newTestState(w, h, 5, nil)
	s.InterpRules = []InterpRule{Flat}
	s.NumVertices = 3
	s.FloatsPerVertex = 5
	s.VertexData = []float64{
		-4, -4, 0, 1, 0.9,
		4, -4, 0, 1, 0.1,
		0, 4, 0, 1, 0.1,
	}
	s.FragmentShader = func(in *FragmentInput, out *FragmentOutput, _ Uniform) {
		out.R, out.G, out.B, out.A = in.Attr[0], in.Attr[0], in.Attr[0], 1
	}

	if err := s.Render(List); err != nil {
		t.Fatalf("Render: %v", err)
	}
	r, _, _, _ := pixelAt(s.Framebuffer, w/2, h/2)
	if r != clampChannel(0.9) {
		t.Fatalf("center pixel = %d, want flat first-vertex value %d", r, clampChannel(0.9))
	}
}

// NoPerspective interpolation blends the attribute across the triangle
// (every w is 1 here): a pixel inside the triangle, away from its
// vertices, receives a value strictly between the vertex values 0 and 1.
func TestNoPerspectiveInterpolatesInteriorPixel(t *testing.T) {
	const w, h = 16, 16
	s := newTestState(w, h, 5, nil)
	s.InterpRules = []InterpRule{NoPerspective}
	s.NumVertices = 3
	s.FloatsPerVertex = 5
	s.VertexData = []float64{
		-4, -4, 0, 1, 0,
		4, -4, 0, 1, 1,
		0, 4, 0, 1, 0,
	}
	s.FragmentShader = func(in *FragmentInput, out *FragmentOutput, _ Uniform) {
		out.R, out.G, out.B, out.A = in.Attr[0], in.Attr[0], in.Attr[0], 1
	}
	if err := s.Render(List); err != nil {
		t.Fatalf("Render: %v", err)
	}
	cx, cy := w/2, h*3/8
	r, _, _, _ := pixelAt(s.Framebuffer, cx, cy)
	if r == 0 || r == 255 {
		t.Fatalf("centroid pixel = %d, want an interpolated mid-range value", r)
	}
}

// A triangle straddling the near plane is clipped before rasterization;
// the surviving geometry still paints the on-screen portion and leaves
// the rest of the framebuffer untouched.
func TestClipThenRasterizeStraddlingTriangle(t *testing.T) {
	const w, h = 8, 8
	s := newTestState(w, h, 4, solidFS(1, 1, 1, 1))
	s.InterpRules = []InterpRule{}
	s.NumVertices = 3
	s.FloatsPerVertex = 4
	s.VertexData = []float64{
		-1, -1, -2, 1, // behind the near plane (z < -w); gets clipped away
		-1, 1, 0.5, 1, // inside every plane
		1, 0, 0.5, 1, // inside every plane
	}

	if err := s.Render(List); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var painted int
	for px := 0; px < w*h; px++ {
		if s.Framebuffer.Color[px*4] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatalf("expected some pixels painted after clipping, got none")
	}
	if painted == w*h {
		t.Fatalf("expected clipping to leave part of the framebuffer unpainted, got full coverage")
	}
}

// Indexed render_type rejects an out-of-range index and aborts the whole
// call without touching the framebuffer.
func TestIndexedOutOfRangeIndexAbortsWithoutPainting(t *testing.T) {
	const w, h = 4, 4
	s := newTestState(w, h, 4, solidFS(1, 1, 1, 1))
	s.InterpRules = []InterpRule{}
	s.NumVertices = 3
	s.FloatsPerVertex = 4
	s.VertexData = []float64{
		-4, -4, 0, 1,
		4, -4, 0, 1,
		0, 4, 0, 1,
	}
	s.IndexData = []int{0, 1, 5}
	s.NumTriangles = 1

	err := s.Render(Indexed)
	if !errors.Is(err, ErrOutOfRangeIndex) {
		t.Fatalf("Render err = %v, want ErrOutOfRangeIndex", err)
	}
	for i, c := range s.Framebuffer.Color {
		want := uint8(0)
		if i%4 == 3 {
			want = 255
		}
		if c != want {
			t.Fatalf("Color[%d] = %d, want untouched %d", i, c, want)
		}
	}
}

// Fan and Strip render_types over the same N vertices both assemble
// N-2 triangles (Fan anchors every triangle at vertex 0, Strip slides a
// window of three consecutive vertices).
func TestFanAndStripProduceSameTriangleCount(t *testing.T) {
	numVertices := 6
	fanTris, err := triangleIndices(Fan, numVertices, nil)
	if err != nil {
		t.Fatalf("Fan: %v", err)
	}
	stripTris, err := triangleIndices(Strip, numVertices, nil)
	if err != nil {
		t.Fatalf("Strip: %v", err)
	}
	if len(fanTris) != len(stripTris) {
		t.Fatalf("Fan produced %d triangles, Strip produced %d", len(fanTris), len(stripTris))
	}
	if len(fanTris) != numVertices-2 {
		t.Fatalf("Fan triangle count = %d, want %d", len(fanTris), numVertices-2)
	}
}

func TestRenderRejectsUninitializedState(t *testing.T) {
	s := NewState()
	if err := s.Render(List); !errors.Is(err, ErrUninitialized) {
		t.Fatalf("err = %v, want ErrUninitialized", err)
	}
}

func TestInitializeRenderRejectsInvalidDimensions(t *testing.T) {
	s := NewState()
	if err := s.InitializeRender(0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	if err := s.InitializeRender(4, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}
