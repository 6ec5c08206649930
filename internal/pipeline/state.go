package pipeline

// State holds everything the caller configures before calling Render:
// the source geometry, shaders, uniform block, and per-attribute
// interpolation rules, plus the framebuffer allocated by
// InitializeRender.
type State struct {
	Framebuffer *Framebuffer

	VertexData      []float64 // N * FloatsPerVertex, flattened
	NumVertices     int
	FloatsPerVertex int

	IndexData   []int // 3 * NumTriangles, for Indexed only
	NumTriangles int

	UniformData Uniform
	InterpRules []InterpRule

	VertexShader   VertexShader
	FragmentShader FragmentShader
}

// NewState returns an empty, unconfigured State. The caller populates
// its fields and calls InitializeRender before the first Render.
func NewState() *State {
	return &State{}
}

// InitializeRender allocates the framebuffer for a W×H target, clearing
// color to opaque black and depth to the sentinel.
func (s *State) InitializeRender(w, h int) error {
	fb, err := NewFramebuffer(w, h)
	if err != nil {
		return err
	}
	s.Framebuffer = fb
	return nil
}

// renderCtx bundles the per-call state the clipper and rasterizer share;
// one is built fresh per Render call and threaded through recursion.
type renderCtx struct {
	fb              *Framebuffer
	width, height   int
	vertexShader    VertexShader
	fragmentShader  FragmentShader
	uniform         Uniform
	rules           []InterpRule
	floatsPerVertex int

	arena       *arena
	scratchAttr []float64
	fragIn      FragmentInput
	fragOut     FragmentOutput
}

// Render assembles rt's triangles from s's vertex/index data, clips and
// rasterizes each one, and writes covered, depth-passing fragments into
// s.Framebuffer. Primitives are processed in assembly order; every
// fragment of one primitive is written before any fragment of the next.
func (s *State) Render(rt RenderType) error {
	if s.Framebuffer == nil || s.VertexShader == nil || s.FragmentShader == nil {
		return ErrUninitialized
	}
	if s.FloatsPerVertex < 1 || s.FloatsPerVertex > MaxFloatsPerVertex {
		return ErrUninitialized
	}

	indexData := s.IndexData
	if rt == Indexed {
		indexData = s.IndexData[:3*s.NumTriangles]
	}
	triangles, err := triangleIndices(rt, s.NumVertices, indexData)
	if err != nil {
		return err
	}

	c := &renderCtx{
		fb:              s.Framebuffer,
		width:           s.Framebuffer.Width,
		height:          s.Framebuffer.Height,
		vertexShader:    s.VertexShader,
		fragmentShader:  s.FragmentShader,
		uniform:         s.UniformData,
		rules:           s.InterpRules,
		floatsPerVertex: s.FloatsPerVertex,
		arena:           newArena(64 * s.FloatsPerVertex),
		scratchAttr:     make([]float64, s.FloatsPerVertex),
	}

	return c.assembleAndClip(s, triangles)
}
