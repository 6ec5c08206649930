package pipeline

import "clipraster/internal/mathutil"

// Uniform is the opaque per-draw-call parameter block. The pipeline
// passes it through to both shaders and never reads it.
type Uniform any

// VertexInput is the vertex shader's input: a caller-owned view of one
// vertex's F floats of per-vertex data.
type VertexInput struct {
	Attr []float64
}

// GeometryVertex is the vertex shader's output and the clipper/
// rasterizer's input: a clip-space position plus an owned attribute
// vector of length F. Every GeometryVertex alive between clipping and
// rasterization owns exactly one Attr slice — clipping never aliases an
// input vertex's buffer into an output vertex.
type GeometryVertex struct {
	Position mathutil.Vec4
	Attr     []float64
}

// FragmentInput is the pipeline-managed scratch buffer handed to the
// fragment shader: the interpolated attribute vector at one fragment.
type FragmentInput struct {
	Attr []float64
}

// FragmentOutput is the fragment shader's output: an RGBA color with
// channels in [0,1].
type FragmentOutput struct {
	R, G, B, A float64
}
