// Package pipeline implements the fixed-function core of a forward
// rasterization pipeline: primitive assembly, homogeneous-space clipping,
// perspective-correct attribute interpolation, and depth-buffered
// triangle scan conversion. Vertex and fragment shading are supplied by
// the caller; this package never inspects the uniform block it threads
// through them.
package pipeline

// MaxFloatsPerVertex bounds the per-vertex attribute vector length (F).
const MaxFloatsPerVertex = 32

// InterpRule selects how one attribute float is blended across a triangle.
type InterpRule uint8

const (
	// Flat takes the value from the triangle's first vertex.
	Flat InterpRule = iota
	// Smooth performs perspective-correct (w-divided) interpolation.
	Smooth
	// NoPerspective performs linear interpolation in screen space.
	NoPerspective
)

// RenderType selects how the primitive assembler walks vertex/index arrays.
type RenderType uint8

const (
	// List groups vertices as (0,1,2), (3,4,5), ...
	List RenderType = iota
	// Indexed reads triangles from an index array into the vertex array.
	Indexed
	// Fan groups vertices as (0,1,2), (0,2,3), (0,3,4), ...
	Fan
	// Strip groups vertices as (0,1,2), (1,2,3), (2,3,4), ... (winding not alternated).
	Strip
)
