// Package shading supplies the shader callbacks the pipeline core treats
// as opaque: a model-view-projection vertex shader and a family of
// fragment shaders (lit, textured, emissive) sharing one lighting model.
package shading

import (
	"image"
	"math"

	"clipraster/internal/mathutil"
	"clipraster/internal/pipeline"
)

// Per-vertex input layout: position, normal, color, texture coordinate.
const (
	InPos    = 0
	InNormal = 3
	InColor  = 6
	InUV     = 9
	Stride   = 11
)

// Geometry attribute layout written by TransformVertex: world-space
// normal, vertex color, texture coordinate.
const (
	AttrNormal = 0
	AttrColor  = 3
	AttrUV     = 6
	AttrCount  = 8
)

// Uniforms is the per-draw parameter block shared by the vertex and
// fragment shaders. The pipeline passes it through untouched.
type Uniforms struct {
	MVP          mathutil.Mat4
	NormalMatrix mathutil.Mat3 // inverse-transpose of the model rotation
	Light        LightRig
	Tex          *image.NRGBA
}

// Rules returns the interpolation rules matching the geometry attribute
// layout: everything perspective-correct.
func Rules() []pipeline.InterpRule {
	rules := make([]pipeline.InterpRule, AttrCount)
	for i := range rules {
		rules[i] = pipeline.Smooth
	}
	return rules
}

// TransformVertex projects the model-space position through the MVP
// matrix and forwards normal, color, and UV to the rasterizer.
func TransformVertex(in *pipeline.VertexInput, out *pipeline.GeometryVertex, uniform pipeline.Uniform) {
	u := uniform.(*Uniforms)

	p := mathutil.Vec4{in.Attr[InPos], in.Attr[InPos+1], in.Attr[InPos+2], 1}
	out.Position = u.MVP.MulVec4(p)

	n := u.NormalMatrix.MulVec3(mathutil.Vec3{
		in.Attr[InNormal], in.Attr[InNormal+1], in.Attr[InNormal+2],
	}).Normalize()

	out.Attr[AttrNormal] = n[0]
	out.Attr[AttrNormal+1] = n[1]
	out.Attr[AttrNormal+2] = n[2]
	out.Attr[AttrColor] = in.Attr[InColor]
	out.Attr[AttrColor+1] = in.Attr[InColor+1]
	out.Attr[AttrColor+2] = in.Attr[InColor+2]
	out.Attr[AttrUV] = in.Attr[InUV]
	out.Attr[AttrUV+1] = in.Attr[InUV+1]
}

// LitFragment shades the interpolated vertex color with the studio
// lights, tone maps, and gamma encodes.
func LitFragment(in *pipeline.FragmentInput, out *pipeline.FragmentOutput, uniform pipeline.Uniform) {
	u := uniform.(*Uniforms)

	n := mathutil.Vec3{in.Attr[AttrNormal], in.Attr[AttrNormal+1], in.Attr[AttrNormal+2]}.Normalize()
	shade := u.Light.Shade(n) * u.Light.Exposure

	out.R = encode(in.Attr[AttrColor]*shade, u.Light.InvGamma)
	out.G = encode(in.Attr[AttrColor+1]*shade, u.Light.InvGamma)
	out.B = encode(in.Attr[AttrColor+2]*shade, u.Light.InvGamma)
	out.A = 1
}

// TexturedFragment samples the uniform texture at the interpolated UV,
// modulates it by the vertex color, then lights it like LitFragment.
// Falls back to LitFragment when no texture is bound.
func TexturedFragment(in *pipeline.FragmentInput, out *pipeline.FragmentOutput, uniform pipeline.Uniform) {
	u := uniform.(*Uniforms)
	if u.Tex == nil {
		LitFragment(in, out, uniform)
		return
	}

	tr, tg, tb, ta := SampleTexture(u.Tex, in.Attr[AttrUV], in.Attr[AttrUV+1])

	n := mathutil.Vec3{in.Attr[AttrNormal], in.Attr[AttrNormal+1], in.Attr[AttrNormal+2]}.Normalize()
	shade := u.Light.Shade(n) * u.Light.Exposure

	out.R = encode(srgbToLinear[tr]*in.Attr[AttrColor]*shade, u.Light.InvGamma)
	out.G = encode(srgbToLinear[tg]*in.Attr[AttrColor+1]*shade, u.Light.InvGamma)
	out.B = encode(srgbToLinear[tb]*in.Attr[AttrColor+2]*shade, u.Light.InvGamma)
	out.A = float64(ta) / 255
}

// EmissiveFragment emits the interpolated vertex color unlit. Used for
// the glow pass, whose frame is composited additively over the base
// frame after rendering.
func EmissiveFragment(in *pipeline.FragmentInput, out *pipeline.FragmentOutput, _ pipeline.Uniform) {
	out.R = in.Attr[AttrColor]
	out.G = in.Attr[AttrColor+1]
	out.B = in.Attr[AttrColor+2]
	out.A = 1
}

// encode tone maps a linear channel and gamma encodes it to [0,1].
func encode(linear, invGamma float64) float64 {
	return math.Pow(ACESTonemap(linear), invGamma)
}
