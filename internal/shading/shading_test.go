package shading

import (
	"image"
	"math"
	"testing"

	"clipraster/internal/mathutil"
	"clipraster/internal/pipeline"
)

func TestShadeIsPositiveForAnyNormal(t *testing.T) {
	rig := DefaultRig()
	normals := []mathutil.Vec3{
		{0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {0, 0, 1},
		mathutil.Vec3{1, 1, 1}.Normalize(),
		mathutil.Vec3{-1, 0.2, -0.7}.Normalize(),
	}
	for _, n := range normals {
		if shade := rig.Shade(n); shade <= 0 {
			t.Errorf("Shade(%v) = %v, want > 0", n, shade)
		}
	}
}

func TestACESTonemapIsMonotoneAndBounded(t *testing.T) {
	prev := ACESTonemap(0)
	if prev < 0 {
		t.Fatalf("ACESTonemap(0) = %v, want >= 0", prev)
	}
	for x := 0.05; x <= 4.0; x += 0.05 {
		y := ACESTonemap(x)
		if y < prev {
			t.Fatalf("ACESTonemap not monotone at x=%v: %v < %v", x, y, prev)
		}
		prev = y
	}
	if y := ACESTonemap(1); y > 1.01 {
		t.Errorf("ACESTonemap(1) = %v, want ~<= 1", y)
	}
}

func TestSampleTextureUniformImage(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i] = 40
		tex.Pix[i+1] = 80
		tex.Pix[i+2] = 120
		tex.Pix[i+3] = 255
	}
	for _, uv := range [][2]float64{{0, 0}, {0.5, 0.5}, {0.99, 0.99}, {-0.25, 1.75}} {
		r, g, b, a := SampleTexture(tex, uv[0], uv[1])
		if r != 40 || g != 80 || b != 120 || a != 255 {
			t.Errorf("SampleTexture(%v) = %d,%d,%d,%d, want 40,80,120,255", uv, r, g, b, a)
		}
	}
}

func TestSampleTextureBlendsBetweenTexels(t *testing.T) {
	// 2×1: black then white. Halfway in u lands between the two texels.
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.Pix[3] = 255
	tex.Pix[4], tex.Pix[5], tex.Pix[6], tex.Pix[7] = 255, 255, 255, 255

	r, _, _, _ := SampleTexture(tex, 0.5, 0)
	if r < 100 || r > 155 {
		t.Errorf("midpoint sample = %d, want a mid-gray blend", r)
	}
}

func TestTransformVertexProjectsAndForwardsAttributes(t *testing.T) {
	u := &Uniforms{
		MVP:          mathutil.Mat4Identity(),
		NormalMatrix: mathutil.Mat3Identity(),
		Light:        DefaultRig(),
	}
	in := &pipeline.VertexInput{Attr: []float64{
		0.25, -0.5, 0.75, // position
		0, 0, 2, // normal (unnormalized on purpose)
		0.1, 0.2, 0.3, // color
		0.6, 0.7, // uv
	}}
	out := &pipeline.GeometryVertex{Attr: make([]float64, Stride)}

	TransformVertex(in, out, u)

	want := mathutil.Vec4{0.25, -0.5, 0.75, 1}
	if out.Position != want {
		t.Errorf("Position = %v, want %v", out.Position, want)
	}
	if out.Attr[AttrNormal+2] != 1 {
		t.Errorf("normal z = %v, want normalized 1", out.Attr[AttrNormal+2])
	}
	if out.Attr[AttrColor] != 0.1 || out.Attr[AttrUV+1] != 0.7 {
		t.Errorf("attributes not forwarded: %v", out.Attr)
	}
}

func TestLitFragmentStaysInRange(t *testing.T) {
	u := &Uniforms{Light: DefaultRig()}
	in := &pipeline.FragmentInput{Attr: make([]float64, AttrCount)}
	in.Attr[AttrNormal+1] = 1 // straight-up normal
	in.Attr[AttrColor] = 1
	in.Attr[AttrColor+1] = 0.5
	in.Attr[AttrColor+2] = 0.25

	var out pipeline.FragmentOutput
	LitFragment(in, &out, u)

	for i, ch := range []float64{out.R, out.G, out.B, out.A} {
		if ch < 0 || ch > 1 || math.IsNaN(ch) {
			t.Errorf("channel %d = %v, want [0,1]", i, ch)
		}
	}
	// Brighter input stays brighter through tonemap and gamma.
	if !(out.R > out.G && out.G > out.B) {
		t.Errorf("channel ordering lost: R=%v G=%v B=%v", out.R, out.G, out.B)
	}
}

func TestEmissiveFragmentPassesColorThrough(t *testing.T) {
	in := &pipeline.FragmentInput{Attr: make([]float64, AttrCount)}
	in.Attr[AttrColor] = 0.9
	in.Attr[AttrColor+1] = 0.1

	var out pipeline.FragmentOutput
	EmissiveFragment(in, &out, nil)

	if out.R != 0.9 || out.G != 0.1 || out.B != 0 || out.A != 1 {
		t.Errorf("EmissiveFragment = %v, want unlit passthrough", out)
	}
}

func TestTexturedFragmentFallsBackWithoutTexture(t *testing.T) {
	u := &Uniforms{Light: DefaultRig()}
	in := &pipeline.FragmentInput{Attr: make([]float64, AttrCount)}
	in.Attr[AttrNormal+1] = 1
	in.Attr[AttrColor] = 0.5
	in.Attr[AttrColor+1] = 0.5
	in.Attr[AttrColor+2] = 0.5

	var lit, textured pipeline.FragmentOutput
	LitFragment(in, &lit, u)
	TexturedFragment(in, &textured, u)

	if lit != textured {
		t.Errorf("TexturedFragment without texture = %v, want LitFragment's %v", textured, lit)
	}
}

func TestRulesMatchAttributeLayout(t *testing.T) {
	rules := Rules()
	if len(rules) != AttrCount {
		t.Fatalf("len(Rules()) = %d, want %d", len(rules), AttrCount)
	}
	for i, r := range rules {
		if r != pipeline.Smooth {
			t.Errorf("rule %d = %v, want Smooth", i, r)
		}
	}
}
