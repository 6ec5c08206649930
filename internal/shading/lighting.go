package shading

import (
	"math"

	"clipraster/internal/mathutil"
)

// LightRig is the demo's fixed three-light setup: a key light over the
// camera's right shoulder, a cooler rim light from behind, and a
// sky-to-ground hemisphere fill. Directions point toward the light and
// are unit length.
type LightRig struct {
	Key       mathutil.Vec3
	Rim       mathutil.Vec3
	Half      mathutil.Vec3 // Blinn-Phong half vector for the key light
	Ambient   float64
	Fill      float64
	KeyWeight float64
	RimWeight float64
	Spec      float64
	Shininess float64
	Exposure  float64
	InvGamma  float64
}

// DefaultRig returns the rig every demo scene renders under.
func DefaultRig() LightRig {
	key := mathutil.Vec3{0.5, 0.9, 0.6}.Normalize()
	rim := mathutil.Vec3{-0.6, 0.25, -0.75}.Normalize()
	toEye := mathutil.Vec3{0, 0, 1} // camera looks down -z in view space

	return LightRig{
		Key:       key,
		Rim:       rim,
		Half:      key.Add(toEye).Normalize(),
		Ambient:   0.30,
		Fill:      0.35,
		KeyWeight: 1.20,
		RimWeight: 0.40,
		Spec:      0.50,
		Shininess: 24,
		Exposure:  1.10,
		InvGamma:  1 / srgbGamma,
	}
}

// Shade returns the scalar light intensity falling on a surface with
// the given unit normal. Diffuse terms are double-sided (abs) so back
// faces of open meshes don't render black.
func (lr *LightRig) Shade(n mathutil.Vec3) float64 {
	diffuse := math.Abs(n.Dot(lr.Key))*lr.KeyWeight + math.Abs(n.Dot(lr.Rim))*lr.RimWeight

	// Hemisphere fill: full sky weight straight up, fading to nothing
	// straight down.
	fill := lr.Fill * 0.5 * (1 + n[1])

	ndh := n.Dot(lr.Half)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lr.Shininess) * lr.Spec

	return lr.Ambient + diffuse + fill + spec
}

const srgbGamma = 2.2

// srgbToLinear maps an 8-bit sRGB channel to linear light, precomputed
// so texture sampling stays off the math.Pow path.
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = math.Pow(float64(i)/255, srgbGamma)
	}
}

// ACESTonemap compresses a linear HDR value into [0,1] with the
// Narkowicz polynomial fit of the ACES filmic curve, clamped to [0,1].
func ACESTonemap(x float64) float64 {
	y := (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
	return math.Min(1, math.Max(0, y))
}
