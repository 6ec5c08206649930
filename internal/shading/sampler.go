package shading

import (
	"image"
	"math"
)

// SampleTexture reads tex at (u, v) with repeat wrapping and bilinear
// filtering: the two texel rows bracketing the sample point are each
// blended horizontally, then the results are blended vertically.
// Returns RGBA as uint8, reading tex.Pix directly.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u -= math.Floor(u)
	v -= math.Floor(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	ix := int(fx)
	iy := int(fy)
	tx := fx - float64(ix)
	ty := fy - float64(iy)

	// Neighbor texels wrap around the far edge.
	ix1 := ix + 1
	if ix1 == w {
		ix1 = 0
	}
	iy1 := iy + 1
	if iy1 == h {
		iy1 = 0
	}

	rowTop := iy * tex.Stride
	rowBot := iy1 * tex.Stride
	pix := tex.Pix

	var out [4]uint8
	for k := 0; k < 4; k++ {
		top := lerp(float64(pix[rowTop+ix*4+k]), float64(pix[rowTop+ix1*4+k]), tx)
		bot := lerp(float64(pix[rowBot+ix*4+k]), float64(pix[rowBot+ix1*4+k]), tx)
		out[k] = uint8(lerp(top, bot, ty) + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
