// Package post converts rendered framebuffers into images and applies
// the output-side processing the demo pipeline wants: additive
// compositing, supersample downsampling, and crop-to-content framing.
package post

import (
	"image"

	"clipraster/internal/pipeline"
)

// FromFramebuffer copies a framebuffer into an NRGBA image. The
// framebuffer stores row 0 at the bottom; image.NRGBA stores row 0 at
// the top, so rows are reversed during the copy.
func FromFramebuffer(fb *pipeline.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	rowLen := fb.Width * 4
	for y := 0; y < fb.Height; y++ {
		src := (fb.Height - 1 - y) * rowLen
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowLen], fb.Color[src:src+rowLen])
	}
	return img
}

// BlendAdditive adds src onto dst channel-wise with saturation, leaving
// dst's alpha untouched. Both images must share dimensions.
func BlendAdditive(dst, src *image.NRGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			di := dst.PixOffset(x, y)
			si := src.PixOffset(x, y)
			for k := 0; k < 3; k++ {
				v := int(dst.Pix[di+k]) + int(src.Pix[si+k])
				if v > 255 {
					v = 255
				}
				dst.Pix[di+k] = uint8(v)
			}
		}
	}
}
