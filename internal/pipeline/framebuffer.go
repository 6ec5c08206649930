package pipeline

import "math"

// depthSentinel is the "no fragment yet" depth value. The core uses
// float64 throughout, so this is the float64 analog of FLT_MAX rather
// than +Inf — matching the reference implementation bit-for-bit would
// require FLT_MAX specifically, and MaxFloat64 is the nearest value at
// this width.
const depthSentinel = math.MaxFloat64

// Framebuffer owns the color and depth grids for one render target.
// Color is RGBA8 interleaved (len = W*H*4); Depth is len = W*H. Row 0 is
// the bottom row of the image (origin bottom-left).
type Framebuffer struct {
	Width, Height int
	Color         []uint8
	Depth         []float64
}

// NewFramebuffer allocates and clears C to opaque black and D to the
// depth sentinel.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, errDimensions(w, h)
	}
	n := w * h
	fb := &Framebuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  make([]float64, n),
	}
	for i := 3; i < len(fb.Color); i += 4 {
		fb.Color[i] = 255 // opaque alpha; R,G,B already zero
	}
	for i := range fb.Depth {
		fb.Depth[i] = depthSentinel
	}
	return fb, nil
}

// Reset clears the framebuffer in place without reallocating, to the
// same initial state NewFramebuffer produces.
func (fb *Framebuffer) Reset() {
	for i := range fb.Color {
		fb.Color[i] = 0
	}
	for i := 3; i < len(fb.Color); i += 4 {
		fb.Color[i] = 255
	}
	for i := range fb.Depth {
		fb.Depth[i] = depthSentinel
	}
}

// setPixel writes one RGBA8 pixel at (x, y), row 0 at the bottom.
func (fb *Framebuffer) setPixel(x, y int, r, g, b, a uint8) {
	i := (y*fb.Width + x) * 4
	fb.Color[i] = r
	fb.Color[i+1] = g
	fb.Color[i+2] = b
	fb.Color[i+3] = a
}
