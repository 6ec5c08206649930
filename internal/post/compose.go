package post

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// CropAndCenter crops to the bounding box of lit pixels, then scales the
// result to fillRatio of a square canvas and centers it. The pipeline
// clears its framebuffer to opaque black, so "content" means any pixel
// with a non-zero color channel.
func CropAndCenter(img *image.NRGBA, size int, fillRatio float64) *image.NRGBA {
	cropped := cropContent(img)
	return scaleAndCenter(cropped, size, fillRatio)
}

func cropContent(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	minX, minY := w, h
	maxX, maxY := 0, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			if img.Pix[i] > 0 || img.Pix[i+1] > 0 || img.Pix[i+2] > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX <= minX || maxY <= minY {
		return img
	}

	cropW := maxX - minX + 1
	cropH := maxY - minY + 1
	cropped := image.NewNRGBA(image.Rect(0, 0, cropW, cropH))
	for y := 0; y < cropH; y++ {
		srcOff := (minY+y)*img.Stride + minX*4
		dstOff := y * cropped.Stride
		copy(cropped.Pix[dstOff:dstOff+cropW*4], img.Pix[srcOff:srcOff+cropW*4])
	}
	return cropped
}

func scaleAndCenter(img *image.NRGBA, canvasSize int, fillRatio float64) *image.NRGBA {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return image.NewNRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	}

	// Scale to fit within fillRatio of canvas
	maxDim := float64(canvasSize) * fillRatio
	scaleF := maxDim / math.Max(float64(srcW), float64(srcH))
	newW := int(float64(srcW)*scaleF + 0.5)
	newH := int(float64(srcH)*scaleF + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	// Resize
	scaled := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	// Center on canvas
	canvas := image.NewNRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	offX := (canvasSize - newW) / 2
	offY := (canvasSize - newH) / 2
	for y := 0; y < newH; y++ {
		if offY+y < 0 || offY+y >= canvasSize {
			continue
		}
		srcOff := y * scaled.Stride
		dstOff := (offY+y)*canvas.Stride + offX*4
		copyLen := newW * 4
		if offX+newW > canvasSize {
			copyLen = (canvasSize - offX) * 4
		}
		if offX >= 0 && copyLen > 0 {
			copy(canvas.Pix[dstOff:dstOff+copyLen], scaled.Pix[srcOff:srcOff+copyLen])
		}
	}

	return canvas
}

// FlipHorizontal mirrors an image left-to-right.
func FlipHorizontal(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := y * img.Stride
		dstOff := y * out.Stride
		for x := 0; x < w; x++ {
			mx := w - 1 - x
			si := srcOff + mx*4
			di := dstOff + x*4
			out.Pix[di] = img.Pix[si]
			out.Pix[di+1] = img.Pix[si+1]
			out.Pix[di+2] = img.Pix[si+2]
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}
