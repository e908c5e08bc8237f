package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Grayscale returns a single-channel copy of img.
//
// Each sample is the BT.601 luma of the source pixel,
// 0.299*R + 0.587*G + 0.114*B rounded to the nearest integer. Alpha is
// ignored. The result has the same dimensions as img with its origin at (0,0).
// Converting an already gray image returns identical samples.
func Grayscale(img image.Image) *image.Gray {
	src := imaging.Grayscale(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	// imaging.Grayscale leaves R == G == B, so the red byte is the luma.
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := range dstRow {
			dstRow[x] = srcRow[x*4]
		}
	}

	return dst
}
