package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// CellAspectRatio is how much taller a monospace character cell is than it
// is wide. Row counts are divided by it so the text is not stretched
// vertically.
const CellAspectRatio = 1.7

// TargetHeight returns the number of character rows for an image of
// width×height pixels rendered newWidth columns wide.
//
// The result is round(newWidth * (height/width) / CellAspectRatio), capped at
// maxHeight. A non-empty image always gets at least one row, so very wide
// images still produce a line of output. An empty image (zero width or
// height) gets zero rows.
func TargetHeight(width, height, newWidth, maxHeight int) int {
	if width <= 0 || height <= 0 || newWidth <= 0 || maxHeight <= 0 {
		return 0
	}

	ratio := float64(height) / float64(width) / CellAspectRatio
	rows := int(math.Round(float64(newWidth) * ratio))
	if rows > maxHeight {
		rows = maxHeight
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Resize scales img to exactly newWidth columns and TargetHeight rows.
//
// The source is left untouched; the returned buffer is new and has its
// origin at (0,0). Resampling uses the Catmull-Rom (bicubic) filter. If the
// target grid is empty the result is an empty image.
func Resize(img image.Image, newWidth, maxHeight int) *image.NRGBA {
	bounds := img.Bounds()
	newHeight := TargetHeight(bounds.Dx(), bounds.Dy(), newWidth, maxHeight)
	if newHeight == 0 {
		return &image.NRGBA{}
	}

	return imaging.Resize(img, newWidth, newHeight, imaging.CatmullRom)
}
