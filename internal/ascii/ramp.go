package ascii

import (
	"image"
	"strings"
)

// Ramp is the character ramp ordered from most ink to least ink. Dark
// samples map to the dense glyphs at the front, light samples to the blank
// at the end.
const Ramp = "@%#*+=-:. "

// CharFor returns the ramp character for a luminance sample.
// The index is s*len(Ramp)/256, which stays within the ramp for every uint8.
func CharFor(s uint8) byte {
	return Ramp[int(s)*len(Ramp)/256]
}

// MapPixels maps every sample of g to its ramp character in raster order
// (row-major, left to right, top to bottom). No line breaks are inserted.
func MapPixels(g *image.Gray) string {
	bounds := g.Bounds()
	var b strings.Builder
	b.Grow(bounds.Dx() * bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.WriteByte(CharFor(g.GrayAt(x, y).Y))
		}
	}
	return b.String()
}

// Reflow slices stream into consecutive lines of width characters. The last
// line may be shorter. Lines only line up with image rows when width is the
// column count the image was resized to.
func Reflow(stream string, width int) []string {
	if width <= 0 || len(stream) == 0 {
		return nil
	}

	lines := make([]string, 0, (len(stream)+width-1)/width)
	for i := 0; i < len(stream); i += width {
		end := i + width
		if end > len(stream) {
			end = len(stream)
		}
		lines = append(lines, stream[i:end])
	}
	return lines
}
