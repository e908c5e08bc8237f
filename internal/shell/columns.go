package shell

import "github.com/ironsheep/img2ascii/internal/ascii"

// Columns estimates how many monospace characters fit across a display area.
//
// displayWidth and glyphWidth are in the same units (fyne device-independent
// pixels). If either is not positive, for example before the window has been
// laid out, ascii.DefaultColumns is returned. Otherwise the result is at
// least 1.
func Columns(displayWidth, glyphWidth float32) int {
	if displayWidth <= 0 || glyphWidth <= 0 {
		return ascii.DefaultColumns
	}
	n := int(displayWidth / glyphWidth)
	if n < 1 {
		n = 1
	}
	return n
}
