// Package ascii turns images into blocks of text.
//
// Converter drives the pipeline from internal/imaging (load, resize,
// grayscale) and then maps every luminance sample onto Ramp and reflows the
// characters into lines:
//
//	conv := ascii.NewConverter(logger)
//	text := conv.ImageToASCII("photo.jpg", 100, ascii.MaxRows)
//
// ImageToASCII logs failures and returns "". Convert returns the error
// instead, along with the grid shape.
package ascii
