// Package shell implements the desktop window for img2ascii.
//
// The window has a "Select Image" button and a scrollable monospace text
// area. Picking a file converts it with a column count estimated from the
// text area's width (see Columns) and at most ascii.MaxRows lines, then
// replaces the text area's content with the result. The text area stays
// editable so the art can be tweaked or copied.
package shell
