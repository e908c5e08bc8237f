// Package imaging provides the image stages of the ASCII conversion pipeline.
//
// It covers loading an image from disk, resizing it onto a character grid,
// and reducing it to a single luminance channel. All operations work with
// standard Go image.Image types and use a coordinate system where (0,0) is at
// the top-left corner, X increases rightward, and Y increases downward.
//
// # Pipeline Stages
//
//   - Load: decode PNG, JPEG, GIF, BMP, TIFF or WebP from a path
//   - Resize: scale to a column count and a capped, aspect-compensated row count
//   - Grayscale: BT.601 luma into an *image.Gray
//
// Each stage returns a new buffer and never modifies its input.
//
// # Thread Safety
//
// All functions are stateless and can be called concurrently on different
// images.
//
// # Error Handling
//
// Only the loader can fail. Its errors wrap the underlying I/O or decode
// error with %w, so callers can use errors.Is (e.g. with fs.ErrNotExist).
package imaging
