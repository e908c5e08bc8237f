package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"testing"

	"golang.org/x/image/bmp"
)

// fillImage returns a width×height RGBA image filled with c.
func fillImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// writeTestImage encodes img with enc into a temp file and returns its path.
// The file is removed when the test ends.
func writeTestImage(t *testing.T, pattern string, img image.Image, enc func(io.Writer, image.Image) error) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if err := enc(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

// createTestImage creates a solid PNG and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writeTestImage(t, "test-image-*.png", fillImage(width, height, c), png.Encode)
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 100, 60, color.RGBA{255, 0, 0, 255})

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img == nil {
		t.Fatal("Load returned nil image")
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x60", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_Formats(t *testing.T) {
	src := fillImage(16, 8, color.RGBA{0, 0, 255, 255})

	tests := []struct {
		name    string
		pattern string
		enc     func(io.Writer, image.Image) error
	}{
		{"png", "fmt-*.png", png.Encode},
		{"jpeg", "fmt-*.jpg", func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }},
		{"gif", "fmt-*.gif", func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }},
		{"bmp", "fmt-*.bmp", bmp.Encode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestImage(t, tt.pattern, src, tt.enc)

			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
				t.Errorf("unexpected dimensions: got %dx%d, want 16x8", img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error wrapping fs.ErrNotExist, got %v", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("not an image")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	_, err = Load(tmpFile.Name())
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected error wrapping image.ErrFormat, got %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	imgPath := createTestImage(t, 120, 45, color.RGBA{0, 255, 0, 255})

	info, err := LoadImageInfo(imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 120 {
		t.Errorf("Width: got %d, want 120", info.Width)
	}
	if info.Height != 45 {
		t.Errorf("Height: got %d, want 45", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}

	stat, _ := os.Stat(imgPath)
	if info.FileSizeBytes != stat.Size() {
		t.Errorf("FileSizeBytes: got %d, want %d", info.FileSizeBytes, stat.Size())
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	_, err := LoadImageInfo("/nonexistent/image.png")
	if err == nil {
		t.Error("LoadImageInfo should fail for non-existent file")
	}
}
