package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestGrayscale_Luma(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  uint8
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"red", color.RGBA{255, 0, 0, 255}, 76},
		{"green", color.RGBA{0, 255, 0, 255}, 150},
		{"blue", color.RGBA{0, 0, 255, 255}, 29},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grayscale(fillImage(3, 2, tt.color))
			for i, v := range g.Pix {
				if v != tt.want {
					t.Fatalf("sample %d = %d, want %d", i, v, tt.want)
				}
			}
		})
	}
}

func TestGrayscale_SameDimensions(t *testing.T) {
	// Non-zero origin source
	src := image.NewRGBA(image.Rect(5, 7, 25, 17))
	g := Grayscale(src)

	if g.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Errorf("bounds: got %v, want (0,0)-(20,10)", g.Bounds())
	}
}

func TestGrayscale_Idempotent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), uint8((x + y) * 8), 255})
		}
	}

	once := Grayscale(src)
	twice := Grayscale(once)

	if once.Bounds() != twice.Bounds() {
		t.Fatalf("bounds changed: %v -> %v", once.Bounds(), twice.Bounds())
	}
	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatalf("sample %d changed on second pass: %d -> %d", i, once.Pix[i], twice.Pix[i])
		}
	}
}

func TestGrayscale_RowOrder(t *testing.T) {
	// Top row black, bottom row white
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		src.Set(x, 0, color.Black)
		src.Set(x, 1, color.White)
	}

	g := Grayscale(src)
	for x := 0; x < 4; x++ {
		if g.GrayAt(x, 0).Y != 0 {
			t.Errorf("(%d,0) = %d, want 0", x, g.GrayAt(x, 0).Y)
		}
		if g.GrayAt(x, 1).Y != 255 {
			t.Errorf("(%d,1) = %d, want 255", x, g.GrayAt(x, 1).Y)
		}
	}
}
