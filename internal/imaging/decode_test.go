package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/maze-solver/internal/maze"
)

func TestToLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 6))
	img.Set(5, 5, color.Black)
	img.Set(6, 5, color.White)
	img.Set(7, 5, color.RGBA{255, 0, 0, 255})

	lum := ToLuminance(img)
	if b := lum.Bounds(); b.Min != (image.Point{}) || b.Dx() != 3 || b.Dy() != 1 {
		t.Fatalf("bounds: got %v, want (0,0)-(3,1)", b)
	}

	tests := []struct {
		x    int
		want uint8
	}{
		{0, 0},
		{1, 255},
		{2, 76}, // 0.299 * 255
	}
	for _, tt := range tests {
		if got := lum.GrayAt(tt.x, 0).Y; got != tt.want {
			t.Errorf("luminance at x=%d: got %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestDecodeGrid_Strict(t *testing.T) {
	g, err := DecodeGrid(mazeImage(
		"##.....##",
		"#.......#",
		"##.....##",
	), DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}

	if g.Width() != 9 || g.Height() != 3 {
		t.Fatalf("grid size: got %dx%d, want 9x3", g.Width(), g.Height())
	}
	if g.At(maze.Point{X: 0, Y: 0}) != maze.Wall {
		t.Error("(0,0) should be a wall")
	}
	if g.At(maze.Point{X: 2, Y: 0}) != maze.Passable {
		t.Error("(2,0) should be passable")
	}
	if g.PassableCount() != 17 {
		t.Errorf("PassableCount: got %d, want 17", g.PassableCount())
	}
}

func TestDecodeGrid_RejectsGray(t *testing.T) {
	_, err := DecodeGrid(mazeImage(
		"#....",
		"#..?.",
	), DecodeOptions{})
	if !errors.Is(err, ErrNotBitonic) {
		t.Fatalf("expected ErrNotBitonic, got %v", err)
	}
}

func TestDecodeGrid_Threshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	img.SetGray(0, 0, color.Gray{Y: 10})
	img.SetGray(1, 0, color.Gray{Y: 100})
	img.SetGray(2, 0, color.Gray{Y: 200})
	img.SetGray(3, 0, color.Gray{Y: 250})

	g, err := DecodeGrid(img, DecodeOptions{Threshold: 128})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}

	want := []maze.Cell{maze.Wall, maze.Wall, maze.Passable, maze.Passable}
	for x, c := range want {
		if got := g.At(maze.Point{X: x, Y: 0}); got != c {
			t.Errorf("cell %d: got %v, want %v", x, got, c)
		}
	}
}

func TestDecodeGrid_InvalidThreshold(t *testing.T) {
	for _, th := range []int{-1, 256} {
		_, err := DecodeGrid(mazeImage("#."), DecodeOptions{Threshold: th})
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %d: expected ErrInvalidThreshold, got %v", th, err)
		}
	}
}

func TestDecodeGrid_Empty(t *testing.T) {
	_, err := DecodeGrid(image.NewGray(image.Rect(0, 0, 0, 0)), DecodeOptions{})
	if !errors.Is(err, maze.ErrEmptyGrid) {
		t.Fatalf("expected maze.ErrEmptyGrid, got %v", err)
	}
}

func TestLoadGrid_Solvable(t *testing.T) {
	cache := NewImageCache()
	path := writePNG(t, "maze.png", mazeImage(
		"##.....##",
		"#.......#",
		"#.#####.#",
		"#.......#",
		"##.....##",
	))

	g, err := LoadGrid(cache, path, DecodeOptions{})
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	start, end, err := maze.FindEndpoints(g, maze.DefaultRowsToScan)
	if err != nil {
		t.Fatalf("FindEndpoints failed: %v", err)
	}
	if start != (maze.Point{X: 2, Y: 0}) || end != (maze.Point{X: 2, Y: 4}) {
		t.Errorf("endpoints: got %v %v, want (2, 0) (2, 4)", start, end)
	}
}

func TestLoadGrid_Errors(t *testing.T) {
	cache := NewImageCache()
	if _, err := LoadGrid(cache, "/nonexistent/maze.png", DecodeOptions{}); err == nil {
		t.Error("LoadGrid should fail for non-existent file")
	}

	path := writePNG(t, "gray.png", mazeImage("#?"))
	if _, err := LoadGrid(cache, path, DecodeOptions{}); !errors.Is(err, ErrNotBitonic) {
		t.Errorf("expected ErrNotBitonic, got %v", err)
	}
}
