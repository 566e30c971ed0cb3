package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/maze-solver/internal/maze"
)

const (
	wallLuminance     = 0
	passableLuminance = 255
)

var (
	// ErrNotBitonic is returned by strict decoding when a pixel is neither
	// pure black nor pure white.
	ErrNotBitonic = errors.New("imaging: image is not bitonic")

	// ErrInvalidThreshold indicates a threshold outside 0-255.
	ErrInvalidThreshold = errors.New("imaging: threshold must be between 0 and 255")
)

// DecodeOptions controls how luminance is mapped onto grid cells.
type DecodeOptions struct {
	// Threshold selects binarization. 0 keeps strict mode: only luminance 0
	// and 255 are accepted. 1-255 classifies luminance >= Threshold as
	// passable and everything darker as wall.
	Threshold int
}

// ToLuminance converts img to an 8-bit luminance image using ITU-R BT.601
// weights (0.299*R + 0.587*G + 0.114*B), the same conversion image editors
// use for "grayscale" mode. The result's bounds start at (0,0).
func ToLuminance(img image.Image) *image.Gray {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	lum := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+bounds.Dx()*4]
		dst := lum.Pix[y*lum.Stride : y*lum.Stride+bounds.Dx()]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return lum
}

// DecodeGrid maps img onto a maze grid, one cell per pixel.
//
// # Errors
//
//   - ErrInvalidThreshold if opts.Threshold is outside 0-255
//   - ErrNotBitonic in strict mode when any pixel luminance is not 0 or 255;
//     the message names the first offending pixel in row-major order
//   - maze.ErrEmptyGrid for a zero-sized image
func DecodeGrid(img image.Image, opts DecodeOptions) (*maze.Grid, error) {
	if opts.Threshold < 0 || opts.Threshold > 255 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, opts.Threshold)
	}

	var lum *image.Gray
	if opts.Threshold > 0 {
		lum = segment.Threshold(img, uint8(opts.Threshold))
	} else {
		lum = ToLuminance(img)
	}

	bounds := lum.Bounds()
	rows := make([][]maze.Cell, bounds.Dy())
	for y := range rows {
		rows[y] = make([]maze.Cell, bounds.Dx())
		for x := range rows[y] {
			v := lum.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
			switch v {
			case wallLuminance:
				rows[y][x] = maze.Wall
			case passableLuminance:
				rows[y][x] = maze.Passable
			default:
				return nil, fmt.Errorf("%w: luminance %d at (%d,%d)", ErrNotBitonic, v, x, y)
			}
		}
	}

	return maze.NewGrid(rows)
}

// LoadGrid loads the image at path through cache and decodes it into a grid.
func LoadGrid(cache *ImageCache, path string, opts DecodeOptions) (*maze.Grid, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := DecodeGrid(img, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode maze %s: %w", path, err)
	}
	return g, nil
}
