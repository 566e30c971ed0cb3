package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/maze-solver/internal/maze"
)

func whiteGray(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func rgbAt(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

var (
	darkGreen = [3]uint8{0x00, 0x64, 0x00}
	darkRed   = [3]uint8{0x8B, 0x00, 0x00}
	darkBlue  = [3]uint8{0x00, 0x00, 0x8B}
	white     = [3]uint8{0xFF, 0xFF, 0xFF}
)

func TestOverlay(t *testing.T) {
	path := maze.Path{{X: 5, Y: 10}, {X: 6, Y: 10}}
	start, end := maze.Point{X: 2, Y: 2}, maze.Point{X: 15, Y: 15}

	out, err := Overlay(whiteGray(20, 20), path, start, end, DefaultStyle())
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 20, 20), out.Bounds())
	assert.Equal(t, darkGreen, rgbAt(out, 6, 10))
	assert.Equal(t, darkRed, rgbAt(out, 2, 2))
	assert.Equal(t, darkBlue, rgbAt(out, 15, 15))
	assert.Equal(t, white, rgbAt(out, 10, 2))
}

func TestOverlay_EndpointsDrawnOverPath(t *testing.T) {
	start := maze.Point{X: 4, Y: 4}
	path := maze.Path{{X: 4, Y: 5}, {X: 4, Y: 6}}
	end := maze.Point{X: 4, Y: 6}

	out, err := Overlay(whiteGray(10, 10), path, start, end, DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, darkBlue, rgbAt(out, 4, 6))
}

func TestOverlay_Scale(t *testing.T) {
	style := DefaultStyle()
	style.Scale = 3

	out, err := Overlay(whiteGray(20, 20), maze.Path{{X: 6, Y: 10}}, maze.Point{X: 2, Y: 2}, maze.Point{X: 15, Y: 15}, style)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 60, 60), out.Bounds())
	assert.Equal(t, darkGreen, rgbAt(out, 19, 31))
	assert.Equal(t, darkRed, rgbAt(out, 7, 7))
}

func TestOverlay_InvalidColor(t *testing.T) {
	for _, mutate := range []func(*Style){
		func(s *Style) { s.PathColor = "green" },
		func(s *Style) { s.StartColor = "#12" },
		func(s *Style) { s.EndColor = "" },
	} {
		style := DefaultStyle()
		mutate(&style)
		_, err := Overlay(whiteGray(4, 4), nil, maze.Point{}, maze.Point{}, style)
		assert.Error(t, err)
	}
}

func TestEncodePNGBase64(t *testing.T) {
	out, err := Overlay(whiteGray(8, 6), nil, maze.Point{X: 1, Y: 1}, maze.Point{X: 6, Y: 4}, DefaultStyle())
	require.NoError(t, err)

	res, err := EncodePNGBase64(out)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Width)
	assert.Equal(t, 6, res.Height)
	assert.Equal(t, "image/png", res.MimeType)

	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, darkRed, rgbAt(decoded, 1, 1))
}

func TestSave(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "solved.png")
	require.NoError(t, Save(whiteGray(3, 3), dst))

	img, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	assert.Error(t, Save(whiteGray(3, 3), filepath.Join(t.TempDir(), "solved.unknownext")))
}
