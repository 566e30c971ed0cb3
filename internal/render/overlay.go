// Package render draws a solved path and its endpoints on top of the maze image.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/maze-solver/internal/maze"
)

// Default marker colors.
const (
	DefaultPathColor  = "#006400" // dark green
	DefaultStartColor = "#8B0000" // dark red
	DefaultEndColor   = "#00008B" // dark blue
)

// Marker radii in source pixels.
const (
	pathRadius     = 1.0
	endpointRadius = 3.0
)

// Style controls marker colors and output scale.
type Style struct {
	PathColor  string
	StartColor string
	EndColor   string

	// Scale is an integer upsampling factor applied with nearest-neighbor
	// resampling before drawing, so thin corridors stay crisp. Values < 1
	// are treated as 1.
	Scale int
}

// DefaultStyle returns the dark green / dark red / dark blue style at scale 1.
func DefaultStyle() Style {
	return Style{
		PathColor:  DefaultPathColor,
		StartColor: DefaultStartColor,
		EndColor:   DefaultEndColor,
		Scale:      1,
	}
}

// Overlay converts base to RGB and draws every path point as a small filled
// dot, then the start and end points as larger dots in their own colors.
// Endpoints are drawn last so they stay visible over the path.
//
// Returns an error if a style color is not a valid hex color.
func Overlay(base image.Image, path maze.Path, start, end maze.Point, style Style) (*image.NRGBA, error) {
	pathColor, err := colorful.Hex(style.PathColor)
	if err != nil {
		return nil, fmt.Errorf("invalid path color %q: %w", style.PathColor, err)
	}
	startColor, err := colorful.Hex(style.StartColor)
	if err != nil {
		return nil, fmt.Errorf("invalid start color %q: %w", style.StartColor, err)
	}
	endColor, err := colorful.Hex(style.EndColor)
	if err != nil {
		return nil, fmt.Errorf("invalid end color %q: %w", style.EndColor, err)
	}

	scale := style.Scale
	if scale < 1 {
		scale = 1
	}

	rgb := imaging.Clone(base)
	if scale > 1 {
		b := rgb.Bounds()
		rgb = imaging.Resize(rgb, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}

	dc := gg.NewContextForImage(rgb)
	dot := func(p maze.Point, radius float64) {
		s := float64(scale)
		dc.DrawCircle((float64(p.X)+0.5)*s, (float64(p.Y)+0.5)*s, radius*s)
		dc.Fill()
	}

	dc.SetColor(pathColor)
	for _, p := range path {
		dot(p, pathRadius)
	}
	dc.SetColor(startColor)
	dot(start, endpointRadius)
	dc.SetColor(endColor)
	dot(end, endpointRadius)

	return imaging.Clone(dc.Image()), nil
}

// Result is an encoded overlay as returned by the MCP server.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes img as PNG and wraps it in a Result.
func EncodePNGBase64(img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
