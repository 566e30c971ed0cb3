package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache keeps decoded maze images in memory, keyed by file path.
//
// The first Load of a path reads and decodes the file; later calls return the
// cached image. The MCP server solves, renders and inspects the same maze in
// separate tool calls, so caching avoids decoding it each time.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images stay in memory until removed via Evict() or Clear().
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the image at path, decoding it on first use.
//
// Decoding goes through disintegration/imaging, which handles PNG, JPEG, GIF,
// TIFF and BMP and applies EXIF orientation so scanned or photographed mazes
// are scanned the right way up.
//
// The cache key is the exact path string; relative and absolute paths to the
// same file are cached separately.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image format
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the image cached under path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo describes a maze image before it is solved.
type ImageInfo struct {
	// Width is the image width in pixels (grid columns).
	Width int `json:"width"`

	// Height is the image height in pixels (grid rows).
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", "tiff", "bmp" or "unknown",
	// detected from the file extension.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// Bitonic reports whether every pixel is pure black or pure white
	// after luminance conversion.
	Bitonic bool `json:"bitonic"`

	// WallPixels counts pure black pixels.
	WallPixels int `json:"wall_pixels"`

	// PassablePixels counts pure white pixels.
	PassablePixels int `json:"passable_pixels"`

	// OtherPixels counts pixels that are neither, which strict decoding rejects.
	OtherPixels int `json:"other_pixels"`
}

// LoadImageInfo loads an image through the cache and reports its size, format
// and luminance class counts.
//
// # Errors
//
//   - Returns error if the image cannot be loaded
//   - Returns error if the file cannot be stat'd
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := &ImageInfo{
		Width:         img.Bounds().Dx(),
		Height:        img.Bounds().Dy(),
		Format:        formatFromExt(path),
		FileSizeBytes: stat.Size(),
	}

	lum := ToLuminance(img)
	for _, v := range lum.Pix {
		switch v {
		case wallLuminance:
			info.WallPixels++
		case passableLuminance:
			info.PassablePixels++
		default:
			info.OtherPixels++
		}
	}
	info.Bitonic = info.OtherPixels == 0

	return info, nil
}

// formatFromExt maps a file extension to a format name.
func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	default:
		return "unknown"
	}
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without scanning its pixels.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
