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

// ImageCache keeps decoded images keyed by the path they were loaded from.
//
// Decoding a large photograph dominates the cost of most carving tools, and MCP
// clients tend to issue several calls against the same file (find a seam, draw
// it, then carve). The cache lets those calls share one decode.
//
// ImageCache is safe for concurrent use. Cached images are never mutated: every
// carving session copies pixels out of them into its own PixelGrid.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// Decoding goes through imaging.Open with EXIF auto-orientation, so a JPEG
// shot in portrait mode is carved the way it is displayed rather than the way
// the sensor stored it. PNG, JPEG, GIF, TIFF and BMP are supported.
func (c *ImageCache) Load(path string) (image.Image, error) {
	key := filepath.Clean(path)
	c.mu.RLock()
	img, ok := c.images[key]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()

	return img, nil
}

// Evict drops one path from the cache so the next Load reads it from disk
// again. Call it after writing over a file. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, filepath.Clean(path))
	c.mu.Unlock()
}

// Len reports how many images are cached.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// LoadPixelGrid loads the image at path through the cache and copies it into a
// fresh PixelGrid that the caller owns exclusively.
func LoadPixelGrid(cache *ImageCache, path string) (*PixelGrid, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return PixelGridFromImage(img), nil
}

// ImageInfo describes an image file on disk.
type ImageInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	FileSizeBytes int64  `json:"file_size_bytes"`

	// Pixels is Width*Height, the number of energy values a carving session
	// over this image maintains.
	Pixels int `json:"pixels"`
}

// LoadImageInfo loads path through the cache and reports its dimensions,
// format and size. The format is derived from the file extension.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	b := img.Bounds()
	return &ImageInfo{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        formatName(path),
		FileSizeBytes: stat.Size(),
		Pixels:        b.Dx() * b.Dy(),
	}, nil
}

// DimensionsResult holds just the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions reports the size of the image at path.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &DimensionsResult{Width: b.Dx(), Height: b.Dy()}, nil
}

// formatName maps a file extension to the short format name reported to
// clients, or "unknown".
func formatName(path string) string {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(f.String())
}

// OutputPath returns path when it is non-empty, otherwise a name in dir
// derived from src, e.g. "photo.png" -> "<dir>/photo-carved-300x200.png".
func OutputPath(dir, src, path string, width, height int) string {
	if path != "" {
		return path
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(dir, fmt.Sprintf("%s-carved-%dx%d.png", base, width, height))
}
