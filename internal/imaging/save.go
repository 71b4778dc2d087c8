package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SavePixelGrid writes g to path. The encoder is chosen from the extension
// (.png, .jpg, .gif, .tif, .bmp); missing parent directories are created.
func SavePixelGrid(g *PixelGrid, path string) error {
	if g == nil {
		return fmt.Errorf("failed to save image: nil pixel grid")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(g.Image(), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// encodeBase64PNG encodes img as PNG and returns it base64 encoded, the form
// MCP clients expect for inline images.
func encodeBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
