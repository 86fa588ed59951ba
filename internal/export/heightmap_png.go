// Package export persists finished terrain artifacts: the 16-bit
// grayscale heightmap, a downscaled preview, and the textual metadata
// sidecar the packaging step consumes. It never feeds anything back
// into generation.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/ghenghis/bar-none-map-creator/internal/terrain"
)

// HeightmapImage converts a normalized heightmap to 16-bit grayscale,
// the precision the map compiler expects. Values are clamped to [0, 1]
// before scaling.
func HeightmapImage(hm *terrain.Heightmap) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, hm.Size, hm.Size))
	for row := 0; row < hm.Size; row++ {
		for col := 0; col < hm.Size; col++ {
			v := hm.At(row, col)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			img.SetGray16(col, row, color.Gray16{Y: uint16(v * 65535)})
		}
	}
	return img
}

// WriteHeightmapPNG writes the full-resolution heightmap to path.
func WriteHeightmapPNG(hm *terrain.Heightmap, path string) error {
	return writePNG(path, HeightmapImage(hm))
}

// WritePreviewPNG writes a grayscale preview rescaled to previewSize
// pixels per side.
func WritePreviewPNG(hm *terrain.Heightmap, path string, previewSize int) error {
	if previewSize <= 0 {
		return fmt.Errorf("preview size must be positive, got %d", previewSize)
	}
	src := HeightmapImage(hm)
	dst := image.NewGray16(image.Rect(0, 0, previewSize, previewSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return writePNG(path, dst)
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
