package willowui

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadIcon decodes a PNG or JPEG image from fsys.
func LoadIcon(fsys fs.FS, path string) (*ebiten.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("willowui: open icon: %w", err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("willowui: decode icon %s: %w", path, err)
	}
	return img, nil
}

// PlaceholderIcon draws an IconSize square in c with letter centered on it.
func PlaceholderIcon(c Color, letter string) *ebiten.Image {
	const size = int(IconSize)
	img := ebiten.NewImage(size, size)
	vector.DrawFilledRect(img, 0, 0, float32(size), float32(size), c.toNRGBA(), false)
	vector.StrokeRect(img, 0.5, 0.5, float32(size)-1, float32(size)-1, 1, Color{0, 0, 0, 0.4}.toNRGBA(), false)

	if letter == "" {
		return img
	}
	f := BoldFont(IconSize * 0.6)
	w, h := f.MeasureString(letter)
	op := &text.DrawOptions{}
	op.GeoM.Translate((IconSize-w)/2, (IconSize-h)/2)
	op.ColorScale.ScaleWithColor(Color{0.1, 0.1, 0.1, 1}.toNRGBA())
	text.Draw(img, letter, f.Face(), op)
	return img
}

// IconOrPlaceholder loads path from fsys, falling back to a placeholder when
// the asset is missing or unreadable. fsys may be nil.
func IconOrPlaceholder(fsys fs.FS, path string, c Color, letter string, logger *slog.Logger) *ebiten.Image {
	if fsys != nil && path != "" {
		img, err := LoadIcon(fsys, path)
		if err == nil {
			return img
		}
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("using placeholder icon", "path", path, "err", err)
	}
	return PlaceholderIcon(c, letter)
}
