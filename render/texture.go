package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	gtworld "github.com/CLOEI/gtworld-r"
)

// spriteSize is the sprite sheet grid pitch in pixels.
const spriteSize = 32

// TextureCache loads sprite sheets from a directory and memoizes them by
// file path. Catalog entries reference proprietary ".rttex" sheets; the
// cache resolves those names against pre-converted ".png" files. Lookups
// that fail are cached too, so a missing sheet costs one stat, not one per
// tile.
type TextureCache struct {
	dir string
	log *zap.Logger

	mu     sync.Mutex
	sheets map[string]image.Image // nil entry = known missing
}

// NewTextureCache serves sheets from dir. A nil logger is replaced with a
// no-op one.
func NewTextureCache(dir string, log *zap.Logger) *TextureCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureCache{
		dir:    dir,
		log:    log,
		sheets: make(map[string]image.Image),
	}
}

// Sprite cuts the item's sprite out of its sheet using the catalog texture
// coordinates. ok is false when the sheet is missing or the coordinates
// fall outside it.
func (c *TextureCache) Sprite(item *gtworld.Item) (image.Image, bool) {
	name := item.TextureName
	if name == "" {
		name = item.FileName
	}
	sheet, ok := c.sheet(name)
	if !ok {
		return nil, false
	}

	r := image.Rect(
		int(item.TextureX)*spriteSize,
		int(item.TextureY)*spriteSize,
		(int(item.TextureX)+1)*spriteSize,
		(int(item.TextureY)+1)*spriteSize,
	)
	if !r.In(sheet.Bounds()) {
		c.log.Warn("sprite outside sheet bounds",
			zap.String("sheet", name),
			zap.Uint32("item", item.ID))
		return nil, false
	}

	sub, ok := sheet.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, false
	}
	return sub.SubImage(r), true
}

func (c *TextureCache) sheet(name string) (image.Image, bool) {
	path := filepath.Join(c.dir, pngName(name))

	c.mu.Lock()
	defer c.mu.Unlock()

	if img, seen := c.sheets[path]; seen {
		return img, img != nil
	}

	img, err := loadPNG(path)
	if err != nil {
		c.log.Debug("sheet unavailable", zap.String("path", path), zap.Error(err))
		c.sheets[path] = nil
		return nil, false
	}
	c.sheets[path] = img
	return img, true
}

// pngName maps a catalog texture reference onto the converted file name.
func pngName(name string) string {
	ext := filepath.Ext(name)
	if strings.EqualFold(ext, ".rttex") {
		return strings.TrimSuffix(name, ext) + ".png"
	}
	return name
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
