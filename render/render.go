package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	gtworld "github.com/CLOEI/gtworld-r"
	"github.com/CLOEI/gtworld-r/world"
)

// Palette constants carried over from the reference renderer.
var (
	skyColor     = color.RGBA{R: 96, G: 215, B: 242, A: 255}
	missingColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Renderer turns a decoded world into a flat color image, one square per
// tile. Colors come from catalog base colors; when a texture cache is
// attached, tiles with a loadable sprite are drawn from it instead.
type Renderer struct {
	cat gtworld.Catalog
	tex *TextureCache
	log *zap.Logger
	px  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger replaces the default no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithPixelsPerTile sets the square edge length per tile. Default 32.
func WithPixelsPerTile(px int) Option {
	return func(r *Renderer) { r.px = px }
}

// WithTextures attaches a sprite source. Tiles whose item sprite resolves
// are textured; everything else keeps the base-color fill.
func WithTextures(tex *TextureCache) Option {
	return func(r *Renderer) { r.tex = tex }
}

func New(cat gtworld.Catalog, opts ...Option) *Renderer {
	r := &Renderer{
		cat: cat,
		log: zap.NewNop(),
		px:  32,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the full-world image. The world must have been parsed
// successfully; a zero-extent or error world is rejected.
func (r *Renderer) Render(w *world.World) (*image.RGBA, error) {
	if w.IsError {
		return nil, fmt.Errorf("render: world %q carries a decode error", w.Name)
	}
	if w.Width == 0 || w.Height == 0 {
		return nil, fmt.Errorf("render: world %q has zero extent", w.Name)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w.Width)*r.px, int(w.Height)*r.px))
	r.log.Debug("rendering world",
		zap.String("name", w.Name),
		zap.Uint32("width", w.Width),
		zap.Uint32("height", w.Height),
		zap.Int("pixels_per_tile", r.px))

	for y := uint32(0); y < w.Height; y++ {
		for x := uint32(0); x < w.Width; x++ {
			rect := image.Rect(int(x)*r.px, int(y)*r.px, int(x+1)*r.px, int(y+1)*r.px)

			tile, ok := w.GetTile(x, y)
			if !ok {
				fill(img, rect, missingColor)
				continue
			}
			if r.tex != nil {
				if sprite, ok := r.sprite(tile); ok {
					draw.NearestNeighbor.Scale(img, rect, sprite, sprite.Bounds(), draw.Src, nil)
					continue
				}
			}
			fill(img, rect, r.TileColor(tile))
		}
	}
	return img, nil
}

// TileColor resolves the flat color for one tile. A "Blank" foreground is
// sky unless a background block shows through. Base colors live on the
// catalog entry one past the block itself (its seed), mirroring how the
// item database lays them out.
func (r *Renderer) TileColor(t *world.Tile) color.RGBA {
	item, ok := r.cat.Get(uint32(t.ForegroundItemID))
	if !ok {
		return missingColor
	}
	if item.Name == "Blank" {
		if t.BackgroundItemID == 0 {
			return skyColor
		}
		return r.baseColor(uint32(t.BackgroundItemID))
	}
	return r.baseColor(uint32(t.ForegroundItemID))
}

func (r *Renderer) baseColor(id uint32) color.RGBA {
	item, ok := r.cat.Get(id + 1)
	if !ok || item.BaseColor == 0 {
		// No seed entry to borrow from; fall back to the block's own
		// color, which is usually zero for non-block items.
		if item, ok = r.cat.Get(id); !ok {
			return missingColor
		}
	}
	return unpackColor(item.BaseColor)
}

// unpackColor splits the packed catalog color. The byte order follows the
// item database: blue in the top byte, then green, then red.
func unpackColor(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 8),
		G: uint8(c >> 16),
		B: uint8(c >> 24),
		A: 255,
	}
}

func (r *Renderer) sprite(t *world.Tile) (image.Image, bool) {
	item, ok := r.cat.Get(uint32(t.ForegroundItemID))
	if !ok || item.Name == "Blank" {
		return nil, false
	}
	return r.tex.Sprite(item)
}

func fill(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Scale resizes an already rendered image with nearest-neighbor sampling,
// keeping tile edges crisp.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
