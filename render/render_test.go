package render_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	gtworld "github.com/CLOEI/gtworld-r"
	"github.com/CLOEI/gtworld-r/catalog"
	"github.com/CLOEI/gtworld-r/render"
	"github.com/CLOEI/gtworld-r/world"
)

// Packed catalog colors: blue in the top byte, then green, then red.
const (
	brownPacked uint32 = 0x13458BFF // renders as RGB(139, 69, 19)
	grayPacked  uint32 = 0x505050FF // renders as RGB(80, 80, 80)
)

func testCatalog() *catalog.Memory {
	return catalog.New([]gtworld.Item{
		{ID: 0, Name: "Blank"},
		{ID: 2, Name: "Dirt", TextureName: "tiles.rttex", TextureX: 1},
		{ID: 3, Name: "Dirt Seed", BaseColor: brownPacked},
		{ID: 8, Name: "Cave Background"},
		{ID: 9, Name: "Cave Background Seed", BaseColor: grayPacked},
	})
}

// buildWorld decodes a width x 1 strip whose tiles carry the given
// foreground/background pairs.
func buildWorld(t *testing.T, tiles [][2]uint16) *world.World {
	t.Helper()
	var b []byte
	b = binary.LittleEndian.AppendUint16(b, 0x19)
	b = binary.LittleEndian.AppendUint32(b, 0)
	b = binary.LittleEndian.AppendUint16(b, 0) // empty name
	b = binary.LittleEndian.AppendUint32(b, uint32(len(tiles)))
	b = binary.LittleEndian.AppendUint32(b, 1)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(tiles)))
	b = append(b, make([]byte, 5)...)
	for _, tl := range tiles {
		b = binary.LittleEndian.AppendUint16(b, tl[0])
		b = binary.LittleEndian.AppendUint16(b, tl[1])
		b = binary.LittleEndian.AppendUint16(b, 0)
		b = binary.LittleEndian.AppendUint16(b, 0)
	}
	b = append(b, make([]byte, 12)...)
	b = append(b, make([]byte, 8)...) // empty drop list
	b = append(b, make([]byte, 6)...) // weather trailer

	w := world.New(testCatalog())
	if err := w.Parse(b); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return w
}

func TestRenderBaseColors(t *testing.T) {
	w := buildWorld(t, [][2]uint16{
		{2, 0}, // dirt foreground
		{0, 8}, // background shows through
		{0, 0}, // open sky
	})

	r := render.New(testCatalog(), render.WithPixelsPerTile(1))
	img, err := r.Render(w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 3 || got.Dy() != 1 {
		t.Fatalf("bounds = %v", got)
	}

	cases := []struct {
		want color.RGBA
		x    int
	}{
		{color.RGBA{R: 139, G: 69, B: 19, A: 255}, 0},
		{color.RGBA{R: 80, G: 80, B: 80, A: 255}, 1},
		{color.RGBA{R: 96, G: 215, B: 242, A: 255}, 2},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, 0); got != tc.want {
			t.Errorf("pixel %d = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestRenderPixelsPerTile(t *testing.T) {
	w := buildWorld(t, [][2]uint16{{2, 0}})

	r := render.New(testCatalog(), render.WithPixelsPerTile(4))
	img, err := r.Render(w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Fatalf("bounds = %v", got)
	}
	want := color.RGBA{R: 139, G: 69, B: 19, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderRejectsErrorWorld(t *testing.T) {
	w := world.New(testCatalog())
	if err := w.Parse([]byte{0x19}); err == nil {
		t.Fatal("expected parse failure")
	}
	if _, err := render.New(testCatalog()).Render(w); err == nil {
		t.Error("expected render error for error world")
	}
}

func TestRenderRejectsEmptyWorld(t *testing.T) {
	if _, err := render.New(testCatalog()).Render(world.New(testCatalog())); err == nil {
		t.Error("expected render error for unparsed world")
	}
}

func TestScaleNearestNeighbor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	src.SetRGBA(0, 0, c)

	dst := render.Scale(src, 4, 4)
	if got := dst.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Fatalf("bounds = %v", got)
	}
	if got := dst.RGBAAt(3, 3); got != c {
		t.Errorf("scaled pixel = %v, want %v", got, c)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	w := buildWorld(t, [][2]uint16{{2, 0}})
	img, err := render.New(testCatalog(), render.WithPixelsPerTile(2)).Render(w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := decoded.Bounds(); got != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got, img.Bounds())
	}
}

// writeSheet drops a 64x32 two-sprite sheet: left sprite red, right green.
func writeSheet(t *testing.T, dir, name string) {
	t.Helper()
	sheet := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if x < 32 {
				sheet.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			} else {
				sheet.SetRGBA(x, y, color.RGBA{G: 255, A: 255})
			}
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
}

func TestTextureCacheSprite(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "tiles.png")

	cache := render.NewTextureCache(dir, nil)
	cat := testCatalog()
	dirt, _ := cat.Get(2) // TextureX 1 selects the right-hand sprite

	sprite, ok := cache.Sprite(dirt)
	if !ok {
		t.Fatal("Sprite: sheet not resolved")
	}
	b := sprite.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("sprite bounds = %v", b)
	}
	r, g, _, _ := sprite.At(b.Min.X, b.Min.Y).RGBA()
	if r != 0 || g == 0 {
		t.Errorf("sprite pixel = r%d g%d, want green", r, g)
	}
}

func TestTextureCacheMissingSheet(t *testing.T) {
	cache := render.NewTextureCache(t.TempDir(), nil)
	item := &gtworld.Item{ID: 7, TextureName: "nope.rttex"}
	if _, ok := cache.Sprite(item); ok {
		t.Error("Sprite should miss for absent sheet")
	}
	// Second lookup exercises the negative cache path.
	if _, ok := cache.Sprite(item); ok {
		t.Error("Sprite should still miss")
	}
}

func TestRenderWithTextures(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "tiles.png")

	w := buildWorld(t, [][2]uint16{{2, 0}, {0, 0}})
	r := render.New(testCatalog(),
		render.WithPixelsPerTile(1),
		render.WithTextures(render.NewTextureCache(dir, nil)))
	img, err := r.Render(w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Dirt draws from the green sprite; sky keeps the flat fill.
	if got := img.RGBAAt(0, 0); got.G == 0 || got.R != 0 {
		t.Errorf("textured pixel = %v, want green", got)
	}
	sky := color.RGBA{R: 96, G: 215, B: 242, A: 255}
	if got := img.RGBAAt(1, 0); got != sky {
		t.Errorf("sky pixel = %v, want %v", got, sky)
	}
}
