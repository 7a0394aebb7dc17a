package world

import (
	"time"

	gtworld "github.com/CLOEI/gtworld-r"
	"github.com/CLOEI/gtworld-r/generic"
)

const (
	// MinVersion is the lowest snapshot format version the decoder accepts.
	MinVersion uint16 = 0x19

	// MaxTileCount caps the tile grid allocation. A corrupt or hostile
	// length field must not force an unbounded allocation before the tile
	// loop has a chance to fail on real data.
	MaxTileCount uint32 = 1 << 20

	// initialName is the placeholder a World carries before its first
	// successful parse, mirroring the game client's empty-world state.
	initialName = "EXIT"
)

// World is a fully decoded snapshot: grid extents, the dense row-major tile
// array, the dropped-item list, and ambient weather. IsError stays true for
// any World whose last parse failed; such a World must be treated as
// unusable regardless of how many tiles were appended before the failure.
type World struct {
	Name           string
	Tiles          []Tile
	Dropped        Dropped
	Width          uint32
	Height         uint32
	TileCount      uint32
	Flags          uint32
	Version        uint16
	BaseWeather    Weather
	CurrentWeather Weather
	IsError        bool

	cat gtworld.Catalog
	gen gtworld.GenericDecoder
	now func() time.Time
}

// Option configures a World.
type Option func(*World)

// WithGenericDecoder replaces the decoder used for escape-hatch payload
// blocks. The default is the CBOR-backed generic.Decoder.
func WithGenericDecoder(d gtworld.GenericDecoder) Option {
	return func(w *World) { w.gen = d }
}

// WithClock replaces the reference clock captured by Seed and
// ChemicalSource payloads. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(w *World) { w.now = now }
}

// New creates an empty World bound to an item catalog. The catalog is only
// ever read; one catalog may back many Worlds.
func New(cat gtworld.Catalog, opts ...Option) *World {
	w := &World{
		Name: initialName,
		cat:  cat,
		gen:  generic.NewDecoder(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reset returns the World to its empty placeholder state. Parse calls it
// first, so one World can be reused across snapshots.
func (w *World) Reset() {
	w.Name = initialName
	w.Width = 0
	w.Height = 0
	w.TileCount = 0
	w.Flags = 0
	w.Version = 0
	w.Tiles = nil
	w.Dropped = Dropped{}
	w.BaseWeather = WeatherDefault
	w.CurrentWeather = WeatherDefault
	w.IsError = false
}

// TileIndex converts a coordinate to its row-major index. The second result
// is false when the coordinate lies outside the grid.
func (w *World) TileIndex(x, y uint32) (int, bool) {
	if x >= w.Width || y >= w.Height {
		return 0, false
	}
	return int(y*w.Width + x), true
}

// GetTile returns the tile at (x, y), or false when the coordinate is out
// of bounds. Defined exactly for x < Width and y < Height after a
// successful parse.
func (w *World) GetTile(x, y uint32) (*Tile, bool) {
	i, ok := w.TileIndex(x, y)
	if !ok || i >= len(w.Tiles) {
		return nil, false
	}
	return &w.Tiles[i], true
}

// IsHarvestable reports whether the tile at (x, y) holds a grown Seed or
// ChemicalSource. Out-of-bounds coordinates report false.
func (w *World) IsHarvestable(x, y uint32) bool {
	t, ok := w.GetTile(x, y)
	if !ok {
		return false
	}
	return t.Harvestable(w.cat, w.now())
}
