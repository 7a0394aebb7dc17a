package world

import (
	"time"

	gtworld "github.com/CLOEI/gtworld-r"
)

// Tile is one grid cell: its item references, unpacked flags (plus the raw
// wire word), and the variant payload for interactive objects. A freshly
// created Tile carries the Basic payload and is mutated in place while the
// decoder fills it.
type Tile struct {
	Type             TileType
	ExtraBlock       any // escape-hatch payload, decoded by the GenericDecoder
	X                uint32
	Y                uint32
	ForegroundItemID uint16
	BackgroundItemID uint16
	ParentBlockIndex uint16
	RawFlags         uint16
	Flags            TileFlags
}

func newTile(x, y uint32) Tile {
	return Tile{Type: Basic{}, X: x, Y: y}
}

// Harvestable reports whether a Seed or ChemicalSource tile is ready to
// harvest at the given instant. Elapsed time is the decoded time-passed
// counter plus wall-clock time since the parse; equality with the catalog
// grow time counts as ready. Non-growable tiles are never harvestable.
func (t *Tile) Harvestable(cat gtworld.Catalog, now time.Time) bool {
	switch v := t.Type.(type) {
	case Seed:
		return t.growDone(cat, now, v.ReadyToHarvest, v.TimePassed, v.DecodedAt)
	case ChemicalSource:
		return t.growDone(cat, now, v.ReadyToHarvest, v.TimePassed, v.DecodedAt)
	default:
		return false
	}
}

func (t *Tile) growDone(cat gtworld.Catalog, now time.Time, ready bool, timePassed uint32, decodedAt time.Time) bool {
	if ready {
		return true
	}
	item, ok := cat.Get(uint32(t.ForegroundItemID))
	if !ok {
		return false
	}
	elapsed := time.Duration(timePassed)*time.Second + now.Sub(decodedAt)
	return elapsed >= time.Duration(item.GrowTime)*time.Second
}
