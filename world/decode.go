package world

import (
	"strings"

	"github.com/CLOEI/gtworld-r/errors"
	"github.com/CLOEI/gtworld-r/world/internal/binary"
)

const (
	// guildLockItemID has a 16-byte trailing region after its Lock payload
	// that no other lock item carries. A known format irregularity, not a
	// general rule.
	guildLockItemID uint16 = 5814

	// These two item ids carry an escape-hatch data block even though their
	// catalog entries are not XML-backed.
	escapeHatchItemA uint16 = 14666
	escapeHatchItemB uint16 = 10686
)

// Parse decodes one snapshot buffer into w, destructively replacing any
// previous contents. The first failure aborts the whole parse: w.IsError is
// set, the returned error identifies stage and byte offset, and no partial
// grid is usable. On success w.Tiles has exactly Width*Height entries in
// row-major order.
func (w *World) Parse(data []byte) error {
	w.Reset()
	r := binary.NewReader(data)

	version, err := r.ReadU16()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}
	if version < MinVersion {
		return w.fail(errors.UnsupportedVersion(version, MinVersion, 0))
	}

	worldFlags, err := r.ReadU32()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}
	name, err := r.ReadString()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}
	width, err := r.ReadU32()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}
	height, err := r.ReadU32()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}
	tileCount, err := r.ReadU32()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}
	if err := r.Skip(5); err != nil {
		return w.fail(errors.Truncated(errors.StageHeader, r.Position(), err))
	}

	if tileCount > MaxTileCount {
		return w.fail(errors.OversizedTileCount(tileCount, MaxTileCount, r.Position()))
	}
	// A zero extent with claimed tiles has no valid row-major mapping.
	if tileCount > 0 && (width == 0 || height == 0) {
		return w.fail(errors.InvalidExtent(width, height, tileCount, r.Position()))
	}

	w.Version = version
	w.Flags = worldFlags
	w.Name = name
	w.Width = width
	w.Height = height
	w.TileCount = tileCount
	w.Tiles = make([]Tile, 0, allocHint(tileCount, r, 8))

	for i := uint32(0); i < tileCount; i++ {
		x := i % width
		y := i / width
		if err := w.decodeTile(r, x, y, false); err != nil {
			return w.fail(err)
		}
	}

	// 12 reserved bytes between the grid and the drop list. Unknown
	// purpose; skipped verbatim.
	if err := r.Skip(12); err != nil {
		return w.fail(errors.Truncated(errors.StageDropped, r.Position(), err))
	}

	if err := w.decodeDropped(r); err != nil {
		return w.fail(err)
	}

	baseWeather, err := r.ReadU16()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageWeather, r.Position(), err))
	}
	if _, err := r.ReadU16(); err != nil { // unused field, read and discarded
		return w.fail(errors.Truncated(errors.StageWeather, r.Position(), err))
	}
	currentWeather, err := r.ReadU16()
	if err != nil {
		return w.fail(errors.Truncated(errors.StageWeather, r.Position(), err))
	}
	w.BaseWeather = WeatherFromID(baseWeather)
	w.CurrentWeather = WeatherFromID(currentWeather)

	return nil
}

// UpdateTileAt re-decodes a single tile record at (x, y) from data,
// overwriting the existing tile without a full re-parse. The record layout
// is identical to a grid tile record.
func (w *World) UpdateTileAt(x, y uint32, data []byte) error {
	if _, ok := w.TileIndex(x, y); !ok {
		return errors.OutOfBounds(x, y, w.Width, w.Height)
	}
	r := binary.NewReader(data)
	if err := w.decodeTile(r, x, y, true); err != nil {
		w.IsError = true
		return err
	}
	return nil
}

// decodeTile reads one tile record and stores the result, by append during
// the initial grid build or by overwrite at the row-major index when
// replace is set.
func (w *World) decodeTile(r *binary.Reader, x, y uint32, replace bool) error {
	t := newTile(x, y)

	fg, err := r.ReadU16()
	if err != nil {
		return w.tileTruncated(r, x, y, err)
	}
	bg, err := r.ReadU16()
	if err != nil {
		return w.tileTruncated(r, x, y, err)
	}
	parent, err := r.ReadU16()
	if err != nil {
		return w.tileTruncated(r, x, y, err)
	}
	rawFlags, err := r.ReadU16()
	if err != nil {
		return w.tileTruncated(r, x, y, err)
	}

	t.ForegroundItemID = fg
	t.BackgroundItemID = bg
	t.ParentBlockIndex = parent
	t.RawFlags = rawFlags
	t.Flags = FlagsFromBits(rawFlags)

	// A bad item id means the cursor is desynchronized: every byte after
	// this point would misparse, so the failure is fatal. A placeholder
	// zero tile keeps the position occupied for diagnosis.
	itemCount := w.cat.ItemCount()
	if uint32(fg) > itemCount || uint32(bg) > itemCount {
		bad := fg
		if uint32(fg) <= itemCount {
			bad = bg
		}
		placeholder := newTile(x, y)
		placeholder.Flags = t.Flags
		placeholder.RawFlags = t.RawFlags
		w.store(placeholder, replace)
		return errors.InvalidItemID(bad, itemCount, x, y, r.Position())
	}

	if t.Flags.HasParent {
		// Linked-block reference; consumed but not modeled.
		if _, err := r.ReadU16(); err != nil {
			return w.tileTruncated(r, x, y, err)
		}
	}

	if t.Flags.HasExtraData {
		kind, err := r.ReadU8()
		if err != nil {
			return w.tileTruncated(r, x, y, err)
		}
		tt, err := w.decodeExtra(r, kind, &t)
		if err != nil {
			return errors.New(errors.StageExtra, errors.KindTruncated).
				Offset(r.Position()).
				Tile(x, y).
				Detail("variant %d payload", kind).
				Cause(err).
				Build()
		}
		t.Type = tt
	}

	if w.needsGenericBlock(fg) {
		n, err := r.ReadU32()
		if err != nil {
			return w.tileTruncated(r, x, y, err)
		}
		block, err := r.ReadBytes(int(n))
		if err != nil {
			return w.tileTruncated(r, x, y, err)
		}
		v, err := w.gen.Decode(block)
		if err != nil {
			return errors.PayloadDecode(x, y, r.Position(), err)
		}
		t.ExtraBlock = v
	}

	w.store(t, replace)
	return nil
}

// needsGenericBlock reports whether the foreground item embeds an
// escape-hatch block after the tile record: XML-backed catalog entries plus
// the two hard-coded exception ids.
func (w *World) needsGenericBlock(fg uint16) bool {
	if fg == escapeHatchItemA || fg == escapeHatchItemB {
		return true
	}
	item, ok := w.cat.Get(uint32(fg))
	return ok && strings.HasSuffix(item.FileName, ".xml")
}

func (w *World) store(t Tile, replace bool) {
	if replace {
		i, ok := w.TileIndex(t.X, t.Y)
		if ok && i < len(w.Tiles) {
			w.Tiles[i] = t
		}
		return
	}
	w.Tiles = append(w.Tiles, t)
}

func (w *World) decodeDropped(r *binary.Reader) error {
	count, err := r.ReadU32()
	if err != nil {
		return errors.Truncated(errors.StageDropped, r.Position(), err)
	}
	lastUID, err := r.ReadU32()
	if err != nil {
		return errors.Truncated(errors.StageDropped, r.Position(), err)
	}

	w.Dropped.ItemsCount = count
	w.Dropped.LastDroppedItemUID = lastUID
	w.Dropped.Items = make([]DroppedItem, 0, allocHint(count, r, 12))

	// Fixed 12-byte records, field order is part of the wire contract.
	for i := uint32(0); i < count; i++ {
		var d DroppedItem
		if d.ID, err = r.ReadU16(); err != nil {
			return errors.Truncated(errors.StageDropped, r.Position(), err)
		}
		if d.X, err = r.ReadF32(); err != nil {
			return errors.Truncated(errors.StageDropped, r.Position(), err)
		}
		if d.Y, err = r.ReadF32(); err != nil {
			return errors.Truncated(errors.StageDropped, r.Position(), err)
		}
		if d.Count, err = r.ReadU8(); err != nil {
			return errors.Truncated(errors.StageDropped, r.Position(), err)
		}
		if d.Flags, err = r.ReadU8(); err != nil {
			return errors.Truncated(errors.StageDropped, r.Position(), err)
		}
		if d.UID, err = r.ReadU32(); err != nil {
			return errors.Truncated(errors.StageDropped, r.Position(), err)
		}
		w.Dropped.Items = append(w.Dropped.Items, d)
	}
	return nil
}

func (w *World) tileTruncated(r *binary.Reader, x, y uint32, cause error) error {
	return errors.New(errors.StageTiles, errors.KindTruncated).
		Offset(r.Position()).
		Tile(x, y).
		Cause(cause).
		Build()
}

func (w *World) fail(err error) error {
	w.IsError = true
	return err
}

// allocHint bounds a count-driven preallocation by what the buffer can
// still hold at the given record size. The count itself is untrusted; the
// read loop still fails on the real shortfall, this only keeps a hostile
// length field from forcing a huge up-front allocation.
func allocHint(count uint32, r *binary.Reader, recordSize int) int {
	limit := r.Remaining() / recordSize
	if count > uint32(limit) {
		return limit
	}
	return int(count)
}
