package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/klauspost/compress/gzip"

	gtworld "github.com/CLOEI/gtworld-r"
	"github.com/CLOEI/gtworld-r/world"
)

// fileModel is the on-disk shape of an exported world.
type fileModel struct {
	Name           string        `json:"name"`
	Tiles          []tileModel   `json:"tiles"`
	Dropped        world.Dropped `json:"dropped"`
	Flags          uint32        `json:"flags"`
	Width          uint32        `json:"width"`
	Height         uint32        `json:"height"`
	TileCount      uint32        `json:"tile_count"`
	Version        uint16        `json:"version"`
	BaseWeather    world.Weather `json:"base_weather"`
	CurrentWeather world.Weather `json:"current_weather"`
}

// tileModel tags each tile's variant payload with its kind so import can
// rebuild the concrete type.
type tileModel struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Extra      any             `json:"extra,omitempty"`
	X          uint32          `json:"x"`
	Y          uint32          `json:"y"`
	Foreground uint16          `json:"fg"`
	Background uint16          `json:"bg"`
	Parent     uint16          `json:"parent"`
	RawFlags   uint16          `json:"raw_flags"`
	Kind       world.Kind      `json:"kind"`
}

// Write exports wld as indented JSON.
func Write(w io.Writer, wld *world.World) error {
	m := fileModel{
		Version:        wld.Version,
		Flags:          wld.Flags,
		Name:           wld.Name,
		Width:          wld.Width,
		Height:         wld.Height,
		TileCount:      wld.TileCount,
		Dropped:        wld.Dropped,
		BaseWeather:    wld.BaseWeather,
		CurrentWeather: wld.CurrentWeather,
		Tiles:          make([]tileModel, 0, len(wld.Tiles)),
	}
	for i := range wld.Tiles {
		t := &wld.Tiles[i]
		tm := tileModel{
			X:          t.X,
			Y:          t.Y,
			Foreground: t.ForegroundItemID,
			Background: t.BackgroundItemID,
			Parent:     t.ParentBlockIndex,
			RawFlags:   t.RawFlags,
			Kind:       t.Type.Kind(),
			Extra:      jsonSafe(t.ExtraBlock),
		}
		data, err := json.Marshal(t.Type)
		if err != nil {
			return fmt.Errorf("snapshot: tile (%d, %d): %w", t.X, t.Y, err)
		}
		// Empty marker variants stay compact.
		if string(data) != "{}" {
			tm.Data = data
		}
		m.Tiles = append(m.Tiles, tm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Read rebuilds a world from an exported JSON stream. The catalog is only
// attached for later harvestability queries; no re-validation happens.
func Read(r io.Reader, cat gtworld.Catalog) (*world.World, error) {
	var m fileModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	wld := world.New(cat)
	wld.Version = m.Version
	wld.Flags = m.Flags
	wld.Name = m.Name
	wld.Width = m.Width
	wld.Height = m.Height
	wld.TileCount = m.TileCount
	wld.Dropped = m.Dropped
	wld.BaseWeather = m.BaseWeather
	wld.CurrentWeather = m.CurrentWeather
	wld.Tiles = make([]world.Tile, 0, len(m.Tiles))

	for _, tm := range m.Tiles {
		tt, err := decodeType(tm.Kind, tm.Data)
		if err != nil {
			return nil, fmt.Errorf("snapshot: tile (%d, %d): %w", tm.X, tm.Y, err)
		}
		wld.Tiles = append(wld.Tiles, world.Tile{
			X:                tm.X,
			Y:                tm.Y,
			ForegroundItemID: tm.Foreground,
			BackgroundItemID: tm.Background,
			ParentBlockIndex: tm.Parent,
			RawFlags:         tm.RawFlags,
			Flags:            world.FlagsFromBits(tm.RawFlags),
			Type:             tt,
			ExtraBlock:       tm.Extra,
		})
	}
	return wld, nil
}

// WriteGzip is Write through a gzip stream.
func WriteGzip(w io.Writer, wld *world.World) error {
	zw := gzip.NewWriter(w)
	if err := Write(zw, wld); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadGzip is Read through a gzip stream.
func ReadGzip(r io.Reader, cat gtworld.Catalog) (*world.World, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: gzip: %w", err)
	}
	defer zr.Close()
	return Read(zr, cat)
}

func decodeType(k world.Kind, data json.RawMessage) (world.TileType, error) {
	typ, ok := kindTypes[k]
	if !ok {
		return nil, fmt.Errorf("unknown tile kind %d", k)
	}
	if len(data) == 0 {
		return reflect.New(typ).Elem().Interface().(world.TileType), nil
	}
	p := reflect.New(typ)
	if err := json.Unmarshal(data, p.Interface()); err != nil {
		return nil, err
	}
	return p.Elem().Interface().(world.TileType), nil
}

// jsonSafe rewrites CBOR decode output into something encoding/json
// accepts: map keys become strings, nested containers are converted
// recursively.
func jsonSafe(v any) any {
	switch v := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = jsonSafe(val)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, val := range v {
			s[i] = jsonSafe(val)
		}
		return s
	default:
		return v
	}
}
