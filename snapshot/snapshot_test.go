package snapshot_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	gtworld "github.com/CLOEI/gtworld-r"
	"github.com/CLOEI/gtworld-r/catalog"
	"github.com/CLOEI/gtworld-r/generic"
	"github.com/CLOEI/gtworld-r/snapshot"
	"github.com/CLOEI/gtworld-r/world"
)

func testCatalog() *catalog.Memory {
	return catalog.New([]gtworld.Item{
		{ID: 0, Name: "Blank"},
		{ID: 2, Name: "Dirt"},
		{ID: 3, Name: "Dirt Seed", GrowTime: 5},
		{ID: 5, Name: "Door", FileName: "door.rttex"},
		{ID: 6000, Name: "Spirit Board", FileName: "spirit_board.xml"},
	})
}

type buf struct{ b []byte }

func (s *buf) u8(v uint8) *buf   { s.b = append(s.b, v); return s }
func (s *buf) u16(v uint16) *buf { s.b = binary.LittleEndian.AppendUint16(s.b, v); return s }
func (s *buf) u32(v uint32) *buf { s.b = binary.LittleEndian.AppendUint32(s.b, v); return s }
func (s *buf) pad(n int) *buf    { s.b = append(s.b, make([]byte, n)...); return s }
func (s *buf) str(v string) *buf { s.u16(uint16(len(v))); s.b = append(s.b, v...); return s }

func parseWorld(t *testing.T, tiles func(*buf), count uint32) *world.World {
	t.Helper()
	s := &buf{}
	s.u16(0x19).u32(7).str("SNAP").u32(count).u32(1).u32(count).pad(5)
	tiles(s)
	s.pad(12).u32(0).u32(0).u16(6).u16(0).u16(1)

	w := world.New(testCatalog())
	if err := w.Parse(s.b); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return w
}

func TestJSONRoundTrip(t *testing.T) {
	src := parseWorld(t, func(s *buf) {
		s.u16(5).u16(0).u16(0).u16(0x0001).u8(1).str("HOME").u8(7) // door
		s.u16(3).u16(0).u16(0).u16(0x0001).u8(4).u32(9).u8(2)     // grown seed
		s.u16(0).u16(2).u16(0).u16(0)                             // blank over dirt
	}, 3)

	var out bytes.Buffer
	if err := snapshot.Write(&out, src); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := snapshot.Read(&out, testCatalog())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Name != "SNAP" || got.Flags != 7 || got.Version != 0x19 {
		t.Errorf("header = %q/%d/%#x", got.Name, got.Flags, got.Version)
	}
	if got.BaseWeather != world.WeatherHarvest || got.CurrentWeather != world.WeatherSunset {
		t.Errorf("weather = %v/%v", got.BaseWeather, got.CurrentWeather)
	}
	if len(got.Tiles) != 3 {
		t.Fatalf("len(Tiles) = %d", len(got.Tiles))
	}

	door, ok := got.Tiles[0].Type.(world.Door)
	if !ok {
		t.Fatalf("tile0 type = %T, want Door", got.Tiles[0].Type)
	}
	if door.Text != "HOME" || door.Unknown != 7 {
		t.Errorf("door = %+v", door)
	}

	seed, ok := got.Tiles[1].Type.(world.Seed)
	if !ok {
		t.Fatalf("tile1 type = %T, want Seed", got.Tiles[1].Type)
	}
	if seed.TimePassed != 9 || seed.ItemOnTree != 2 || !seed.ReadyToHarvest {
		t.Errorf("seed = %+v", seed)
	}

	if got.Tiles[2].BackgroundItemID != 2 || got.Tiles[2].Type.Kind() != world.KindBasic {
		t.Errorf("tile2 = %+v", got.Tiles[2])
	}
	if !got.Tiles[0].Flags.HasExtraData {
		t.Error("flags not rebuilt from raw bits")
	}
}

func TestGzipRoundTrip(t *testing.T) {
	src := parseWorld(t, func(s *buf) {
		s.u16(2).u16(0).u16(0).u16(0)
	}, 1)

	var out bytes.Buffer
	if err := snapshot.WriteGzip(&out, src); err != nil {
		t.Fatalf("WriteGzip: %v", err)
	}
	// Compressed stream, not raw JSON.
	if bytes.HasPrefix(out.Bytes(), []byte("{")) {
		t.Error("output is not compressed")
	}

	got, err := snapshot.ReadGzip(&out, testCatalog())
	if err != nil {
		t.Fatalf("ReadGzip: %v", err)
	}
	if got.Name != "SNAP" || len(got.Tiles) != 1 {
		t.Errorf("world = %q with %d tiles", got.Name, len(got.Tiles))
	}
}

func TestExtraBlockSurvivesExport(t *testing.T) {
	block, err := generic.Marshal(map[string]any{"label": "spirits", "count": 3})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	src := parseWorld(t, func(s *buf) {
		s.u16(6000).u16(0).u16(0).u16(0)
		s.u32(uint32(len(block)))
		s.b = append(s.b, block...)
	}, 1)

	var out bytes.Buffer
	if err := snapshot.Write(&out, src); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := snapshot.Read(&out, testCatalog())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	m, ok := got.Tiles[0].ExtraBlock.(map[string]any)
	if !ok {
		t.Fatalf("ExtraBlock is %T, want map[string]any", got.Tiles[0].ExtraBlock)
	}
	if m["label"] != "spirits" {
		t.Errorf("label = %v", m["label"])
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := snapshot.Read(strings.NewReader("not json"), testCatalog()); err == nil {
		t.Error("expected decode error")
	}
	if _, err := snapshot.ReadGzip(strings.NewReader("not gzip"), testCatalog()); err == nil {
		t.Error("expected gzip error")
	}
}
