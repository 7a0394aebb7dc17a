package world_test

import (
	"encoding/binary"
	"math"

	gtworld "github.com/CLOEI/gtworld-r"
	"github.com/CLOEI/gtworld-r/catalog"
)

// sb builds little-endian snapshot buffers for tests.
type sb struct {
	b []byte
}

func (s *sb) u8(v uint8) *sb {
	s.b = append(s.b, v)
	return s
}

func (s *sb) u16(v uint16) *sb {
	s.b = binary.LittleEndian.AppendUint16(s.b, v)
	return s
}

func (s *sb) u32(v uint32) *sb {
	s.b = binary.LittleEndian.AppendUint32(s.b, v)
	return s
}

func (s *sb) f32(v float32) *sb {
	return s.u32(math.Float32bits(v))
}

func (s *sb) str(v string) *sb {
	s.u16(uint16(len(v)))
	s.b = append(s.b, v...)
	return s
}

func (s *sb) raw(p ...byte) *sb {
	s.b = append(s.b, p...)
	return s
}

func (s *sb) pad(n int) *sb {
	s.b = append(s.b, make([]byte, n)...)
	return s
}

func (s *sb) bytes() []byte {
	return s.b
}

// header writes a v0x19 snapshot header for a width x height grid.
func header(name string, width, height uint32) *sb {
	s := &sb{}
	s.u16(0x19).u32(0).str(name).u32(width).u32(height).u32(width * height).pad(5)
	return s
}

// tile writes the four core fields of one tile record.
func (s *sb) tile(fg, bg, parent, flags uint16) *sb {
	return s.u16(fg).u16(bg).u16(parent).u16(flags)
}

// trailer writes the reserved region, an empty drop list and an all-zero
// weather trailer.
func (s *sb) trailer() *sb {
	return s.pad(12).u32(0).u32(0).u16(0).u16(0).u16(0)
}

// testCatalog covers the item ids used across the decode tests. ItemCount
// resolves to 20000, so ids above that are out of bounds.
func testCatalog() *catalog.Memory {
	return catalog.New([]gtworld.Item{
		{ID: 0, Name: "Blank", FileName: "tiles_page1.rttex"},
		{ID: 2, Name: "Dirt", FileName: "tiles_page1.rttex", BaseColor: 0x8B4513FF},
		{ID: 3, Name: "Dirt Seed", FileName: "tiles_page1.rttex", GrowTime: 5},
		{ID: 5, Name: "Door", FileName: "door.rttex"},
		{ID: 242, Name: "World Lock", FileName: "locks.rttex"},
		{ID: 4244, Name: "Chemical G", FileName: "chemtank.rttex", GrowTime: 10},
		{ID: 5814, Name: "Guild Lock", FileName: "locks.rttex"},
		{ID: 6000, Name: "Spirit Board", FileName: "spirit_board.xml"},
		{ID: 20000, Name: "Cap", FileName: "tiles_page9.rttex"},
	})
}
