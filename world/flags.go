package world

// Flag bit assignments in the tile flags word.
const (
	flagExtraData    uint16 = 1 << 0
	flagParent       uint16 = 1 << 1
	flagSpliced      uint16 = 1 << 2
	flagSpawnSeeds   uint16 = 1 << 3
	flagSeedling     uint16 = 1 << 4
	flagFlippedX     uint16 = 1 << 5
	flagOn           uint16 = 1 << 6
	flagOpenToPublic uint16 = 1 << 7
	flagBgOn         uint16 = 1 << 8
	flagFgAltMode    uint16 = 1 << 9
	flagWet          uint16 = 1 << 10
	flagGlued        uint16 = 1 << 11
	flagOnFire       uint16 = 1 << 12
	flagPaintedRed   uint16 = 1 << 13
	flagPaintedGreen uint16 = 1 << 14
	flagPaintedBlue  uint16 = 1 << 15
)

// TileFlags is the unpacked form of the 16-bit tile flags word. Any bit
// pattern is accepted; conflicting combinations are preserved as-is, never
// corrected.
type TileFlags struct {
	HasExtraData      bool
	HasParent         bool
	WasSpliced        bool
	WillSpawnSeedsToo bool
	IsSeedling        bool
	FlippedX          bool
	IsOn              bool
	IsOpenToPublic    bool
	BgIsOn            bool
	FgAltMode         bool
	IsWet             bool
	Glued             bool
	OnFire            bool
	PaintedRed        bool
	PaintedGreen      bool
	PaintedBlue       bool
}

// FlagsFromBits unpacks a flags word. It is total over all 16-bit values.
func FlagsFromBits(v uint16) TileFlags {
	return TileFlags{
		HasExtraData:      v&flagExtraData != 0,
		HasParent:         v&flagParent != 0,
		WasSpliced:        v&flagSpliced != 0,
		WillSpawnSeedsToo: v&flagSpawnSeeds != 0,
		IsSeedling:        v&flagSeedling != 0,
		FlippedX:          v&flagFlippedX != 0,
		IsOn:              v&flagOn != 0,
		IsOpenToPublic:    v&flagOpenToPublic != 0,
		BgIsOn:            v&flagBgOn != 0,
		FgAltMode:         v&flagFgAltMode != 0,
		IsWet:             v&flagWet != 0,
		Glued:             v&flagGlued != 0,
		OnFire:            v&flagOnFire != 0,
		PaintedRed:        v&flagPaintedRed != 0,
		PaintedGreen:      v&flagPaintedGreen != 0,
		PaintedBlue:       v&flagPaintedBlue != 0,
	}
}

// Bits is the exact inverse of FlagsFromBits.
func (f TileFlags) Bits() uint16 {
	var v uint16
	if f.HasExtraData {
		v |= flagExtraData
	}
	if f.HasParent {
		v |= flagParent
	}
	if f.WasSpliced {
		v |= flagSpliced
	}
	if f.WillSpawnSeedsToo {
		v |= flagSpawnSeeds
	}
	if f.IsSeedling {
		v |= flagSeedling
	}
	if f.FlippedX {
		v |= flagFlippedX
	}
	if f.IsOn {
		v |= flagOn
	}
	if f.IsOpenToPublic {
		v |= flagOpenToPublic
	}
	if f.BgIsOn {
		v |= flagBgOn
	}
	if f.FgAltMode {
		v |= flagFgAltMode
	}
	if f.IsWet {
		v |= flagWet
	}
	if f.Glued {
		v |= flagGlued
	}
	if f.OnFire {
		v |= flagOnFire
	}
	if f.PaintedRed {
		v |= flagPaintedRed
	}
	if f.PaintedGreen {
		v |= flagPaintedGreen
	}
	if f.PaintedBlue {
		v |= flagPaintedBlue
	}
	return v
}
