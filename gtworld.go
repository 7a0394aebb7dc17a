package gtworld

// Item is one catalog record. GrowTime is in seconds. BaseColor follows
// the item database byte order: blue in the top byte, then green, then
// red, then alpha (0xBBGGRRAA).
type Item struct {
	Name        string
	FileName    string
	TextureName string
	ID          uint32
	GrowTime    uint32
	BaseColor   uint32
	TextureX    uint8
	TextureY    uint8
}

// Catalog is the read-only item-definition store consulted during decoding.
// Implementations must be safe for concurrent readers; the decoder never
// writes through it.
type Catalog interface {
	// Get returns the record for an item id, or false if the id is unknown.
	Get(id uint32) (*Item, bool)
	// ItemCount returns the number of items the catalog holds. Tile item ids
	// above this bound are rejected as corrupt.
	ItemCount() uint32
}

// GenericDecoder decodes an escape-hatch payload block: a self-describing
// byte blob embedded for item types too open-ended for the fixed tile
// variant table.
type GenericDecoder interface {
	Decode(data []byte) (any, error)
}
