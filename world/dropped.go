package world

// DroppedItem is one item lying on the world floor. X and Y are world-space
// pixel coordinates, not tile coordinates.
type DroppedItem struct {
	X     float32
	Y     float32
	UID   uint32
	ID    uint16
	Count uint8
	Flags uint8
}

// Dropped is the world's floor-item list. LastDroppedItemUID is the
// allocator high-water mark, not an index into Items.
type Dropped struct {
	Items              []DroppedItem
	ItemsCount         uint32
	LastDroppedItemUID uint32
}
