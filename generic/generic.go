package generic

import (
	"github.com/fxamacker/cbor/v2"
)

// Decoder decodes escape-hatch payload blocks: self-describing byte blobs
// embedded for item types whose data is too open-ended for the fixed tile
// variant table. It implements gtworld.GenericDecoder.
type Decoder struct {
	dm cbor.DecMode
}

// NewDecoder creates a Decoder with bounded array/map preallocation, so a
// corrupt length field inside a block cannot force a large allocation.
func NewDecoder() *Decoder {
	dm, err := cbor.DecOptions{
		MaxArrayElements: 1 << 16,
		MaxMapPairs:      1 << 16,
		IndefLength:      cbor.IndefLengthAllowed,
	}.DecMode()
	if err != nil {
		// DecOptions above are static and valid; reaching this is a bug.
		panic(err)
	}
	return &Decoder{dm: dm}
}

// Decode decodes one block into its natural Go shape (maps, slices,
// scalars). The whole block must be consumed; trailing bytes are an error.
func (d *Decoder) Decode(data []byte) (any, error) {
	var v any
	if err := d.dm.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeAs decodes one block into a concrete type.
func DecodeAs[T any](d *Decoder, data []byte) (T, error) {
	var v T
	if err := d.dm.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Marshal encodes a value into a block. Test and fixture helper; the
// decoder core never writes blocks.
func Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}
