// Package generic decodes the self-describing payload blocks some item
// types embed after their tile record. The decoder treats each block as an
// opaque CBOR value; callers that know the shape can use DecodeAs to get a
// typed result.
package generic
