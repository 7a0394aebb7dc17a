// Package world implements the Growtopia world-snapshot data model and its
// binary decoder.
//
// A snapshot is one little-endian buffer: header (version, world flags,
// name, grid extents), a dense row-major tile grid, a dropped-item list,
// and a weather trailer. Parse consumes it in a single strictly sequential
// pass:
//
//	w := world.New(cat)
//	if err := w.Parse(data); err != nil {
//	    // w.IsError is set; the error carries stage and byte offset
//	}
//
// Each tile holds foreground/background item references, sixteen packed
// flag bits, and, for interactive objects, one of the TileType variant
// payloads selected by a discriminant byte. Unknown discriminants and
// unknown weather ids decode permissively (Basic / WeatherDefault); invalid
// item ids are fatal because they leave the cursor desynchronized.
//
// Decoding is synchronous and single-threaded; a World must not be shared
// while Parse runs. The injected Catalog is read-only during a parse and
// may back any number of concurrent parses of different buffers.
package world
