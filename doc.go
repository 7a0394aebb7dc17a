// Package gtworld decodes the binary world-snapshot format used by the
// Growtopia sandbox game into a strongly typed in-memory model.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	gtworld/             Root package with the Catalog and GenericDecoder interfaces
//	├── world/           World data model and the snapshot decoder
//	├── catalog/         In-memory item catalog and YAML fixture loader
//	├── generic/         Escape-hatch payload decoding (CBOR-backed)
//	├── render/          Demonstration renderer producing an image from a world
//	├── snapshot/        Compressed JSON export/import of parsed worlds
//	└── errors/          Structured error types for decode diagnostics
//
// # Quick Start
//
// Parse a world snapshot:
//
//	cat, _ := catalog.LoadYAMLFile("items.yaml")
//	w := world.New(cat)
//	if err := w.Parse(data); err != nil {
//	    log.Fatal(err)
//	}
//	tile, _ := w.GetTile(10, 23)
//
// Decoding is single-threaded and synchronous. The catalog is read-only for
// the duration of a parse and may be shared across concurrent parses of
// different buffers; each parse owns its own World.
package gtworld
