// Package snapshot exports decoded worlds as JSON and imports them back.
//
// The JSON shape tags each tile with its variant kind so the closed
// TileType set survives a round trip. A gzip-compressed variant is
// provided for archival use. Import attaches a catalog for later queries
// but does not re-validate item ids; validation belongs to the binary
// decoder.
package snapshot
