// Package render draws decoded worlds as images.
//
// The default output is one flat-colored square per tile, using the
// catalog base colors the same way the game's minimap does. Attaching a
// TextureCache upgrades tiles to real sprites where the converted sheet
// files are available on disk. Rendering is a demonstration layer: it
// never feeds back into decoding.
package render
