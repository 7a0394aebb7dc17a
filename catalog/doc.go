// Package catalog provides item-definition stores implementing the
// gtworld.Catalog interface consumed by the decoder. The catalog itself is
// an external collaborator; this package only supplies an in-memory
// implementation and a YAML fixture loader for tests and tooling.
package catalog
