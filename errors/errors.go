package errors

import (
	"fmt"
	"strings"
)

// Stage indicates where in the snapshot the error occurred
type Stage string

const (
	StageHeader  Stage = "header"  // version, flags, name, extents
	StageTiles   Stage = "tiles"   // per-cell tile records
	StageExtra   Stage = "extra"   // variant payload of one tile
	StageDropped Stage = "dropped" // dropped-item list
	StageWeather Stage = "weather" // weather trailer
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated          Kind = "truncated"
	KindUnsupportedVersion Kind = "unsupported_version"
	KindOversizedTileCount Kind = "oversized_tile_count"
	KindInvalidItemID      Kind = "invalid_item_id"
	KindInvalidExtent      Kind = "invalid_extent"
	KindPayloadDecode      Kind = "payload_decode"
	KindOutOfBounds        Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the decoder. Offset is
// the byte position in the snapshot buffer at which the failure was
// detected; X/Y carry the failing tile coordinate when one exists.
type Error struct {
	Value  any
	Cause  error
	Stage  Stage
	Kind   Kind
	Detail string
	Offset int
	X      uint32
	Y      uint32
	HasPos bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	fmt.Fprintf(&b, " at offset %d", e.Offset)
	if e.HasPos {
		fmt.Fprintf(&b, " (tile %d,%d)", e.X, e.Y)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(stage Stage, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Stage: stage,
			Kind:  kind,
		},
	}
}

// Offset sets the byte offset in the snapshot buffer
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Tile sets the failing tile coordinate
func (b *Builder) Tile(x, y uint32) *Builder {
	b.err.X = x
	b.err.Y = y
	b.err.HasPos = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates a cursor-underrun error
func Truncated(stage Stage, offset int, cause error) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: "snapshot ends before field",
		Cause:  cause,
	}
}

// UnsupportedVersion creates a header version error
func UnsupportedVersion(version, minimum uint16, offset int) *Error {
	return &Error{
		Stage:  StageHeader,
		Kind:   KindUnsupportedVersion,
		Offset: offset,
		Detail: fmt.Sprintf("version %d below minimum %d", version, minimum),
		Value:  version,
	}
}

// OversizedTileCount creates a tile-count guard error
func OversizedTileCount(count, ceiling uint32, offset int) *Error {
	return &Error{
		Stage:  StageHeader,
		Kind:   KindOversizedTileCount,
		Offset: offset,
		Detail: fmt.Sprintf("tile count %d exceeds ceiling %d", count, ceiling),
		Value:  count,
	}
}

// InvalidExtent creates a header error for a grid whose extents cannot
// hold its claimed tile count
func InvalidExtent(width, height, count uint32, offset int) *Error {
	return &Error{
		Stage:  StageHeader,
		Kind:   KindInvalidExtent,
		Offset: offset,
		Detail: fmt.Sprintf("%d tiles claimed for a %dx%d grid", count, width, height),
		Value:  count,
	}
}

// InvalidItemID creates an out-of-catalog item id error for a tile
func InvalidItemID(id uint16, itemCount uint32, x, y uint32, offset int) *Error {
	return &Error{
		Stage:  StageTiles,
		Kind:   KindInvalidItemID,
		Offset: offset,
		X:      x,
		Y:      y,
		HasPos: true,
		Detail: fmt.Sprintf("item id %d beyond catalog bound %d", id, itemCount),
		Value:  id,
	}
}

// PayloadDecode wraps a nested generic-decode failure
func PayloadDecode(x, y uint32, offset int, cause error) *Error {
	return &Error{
		Stage:  StageExtra,
		Kind:   KindPayloadDecode,
		Offset: offset,
		X:      x,
		Y:      y,
		HasPos: true,
		Detail: "escape-hatch payload",
		Cause:  cause,
	}
}

// OutOfBounds creates a tile coordinate bounds error
func OutOfBounds(x, y, width, height uint32) *Error {
	return &Error{
		Stage:  StageTiles,
		Kind:   KindOutOfBounds,
		X:      x,
		Y:      y,
		HasPos: true,
		Detail: fmt.Sprintf("coordinate outside %dx%d grid", width, height),
	}
}
