// Package errors provides structured error types for the gtworld decoder.
//
// Errors are categorized by Stage (where in the snapshot the error occurred)
// and Kind (error category). The Error type includes the byte offset in the
// snapshot buffer, the failing tile coordinate when one exists, and a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.StageTiles, errors.KindTruncated).
//		Offset(412).
//		Tile(3, 7).
//		Detail("reading flags word").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.StageDropped, off, cause)
//	err := errors.InvalidItemID(id, itemCount, x, y, off)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
