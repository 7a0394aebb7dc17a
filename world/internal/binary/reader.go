package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrShortRead is returned when a read would consume more bytes than remain.
var ErrShortRead = errors.New("binary: short read")

// Reader is a forward-only cursor over an immutable snapshot buffer with
// little-endian fixed-width reads and position tracking. There is no rewind;
// the only deliberate jumps are Skip calls over reserved regions.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a new Reader over the given buffer. The buffer must not
// be mutated while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Skip advances the cursor past n reserved bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.Remaining() < n {
		return r.fail(n)
	}
	r.off += n
	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, r.fail(1)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, r.fail(2)
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, r.fail(4)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadF32 reads a little-endian IEEE-754 float32.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

// ReadBytes reads exactly n bytes. The returned slice aliases the underlying
// buffer; callers must copy it if they retain it past the buffer's lifetime.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, r.fail(n)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadString reads a u16 length-prefixed string. Invalid UTF-8 sequences are
// replaced with U+FFFD rather than rejected; the wire format carries
// player-supplied text with no encoding guarantee.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
}

func (r *Reader) fail(n int) error {
	return fmt.Errorf("at offset %d: need %d bytes, %d remain: %w",
		r.off, n, r.Remaining(), ErrShortRead)
}
