// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import "strconv"

// Range denotes a half-open byte range [Start, End) within the original
// top-level input buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether other lies completely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// String returns the range in the notation "start..end".
func (r Range) String() string {
	return strconv.Itoa(r.Start) + ".." + strconv.Itoa(r.End)
}

// Reader is a cursor over a borrowed byte buffer. All Read operations return
// subslices of the underlying buffer without copying.
//
// A Reader carries two pieces of state beyond its cursor: an offset that
// translates local positions into positions within the original top-level
// buffer (non-zero for readers over embedded content), and the node id
// counter that is threaded through nested decode calls. A child reader used
// to decode embedded content must be seeded with the parent's counter via
// [Reader.SetNextID] and, on success, hand its final counter back the same
// way.
type Reader struct {
	data   []byte
	pos    int
	offset int
	nextID uint64
}

// NewReader creates a Reader over data. The reader borrows data and never
// modifies it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Read returns the next n bytes as a view into the underlying buffer and
// advances the cursor. It fails with [ErrUnexpectedEnd] if fewer than n
// bytes remain.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, ErrUnexpectedEnd
	}
	data := r.data[r.pos : r.pos+n]
	r.pos += n
	return data, nil
}

// ReadByte implements [io.ByteReader].
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEnd
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// PeekByte returns the next byte without advancing the cursor.
func (r *Reader) PeekByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEnd
	}
	return r.data[r.pos], nil
}

// Empty reports whether all bytes of the reader have been consumed.
func (r *Reader) Empty() bool {
	return r.pos == len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the cursor position within the reader's own buffer.
func (r *Reader) Position() int {
	return r.pos
}

// FullOffset returns the cursor position within the original top-level
// buffer. For a reader created directly over that buffer this equals
// [Reader.Position].
func (r *Reader) FullOffset() int {
	return r.offset + r.pos
}

// SetOffset sets the position of the reader's first byte within the
// original top-level buffer. It is used when creating a reader over content
// carved out of a parent buffer.
func (r *Reader) SetOffset(offset int) {
	r.offset = offset
}

// DataInRange returns a view of the underlying buffer for the given
// absolute range. The range must lie within the reader's buffer.
func (r *Reader) DataInRange(rng Range) ([]byte, error) {
	start, end := rng.Start-r.offset, rng.End-r.offset
	if start < 0 || end < start || end > len(r.data) {
		return nil, ErrRangeOutOfBounds
	}
	return r.data[start:end], nil
}

// NextID returns the next node id and advances the counter. Decoders call
// it once per completed node.
func (r *Reader) NextID() uint64 {
	id := r.nextID
	r.nextID++
	return id
}

// PeekID returns the counter value without advancing it.
func (r *Reader) PeekID() uint64 {
	return r.nextID
}

// SetNextID overwrites the node id counter. It is used to seed a child
// reader from its parent and to feed the child's final counter back.
func (r *Reader) SetNextID(id uint64) {
	r.nextID = id
}
