// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

// Writer is a cursor over a caller-owned byte buffer. It never grows the
// buffer; callers size it via NeededBufSize before encoding. A mismatch
// between the computed size and the written byte count is a bug in the
// encoder and surfaces as [ErrBufferTooSmall] or leftover space.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter creates a Writer over buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// WriteByte implements [io.ByteWriter]. It fails with [ErrBufferTooSmall]
// if the buffer is full.
func (w *Writer) WriteByte(b byte) error {
	if w.pos >= len(w.buf) {
		return ErrBufferTooSmall
	}
	w.buf[w.pos] = b
	w.pos++
	return nil
}

// Write implements [io.Writer]. It fails with [ErrBufferTooSmall] if fewer
// than len(p) bytes of capacity remain, in which case nothing is written.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) > len(w.buf)-w.pos {
		return 0, ErrBufferTooSmall
	}
	n := copy(w.buf[w.pos:], p)
	w.pos += n
	return n, nil
}

// Position returns the number of bytes written so far.
func (w *Writer) Position() int {
	return w.pos
}
