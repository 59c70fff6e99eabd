// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vlq implements [Variable-length quantity] encoding, the base-128
// representation used for the sub-identifiers of a BER-encoded OBJECT
// IDENTIFIER. Each byte carries seven value bits; the eighth bit marks
// continuation.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"io"
	"math/bits"
)

var (
	// ErrNotMinimal indicates a VLQ with a leading 0x80 byte. BER requires
	// sub-identifiers to be minimally encoded.
	ErrNotMinimal = errors.New("vlq is not minimally encoded")

	// ErrOverflow indicates a VLQ that does not fit into the uint type.
	ErrOverflow = errors.New("vlq too large for the uint type")
)

// Read parses a minimally encoded unsigned VLQ from r. If r returns io.EOF
// on the first read, the returned error is io.EOF as well; a truncated VLQ
// yields io.ErrUnexpectedEOF.
func Read(r io.ByteReader) (uint, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == 0x80 {
		return 0, ErrNotMinimal
	}

	ret := uint(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)

	for b&0x80 != 0 {
		if b, err = r.ReadByte(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		ret = ret<<7 | uint(b&0x7f)

		numBits += 7
		if numBits > bits.UintSize {
			return 0, ErrOverflow
		}
	}
	return ret, nil
}

// Length returns the number of bytes needed to encode n as a VLQ.
func Length(n uint) int {
	if n == 0 {
		return 1
	}
	return (bits.Len(n) + 6) / 7
}

// Write encodes n as a minimal VLQ into w. Any error returned by w is
// returned by this function.
func Write(w io.ByteWriter, n uint) error {
	for j := Length(n) - 1; j >= 0; j-- {
		b := byte(n>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}
