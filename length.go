// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"math"
	"math/bits"
)

// readLength decodes a definite-length field from r. It returns the length
// value and the absolute byte range of the length octets themselves.
//
// Lengths below 128 use the short form. In the long form the first octet
// carries the number of following big-endian length octets in its bottom
// seven bits. The reserved indefinite form (first octet 0x80) fails with
// [ErrIndefiniteLength], values exceeding the int type fail with
// [ErrLengthTooLarge]. Long-form encodings with a leading zero octet or a
// value below 128 fail with [ErrNonMinimalLength]: writeLength always
// emits the minimal form, so only minimal lengths keep re-encoding
// byte-identical.
func readLength(r *Reader) (int, Range, error) {
	start := r.FullOffset()
	b, err := r.ReadByte()
	if err != nil {
		return 0, Range{}, err
	}
	if b&0x80 == 0 {
		return int(b), Range{start, r.FullOffset()}, nil
	}

	numBytes := int(b & 0x7f)
	if numBytes == 0 {
		return 0, Range{}, ErrIndefiniteLength
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		b, err = r.ReadByte()
		if err != nil {
			return 0, Range{}, err
		}
		if i == 0 && b == 0 {
			return 0, Range{}, ErrNonMinimalLength
		}
		if length > math.MaxInt>>8 {
			return 0, Range{}, ErrLengthTooLarge
		}
		length = length<<8 | int(b)
	}
	if length < 128 {
		return 0, Range{}, ErrNonMinimalLength
	}
	return length, Range{start, r.FullOffset()}, nil
}

// writeLength encodes length into w using the minimal definite-length form.
func writeLength(length int, w *Writer) error {
	if length < 128 {
		return w.WriteByte(byte(length))
	}
	numBytes := (bits.Len(uint(length)) + 7) / 8
	err := w.WriteByte(0x80 | byte(numBytes))
	for ; numBytes > 0 && err == nil; numBytes-- {
		err = w.WriteByte(byte(length >> uint((numBytes-1)*8)))
	}
	return err
}

// lengthSize returns the number of octets writeLength emits for length.
// Every encoder uses it to precompute buffer sizes, so it must stay exactly
// consistent with writeLength.
func lengthSize(length int) int {
	if length < 128 {
		return 1
	}
	return 1 + (bits.Len(uint(length))+7)/8
}
