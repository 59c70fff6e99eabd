// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"errors"
	"strconv"
)

var (
	// ErrUnexpectedEnd indicates that a decode operation needed more bytes
	// than remain in the input buffer.
	ErrUnexpectedEnd = errors.New("asn1: unexpected end of data")

	// ErrBufferTooSmall indicates that an encode operation ran out of space
	// in the destination buffer. Buffers must be sized via NeededBufSize.
	ErrBufferTooSmall = errors.New("asn1: buffer too small")

	// ErrIndefiniteLength indicates the reserved indefinite-length form,
	// which this package does not support.
	ErrIndefiniteLength = errors.New("asn1: indefinite length form is not supported")

	// ErrLengthTooLarge indicates a length value that does not fit into the
	// int type.
	ErrLengthTooLarge = errors.New("asn1: length does not fit into the int type")

	// ErrNonMinimalLength indicates a long-form length with excess octets.
	// Only minimally encoded lengths re-encode byte-identically, so they
	// are rejected at decode time.
	ErrNonMinimalLength = errors.New("asn1: length is not minimally encoded")

	// ErrLongFormTag indicates a multi-byte tag number, which this package
	// does not support.
	ErrLongFormTag = errors.New("asn1: long-form tag numbers are not supported")

	// ErrRangeOutOfBounds indicates a byte range that does not lie within
	// the underlying buffer of a Reader.
	ErrRangeOutOfBounds = errors.New("asn1: range out of buffer bounds")
)

// UnexpectedTagError indicates a tag that does not belong to the requested
// type, or that no known type claims during dispatch.
type UnexpectedTagError struct {
	Tag Tag
}

func (e *UnexpectedTagError) Error() string {
	return "asn1: unexpected tag " + e.Tag.String() + " (0x" + strconv.FormatUint(uint64(e.Tag), 16) + ")"
}

// ContentError indicates that the content octets of a data value are
// malformed for its type, for example text that is not valid UTF-8.
type ContentError struct {
	Tag Tag
	Err error
}

func (e *ContentError) Error() string {
	return "asn1: invalid content for " + e.Tag.String() + ": " + e.Err.Error()
}

func (e *ContentError) Unwrap() error { return e.Err }
