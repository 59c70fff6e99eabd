// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"strconv"
	"strings"
)

// Tag is the identifier octet of a BER-encoded data value. It carries the
// tag class in its top two bits, the constructed flag in bit 5 and the tag
// number in the bottom five bits. For details, see Section 8.1.2 of
// Rec. ITU-T X.690.
//
// Tag numbers that do not fit into five bits use a multi-byte encoding that
// is not supported by this package. Decoding such a tag fails with
// [ErrLongFormTag].
type Tag byte

// Class returns the tag class encoded in the top two bits of t.
func (t Tag) Class() Class {
	return Class(t >> 6)
}

// Number returns the tag number of t. The special value 31 indicates a
// long-form tag number, which this package does not support.
func (t Tag) Number() byte {
	return byte(t) & 0x1f
}

// IsConstructed reports whether t marks a data value using the constructed
// encoding.
func (t Tag) IsConstructed() bool {
	return t&0x20 == 0x20
}

// IsUniversal reports whether t belongs to the universal class.
func (t Tag) IsUniversal() bool {
	return t.Class() == ClassUniversal
}

// IsApplication reports whether t belongs to the application class.
func (t Tag) IsApplication() bool {
	return t.Class() == ClassApplication
}

// IsContextSpecific reports whether t belongs to the context-specific class.
func (t Tag) IsContextSpecific() bool {
	return t.Class() == ClassContextSpecific
}

// IsPrivate reports whether t belongs to the private class.
func (t Tag) IsPrivate() bool {
	return t.Class() == ClassPrivate
}

// Matches reports whether t and other are the same identifier octet. Types
// that accept a range of tags (such as [ExplicitTag]) use predicate matches
// instead.
func (t Tag) Matches(other Tag) bool {
	return t == other
}

// String returns a string representation of t in a format similar to ASN.1
// notation. Context-specific tags use the plain bracket notation, all other
// classes are spelled out.
func (t Tag) String() string {
	var s strings.Builder
	s.WriteByte('[')
	if t.Class() != ClassContextSpecific {
		s.WriteString(strings.ToUpper(t.Class().String()))
		s.WriteByte(' ')
	}
	s.WriteString(strconv.FormatUint(uint64(t.Number()), 10))
	s.WriteByte(']')
	if t.IsConstructed() {
		s.WriteString("/c")
	}
	return s.String()
}

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. A Class value is an unsigned 2-bit integer.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can
// be encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// These are the single-byte identifier octets of the universal types
// implemented by this package. The tag number assignments are defined in
// Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBool            Tag = 0x01
	TagInteger         Tag = 0x02
	TagBitString       Tag = 0x03
	TagOctetString     Tag = 0x04
	TagNull            Tag = 0x05
	TagObjectID        Tag = 0x06
	TagUtf8String      Tag = 0x0c
	TagPrintableString Tag = 0x13
	TagIA5String       Tag = 0x16
	TagUtcTime         Tag = 0x17
	TagGeneralizedTime Tag = 0x18
	TagBmpString       Tag = 0x1e
	TagSequence        Tag = 0x30
	TagSet             Tag = 0x31
)
