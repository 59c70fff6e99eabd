// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

var (
	errInvalidUTF8   = errors.New("text is not valid UTF-8")
	errNotPrintable  = errors.New("text contains non-printable characters")
	errNotASCII      = errors.New("text contains non-ASCII characters")
	errOddUTF16      = errors.New("UTF-16 content has odd length")
	errUnpairedUTF16 = errors.New("UTF-16 content has unpaired surrogates")
)

// view returns a string aliasing data without copying. The string is valid
// only as long as data is.
func view(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(data), len(data))
}

//region [UNIVERSAL 12] UTF8String

// Utf8String implements the ASN.1 UTF8String type. Decoding validates that
// the content octets form well-formed UTF-8.
// See also section 41 of Rec. ITU-T X.680.
type Utf8String struct {
	id   uint64
	text string
}

func matchUtf8String(t Tag) bool { return t.Matches(TagUtf8String) }

// NewUtf8String creates a Utf8String holding text.
func NewUtf8String(text string) *Utf8String {
	return &Utf8String{text: text}
}

func buildUtf8String(h header, r *Reader) (Value, error) {
	if !utf8.Valid(h.data) {
		return nil, &ContentError{Tag: h.tag, Err: errInvalidUTF8}
	}
	return &Utf8String{id: r.NextID(), text: view(h.data)}, nil
}

// DecodeUtf8String decodes a single UTF8String value from r.
func DecodeUtf8String(r *Reader) (*Utf8String, error) {
	return decodeExact[*Utf8String](r, matchUtf8String, buildUtf8String)
}

// DecodeUtf8StringAsn1 decodes a single UTF8String from r into a tree node.
func DecodeUtf8StringAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchUtf8String, buildUtf8String)
}

// Tag returns [TagUtf8String].
func (s *Utf8String) Tag() Tag { return TagUtf8String }

// ID returns the node id assigned during decoding.
func (s *Utf8String) ID() uint64 { return s.id }

// String returns the decoded text.
func (s *Utf8String) String() string { return s.text }

// RawBytes returns the text as raw bytes.
func (s *Utf8String) RawBytes() []byte { return []byte(s.text) }

// NeededBufSize returns the number of bytes Encode will write.
func (s *Utf8String) NeededBufSize() int {
	return 1 + lengthSize(len(s.text)) + len(s.text)
}

// Encode writes the complete encoding of s into w.
func (s *Utf8String) Encode(w *Writer) error {
	return encodeText(TagUtf8String, s.text, w)
}

// Owned returns a deep copy of s with independent storage.
func (s *Utf8String) Owned() *Utf8String {
	return &Utf8String{id: s.id, text: strings.Clone(s.text)}
}

func (s *Utf8String) ownedValue() Value { return s.Owned() }

func (s *Utf8String) clearMeta() {}

//endregion

//region [UNIVERSAL 19] PrintableString

// PrintableString implements the ASN.1 PrintableString type, limited to
// upper and lower case letters, digits, space and the '()+,-./:=? symbols.
// See also section 41 of Rec. ITU-T X.680.
type PrintableString struct {
	id   uint64
	text string
}

func matchPrintableString(t Tag) bool { return t.Matches(TagPrintableString) }

// NewPrintableString creates a PrintableString holding text.
func NewPrintableString(text string) *PrintableString {
	return &PrintableString{text: text}
}

func buildPrintableString(h header, r *Reader) (Value, error) {
	for _, b := range h.data {
		if !isPrintable(b) {
			return nil, &ContentError{Tag: h.tag, Err: errNotPrintable}
		}
	}
	return &PrintableString{id: r.NextID(), text: view(h.data)}, nil
}

// isPrintable reports whether b is in the ASN.1 PrintableString set.
func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		'\'' <= b && b <= ')' ||
		'+' <= b && b <= '/' ||
		b == ' ' ||
		b == ':' ||
		b == '=' ||
		b == '?'
}

// DecodePrintableString decodes a single PrintableString value from r.
func DecodePrintableString(r *Reader) (*PrintableString, error) {
	return decodeExact[*PrintableString](r, matchPrintableString, buildPrintableString)
}

// DecodePrintableStringAsn1 decodes a single PrintableString from r into a
// tree node.
func DecodePrintableStringAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchPrintableString, buildPrintableString)
}

// Tag returns [TagPrintableString].
func (s *PrintableString) Tag() Tag { return TagPrintableString }

// ID returns the node id assigned during decoding.
func (s *PrintableString) ID() uint64 { return s.id }

// String returns the decoded text.
func (s *PrintableString) String() string { return s.text }

// NeededBufSize returns the number of bytes Encode will write.
func (s *PrintableString) NeededBufSize() int {
	return 1 + lengthSize(len(s.text)) + len(s.text)
}

// Encode writes the complete encoding of s into w.
func (s *PrintableString) Encode(w *Writer) error {
	return encodeText(TagPrintableString, s.text, w)
}

// Owned returns a deep copy of s with independent storage.
func (s *PrintableString) Owned() *PrintableString {
	return &PrintableString{id: s.id, text: strings.Clone(s.text)}
}

func (s *PrintableString) ownedValue() Value { return s.Owned() }

func (s *PrintableString) clearMeta() {}

//endregion

//region [UNIVERSAL 22] IA5String

// IA5String implements the ASN.1 IA5String type, limited to ASCII
// characters. See also section 41 of Rec. ITU-T X.680.
type IA5String struct {
	id   uint64
	text string
}

func matchIA5String(t Tag) bool { return t.Matches(TagIA5String) }

// NewIA5String creates an IA5String holding text.
func NewIA5String(text string) *IA5String {
	return &IA5String{text: text}
}

func buildIA5String(h header, r *Reader) (Value, error) {
	if !isASCII(h.data) {
		return nil, &ContentError{Tag: h.tag, Err: errNotASCII}
	}
	return &IA5String{id: r.NextID(), text: view(h.data)}, nil
}

// DecodeIA5String decodes a single IA5String value from r.
func DecodeIA5String(r *Reader) (*IA5String, error) {
	return decodeExact[*IA5String](r, matchIA5String, buildIA5String)
}

// DecodeIA5StringAsn1 decodes a single IA5String from r into a tree node.
func DecodeIA5StringAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchIA5String, buildIA5String)
}

// Tag returns [TagIA5String].
func (s *IA5String) Tag() Tag { return TagIA5String }

// ID returns the node id assigned during decoding.
func (s *IA5String) ID() uint64 { return s.id }

// String returns the decoded text.
func (s *IA5String) String() string { return s.text }

// NeededBufSize returns the number of bytes Encode will write.
func (s *IA5String) NeededBufSize() int {
	return 1 + lengthSize(len(s.text)) + len(s.text)
}

// Encode writes the complete encoding of s into w.
func (s *IA5String) Encode(w *Writer) error {
	return encodeText(TagIA5String, s.text, w)
}

// Owned returns a deep copy of s with independent storage.
func (s *IA5String) Owned() *IA5String {
	return &IA5String{id: s.id, text: strings.Clone(s.text)}
}

func (s *IA5String) ownedValue() Value { return s.Owned() }

func (s *IA5String) clearMeta() {}

//endregion

//region [UNIVERSAL 30] BMPString

// BmpString implements the ASN.1 BMPString type, a string of characters
// from the Unicode Basic Multilingual Plane encoded as big endian UTF-16.
// The raw UTF-16 octets are kept as decoded; [BmpString.String] converts
// them to a Go string. See also section 41 of Rec. ITU-T X.680.
type BmpString struct {
	id  uint64
	raw []byte
}

func matchBmpString(t Tag) bool { return t.Matches(TagBmpString) }

func buildBmpString(h header, r *Reader) (Value, error) {
	if err := validateUTF16(h.data); err != nil {
		return nil, &ContentError{Tag: h.tag, Err: err}
	}
	return &BmpString{id: r.NextID(), raw: h.data}, nil
}

// validateUTF16 checks that data is a well-formed big endian UTF-16
// encoding.
func validateUTF16(data []byte) error {
	if len(data)%2 != 0 {
		return errOddUTF16
	}
	expectLow := false
	for i := 0; i < len(data); i += 2 {
		u := uint16(data[i])<<8 | uint16(data[i+1])
		isHigh := u >= 0xD800 && u < 0xDC00
		isLow := u >= 0xDC00 && u < 0xE000
		if expectLow != isLow || (expectLow && isHigh) {
			return errUnpairedUTF16
		}
		expectLow = isHigh
	}
	if expectLow {
		return errUnpairedUTF16
	}
	return nil
}

// DecodeBmpString decodes a single BMPString value from r.
func DecodeBmpString(r *Reader) (*BmpString, error) {
	return decodeExact[*BmpString](r, matchBmpString, buildBmpString)
}

// DecodeBmpStringAsn1 decodes a single BMPString from r into a tree node.
func DecodeBmpStringAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchBmpString, buildBmpString)
}

// Tag returns [TagBmpString].
func (s *BmpString) Tag() Tag { return TagBmpString }

// ID returns the node id assigned during decoding.
func (s *BmpString) ID() uint64 { return s.id }

// RawBytes returns the raw UTF-16 content octets.
func (s *BmpString) RawBytes() []byte { return s.raw }

// String returns the content decoded into a Go string.
func (s *BmpString) String() string {
	units := make([]uint16, len(s.raw)/2)
	for i := range units {
		units[i] = uint16(s.raw[2*i])<<8 | uint16(s.raw[2*i+1])
	}
	return string(utf16.Decode(units))
}

// NeededBufSize returns the number of bytes Encode will write.
func (s *BmpString) NeededBufSize() int {
	return 1 + lengthSize(len(s.raw)) + len(s.raw)
}

// Encode writes the complete encoding of s into w.
func (s *BmpString) Encode(w *Writer) error {
	if err := w.WriteByte(byte(TagBmpString)); err != nil {
		return err
	}
	if err := writeLength(len(s.raw), w); err != nil {
		return err
	}
	_, err := w.Write(s.raw)
	return err
}

// Owned returns a deep copy of s with independent storage.
func (s *BmpString) Owned() *BmpString {
	return &BmpString{id: s.id, raw: bytes.Clone(s.raw)}
}

func (s *BmpString) ownedValue() Value { return s.Owned() }

func (s *BmpString) clearMeta() {}

//endregion

// encodeText writes the complete encoding of a primitive string leaf.
func encodeText(tag Tag, text string, w *Writer) error {
	if err := w.WriteByte(byte(tag)); err != nil {
		return err
	}
	if err := writeLength(len(text), w); err != nil {
		return err
	}
	_, err := w.Write(textBytes(text))
	return err
}

// textBytes returns the bytes of text without copying. The Writer only
// copies out of the slice, so the aliasing never escapes.
func textBytes(text string) []byte {
	if len(text) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(text), len(text))
}
