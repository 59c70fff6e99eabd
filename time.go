// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var errTimeNotASCII = errors.New("timestamp text must be ASCII")

// UtcTime implements the ASN.1 UTCTime type. The timestamp text is kept as
// decoded and only validated to be ASCII; no calendar interpretation is
// performed. See also section 47 of Rec. ITU-T X.680.
type UtcTime struct {
	id   uint64
	text string
}

func matchUtcTime(t Tag) bool { return t.Matches(TagUtcTime) }

func buildUtcTime(h header, r *Reader) (Value, error) {
	if !isASCII(h.data) {
		return nil, &ContentError{Tag: h.tag, Err: errTimeNotASCII}
	}
	return &UtcTime{id: r.NextID(), text: view(h.data)}, nil
}

// DecodeUtcTime decodes a single UTCTime value from r.
func DecodeUtcTime(r *Reader) (*UtcTime, error) {
	return decodeExact[*UtcTime](r, matchUtcTime, buildUtcTime)
}

// DecodeUtcTimeAsn1 decodes a single UTCTime from r into a tree node.
func DecodeUtcTimeAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchUtcTime, buildUtcTime)
}

// Tag returns [TagUtcTime].
func (t *UtcTime) Tag() Tag { return TagUtcTime }

// ID returns the node id assigned during decoding.
func (t *UtcTime) ID() uint64 { return t.id }

// String returns the timestamp text, for example "910506234540Z".
func (t *UtcTime) String() string { return t.text }

// NeededBufSize returns the number of bytes Encode will write.
func (t *UtcTime) NeededBufSize() int {
	return 1 + lengthSize(len(t.text)) + len(t.text)
}

// Encode writes the complete encoding of t into w.
func (t *UtcTime) Encode(w *Writer) error {
	return encodeText(TagUtcTime, t.text, w)
}

// Owned returns a deep copy of t with independent storage.
func (t *UtcTime) Owned() *UtcTime {
	return &UtcTime{id: t.id, text: strings.Clone(t.text)}
}

func (t *UtcTime) ownedValue() Value { return t.Owned() }

func (t *UtcTime) clearMeta() {}

// GeneralizedTime implements the ASN.1 GeneralizedTime type. Like
// [UtcTime] the timestamp text is kept as decoded. See also section 46 of
// Rec. ITU-T X.680.
type GeneralizedTime struct {
	id   uint64
	text string
}

func matchGeneralizedTime(t Tag) bool { return t.Matches(TagGeneralizedTime) }

func buildGeneralizedTime(h header, r *Reader) (Value, error) {
	if !isASCII(h.data) {
		return nil, &ContentError{Tag: h.tag, Err: errTimeNotASCII}
	}
	return &GeneralizedTime{id: r.NextID(), text: view(h.data)}, nil
}

// DecodeGeneralizedTime decodes a single GeneralizedTime value from r.
func DecodeGeneralizedTime(r *Reader) (*GeneralizedTime, error) {
	return decodeExact[*GeneralizedTime](r, matchGeneralizedTime, buildGeneralizedTime)
}

// DecodeGeneralizedTimeAsn1 decodes a single GeneralizedTime from r into a
// tree node.
func DecodeGeneralizedTimeAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchGeneralizedTime, buildGeneralizedTime)
}

// Tag returns [TagGeneralizedTime].
func (t *GeneralizedTime) Tag() Tag { return TagGeneralizedTime }

// ID returns the node id assigned during decoding.
func (t *GeneralizedTime) ID() uint64 { return t.id }

// String returns the timestamp text, for example "19920521000000Z".
func (t *GeneralizedTime) String() string { return t.text }

// NeededBufSize returns the number of bytes Encode will write.
func (t *GeneralizedTime) NeededBufSize() int {
	return 1 + lengthSize(len(t.text)) + len(t.text)
}

// Encode writes the complete encoding of t into w.
func (t *GeneralizedTime) Encode(w *Writer) error {
	return encodeText(TagGeneralizedTime, t.text, w)
}

// Owned returns a deep copy of t with independent storage.
func (t *GeneralizedTime) Owned() *GeneralizedTime {
	return &GeneralizedTime{id: t.id, text: strings.Clone(t.text)}
}

func (t *GeneralizedTime) ownedValue() Value { return t.Owned() }

func (t *GeneralizedTime) clearMeta() {}

// isASCII reports whether data consists only of ASCII bytes.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
