// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"errors"
)

var (
	errBoolLength      = errors.New("BOOLEAN content must be exactly one octet")
	errIntegerEmpty    = errors.New("INTEGER content must not be empty")
	errBitStringEmpty  = errors.New("BIT STRING content must hold the unused-bits octet")
	errBitStringUnused = errors.New("BIT STRING unused-bits octet out of range")
	errNullContent     = errors.New("NULL content must be empty")
)

//region [UNIVERSAL 1] BOOLEAN

// Bool implements the ASN.1 BOOLEAN type. BER permits any non-zero content
// octet for TRUE, so the raw octet is preserved for byte-exact re-encoding.
// See also section 18 of Rec. ITU-T X.680.
type Bool struct {
	id  uint64
	raw byte
}

func matchBool(t Tag) bool { return t.Matches(TagBool) }

// NewBool creates a Bool holding value, using the DER octets 0xFF and 0x00.
func NewBool(value bool) *Bool {
	if value {
		return &Bool{raw: 0xff}
	}
	return &Bool{}
}

func buildBool(h header, r *Reader) (Value, error) {
	if len(h.data) != 1 {
		return nil, &ContentError{Tag: h.tag, Err: errBoolLength}
	}
	return &Bool{id: r.NextID(), raw: h.data[0]}, nil
}

// DecodeBool decodes a single BOOLEAN value from r.
func DecodeBool(r *Reader) (*Bool, error) {
	return decodeExact[*Bool](r, matchBool, buildBool)
}

// DecodeBoolAsn1 decodes a single BOOLEAN from r into a tree node.
func DecodeBoolAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchBool, buildBool)
}

// Tag returns [TagBool].
func (b *Bool) Tag() Tag { return TagBool }

// ID returns the node id assigned during decoding.
func (b *Bool) ID() uint64 { return b.id }

// Value returns the truth value of b.
func (b *Bool) Value() bool { return b.raw != 0 }

// RawByte returns the content octet as decoded.
func (b *Bool) RawByte() byte { return b.raw }

// NeededBufSize returns the number of bytes Encode will write.
func (b *Bool) NeededBufSize() int { return 3 }

// Encode writes the complete encoding of b into w.
func (b *Bool) Encode(w *Writer) error {
	if err := w.WriteByte(byte(TagBool)); err != nil {
		return err
	}
	if err := writeLength(1, w); err != nil {
		return err
	}
	return w.WriteByte(b.raw)
}

// Owned returns a copy of b. Bool holds no borrowed storage, so the copy is
// trivially independent.
func (b *Bool) Owned() *Bool { c := *b; return &c }

func (b *Bool) ownedValue() Value { return b.Owned() }

func (b *Bool) clearMeta() {}

//endregion

//region [UNIVERSAL 2] INTEGER

// Integer implements the ASN.1 INTEGER type. The two's-complement content
// octets are held raw to support arbitrary precision and byte-exact
// re-encoding; [Integer.Int64] converts values that fit into an int64.
// See also section 19 of Rec. ITU-T X.680.
type Integer struct {
	id  uint64
	raw []byte
}

func matchInteger(t Tag) bool { return t.Matches(TagInteger) }

// NewInteger creates an Integer holding value.
func NewInteger(value int64) *Integer {
	// count the meaningful octets of the two's-complement representation
	n := 1
	for v := value; v > 0x7f || v < -0x80; v >>= 8 {
		n++
	}
	raw := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		raw[i] = byte(value)
		value >>= 8
	}
	return &Integer{raw: raw}
}

func buildInteger(h header, r *Reader) (Value, error) {
	if len(h.data) == 0 {
		return nil, &ContentError{Tag: h.tag, Err: errIntegerEmpty}
	}
	return &Integer{id: r.NextID(), raw: h.data}, nil
}

// DecodeInteger decodes a single INTEGER value from r.
func DecodeInteger(r *Reader) (*Integer, error) {
	return decodeExact[*Integer](r, matchInteger, buildInteger)
}

// DecodeIntegerAsn1 decodes a single INTEGER from r into a tree node.
func DecodeIntegerAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchInteger, buildInteger)
}

// Tag returns [TagInteger].
func (i *Integer) Tag() Tag { return TagInteger }

// ID returns the node id assigned during decoding.
func (i *Integer) ID() uint64 { return i.id }

// Raw returns the two's-complement content octets as decoded.
func (i *Integer) Raw() []byte { return i.raw }

// Int64 returns the value of i as an int64. The second return value is
// false if the value does not fit.
func (i *Integer) Int64() (int64, bool) {
	raw := i.raw
	// skip sign-extension padding so values like 0x00FF... still fit
	for len(raw) > 8 && (raw[0] == 0 && raw[1]&0x80 == 0 || raw[0] == 0xff && raw[1]&0x80 != 0) {
		raw = raw[1:]
	}
	if len(raw) > 8 {
		return 0, false
	}
	v := int64(int8(raw[0])) // sign extend
	for _, b := range raw[1:] {
		v = v<<8 | int64(b)
	}
	return v, true
}

// NeededBufSize returns the number of bytes Encode will write.
func (i *Integer) NeededBufSize() int {
	return 1 + lengthSize(len(i.raw)) + len(i.raw)
}

// Encode writes the complete encoding of i into w.
func (i *Integer) Encode(w *Writer) error {
	if err := w.WriteByte(byte(TagInteger)); err != nil {
		return err
	}
	if err := writeLength(len(i.raw), w); err != nil {
		return err
	}
	_, err := w.Write(i.raw)
	return err
}

// Owned returns a deep copy of i with independent storage.
func (i *Integer) Owned() *Integer {
	return &Integer{id: i.id, raw: bytes.Clone(i.raw)}
}

func (i *Integer) ownedValue() Value { return i.Owned() }

func (i *Integer) clearMeta() {}

//endregion

//region [UNIVERSAL 3] BIT STRING

// BitString implements the ASN.1 BIT STRING type. The first content octet
// gives the number of unused bits in the final octet; the content octets
// are kept raw including that octet. See also section 22 of
// Rec. ITU-T X.680.
type BitString struct {
	id  uint64
	raw []byte
}

func matchBitString(t Tag) bool { return t.Matches(TagBitString) }

func buildBitString(h header, r *Reader) (Value, error) {
	if len(h.data) == 0 {
		return nil, &ContentError{Tag: h.tag, Err: errBitStringEmpty}
	}
	unused := h.data[0]
	if unused > 7 || (unused != 0 && len(h.data) == 1) {
		return nil, &ContentError{Tag: h.tag, Err: errBitStringUnused}
	}
	return &BitString{id: r.NextID(), raw: h.data}, nil
}

// DecodeBitString decodes a single BIT STRING value from r.
func DecodeBitString(r *Reader) (*BitString, error) {
	return decodeExact[*BitString](r, matchBitString, buildBitString)
}

// DecodeBitStringAsn1 decodes a single BIT STRING from r into a tree node.
func DecodeBitStringAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchBitString, buildBitString)
}

// Tag returns [TagBitString].
func (s *BitString) Tag() Tag { return TagBitString }

// ID returns the node id assigned during decoding.
func (s *BitString) ID() uint64 { return s.id }

// UnusedBits returns the number of unused bits in the final octet.
func (s *BitString) UnusedBits() byte { return s.raw[0] }

// Bytes returns the packed bits, without the unused-bits octet.
func (s *BitString) Bytes() []byte { return s.raw[1:] }

// BitLength returns the number of valid bits.
func (s *BitString) BitLength() int {
	return (len(s.raw)-1)*8 - int(s.raw[0])
}

// NeededBufSize returns the number of bytes Encode will write.
func (s *BitString) NeededBufSize() int {
	return 1 + lengthSize(len(s.raw)) + len(s.raw)
}

// Encode writes the complete encoding of s into w.
func (s *BitString) Encode(w *Writer) error {
	if err := w.WriteByte(byte(TagBitString)); err != nil {
		return err
	}
	if err := writeLength(len(s.raw), w); err != nil {
		return err
	}
	_, err := w.Write(s.raw)
	return err
}

// Owned returns a deep copy of s with independent storage.
func (s *BitString) Owned() *BitString {
	return &BitString{id: s.id, raw: bytes.Clone(s.raw)}
}

func (s *BitString) ownedValue() Value { return s.Owned() }

func (s *BitString) clearMeta() {}

//endregion

//region [UNIVERSAL 5] NULL

// Null implements the ASN.1 NULL type. Its content is always empty.
// See also section 24 of Rec. ITU-T X.680.
type Null struct {
	id uint64
}

func matchNull(t Tag) bool { return t.Matches(TagNull) }

// NewNull creates a Null value.
func NewNull() *Null { return &Null{} }

func buildNull(h header, r *Reader) (Value, error) {
	if len(h.data) != 0 {
		return nil, &ContentError{Tag: h.tag, Err: errNullContent}
	}
	return &Null{id: r.NextID()}, nil
}

// DecodeNull decodes a single NULL value from r.
func DecodeNull(r *Reader) (*Null, error) {
	return decodeExact[*Null](r, matchNull, buildNull)
}

// DecodeNullAsn1 decodes a single NULL from r into a tree node.
func DecodeNullAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchNull, buildNull)
}

// Tag returns [TagNull].
func (n *Null) Tag() Tag { return TagNull }

// ID returns the node id assigned during decoding.
func (n *Null) ID() uint64 { return n.id }

// NeededBufSize returns the number of bytes Encode will write.
func (n *Null) NeededBufSize() int { return 2 }

// Encode writes the complete encoding of n into w.
func (n *Null) Encode(w *Writer) error {
	if err := w.WriteByte(byte(TagNull)); err != nil {
		return err
	}
	return writeLength(0, w)
}

// Owned returns a copy of n. Null holds no borrowed storage, so the copy is
// trivially independent.
func (n *Null) Owned() *Null { c := *n; return &c }

func (n *Null) ownedValue() Value { return n.Owned() }

func (n *Null) clearMeta() {}

//endregion
