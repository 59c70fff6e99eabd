// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import "bytes"

// OctetString implements the ASN.1 OCTET STRING type, an arbitrary string
// of octets. See also section 23 of Rec. ITU-T X.680.
//
// Many protocols nest a fully-formed TLV encoding inside OCTET STRING
// content, so the decoder speculatively decodes the content as an embedded
// tree. If that succeeds, the tree is available via [OctetString.Inner].
// The stored octets remain canonical: encoding always writes them verbatim,
// a mutated inner tree is never re-serialized into the content.
type OctetString struct {
	id     uint64
	octets []byte
	inner  *Asn1
}

func matchOctetString(t Tag) bool { return t.Matches(TagOctetString) }

// NewOctetString creates an OctetString over octets. Like the decoder it
// attempts to interpret octets as an embedded tree.
func NewOctetString(octets []byte) *OctetString {
	s := &OctetString{octets: octets}
	if inner, err := DecodeAsn1(NewReader(octets)); err == nil {
		s.inner = inner
	}
	return s
}

func buildOctetString(h header, r *Reader) (Value, error) {
	inner := tryDecodeNested(r, h.data, h.dataRange.Start)
	return &OctetString{id: r.NextID(), octets: h.data, inner: inner}, nil
}

// DecodeOctetString decodes a single OCTET STRING value from r.
func DecodeOctetString(r *Reader) (*OctetString, error) {
	return decodeExact[*OctetString](r, matchOctetString, buildOctetString)
}

// DecodeOctetStringAsn1 decodes a single OCTET STRING from r into a tree
// node.
func DecodeOctetStringAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchOctetString, buildOctetString)
}

// Tag returns [TagOctetString].
func (s *OctetString) Tag() Tag { return TagOctetString }

// ID returns the node id assigned during decoding.
func (s *OctetString) ID() uint64 { return s.id }

// Octets returns the content octets.
func (s *OctetString) Octets() []byte { return s.octets }

// Inner returns the embedded tree decoded from the content octets, or nil
// if the content does not begin with a decodable TLV. Content bytes after
// the embedded tree are allowed; the tree then covers only a prefix.
func (s *OctetString) Inner() *Asn1 { return s.inner }

// NeededBufSize returns the number of bytes Encode will write.
func (s *OctetString) NeededBufSize() int {
	return 1 + lengthSize(len(s.octets)) + len(s.octets)
}

// Encode writes the complete encoding of s into w.
func (s *OctetString) Encode(w *Writer) error {
	if err := w.WriteByte(byte(TagOctetString)); err != nil {
		return err
	}
	if err := writeLength(len(s.octets), w); err != nil {
		return err
	}
	_, err := w.Write(s.octets)
	return err
}

// Owned returns a deep copy of s with independent storage.
func (s *OctetString) Owned() *OctetString {
	owned := &OctetString{id: s.id, octets: bytes.Clone(s.octets)}
	if s.inner != nil {
		owned.inner = s.inner.Owned()
	}
	return owned
}

func (s *OctetString) ownedValue() Value { return s.Owned() }

func (s *OctetString) clearMeta() {
	if s.inner != nil {
		s.inner.ClearMeta()
	}
}
