// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/Jujumba/asn1/internal/vlq"
)

var (
	errOIDEmpty = errors.New("OBJECT IDENTIFIER content must not be empty")
	errOIDArcs  = errors.New("OBJECT IDENTIFIER needs at least two arcs")
)

// ObjectIdentifier implements the ASN.1 OBJECT IDENTIFIER type. The first
// two arcs share a single base-128 sub-identifier (40*first + second), the
// remaining arcs map to one sub-identifier each. Sub-identifiers must be
// minimally encoded. See also section 32 of Rec. ITU-T X.680.
type ObjectIdentifier struct {
	id   uint64
	arcs []uint
}

func matchObjectID(t Tag) bool { return t.Matches(TagObjectID) }

// NewObjectIdentifier creates an ObjectIdentifier from its arcs. Arcs are
// not validated here; Encode fails for an identifier with fewer than two
// arcs.
func NewObjectIdentifier(arcs ...uint) *ObjectIdentifier {
	return &ObjectIdentifier{arcs: arcs}
}

func buildObjectID(h header, r *Reader) (Value, error) {
	if len(h.data) == 0 {
		return nil, &ContentError{Tag: h.tag, Err: errOIDEmpty}
	}
	inner := NewReader(h.data)

	first, err := vlq.Read(inner)
	if err != nil {
		return nil, &ContentError{Tag: h.tag, Err: err}
	}
	arcs := []uint{0, first}
	switch {
	case first < 40:
	case first < 80:
		arcs[0], arcs[1] = 1, first-40
	default:
		arcs[0], arcs[1] = 2, first-80
	}

	for !inner.Empty() {
		arc, err := vlq.Read(inner)
		if err != nil {
			return nil, &ContentError{Tag: h.tag, Err: err}
		}
		arcs = append(arcs, arc)
	}
	return &ObjectIdentifier{id: r.NextID(), arcs: arcs}, nil
}

// DecodeObjectIdentifier decodes a single OBJECT IDENTIFIER value from r.
func DecodeObjectIdentifier(r *Reader) (*ObjectIdentifier, error) {
	return decodeExact[*ObjectIdentifier](r, matchObjectID, buildObjectID)
}

// DecodeObjectIdentifierAsn1 decodes a single OBJECT IDENTIFIER from r into
// a tree node.
func DecodeObjectIdentifierAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchObjectID, buildObjectID)
}

// Tag returns [TagObjectID].
func (oid *ObjectIdentifier) Tag() Tag { return TagObjectID }

// ID returns the node id assigned during decoding.
func (oid *ObjectIdentifier) ID() uint64 { return oid.id }

// Arcs returns the arcs of the identifier.
func (oid *ObjectIdentifier) Arcs() []uint { return oid.arcs }

// Equal reports whether oid and other represent the same identifier.
func (oid *ObjectIdentifier) Equal(other *ObjectIdentifier) bool {
	return slices.Equal(oid.arcs, other.arcs)
}

// String returns the dot-separated notation of oid.
func (oid *ObjectIdentifier) String() string {
	var s strings.Builder
	s.Grow(32)
	for i, arc := range oid.arcs {
		if i > 0 {
			s.WriteByte('.')
		}
		s.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return s.String()
}

// contentSize returns the number of content octets of the encoding.
func (oid *ObjectIdentifier) contentSize() int {
	if len(oid.arcs) < 2 {
		return 0
	}
	n := vlq.Length(40*oid.arcs[0] + oid.arcs[1])
	for _, arc := range oid.arcs[2:] {
		n += vlq.Length(arc)
	}
	return n
}

// NeededBufSize returns the number of bytes Encode will write.
func (oid *ObjectIdentifier) NeededBufSize() int {
	n := oid.contentSize()
	return 1 + lengthSize(n) + n
}

// Encode writes the complete encoding of oid into w.
func (oid *ObjectIdentifier) Encode(w *Writer) error {
	if len(oid.arcs) < 2 {
		return &ContentError{Tag: TagObjectID, Err: errOIDArcs}
	}
	if err := w.WriteByte(byte(TagObjectID)); err != nil {
		return err
	}
	if err := writeLength(oid.contentSize(), w); err != nil {
		return err
	}
	if err := vlq.Write(w, 40*oid.arcs[0]+oid.arcs[1]); err != nil {
		return err
	}
	for _, arc := range oid.arcs[2:] {
		if err := vlq.Write(w, arc); err != nil {
			return err
		}
	}
	return nil
}

// Owned returns a deep copy of oid with independent storage.
func (oid *ObjectIdentifier) Owned() *ObjectIdentifier {
	return &ObjectIdentifier{id: oid.id, arcs: slices.Clone(oid.arcs)}
}

func (oid *ObjectIdentifier) ownedValue() Value { return oid.Owned() }

func (oid *ObjectIdentifier) clearMeta() {}
