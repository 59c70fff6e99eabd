// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

// Sequence implements the ASN.1 SEQUENCE type, an ordered collection of
// further data values. Children are decoded from the content octets until
// they are exhausted. See also section 25 of Rec. ITU-T X.680.
type Sequence struct {
	id       uint64
	children []*Asn1
}

func matchSequence(t Tag) bool { return t.Matches(TagSequence) }

// NewSequence creates a Sequence holding children.
func NewSequence(children ...*Asn1) *Sequence {
	return &Sequence{children: children}
}

func buildSequence(h header, r *Reader) (Value, error) {
	children, err := decodeChildren(h, r)
	if err != nil {
		return nil, err
	}
	return &Sequence{id: r.NextID(), children: children}, nil
}

// DecodeSequence decodes a single SEQUENCE value from r.
func DecodeSequence(r *Reader) (*Sequence, error) {
	return decodeExact[*Sequence](r, matchSequence, buildSequence)
}

// DecodeSequenceAsn1 decodes a single SEQUENCE from r into a tree node.
func DecodeSequenceAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchSequence, buildSequence)
}

// Tag returns [TagSequence].
func (s *Sequence) Tag() Tag { return TagSequence }

// ID returns the node id assigned during decoding.
func (s *Sequence) ID() uint64 { return s.id }

// Children returns the contained nodes in encoding order.
func (s *Sequence) Children() []*Asn1 { return s.children }

// NeededBufSize returns the number of bytes Encode will write.
func (s *Sequence) NeededBufSize() int {
	return containerBufSize(s.children)
}

// Encode writes the complete encoding of s into w.
func (s *Sequence) Encode(w *Writer) error {
	return encodeContainer(TagSequence, s.children, w)
}

// Owned returns a deep copy of s with independent storage.
func (s *Sequence) Owned() *Sequence {
	return &Sequence{id: s.id, children: ownedChildren(s.children)}
}

func (s *Sequence) ownedValue() Value { return s.Owned() }

func (s *Sequence) clearMeta() { clearChildrenMeta(s.children) }

// Set implements the ASN.1 SET type. Element order is preserved as decoded;
// no DER ordering constraint is enforced. See also section 27 of
// Rec. ITU-T X.680.
type Set struct {
	id       uint64
	children []*Asn1
}

func matchSet(t Tag) bool { return t.Matches(TagSet) }

// NewSet creates a Set holding children.
func NewSet(children ...*Asn1) *Set {
	return &Set{children: children}
}

func buildSet(h header, r *Reader) (Value, error) {
	children, err := decodeChildren(h, r)
	if err != nil {
		return nil, err
	}
	return &Set{id: r.NextID(), children: children}, nil
}

// DecodeSet decodes a single SET value from r.
func DecodeSet(r *Reader) (*Set, error) {
	return decodeExact[*Set](r, matchSet, buildSet)
}

// DecodeSetAsn1 decodes a single SET from r into a tree node.
func DecodeSetAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchSet, buildSet)
}

// Tag returns [TagSet].
func (s *Set) Tag() Tag { return TagSet }

// ID returns the node id assigned during decoding.
func (s *Set) ID() uint64 { return s.id }

// Children returns the contained nodes in encoding order.
func (s *Set) Children() []*Asn1 { return s.children }

// NeededBufSize returns the number of bytes Encode will write.
func (s *Set) NeededBufSize() int {
	return containerBufSize(s.children)
}

// Encode writes the complete encoding of s into w.
func (s *Set) Encode(w *Writer) error {
	return encodeContainer(TagSet, s.children, w)
}

// Owned returns a deep copy of s with independent storage.
func (s *Set) Owned() *Set {
	return &Set{id: s.id, children: ownedChildren(s.children)}
}

func (s *Set) ownedValue() Value { return s.Owned() }

func (s *Set) clearMeta() { clearChildrenMeta(s.children) }

// childrenBufSize returns the summed encoded size of children.
func childrenBufSize(children []*Asn1) int {
	n := 0
	for _, child := range children {
		n += child.NeededBufSize()
	}
	return n
}

// containerBufSize returns the full encoded size of a constructed value
// holding children.
func containerBufSize(children []*Asn1) int {
	n := childrenBufSize(children)
	return 1 + lengthSize(n) + n
}

// encodeContainer writes a constructed data value: the identifier octet,
// the summed child length and each child in order.
func encodeContainer(tag Tag, children []*Asn1, w *Writer) error {
	if err := w.WriteByte(byte(tag)); err != nil {
		return err
	}
	if err := writeLength(childrenBufSize(children), w); err != nil {
		return err
	}
	for _, child := range children {
		if err := child.Encode(w); err != nil {
			return err
		}
	}
	return nil
}
