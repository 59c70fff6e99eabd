// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import "bytes"

// ExplicitTag implements a context-specific constructed tag wrapping an
// ordered sequence of further data values. A single explicit tag may wrap
// zero, one or several inner elements; children are decoded until the
// content octets are exhausted.
//
// Matching is deliberately broad: any constructed context-specific tag is
// claimed, regardless of its number. Callers discriminate by tag number
// after decoding via [ExplicitTag.TagNumber].
type ExplicitTag struct {
	id       uint64
	tag      Tag
	children []*Asn1
}

func matchExplicitTag(t Tag) bool { return t.IsContextSpecific() && t.IsConstructed() }

// NewExplicitTag creates an ExplicitTag with the given tag number holding
// children. Only the bottom five bits of number are used.
func NewExplicitTag(number byte, children ...*Asn1) *ExplicitTag {
	return &ExplicitTag{tag: Tag(number&0x1f | 0xa0), children: children}
}

func buildExplicitTag(h header, r *Reader) (Value, error) {
	children, err := decodeChildren(h, r)
	if err != nil {
		return nil, err
	}
	return &ExplicitTag{id: r.NextID(), tag: h.tag, children: children}, nil
}

// DecodeExplicitTag decodes a single explicit tag value from r.
func DecodeExplicitTag(r *Reader) (*ExplicitTag, error) {
	return decodeExact[*ExplicitTag](r, matchExplicitTag, buildExplicitTag)
}

// DecodeExplicitTagAsn1 decodes a single explicit tag from r into a tree
// node.
func DecodeExplicitTagAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchExplicitTag, buildExplicitTag)
}

// Tag returns the identifier octet as decoded.
func (t *ExplicitTag) Tag() Tag { return t.tag }

// TagNumber returns the tag number of the identifier octet.
func (t *ExplicitTag) TagNumber() byte { return t.tag.Number() }

// ID returns the node id assigned during decoding.
func (t *ExplicitTag) ID() uint64 { return t.id }

// Children returns the wrapped nodes in encoding order.
func (t *ExplicitTag) Children() []*Asn1 { return t.children }

// NeededBufSize returns the number of bytes Encode will write.
func (t *ExplicitTag) NeededBufSize() int {
	return containerBufSize(t.children)
}

// Encode writes the complete encoding of t into w.
func (t *ExplicitTag) Encode(w *Writer) error {
	return encodeContainer(t.tag, t.children, w)
}

// Owned returns a deep copy of t with independent storage.
func (t *ExplicitTag) Owned() *ExplicitTag {
	return &ExplicitTag{id: t.id, tag: t.tag, children: ownedChildren(t.children)}
}

func (t *ExplicitTag) ownedValue() Value { return t.Owned() }

func (t *ExplicitTag) clearMeta() { clearChildrenMeta(t.children) }

// ApplicationTag implements an application-class constructed tag. Its
// container semantics are identical to [ExplicitTag]; only the class bits
// differ.
type ApplicationTag struct {
	id       uint64
	tag      Tag
	children []*Asn1
}

func matchApplicationTag(t Tag) bool { return t.IsApplication() && t.IsConstructed() }

// NewApplicationTag creates an ApplicationTag with the given tag number
// holding children. Only the bottom five bits of number are used.
func NewApplicationTag(number byte, children ...*Asn1) *ApplicationTag {
	return &ApplicationTag{tag: Tag(number&0x1f | 0x60), children: children}
}

func buildApplicationTag(h header, r *Reader) (Value, error) {
	children, err := decodeChildren(h, r)
	if err != nil {
		return nil, err
	}
	return &ApplicationTag{id: r.NextID(), tag: h.tag, children: children}, nil
}

// DecodeApplicationTag decodes a single application tag value from r.
func DecodeApplicationTag(r *Reader) (*ApplicationTag, error) {
	return decodeExact[*ApplicationTag](r, matchApplicationTag, buildApplicationTag)
}

// DecodeApplicationTagAsn1 decodes a single application tag from r into a
// tree node.
func DecodeApplicationTagAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchApplicationTag, buildApplicationTag)
}

// Tag returns the identifier octet as decoded.
func (t *ApplicationTag) Tag() Tag { return t.tag }

// TagNumber returns the tag number of the identifier octet.
func (t *ApplicationTag) TagNumber() byte { return t.tag.Number() }

// ID returns the node id assigned during decoding.
func (t *ApplicationTag) ID() uint64 { return t.id }

// Children returns the wrapped nodes in encoding order.
func (t *ApplicationTag) Children() []*Asn1 { return t.children }

// NeededBufSize returns the number of bytes Encode will write.
func (t *ApplicationTag) NeededBufSize() int {
	return containerBufSize(t.children)
}

// Encode writes the complete encoding of t into w.
func (t *ApplicationTag) Encode(w *Writer) error {
	return encodeContainer(t.tag, t.children, w)
}

// Owned returns a deep copy of t with independent storage.
func (t *ApplicationTag) Owned() *ApplicationTag {
	return &ApplicationTag{id: t.id, tag: t.tag, children: ownedChildren(t.children)}
}

func (t *ApplicationTag) ownedValue() Value { return t.Owned() }

func (t *ApplicationTag) clearMeta() { clearChildrenMeta(t.children) }

// ImplicitTag implements a context-specific primitive tag. The content
// octets are opaque, so like [OctetString] the decoder speculatively
// interprets them as an embedded tree, available via [ImplicitTag.Inner].
type ImplicitTag struct {
	id     uint64
	tag    Tag
	octets []byte
	inner  *Asn1
}

func matchImplicitTag(t Tag) bool { return t.IsContextSpecific() && !t.IsConstructed() }

// NewImplicitTag creates an ImplicitTag with the given tag number holding
// octets. Only the bottom five bits of number are used.
func NewImplicitTag(number byte, octets []byte) *ImplicitTag {
	t := &ImplicitTag{tag: Tag(number&0x1f | 0x80), octets: octets}
	if inner, err := DecodeAsn1(NewReader(octets)); err == nil {
		t.inner = inner
	}
	return t
}

func buildImplicitTag(h header, r *Reader) (Value, error) {
	inner := tryDecodeNested(r, h.data, h.dataRange.Start)
	return &ImplicitTag{id: r.NextID(), tag: h.tag, octets: h.data, inner: inner}, nil
}

// DecodeImplicitTag decodes a single implicit tag value from r.
func DecodeImplicitTag(r *Reader) (*ImplicitTag, error) {
	return decodeExact[*ImplicitTag](r, matchImplicitTag, buildImplicitTag)
}

// DecodeImplicitTagAsn1 decodes a single implicit tag from r into a tree
// node.
func DecodeImplicitTagAsn1(r *Reader) (*Asn1, error) {
	return decodeExactAsn1(r, matchImplicitTag, buildImplicitTag)
}

// Tag returns the identifier octet as decoded.
func (t *ImplicitTag) Tag() Tag { return t.tag }

// TagNumber returns the tag number of the identifier octet.
func (t *ImplicitTag) TagNumber() byte { return t.tag.Number() }

// ID returns the node id assigned during decoding.
func (t *ImplicitTag) ID() uint64 { return t.id }

// Octets returns the content octets.
func (t *ImplicitTag) Octets() []byte { return t.octets }

// Inner returns the embedded tree decoded from the content octets, or nil
// if the content does not begin with a decodable TLV. Content bytes after
// the embedded tree are allowed; the tree then covers only a prefix.
func (t *ImplicitTag) Inner() *Asn1 { return t.inner }

// NeededBufSize returns the number of bytes Encode will write.
func (t *ImplicitTag) NeededBufSize() int {
	return 1 + lengthSize(len(t.octets)) + len(t.octets)
}

// Encode writes the complete encoding of t into w.
func (t *ImplicitTag) Encode(w *Writer) error {
	if err := w.WriteByte(byte(t.tag)); err != nil {
		return err
	}
	if err := writeLength(len(t.octets), w); err != nil {
		return err
	}
	_, err := w.Write(t.octets)
	return err
}

// Owned returns a deep copy of t with independent storage.
func (t *ImplicitTag) Owned() *ImplicitTag {
	owned := &ImplicitTag{id: t.id, tag: t.tag, octets: bytes.Clone(t.octets)}
	if t.inner != nil {
		owned.inner = t.inner.Owned()
	}
	return owned
}

func (t *ImplicitTag) ownedValue() Value { return t.Owned() }

func (t *ImplicitTag) clearMeta() {
	if t.inner != nil {
		t.inner.ClearMeta()
	}
}
