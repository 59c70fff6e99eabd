// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 implements a navigable, byte-range-annotated tree codec for
// ASN.1 structures encoded under the BER/DER tag-length-value rules
// specified in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// Decoding is a single synchronous descent over a borrowed buffer. It is
// zero-copy: every decoded payload and string is a view into the input
// buffer and stays valid only as long as that buffer does. Each decoded
// entity records the exact byte ranges of its tag, length and content
// octets relative to the original top-level buffer, and re-encodes to a
// byte-identical stream. Use [Asn1.Owned] to detach a tree from its input
// buffer.
//
// Every node carries a uint64 id assigned from a single counter that grows
// monotonically in decode order, including across buffers embedded in
// OCTET STRING content. Consumers can use the id to correlate a node with
// external state across re-renders of the same input.
//
// Only definite-length encodings are supported. Multi-byte (long-form) tag
// numbers and the indefinite-length form fail decoding with distinguishable
// errors.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package asn1

import "bytes"

// Value is the interface implemented by every concrete ASN.1 type in this
// package. It is a closed union: the decode dispatch tries each
// implementation in a fixed priority order, so external implementations are
// not supported.
type Value interface {
	// Tag returns the identifier octet of the entity.
	Tag() Tag

	// ID returns the node id assigned during decoding. Values constructed
	// directly (not decoded) have id 0.
	ID() uint64

	// NeededBufSize returns the number of bytes Encode will write.
	NeededBufSize() int

	// Encode writes the complete tag-length-value encoding of the entity
	// into w.
	Encode(w *Writer) error

	// ownedValue returns a deep copy of the value with storage independent
	// of the decoded input buffer. It also seals the union.
	ownedValue() Value

	// clearMeta recursively clears raw-range metadata on nested tree nodes.
	clearMeta()
}

// RawData records the provenance of a decoded entity within the original
// top-level input buffer: the contiguous raw bytes covering tag, length and
// content octets, and the individual positions of those parts. All ranges
// are absolute, even for entities decoded from embedded buffers.
type RawData struct {
	// Raw is a view of buffer[TagPosition:DataRange.End].
	Raw []byte

	// TagPosition is the offset of the identifier octet.
	TagPosition int

	// LengthRange covers the length octets.
	LengthRange Range

	// DataRange covers the content octets.
	DataRange Range
}

// LengthBytes returns the raw length octets.
func (rd *RawData) LengthBytes() []byte {
	return rd.Raw[rd.LengthRange.Start-rd.TagPosition : rd.LengthRange.End-rd.TagPosition]
}

// DataBytes returns the raw content octets.
func (rd *RawData) DataBytes() []byte {
	return rd.Raw[rd.DataRange.Start-rd.TagPosition : rd.DataRange.End-rd.TagPosition]
}

// Asn1 is a decoded tree node. It owns exactly one concrete [Value]
// (possibly containing further Asn1 nodes) together with the raw-byte
// provenance of its encoding.
type Asn1 struct {
	raw   RawData
	value Value
}

// Tag returns the identifier octet of the node's value.
func (a *Asn1) Tag() Tag { return a.value.Tag() }

// ID returns the node id assigned during decoding.
func (a *Asn1) ID() uint64 { return a.value.ID() }

// Value returns the concrete decoded value of the node.
func (a *Asn1) Value() Value { return a.value }

// RawData returns the byte provenance of the node. After [Asn1.ClearMeta]
// the returned struct is zeroed.
func (a *Asn1) RawData() *RawData { return &a.raw }

// NeededBufSize returns the number of bytes Encode will write.
func (a *Asn1) NeededBufSize() int { return a.value.NeededBufSize() }

// Encode writes the complete encoding of the node into w.
func (a *Asn1) Encode(w *Writer) error { return a.value.Encode(w) }

// EncodeBuf encodes the node into buf. The buffer must hold at least
// [Asn1.NeededBufSize] bytes.
func (a *Asn1) EncodeBuf(buf []byte) error {
	return a.value.Encode(NewWriter(buf))
}

// Owned returns a deep copy of the node whose storage is independent of the
// decoded input buffer.
func (a *Asn1) Owned() *Asn1 {
	return &Asn1{
		raw: RawData{
			Raw:         bytes.Clone(a.raw.Raw),
			TagPosition: a.raw.TagPosition,
			LengthRange: a.raw.LengthRange,
			DataRange:   a.raw.DataRange,
		},
		value: a.value.ownedValue(),
	}
}

// ClearMeta recursively clears the raw-range metadata of the node and all
// nested nodes while preserving the decoded values. It is used when the
// recorded ranges become stale, for example before re-encoding mutated
// content.
func (a *Asn1) ClearMeta() {
	a.raw = RawData{}
	a.value.clearMeta()
}

// header holds the results of reading the tag and length octets of a single
// data value encoding. Ranges are absolute.
type header struct {
	tag       Tag
	tagPos    int
	lenRange  Range
	data      []byte
	dataRange Range
}

// readHeader consumes tag, length and content octets of the next data value
// from r. The tag must satisfy match.
func readHeader(r *Reader, match func(Tag) bool) (header, error) {
	h := header{tagPos: r.FullOffset()}
	b, err := r.ReadByte()
	if err != nil {
		return h, err
	}
	h.tag = Tag(b)
	if h.tag.Number() == 0x1f {
		return h, ErrLongFormTag
	}
	if !match(h.tag) {
		return h, &UnexpectedTagError{Tag: h.tag}
	}

	length, lenRange, err := readLength(r)
	if err != nil {
		return h, err
	}
	h.lenRange = lenRange

	start := r.FullOffset()
	if h.data, err = r.Read(length); err != nil {
		return h, err
	}
	h.dataRange = Range{start, r.FullOffset()}
	return h, nil
}

// newAsn1 wraps a decoded value into a tree node, capturing the raw bytes
// from the identifier octet through the end of the content octets.
func newAsn1(r *Reader, h header, v Value) (*Asn1, error) {
	raw, err := r.DataInRange(Range{h.tagPos, h.dataRange.End})
	if err != nil {
		return nil, err
	}
	return &Asn1{
		raw: RawData{
			Raw:         raw,
			TagPosition: h.tagPos,
			LengthRange: h.lenRange,
			DataRange:   h.dataRange,
		},
		value: v,
	}, nil
}

// buildFunc constructs a concrete value from a fully read data value
// encoding. Implementations assign the node id by calling r.NextID after
// any nested content has been decoded.
type buildFunc func(h header, r *Reader) (Value, error)

type decodeEntry struct {
	match func(Tag) bool
	build buildFunc
}

// decodeTable lists every known type in dispatch priority order. Types with
// a fixed tag come first, broad predicate matches (context-specific and
// application tags) come last. The table is filled in init: the build funcs
// recurse into [DecodeAsn1], so a composite-literal initializer would form
// an initialization cycle.
var decodeTable []decodeEntry

func init() {
	decodeTable = []decodeEntry{
		{matchBool, buildBool},
		{matchInteger, buildInteger},
		{matchBitString, buildBitString},
		{matchOctetString, buildOctetString},
		{matchNull, buildNull},
		{matchObjectID, buildObjectID},
		{matchUtf8String, buildUtf8String},
		{matchPrintableString, buildPrintableString},
		{matchIA5String, buildIA5String},
		{matchUtcTime, buildUtcTime},
		{matchGeneralizedTime, buildGeneralizedTime},
		{matchBmpString, buildBmpString},
		{matchSequence, buildSequence},
		{matchSet, buildSet},
		{matchExplicitTag, buildExplicitTag},
		{matchApplicationTag, buildApplicationTag},
		{matchImplicitTag, buildImplicitTag},
	}
}

// DecodeAsn1 decodes the next data value encoding from r into a tree node.
// The identifier octet is matched against each known type in a fixed
// priority order; if no type claims it, an [UnexpectedTagError] is
// returned.
func DecodeAsn1(r *Reader) (*Asn1, error) {
	b, err := r.PeekByte()
	if err != nil {
		return nil, err
	}
	if Tag(b).Number() == 0x1f {
		return nil, ErrLongFormTag
	}
	for _, d := range decodeTable {
		if !d.match(Tag(b)) {
			continue
		}
		h, err := readHeader(r, d.match)
		if err != nil {
			return nil, err
		}
		v, err := d.build(h, r)
		if err != nil {
			return nil, err
		}
		return newAsn1(r, h, v)
	}
	return nil, &UnexpectedTagError{Tag: Tag(b)}
}

// DecodeValue works like [DecodeAsn1] but returns only the typed value,
// without raw-byte provenance.
func DecodeValue(r *Reader) (Value, error) {
	b, err := r.PeekByte()
	if err != nil {
		return nil, err
	}
	if Tag(b).Number() == 0x1f {
		return nil, ErrLongFormTag
	}
	for _, d := range decodeTable {
		if !d.match(Tag(b)) {
			continue
		}
		h, err := readHeader(r, d.match)
		if err != nil {
			return nil, err
		}
		return d.build(h, r)
	}
	return nil, &UnexpectedTagError{Tag: Tag(b)}
}

// Decode decodes the first data value encoding in buf into a tree node.
// Bytes following the first top-level data value are ignored.
func Decode(buf []byte) (*Asn1, error) {
	return DecodeAsn1(NewReader(buf))
}

// decodeExact decodes a single data value of a specific concrete type.
func decodeExact[T Value](r *Reader, match func(Tag) bool, build buildFunc) (T, error) {
	var zero T
	h, err := readHeader(r, match)
	if err != nil {
		return zero, err
	}
	v, err := build(h, r)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// decodeExactAsn1 decodes a single data value of a specific concrete type
// into a tree node.
func decodeExactAsn1(r *Reader, match func(Tag) bool, build buildFunc) (*Asn1, error) {
	h, err := readHeader(r, match)
	if err != nil {
		return nil, err
	}
	v, err := build(h, r)
	if err != nil {
		return nil, err
	}
	return newAsn1(r, h, v)
}

// decodeChildren decodes data value encodings from the content octets in h
// until they are exhausted. The child reader inherits the parent's id
// counter and absolute offset; its final counter is handed back to r.
func decodeChildren(h header, r *Reader) ([]*Asn1, error) {
	inner := NewReader(h.data)
	inner.SetOffset(h.dataRange.Start)
	inner.SetNextID(r.PeekID())

	var children []*Asn1
	for !inner.Empty() {
		child, err := DecodeAsn1(inner)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	r.SetNextID(inner.PeekID())
	return children, nil
}

// tryDecodeNested attempts to interpret data as an embedded TLV tree. This
// is best-effort: a decode failure means data has no nested interpretation
// and nil is returned. Trailing bytes after a complete embedded tree are
// allowed; the tree then covers a prefix of data. This is the one place
// where decode errors are discarded.
//
// On success the parent's id counter is advanced past the ids consumed by
// the embedded tree; on failure it is left untouched.
func tryDecodeNested(r *Reader, data []byte, start int) *Asn1 {
	inner := NewReader(data)
	inner.SetOffset(start)
	inner.SetNextID(r.PeekID())
	nested, err := DecodeAsn1(inner)
	if err != nil {
		return nil
	}
	r.SetNextID(inner.PeekID())
	return nested
}

// ownedChildren deep-copies a child node list.
func ownedChildren(children []*Asn1) []*Asn1 {
	owned := make([]*Asn1, len(children))
	for i, child := range children {
		owned[i] = child.Owned()
	}
	return owned
}

// clearChildrenMeta recursively clears metadata of a child node list.
func clearChildrenMeta(children []*Asn1) {
	for _, child := range children {
		child.ClearMeta()
	}
}
