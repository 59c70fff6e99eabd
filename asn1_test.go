// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testBuffer is a small but representative encoding:
//
//	SEQUENCE {
//	    UTF8String "hi"
//	    OCTET STRING { UTF8String "ok" }   -- embedded TLV content
//	    [0] EXPLICIT { BOOLEAN TRUE }
//	}
var testBuffer = []byte{
	0x30, 0x0f,
	0x0c, 0x02, 'h', 'i',
	0x04, 0x04, 0x0c, 0x02, 'o', 'k',
	0xa0, 0x03, 0x01, 0x01, 0xff,
}

func TestDecodeDispatch(t *testing.T) {
	tt := map[string]struct {
		input []byte
		value Value
		err   error
	}{
		"Bool":        {[]byte{0x01, 0x01, 0xff}, &Bool{}, nil},
		"Integer":     {[]byte{0x02, 0x01, 0x2a}, &Integer{}, nil},
		"BitString":   {[]byte{0x03, 0x02, 0x04, 0xf0}, &BitString{}, nil},
		"OctetString": {[]byte{0x04, 0x01, 0x00}, &OctetString{}, nil},
		"Null":        {[]byte{0x05, 0x00}, &Null{}, nil},
		"ObjectID":    {[]byte{0x06, 0x03, 0x2a, 0x03, 0x04}, &ObjectIdentifier{}, nil},
		"Utf8String":  {[]byte{0x0c, 0x02, 'h', 'i'}, &Utf8String{}, nil},
		"Printable":   {[]byte{0x13, 0x02, 'h', 'i'}, &PrintableString{}, nil},
		"IA5":         {[]byte{0x16, 0x02, 'h', 'i'}, &IA5String{}, nil},
		"UtcTime":     {[]byte{0x17, 0x01, 'Z'}, &UtcTime{}, nil},
		"GenTime":     {[]byte{0x18, 0x01, 'Z'}, &GeneralizedTime{}, nil},
		"BmpString":   {[]byte{0x1e, 0x02, 0x00, 'h'}, &BmpString{}, nil},
		"Sequence":    {[]byte{0x30, 0x00}, &Sequence{}, nil},
		"Set":         {[]byte{0x31, 0x00}, &Set{}, nil},
		"Explicit":    {[]byte{0xa5, 0x00}, &ExplicitTag{}, nil},
		"Application": {[]byte{0x65, 0x00}, &ApplicationTag{}, nil},
		"Implicit":    {[]byte{0x85, 0x01, 0x00}, &ImplicitTag{}, nil},

		"UnknownTag":       {[]byte{0x0f, 0x00}, nil, &UnexpectedTagError{}},
		"LongFormTag":      {[]byte{0xbf, 0x1f, 0x00}, nil, ErrLongFormTag},
		"LongFormUnivTag":  {[]byte{0x1f, 0x00}, nil, ErrLongFormTag},
		"NonMinimalLength": {[]byte{0x04, 0x81, 0x03, 0xaa, 0xbb, 0xcc}, nil, ErrNonMinimalLength},
		"Empty":            {nil, nil, ErrUnexpectedEnd},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			asn1, err := Decode(tc.input)
			var tagErr *UnexpectedTagError
			if _, wantTagErr := tc.err.(*UnexpectedTagError); wantTagErr {
				if !errors.As(err, &tagErr) {
					t.Fatalf("Decode error = %v, want UnexpectedTagError", err)
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("Decode error = %v, want %v", err, tc.err)
			}
			if err != nil {
				return
			}
			got := asn1.Value()
			if got == nil {
				t.Fatal("Decode returned a nil value")
			}
			if gotType, wantType := typeName(got), typeName(tc.value); gotType != wantType {
				t.Errorf("Decode value type = %s, want %s", gotType, wantType)
			}
		})
	}
}

// typeName returns a stable name for the concrete type of v.
func typeName(v Value) string {
	switch v.(type) {
	case *Bool:
		return "Bool"
	case *Integer:
		return "Integer"
	case *BitString:
		return "BitString"
	case *OctetString:
		return "OctetString"
	case *Null:
		return "Null"
	case *ObjectIdentifier:
		return "ObjectIdentifier"
	case *Utf8String:
		return "Utf8String"
	case *PrintableString:
		return "PrintableString"
	case *IA5String:
		return "IA5String"
	case *UtcTime:
		return "UtcTime"
	case *GeneralizedTime:
		return "GeneralizedTime"
	case *BmpString:
		return "BmpString"
	case *Sequence:
		return "Sequence"
	case *Set:
		return "Set"
	case *ExplicitTag:
		return "ExplicitTag"
	case *ApplicationTag:
		return "ApplicationTag"
	case *ImplicitTag:
		return "ImplicitTag"
	}
	return "unknown"
}

// collectNodes walks a tree depth-first and returns every node, including
// trees embedded in octet-string and implicit-tag content.
func collectNodes(a *Asn1) []*Asn1 {
	nodes := []*Asn1{a}
	switch v := a.Value().(type) {
	case *Sequence:
		for _, c := range v.Children() {
			nodes = append(nodes, collectNodes(c)...)
		}
	case *Set:
		for _, c := range v.Children() {
			nodes = append(nodes, collectNodes(c)...)
		}
	case *ExplicitTag:
		for _, c := range v.Children() {
			nodes = append(nodes, collectNodes(c)...)
		}
	case *ApplicationTag:
		for _, c := range v.Children() {
			nodes = append(nodes, collectNodes(c)...)
		}
	case *OctetString:
		if v.Inner() != nil {
			nodes = append(nodes, collectNodes(v.Inner())...)
		}
	case *ImplicitTag:
		if v.Inner() != nil {
			nodes = append(nodes, collectNodes(v.Inner())...)
		}
	}
	return nodes
}

func TestDecodeRoundTrip(t *testing.T) {
	tt := map[string][]byte{
		"Sequence":        testBuffer,
		"LongFormLength":  append([]byte{0x0c, 0x81, 0xc8}, bytes.Repeat([]byte{'a'}, 200)...),
		"EmptyExplicit":   {0xa0, 0x00},
		"NestedExplicit":  {0xa1, 0x04, 0xa2, 0x02, 0x05, 0x00},
		"ApplicationWrap": {0x6a, 0x05, 0x13, 0x03, 'a', 'b', 'c'},
		"SetOfIntegers":   {0x31, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02},
		"DeepOctetString": {0x04, 0x06, 0x04, 0x04, 0x04, 0x02, 0x01, 0x02},
	}
	for name, input := range tt {
		t.Run(name, func(t *testing.T) {
			asn1, err := Decode(input)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got := asn1.NeededBufSize(); got != len(input) {
				t.Errorf("NeededBufSize = %d, want %d", got, len(input))
			}
			encoded := make([]byte, asn1.NeededBufSize())
			if err := asn1.EncodeBuf(encoded); err != nil {
				t.Fatalf("EncodeBuf returned error: %v", err)
			}
			if !bytes.Equal(encoded, input) {
				t.Errorf("re-encoded bytes differ:\n got %x\nwant %x", encoded, input)
			}
		})
	}
}

func TestDecodeIDMonotonicity(t *testing.T) {
	asn1, err := Decode(testBuffer)
	if err != nil {
		t.Fatal(err)
	}
	nodes := collectNodes(asn1)
	if len(nodes) != 6 {
		t.Fatalf("collected %d nodes, want 6", len(nodes))
	}

	seen := make(map[uint64]bool)
	for _, node := range nodes {
		if seen[node.ID()] {
			t.Errorf("duplicate node id %d", node.ID())
		}
		seen[node.ID()] = true
	}

	// ids are assigned when a node completes, so children precede parents
	want := map[Tag]uint64{
		TagSequence:    5,
		TagUtf8String:  0,
		TagOctetString: 2,
		Tag(0xa0):      4,
		TagBool:        3,
	}
	for _, node := range nodes {
		if node.ID() == 1 {
			// the embedded UTF8String inside the octet string
			if node.Tag() != TagUtf8String {
				t.Errorf("node id 1 has tag %v, want the embedded UTF8String", node.Tag())
			}
			continue
		}
		if want[node.Tag()] != node.ID() {
			t.Errorf("node %v has id %d, want %d", node.Tag(), node.ID(), want[node.Tag()])
		}
	}
}

func TestDecodeRangeContainment(t *testing.T) {
	asn1, err := Decode(testBuffer)
	if err != nil {
		t.Fatal(err)
	}
	for _, node := range collectNodes(asn1) {
		raw := node.RawData()
		full := Range{raw.TagPosition, raw.DataRange.End}
		if !full.Contains(raw.LengthRange) || !full.Contains(raw.DataRange) {
			t.Errorf("node %v: length range %v or data range %v outside %v",
				node.Tag(), raw.LengthRange, raw.DataRange, full)
		}
		if full.Start < 0 || full.End > len(testBuffer) {
			t.Errorf("node %v: range %v outside buffer", node.Tag(), full)
		}
		if !bytes.Equal(raw.Raw, testBuffer[raw.TagPosition:raw.DataRange.End]) {
			t.Errorf("node %v: raw bytes do not match their recorded range", node.Tag())
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	for i := 1; i < len(testBuffer); i++ {
		if _, err := Decode(testBuffer[:i]); !errors.Is(err, ErrUnexpectedEnd) {
			t.Errorf("Decode of %d-byte prefix: error = %v, want ErrUnexpectedEnd", i, err)
		}
	}
}

func TestAsn1Owned(t *testing.T) {
	buf := bytes.Clone(testBuffer)
	asn1, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	owned := asn1.Owned()

	opts := cmp.Options{cmp.Exporter(func(reflect.Type) bool { return true })}
	if diff := cmp.Diff(asn1, owned, opts); diff != "" {
		t.Fatalf("owned tree differs from original (-original +owned):\n%s", diff)
	}

	// corrupt the original buffer; the owned tree must be unaffected
	for i := range buf {
		buf[i] = 0
	}
	encoded := make([]byte, owned.NeededBufSize())
	if err := owned.EncodeBuf(encoded); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(encoded, testBuffer) {
		t.Error("owned tree still references the original buffer")
	}
}

func TestAsn1ClearMeta(t *testing.T) {
	asn1, err := Decode(testBuffer)
	if err != nil {
		t.Fatal(err)
	}
	asn1.ClearMeta()
	for _, node := range collectNodes(asn1) {
		raw := node.RawData()
		if raw.Raw != nil || raw.TagPosition != 0 || raw.LengthRange != (Range{}) || raw.DataRange != (Range{}) {
			t.Errorf("node %v still carries metadata after ClearMeta", node.Tag())
		}
	}

	// the decoded values survive the sweep
	seq := asn1.Value().(*Sequence)
	if got := seq.Children()[0].Value().(*Utf8String).String(); got != "hi" {
		t.Errorf("string value after ClearMeta = %q, want %q", got, "hi")
	}
}

func TestDecodeValue(t *testing.T) {
	v, err := DecodeValue(NewReader(testBuffer))
	if err != nil {
		t.Fatal(err)
	}
	seq, ok := v.(*Sequence)
	if !ok {
		t.Fatalf("DecodeValue returned %T, want *Sequence", v)
	}
	if len(seq.Children()) != 3 {
		t.Errorf("sequence has %d children, want 3", len(seq.Children()))
	}
}
