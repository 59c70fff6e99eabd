// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeExplicitTag(t *testing.T) {
	tt := map[string]struct {
		input    []byte
		number   byte
		children int
	}{
		"Empty":       {[]byte{0xa0, 0x00}, 0, 0},
		"Single":      {[]byte{0xa3, 0x03, 0x02, 0x01, 0x2a}, 3, 1},
		"Multiple":    {[]byte{0xa1, 0x07, 0x05, 0x00, 0x02, 0x01, 0x01, 0x31, 0x00}, 1, 3},
		"HighestNum":  {[]byte{0xbe, 0x02, 0x05, 0x00}, 30, 1},
		"NestedTags":  {[]byte{0xa0, 0x04, 0xa1, 0x02, 0xa2, 0x00}, 0, 1},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			v, err := DecodeExplicitTag(NewReader(tc.input))
			if err != nil {
				t.Fatalf("DecodeExplicitTag returned error: %v", err)
			}
			if v.TagNumber() != tc.number {
				t.Errorf("TagNumber = %d, want %d", v.TagNumber(), tc.number)
			}
			if len(v.Children()) != tc.children {
				t.Errorf("got %d children, want %d", len(v.Children()), tc.children)
			}

			buf := make([]byte, v.NeededBufSize())
			if err := v.Encode(NewWriter(buf)); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, tc.input) {
				t.Errorf("encoded %x, want %x", buf, tc.input)
			}
		})
	}
}

func TestDecodeExplicitTagRejectsPrimitive(t *testing.T) {
	_, err := DecodeExplicitTag(NewReader([]byte{0x80, 0x01, 0x00}))
	var tagErr *UnexpectedTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("error = %v, want UnexpectedTagError", err)
	}
}

func TestDecodeApplicationTag(t *testing.T) {
	input := []byte{0x6a, 0x05, 0x13, 0x03, 'a', 'b', 'c'}
	v, err := DecodeApplicationTag(NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if v.TagNumber() != 10 {
		t.Errorf("TagNumber = %d, want 10", v.TagNumber())
	}
	if len(v.Children()) != 1 {
		t.Fatalf("got %d children, want 1", len(v.Children()))
	}
	if got := v.Children()[0].Value().(*PrintableString).String(); got != "abc" {
		t.Errorf("child = %q, want %q", got, "abc")
	}

	buf := make([]byte, v.NeededBufSize())
	if err := v.Encode(NewWriter(buf)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, input) {
		t.Errorf("encoded %x, want %x", buf, input)
	}
}

func TestDecodeImplicitTag(t *testing.T) {
	tt := map[string]struct {
		input  []byte
		number byte
		octets []byte
		nested bool
	}{
		"Opaque": {
			input:  []byte{0x80, 0x03, 'f', 'o', 'o'},
			number: 0,
			octets: []byte("foo"),
		},
		"NestedTLV": {
			input:  []byte{0x81, 0x02, 0x05, 0x00},
			number: 1,
			octets: []byte{0x05, 0x00},
			nested: true,
		},
		"Empty": {
			input:  []byte{0x9e, 0x00},
			number: 30,
			octets: nil,
		},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			v, err := DecodeImplicitTag(NewReader(tc.input))
			if err != nil {
				t.Fatalf("DecodeImplicitTag returned error: %v", err)
			}
			if v.TagNumber() != tc.number {
				t.Errorf("TagNumber = %d, want %d", v.TagNumber(), tc.number)
			}
			if !bytes.Equal(v.Octets(), tc.octets) {
				t.Errorf("Octets = %x, want %x", v.Octets(), tc.octets)
			}
			if (v.Inner() != nil) != tc.nested {
				t.Errorf("Inner = %v, want nested = %v", v.Inner(), tc.nested)
			}

			buf := make([]byte, v.NeededBufSize())
			if err := v.Encode(NewWriter(buf)); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, tc.input) {
				t.Errorf("encoded %x, want %x", buf, tc.input)
			}
		})
	}
}

func TestNewTagConstructors(t *testing.T) {
	if got := NewExplicitTag(3).Tag(); got != Tag(0xa3) {
		t.Errorf("NewExplicitTag(3) tag = %#x, want 0xa3", byte(got))
	}
	if got := NewExplicitTag(0xff).Tag(); got != Tag(0xbf) {
		t.Errorf("NewExplicitTag(0xff) tag = %#x, want 0xbf", byte(got))
	}
	if got := NewApplicationTag(10).Tag(); got != Tag(0x6a) {
		t.Errorf("NewApplicationTag(10) tag = %#x, want 0x6a", byte(got))
	}
	if got := NewImplicitTag(1, nil).Tag(); got != Tag(0x81) {
		t.Errorf("NewImplicitTag(1, nil) tag = %#x, want 0x81", byte(got))
	}
	if NewImplicitTag(1, []byte{0x05, 0x00}).Inner() == nil {
		t.Error("NewImplicitTag did not decode the embedded tree")
	}
}
