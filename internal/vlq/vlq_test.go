// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlq

import (
	"bytes"
	"errors"
	"io"
	"math/bits"
	"testing"
)

func TestRead(t *testing.T) {
	tt := map[string]struct {
		input []byte
		value uint
		err   error
	}{
		"Zero":       {[]byte{0x00}, 0, nil},
		"OneByte":    {[]byte{0x7f}, 127, nil},
		"TwoBytes":   {[]byte{0x81, 0x00}, 128, nil},
		"RSAArc":     {[]byte{0x86, 0xf7, 0x0d}, 113549, nil},
		"NotMinimal": {[]byte{0x80, 0x01}, 0, ErrNotMinimal},
		"Empty":      {nil, 0, io.EOF},
		"Truncated":  {[]byte{0x86, 0xf7}, 0, io.ErrUnexpectedEOF},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			v, err := Read(bytes.NewReader(tc.input))
			if !errors.Is(err, tc.err) {
				t.Fatalf("error = %v, want %v", err, tc.err)
			}
			if err == nil && v != tc.value {
				t.Errorf("value = %d, want %d", v, tc.value)
			}
		})
	}
}

func TestReadOverflow(t *testing.T) {
	n := (bits.UintSize + 6) / 7
	input := append(bytes.Repeat([]byte{0xff}, n), 0x7f)
	if _, err := Read(bytes.NewReader(input)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("error = %v, want %v", err, ErrOverflow)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	for _, v := range []uint{0, 1, 127, 128, 16383, 16384, 113549, 1<<32 - 1} {
		var buf bytes.Buffer
		if err := Write(&buf, v); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != Length(v) {
			t.Errorf("Write(%d) produced %d bytes, Length says %d", v, buf.Len(), Length(v))
		}
		got, err := Read(&buf)
		if err != nil {
			t.Fatalf("Read after Write(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %d returned %d", v, got)
		}
	}
}
