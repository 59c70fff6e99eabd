// Copyright 2026 Jujumba. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderRead(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})

	data, err := r.Read(2)
	if err != nil {
		t.Fatalf("Read(2) returned error: %v", err)
	}
	if !bytes.Equal(data, []byte{1, 2}) {
		t.Errorf("Read(2) = %v, want [1 2]", data)
	}
	if r.Position() != 2 || r.Remaining() != 3 {
		t.Errorf("position = %d, remaining = %d, want 2 and 3", r.Position(), r.Remaining())
	}

	if _, err = r.Read(4); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Read(4) error = %v, want ErrUnexpectedEnd", err)
	}
	// a failed read must not advance the cursor
	if r.Position() != 2 {
		t.Errorf("position after failed read = %d, want 2", r.Position())
	}

	if _, err = r.Read(3); err != nil {
		t.Fatalf("Read(3) returned error: %v", err)
	}
	if !r.Empty() {
		t.Error("reader should be empty")
	}
	if _, err = r.ReadByte(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadByte at end error = %v, want ErrUnexpectedEnd", err)
	}
}

func TestReaderZeroCopy(t *testing.T) {
	buf := []byte{10, 20, 30}
	r := NewReader(buf)
	data, _ := r.Read(3)
	buf[1] = 99
	if data[1] != 99 {
		t.Error("Read must return a view into the underlying buffer, not a copy")
	}
}

func TestReaderOffsets(t *testing.T) {
	r := NewReader(make([]byte, 8))
	r.SetOffset(100)
	if _, err := r.Read(3); err != nil {
		t.Fatal(err)
	}
	if r.Position() != 3 {
		t.Errorf("Position = %d, want 3", r.Position())
	}
	if r.FullOffset() != 103 {
		t.Errorf("FullOffset = %d, want 103", r.FullOffset())
	}
}

func TestReaderDataInRange(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	r.SetOffset(10)

	data, err := r.DataInRange(Range{11, 13})
	if err != nil {
		t.Fatalf("DataInRange returned error: %v", err)
	}
	if !bytes.Equal(data, []byte{2, 3}) {
		t.Errorf("DataInRange = %v, want [2 3]", data)
	}

	for _, rng := range []Range{{9, 11}, {12, 15}, {13, 12}} {
		if _, err := r.DataInRange(rng); !errors.Is(err, ErrRangeOutOfBounds) {
			t.Errorf("DataInRange(%v) error = %v, want ErrRangeOutOfBounds", rng, err)
		}
	}
}

func TestReaderIDCounter(t *testing.T) {
	r := NewReader(nil)
	if r.NextID() != 0 || r.NextID() != 1 {
		t.Error("NextID must return consecutive ids starting at 0")
	}
	if r.PeekID() != 2 {
		t.Errorf("PeekID = %d, want 2", r.PeekID())
	}
	r.SetNextID(7)
	if r.NextID() != 7 {
		t.Error("SetNextID must overwrite the counter")
	}
}

func TestWriter(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)

	if err := w.WriteByte(1); err != nil {
		t.Fatal(err)
	}
	if n, err := w.Write([]byte{2, 3}); err != nil || n != 2 {
		t.Fatalf("Write = (%d, %v), want (2, nil)", n, err)
	}

	// only one byte of capacity remains
	if _, err := w.Write([]byte{4, 5}); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Write past capacity error = %v, want ErrBufferTooSmall", err)
	}
	if w.Position() != 3 {
		t.Errorf("failed Write advanced the cursor to %d, want 3", w.Position())
	}

	if err := w.WriteByte(4); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteByte(5); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("WriteByte past capacity error = %v, want ErrBufferTooSmall", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Errorf("buffer = %v, want [1 2 3 4]", buf)
	}
}
