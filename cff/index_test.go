// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cff

import (
	"bytes"
	"testing"

	"goethe.dev/cff/parser"
)

// encodeIndexForTest builds the wire bytes of an INDEX from entries,
// using a 2-byte offset size; it exists only to construct fixtures,
// mirroring the shape of ReadIndex without being part of the public
// surface (this package does not serialize CFF data).
func encodeIndexForTest(entries [][]byte) []byte {
	var buf bytes.Buffer
	count := len(entries)
	buf.WriteByte(byte(count >> 8))
	buf.WriteByte(byte(count))
	if count == 0 {
		return buf.Bytes()
	}
	buf.WriteByte(2) // offSize

	off := uint32(1)
	writeOffset := func(v uint32) {
		buf.WriteByte(byte(v >> 8))
		buf.WriteByte(byte(v))
	}
	writeOffset(off)
	for _, e := range entries {
		off += uint32(len(e))
		writeOffset(off)
	}
	for _, e := range entries {
		buf.Write(e)
	}
	return buf.Bytes()
}

func TestIndexEmpty(t *testing.T) {
	// "00 00" decodes to an empty INDEX, no further bytes consumed.
	p := parser.New(bytes.NewReader([]byte{0x00, 0x00}))
	idx, err := ReadIndex(p)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 0 {
		t.Errorf("got length %d, want 0", idx.Len())
	}
	if p.Pos() != 2 {
		t.Errorf("consumed %d bytes, want 2", p.Pos())
	}
}

func TestIndexRoundTrip(t *testing.T) {
	entries := [][]byte{
		[]byte("hello"),
		{0x00},
		[]byte("CFF"),
		bytes.Repeat([]byte{0x42}, 300),
	}
	buf := encodeIndexForTest(entries)
	p := parser.New(bytes.NewReader(buf))

	idx, err := ReadIndex(p)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != len(entries) {
		t.Fatalf("got %d entries, want %d", idx.Len(), len(entries))
	}
	for i, want := range entries {
		if !bytes.Equal(idx.Get(i), want) {
			t.Errorf("entry %d: got %q, want %q", i, idx.Get(i), want)
		}
	}
}

func TestIndexMalformedFirstOffset(t *testing.T) {
	data := []byte{
		0x00, 0x01, // count = 1
		0x01,       // offSize = 1
		0x02, 0x03, // offsets: first must be 1, here it's 2
	}
	p := parser.New(bytes.NewReader(data))
	if _, err := ReadIndex(p); err == nil {
		t.Fatal("expected error for first offset != 1")
	}
}

func TestIndexMalformedNonIncreasing(t *testing.T) {
	data := []byte{
		0x00, 0x02, // count = 2
		0x01,             // offSize = 1
		0x01, 0x03, 0x02, // offsets not strictly increasing (3 then 2)
	}
	p := parser.New(bytes.NewReader(data))
	if _, err := ReadIndex(p); err == nil {
		t.Fatal("expected error for non-increasing offsets")
	}
}

func TestIndexTruncatedData(t *testing.T) {
	data := []byte{
		0x00, 0x01, // count = 1
		0x01,       // offSize = 1
		0x01, 0x05, // entry should be 4 bytes long
		0x41, // but only one byte of payload follows
	}
	p := parser.New(bytes.NewReader(data))
	if _, err := ReadIndex(p); err == nil {
		t.Fatal("expected truncated read to fail")
	}
}

// FuzzIndex checks that whenever ReadIndex accepts a byte string, it
// consumed no more bytes than were supplied and every entry of the
// result can be retrieved without panicking.
func FuzzIndex(f *testing.F) {
	f.Add(encodeIndexForTest(nil))
	f.Add(encodeIndexForTest([][]byte{{}}))
	f.Add(encodeIndexForTest([][]byte{[]byte("hello"), {}, []byte("CFF")}))
	f.Add([]byte{0x00, 0x01, 0x01, 0x01, 0x05, 0x41})

	f.Fuzz(func(t *testing.T, data []byte) {
		p := parser.New(bytes.NewReader(data))
		idx, err := ReadIndex(p)
		if err != nil {
			return
		}
		if p.Pos() > int64(len(data)) {
			t.Fatalf("consumed %d bytes, only %d available", p.Pos(), len(data))
		}
		for i := 0; i < idx.Len(); i++ {
			_ = idx.Get(i) // must not panic for any accepted INDEX
		}
	})
}
