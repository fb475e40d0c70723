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

func TestOffsetSize(t *testing.T) {
	for _, size := range []byte{1, 2, 3, 4} {
		p := parser.New(bytes.NewReader([]byte{size}))
		got, err := readOffsetSize(p)
		if err != nil {
			t.Errorf("size %d: unexpected error %v", size, err)
		}
		if uint8(got) != size {
			t.Errorf("size %d: got %d", size, got)
		}
	}
	for _, size := range []byte{0, 5, 255} {
		p := parser.New(bytes.NewReader([]byte{size}))
		if _, err := readOffsetSize(p); err == nil {
			t.Errorf("size %d: expected error", size)
		}
	}
}

func TestReadOffsetWidths(t *testing.T) {
	cases := []struct {
		size OffsetSize
		data []byte
		want Offset
	}{
		{1, []byte{0x7f}, 0x7f},
		{2, []byte{0x01, 0x02}, 0x0102},
		{3, []byte{0x01, 0x02, 0x03}, 0x010203},
		{4, []byte{0x01, 0x02, 0x03, 0x04}, 0x01020304},
	}
	for _, c := range cases {
		p := parser.New(bytes.NewReader(c.data))
		got, err := readOffset(p, c.size)
		if err != nil {
			t.Fatalf("size %d: %v", c.size, err)
		}
		if got != c.want {
			t.Errorf("size %d: got %#x, want %#x", c.size, got, c.want)
		}
	}
}
