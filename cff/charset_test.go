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

	"goethe.dev/cff/glyph"
	"goethe.dev/cff/parser"
)

func TestCharSetPredefinedISOAdobe(t *testing.T) {
	p := parser.New(bytes.NewReader(nil))
	cs, err := readCharSet(p, 0, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if cs.Kind() != CharSetISOAdobe {
		t.Errorf("got kind %v, want CharSetISOAdobe", cs.Kind())
	}
	sid, err := cs.Get(0)
	if err != nil || sid != 0 {
		t.Errorf(".notdef: got sid %d, err %v", sid, err)
	}
}

func TestCharSetFormat0(t *testing.T) {
	// format 0: 4 glyphs total (.notdef implicit + 3 explicit SIDs).
	data := []byte{0x00, 0x00, 0x64, 0x00, 0x65, 0x00, 0x66}
	p := parser.New(bytes.NewReader(data))
	cs, err := ReadCharSet(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	if cs.Kind() != CharSetFormat0 {
		t.Errorf("got kind %v", cs.Kind())
	}
	for gid, want := range []uint16{0, 0x64, 0x65, 0x66} {
		got, err := cs.Get(glyph.ID(gid))
		if err != nil || got != want {
			t.Errorf("gid %d: got %d, want %d (err %v)", gid, got, want, err)
		}
	}
}

func TestCharSetFormat1(t *testing.T) {
	// format 1: one range, first=100, nLeft=3 -> 5 glyphs (.notdef + 100..103).
	data := []byte{0x01, 0x00, 0x64, 0x03}
	p := parser.New(bytes.NewReader(data))
	cs, err := ReadCharSet(p, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0, 100, 101, 102, 103}
	for gid, w := range want {
		got, err := cs.Get(glyph.ID(gid))
		if err != nil || got != w {
			t.Errorf("gid %d: got %d, want %d (err %v)", gid, got, w, err)
		}
	}
}

func TestCharSetFormat2(t *testing.T) {
	// format 2: one range, first=1000, nLeft=2 (as a u16) -> 4 glyphs.
	data := []byte{0x02, 0x03, 0xe8, 0x00, 0x02}
	p := parser.New(bytes.NewReader(data))
	cs, err := ReadCharSet(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0, 1000, 1001, 1002}
	for gid, w := range want {
		got, err := cs.Get(glyph.ID(gid))
		if err != nil || got != w {
			t.Errorf("gid %d: got %d, want %d (err %v)", gid, got, w, err)
		}
	}
}

func TestCharSetGetOutOfRange(t *testing.T) {
	p := parser.New(bytes.NewReader(nil))
	cs, err := readCharSet(p, 0, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Get(glyph.ID(99)); err == nil {
		t.Fatal("expected out-of-range glyph id to fail")
	}
}
