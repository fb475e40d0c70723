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

	"github.com/google/go-cmp/cmp"

	"goethe.dev/cff/glyph"
	"goethe.dev/cff/parser"

	"seehuhn.de/go/postscript/funit"
)

// appendInt5 appends v in the 5-byte dictionary integer form (lead byte
// 29). Offsets in the test fixtures are always written this way so that
// the dictionary's length does not change when the two-pass layout below
// fills in the final offset values.
func appendInt5(buf []byte, v int32) []byte {
	return append(buf, 29, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

type mockLayout struct {
	charStrings int32
	privOff     int32
	privSize    int32
	subrsRel    int32
}

// buildMockFontSet assembles a complete single-font CFF blob: header,
// Name INDEX, Top DICT INDEX, String INDEX, global subroutines,
// CharStrings, a Private DICT and its local subroutines. Offsets inside
// the top and private dictionaries come from l; the returned layout
// holds the positions the sections actually landed on, so calling the
// function twice fixes the offsets up.
func buildMockFontSet(l mockLayout) ([]byte, mockLayout) {
	var dict []byte
	dict = appendDictNumber(dict, 391) // user string "1.000"
	dict = appendDictOp(dict, OpVersion)
	dict = appendDictNumber(dict, 390) // "Semibold"
	dict = appendDictOp(dict, OpWeight)
	dict = appendInt5(dict, l.charStrings)
	dict = appendDictOp(dict, OpCharStrings)
	dict = appendInt5(dict, l.privSize)
	dict = appendInt5(dict, l.privOff)
	dict = appendDictOp(dict, OpPrivate)

	var priv []byte
	for _, delta := range []int32{-10, 10, 500, 20} {
		priv = appendDictNumber(priv, delta)
	}
	priv = appendDictOp(priv, OpBlueValues)
	priv = appendInt5(priv, l.subrsRel)
	priv = appendDictOp(priv, OpSubrs)

	var got mockLayout
	var buf []byte
	buf = append(buf, 0x01, 0x00, 0x04, 0x02)
	buf = append(buf, encodeIndexForTest([][]byte{[]byte("Mock-Regular")})...)
	buf = append(buf, encodeIndexForTest([][]byte{dict})...)
	buf = append(buf, encodeIndexForTest([][]byte{[]byte("1.000")})...)
	buf = append(buf, encodeIndexForTest([][]byte{{0x0e}})...) // global subrs

	got.charStrings = int32(len(buf))
	buf = append(buf, encodeIndexForTest([][]byte{{0x0e}, {0x0e}, {0x0e}})...)

	got.privOff = int32(len(buf))
	got.privSize = int32(len(priv))
	got.subrsRel = got.privSize // local subrs follow the private dict
	buf = append(buf, priv...)
	buf = append(buf, encodeIndexForTest([][]byte{{0x0b}})...)

	return buf, got
}

func TestReadFontSet(t *testing.T) {
	_, l := buildMockFontSet(mockLayout{})
	blob, check := buildMockFontSet(l)
	if check != l {
		t.Fatal("fixture layout did not converge")
	}

	// The blob starts at position 7 within a larger stream; every offset
	// inside it is relative to that position, not to the stream origin.
	const base = 7
	data := append(bytes.Repeat([]byte{0xAA}, base), blob...)
	p := parser.New(bytes.NewReader(data))
	if err := p.SeekPos(base); err != nil {
		t.Fatal(err)
	}

	fs, err := Read(p)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Names{"Mock-Regular"}, fs.Names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	for name, n := range map[string]int{
		"Operations":  len(fs.Operations),
		"Info":        len(fs.Info),
		"Encodings":   len(fs.Encodings),
		"CharSets":    len(fs.CharSets),
		"CharStrings": len(fs.CharStrings),
		"Records":     len(fs.Records),
	} {
		if n != len(fs.Names) {
			t.Errorf("%s: %d entries, want %d", name, n, len(fs.Names))
		}
	}

	info := fs.Info[0]
	if info.FontName != "Mock-Regular" {
		t.Errorf("FontName: got %q", info.FontName)
	}
	if info.Version != "1.000" {
		t.Errorf("Version: got %q", info.Version)
	}
	if info.Weight != "Semibold" {
		t.Errorf("Weight: got %q", info.Weight)
	}
	if info.FontMatrix != defaultFontMatrix {
		t.Errorf("FontMatrix: got %v", info.FontMatrix)
	}

	numGlyphs := fs.CharStrings[0].NumGlyphs()
	if numGlyphs != 3 {
		t.Fatalf("NumGlyphs: got %d, want 3", numGlyphs)
	}

	cs := fs.CharSets[0]
	if cs.Kind() != CharSetISOAdobe {
		t.Errorf("charset kind: got %v, want CharSetISOAdobe", cs.Kind())
	}
	// The charset covers exactly the font's glyphs, .notdef included.
	if _, err := cs.Get(glyph.ID(numGlyphs - 1)); err != nil {
		t.Errorf("charset too short: %v", err)
	}
	if _, err := cs.Get(glyph.ID(numGlyphs)); err == nil {
		t.Error("charset covers more glyphs than the font has")
	}
	sid, err := cs.Get(2)
	if err != nil || sid != 2 {
		t.Errorf("gid 2: got SID %d, err %v; want SID 2 (exclam)", sid, err)
	}

	if fs.Encodings[0].Kind() != EncodingStandard {
		t.Errorf("encoding kind: got %v, want EncodingStandard", fs.Encodings[0].Kind())
	}

	if n := fs.GlobalSubrs.Len(); n != 1 {
		t.Errorf("global subrs: got %d entries, want 1", n)
	}

	rec, ok := fs.Records[0].(*NameKeyedRecord)
	if !ok {
		t.Fatalf("record: got %T, want *NameKeyedRecord", fs.Records[0])
	}
	wantBlues := []funit.Int16{-10, 0, 500, 520}
	if diff := cmp.Diff(wantBlues, rec.Private.Dict.BlueValues); diff != "" {
		t.Errorf("BlueValues mismatch (-want +got):\n%s", diff)
	}
	if n := rec.Private.Subrs.Len(); n != 1 {
		t.Fatalf("local subrs: got %d entries, want 1", n)
	}
	if !bytes.Equal(rec.Private.Subrs.Get(0), []byte{0x0b}) {
		t.Errorf("local subr 0: got % x", rec.Private.Subrs.Get(0))
	}
}

// buildTwoFontSet assembles a blob naming two fonts, each with its own
// CharStrings INDEX and an empty Private DICT.
func buildTwoFontSet(cs1, cs2 int32) ([]byte, int32, int32) {
	dictFor := func(csOff int32) []byte {
		var d []byte
		d = appendInt5(d, csOff)
		d = appendDictOp(d, OpCharStrings)
		d = appendInt5(d, 0) // Private size 0: all defaults
		d = appendInt5(d, 0)
		d = appendDictOp(d, OpPrivate)
		return d
	}

	var buf []byte
	buf = append(buf, 0x01, 0x00, 0x04, 0x01)
	buf = append(buf, encodeIndexForTest([][]byte{[]byte("Alpha"), []byte("Beta")})...)
	buf = append(buf, encodeIndexForTest([][]byte{dictFor(cs1), dictFor(cs2)})...)
	buf = append(buf, 0x00, 0x00) // empty String INDEX
	buf = append(buf, 0x00, 0x00) // empty global subr INDEX

	pos1 := int32(len(buf))
	buf = append(buf, encodeIndexForTest([][]byte{{0x0e}, {0x0e}})...)
	pos2 := int32(len(buf))
	buf = append(buf, encodeIndexForTest([][]byte{{0x0e}, {0x0e}, {0x0e}})...)

	return buf, pos1, pos2
}

func TestReadFontSetTwoFonts(t *testing.T) {
	_, cs1, cs2 := buildTwoFontSet(0, 0)
	blob, check1, check2 := buildTwoFontSet(cs1, cs2)
	if check1 != cs1 || check2 != cs2 {
		t.Fatal("fixture layout did not converge")
	}

	p := parser.New(bytes.NewReader(blob))
	fs, err := Read(p)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Names{"Alpha", "Beta"}, fs.Names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if len(fs.Records) != 2 || len(fs.CharSets) != 2 || len(fs.Encodings) != 2 {
		t.Fatalf("per-font slices not parallel: %d records, %d charsets, %d encodings",
			len(fs.Records), len(fs.CharSets), len(fs.Encodings))
	}
	if got := fs.CharStrings[0].NumGlyphs(); got != 2 {
		t.Errorf("font 0: %d glyphs, want 2", got)
	}
	if got := fs.CharStrings[1].NumGlyphs(); got != 3 {
		t.Errorf("font 1: %d glyphs, want 3", got)
	}
	if fs.Info[0].FontName != "Alpha" || fs.Info[1].FontName != "Beta" {
		t.Errorf("font names: got %q, %q", fs.Info[0].FontName, fs.Info[1].FontName)
	}
	for i, rec := range fs.Records {
		if _, ok := rec.(*NameKeyedRecord); !ok {
			t.Errorf("record %d: got %T, want *NameKeyedRecord", i, rec)
		}
	}
}

func TestReadFontSetCountMismatch(t *testing.T) {
	var dict []byte
	dict = appendInt5(dict, 0)
	dict = appendDictOp(dict, OpCharStrings)

	var buf []byte
	buf = append(buf, 0x01, 0x00, 0x04, 0x01)
	buf = append(buf, encodeIndexForTest([][]byte{[]byte("Solo")})...)
	buf = append(buf, encodeIndexForTest([][]byte{dict, dict})...)

	p := parser.New(bytes.NewReader(buf))
	_, err := Read(p)
	if err == nil {
		t.Fatal("expected error for name/dict count mismatch")
	}
	if !IsInvalid(err) {
		t.Errorf("IsInvalid(%v) = false, want true", err)
	}
}

func TestReadFontSetMissingCharStrings(t *testing.T) {
	var dict []byte
	dict = appendDictNumber(dict, 388)
	dict = appendDictOp(dict, OpWeight)

	var buf []byte
	buf = append(buf, 0x01, 0x00, 0x04, 0x01)
	buf = append(buf, encodeIndexForTest([][]byte{[]byte("NoGlyphs")})...)
	buf = append(buf, encodeIndexForTest([][]byte{dict})...)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, 0x00, 0x00)

	p := parser.New(bytes.NewReader(buf))
	_, err := Read(p)
	if err == nil {
		t.Fatal("expected error for missing CharStrings operator")
	}
	if !IsInvalid(err) {
		t.Errorf("IsInvalid(%v) = false, want true", err)
	}
}
