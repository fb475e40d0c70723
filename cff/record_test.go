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

func appendDictNumber(buf []byte, v int32) []byte {
	switch {
	case v >= -107 && v <= 107:
		return append(buf, byte(v+139))
	case v >= 108 && v <= 1131:
		v -= 108
		return append(buf, byte(247+v/256), byte(v%256))
	case v <= -108 && v >= -1131:
		v = -v - 108
		return append(buf, byte(251+v/256), byte(v%256))
	case v >= -32768 && v <= 32767:
		return append(buf, 28, byte(v>>8), byte(v))
	default:
		return append(buf, 29, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
}

func appendDictOp(buf []byte, op Operator) []byte {
	if op >= 0x0c00 {
		return append(buf, escByte, byte(op&0xff))
	}
	return append(buf, byte(op))
}

func TestIsCIDKeyedRequiresROSFirst(t *testing.T) {
	ros := newOperations()
	ros.Mapping[OpROS] = []Number{Int(391), Int(392), Int(0)}
	ros.Ordering = []Operator{OpROS, OpWeight}
	if !isCIDKeyed(ros) {
		t.Error("dict with ROS as first operator should be CID-keyed")
	}

	notFirst := newOperations()
	notFirst.Mapping[OpROS] = []Number{Int(391), Int(392), Int(0)}
	notFirst.Ordering = []Operator{OpWeight, OpROS}
	if isCIDKeyed(notFirst) {
		t.Error("dict with ROS not the first operator should not be CID-keyed")
	}

	empty := newOperations()
	if isCIDKeyed(empty) {
		t.Error("empty dict should not be CID-keyed")
	}
}

func TestReadRecordNameKeyed(t *testing.T) {
	// Private DICT lives at offset 10, size 0 (no operators, all defaults).
	var buf []byte
	buf = appendDictNumber(buf, 0)  // size
	buf = appendDictNumber(buf, 10) // offset
	buf = appendDictOp(buf, OpPrivate)

	ops, err := decodeDict(buf)
	if err != nil {
		t.Fatal(err)
	}

	blob := make([]byte, 10)
	p := parser.New(bytes.NewReader(blob))
	rec, err := readRecord(p, 0, ops, 1, newStrings(nil))
	if err != nil {
		t.Fatal(err)
	}
	nk, ok := rec.(*NameKeyedRecord)
	if !ok {
		t.Fatalf("got %T, want *NameKeyedRecord", rec)
	}
	if nk.Private.Dict.BlueScale != defaultBlueScale {
		t.Errorf("BlueScale: got %v, want default %v", nk.Private.Dict.BlueScale, defaultBlueScale)
	}
}

func TestReadRecordCIDKeyed(t *testing.T) {
	// A top dict whose first operator is ROS must be
	// recognised as CID-keyed and expose its FDArray/FDSelect.

	// Font DICT for FD 0: an empty Private DICT at offset 0, size 0.
	var fdDict []byte
	fdDict = appendDictNumber(fdDict, 0) // Private size
	fdDict = appendDictNumber(fdDict, 0) // Private offset
	fdDict = appendDictOp(fdDict, OpPrivate)

	fdArrayIndex := encodeIndexForTest([][]byte{fdDict})

	fdArrayOffset := int32(0)
	fdSelectOffset := fdArrayOffset + int32(len(fdArrayIndex))

	// FDSelect format 0, 2 glyphs, both mapped to FD 0.
	fdSelectBytes := []byte{0x00, 0x00, 0x00}

	blob := append(append([]byte{}, fdArrayIndex...), fdSelectBytes...)

	var topDict []byte
	topDict = appendDictNumber(topDict, 391) // registry SID
	topDict = appendDictNumber(topDict, 392) // ordering SID
	topDict = appendDictNumber(topDict, 0)   // supplement
	topDict = appendDictOp(topDict, OpROS)
	topDict = appendDictNumber(topDict, fdArrayOffset)
	topDict = appendDictOp(topDict, OpFDArray)
	topDict = appendDictNumber(topDict, fdSelectOffset)
	topDict = appendDictOp(topDict, OpFDSelect)

	ops, err := decodeDict(topDict)
	if err != nil {
		t.Fatal(err)
	}
	if !isCIDKeyed(ops) {
		t.Fatal("expected ROS-first dict to be detected as CID-keyed")
	}

	strs := newStrings(rawStrings{[]byte("Adobe"), []byte("Identity")})
	p := parser.New(bytes.NewReader(blob))
	rec, err := readRecord(p, 0, ops, 2, strs)
	if err != nil {
		t.Fatal(err)
	}
	cid, ok := rec.(*CIDKeyedRecord)
	if !ok {
		t.Fatalf("got %T, want *CIDKeyedRecord", rec)
	}
	if cid.ROS.Registry != "Adobe" || cid.ROS.Ordering != "Identity" {
		t.Errorf("ROS: got %+v", cid.ROS)
	}
	if len(cid.FDArray) != 1 || len(cid.FDPrivate) != 1 {
		t.Fatalf("FDArray: got %d entries, want 1", len(cid.FDArray))
	}
	if cid.FDSelect(0) != 0 || cid.FDSelect(1) != 0 {
		t.Error("FDSelect: expected both glyphs to map to FD 0")
	}
}
