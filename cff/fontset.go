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
	"fmt"
	"math"

	"goethe.dev/cff/parser"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
)

// FontSet is the materialized result of reading a CFF blob: the header,
// the Name INDEX, one top-level Operations/FontInfo/CharSet/Encoding/
// CharStrings/Record tuple per font, the shared String INDEX and the
// shared global Subroutines INDEX. The per-font slices are parallel:
// Names[i], Operations[i], Info[i], Encodings[i], CharSets[i],
// CharStrings[i] and Records[i] all describe the same font.
type FontSet struct {
	Header     *Header
	Names      Names
	Operations []*Operations
	Info       []*type1.FontInfo

	Strings     *Strings
	GlobalSubrs Subroutines

	Encodings   []*Encoding
	CharSets    []*CharSet
	CharStrings []CharStrings
	Records     []Record
}

// Read parses a complete CFF blob starting at the parser's current
// position, which becomes the origin that every offset stored inside the
// blob (CharSet, Encoding, CharStrings, Private, FDArray, FDSelect) is
// resolved relative to. A Subrs offset is the exception: it is resolved
// relative to the start of its Private DICT.
func Read(p *parser.Parser) (*FontSet, error) {
	base := p.Pos()

	header, err := ReadHeader(p)
	if err != nil {
		return nil, fmt.Errorf("cff: header: %w", err)
	}
	if err := p.SeekPos(base + int64(header.HeaderSize)); err != nil {
		return nil, fmt.Errorf("cff: seeking past header: %w", err)
	}

	names, err := ReadNames(p)
	if err != nil {
		return nil, fmt.Errorf("cff: names index: %w", err)
	}
	dicts, err := ReadDictionaries(p)
	if err != nil {
		return nil, fmt.Errorf("cff: top dict index: %w", err)
	}
	if len(names) != len(dicts) {
		return nil, invalidSince("name index and top dict index have different lengths")
	}

	numFonts := len(names)
	topOps := make([]*Operations, numFonts)
	for i := range dicts {
		ops, err := dicts.Decode(i)
		if err != nil {
			return nil, fmt.Errorf("cff: top dict %d: %w", i, err)
		}
		topOps[i] = ops
	}

	strs, err := ReadStrings(p)
	if err != nil {
		return nil, fmt.Errorf("cff: string index: %w", err)
	}

	globalSubrsIdx, err := ReadSubroutines(p)
	if err != nil {
		return nil, fmt.Errorf("cff: global subr index: %w", err)
	}

	fs := &FontSet{
		Header:      header,
		Names:       names,
		Operations:  topOps,
		Info:        make([]*type1.FontInfo, numFonts),
		Strings:     strs,
		GlobalSubrs: globalSubrsIdx,
		Encodings:   make([]*Encoding, numFonts),
		CharSets:    make([]*CharSet, numFonts),
		CharStrings: make([]CharStrings, numFonts),
		Records:     make([]Record, numFonts),
	}

	for i, ops := range topOps {
		info, err := readFontInfo(names[i], ops, strs)
		if err != nil {
			return nil, fmt.Errorf("cff: font %d info: %w", i, err)
		}
		fs.Info[i] = info

		charStringsOff, err := ops.GetSingle(OpCharStrings)
		if err != nil {
			return nil, fmt.Errorf("cff: font %d: %w", i, err)
		}
		if err := p.SeekPos(base + int64(charStringsOff.Int32())); err != nil {
			return nil, fmt.Errorf("cff: font %d: seeking to char strings: %w", i, err)
		}
		charstringType := ops.GetInt(OpCharstringType, 2)
		if charstringType != 2 {
			return nil, unsupported(fmt.Sprintf("CharstringType %d", charstringType))
		}
		charStrings, err := ReadCharStrings(p)
		if err != nil {
			return nil, fmt.Errorf("cff: font %d: char strings: %w", i, err)
		}
		fs.CharStrings[i] = charStrings
		numGlyphs := charStrings.NumGlyphs()
		if numGlyphs == 0 {
			return nil, invalidSince(fmt.Sprintf("font %d has no charstrings", i))
		}

		charSet, err := readCharSet(p, base, ops.GetInt(OpCharset, 0), numGlyphs)
		if err != nil {
			return nil, fmt.Errorf("cff: font %d: char set: %w", i, err)
		}
		fs.CharSets[i] = charSet

		encoding, err := readEncoding(p, base, ops.GetInt(OpEncoding, 0), charSet.sids)
		if err != nil {
			return nil, fmt.Errorf("cff: font %d: encoding: %w", i, err)
		}
		fs.Encodings[i] = encoding

		record, err := readRecord(p, base, ops, numGlyphs, strs)
		if err != nil {
			return nil, fmt.Errorf("cff: font %d: private record: %w", i, err)
		}
		fs.Records[i] = record
	}

	return fs, nil
}

// readFontInfo collects the descriptive Top DICT fields a font carries
// into a type1.FontInfo, resolving string-valued operators (Version,
// Notice, Copyright, FullName, FamilyName, Weight) through strs. The
// font name itself comes from the Name INDEX, not the dictionary.
func readFontInfo(name string, ops *Operations, strs *Strings) (*type1.FontInfo, error) {
	getStr := func(op Operator) (string, error) {
		vals, ok := ops.Mapping[op]
		if !ok {
			return "", nil
		}
		if len(vals) != 1 {
			return "", invalidSince(fmt.Sprintf("operator %s: expected a single SID operand", op))
		}
		return strs.Get(uint16(vals[0].Int32()))
	}

	version, err := getStr(OpVersion)
	if err != nil {
		return nil, err
	}
	notice, err := getStr(OpNotice)
	if err != nil {
		return nil, err
	}
	copyright, err := getStr(OpCopyright)
	if err != nil {
		return nil, err
	}
	fullName, err := getStr(OpFullName)
	if err != nil {
		return nil, err
	}
	familyName, err := getStr(OpFamilyName)
	if err != nil {
		return nil, err
	}
	weight, err := getStr(OpWeight)
	if err != nil {
		return nil, err
	}

	info := &type1.FontInfo{
		FontName:           name,
		Version:            version,
		Notice:             notice,
		Copyright:          copyright,
		FullName:           fullName,
		FamilyName:         familyName,
		Weight:             weight,
		IsFixedPitch:       ops.GetInt(OpIsFixedPitch, 0) != 0,
		ItalicAngle:        normaliseAngle(ops.GetFloat(OpItalicAngle, 0)),
		UnderlinePosition:  funit.Float64(ops.GetInt(OpUnderlinePosition, defaultUnderlinePosition)),
		UnderlineThickness: funit.Float64(ops.GetInt(OpUnderlineThickness, defaultUnderlineThickness)),
		FontMatrix:         readFontMatrix(ops),
	}
	return info, nil
}

const (
	defaultUnderlinePosition  = -100
	defaultUnderlineThickness = 50
)

var defaultFontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

// readFontMatrix returns the font's FontMatrix operand, or the CFF
// default 0.001 scale matrix when absent or malformed.
func readFontMatrix(ops *Operations) matrix.Matrix {
	vals, ok := ops.Mapping[OpFontMatrix]
	if !ok || len(vals) != 6 {
		return defaultFontMatrix
	}
	var m matrix.Matrix
	for i, v := range vals {
		m[i] = float64(v.Float32())
	}
	return m
}

// normaliseAngle folds x into [-180, 180), matching the range a
// PostScript ItalicAngle is conventionally expressed in.
func normaliseAngle(x float64) float64 {
	y := math.Mod(x+180, 360)
	if y < 0 {
		y += 360
	}
	return y - 180
}
