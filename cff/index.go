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

	"goethe.dev/cff/parser"
)

// Index is a CFF INDEX: an ordered, self-describing sequence of byte
// strings. A zero-count Index consumes only the two count bytes and
// carries no entries.
type Index [][]byte

// Len returns the number of entries in the index.
func (idx Index) Len() int { return len(idx) }

// Get returns the i-th entry's raw bytes.
func (idx Index) Get(i int) []byte { return idx[i] }

// ReadIndex reads a generic INDEX structure per ADOBE TN#5176 table 1.
func ReadIndex(p *parser.Parser) (Index, error) {
	count, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	offSize, err := readOffsetSize(p)
	if err != nil {
		return nil, err
	}

	offsets := make([]uint32, count+1)
	var prev uint32
	for i := range offsets {
		off, err := p.ReadOffset(int(offSize))
		if err != nil {
			return nil, err
		}
		if i == 0 && off != 1 {
			return nil, invalidSince("INDEX first offset is not 1")
		}
		if i > 0 && off <= prev {
			return nil, invalidSince("INDEX offsets are not strictly increasing")
		}
		offsets[i] = off
		prev = off
	}

	total := offsets[count] - 1
	data, err := p.ReadBytes(int(total))
	if err != nil {
		return nil, err
	}

	entries := make(Index, count)
	for i := 0; i < int(count); i++ {
		start := offsets[i] - 1
		end := offsets[i+1] - 1
		entries[i] = data[start:end]
	}
	return entries, nil
}

// readIndexAt jumps to pos before reading an INDEX, restoring no
// particular position afterwards; callers that need to resume elsewhere
// must SeekPos themselves.
func readIndexAt(p *parser.Parser, pos int64, what string) (Index, error) {
	if err := p.SeekPos(pos); err != nil {
		return nil, fmt.Errorf("cff: seeking to %s: %w", what, err)
	}
	return ReadIndex(p)
}

// Names is the Name INDEX: each entry is a font name.
type Names []string

// ReadNames reads the Name INDEX at the current position.
func ReadNames(p *parser.Parser) (Names, error) {
	idx, err := ReadIndex(p)
	if err != nil {
		return nil, err
	}
	names := make(Names, len(idx))
	for i, b := range idx {
		names[i] = string(b)
	}
	return names, nil
}

// Dictionaries is the top (or font) DICT INDEX: each entry is a
// dictionary byte code blob, decoded into Operations on demand.
type Dictionaries Index

// ReadDictionaries reads a DICT INDEX at the current position.
func ReadDictionaries(p *parser.Parser) (Dictionaries, error) {
	idx, err := ReadIndex(p)
	if err != nil {
		return nil, err
	}
	return Dictionaries(idx), nil
}

// Decode converts the i-th dictionary entry into Operations.
func (d Dictionaries) Decode(i int) (*Operations, error) {
	return decodeDict(d[i])
}

// Subroutines holds raw local or global subroutine bodies. This package
// does not execute them; they are exposed verbatim for callers that
// interpret CharStrings.
type Subroutines Index

// Len returns the number of subroutines.
func (s Subroutines) Len() int { return len(s) }

// Get returns the i-th subroutine body.
func (s Subroutines) Get(i int) []byte { return s[i] }

// ReadSubroutines reads a Subrs INDEX at the current position.
func ReadSubroutines(p *parser.Parser) (Subroutines, error) {
	idx, err := ReadIndex(p)
	if err != nil {
		return nil, err
	}
	return Subroutines(idx), nil
}

// CharStrings holds one raw CharString body per glyph; the number of
// entries is the font's glyph count, GID 0 always being .notdef.
type CharStrings Index

// ReadCharStrings reads a CharStrings INDEX at the current position.
func ReadCharStrings(p *parser.Parser) (CharStrings, error) {
	idx, err := ReadIndex(p)
	if err != nil {
		return nil, err
	}
	return CharStrings(idx), nil
}

// NumGlyphs returns the number of glyphs, i.e. the INDEX entry count.
func (cs CharStrings) NumGlyphs() int { return len(cs) }

// rawStrings is the String INDEX; user-defined strings start at SID 391.
type rawStrings Index

func readRawStrings(p *parser.Parser) (rawStrings, error) {
	idx, err := ReadIndex(p)
	if err != nil {
		return nil, err
	}
	return rawStrings(idx), nil
}
