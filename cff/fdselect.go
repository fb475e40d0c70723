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
	"sort"

	"goethe.dev/cff/glyph"
	"goethe.dev/cff/parser"
)

// FDSelect maps a glyph id to an index into a CID-keyed font's FDArray.
type FDSelect func(glyph.ID) int

// readFDSelect reads an FDSelect table at the current position.
// numGlyphs bounds the glyph ids it must cover; numFDs bounds the FD
// indices it may report.
func readFDSelect(p *parser.Parser, numGlyphs, numFDs int) (FDSelect, error) {
	format, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}

	switch format {
	case 0:
		fds, err := p.ReadBytes(numGlyphs)
		if err != nil {
			return nil, err
		}
		for _, fd := range fds {
			if int(fd) >= numFDs {
				return nil, invalidSince("FDSelect format 0 entry out of range")
			}
		}
		return func(gid glyph.ID) int {
			return int(fds[gid])
		}, nil

	case 3:
		nRanges, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		if numGlyphs > 0 && nRanges == 0 {
			return nil, invalidSince("FDSelect format 3 has no ranges")
		}

		firsts := make([]uint16, nRanges)
		fds := make([]uint8, nRanges)
		var prev uint16
		for i := 0; i < int(nRanges); i++ {
			first, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			if i == 0 && first != 0 {
				return nil, invalidSince("FDSelect format 3 does not start at glyph 0")
			}
			if i > 0 && first <= prev {
				return nil, invalidSince("FDSelect format 3 ranges are not increasing")
			}
			fd, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			if int(fd) >= numFDs {
				return nil, invalidSince("FDSelect format 3 entry out of range")
			}
			firsts[i] = first
			fds[i] = fd
			prev = first
		}
		sentinel, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		if int(sentinel) != numGlyphs {
			return nil, invalidSince("FDSelect format 3 sentinel does not match glyph count")
		}

		return func(gid glyph.ID) int {
			idx := sort.Search(len(firsts), func(i int) bool {
				return firsts[i] > uint16(gid)
			}) - 1
			if idx < 0 {
				idx = 0
			}
			return int(fds[idx])
		}, nil

	default:
		return nil, unsupported(fmt.Sprintf("FDSelect format %d", format))
	}
}
