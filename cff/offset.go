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

// Offset is an unsigned byte offset within a CFF blob, relative to the
// start of the blob. It carries no width of its own; the width used to
// read it on the wire is supplied by an OffsetSize.
type Offset uint32

// OffsetSize is the number of bytes, 1 to 4, used to encode an Offset.
type OffsetSize uint8

func (size OffsetSize) valid() bool {
	return size >= 1 && size <= 4
}

func readOffsetSize(p *parser.Parser) (OffsetSize, error) {
	b, err := p.ReadUint8()
	if err != nil {
		return 0, err
	}
	size := OffsetSize(b)
	if !size.valid() {
		return 0, invalidSince(fmt.Sprintf("offset size %d out of range", b))
	}
	return size, nil
}

func readOffset(p *parser.Parser, size OffsetSize) (Offset, error) {
	v, err := p.ReadOffset(int(size))
	if err != nil {
		return 0, err
	}
	return Offset(v), nil
}
