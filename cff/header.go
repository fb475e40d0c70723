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

// Header is the four-byte preamble at the start of every CFF blob.
type Header struct {
	Major      uint8
	Minor      uint8
	HeaderSize uint8
	OffSize    OffsetSize
}

// ReadHeader reads the header at the current position.
func ReadHeader(p *parser.Parser) (*Header, error) {
	major, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	minor, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	headerSize, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	offSize, err := readOffsetSize(p)
	if err != nil {
		return nil, err
	}
	if headerSize < 4 {
		return nil, invalidSince(fmt.Sprintf("header size %d is less than 4", headerSize))
	}
	return &Header{
		Major:      major,
		Minor:      minor,
		HeaderSize: headerSize,
		OffSize:    offSize,
	}, nil
}
