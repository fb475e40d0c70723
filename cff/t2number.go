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

// fixedScale converts a 16.16 fixed-point Type 2 number to float32.
const fixedScale = 1.0 / (1 << 16)

// ReadType2Number decodes a single numeric operand of a Type 2 CharString
// from p, per ADOBE TN#5177 section 3. This is a distinct lead-byte
// grammar from the dictionary Number codec in readDictNumber: it has five
// disjoint lead-byte ranges and no escape byte, and its fixed-point form
// (lead 0xff) has no counterpart in dictionaries.
func ReadType2Number(p *parser.Parser) (float32, error) {
	lead, err := p.ReadUint8()
	if err != nil {
		return 0, err
	}

	switch {
	case lead >= 0x20 && lead <= 0xf6:
		return float32(int32(lead) - 139), nil
	case lead >= 0xf7 && lead <= 0xfa:
		b1, err := p.ReadUint8()
		if err != nil {
			return 0, err
		}
		return float32((int32(lead)-247)*256 + int32(b1) + 108), nil
	case lead >= 0xfb && lead <= 0xfe:
		b1, err := p.ReadUint8()
		if err != nil {
			return 0, err
		}
		return float32(-(int32(lead)-251)*256 - int32(b1) - 108), nil
	case lead == 0x1c:
		v, err := p.ReadInt16()
		if err != nil {
			return 0, err
		}
		return float32(v), nil
	case lead == 0xff:
		v, err := p.ReadUint32()
		if err != nil {
			return 0, err
		}
		return fixedScale * float32(int32(v)), nil
	default:
		return 0, invalidSince(fmt.Sprintf("malformed Type 2 number lead byte %d", lead))
	}
}
