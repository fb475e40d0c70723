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
	"strconv"
)

// Number is a dictionary operand: either an Integer or a Real. The two
// variants compare equal under Less when they denote the same value,
// but remain distinguishable through IsInt/IsReal and Equal.
type Number struct {
	isReal bool
	i      int32
	r      float32
}

// Int returns a Number holding an Integer operand.
func Int(v int32) Number { return Number{i: v} }

// Real returns a Number holding a Real operand.
func Real(v float32) Number { return Number{isReal: true, r: v} }

// IsReal reports whether n was encoded as a Real.
func (n Number) IsReal() bool { return n.isReal }

// IsInt reports whether n was encoded as an Integer.
func (n Number) IsInt() bool { return !n.isReal }

// Int32 returns n as an int32, truncating a Real toward zero.
func (n Number) Int32() int32 {
	if n.isReal {
		return int32(n.r)
	}
	return n.i
}

// Float32 widens n to a float32, converting an Integer if needed.
func (n Number) Float32() float32 {
	if n.isReal {
		return n.r
	}
	return float32(n.i)
}

// Equal reports whether n and other carry both the same variant tag and
// the same value; Integer(5) and Real(5) are not Equal even though they
// compare as the same magnitude.
func (n Number) Equal(other Number) bool {
	if n.isReal != other.isReal {
		return false
	}
	if n.isReal {
		return n.r == other.r
	}
	return n.i == other.i
}

// Less orders n and other by value, promoting across variants.
func (n Number) Less(other Number) bool {
	if !n.isReal && !other.isReal {
		return n.i < other.i
	}
	return n.Float32() < other.Float32()
}

// Add returns n+other, promoting to Real if either operand is a Real.
func (n Number) Add(other Number) Number {
	if !n.isReal && !other.isReal {
		return Int(n.i + other.i)
	}
	return Real(n.Float32() + other.Float32())
}

// Sub returns n-other, promoting to Real if either operand is a Real.
func (n Number) Sub(other Number) Number {
	if !n.isReal && !other.isReal {
		return Int(n.i - other.i)
	}
	return Real(n.Float32() - other.Float32())
}

// Mul returns n*other, promoting to Real if either operand is a Real.
func (n Number) Mul(other Number) Number {
	if !n.isReal && !other.isReal {
		return Int(n.i * other.i)
	}
	return Real(n.Float32() * other.Float32())
}

// Div returns n/other. Division always promotes to Real, since integer
// division is not guaranteed to be exact.
func (n Number) Div(other Number) Number {
	return Real(n.Float32() / other.Float32())
}

// Neg returns -n, preserving n's variant.
func (n Number) Neg() Number {
	if n.isReal {
		return Real(-n.r)
	}
	return Int(-n.i)
}

func (n Number) String() string {
	if n.isReal {
		return strconv.FormatFloat(float64(n.r), 'g', -1, 32)
	}
	return strconv.FormatInt(int64(n.i), 10)
}

// readDictNumber decodes one Number from a dictionary byte stream,
// given that the lead byte has already been read and is not an
// operator byte (0..=21 or 12). See ADOBE TN#5176, table 3.
func readDictNumber(lead byte, buf []byte, pos *int) (Number, error) {
	switch {
	case lead >= 32 && lead <= 246:
		return Int(int32(lead) - 139), nil
	case lead >= 247 && lead <= 250:
		b1, err := nextByte(buf, pos)
		if err != nil {
			return Number{}, err
		}
		return Int((int32(lead)-247)*256 + int32(b1) + 108), nil
	case lead >= 251 && lead <= 254:
		b1, err := nextByte(buf, pos)
		if err != nil {
			return Number{}, err
		}
		return Int(-(int32(lead)-251)*256 - int32(b1) - 108), nil
	case lead == 28:
		hi, err := nextByte(buf, pos)
		if err != nil {
			return Number{}, err
		}
		lo, err := nextByte(buf, pos)
		if err != nil {
			return Number{}, err
		}
		return Int(int32(int16(uint16(hi)<<8 | uint16(lo)))), nil
	case lead == 29:
		var v uint32
		for i := 0; i < 4; i++ {
			b, err := nextByte(buf, pos)
			if err != nil {
				return Number{}, err
			}
			v = v<<8 | uint32(b)
		}
		return Int(int32(v)), nil
	case lead == 30:
		return readRealNibbles(buf, pos)
	default:
		return Number{}, invalidSince(fmt.Sprintf("malformed number lead byte %d", lead))
	}
}

func nextByte(buf []byte, pos *int) (byte, error) {
	if *pos >= len(buf) {
		return 0, invalidSince("truncated dictionary number")
	}
	b := buf[*pos]
	*pos++
	return b, nil
}

// readRealNibbles decodes the nibble stream of a real number (lead byte
// 30 already consumed), per ADOBE TN#5176 table 5.
func readRealNibbles(buf []byte, pos *int) (Number, error) {
	var s []byte
	for {
		b, err := nextByte(buf, pos)
		if err != nil {
			return Number{}, err
		}
		for _, nibble := range [2]byte{b >> 4, b & 0xf} {
			switch {
			case nibble <= 9:
				s = append(s, '0'+nibble)
			case nibble == 0xa:
				s = append(s, '.')
			case nibble == 0xb:
				s = append(s, 'e')
			case nibble == 0xc:
				s = append(s, 'e', '-')
			case nibble == 0xe:
				s = append(s, '-')
			case nibble == 0xf:
				v, err := strconv.ParseFloat(string(s), 32)
				if err != nil {
					return Number{}, invalidSince("malformed real number: " + err.Error())
				}
				return Real(float32(v)), nil
			default:
				return Number{}, invalidSince(fmt.Sprintf("reserved real nibble %x", nibble))
			}
		}
	}
}
