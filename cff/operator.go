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

import "fmt"

// Operator identifies a dictionary directive. One-byte operators occupy
// the range 0..21 (the escape byte 12 excluded); two-byte operators are
// formed from the escape byte 12 followed by a second byte, and are
// represented here as 0x0c00 | second-byte.
type Operator uint16

const escByte = 0x0c

func twoByteOp(second byte) Operator {
	return Operator(0x0c00 | uint16(second))
}

// Top DICT operators.
const (
	OpVersion     Operator = 0
	OpNotice      Operator = 1
	OpFullName    Operator = 2
	OpFamilyName  Operator = 3
	OpWeight      Operator = 4
	OpFontBBox    Operator = 5
	OpCharset     Operator = 15
	OpEncoding    Operator = 16
	OpCharStrings Operator = 17
	OpPrivate     Operator = 18

	OpCopyright          = Operator(0x0c00 | 0)
	OpIsFixedPitch       = Operator(0x0c00 | 1)
	OpItalicAngle        = Operator(0x0c00 | 2)
	OpUnderlinePosition  = Operator(0x0c00 | 3)
	OpUnderlineThickness = Operator(0x0c00 | 4)
	OpPaintType          = Operator(0x0c00 | 5)
	OpCharstringType     = Operator(0x0c00 | 6)
	OpFontMatrix         = Operator(0x0c00 | 7)
	OpStrokeWidth        = Operator(0x0c00 | 8)
	OpSyntheticBase      = Operator(0x0c00 | 20)
	OpPostScript         = Operator(0x0c00 | 21)
	OpBaseFontName       = Operator(0x0c00 | 22)
	OpBaseFontBlend      = Operator(0x0c00 | 23)
	OpROS                = Operator(0x0c00 | 30)
	OpCIDFontVersion     = Operator(0x0c00 | 31)
	OpCIDFontRevision    = Operator(0x0c00 | 32)
	OpCIDFontType        = Operator(0x0c00 | 33)
	OpCIDCount           = Operator(0x0c00 | 34)
	OpUIDBase            = Operator(0x0c00 | 35)
	OpFDArray            = Operator(0x0c00 | 36)
	OpFDSelect           = Operator(0x0c00 | 37)
	OpFontName           = Operator(0x0c00 | 38)
)

// Private DICT operators.
const (
	OpBlueValues       Operator = 6
	OpOtherBlues       Operator = 7
	OpFamilyBlues      Operator = 8
	OpFamilyOtherBlues Operator = 9
	OpStdHW            Operator = 10
	OpStdVW            Operator = 11
	OpSubrs            Operator = 19
	OpDefaultWidthX    Operator = 20
	OpNominalWidthX    Operator = 21

	OpBlueScale         = Operator(0x0c00 | 9)
	OpBlueShift         = Operator(0x0c00 | 10)
	OpBlueFuzz          = Operator(0x0c00 | 11)
	OpStemSnapH         = Operator(0x0c00 | 12)
	OpStemSnapV         = Operator(0x0c00 | 13)
	OpForceBold         = Operator(0x0c00 | 14)
	OpLanguageGroup     = Operator(0x0c00 | 17)
	OpExpansionFactor   = Operator(0x0c00 | 18)
	OpInitialRandomSeed = Operator(0x0c00 | 19)
)

// knownTwoByteOp reports whether the escape byte followed by second names
// an assigned operator. The gaps (15, 16, 24..29, 39..) are reserved in
// the CFF 1.0 operator tables.
func knownTwoByteOp(second byte) bool {
	switch {
	case second <= 14:
		return true
	case second >= 17 && second <= 23:
		return true
	case second >= 30 && second <= 38:
		return true
	}
	return false
}

func (op Operator) String() string {
	switch op {
	case OpVersion:
		return "Version"
	case OpNotice:
		return "Notice"
	case OpFullName:
		return "FullName"
	case OpFamilyName:
		return "FamilyName"
	case OpWeight:
		return "Weight"
	case OpFontBBox:
		return "FontBBox"
	case OpCharset:
		return "Charset"
	case OpEncoding:
		return "Encoding"
	case OpCharStrings:
		return "CharStrings"
	case OpPrivate:
		return "Private"
	case OpCopyright:
		return "Copyright"
	case OpIsFixedPitch:
		return "IsFixedPitch"
	case OpItalicAngle:
		return "ItalicAngle"
	case OpUnderlinePosition:
		return "UnderlinePosition"
	case OpUnderlineThickness:
		return "UnderlineThickness"
	case OpPaintType:
		return "PaintType"
	case OpCharstringType:
		return "CharstringType"
	case OpFontMatrix:
		return "FontMatrix"
	case OpStrokeWidth:
		return "StrokeWidth"
	case OpSyntheticBase:
		return "SyntheticBase"
	case OpPostScript:
		return "PostScript"
	case OpBaseFontName:
		return "BaseFontName"
	case OpBaseFontBlend:
		return "BaseFontBlend"
	case OpUIDBase:
		return "UIDBase"
	case OpROS:
		return "ROS"
	case OpCIDFontVersion:
		return "CIDFontVersion"
	case OpCIDFontRevision:
		return "CIDFontRevision"
	case OpCIDFontType:
		return "CIDFontType"
	case OpCIDCount:
		return "CIDCount"
	case OpFDArray:
		return "FDArray"
	case OpFDSelect:
		return "FDSelect"
	case OpFontName:
		return "FontName"
	case OpBlueValues:
		return "BlueValues"
	case OpOtherBlues:
		return "OtherBlues"
	case OpFamilyBlues:
		return "FamilyBlues"
	case OpFamilyOtherBlues:
		return "FamilyOtherBlues"
	case OpStdHW:
		return "StdHW"
	case OpStdVW:
		return "StdVW"
	case OpSubrs:
		return "Subrs"
	case OpDefaultWidthX:
		return "DefaultWidthX"
	case OpNominalWidthX:
		return "NominalWidthX"
	case OpBlueScale:
		return "BlueScale"
	case OpBlueShift:
		return "BlueShift"
	case OpBlueFuzz:
		return "BlueFuzz"
	case OpStemSnapH:
		return "StemSnapH"
	case OpStemSnapV:
		return "StemSnapV"
	case OpForceBold:
		return "ForceBold"
	case OpLanguageGroup:
		return "LanguageGroup"
	case OpExpansionFactor:
		return "ExpansionFactor"
	case OpInitialRandomSeed:
		return "InitialRandomSeed"
	default:
		if op < 256 {
			return fmt.Sprintf("op%d", uint16(op))
		}
		return fmt.Sprintf("op12.%d", uint16(op)&0xff)
	}
}
