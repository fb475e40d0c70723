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

// Encoding maps a character code (0..255) to the string id (SID) of the
// glyph at that code. The two predefined variants (Standard, Expert) are
// static tables; the format-tagged variants are read from the CFF blob
// and, since the wire format maps code to glyph id rather than directly
// to a SID, are resolved against the font's CharSet at read time so that
// Get has the same signature regardless of variant.
type Encoding struct {
	kind      EncodingKind
	codeToSID [256]uint16
}

// EncodingKind identifies which of the four Encoding variants an Encoding
// holds.
type EncodingKind int

const (
	EncodingStandard EncodingKind = iota
	EncodingExpert
	EncodingFormat0
	EncodingFormat1
)

// Kind reports which variant this Encoding is.
func (e *Encoding) Kind() EncodingKind { return e.kind }

// Get returns the string id of the glyph encoded at code. A code with no
// glyph returns SID 0 (.notdef).
func (e *Encoding) Get(code byte) uint16 {
	return e.codeToSID[code]
}

// readEncoding selects and, if needed, reads an Encoding. charsetSIDs is
// the font's CharSet, giving the SID for every glyph id; format-tagged
// encodings consult it to turn the code->glyph-id table the wire format
// stores into the code->SID table Get exposes.
func readEncoding(p *parser.Parser, base int64, op int32, charsetSIDs []uint16) (*Encoding, error) {
	switch op {
	case 0:
		return &Encoding{kind: EncodingStandard, codeToSID: standardEncodingSIDs}, nil
	case 1:
		return &Encoding{kind: EncodingExpert, codeToSID: expertEncodingSIDs}, nil
	}

	if err := p.SeekPos(base + int64(op)); err != nil {
		return nil, err
	}
	return readEncodingTable(p, charsetSIDs)
}

// ReadEncoding reads a format-tagged encoding table at the current
// position, resolving glyph ids through cs.
func ReadEncoding(p *parser.Parser, cs *CharSet) (*Encoding, error) {
	return readEncodingTable(p, cs.sids)
}

func readEncodingTable(p *parser.Parser, charsetSIDs []uint16) (*Encoding, error) {
	format, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	supplement := format&0x80 != 0
	format &= 0x7f

	var codeToGID [256]uint16
	nextGID := uint16(1)

	switch format {
	case 0:
		nCodes, err := p.ReadUint8()
		if err != nil {
			return nil, err
		}
		codes, err := p.ReadBytes(int(nCodes))
		if err != nil {
			return nil, err
		}
		for _, c := range codes {
			if int(nextGID) >= len(charsetSIDs) {
				return nil, invalidSince("format 0 encoding names more codes than glyphs")
			}
			codeToGID[c] = nextGID
			nextGID++
		}
	case 1:
		nRanges, err := p.ReadUint8()
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(nRanges); i++ {
			first, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			nLeft, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			for c := int(first); c <= int(first)+int(nLeft); c++ {
				if c > 255 {
					return nil, invalidSince("format 1 encoding range runs past code 255")
				}
				if int(nextGID) >= len(charsetSIDs) {
					return nil, invalidSince("format 1 encoding names more codes than glyphs")
				}
				codeToGID[c] = nextGID
				nextGID++
			}
		}
	default:
		return nil, unsupported(fmt.Sprintf("encoding format %d", format))
	}

	if supplement {
		sidToGID := make(map[uint16]uint16, len(charsetSIDs))
		for gid, sid := range charsetSIDs {
			sidToGID[sid] = uint16(gid)
		}
		nSups, err := p.ReadUint8()
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(nSups); i++ {
			code, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			sid, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			if gid, ok := sidToGID[sid]; ok {
				codeToGID[code] = gid
			}
		}
	}

	enc := &Encoding{kind: EncodingKind(2 + format)}
	for code, gid := range codeToGID {
		if gid == 0 {
			continue
		}
		if int(gid) < len(charsetSIDs) {
			enc.codeToSID[code] = charsetSIDs[gid]
		}
	}
	return enc, nil
}

func namesToEncodingSIDs(names [256]string) [256]uint16 {
	var sids [256]uint16
	for code, name := range names {
		if name == "" {
			continue
		}
		sids[code] = uint16(standardNameToSID[name])
	}
	return sids
}

var standardEncodingSIDs = namesToEncodingSIDs(standardEncodingNames)
var expertEncodingSIDs = namesToEncodingSIDs(expertEncodingNames)

var standardEncodingNames = [256]string{
	32: "space",
	33: "exclam",
	34: "quotedbl",
	35: "numbersign",
	36: "dollar",
	37: "percent",
	38: "ampersand",
	39: "quoteright",
	40: "parenleft",
	41: "parenright",
	42: "asterisk",
	43: "plus",
	44: "comma",
	45: "hyphen",
	46: "period",
	47: "slash",
	48: "zero",
	49: "one",
	50: "two",
	51: "three",
	52: "four",
	53: "five",
	54: "six",
	55: "seven",
	56: "eight",
	57: "nine",
	58: "colon",
	59: "semicolon",
	60: "less",
	61: "equal",
	62: "greater",
	63: "question",
	64: "at",
	65: "A",
	66: "B",
	67: "C",
	68: "D",
	69: "E",
	70: "F",
	71: "G",
	72: "H",
	73: "I",
	74: "J",
	75: "K",
	76: "L",
	77: "M",
	78: "N",
	79: "O",
	80: "P",
	81: "Q",
	82: "R",
	83: "S",
	84: "T",
	85: "U",
	86: "V",
	87: "W",
	88: "X",
	89: "Y",
	90: "Z",
	91: "bracketleft",
	92: "backslash",
	93: "bracketright",
	94: "asciicircum",
	95: "underscore",
	96: "quoteleft",
	97: "a",
	98: "b",
	99: "c",
	100: "d",
	101: "e",
	102: "f",
	103: "g",
	104: "h",
	105: "i",
	106: "j",
	107: "k",
	108: "l",
	109: "m",
	110: "n",
	111: "o",
	112: "p",
	113: "q",
	114: "r",
	115: "s",
	116: "t",
	117: "u",
	118: "v",
	119: "w",
	120: "x",
	121: "y",
	122: "z",
	123: "braceleft",
	124: "bar",
	125: "braceright",
	126: "asciitilde",
	161: "exclamdown",
	162: "cent",
	163: "sterling",
	164: "fraction",
	165: "yen",
	166: "florin",
	167: "section",
	168: "currency",
	169: "quotesingle",
	170: "quotedblleft",
	171: "guillemotleft",
	172: "guilsinglleft",
	173: "guilsinglright",
	174: "fi",
	175: "fl",
	177: "endash",
	178: "dagger",
	179: "daggerdbl",
	180: "periodcentered",
	182: "paragraph",
	183: "bullet",
	184: "quotesinglbase",
	185: "quotedblbase",
	186: "quotedblright",
	187: "guillemotright",
	188: "ellipsis",
	189: "perthousand",
	191: "questiondown",
	193: "grave",
	194: "acute",
	195: "circumflex",
	196: "tilde",
	197: "macron",
	198: "breve",
	199: "dotaccent",
	200: "dieresis",
	202: "ring",
	203: "cedilla",
	205: "hungarumlaut",
	206: "ogonek",
	207: "caron",
	208: "emdash",
	225: "AE",
	227: "ordfeminine",
	232: "Lslash",
	233: "Oslash",
	234: "OE",
	235: "ordmasculine",
	241: "ae",
	245: "dotlessi",
	248: "lslash",
	249: "oslash",
	250: "oe",
	251: "germandbls",
}

var expertEncodingNames = [256]string{
	32: "space",
	33: "exclamsmall",
	34: "Hungarumlautsmall",
	36: "dollaroldstyle",
	37: "dollarsuperior",
	38: "ampersandsmall",
	39: "Acutesmall",
	40: "parenleftsuperior",
	41: "parenrightsuperior",
	42: "twodotenleader",
	43: "onedotenleader",
	44: "comma",
	45: "hyphen",
	46: "period",
	47: "fraction",
	48: "zerooldstyle",
	49: "oneoldstyle",
	50: "twooldstyle",
	51: "threeoldstyle",
	52: "fouroldstyle",
	53: "fiveoldstyle",
	54: "sixoldstyle",
	55: "sevenoldstyle",
	56: "eightoldstyle",
	57: "nineoldstyle",
	58: "colon",
	59: "semicolon",
	60: "commasuperior",
	61: "threequartersemdash",
	62: "periodsuperior",
	63: "questionsmall",
	65: "asuperior",
	66: "bsuperior",
	67: "centsuperior",
	68: "dsuperior",
	69: "esuperior",
	73: "isuperior",
	76: "lsuperior",
	77: "msuperior",
	78: "nsuperior",
	79: "osuperior",
	82: "rsuperior",
	83: "ssuperior",
	84: "tsuperior",
	86: "ff",
	87: "fi",
	88: "fl",
	89: "ffi",
	90: "ffl",
	91: "parenleftinferior",
	93: "parenrightinferior",
	94: "Circumflexsmall",
	95: "hyphensuperior",
	96: "Gravesmall",
	97: "Asmall",
	98: "Bsmall",
	99: "Csmall",
	100: "Dsmall",
	101: "Esmall",
	102: "Fsmall",
	103: "Gsmall",
	104: "Hsmall",
	105: "Ismall",
	106: "Jsmall",
	107: "Ksmall",
	108: "Lsmall",
	109: "Msmall",
	110: "Nsmall",
	111: "Osmall",
	112: "Psmall",
	113: "Qsmall",
	114: "Rsmall",
	115: "Ssmall",
	116: "Tsmall",
	117: "Usmall",
	118: "Vsmall",
	119: "Wsmall",
	120: "Xsmall",
	121: "Ysmall",
	122: "Zsmall",
	123: "colonmonetary",
	124: "onefitted",
	125: "rupiah",
	126: "Tildesmall",
	161: "exclamdownsmall",
	162: "centoldstyle",
	163: "Lslashsmall",
	166: "Scaronsmall",
	167: "Zcaronsmall",
	168: "Dieresissmall",
	169: "Brevesmall",
	170: "Caronsmall",
	172: "Dotaccentsmall",
	175: "Macronsmall",
	178: "figuredash",
	179: "hypheninferior",
	182: "Ogoneksmall",
	183: "Ringsmall",
	184: "Cedillasmall",
	188: "onequarter",
	189: "onehalf",
	190: "threequarters",
	191: "questiondownsmall",
	192: "oneeighth",
	193: "threeeighths",
	194: "fiveeighths",
	195: "seveneighths",
	196: "onethird",
	197: "twothirds",
	200: "zerosuperior",
	201: "onesuperior",
	202: "twosuperior",
	203: "threesuperior",
	204: "foursuperior",
	205: "fivesuperior",
	206: "sixsuperior",
	207: "sevensuperior",
	208: "eightsuperior",
	209: "ninesuperior",
	210: "zeroinferior",
	211: "oneinferior",
	212: "twoinferior",
	213: "threeinferior",
	214: "fourinferior",
	215: "fiveinferior",
	216: "sixinferior",
	217: "seveninferior",
	218: "eightinferior",
	219: "nineinferior",
	220: "centinferior",
	221: "dollarinferior",
	222: "periodinferior",
	223: "commainferior",
	224: "Agravesmall",
	225: "Aacutesmall",
	226: "Acircumflexsmall",
	227: "Atildesmall",
	228: "Adieresissmall",
	229: "Aringsmall",
	230: "AEsmall",
	231: "Ccedillasmall",
	232: "Egravesmall",
	233: "Eacutesmall",
	234: "Ecircumflexsmall",
	235: "Edieresissmall",
	236: "Igravesmall",
	237: "Iacutesmall",
	238: "Icircumflexsmall",
	239: "Idieresissmall",
	240: "Ethsmall",
	241: "Ntildesmall",
	242: "Ogravesmall",
	243: "Oacutesmall",
	244: "Ocircumflexsmall",
	245: "Otildesmall",
	246: "Odieresissmall",
	247: "OEsmall",
	248: "Oslashsmall",
	249: "Ugravesmall",
	250: "Uacutesmall",
	251: "Ucircumflexsmall",
	252: "Udieresissmall",
	253: "Yacutesmall",
	254: "Thornsmall",
	255: "Ydieresissmall",
}