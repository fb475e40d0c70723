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

	"goethe.dev/cff/glyph"
	"goethe.dev/cff/parser"
)

// CharSet maps each glyph id to a string id (SID), giving the glyph its
// PostScript name (via Strings). It is either one of three predefined
// tables or a format-tagged table read from the CFF blob.
type CharSet struct {
	kind CharSetKind
	// sids[gid] is the string id for glyph gid; sids[0] is always 0
	// (.notdef) and is present even though the wire format omits it.
	sids []uint16
}

// CharSetKind identifies which of the six CharSet variants a CharSet
// holds.
type CharSetKind int

const (
	CharSetISOAdobe CharSetKind = iota
	CharSetExpert
	CharSetExpertSubset
	CharSetFormat0
	CharSetFormat1
	CharSetFormat2
)

// Kind reports which variant this CharSet is.
func (cs *CharSet) Kind() CharSetKind { return cs.kind }

// Get returns the string id for gid.
func (cs *CharSet) Get(gid glyph.ID) (uint16, error) {
	if int(gid) >= len(cs.sids) {
		return 0, invalidSince(fmt.Sprintf("glyph id %d out of range", gid))
	}
	return cs.sids[int(gid)], nil
}

// readCharSet selects and, if needed, reads a CharSet, following the
// CharSet operand convention: 0/1/2 name predefined tables, any other
// value is an absolute offset to a format-tagged table. numGlyphs is the
// font's glyph count (the CharStrings INDEX count), which format 0/1/2
// readers use to know when to stop.
func readCharSet(p *parser.Parser, base int64, op int32, numGlyphs int) (*CharSet, error) {
	switch op {
	case 0:
		return predefinedCharSet(CharSetISOAdobe, isoAdobeSIDs, numGlyphs)
	case 1:
		return predefinedCharSet(CharSetExpert, expertSIDs, numGlyphs)
	case 2:
		return predefinedCharSet(CharSetExpertSubset, expertSubsetSIDs, numGlyphs)
	}

	if err := p.SeekPos(base + int64(op)); err != nil {
		return nil, err
	}
	return ReadCharSet(p, numGlyphs)
}

// ReadCharSet reads a format-tagged charset table at the current
// position. numGlyphs is the font's glyph count, which formats 0, 1 and
// 2 all need to know when to stop; the implicit .notdef at glyph 0 is
// counted but not stored on the wire.
func ReadCharSet(p *parser.Parser, numGlyphs int) (*CharSet, error) {
	if numGlyphs < 1 {
		return nil, invalidSince("charset glyph count must include .notdef")
	}
	format, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}

	sids := make([]uint16, 1, numGlyphs) // sids[0] = 0, the implicit .notdef

	switch format {
	case 0:
		for len(sids) < numGlyphs {
			sid, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			sids = append(sids, sid)
		}
		return &CharSet{kind: CharSetFormat0, sids: sids}, nil
	case 1:
		for len(sids) < numGlyphs {
			first, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			nLeft, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			for i := 0; i <= int(nLeft) && len(sids) < numGlyphs; i++ {
				sids = append(sids, first+uint16(i))
			}
		}
		return &CharSet{kind: CharSetFormat1, sids: sids}, nil
	case 2:
		for len(sids) < numGlyphs {
			first, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			nLeft, err := p.ReadUint16()
			if err != nil {
				return nil, err
			}
			for i := 0; i <= int(nLeft) && len(sids) < numGlyphs; i++ {
				sids = append(sids, first+uint16(i))
			}
		}
		return &CharSet{kind: CharSetFormat2, sids: sids}, nil
	default:
		return nil, invalidSince(fmt.Sprintf("unsupported charset format %d", format))
	}
}

func predefinedCharSet(kind CharSetKind, table []uint16, numGlyphs int) (*CharSet, error) {
	if numGlyphs > len(table) {
		return nil, invalidSince("predefined charset too short for glyph count")
	}
	return &CharSet{kind: kind, sids: table[:numGlyphs]}, nil
}

// namesToSIDs resolves a list of predefined glyph names to their
// standard SIDs, using their position in standardStrings.
func namesToSIDs(names []string) []uint16 {
	sids := make([]uint16, len(names))
	for i, n := range names {
		sids[i] = uint16(standardNameToSID[n])
	}
	return sids
}

var standardNameToSID = func() map[string]int {
	m := make(map[string]int, len(standardStrings))
	for i, s := range standardStrings {
		m[s] = i
	}
	return m
}()

var isoAdobeSIDs = namesToSIDs(isoAdobeCharsetNames)
var expertSIDs = namesToSIDs(expertCharsetNames)
var expertSubsetSIDs = namesToSIDs(expertSubsetCharsetNames)

// The three predefined CharSets are given as glyph-name lists, mirroring
// how the Adobe specification tabulates them; each name's SID is its
// index in standardStrings, resolved once at init time above.

var isoAdobeCharsetNames = []string{
	".notdef",
	"space",
	"exclam",
	"quotedbl",
	"numbersign",
	"dollar",
	"percent",
	"ampersand",
	"quoteright",
	"parenleft",
	"parenright",
	"asterisk",
	"plus",
	"comma",
	"hyphen",
	"period",
	"slash",
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"colon",
	"semicolon",
	"less",
	"equal",
	"greater",
	"question",
	"at",
	"A",
	"B",
	"C",
	"D",
	"E",
	"F",
	"G",
	"H",
	"I",
	"J",
	"K",
	"L",
	"M",
	"N",
	"O",
	"P",
	"Q",
	"R",
	"S",
	"T",
	"U",
	"V",
	"W",
	"X",
	"Y",
	"Z",
	"bracketleft",
	"backslash",
	"bracketright",
	"asciicircum",
	"underscore",
	"quoteleft",
	"a",
	"b",
	"c",
	"d",
	"e",
	"f",
	"g",
	"h",
	"i",
	"j",
	"k",
	"l",
	"m",
	"n",
	"o",
	"p",
	"q",
	"r",
	"s",
	"t",
	"u",
	"v",
	"w",
	"x",
	"y",
	"z",
	"braceleft",
	"bar",
	"braceright",
	"asciitilde",
	"exclamdown",
	"cent",
	"sterling",
	"fraction",
	"yen",
	"florin",
	"section",
	"currency",
	"quotesingle",
	"quotedblleft",
	"guillemotleft",
	"guilsinglleft",
	"guilsinglright",
	"fi",
	"fl",
	"endash",
	"dagger",
	"daggerdbl",
	"periodcentered",
	"paragraph",
	"bullet",
	"quotesinglbase",
	"quotedblbase",
	"quotedblright",
	"guillemotright",
	"ellipsis",
	"perthousand",
	"questiondown",
	"grave",
	"acute",
	"circumflex",
	"tilde",
	"macron",
	"breve",
	"dotaccent",
	"dieresis",
	"ring",
	"cedilla",
	"hungarumlaut",
	"ogonek",
	"caron",
	"emdash",
	"AE",
	"ordfeminine",
	"Lslash",
	"Oslash",
	"OE",
	"ordmasculine",
	"ae",
	"dotlessi",
	"lslash",
	"oslash",
	"oe",
	"germandbls",
	"onesuperior",
	"logicalnot",
	"mu",
	"trademark",
	"Eth",
	"onehalf",
	"plusminus",
	"Thorn",
	"onequarter",
	"divide",
	"brokenbar",
	"degree",
	"thorn",
	"threequarters",
	"twosuperior",
	"registered",
	"minus",
	"eth",
	"multiply",
	"threesuperior",
	"copyright",
	"Aacute",
	"Acircumflex",
	"Adieresis",
	"Agrave",
	"Aring",
	"Atilde",
	"Ccedilla",
	"Eacute",
	"Ecircumflex",
	"Edieresis",
	"Egrave",
	"Iacute",
	"Icircumflex",
	"Idieresis",
	"Igrave",
	"Ntilde",
	"Oacute",
	"Ocircumflex",
	"Odieresis",
	"Ograve",
	"Otilde",
	"Scaron",
	"Uacute",
	"Ucircumflex",
	"Udieresis",
	"Ugrave",
	"Yacute",
	"Ydieresis",
	"Zcaron",
	"aacute",
	"acircumflex",
	"adieresis",
	"agrave",
	"aring",
	"atilde",
	"ccedilla",
	"eacute",
	"ecircumflex",
	"edieresis",
	"egrave",
	"iacute",
	"icircumflex",
	"idieresis",
	"igrave",
	"ntilde",
	"oacute",
	"ocircumflex",
	"odieresis",
	"ograve",
	"otilde",
	"scaron",
	"uacute",
	"ucircumflex",
	"udieresis",
	"ugrave",
	"yacute",
	"ydieresis",
	"zcaron",
}

var expertCharsetNames = []string{
	".notdef",
	"space",
	"exclamsmall",
	"Hungarumlautsmall",
	"dollaroldstyle",
	"dollarsuperior",
	"ampersandsmall",
	"Acutesmall",
	"parenleftsuperior",
	"parenrightsuperior",
	"twodotenleader",
	"onedotenleader",
	"comma",
	"hyphen",
	"period",
	"fraction",
	"zerooldstyle",
	"oneoldstyle",
	"twooldstyle",
	"threeoldstyle",
	"fouroldstyle",
	"fiveoldstyle",
	"sixoldstyle",
	"sevenoldstyle",
	"eightoldstyle",
	"nineoldstyle",
	"colon",
	"semicolon",
	"commasuperior",
	"threequartersemdash",
	"periodsuperior",
	"questionsmall",
	"asuperior",
	"bsuperior",
	"centsuperior",
	"dsuperior",
	"esuperior",
	"isuperior",
	"lsuperior",
	"msuperior",
	"nsuperior",
	"osuperior",
	"rsuperior",
	"ssuperior",
	"tsuperior",
	"ff",
	"fi",
	"fl",
	"ffi",
	"ffl",
	"parenleftinferior",
	"parenrightinferior",
	"Circumflexsmall",
	"hyphensuperior",
	"Gravesmall",
	"Asmall",
	"Bsmall",
	"Csmall",
	"Dsmall",
	"Esmall",
	"Fsmall",
	"Gsmall",
	"Hsmall",
	"Ismall",
	"Jsmall",
	"Ksmall",
	"Lsmall",
	"Msmall",
	"Nsmall",
	"Osmall",
	"Psmall",
	"Qsmall",
	"Rsmall",
	"Ssmall",
	"Tsmall",
	"Usmall",
	"Vsmall",
	"Wsmall",
	"Xsmall",
	"Ysmall",
	"Zsmall",
	"colonmonetary",
	"onefitted",
	"rupiah",
	"Tildesmall",
	"exclamdownsmall",
	"centoldstyle",
	"Lslashsmall",
	"Scaronsmall",
	"Zcaronsmall",
	"Dieresissmall",
	"Brevesmall",
	"Caronsmall",
	"Dotaccentsmall",
	"Macronsmall",
	"figuredash",
	"hypheninferior",
	"Ogoneksmall",
	"Ringsmall",
	"Cedillasmall",
	"onequarter",
	"onehalf",
	"threequarters",
	"questiondownsmall",
	"oneeighth",
	"threeeighths",
	"fiveeighths",
	"seveneighths",
	"onethird",
	"twothirds",
	"zerosuperior",
	"onesuperior",
	"twosuperior",
	"threesuperior",
	"foursuperior",
	"fivesuperior",
	"sixsuperior",
	"sevensuperior",
	"eightsuperior",
	"ninesuperior",
	"zeroinferior",
	"oneinferior",
	"twoinferior",
	"threeinferior",
	"fourinferior",
	"fiveinferior",
	"sixinferior",
	"seveninferior",
	"eightinferior",
	"nineinferior",
	"centinferior",
	"dollarinferior",
	"periodinferior",
	"commainferior",
	"Agravesmall",
	"Aacutesmall",
	"Acircumflexsmall",
	"Atildesmall",
	"Adieresissmall",
	"Aringsmall",
	"AEsmall",
	"Ccedillasmall",
	"Egravesmall",
	"Eacutesmall",
	"Ecircumflexsmall",
	"Edieresissmall",
	"Igravesmall",
	"Iacutesmall",
	"Icircumflexsmall",
	"Idieresissmall",
	"Ethsmall",
	"Ntildesmall",
	"Ogravesmall",
	"Oacutesmall",
	"Ocircumflexsmall",
	"Otildesmall",
	"Odieresissmall",
	"OEsmall",
	"Oslashsmall",
	"Ugravesmall",
	"Uacutesmall",
	"Ucircumflexsmall",
	"Udieresissmall",
	"Yacutesmall",
	"Thornsmall",
	"Ydieresissmall",
}

var expertSubsetCharsetNames = []string{
	".notdef",
	"space",
	"dollaroldstyle",
	"dollarsuperior",
	"parenleftsuperior",
	"parenrightsuperior",
	"twodotenleader",
	"onedotenleader",
	"comma",
	"hyphen",
	"period",
	"fraction",
	"zerooldstyle",
	"oneoldstyle",
	"twooldstyle",
	"threeoldstyle",
	"fouroldstyle",
	"fiveoldstyle",
	"sixoldstyle",
	"sevenoldstyle",
	"eightoldstyle",
	"nineoldstyle",
	"colon",
	"semicolon",
	"commasuperior",
	"threequartersemdash",
	"periodsuperior",
	"asuperior",
	"bsuperior",
	"centsuperior",
	"dsuperior",
	"esuperior",
	"isuperior",
	"lsuperior",
	"msuperior",
	"nsuperior",
	"osuperior",
	"rsuperior",
	"ssuperior",
	"tsuperior",
	"ff",
	"fi",
	"fl",
	"ffi",
	"ffl",
	"parenleftinferior",
	"parenrightinferior",
	"hyphensuperior",
	"colonmonetary",
	"onefitted",
	"rupiah",
	"centoldstyle",
	"figuredash",
	"hypheninferior",
	"onequarter",
	"onehalf",
	"threequarters",
	"oneeighth",
	"threeeighths",
	"fiveeighths",
	"seveneighths",
	"onethird",
	"twothirds",
	"zerosuperior",
	"onesuperior",
	"twosuperior",
	"threesuperior",
	"foursuperior",
	"fivesuperior",
	"sixsuperior",
	"sevensuperior",
	"eightsuperior",
	"ninesuperior",
	"zeroinferior",
	"oneinferior",
	"twoinferior",
	"threeinferior",
	"fourinferior",
	"fiveinferior",
	"sixinferior",
	"seveninferior",
	"eightinferior",
	"nineinferior",
	"centinferior",
	"dollarinferior",
	"periodinferior",
	"commainferior",
}
