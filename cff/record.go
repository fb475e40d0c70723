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

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
)

const (
	defaultBlueScale = 0.039625
	defaultBlueShift = 7
	defaultBlueFuzz  = 1
)

// PrivateInfo is a font's (or, for a CID-keyed font, a single FD's)
// Private DICT, resolved together with its local subroutines.
type PrivateInfo struct {
	Dict          *type1.PrivateDict
	DefaultWidthX funit.Int16
	NominalWidthX funit.Int16
	Subrs         Subroutines
}

// deltaToInt16 narrows a delta-decoded operand list to funit.Int16, the
// type type1.PrivateDict's BlueValues/OtherBlues fields carry.
func deltaToInt16(vals []int32) []funit.Int16 {
	if len(vals) == 0 {
		return nil
	}
	res := make([]funit.Int16, len(vals))
	for i, v := range vals {
		res[i] = funit.Int16(v)
	}
	return res
}

// readPrivateInfo parses a Private DICT bounded by (size, offset) rather
// than by an INDEX entry, per ADOBE TN#5176 section 15. offset is
// relative to the CFF blob origin base.
func readPrivateInfo(p *parser.Parser, base int64, size, offset int32) (*PrivateInfo, error) {
	if size < 0 || offset < 0 {
		return nil, invalidSince("negative Private DICT size or offset")
	}

	pos := base + int64(offset)
	if err := p.SeekPos(pos); err != nil {
		return nil, err
	}
	blob, err := p.ReadBytes(int(size))
	if err != nil {
		return nil, err
	}

	ops, err := decodeDict(blob)
	if err != nil {
		return nil, err
	}

	dict := &type1.PrivateDict{
		BlueValues: deltaToInt16(ops.GetDelta(OpBlueValues)),
		OtherBlues: deltaToInt16(ops.GetDelta(OpOtherBlues)),
		BlueScale:  ops.GetFloat(OpBlueScale, defaultBlueScale),
		BlueShift:  ops.GetInt(OpBlueShift, defaultBlueShift),
		BlueFuzz:   ops.GetInt(OpBlueFuzz, defaultBlueFuzz),
		StdHW:      ops.GetFloat(OpStdHW, 0),
		StdVW:      ops.GetFloat(OpStdVW, 0),
		ForceBold:  ops.GetInt(OpForceBold, 0) != 0,
	}

	info := &PrivateInfo{
		Dict:          dict,
		DefaultWidthX: funit.Int16(ops.GetInt(OpDefaultWidthX, 0)),
		NominalWidthX: funit.Int16(ops.GetInt(OpNominalWidthX, 0)),
	}

	if subrsOffset := ops.GetInt(OpSubrs, 0); subrsOffset > 0 {
		subrs, err := readIndexAt(p, pos+int64(subrsOffset), "local Subrs")
		if err != nil {
			return nil, err
		}
		info.Subrs = Subroutines(subrs)
	}

	return info, nil
}

// Record is the per-font data that depends on whether the font is
// CID-keyed or name-keyed: a name-keyed font has one Private DICT, a
// CID-keyed font has an FDArray of font DICTs, each with its own
// Private DICT, selected per-glyph by FDSelect.
type Record interface {
	isRecord()
}

// NameKeyedRecord is a Record for a font that is not CID-keyed.
type NameKeyedRecord struct {
	Private *PrivateInfo
}

func (*NameKeyedRecord) isRecord() {}

// CIDKeyedRecord is a Record for a CID-keyed font.
type CIDKeyedRecord struct {
	ROS      *cid.SystemInfo
	CIDCount int32

	// FDArray and FDPrivate hold one Operations and one PrivateInfo per
	// font DICT respectively, indexed the way FDSelect reports.
	FDArray   []*Operations
	FDPrivate []*PrivateInfo
	FDSelect  FDSelect
}

func (*CIDKeyedRecord) isRecord() {}

// isCIDKeyed reports whether a top-level dictionary describes a
// CID-keyed font: the first operator written into the dictionary's byte
// stream must be ROS. Presence of ROS anywhere else does not count.
func isCIDKeyed(ops *Operations) bool {
	return len(ops.Ordering) > 0 && ops.Ordering[0] == OpROS
}

// readRecord reads the per-font Record described by ops, which is the
// font's already-decoded top-level dictionary. base is the CFF blob
// origin; numGlyphs is this font's glyph count, used to size FDSelect;
// strs resolves the ROS registry/ordering SIDs for CID-keyed fonts.
func readRecord(p *parser.Parser, base int64, ops *Operations, numGlyphs int, strs *Strings) (Record, error) {
	if isCIDKeyed(ops) {
		return readCIDKeyedRecord(p, base, ops, numGlyphs, strs)
	}
	return readNameKeyedRecord(p, base, ops)
}

func readNameKeyedRecord(p *parser.Parser, base int64, ops *Operations) (Record, error) {
	size, offset, err := ops.GetDouble(OpPrivate)
	if err != nil {
		return nil, fmt.Errorf("cff: %w", err)
	}
	private, err := readPrivateInfo(p, base, size.Int32(), offset.Int32())
	if err != nil {
		return nil, err
	}
	return &NameKeyedRecord{Private: private}, nil
}

func readCIDKeyedRecord(p *parser.Parser, base int64, ops *Operations, numGlyphs int, strs *Strings) (Record, error) {
	registrySID, orderingSID, err := ops.GetDouble(OpROS)
	if err != nil {
		return nil, fmt.Errorf("cff: %w", err)
	}
	rosVals := ops.Mapping[OpROS]
	if len(rosVals) < 3 {
		return nil, invalidSince("ROS requires three operands")
	}
	registry, err := strs.Get(uint16(registrySID.Int32()))
	if err != nil {
		return nil, fmt.Errorf("cff: ROS registry: %w", err)
	}
	ordering, err := strs.Get(uint16(orderingSID.Int32()))
	if err != nil {
		return nil, fmt.Errorf("cff: ROS ordering: %w", err)
	}

	fdArrayOffset, err := ops.GetSingle(OpFDArray)
	if err != nil {
		return nil, fmt.Errorf("cff: %w", err)
	}
	fdSelectOffset, err := ops.GetSingle(OpFDSelect)
	if err != nil {
		return nil, fmt.Errorf("cff: %w", err)
	}

	fdArrayIdx, err := readIndexAt(p, base+int64(fdArrayOffset.Int32()), "FDArray")
	if err != nil {
		return nil, err
	}

	fdOps := make([]*Operations, len(fdArrayIdx))
	fdPrivate := make([]*PrivateInfo, len(fdArrayIdx))
	for i, blob := range fdArrayIdx {
		fdDict, err := decodeDict(blob)
		if err != nil {
			return nil, err
		}
		fdOps[i] = fdDict

		size, offset, err := fdDict.GetDouble(OpPrivate)
		if err != nil {
			return nil, fmt.Errorf("cff: font DICT %d: %w", i, err)
		}
		private, err := readPrivateInfo(p, base, size.Int32(), offset.Int32())
		if err != nil {
			return nil, err
		}
		fdPrivate[i] = private
	}

	if err := p.SeekPos(base + int64(fdSelectOffset.Int32())); err != nil {
		return nil, err
	}
	fdSelect, err := readFDSelect(p, numGlyphs, len(fdArrayIdx))
	if err != nil {
		return nil, err
	}

	rec := &CIDKeyedRecord{
		ROS: &cid.SystemInfo{
			Registry:   registry,
			Ordering:   ordering,
			Supplement: rosVals[2].Int32(),
		},
		CIDCount:  ops.GetInt(OpCIDCount, 8720),
		FDArray:   fdOps,
		FDPrivate: fdPrivate,
		FDSelect:  fdSelect,
	}
	return rec, nil
}
