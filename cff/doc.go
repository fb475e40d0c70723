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

// Package cff reads the Compact Font Format (CFF, version 1) and the
// numeric encoding used by Type 2 CharStrings.
//
// A CFF blob is read with [Read], which materializes the header,
// name index, per-font top dictionaries, string index, global subroutines,
// and per-font charsets, encodings, charstrings and private records. Glyph
// outline interpretation beyond the numeric lead bytes of a CharString is
// outside this package's scope.
package cff
