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

import "errors"

// InvalidFontError indicates a problem with the structure of a CFF blob:
// a broken INDEX invariant, a malformed number, a missing required
// operator, or an operand of the wrong type.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "cff: " + err.Reason
}

func invalidSince(reason string) error {
	return &InvalidFontError{reason}
}

// IsInvalid reports whether err was produced because the input did not
// conform to the CFF format. It sees through fmt.Errorf wrapping.
func IsInvalid(err error) bool {
	var invalid *InvalidFontError
	return errors.As(err, &invalid)
}

// NotSupportedError indicates that the input is a well-formed CFF blob
// that uses a feature this package does not implement.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "cff: " + err.Feature + " not supported"
}

func unsupported(feature string) error {
	return &NotSupportedError{feature}
}
