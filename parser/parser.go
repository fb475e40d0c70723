// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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

// Package parser implements a stateful, random-access byte reader for
// binary font data. A Parser tracks its own read position and can jump to
// an absolute offset, which is the access pattern CFF's self-referential
// offsets require.
package parser

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnexpectedEOF is returned when a read runs past the end of the
// underlying data.
var ErrUnexpectedEOF = errors.New("parser: unexpected EOF")

// ReadSeekSizer is the interface a Parser needs from its underlying data
// source: it must support sequential reads, absolute seeks, and report its
// total size so that out-of-bounds jumps can be rejected up front.
type ReadSeekSizer interface {
	io.Reader
	io.Seeker
	Size() int64
}

// Parser reads big-endian binary data from a ReadSeekSizer, keeping track
// of the current position so that callers can jump to absolute offsets and
// return.
type Parser struct {
	r    ReadSeekSizer
	pos  int64
	size int64
}

// New allocates a Parser reading from r. The initial position is 0.
func New(r ReadSeekSizer) *Parser {
	return &Parser{r: r, size: r.Size()}
}

// Pos returns the current read position.
func (p *Parser) Pos() int64 {
	return p.pos
}

// Size returns the total size of the underlying data.
func (p *Parser) Size() int64 {
	return p.size
}

// SeekPos moves the read position to the given absolute offset. The
// position may point anywhere within the stream, including at its end;
// seeking past the end is an error.
func (p *Parser) SeekPos(pos int64) error {
	if pos < 0 || pos > p.size {
		return fmt.Errorf("parser: seek to %d out of range [0, %d]", pos, p.size)
	}
	_, err := p.r.Seek(pos, io.SeekStart)
	if err != nil {
		return err
	}
	p.pos = pos
	return nil
}

// Read implements io.Reader, advancing the current position.
func (p *Parser) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.pos += int64(n)
	return n, err
}

// readFull reads exactly len(buf) bytes, or reports ErrUnexpectedEOF.
func (p *Parser) readFull(buf []byte) error {
	_, err := io.ReadFull(p, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOF
	}
	return err
}

// ReadUint8 reads a single byte.
func (p *Parser) ReadUint8() (uint8, error) {
	var buf [1]byte
	if err := p.readFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a big-endian uint16.
func (p *Parser) ReadUint16() (uint16, error) {
	var buf [2]byte
	if err := p.readFull(buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadInt16 reads a big-endian, two's complement int16.
func (p *Parser) ReadInt16() (int16, error) {
	v, err := p.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian uint32.
func (p *Parser) ReadUint32() (uint32, error) {
	var buf [4]byte
	if err := p.readFull(buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadInt32 reads a big-endian, two's complement int32.
func (p *Parser) ReadInt32() (int32, error) {
	v, err := p.ReadUint32()
	return int32(v), err
}

// ReadBytes reads and returns n bytes.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("parser: negative read length %d", n)
	}
	buf := make([]byte, n)
	if err := p.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadOffset reads an unsigned big-endian integer of the given width,
// 1 to 4 bytes, as used for CFF Offset and OffsetSize values.
func (p *Parser) ReadOffset(width int) (uint32, error) {
	if width < 1 || width > 4 {
		return 0, fmt.Errorf("parser: invalid offset width %d", width)
	}
	buf, err := p.ReadBytes(width)
	if err != nil {
		return 0, err
	}
	var v uint32
	for _, b := range buf {
		v = v<<8 | uint32(b)
	}
	return v, nil
}
