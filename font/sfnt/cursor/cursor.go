// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package cursor implements a seekable big-endian reader and writer over
// an in-memory byte buffer.
//
// Positions can be remembered under a name (a "mark") and later used as
// seek targets.  This is used to jump between the tables of a font file.
package cursor

import (
	"encoding/binary"
	"os"

	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
)

// Cursor is a position within a byte buffer.
type Cursor struct {
	buf   []byte
	pos   int64
	marks map[string]int64
}

// New returns a cursor positioned at the start of buf.
// The cursor takes ownership of buf.
func New(buf []byte) *Cursor {
	return &Cursor{
		buf:   buf,
		marks: make(map[string]int64),
	}
}

// Open reads the file at path into memory and returns a cursor positioned
// at the start of the data.
func Open(path string) (*Cursor, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(buf), nil
}

// Pos returns the current offset.
func (c *Cursor) Pos() int64 {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Bytes returns the underlying buffer.
func (c *Cursor) Bytes() []byte {
	return c.buf
}

// SeekTo moves the cursor to the given absolute offset.
// Offsets between 0 and Len() inclusive are valid.
func (c *Cursor) SeekTo(pos int64) error {
	if pos < 0 || pos > int64(len(c.buf)) {
		return &fonterror.TruncatedStreamError{
			Pos:  pos,
			Have: len(c.buf),
		}
	}
	c.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	if c.pos+int64(n) > int64(len(c.buf)) {
		return c.truncated(n)
	}
	return c.SeekTo(c.pos + int64(n))
}

// SetMark records the current offset under the given name.
func (c *Cursor) SetMark(name string) {
	c.marks[name] = c.pos
}

// SetMarkAt records an explicit offset under the given name.
func (c *Cursor) SetMarkAt(name string, pos int64) {
	c.marks[name] = pos
}

// Mark returns the offset recorded under the given name.
func (c *Cursor) Mark(name string) (int64, error) {
	pos, ok := c.marks[name]
	if !ok {
		return 0, &fonterror.UnknownMarkerError{Name: name}
	}
	return pos, nil
}

// SeekMark moves the cursor to a named offset.
func (c *Cursor) SeekMark(name string) error {
	pos, err := c.Mark(name)
	if err != nil {
		return err
	}
	return c.SeekTo(pos)
}

// Read returns the next n bytes and advances the cursor.
// The returned slice aliases the underlying buffer.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || c.pos+int64(n) > int64(len(c.buf)) {
		return nil, c.truncated(n)
	}
	res := c.buf[c.pos : c.pos+int64(n) : c.pos+int64(n)]
	c.pos += int64(n)
	return res, nil
}

// ReadUint16 reads a big-endian unsigned 16-bit value.
func (c *Cursor) ReadUint16() (uint16, error) {
	buf, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadInt16 reads a big-endian signed 16-bit value.
func (c *Cursor) ReadInt16() (int16, error) {
	x, err := c.ReadUint16()
	return int16(x), err
}

// ReadUint32 reads a big-endian unsigned 32-bit value.
func (c *Cursor) ReadUint32() (uint32, error) {
	buf, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadInt32 reads a big-endian signed 32-bit value.
func (c *Cursor) ReadInt32() (int32, error) {
	x, err := c.ReadUint32()
	return int32(x), err
}

// Write stores p at the current offset, overwriting existing bytes and
// growing the buffer as needed.  This implements the [io.Writer] interface.
func (c *Cursor) Write(p []byte) (int, error) {
	end := c.pos + int64(len(p))
	if end > int64(len(c.buf)) {
		c.buf = append(c.buf, make([]byte, end-int64(len(c.buf)))...)
	}
	copy(c.buf[c.pos:end], p)
	c.pos = end
	return len(p), nil
}

// WriteUint16 writes a big-endian unsigned 16-bit value.
func (c *Cursor) WriteUint16(x uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], x)
	c.Write(buf[:])
}

// WriteInt16 writes a big-endian signed 16-bit value.
func (c *Cursor) WriteInt16(x int16) {
	c.WriteUint16(uint16(x))
}

// WriteUint32 writes a big-endian unsigned 32-bit value.
func (c *Cursor) WriteUint32(x uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], x)
	c.Write(buf[:])
}

func (c *Cursor) truncated(n int) error {
	have := int64(len(c.buf)) - c.pos
	if have < 0 {
		have = 0
	}
	return &fonterror.TruncatedStreamError{
		Pos:  c.pos,
		Want: n,
		Have: int(have),
	}
}
