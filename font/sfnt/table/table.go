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

// Package table holds the building blocks shared by sfnt font readers and
// writers: table tags, raw table payloads, checksums and the binary search
// header used by the table directory and by "cmap" format 4 subtables.
package table

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Tag is the four-byte identifier of an sfnt table.
type Tag [4]byte

// MakeTag converts a string of length 4 into a Tag.
func MakeTag(s string) Tag {
	if len(s) != 4 {
		panic(fmt.Sprintf("invalid table tag %q", s))
	}
	return Tag{s[0], s[1], s[2], s[3]}
}

func (tag Tag) String() string {
	return string(tag[:])
}

// Record is an entry of the sfnt table directory.
type Record struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Raw is the binary payload of a single table.
// Data is always zero-padded to a multiple of four bytes, Length gives the
// size before padding.
type Raw struct {
	Tag      Tag
	Data     []byte
	Length   uint32
	Checksum uint32
}

// NewRaw pads data and computes the table checksum.
// The caller must not modify data afterwards.
func NewRaw(tag Tag, data []byte) *Raw {
	length := len(data)
	padded := Pad(data)
	return &Raw{
		Tag:      tag,
		Data:     padded,
		Length:   uint32(length),
		Checksum: Checksum(padded),
	}
}

// Record returns the directory entry for the table, placed at the given
// offset.
func (t *Raw) Record(offset uint32) Record {
	return Record{
		Tag:      t.Tag,
		Checksum: t.Checksum,
		Offset:   offset,
		Length:   t.Length,
	}
}

// Pad returns data extended with zero bytes to a multiple of four.
func Pad(data []byte) []byte {
	if len(data)%4 == 0 {
		return data
	}
	res := make([]byte, (len(data)+3)&^3)
	copy(res, data)
	return res
}

// Checksum computes the sfnt checksum of data.  The data are interpreted as
// a sequence of big-endian 32-bit words, a partial final word is padded with
// zeros.  The sum is accumulated in two 16-bit halves with the carry of the
// low half folded into the high half.
func Checksum(data []byte) uint32 {
	var hi, lo uint32
	n := len(data)
	for i := 0; i < n; i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		hi += uint32(binary.BigEndian.Uint16(word[0:2]))
		lo += uint32(binary.BigEndian.Uint16(word[2:4]))
		hi += lo >> 16
		lo &= 0xFFFF
		hi &= 0xFFFF
	}
	return hi<<16 | lo
}

// Sub32 computes a-b modulo 2^32 using the same 16/16 split as Checksum.
func Sub32(a, b uint32) uint32 {
	hi := (a >> 16) - (b >> 16)
	lo := (a & 0xFFFF) - (b & 0xFFFF)
	if lo&0x8000_0000 != 0 {
		hi--
		lo += 0x10000
	}
	return (hi&0xFFFF)<<16 | lo&0xFFFF
}

// SearchParams computes the binary search header for n entries of the given
// unit size in bytes.  The directory uses unit 16, "cmap" format 4 uses
// unit 2.
func SearchParams(n, unit int) (searchRange, entrySelector, rangeShift uint16) {
	if n <= 0 {
		return 0, 0, 0
	}
	sel := bits.Len(uint(n)) - 1
	searchRange = uint16(unit << sel)
	entrySelector = uint16(sel)
	rangeShift = uint16(unit*n) - searchRange
	return searchRange, entrySelector, rangeShift
}
