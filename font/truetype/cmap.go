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

package truetype

import (
	"slices"

	"github.com/tdewolff/parse/v2"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
	"seehuhn.de/go/pdfgen/font/sfnt/table"
)

// cmapFormat4 holds the segment arrays of a format 4 "cmap" subtable.
// The glyph ID array is not loaded; lookups seek to the "cmap.idRangeOffset"
// mark instead.
type cmapFormat4 struct {
	endCount      []uint16
	startCount    []uint16
	idDelta       []uint16
	idRangeOffset []uint16
}

func (f *Font) parseCmap(*Metrics) error {
	c := f.c
	err := f.seekTable("cmap", 2)
	if err != nil {
		return err
	}
	numTables, err := c.ReadUint16()
	if err != nil {
		return err
	}

	var subtable int64 = -1
	for range int(numTables) {
		buf, err := c.Read(8)
		if err != nil {
			return err
		}
		platformID := be16(buf[0:2])
		encodingID := be16(buf[2:4])
		if platformID == 3 && encodingID == 1 {
			subtable = int64(be32(buf[4:8]))
			break
		}
	}
	if subtable < 0 {
		return &fonterror.UnsupportedEncodingError{
			Reason: "no Windows Unicode BMP subtable",
		}
	}

	err = f.seekTable("cmap", subtable)
	if err != nil {
		return err
	}
	format, err := c.ReadUint16()
	if err != nil {
		return err
	}
	if format != 4 {
		return &fonterror.UnsupportedEncodingError{
			Reason: "Windows Unicode BMP subtable not in format 4",
		}
	}
	err = c.Skip(4) // length, language
	if err != nil {
		return err
	}
	segCountX2, err := c.ReadUint16()
	if err != nil {
		return err
	}
	segCount := int(segCountX2 / 2)
	err = c.Skip(6) // searchRange, entrySelector, rangeShift
	if err != nil {
		return err
	}

	readArray := func() ([]uint16, error) {
		res := make([]uint16, segCount)
		for i := range res {
			res[i], err = c.ReadUint16()
			if err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	cmap := &cmapFormat4{}
	if cmap.endCount, err = readArray(); err != nil {
		return err
	}
	if err = c.Skip(2); err != nil { // reservedPad
		return err
	}
	if cmap.startCount, err = readArray(); err != nil {
		return err
	}
	if cmap.idDelta, err = readArray(); err != nil {
		return err
	}
	c.SetMark("cmap.idRangeOffset")
	if cmap.idRangeOffset, err = readArray(); err != nil {
		return err
	}
	f.cmap = cmap
	return nil
}

// GlyphIndex returns the glyph index for the code point r, or 0 if the font
// has no glyph for r.
func (f *Font) GlyphIndex(r rune) (int, error) {
	if r < 0 || r >= 0xFFFF {
		return 0, nil
	}
	code := uint16(r)
	cmap := f.cmap
	for k, end := range cmap.endCount {
		if code > end {
			continue
		}
		if code < cmap.startCount[k] {
			return 0, nil
		}

		if cmap.idRangeOffset[k] == 0 {
			return int(code + cmap.idDelta[k]), nil
		}

		base, err := f.c.Mark("cmap.idRangeOffset")
		if err != nil {
			return 0, err
		}
		pos := base + int64(2*k) + int64(cmap.idRangeOffset[k]) +
			2*int64(code-cmap.startCount[k])
		err = f.c.SeekTo(pos)
		if err != nil {
			return 0, f.tableError("cmap", err)
		}
		gid, err := f.c.ReadUint16()
		if err != nil {
			return 0, f.tableError("cmap", err)
		}
		if gid == 0 {
			return 0, nil
		}
		return int(gid + cmap.idDelta[k]), nil
	}
	return 0, nil
}

// cmapSegment is a range of consecutive code points.
type cmapSegment struct {
	first, last uint16
}

// cmapSegments splits the sorted code points into runs of consecutive
// values.
func cmapSegments(codes []uint16) []cmapSegment {
	var res []cmapSegment
	for _, code := range codes {
		n := len(res)
		if n > 0 && res[n-1].last+1 == code {
			res[n-1].last = code
			continue
		}
		res = append(res, cmapSegment{code, code})
	}
	return res
}

// BuildCMap returns a "cmap" table with a single Windows Unicode BMP
// subtable in format 4, mapping the keys of m to the corresponding values.
// Code points above 0xFFFE are ignored.
func BuildCMap(m map[rune]int) []byte {
	var codes []uint16
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, r := range keys {
		if r >= 0 && r < 0xFFFF {
			codes = append(codes, uint16(r))
		}
	}
	segments := append(cmapSegments(codes), cmapSegment{0xFFFF, 0xFFFF})
	segCount := len(segments)

	idDelta := make([]uint16, segCount)
	idRangeOffset := make([]uint16, segCount)
	var glyphIDArray []uint16
	for i, seg := range segments {
		switch {
		case seg.first == 0xFFFF:
			idDelta[i] = 1
		case seg.first == seg.last:
			idDelta[i] = uint16(m[rune(seg.first)]) - seg.first
		default:
			idRangeOffset[i] = uint16(2 * (segCount - i + len(glyphIDArray)))
			for code := seg.first; ; code++ {
				glyphIDArray = append(glyphIDArray, uint16(m[rune(code)]))
				if code == seg.last {
					break
				}
			}
		}
	}

	searchRange, entrySelector, rangeShift := table.SearchParams(segCount, 2)
	length := 16 + 8*segCount + 2*len(glyphIDArray)

	w := parse.NewBinaryWriter(make([]byte, 0, 12+length))
	w.WriteUint16(0) // version
	w.WriteUint16(1) // numTables
	w.WriteUint16(3) // platformID
	w.WriteUint16(1) // encodingID
	w.WriteUint32(12)

	w.WriteUint16(4)
	w.WriteUint16(uint16(length))
	w.WriteUint16(0) // language
	w.WriteUint16(uint16(2 * segCount))
	w.WriteUint16(searchRange)
	w.WriteUint16(entrySelector)
	w.WriteUint16(rangeShift)
	for _, seg := range segments {
		w.WriteUint16(seg.last)
	}
	w.WriteUint16(0) // reservedPad
	for _, seg := range segments {
		w.WriteUint16(seg.first)
	}
	for _, x := range idDelta {
		w.WriteUint16(x)
	}
	for _, x := range idRangeOffset {
		w.WriteUint16(x)
	}
	for _, gid := range glyphIDArray {
		w.WriteUint16(gid)
	}
	return w.Bytes()
}
