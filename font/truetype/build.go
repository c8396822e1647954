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
	"encoding/binary"

	"seehuhn.de/go/pdfgen/font/sfnt/cursor"
	"seehuhn.de/go/pdfgen/font/sfnt/table"
)

// tableOrder lists the tables which are included in a subset font, in the
// order they appear in the file.
var tableOrder = []string{
	"cmap", "cvt ", "fpgm", "glyf", "head", "hhea",
	"hmtx", "loca", "maxp", "name", "post", "prep",
}

// copiedTables are included in the subset unchanged.
var copiedTables = []string{"cvt ", "fpgm", "name", "prep"}

const checksumMagic = 0xB1B0AFBA

// Build writes the subset as a standalone TrueType font file.
func (s *Subset) Build() ([]byte, error) {
	f := s.font
	tables := make(map[string][]byte)

	cmap := make(map[rune]int, len(s.Chars))
	for r, gid := range s.Chars {
		cmap[r] = s.ssid[gid]
	}
	tables["cmap"] = BuildCMap(cmap)

	glyf, locaOffsets, err := s.buildGlyf()
	if err != nil {
		return nil, err
	}
	longLoca := f.longLoca || len(glyf) > 2*0xFFFF
	tables["glyf"] = glyf
	tables["loca"] = encodeLoca(locaOffsets, longLoca)
	tables["hmtx"] = s.buildHmtx()

	head, err := f.rawTable("head")
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint32(head[8:12], 0)
	if longLoca {
		binary.BigEndian.PutUint16(head[50:52], 1)
	}
	tables["head"] = head

	numGlyphs := uint16(len(s.Glyphs))
	hhea, err := f.rawTable("hhea")
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint16(hhea[34:36], numGlyphs)
	tables["hhea"] = hhea

	maxp, err := f.rawTable("maxp")
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint16(maxp[4:6], numGlyphs)
	tables["maxp"] = maxp

	if f.HasTable("post") {
		tables["post"], err = s.buildPost()
		if err != nil {
			return nil, err
		}
	}
	for _, name := range copiedTables {
		if !f.HasTable(name) {
			continue
		}
		tables[name], err = f.rawTable(name)
		if err != nil {
			return nil, err
		}
	}

	return assemble(tables), nil
}

// patch replaces a 16-bit value inside a glyph record.
type patch struct {
	offset int
	value  uint16
}

// buildGlyf concatenates the outlines of the subset glyphs.  Component
// references of composite glyphs are changed to the new glyph indices.
// The returned offsets include the final end-of-table entry.
func (s *Subset) buildGlyf() ([]byte, []uint32, error) {
	f := s.font
	var glyf []byte
	offsets := make([]uint32, 0, len(s.Glyphs)+1)
	for _, g := range s.Glyphs {
		offsets = append(offsets, uint32(len(glyf)))
		if g.Length == 0 {
			continue
		}

		err := f.seekTable("glyf", int64(g.Offset))
		if err != nil {
			return nil, nil, err
		}
		data, err := f.c.Read(int(g.Length))
		if err != nil {
			return nil, nil, f.tableError("glyf", err)
		}

		patches := make([]patch, len(g.Components))
		for i, comp := range g.Components {
			patches[i] = patch{
				offset: comp.Offset,
				value:  uint16(s.ssid[comp.GID]),
			}
		}

		start := len(glyf)
		glyf = append(glyf, data...)
		for _, p := range patches {
			binary.BigEndian.PutUint16(glyf[start+p.offset:], p.value)
		}
		if len(glyf)%2 != 0 {
			glyf = append(glyf, 0)
		}
	}
	offsets = append(offsets, uint32(len(glyf)))
	return glyf, offsets, nil
}

func encodeLoca(offsets []uint32, long bool) []byte {
	if long {
		res := make([]byte, 4*len(offsets))
		for i, x := range offsets {
			binary.BigEndian.PutUint32(res[4*i:], x)
		}
		return res
	}
	res := make([]byte, 2*len(offsets))
	for i, x := range offsets {
		binary.BigEndian.PutUint16(res[2*i:], uint16(x/2))
	}
	return res
}

func (s *Subset) buildHmtx() []byte {
	res := make([]byte, 4*len(s.Glyphs))
	for i, g := range s.Glyphs {
		binary.BigEndian.PutUint16(res[4*i:], g.AdvanceWidth)
		binary.BigEndian.PutUint16(res[4*i+2:], uint16(g.LSB))
	}
	return res
}

// assemble writes the table directory followed by the tables, and sets the
// checksum adjustment in the "head" table.
func assemble(tables map[string][]byte) []byte {
	var raws []*table.Raw
	size := 0
	for _, name := range tableOrder {
		data, ok := tables[name]
		if !ok {
			continue
		}
		raw := table.NewRaw(table.MakeTag(name), data)
		raws = append(raws, raw)
		size += len(raw.Data)
	}
	numTables := len(raws)
	searchRange, entrySelector, rangeShift := table.SearchParams(numTables, 16)

	dirSize := 12 + 16*numTables
	c := cursor.New(make([]byte, 0, dirSize+size))
	c.WriteUint32(sfntVersionTrueType)
	c.WriteUint16(uint16(numTables))
	c.WriteUint16(searchRange)
	c.WriteUint16(entrySelector)
	c.WriteUint16(rangeShift)

	offset := uint32(dirSize)
	for _, raw := range raws {
		rec := raw.Record(offset)
		c.Write(rec.Tag[:])
		c.WriteUint32(rec.Checksum)
		c.WriteUint32(rec.Offset)
		c.WriteUint32(rec.Length)
		offset += uint32(len(raw.Data))
	}

	total := table.Checksum(c.Bytes())
	var headPos int64 = -1
	for _, raw := range raws {
		total += raw.Checksum
		if raw.Tag == table.MakeTag("head") {
			headPos = c.Pos()
		}
		c.Write(raw.Data)
	}

	if headPos >= 0 {
		c.SeekTo(headPos + 8)
		c.WriteUint32(table.Sub32(checksumMagic, total))
	}
	return c.Bytes()
}
