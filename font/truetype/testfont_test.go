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
	"unicode/utf16"

	"seehuhn.de/go/pdfgen/font/sfnt/cursor"
)

// testFontOptions controls the construction of the synthetic test font.
type testFontOptions struct {
	postNames bool
	noPSName  bool
	noCmap31  bool
}

// Glyphs of the synthetic test font.
const (
	testGIDNotdef = iota
	testGIDA
	testGIDAcute
	testGIDAacute
)

// makeTestFont builds a small TrueType font with 1000 units per em and no
// "OS/2" table.  Glyph 3 is a composite of glyphs 1 and 2.  The cmap maps
// "A" and "Á", but not the accent.
func makeTestFont(opt *testFontOptions) []byte {
	if opt == nil {
		opt = &testFontOptions{}
	}
	tables := make(map[string][]byte)

	if opt.noCmap31 {
		c := cursor.New(nil)
		c.WriteUint16(0) // version
		c.WriteUint16(1) // numTables
		c.WriteUint16(1) // platformID
		c.WriteUint16(0) // encodingID
		c.WriteUint32(12)
		c.WriteUint16(0)
		c.WriteUint16(262)
		c.WriteUint16(0)
		c.Write(make([]byte, 256))
		tables["cmap"] = c.Bytes()
	} else {
		tables["cmap"] = BuildCMap(map[rune]int{
			'A': testGIDA,
			'Á': testGIDAacute,
		})
	}

	simple := func(xMax int16) []byte {
		c := cursor.New(nil)
		c.WriteInt16(1) // numberOfContours
		c.WriteInt16(0)
		c.WriteInt16(0)
		c.WriteInt16(xMax)
		c.WriteInt16(700)
		c.WriteUint16(0) // endPtsOfContours[0]
		c.WriteUint16(0) // instructionLength
		c.Write([]byte{0x37, 0, 0, 0})
		return c.Bytes()
	}
	composite := func() []byte {
		c := cursor.New(nil)
		c.WriteInt16(-1)
		c.WriteInt16(0)
		c.WriteInt16(0)
		c.WriteInt16(600)
		c.WriteInt16(900)
		c.WriteUint16(moreComponents | weHaveAScale | 0x0002)
		c.WriteUint16(testGIDA)
		c.Write([]byte{0, 0})
		c.WriteUint16(0x4000) // scale 1.0
		c.WriteUint16(argsAreWords | 0x0002)
		c.WriteUint16(testGIDAcute)
		c.WriteInt16(100)
		c.WriteInt16(700)
		return c.Bytes()
	}
	glyphs := [][]byte{nil, simple(600), simple(300), composite()}

	var glyf []byte
	loca := cursor.New(nil)
	for _, g := range glyphs {
		loca.WriteUint16(uint16(len(glyf) / 2))
		glyf = append(glyf, g...)
	}
	loca.WriteUint16(uint16(len(glyf) / 2))
	tables["glyf"] = glyf
	tables["loca"] = loca.Bytes()

	hmtx := cursor.New(nil)
	for _, m := range [][2]int16{{500, 0}, {600, 10}, {300, 20}, {600, 10}} {
		hmtx.WriteInt16(m[0])
		hmtx.WriteInt16(m[1])
	}
	tables["hmtx"] = hmtx.Bytes()

	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head[0:], 0x00010000)
	binary.BigEndian.PutUint32(head[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(head[18:], 1000)
	binary.BigEndian.PutUint16(head[36:], 0)
	binary.BigEndian.PutUint16(head[38:], uint16(0xFFFF-199)) // -200
	binary.BigEndian.PutUint16(head[40:], 800)
	binary.BigEndian.PutUint16(head[42:], 900)
	binary.BigEndian.PutUint16(head[48:], 2)
	tables["head"] = head

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint32(hhea[0:], 0x00010000)
	binary.BigEndian.PutUint16(hhea[34:], uint16(len(glyphs)))
	tables["hhea"] = hhea

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint32(maxp[0:], 0x00005000)
	binary.BigEndian.PutUint16(maxp[4:], uint16(len(glyphs)))
	tables["maxp"] = maxp

	names := []struct {
		id  uint16
		val string
	}{
		{1, "Test"},
		{2, "Regular"},
		{6, "Test-Regular"},
	}
	if opt.noPSName {
		names = names[:2]
	}
	name := cursor.New(nil)
	name.WriteUint16(0)
	name.WriteUint16(uint16(len(names)))
	name.WriteUint16(uint16(6 + 12*len(names)))
	var stringData []byte
	for _, n := range names {
		var enc []byte
		for _, x := range utf16.Encode([]rune(n.val)) {
			enc = append(enc, byte(x>>8), byte(x))
		}
		name.WriteUint16(3)
		name.WriteUint16(1)
		name.WriteUint16(0x0409)
		name.WriteUint16(n.id)
		name.WriteUint16(uint16(len(enc)))
		name.WriteUint16(uint16(len(stringData)))
		stringData = append(stringData, enc...)
	}
	name.Write(stringData)
	tables["name"] = name.Bytes()

	post := cursor.New(nil)
	if opt.postNames {
		post.WriteUint32(0x00020000)
	} else {
		post.WriteUint32(0x00030000)
	}
	post.WriteUint32(0)   // italicAngle
	post.WriteInt16(-100) // underlinePosition
	post.WriteInt16(50)   // underlineThickness
	post.WriteUint32(0)   // isFixedPitch
	post.Write(make([]byte, 16))
	if opt.postNames {
		post.WriteUint16(uint16(len(glyphs)))
		post.WriteUint16(0)   // .notdef
		post.WriteUint16(36)  // A
		post.WriteUint16(258) // acutecomb
		post.WriteUint16(201) // Aacute
		post.Write([]byte{9})
		post.Write([]byte("acutecomb"))
	}
	tables["post"] = post.Bytes()

	return assemble(tables)
}

// newCursorAt returns a cursor over data with the named mark at offset 0.
func newCursorAt(name string, data []byte) *cursor.Cursor {
	c := cursor.New(data)
	c.SetMarkAt(name, 0)
	return c
}
