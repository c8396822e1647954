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

// Package truetype reads TrueType font files, reduces them to the glyphs
// needed for a single-byte encoding and writes the resulting subset font.
//
// Only fonts with "glyf" outlines and a Windows Unicode BMP "cmap" subtable
// in format 4 are supported.
package truetype

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdfgen/font/sfnt/cursor"
	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
	"seehuhn.de/go/pdfgen/font/sfnt/table"
)

var logger = logrus.WithField("pkg", "truetype")

const sfntVersionTrueType = 0x00010000

// Font is a parsed TrueType font file.
// The glyph data are read on demand from the in-memory copy of the file.
type Font struct {
	c      *cursor.Cursor
	tables map[string]table.Record

	numGlyphs   int
	numHMetrics int
	unitsPerEm  int
	bbox        [4]int16
	longLoca    bool

	cmap       *cmapFormat4
	glyphNames []string

	metrics *Metrics
}

// Open reads and parses the font file at path.
func Open(path string) (*Font, error) {
	c, err := cursor.Open(path)
	if err != nil {
		return nil, err
	}
	f, err := parseFont(c)
	if err != nil {
		return nil, fmt.Errorf("truetype: %s: %w", path, err)
	}
	return f, nil
}

// Parse parses a TrueType font from memory.
// The font keeps a reference to data.
func Parse(data []byte) (*Font, error) {
	f, err := parseFont(cursor.New(data))
	if err != nil {
		return nil, fmt.Errorf("truetype: %w", err)
	}
	return f, nil
}

func parseFont(c *cursor.Cursor) (*Font, error) {
	f := &Font{
		c:      c,
		tables: make(map[string]table.Record),
	}

	err := f.readDirectory()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"head", "hhea", "maxp", "cmap", "name", "hmtx", "loca", "glyf"} {
		if _, ok := f.tables[name]; !ok {
			return nil, fmt.Errorf("missing %q table", name)
		}
	}

	m := &Metrics{}
	f.metrics = m
	steps := []struct {
		name  string
		parse func(*Metrics) error
	}{
		{"head", f.parseHead},
		{"hhea", f.parseHhea},
		{"maxp", f.parseMaxp},
		{"cmap", f.parseCmap},
		{"name", f.parseName},
		{"OS/2", f.parseOS2},
		{"post", f.parsePost},
	}
	for _, step := range steps {
		err := step.parse(m)
		if err != nil {
			return nil, f.tableError(step.name, err)
		}
	}
	m.StemV = stemV(m.weightClass)

	logger.Debugf("parsed %s: %d glyphs, %d units per em",
		m.FontName, f.numGlyphs, f.unitsPerEm)
	return f, nil
}

func (f *Font) readDirectory() error {
	c := f.c
	version, err := c.ReadUint32()
	if err != nil {
		return err
	}
	if version != sfntVersionTrueType {
		return &fonterror.UnrecognizedFormatError{Version: version}
	}
	numTables, err := c.ReadUint16()
	if err != nil {
		return err
	}
	err = c.Skip(6) // searchRange, entrySelector, rangeShift
	if err != nil {
		return err
	}

	for range int(numTables) {
		buf, err := c.Read(16)
		if err != nil {
			return err
		}
		rec := table.Record{
			Tag:      table.Tag{buf[0], buf[1], buf[2], buf[3]},
			Checksum: be32(buf[4:8]),
			Offset:   be32(buf[8:12]),
			Length:   be32(buf[12:16]),
		}
		if int64(rec.Offset)+int64(rec.Length) > int64(c.Len()) {
			return fmt.Errorf("table %q extends beyond end of file", rec.Tag)
		}
		name := rec.Tag.String()
		f.tables[name] = rec
		c.SetMarkAt(name, int64(rec.Offset))
	}
	return nil
}

// HasTable reports whether the font contains a table with the given name.
func (f *Font) HasTable(name string) bool {
	_, ok := f.tables[name]
	return ok
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.numGlyphs
}

// UnitsPerEm returns the size of the em square in font design units.
func (f *Font) UnitsPerEm() int {
	return f.unitsPerEm
}

// Metrics returns the font-wide metrics.  The per-character fields are
// only filled in for the metrics returned by [Subset].
func (f *Font) Metrics() *Metrics {
	m := *f.metrics
	m.CodeToGlyph = nil
	return &m
}

// rawTable returns a copy of the bytes of the named table.
func (f *Font) rawTable(name string) ([]byte, error) {
	rec, ok := f.tables[name]
	if !ok {
		return nil, fmt.Errorf("missing %q table", name)
	}
	err := f.c.SeekMark(name)
	if err != nil {
		return nil, err
	}
	buf, err := f.c.Read(int(rec.Length))
	if err != nil {
		return nil, f.tableError(name, err)
	}
	return append([]byte(nil), buf...), nil
}

// seekTable positions the cursor at the given offset inside the named table.
func (f *Font) seekTable(name string, offset int64) error {
	pos, err := f.c.Mark(name)
	if err != nil {
		return err
	}
	return f.c.SeekTo(pos + offset)
}

func (f *Font) tableError(name string, err error) error {
	return &fonterror.TableError{
		Table: name,
		Pos:   f.c.Pos(),
		Err:   err,
	}
}

func be16(buf []byte) uint16 {
	return uint16(buf[0])<<8 | uint16(buf[1])
}

func be32(buf []byte) uint32 {
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
}
