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
	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
)

// Flags used in composite glyph component records.
const (
	argsAreWords    = 0x0001
	weHaveAScale    = 0x0008
	moreComponents  = 0x0020
	xAndYScale      = 0x0040
	weHaveTwoByTwo  = 0x0080
	compositeHeader = 10 // numberOfContours and bounding box
)

// Glyph is a glyph of the original font which is part of a subset.
type Glyph struct {
	GID          int    // glyph index in the original font
	SSID         int    // glyph index in the subset font
	AdvanceWidth uint16 // in font design units
	LSB          int16
	Name         string

	// Offset and Length locate the outline data in the original "glyf"
	// table.
	Offset uint32
	Length uint32

	Components []Component
}

// Component is a reference from a composite glyph to another glyph.
type Component struct {
	Offset int // byte offset of the glyph index within the glyph data
	GID    int
}

// IsComposite reports whether the glyph is built from other glyphs.
func (g *Glyph) IsComposite() bool {
	return len(g.Components) > 0
}

// loadGlyph reads the metrics, location and component list of a glyph.
func (f *Font) loadGlyph(gid int) (*Glyph, error) {
	if gid < 0 || gid >= f.numGlyphs {
		return nil, &fonterror.GlyphNotFoundError{GID: gid, NumGlyphs: f.numGlyphs}
	}
	g := &Glyph{GID: gid}
	if gid < len(f.glyphNames) {
		g.Name = f.glyphNames[gid]
	}

	err := f.readHMetrics(g)
	if err != nil {
		return nil, f.tableError("hmtx", err)
	}
	err = f.readLocation(g)
	if err != nil {
		return nil, f.tableError("loca", err)
	}
	err = f.readComponents(g)
	if err != nil {
		return nil, f.tableError("glyf", err)
	}
	return g, nil
}

func (f *Font) readHMetrics(g *Glyph) error {
	c := f.c
	if g.GID < f.numHMetrics {
		err := f.seekTable("hmtx", int64(4*g.GID))
		if err != nil {
			return err
		}
		g.AdvanceWidth, err = c.ReadUint16()
		if err != nil {
			return err
		}
		g.LSB, err = c.ReadInt16()
		return err
	}

	// glyphs after the last long metric share its advance width
	err := f.seekTable("hmtx", int64(4*(f.numHMetrics-1)))
	if err != nil {
		return err
	}
	g.AdvanceWidth, err = c.ReadUint16()
	if err != nil {
		return err
	}
	err = f.seekTable("hmtx", int64(4*f.numHMetrics+2*(g.GID-f.numHMetrics)))
	if err != nil {
		return err
	}
	g.LSB, err = c.ReadInt16()
	return err
}

func (f *Font) readLocation(g *Glyph) error {
	c := f.c
	var start, end uint32
	if f.longLoca {
		err := f.seekTable("loca", int64(4*g.GID))
		if err != nil {
			return err
		}
		if start, err = c.ReadUint32(); err != nil {
			return err
		}
		if end, err = c.ReadUint32(); err != nil {
			return err
		}
	} else {
		err := f.seekTable("loca", int64(2*g.GID))
		if err != nil {
			return err
		}
		a, err := c.ReadUint16()
		if err != nil {
			return err
		}
		b, err := c.ReadUint16()
		if err != nil {
			return err
		}
		start, end = 2*uint32(a), 2*uint32(b)
	}
	if end < start || end > f.tables["glyf"].Length {
		return &fonterror.GlyphNotFoundError{GID: g.GID, NumGlyphs: f.numGlyphs}
	}
	g.Offset = start
	g.Length = end - start
	return nil
}

// readComponents collects the glyph references of a composite glyph.
func (f *Font) readComponents(g *Glyph) error {
	if g.Length < compositeHeader {
		return nil
	}
	c := f.c
	err := f.seekTable("glyf", int64(g.Offset))
	if err != nil {
		return err
	}
	numberOfContours, err := c.ReadInt16()
	if err != nil {
		return err
	}
	if numberOfContours >= 0 {
		return nil
	}

	pos := compositeHeader
	for {
		if pos+4 > int(g.Length) {
			return &fonterror.TruncatedStreamError{
				Pos:  int64(g.Offset) + int64(pos),
				Want: 4,
				Have: int(g.Length) - pos,
			}
		}
		err = f.seekTable("glyf", int64(g.Offset)+int64(pos))
		if err != nil {
			return err
		}
		flags, err := c.ReadUint16()
		if err != nil {
			return err
		}
		gid, err := c.ReadUint16()
		if err != nil {
			return err
		}
		g.Components = append(g.Components, Component{Offset: pos + 2, GID: int(gid)})

		pos += 4
		if flags&argsAreWords != 0 {
			pos += 4
		} else {
			pos += 2
		}
		switch {
		case flags&weHaveTwoByTwo != 0:
			pos += 8
		case flags&xAndYScale != 0:
			pos += 4
		case flags&weHaveAScale != 0:
			pos += 2
		}
		if flags&moreComponents == 0 {
			break
		}
	}
	return nil
}
