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
	"math"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
)

// PDF font descriptor flags.
const (
	FlagFixedPitch  = 1 << 0
	FlagSerif       = 1 << 1
	FlagSymbolic    = 1 << 2
	FlagScript      = 1 << 3
	FlagNonsymbolic = 1 << 5
	FlagItalic      = 1 << 6
	FlagForceBold   = 1 << 18
)

// Metrics describes a font in the form needed for a PDF font descriptor.
// All lengths are given in PDF glyph space units, i.e. scaled to 1000 units
// per em.
type Metrics struct {
	FontName   string // PostScript name
	FamilyName string
	StyleName  string
	UnitsPerEm int

	Ascent             int
	Descent            int
	CapHeight          int
	ItalicAngle        float64
	UnderlinePosition  int
	UnderlineThickness int
	IsFixedPitch       bool
	Bold               bool
	Embeddable         bool
	Flags              uint32
	FontBBox           [4]int
	StemV              int
	MissingWidth       int

	// CharWidths gives the glyph width for every character code of the
	// subset encoding.
	CharWidths [256]int

	// CodeToGlyph maps the Unicode code points present in the subset to
	// glyph indices of the original font.
	CodeToGlyph map[rune]int

	// Tag identifies the glyph set of the subset, see [Subset.Tag].
	Tag string

	weightClass int
}

// stemV estimates the dominant vertical stem width from the weight class.
func stemV(weightClass int) int {
	x := float64(weightClass) / 65
	return 50 + int(math.Round(x*x))
}

func (f *Font) scale(x int) int {
	return int(math.Round(float64(x) * 1000 / float64(f.unitsPerEm)))
}

func (f *Font) parseHead(m *Metrics) error {
	head, err := f.rawTable("head")
	if err != nil {
		return err
	}
	if len(head) < 54 {
		return &fonterror.TruncatedStreamError{Pos: int64(f.tables["head"].Offset), Want: 54, Have: len(head)}
	}
	magic := be32(head[12:16])
	if magic != 0x5F0F3CF5 {
		return &fonterror.InvalidMagicNumberError{Magic: magic}
	}
	f.unitsPerEm = int(be16(head[18:20]))
	if f.unitsPerEm == 0 {
		f.unitsPerEm = 1000
	}
	for i := range f.bbox {
		f.bbox[i] = int16(be16(head[36+2*i:]))
	}
	f.longLoca = be16(head[50:52]) != 0

	m.UnitsPerEm = f.unitsPerEm
	for i, x := range f.bbox {
		m.FontBBox[i] = f.scale(int(x))
	}
	return nil
}

func (f *Font) parseHhea(*Metrics) error {
	err := f.seekTable("hhea", 34)
	if err != nil {
		return err
	}
	n, err := f.c.ReadUint16()
	if err != nil {
		return err
	}
	if n == 0 {
		return errNoMetrics
	}
	f.numHMetrics = int(n)
	return nil
}

func (f *Font) parseMaxp(*Metrics) error {
	err := f.seekTable("maxp", 4)
	if err != nil {
		return err
	}
	n, err := f.c.ReadUint16()
	if err != nil {
		return err
	}
	f.numGlyphs = int(n)
	if f.numHMetrics > f.numGlyphs {
		f.numHMetrics = f.numGlyphs
	}
	return nil
}

var (
	utf16Decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	macDecoder   = charmap.Macintosh
)

func (f *Font) parseName(m *Metrics) error {
	c := f.c
	err := f.seekTable("name", 2)
	if err != nil {
		return err
	}
	count, err := c.ReadUint16()
	if err != nil {
		return err
	}
	stringOffset, err := c.ReadUint16()
	if err != nil {
		return err
	}

	found := map[uint16]string{}
	for i := range int(count) {
		err = f.seekTable("name", int64(6+12*i))
		if err != nil {
			return err
		}
		rec, err := c.Read(12)
		if err != nil {
			return err
		}
		platformID := be16(rec[0:2])
		nameID := be16(rec[6:8])
		length := be16(rec[8:10])
		offset := be16(rec[10:12])
		if nameID != 1 && nameID != 2 && nameID != 6 || found[nameID] != "" {
			continue
		}

		err = f.seekTable("name", int64(stringOffset)+int64(offset))
		if err != nil {
			return err
		}
		raw, err := c.Read(int(length))
		if err != nil {
			return err
		}

		var val []byte
		switch platformID {
		case 0, 3:
			val, err = utf16Decoder.NewDecoder().Bytes(raw)
		case 1:
			val, err = macDecoder.NewDecoder().Bytes(raw)
		default:
			continue
		}
		if err != nil || len(val) == 0 {
			continue
		}
		found[nameID] = string(val)

		if found[1] != "" && found[6] != "" {
			break
		}
	}

	psName := strings.Map(func(r rune) rune {
		if r <= ' ' || strings.ContainsRune("[](){}<>/%", r) {
			return -1
		}
		return r
	}, found[6])
	if psName == "" {
		return &fonterror.MissingFontNameError{}
	}
	m.FontName = psName
	m.FamilyName = found[1]
	m.StyleName = found[2]
	return nil
}

func (f *Font) parseOS2(m *Metrics) error {
	rec, ok := f.tables["OS/2"]
	if !ok || rec.Length < 78 {
		m.Ascent = m.FontBBox[3]
		m.Descent = m.FontBBox[1]
		m.CapHeight = m.Ascent
		m.Embeddable = true
		m.weightClass = 500
		m.Flags = FlagNonsymbolic
		return nil
	}

	os2, err := f.rawTable("OS/2")
	if err != nil {
		return err
	}
	version := be16(os2[0:2])
	m.weightClass = int(be16(os2[4:6]))
	fsType := be16(os2[8:10])
	fsSelection := be16(os2[62:64])
	m.Ascent = f.scale(int(int16(be16(os2[68:70]))))
	m.Descent = f.scale(int(int16(be16(os2[70:72]))))
	if version >= 2 && len(os2) >= 90 {
		m.CapHeight = f.scale(int(int16(be16(os2[88:90]))))
	} else {
		m.CapHeight = m.Ascent
	}

	m.Embeddable = fsType != 0x0002 && fsType&0x0300 == 0
	m.Bold = fsSelection&(1<<5) != 0
	m.Flags = FlagNonsymbolic
	if m.weightClass >= 600 {
		m.Flags |= FlagForceBold
	}
	return nil
}

func (f *Font) parsePost(m *Metrics) error {
	rec, ok := f.tables["post"]
	if !ok {
		return nil
	}
	post, err := f.rawTable("post")
	if err != nil {
		return err
	}
	if len(post) < 32 {
		return &fonterror.TruncatedStreamError{Pos: int64(rec.Offset), Want: 32, Have: len(post)}
	}

	version := be32(post[0:4])
	italic := int32(be32(post[4:8]))
	m.ItalicAngle = float64(italic) / 65536
	m.UnderlinePosition = f.scale(int(int16(be16(post[8:10]))))
	m.UnderlineThickness = f.scale(int(int16(be16(post[10:12]))))
	m.IsFixedPitch = be32(post[12:16]) != 0
	if m.ItalicAngle != 0 {
		m.Flags |= FlagItalic
	}
	if m.IsFixedPitch {
		m.Flags |= FlagFixedPitch
	}

	if version == 0x00020000 {
		names, err := decodeGlyphNames(post[32:], f.numGlyphs)
		if err != nil {
			// Glyph names are optional.  A broken list only loses the names.
			logger.Debugf("ignoring glyph names: %v", err)
			return nil
		}
		f.glyphNames = names
	}
	return nil
}
