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

	"github.com/bits-and-blooms/bitset"

	"seehuhn.de/go/pdfgen/font/encoding"
	"seehuhn.de/go/pdfgen/font/tounicode"
)

// Subset is the closure of glyphs needed to show all characters of a
// single-byte encoding.
type Subset struct {
	font *Font

	// Encoding is the encoding the subset was made for.
	Encoding *encoding.Encoding

	// Glyphs lists the glyphs of the subset in the order of their new
	// glyph index.  Glyphs[0] is always the .notdef glyph.
	Glyphs []*Glyph

	// Chars maps the code points of the encoding to glyph indices of the
	// original font.  Only characters present in the font are listed.
	Chars map[rune]int

	// Widths gives the advance width of every character code, in PDF glyph
	// space units.  Codes without a glyph use the width of .notdef.
	Widths [256]int

	// ToUnicode lists the character codes with a glyph, merged into runs.
	ToUnicode []tounicode.Run

	seen *bitset.BitSet // original glyph indices in the subset
	ssid []int          // subset glyph index, by original glyph index
}

// Subset computes the glyph closure for the characters of enc.
// Glyphs are numbered in the order in which they are first encountered,
// starting with .notdef, then the glyphs for character codes 0 to 255, each
// one followed by the glyphs it is composed of.
func (f *Font) Subset(enc *encoding.Encoding) (*Subset, error) {
	s := &Subset{
		font:     f,
		Encoding: enc,
		Chars:    make(map[rune]int),
		seen:     bitset.New(uint(f.numGlyphs)),
		ssid:     make([]int, f.numGlyphs),
	}

	notdef, err := s.add(0)
	if err != nil {
		return nil, err
	}
	missingWidth := f.scale(int(notdef.AdvanceWidth))

	for code := range 256 {
		s.Widths[code] = missingWidth
		r, ok := enc.Decode(byte(code))
		if !ok {
			continue
		}
		gid, err := f.GlyphIndex(r)
		if err != nil {
			return nil, err
		}
		if gid == 0 {
			continue
		}
		g, err := s.add(gid)
		if err != nil {
			return nil, err
		}
		s.Chars[r] = gid
		s.Widths[code] = f.scale(int(g.AdvanceWidth))
	}
	s.ToUnicode = ToUnicodeRuns(enc, s.Chars)

	logger.Debugf("subset of %s for %s: %d of %d glyphs",
		f.metrics.FontName, enc.Name, len(s.Glyphs), f.numGlyphs)
	return s, nil
}

// add includes a glyph and, for composite glyphs, all glyphs it refers to.
func (s *Subset) add(gid int) (*Glyph, error) {
	if s.Contains(gid) {
		return s.Glyphs[s.ssid[gid]], nil
	}
	g, err := s.font.loadGlyph(gid)
	if err != nil {
		return nil, err
	}
	g.SSID = len(s.Glyphs)
	s.Glyphs = append(s.Glyphs, g)
	s.ssid[gid] = g.SSID
	s.seen.Set(uint(gid))

	for _, comp := range g.Components {
		_, err := s.add(comp.GID)
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Contains reports whether the original glyph gid is part of the subset.
func (s *Subset) Contains(gid int) bool {
	return gid >= 0 && s.seen.Test(uint(gid))
}

// NewGID returns the glyph index in the subset font for the glyph gid of the
// original font.
func (s *Subset) NewGID(gid int) (int, bool) {
	if !s.Contains(gid) {
		return 0, false
	}
	return s.ssid[gid], true
}

// Metrics returns the metrics of the original font, with the per-character
// information filled in for the subset.
func (s *Subset) Metrics() *Metrics {
	m := s.font.Metrics()
	m.MissingWidth = s.font.scale(int(s.Glyphs[0].AdvanceWidth))
	m.CharWidths = s.Widths
	m.CodeToGlyph = make(map[rune]int, len(s.Chars))
	for r, gid := range s.Chars {
		m.CodeToGlyph[r] = gid
	}
	m.Tag = s.Tag()
	return m
}

// ToUnicodeRuns returns the ToUnicode runs for all character codes of enc
// whose code point is a key of chars.
func ToUnicodeRuns(enc *encoding.Encoding, chars map[rune]int) []tounicode.Run {
	var mappings []tounicode.Mapping
	for code := range 256 {
		r, ok := enc.Decode(byte(code))
		if !ok {
			continue
		}
		if _, found := chars[r]; found {
			mappings = append(mappings, tounicode.Mapping{Code: byte(code), Unicode: r})
		}
	}
	return tounicode.MakeRuns(mappings)
}

const subsetModulus = 26 * 26 * 26 * 26 * 26 * 26

// Tag returns a six letter tag which identifies the glyph set of the subset.
// The tag is used as the prefix of the font name in the PDF file.
func (s *Subset) Tag() string {
	gg := make([]int, len(s.Glyphs))
	for i, g := range s.Glyphs {
		gg[i] = g.GID
	}
	slices.Sort(gg)

	// mix all the information into a single uint32
	X := uint32(s.font.numGlyphs)
	for _, g := range gg {
		// 11 is the largest integer smaller than 1<<32 / subsetModulus which
		// is relatively prime to 26.
		X = (X*11 + uint32(g)) % subsetModulus
	}

	var buf [6]byte
	for i := range buf {
		buf[i] = 'A' + byte(X%26)
		X /= 26
	}
	return string(buf[:])
}
