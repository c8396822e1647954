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
	"errors"
	"slices"

	"github.com/tdewolff/parse/v2"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/pdfgen/font/sfnt/cursor"
)

var errNoMetrics = errors.New("no horizontal metrics")

// decodeGlyphNames reads the glyph names from the body of a version 2.0
// "post" table.  Data starts after the 32 byte header.
func decodeGlyphNames(data []byte, numGlyphs int) ([]string, error) {
	c := cursor.New(data)
	n, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if int(n) != numGlyphs {
		return nil, errors.New("glyph count mismatch")
	}
	index := make([]uint16, n)
	for i := range index {
		index[i], err = c.ReadUint16()
		if err != nil {
			return nil, err
		}
	}

	var custom []string
	for c.Pos() < int64(c.Len()) {
		l, err := c.Read(1)
		if err != nil {
			return nil, err
		}
		s, err := c.Read(int(l[0]))
		if err != nil {
			return nil, err
		}
		custom = append(custom, string(s))
	}

	res := make([]string, n)
	for i, idx := range index {
		switch {
		case idx < 258:
			res[i] = macRomanNames[idx]
		case int(idx)-258 < len(custom):
			res[i] = custom[idx-258]
		default:
			return nil, errors.New("glyph name index out of range")
		}
	}
	return res, nil
}

// buildPost generates the "post" table for the subset.  If the original font
// has glyph names, a version 2.0 table is written, otherwise only the 32 byte
// header of a version 3.0 table.
func (s *Subset) buildPost() ([]byte, error) {
	orig, err := s.font.rawTable("post")
	if err != nil {
		return nil, err
	}

	w := parse.NewBinaryWriter(make([]byte, 0, 64))
	if s.font.glyphNames == nil {
		w.WriteUint32(0x00030000)
		w.WriteBytes(orig[4:16])
		w.WriteBytes(make([]byte, 16))
		return w.Bytes(), nil
	}

	w.WriteUint32(0x00020000)
	w.WriteBytes(orig[4:32])
	w.WriteUint16(uint16(len(s.Glyphs)))

	var custom []string
	customIndex := make(map[string]int)
	for _, g := range s.Glyphs {
		name := g.Name
		if name == "" {
			name = s.fallbackName(g)
		}
		if idx, ok := macRomanIndex[name]; ok {
			w.WriteUint16(uint16(idx))
			continue
		}
		idx, ok := customIndex[name]
		if !ok {
			idx = len(custom)
			customIndex[name] = idx
			custom = append(custom, name)
		}
		w.WriteUint16(uint16(258 + idx))
	}
	for _, name := range custom {
		if len(name) > 255 {
			name = name[:255]
		}
		w.WriteUint8(uint8(len(name)))
		w.WriteBytes([]byte(name))
	}
	return w.Bytes(), nil
}

// fallbackName invents a glyph name for glyphs without an entry in the
// original "post" table.
func (s *Subset) fallbackName(g *Glyph) string {
	if g.GID == 0 {
		return ".notdef"
	}
	keys := maps.Keys(s.Chars)
	slices.Sort(keys)
	for _, r := range keys {
		if s.Chars[r] == g.GID {
			return names.FromUnicode(string(r))
		}
	}
	return ".notdef"
}

var macRomanIndex = func() map[string]int {
	res := make(map[string]int, len(macRomanNames))
	for i, name := range macRomanNames {
		res[name] = i
	}
	return res
}()

var macRomanNames = [258]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam",
	"quotedbl", "numbersign", "dollar", "percent", "ampersand",
	"quotesingle", "parenleft", "parenright", "asterisk", "plus",
	"comma", "hyphen", "period", "slash", "zero",
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "colon",
	"semicolon", "less", "equal", "greater", "question",
	"at", "A", "B", "C", "D",
	"E", "F", "G", "H", "I",
	"J", "K", "L", "M", "N",
	"O", "P", "Q", "R", "S",
	"T", "U", "V", "W", "X",
	"Y", "Z", "bracketleft", "backslash", "bracketright",
	"asciicircum", "underscore", "grave", "a", "b",
	"c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l",
	"m", "n", "o", "p", "q",
	"r", "s", "t", "u", "v",
	"w", "x", "y", "z", "braceleft",
	"bar", "braceright", "asciitilde", "Adieresis", "Aring",
	"Ccedilla", "Eacute", "Ntilde", "Odieresis", "Udieresis",
	"aacute", "agrave", "acircumflex", "adieresis", "atilde",
	"aring", "ccedilla", "eacute", "egrave", "ecircumflex",
	"edieresis", "iacute", "igrave", "icircumflex", "idieresis",
	"ntilde", "oacute", "ograve", "ocircumflex", "odieresis",
	"otilde", "uacute", "ugrave", "ucircumflex", "udieresis",
	"dagger", "degree", "cent", "sterling", "section",
	"bullet", "paragraph", "germandbls", "registered", "copyright",
	"trademark", "acute", "dieresis", "notequal", "AE",
	"Oslash", "infinity", "plusminus", "lessequal", "greaterequal",
	"yen", "mu", "partialdiff", "summation", "product",
	"pi", "integral", "ordfeminine", "ordmasculine", "Omega",
	"ae", "oslash", "questiondown", "exclamdown", "logicalnot",
	"radical", "florin", "approxequal", "Delta", "guillemotleft",
	"guillemotright", "ellipsis", "nonbreakingspace", "Agrave", "Atilde",
	"Otilde", "OE", "oe", "endash", "emdash",
	"quotedblleft", "quotedblright", "quoteleft", "quoteright", "divide",
	"lozenge", "ydieresis", "Ydieresis", "fraction", "currency",
	"guilsinglleft", "guilsinglright", "fi", "fl", "daggerdbl",
	"periodcentered", "quotesinglbase", "quotedblbase", "perthousand", "Acircumflex",
	"Ecircumflex", "Aacute", "Edieresis", "Egrave", "Iacute",
	"Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex",
	"apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave",
	"dotlessi", "circumflex", "tilde", "macron", "breve",
	"dotaccent", "ring", "cedilla", "hungarumlaut", "ogonek",
	"caron", "Lslash", "lslash", "Scaron", "scaron",
	"Zcaron", "zcaron", "brokenbar", "Eth", "eth",
	"Yacute", "yacute", "Thorn", "thorn", "minus",
	"multiply", "onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve",
	"Idotaccent", "Scedilla", "scedilla", "Cacute", "cacute",
	"Ccaron", "ccaron", "dcroat",
}
