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

// Package encoding provides the single-byte legacy encodings which can be
// used with simple PDF fonts.
//
// The byte to code point tables come from [golang.org/x/text/encoding/charmap].
// Positions which decode to a C1 control character or to U+FFFD are treated
// as undefined; for cp1252 these are the bytes 0x81, 0x8D, 0x8F, 0x90 and
// 0x9D.
package encoding

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
)

// Encoding maps single-byte character codes to Unicode code points.
type Encoding struct {
	// Name is the canonical name of the encoding, e.g. "cp1252".
	Name string

	// PDFName is the name of the equivalent predefined PDF encoding,
	// or the empty string if there is none.
	PDFName string

	toRune [256]rune
	toByte map[rune]byte
}

type entry struct {
	cm      *charmap.Charmap
	pdfName string
}

var tables = map[string]entry{
	"cp1250":      {charmap.Windows1250, ""},
	"cp1251":      {charmap.Windows1251, ""},
	"cp1252":      {charmap.Windows1252, "WinAnsiEncoding"},
	"cp1253":      {charmap.Windows1253, ""},
	"cp1254":      {charmap.Windows1254, ""},
	"cp1257":      {charmap.Windows1257, ""},
	"iso-8859-1":  {charmap.ISO8859_1, ""},
	"iso-8859-2":  {charmap.ISO8859_2, ""},
	"iso-8859-15": {charmap.ISO8859_15, ""},
	"koi8-r":      {charmap.KOI8R, ""},
	"koi8-u":      {charmap.KOI8U, ""},
	"macroman":    {charmap.Macintosh, "MacRomanEncoding"},
}

var aliases = map[string]string{
	"windows-1250": "cp1250",
	"windows-1251": "cp1251",
	"windows-1252": "cp1252",
	"windows-1253": "cp1253",
	"windows-1254": "cp1254",
	"windows-1257": "cp1257",
	"latin1":       "iso-8859-1",
	"latin2":       "iso-8859-2",
	"latin9":       "iso-8859-15",
	"macintosh":    "macroman",
}

// Names returns the canonical names of all supported encodings, in
// alphabetical order.
func Names() []string {
	keys := maps.Keys(tables)
	slices.Sort(keys)
	return keys
}

// Lookup returns the encoding with the given name.  Names are matched
// case-insensitively.  If no table exists for the name, an
// [*fonterror.UnknownEncodingError] is returned.
func Lookup(name string) (*Encoding, error) {
	key := strings.ToLower(name)
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	e, ok := tables[key]
	if !ok {
		return nil, &fonterror.UnknownEncodingError{Name: name}
	}

	res := &Encoding{
		Name:    key,
		PDFName: e.pdfName,
		toByte:  make(map[rune]byte),
	}
	for i := range 256 {
		r := e.cm.DecodeByte(byte(i))
		if isUndefined(r) {
			r = noRune
		} else if _, seen := res.toByte[r]; !seen {
			res.toByte[r] = byte(i)
		}
		res.toRune[i] = r
	}
	return res, nil
}

const noRune = -1

func isUndefined(r rune) bool {
	return r == '\uFFFD' || r >= 0x80 && r <= 0x9F
}

// Decode returns the code point for character code b.
// The second return value is false for undefined byte positions.
func (e *Encoding) Decode(b byte) (rune, bool) {
	r := e.toRune[b]
	if r == noRune {
		return 0, false
	}
	return r, true
}

// Defined reports whether character code b is assigned.
func (e *Encoding) Defined(b byte) bool {
	return e.toRune[b] != noRune
}

// EncodeRune returns the character code for r.
func (e *Encoding) EncodeRune(r rune) (byte, bool) {
	b, ok := e.toByte[r]
	return b, ok
}

// Encode converts a string to character codes.
// Characters which cannot be represented are replaced by '?'.
func (e *Encoding) Encode(s string) []byte {
	res := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := e.toByte[r]
		if !ok {
			b = '?'
		}
		res = append(res, b)
	}
	return res
}
