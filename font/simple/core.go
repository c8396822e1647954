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

package simple

import (
	"fmt"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/encoding"
)

// Core identifies one of the 14 standard PDF fonts.
type Core string

// Constants for the 14 standard PDF fonts.
const (
	Courier              Core = "Courier"
	CourierBold          Core = "Courier-Bold"
	CourierBoldOblique   Core = "Courier-BoldOblique"
	CourierOblique       Core = "Courier-Oblique"
	Helvetica            Core = "Helvetica"
	HelveticaBold        Core = "Helvetica-Bold"
	HelveticaBoldOblique Core = "Helvetica-BoldOblique"
	HelveticaOblique     Core = "Helvetica-Oblique"
	TimesRoman           Core = "Times-Roman"
	TimesBold            Core = "Times-Bold"
	TimesBoldItalic      Core = "Times-BoldItalic"
	TimesItalic          Core = "Times-Italic"
	Symbol               Core = "Symbol"
	ZapfDingbats         Core = "ZapfDingbats"
)

var coreFonts = map[Core]bool{
	Courier: true, CourierBold: true, CourierBoldOblique: true, CourierOblique: true,
	Helvetica: true, HelveticaBold: true, HelveticaBoldOblique: true, HelveticaOblique: true,
	TimesRoman: true, TimesBold: true, TimesBoldItalic: true, TimesItalic: true,
	Symbol: true, ZapfDingbats: true,
}

// CoreFont is a non-embedded standard font.
type CoreFont struct {
	name Core
	enc  *encoding.Encoding
	node *pdf.Node
}

// New returns the font dictionary for a standard font.  The text fonts use
// WinAnsiEncoding, Symbol and ZapfDingbats use their built-in encodings.
func (f Core) New() (*CoreFont, error) {
	if !coreFonts[f] {
		return nil, fmt.Errorf("simple: %q is not a standard font", string(f))
	}
	enc, err := encoding.Lookup("cp1252")
	if err != nil {
		return nil, err
	}

	node := pdf.NewNode("Font")
	node.SetName("Subtype", "Type1")
	node.SetName("BaseFont", string(f))
	if f != Symbol && f != ZapfDingbats {
		node.SetName("Encoding", enc.PDFName)
	}

	return &CoreFont{
		name: f,
		enc:  enc,
		node: node,
	}, nil
}

// Node implements the [Font] interface.
func (f *CoreFont) Node() *pdf.Node {
	return f.node
}

// Encoding implements the [Font] interface.
func (f *CoreFont) Encoding() *encoding.Encoding {
	return f.enc
}

// Encode implements the [Font] interface.
func (f *CoreFont) Encode(s string) pdf.String {
	if f.name == Symbol || f.name == ZapfDingbats {
		return pdf.String(s)
	}
	return pdf.String(f.enc.Encode(s))
}
