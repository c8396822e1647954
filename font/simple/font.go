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

// Package simple implements simple PDF fonts, i.e. fonts which use
// single-byte character codes.
//
// Two kinds of fonts are supported: the 14 standard fonts, which are not
// embedded, and TrueType fonts, which are subset and embedded.
package simple

import (
	"github.com/sirupsen/logrus"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/encoding"
)

var logger = logrus.WithField("pkg", "simple")

// Font is a simple font which can be used on a page.
type Font interface {
	// Node returns the font dictionary.
	Node() *pdf.Node

	// Encoding returns the encoding used for the character codes.
	Encoding() *encoding.Encoding

	// Encode converts a string to character codes.
	Encode(s string) pdf.String
}
