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

// Package pdf implements the object model of PDF files and a serializer
// which writes a graph of objects as a complete PDF file.
//
// Indirect objects are represented by [*Node] values, which are numbered
// when they are added to a [Graph].  References to nodes which have not yet
// been numbered are resolved while the file is written:
//
//	g := pdf.NewGraph()
//	catalog := pdf.NewNode("Catalog")
//	pages := pdf.NewNode("Pages")
//	catalog.SetRef("Pages", pages)
//	pages.SetArray("Kids", nil, false)
//	pages.SetInt("Count", 0)
//	g.SetRoot(catalog)
//	err := pdf.WriteFile("out.pdf", g, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
package pdf
