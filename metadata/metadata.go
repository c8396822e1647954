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

// Package metadata implements XMP metadata streams.
package metadata

import (
	"bytes"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	pdf "seehuhn.de/go/pdfgen"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream.
type Stream struct {
	Data *xmp.Packet
}

// New returns a metadata stream with Dublin Core title, creators and
// description.  Empty values are omitted.
func New(title string, creators []string, description string) (*Stream, error) {
	dc := &xmp.DublinCore{}
	if title != "" {
		dc.Title.Set(language.Und, title)
	}
	for _, name := range creators {
		dc.Creator.Append(xmp.NewProperName(name))
	}
	if description != "" {
		dc.Description.Set(language.Und, description)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc)
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Read decodes the body of a metadata stream.
func Read(body []byte) (*Stream, error) {
	packet, err := xmp.Read(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Node returns the metadata stream object.  XMP streams are normally left
// uncompressed, so that the metadata can be found by tools which do not
// parse PDF.
func (s *Stream) Node(compress bool) (*pdf.Node, error) {
	buf := &bytes.Buffer{}
	err := s.Data.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}

	n := pdf.NewNode("Metadata")
	n.SetName("Subtype", "XML")
	if compress {
		err = n.SetCompressedStream(buf.Bytes())
		if err != nil {
			return nil, err
		}
	} else {
		n.SetStream(buf.Bytes())
	}
	return n, nil
}
