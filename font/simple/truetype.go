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
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/postscript/type1/names"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/encoding"
	"seehuhn.de/go/pdfgen/font/tounicode"
	"seehuhn.de/go/pdfgen/font/truetype"
)

// TrueTypeOptions control how a TrueType font is embedded.
type TrueTypeOptions struct {
	// Encoding is the name of the single-byte encoding, see
	// [encoding.Lookup].  The default is "cp1252".
	Encoding string

	// CacheDir, if set, is a directory where subset fonts are cached
	// between runs.
	CacheDir string

	// Compress enables the FlateDecode filter for the embedded font program
	// and the ToUnicode CMap.
	Compress bool
}

// TrueType is an embedded TrueType font subset.
type TrueType struct {
	Metrics *truetype.Metrics

	enc      *encoding.Encoding
	fontData []byte
	node     *pdf.Node
}

// LoadTrueType reads a TrueType font file and prepares the subset for
// embedding.
func LoadTrueType(path string, opt *TrueTypeOptions) (*TrueType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewTrueType(data, opt)
}

// NewTrueType prepares the subset of an in-memory TrueType font for
// embedding.
//
// With a cache directory, the subset is stored under a name derived from the
// PostScript name of the font, the encoding and a hash of the font data.
func NewTrueType(data []byte, opt *TrueTypeOptions) (*TrueType, error) {
	if opt == nil {
		opt = &TrueTypeOptions{}
	}
	encName := opt.Encoding
	if encName == "" {
		encName = "cp1252"
	}
	enc, err := encoding.Lookup(encName)
	if err != nil {
		return nil, err
	}

	info, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	fontName := info.Metrics().FontName
	if !info.Metrics().Embeddable {
		return nil, fmt.Errorf("simple: font %q does not allow embedding", fontName)
	}

	var cachePath string
	if opt.CacheDir != "" {
		cachePath = filepath.Join(opt.CacheDir, truetype.CacheName(fontName, enc.Name, data))
		m, fontData, ok, err := truetype.LoadCache(cachePath)
		if err != nil {
			return nil, err
		}
		if ok {
			return newTrueTypeNode(m, enc, fontData, opt)
		}
	}
	subset, err := info.Subset(enc)
	if err != nil {
		return nil, err
	}
	fontData, err := subset.Build()
	if err != nil {
		return nil, err
	}
	m := subset.Metrics()

	if cachePath != "" {
		err = truetype.SaveCache(cachePath, m, fontData)
		if err != nil {
			// the cache is optional
			logger.Debugf("font cache not written: %v", err)
		}
	}
	return newTrueTypeNode(m, enc, fontData, opt)
}

const (
	firstChar = 32
	lastChar  = 255
)

func newTrueTypeNode(m *truetype.Metrics, enc *encoding.Encoding, fontData []byte, opt *TrueTypeOptions) (*TrueType, error) {
	baseFont := m.FontName
	if m.Tag != "" {
		baseFont = m.Tag + "+" + baseFont
	}

	fontFile := pdf.NewNode("")
	fontFile.SetInt("Length1", len(fontData))
	if opt.Compress {
		err := fontFile.SetCompressedStream(fontData)
		if err != nil {
			return nil, err
		}
	} else {
		fontFile.SetStream(fontData)
	}

	desc := pdf.NewNode("FontDescriptor")
	desc.SetName("FontName", baseFont)
	desc.SetInt("Flags", int(m.Flags))
	desc.Set("FontBBox", pdf.Array{
		pdf.Integer(m.FontBBox[0]), pdf.Integer(m.FontBBox[1]),
		pdf.Integer(m.FontBBox[2]), pdf.Integer(m.FontBBox[3]),
	})
	desc.SetReal("ItalicAngle", m.ItalicAngle)
	desc.SetInt("Ascent", m.Ascent)
	desc.SetInt("Descent", m.Descent)
	desc.SetInt("CapHeight", m.CapHeight)
	desc.SetInt("StemV", m.StemV)
	desc.SetInt("MissingWidth", m.MissingWidth)
	desc.SetRef("FontFile2", fontFile)
	desc.AddChild(fontFile)

	cmap := &bytes.Buffer{}
	err := tounicode.Write(cmap, truetype.ToUnicodeRuns(enc, m.CodeToGlyph))
	if err != nil {
		return nil, err
	}
	toUni := pdf.NewNode("")
	if opt.Compress {
		err = toUni.SetCompressedStream(cmap.Bytes())
		if err != nil {
			return nil, err
		}
	} else {
		toUni.SetStream(cmap.Bytes())
	}

	widths := make(pdf.Array, 0, lastChar-firstChar+1)
	for code := firstChar; code <= lastChar; code++ {
		widths = append(widths, pdf.Integer(m.CharWidths[code]))
	}

	node := pdf.NewNode("Font")
	node.SetName("Subtype", "TrueType")
	node.SetName("BaseFont", baseFont)
	node.SetInt("FirstChar", firstChar)
	node.SetInt("LastChar", lastChar)
	node.Set("Widths", widths)
	node.SetRef("FontDescriptor", desc)
	node.Set("Encoding", encodingObject(enc))
	node.SetRef("ToUnicode", toUni)
	node.AddChild(desc)
	node.AddChild(toUni)

	logger.Debugf("prepared %s (%s), %d bytes", baseFont, enc.Name, len(fontData))
	return &TrueType{
		Metrics:  m,
		enc:      enc,
		fontData: fontData,
		node:     node,
	}, nil
}

// encodingObject returns the /Encoding entry for a font dictionary.
// Encodings without a predefined PDF equivalent are described by their
// differences from WinAnsiEncoding.
func encodingObject(enc *encoding.Encoding) pdf.Object {
	if enc.PDFName != "" {
		return pdf.Name(enc.PDFName)
	}
	base, err := encoding.Lookup("cp1252")
	if err != nil {
		panic(err) // unreachable
	}

	var diff pdf.Array
	next := -1
	for code := range 256 {
		r, ok := enc.Decode(byte(code))
		if !ok || code < 32 {
			continue
		}
		if baseRune, ok := base.Decode(byte(code)); ok && baseRune == r {
			continue
		}
		if code != next {
			diff = append(diff, pdf.Integer(code))
		}
		diff = append(diff, pdf.Name(names.FromUnicode(string(r))))
		next = code + 1
	}
	return pdf.Dict{
		"Type":         pdf.Name("Encoding"),
		"BaseEncoding": pdf.Name("WinAnsiEncoding"),
		"Differences":  diff,
	}
}

// Node implements the [Font] interface.
func (f *TrueType) Node() *pdf.Node {
	return f.node
}

// Encoding implements the [Font] interface.
func (f *TrueType) Encoding() *encoding.Encoding {
	return f.enc
}

// Encode implements the [Font] interface.
func (f *TrueType) Encode(s string) pdf.String {
	return pdf.String(f.enc.Encode(s))
}

// FontData returns the embedded font program.
func (f *TrueType) FontData() []byte {
	return f.fontData
}

// Width returns the width of a string in PDF text space units for the given
// font size.
func (f *TrueType) Width(s string, size float64) float64 {
	total := 0
	for _, c := range f.enc.Encode(s) {
		total += f.Metrics.CharWidths[c]
	}
	return float64(total) * size / 1000
}
