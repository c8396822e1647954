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

package document

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/rect"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/simple"
)

// Page is a page under construction.
//
// The content stream is built by the text operator methods.  The first
// error encountered is stored in Err, and all later operations are
// ignored.
type Page struct {
	// MediaBox is the page boundary.  The value at the time the page is
	// added to the document is used.
	MediaBox *rect.Rect

	// Err is the first error encountered while building the page.
	Err error

	pool    *ResourcePool
	plugins *Registry
	node    *pdf.Node
	content bytes.Buffer
	fonts   map[pdf.Name]pdf.Object

	font   simple.Font
	inText bool
	closed bool
}

var (
	errNoFont      = errors.New("document: no font selected")
	errNotInText   = errors.New("document: not in a text object")
	errNestedText  = errors.New("document: nested text object")
	errPageClosed  = errors.New("document: page already added to a document")
	errOpenTextObj = errors.New("document: unterminated text object")
)

func (p *Page) valid(inText bool) bool {
	if p.Err != nil {
		return false
	}
	if p.closed {
		p.Err = errPageClosed
		return false
	}
	if p.inText != inText {
		if inText {
			p.Err = errNotInText
		} else {
			p.Err = errNestedText
		}
		return false
	}
	return true
}

// TextBegin starts a new text object.
func (p *Page) TextBegin() {
	if !p.valid(false) {
		return
	}
	p.inText = true
	p.content.WriteString("BT\n")
}

// TextEnd ends the current text object.
func (p *Page) TextEnd() {
	if !p.valid(true) {
		return
	}
	p.inText = false
	p.font = nil
	p.content.WriteString("ET\n")
}

// TextSetFont selects the font and font size for the following text.
// The font is registered in the resource pool of the document.
func (p *Page) TextSetFont(f simple.Font, size float64) {
	if !p.valid(true) {
		return
	}
	name := p.pool.FontName(f)
	p.fonts[name] = f.Node().Ref()
	p.font = f

	err := name.PDF(&p.content)
	if err != nil {
		p.Err = err
		return
	}
	fmt.Fprintf(&p.content, " %s Tf\n", formatNum(size))
}

// TextFirstLine moves to the start of the first line of text.
func (p *Page) TextFirstLine(x, y float64) {
	if !p.valid(true) {
		return
	}
	fmt.Fprintf(&p.content, "%s %s Td\n", formatNum(x), formatNum(y))
}

// TextShow shows a string, using the current font.
func (p *Page) TextShow(s string) {
	if !p.valid(true) {
		return
	}
	if p.font == nil {
		p.Err = errNoFont
		return
	}
	err := p.font.Encode(s).PDF(&p.content)
	if err != nil {
		p.Err = err
		return
	}
	p.content.WriteString(" Tj\n")
}

// Raw appends raw operators to the content stream.  A newline is added
// if op does not end in one.
func (p *Page) Raw(op []byte) {
	if p.Err != nil {
		return
	}
	if p.closed {
		p.Err = errPageClosed
		return
	}
	p.content.Write(op)
	if len(op) > 0 && op[len(op)-1] != '\n' {
		p.content.WriteByte('\n')
	}
}

// Apply runs the named plugin from the document's registry on the page.
func (p *Page) Apply(name string) error {
	if p.Err != nil {
		return p.Err
	}
	plugin, ok := p.plugins.Lookup(name)
	if !ok {
		return &UnknownPluginError{Name: name}
	}
	err := plugin.Draw(p)
	if err != nil {
		return fmt.Errorf("plugin %q: %w", name, err)
	}
	return p.Err
}

// Content returns the content stream built so far.
func (p *Page) Content() []byte {
	return p.content.Bytes()
}

// finish fills in the page dictionary.
func (p *Page) finish(compress bool) error {
	if p.inText {
		return errOpenTextObj
	}
	if p.MediaBox == nil {
		return errors.New("document: page size not set")
	}

	contents := pdf.NewNode("")
	if compress {
		err := contents.SetCompressedStream(p.content.Bytes())
		if err != nil {
			return err
		}
	} else {
		contents.SetStream(p.content.Bytes())
	}

	box := p.MediaBox
	p.node.Set("MediaBox", pdf.Array{
		pdf.Real(box.LLx), pdf.Real(box.LLy), pdf.Real(box.URx), pdf.Real(box.URy),
	})
	res := pdf.Dict{
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	}
	if len(p.fonts) > 0 {
		fonts := pdf.Dict{}
		for name, ref := range p.fonts {
			fonts[name] = ref
		}
		res["Font"] = fonts
	}
	p.node.SetDict("Resources", res, false)
	p.node.SetRef("Contents", contents)
	p.node.AddChild(contents)

	p.closed = true
	return nil
}

func formatNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
