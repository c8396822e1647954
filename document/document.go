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

// Package document assembles pages, fonts and metadata into a PDF file.
//
// Pages are built independently of each other and are attached to the
// document using [Document.AddPage].  Fonts are shared between pages
// through the [ResourcePool] owned by the document.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/rect"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/metadata"
)

var logger = logrus.WithField("pkg", "document")

// Options control the construction of a [Document].
type Options struct {
	// Version is the PDF version of the output file.  The default is
	// PDF 1.7.
	Version pdf.Version

	// Compress enables the FlateDecode filter for content streams and
	// embedded fonts.
	Compress bool

	// PageSize is the default media box for new pages.  The default is A4.
	PageSize *rect.Rect

	// FontCacheDir, if set, is a directory used to cache font subsets.
	FontCacheDir string

	// Info, if set, is written as the document information dictionary.
	Info *Info

	// Metadata, if set, is attached to the document catalog.
	// This requires PDF 1.4 or newer.
	Metadata *metadata.Stream
}

// Info contains the entries of the document information dictionary.
// Empty fields are omitted.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	CreationDate time.Time
	ModDate      time.Time
}

// Document is a PDF document under construction.
type Document struct {
	opt     Options
	graph   *pdf.Graph
	catalog *pdf.Node
	pages   *pdf.Node
	pool    *ResourcePool
	plugins *Registry

	numPages int
	written  bool
}

var (
	errWritten = errors.New("document: already written")
	errNoPages = errors.New("document: no pages")
)

// New creates an empty document.
func New(opt *Options) *Document {
	d := &Document{
		graph:   pdf.NewGraph(),
		catalog: pdf.NewNode("Catalog"),
		pages:   pdf.NewNode("Pages"),
		plugins: NewRegistry(),
	}
	if opt != nil {
		d.opt = *opt
	}
	if d.opt.Version == 0 {
		d.opt.Version = pdf.V1_7
	}
	if d.opt.PageSize == nil {
		d.opt.PageSize = A4
	}
	d.pool = NewResourcePool(d.opt.FontCacheDir, d.opt.Compress)

	d.pages.SetArray("Kids", nil, false)
	d.pages.SetInt("Count", 0)
	d.catalog.SetRef("Pages", d.pages)
	d.graph.SetRoot(d.catalog)
	return d
}

// Resources returns the resource pool shared by all pages of the document.
func (d *Document) Resources() *ResourcePool {
	return d.pool
}

// Plugins returns the plugin registry of the document.
func (d *Document) Plugins() *Registry {
	return d.plugins
}

// NumPages returns the number of pages added so far.
func (d *Document) NumPages() int {
	return d.numPages
}

// NewPage returns a new, empty page using the document's default page size.
// The page is not part of the document until it is passed to
// [Document.AddPage].
func (d *Document) NewPage() *Page {
	box := *d.opt.PageSize
	return &Page{
		MediaBox: &box,
		pool:     d.pool,
		plugins:  d.plugins,
		node:     pdf.NewNode("Page"),
		fonts:    make(map[pdf.Name]pdf.Object),
	}
}

// AddPage appends a page to the document.  The page cannot be modified
// after this call.
func (d *Document) AddPage(p *Page) error {
	if d.written {
		return errWritten
	}
	if p.Err != nil {
		return p.Err
	}
	if p.closed {
		return errors.New("document: page already added")
	}
	err := p.finish(d.opt.Compress)
	if err != nil {
		return err
	}

	p.node.SetRef("Parent", d.pages)
	d.pages.SetArray("Kids", pdf.Array{p.node.Ref()}, true)
	d.numPages++
	d.pages.SetInt("Count", d.numPages)
	logger.Debugf("added page %d", d.numPages)
	return nil
}

// Write writes the document as a PDF file.  Write can only be called once.
func (d *Document) Write(w io.Writer) error {
	if d.written {
		return errWritten
	}
	if d.numPages == 0 {
		return errNoPages
	}

	if d.opt.Info != nil {
		d.graph.SetTrailer("Info", d.opt.Info.node())
	}
	if d.opt.Metadata != nil {
		if d.opt.Version < pdf.V1_4 {
			return fmt.Errorf("document: XMP metadata requires PDF 1.4, have %s",
				d.opt.Version)
		}
		meta, err := d.opt.Metadata.Node(d.opt.Compress)
		if err != nil {
			return err
		}
		d.catalog.SetRef("Metadata", meta)
	}

	d.written = true
	return pdf.Serialize(w, d.graph, &pdf.WriterOptions{Version: d.opt.Version})
}

// WriteFile writes the document to the named file.
func (d *Document) WriteFile(path string) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	err = d.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func (info *Info) node() *pdf.Node {
	n := pdf.NewNode("")
	text := []struct {
		key pdf.Name
		val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	}
	for _, e := range text {
		if e.val != "" {
			n.SetText(e.key, e.val)
		}
	}
	if !info.CreationDate.IsZero() {
		n.Set("CreationDate", pdf.Date(info.CreationDate))
	}
	if !info.ModDate.IsZero() {
		n.Set("ModDate", pdf.Date(info.ModDate))
	}
	return n
}
