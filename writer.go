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

package pdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("pkg", "pdf")

// WriterOptions control how a PDF file is written.
type WriterOptions struct {
	// Version is the PDF version written in the file header.
	// The default is PDF 1.7.
	Version Version
}

var errNoRoot = errors.New("pdf: missing document catalog")

// Serialize writes the graph as a complete PDF file.
//
// Objects are written in the order of their object numbers.  Before a node
// is written, its children are added to the graph, and nodes referenced
// through a [LazyReference] are added while the referring object is written.
// All such nodes are written in the same pass.
func Serialize(w io.Writer, g *Graph, opt *WriterOptions) error {
	if opt == nil {
		opt = &WriterOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_7
	}
	versionString, err := ver.ToString()
	if err != nil {
		return err
	}
	if g.root == nil {
		return errNoRoot
	}

	pw := &posWriter{w: w, graph: g}
	fmt.Fprintf(pw, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", versionString)

	if err := g.claim(g.root); err != nil {
		return err
	}
	for _, e := range g.trailer {
		if err := g.claim(e.node); err != nil {
			return err
		}
	}

	var offsets []int64
	for i := 0; i < len(g.nodes); i++ {
		n := g.nodes[i]
		for _, child := range n.children {
			if err := g.claim(child); err != nil {
				return err
			}
		}

		offsets = append(offsets, pw.pos)
		fmt.Fprintf(pw, "%d 0 obj\n", n.num)
		err := n.PDF(pw)
		if err != nil {
			return pw.wrap(err)
		}
		pw.Write([]byte("endobj\n"))
		if pw.err != nil {
			return pw.wrap(pw.err)
		}
	}

	xrefPos := pw.pos
	fmt.Fprintf(pw, "xref\n0 %d\n", len(offsets)+1)
	pw.Write([]byte("0000000000 65535 f \n"))
	for _, pos := range offsets {
		fmt.Fprintf(pw, "%010d 00000 n \n", pos)
	}

	trailer := Dict{
		"Size": Integer(len(offsets) + 1),
		"Root": g.root.Ref(),
	}
	for _, e := range g.trailer {
		trailer[e.key] = e.node.Ref()
	}
	pw.Write([]byte("trailer\n"))
	err = trailer.PDF(pw)
	if err != nil {
		return pw.wrap(err)
	}
	fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	if pw.err != nil {
		return pw.wrap(pw.err)
	}

	logger.Debugf("wrote PDF-%s file with %d objects, %d bytes",
		versionString, len(offsets), pw.pos)
	return nil
}

// WriteFile writes the graph as a PDF file at the given path.  If a file
// with the same name exists, it is overwritten.
func WriteFile(path string, g *Graph, opt *WriterOptions) error {
	fd, err := os.Create(path)
	if err != nil {
		return &WriteError{Err: err}
	}
	buf := bufio.NewWriter(fd)
	err = Serialize(buf, g, opt)
	if err != nil {
		fd.Close()
		return err
	}
	err = buf.Flush()
	if err != nil {
		fd.Close()
		return &WriteError{Err: err}
	}
	err = fd.Close()
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// posWriter keeps track of the number of bytes written, and of the first
// write error.
type posWriter struct {
	w     io.Writer
	pos   int64
	err   error
	graph *Graph
}

func (w *posWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err != nil {
		w.err = &WriteError{Pos: w.pos, Err: err}
	}
	return n, w.err
}

func (w *posWriter) wrap(err error) error {
	var writeErr *WriteError
	if errors.As(err, &writeErr) {
		return writeErr
	}
	return err
}

// claim adds n to g, unless n already belongs to a different graph.
func (g *Graph) claim(n *Node) error {
	if n.graph != nil && n.graph != g {
		return &ForeignNodeError{Type: n.Type, Number: n.num}
	}
	g.Add(n)
	return nil
}
