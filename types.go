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
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Object represents an object in a PDF file.  The basic types of PDF objects
// implement this interface: [Array], [Bool], [Dict], [Integer], [Name],
// [Real], [Reference], [LazyReference] and [String].  A nil Object is
// written as "null".
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool is a PDF boolean.
type Bool bool

// PDF implements [Object].
func (x Bool) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatBool(bool(x)))
	return err
}

// Integer is a PDF integer.
type Integer int64

// PDF implements [Object].
func (x Integer) PDF(w io.Writer) error {
	_, err := w.Write(strconv.AppendInt(nil, int64(x), 10))
	return err
}

// Real is a PDF real number.  It is always written with a decimal point,
// and never in exponential notation.
type Real float64

// PDF implements [Object].
func (x Real) PDF(w io.Writer) error {
	out := strconv.AppendFloat(nil, float64(x), 'f', -1, 64)
	if bytes.IndexByte(out, '.') < 0 {
		out = append(out, '.')
	}
	_, err := w.Write(out)
	return err
}

// String is a PDF string.  The bytes are not interpreted; text strings
// are constructed using [TextString].
type String []byte

// PDF implements [Object].
func (x String) PDF(w io.Writer) error {
	_, err := w.Write(x.appendPDF(nil))
	return err
}

// appendPDF uses the hex form when more than a third of the bytes would need
// an escape sequence in the literal form.
func (x String) appendPDF(out []byte) []byte {
	quoteParens := !parensBalanced(x)
	special := 0
	for _, c := range x {
		if needsEscape(c, quoteParens) {
			special++
		}
	}
	if 3*special > len(x) {
		out = append(out, '<')
		out = hex.AppendEncode(out, x)
		return append(out, '>')
	}

	out = append(out, '(')
	for _, c := range x {
		switch {
		case !needsEscape(c, quoteParens):
			out = append(out, c)
		case escapeLetter[c] != 0:
			out = append(out, '\\', escapeLetter[c])
		default:
			out = append(out, '\\', '0'+c>>6, '0'+c>>3&7, '0'+c&7)
		}
	}
	return append(out, ')')
}

var escapeLetter = [256]byte{
	'\n': 'n', '\r': 'r', '\t': 't', '\b': 'b', '\f': 'f',
	'(': '(', ')': ')', '\\': '\\',
}

func needsEscape(c byte, quoteParens bool) bool {
	if c == '(' || c == ')' {
		return quoteParens
	}
	return c < ' ' || c > '~' || c == '\\'
}

// parensBalanced reports whether the parentheses in s can be written
// without escapes.
func parensBalanced(s []byte) bool {
	depth := 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

// Name is a PDF name.  The value excludes the leading slash.
type Name string

// PDF implements [Object].
func (x Name) PDF(w io.Writer) error {
	_, err := w.Write(x.appendPDF(nil))
	return err
}

func (x Name) appendPDF(out []byte) []byte {
	out = append(out, '/')
	for i := range len(x) {
		c := x[i]
		if c < '!' || c > '~' || c == '#' || strings.IndexByte("()<>[]{}/%", c) >= 0 {
			out = fmt.Appendf(out, "#%02x", c)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Array is a PDF array.  Nil elements are written as null.
type Array []Object

// PDF implements [Object].
func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, elem := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := writeObject(w, elem); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Dict is a PDF dictionary.  Entries are written in key order, and entries
// with a nil value are left out.  A nil Dict is written as null.
type Dict map[Name]Object

// PDF implements [Object].
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		return writeObject(w, nil)
	}
	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	keys := maps.Keys(x)
	slices.Sort(keys)
	for _, key := range keys {
		if x[key] == nil {
			continue
		}
		if err := writeEntry(w, key, x[key]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n>>")
	return err
}

// writeEntry writes one dictionary entry on a line of its own.
func writeEntry(w io.Writer, key Name, val Object) error {
	line := key.appendPDF([]byte{'\n'})
	line = append(line, ' ')
	if _, err := w.Write(line); err != nil {
		return err
	}
	return writeObject(w, val)
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Reference represents a reference to an indirect object in a PDF file.
type Reference struct {
	Number     int
	Generation uint16
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

// LazyReference refers to a node.  The object number is looked up when
// the reference is written.  During serialization, nodes without a number
// are appended to the graph being written, and nodes numbered by another
// graph are an error.
type LazyReference struct {
	Node *Node
}

// PDF implements the [Object] interface.
func (x LazyReference) PDF(w io.Writer) error {
	n := x.Node
	pw, inGraph := w.(*posWriter)
	inGraph = inGraph && pw.graph != nil
	switch {
	case inGraph && n.graph != nil && n.graph != pw.graph:
		return &ForeignNodeError{Type: n.Type, Number: n.num}
	case inGraph && n.num == 0:
		pw.graph.Add(n)
	case n.num == 0:
		return &DanglingReferenceError{Type: n.Type}
	}
	return Reference{Number: n.num}.PDF(w)
}

// Format returns the PDF representation of the object as a string.
func Format(obj Object) (string, error) {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
