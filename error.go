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

import "fmt"

// WriteError is returned when writing the PDF file fails.
type WriteError struct {
	Pos int64 // number of bytes written before the failure
	Err error
}

func (err *WriteError) Error() string {
	return fmt.Sprintf("pdf: write failed after %d bytes: %v", err.Pos, err.Err)
}

func (err *WriteError) Unwrap() error {
	return err.Err
}

// ForeignNodeError is returned when a graph refers to a node which has
// already been numbered by a different graph.
type ForeignNodeError struct {
	Type   Name
	Number int // object number in the other graph
}

func (err *ForeignNodeError) Error() string {
	tp := "object"
	if err.Type != "" {
		tp = string(err.Type) + " object"
	}
	return fmt.Sprintf("pdf: %s %d belongs to a different graph", tp, err.Number)
}

// DanglingReferenceError is returned when a reference to a node cannot be
// resolved, because the node has no object number and no graph is available
// to allocate one.
type DanglingReferenceError struct {
	Type Name
}

func (err *DanglingReferenceError) Error() string {
	if err.Type != "" {
		return fmt.Sprintf("pdf: reference to unattached %s object", err.Type)
	}
	return "pdf: reference to unattached object"
}
