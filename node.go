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
	"io"
	"slices"
)

// Node is an indirect object in a PDF file: a dictionary with an optional
// stream.  A node receives its object number when it is added to a [Graph].
// Entries are written in the order in which they were first set, after the
// /Type entry.
type Node struct {
	// Type, if set, is written as the /Type entry of the dictionary.
	Type Name

	keys []Name
	vals map[Name]Object

	stream    []byte
	hasStream bool

	num      int
	graph    *Graph
	children []*Node
}

// NewNode allocates a new node.  The type may be empty.
func NewNode(tp Name) *Node {
	return &Node{
		Type: tp,
		vals: make(map[Name]Object),
	}
}

// Number returns the object number of the node, or 0 if the node has not
// been added to a graph.
func (n *Node) Number() int {
	return n.num
}

// Ref returns a [LazyReference] to the node.  The object number is
// filled in by the graph which writes the referring object.
func (n *Node) Ref() Object {
	return LazyReference{Node: n}
}

// Set sets a dictionary entry, replacing any previous value.
// Setting a nil value removes the entry.
func (n *Node) Set(key Name, val Object) {
	if val == nil {
		n.Delete(key)
		return
	}
	if tp, isName := val.(Name); isName && key == "Type" {
		n.Delete(key)
		n.Type = tp
		return
	}
	if _, ok := n.vals[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.vals[key] = val
}

// Delete removes a dictionary entry.
func (n *Node) Delete(key Name) {
	if key == "Type" {
		n.Type = ""
	}
	if _, ok := n.vals[key]; !ok {
		return
	}
	delete(n.vals, key)
	n.keys = slices.DeleteFunc(n.keys, func(k Name) bool { return k == key })
}

// Get returns the value of a dictionary entry, or nil if the entry is not
// set.
func (n *Node) Get(key Name) Object {
	if key == "Type" && n.Type != "" {
		return n.Type
	}
	return n.vals[key]
}

// Keys returns the dictionary keys in output order, not including /Type.
func (n *Node) Keys() []Name {
	return slices.Clone(n.keys)
}

// SetName sets a dictionary entry to a name.
func (n *Node) SetName(key Name, val string) {
	n.Set(key, Name(val))
}

// SetString sets a dictionary entry to a raw string.
func (n *Node) SetString(key Name, val string) {
	n.Set(key, String(val))
}

// SetText sets a dictionary entry to a text string, see [TextString].
func (n *Node) SetText(key Name, val string) {
	n.Set(key, TextString(val))
}

// SetInt sets a dictionary entry to an integer.
func (n *Node) SetInt(key Name, val int) {
	n.Set(key, Integer(val))
}

// SetReal sets a dictionary entry to a real number.
func (n *Node) SetReal(key Name, val float64) {
	n.Set(key, Real(val))
}

// SetBool sets a dictionary entry to a boolean.
func (n *Node) SetBool(key Name, val bool) {
	n.Set(key, Bool(val))
}

// SetRef sets a dictionary entry to a reference to another node.
func (n *Node) SetRef(key Name, target *Node) {
	n.Set(key, target.Ref())
}

// SetArray sets a dictionary entry to an array.  If add is true and the
// entry already holds an array, the values are appended to it instead.
func (n *Node) SetArray(key Name, vals Array, add bool) {
	if add {
		if old, ok := n.vals[key].(Array); ok {
			merged := make(Array, 0, len(old)+len(vals))
			merged = append(merged, old...)
			merged = append(merged, vals...)
			n.vals[key] = merged
			return
		}
	}
	n.Set(key, slices.Clone(vals))
}

// SetDict sets a dictionary entry to a dictionary.  If add is true and the
// entry already holds a dictionary, the new entries are merged into it.
func (n *Node) SetDict(key Name, dict Dict, add bool) {
	merged := Dict{}
	if add {
		if old, ok := n.vals[key].(Dict); ok {
			for k, v := range old {
				merged[k] = v
			}
		}
	}
	for k, v := range dict {
		merged[k] = v
	}
	n.Set(key, merged)
}

// AddChild registers a node which is referenced from this node.  Children
// are added to the graph, in order, just before this node is written.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// SetStream attaches stream data to the node.
func (n *Node) SetStream(data []byte) {
	n.stream = data
	n.hasStream = true
	n.Delete("Filter")
}

// SetCompressedStream compresses data and attaches it to the node, with
// a /FlateDecode filter.
func (n *Node) SetCompressedStream(data []byte) error {
	zData, err := Compress(data)
	if err != nil {
		return err
	}
	n.stream = zData
	n.hasStream = true
	n.Set("Filter", Name("FlateDecode"))
	return nil
}

// Stream returns the (possibly compressed) stream data.
func (n *Node) Stream() ([]byte, bool) {
	return n.stream, n.hasStream
}

// PDF writes the dictionary and, if present, the stream of the node.
// For streams, the /Length entry is set from the stream data.
// This implements the [Object] interface.
func (n *Node) PDF(w io.Writer) error {
	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	if n.Type != "" {
		err = writeEntry(w, "Type", n.Type)
		if err != nil {
			return err
		}
	}
	for _, key := range n.keys {
		if key == "Type" && n.Type != "" || key == "Length" && n.hasStream {
			continue
		}
		err = writeEntry(w, key, n.vals[key])
		if err != nil {
			return err
		}
	}
	if n.hasStream {
		err = writeEntry(w, "Length", Integer(len(n.stream)))
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>\n"))
	if err != nil {
		return err
	}

	if n.hasStream {
		_, err = w.Write([]byte("stream\n"))
		if err != nil {
			return err
		}
		_, err = w.Write(n.stream)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte("\nendstream\n"))
		if err != nil {
			return err
		}
	}
	return nil
}
