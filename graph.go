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

// Graph is the set of indirect objects which make up a PDF file.
// Objects are numbered consecutively, starting at 1, in the order in which
// they are added.
type Graph struct {
	nodes   []*Node
	root    *Node
	trailer []trailerEntry
}

type trailerEntry struct {
	key  Name
	node *Node
}

// NewGraph allocates an empty object graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add assigns the next object number to n and returns it.  If n has
// already been added, the existing number is returned.
// A node can only belong to one graph.
func (g *Graph) Add(n *Node) int {
	if n.num > 0 {
		if n.graph != g {
			panic("pdf: node belongs to a different graph")
		}
		return n.num
	}
	g.nodes = append(g.nodes, n)
	n.num = len(g.nodes)
	n.graph = g
	return n.num
}

// Len returns the number of objects in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the object with the given number, or nil if no such object
// exists.
func (g *Graph) Node(num int) *Node {
	if num < 1 || num > len(g.nodes) {
		return nil
	}
	return g.nodes[num-1]
}

// Reference returns a reference to n.  If n has not been added to the graph
// yet, the reference is resolved when the file is written.
func (g *Graph) Reference(n *Node) Object {
	return n.Ref()
}

// SetRoot sets the document catalog, which is referenced from the trailer as
// /Root.
func (g *Graph) SetRoot(n *Node) {
	g.root = n
}

// Root returns the document catalog.
func (g *Graph) Root() *Node {
	return g.root
}

// SetTrailer adds a reference to n to the trailer dictionary, e.g. for the
// /Info entry.  Setting a key twice replaces the previous node.
func (g *Graph) SetTrailer(key Name, n *Node) {
	for i := range g.trailer {
		if g.trailer[i].key == key {
			g.trailer[i].node = n
			return
		}
	}
	g.trailer = append(g.trailer, trailerEntry{key: key, node: n})
}
