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

package metadata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/xmp"

	pdf "seehuhn.de/go/pdfgen"
)

func TestRoundTrip(t *testing.T) {
	original, err := New("Test Document", []string{"Test Author"}, "")
	if err != nil {
		t.Fatal(err)
	}

	node, err := original.Node(false)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != "Metadata" || node.Get("Subtype") != pdf.Name("XML") {
		t.Errorf("wrong stream dictionary: %v %v", node.Type, node.Get("Subtype"))
	}
	body, ok := node.Stream()
	if !ok {
		t.Fatal("metadata node has no stream")
	}

	extracted, err := Read(body)
	if err != nil {
		t.Fatal(err)
	}

	var originalDC, extractedDC xmp.DublinCore
	original.Data.Get(&originalDC)
	extracted.Data.Get(&extractedDC)
	if diff := cmp.Diff(extractedDC, originalDC); diff != "" {
		t.Errorf("round trip failed (-got +want):\n%s", diff)
	}
}

func TestCompressed(t *testing.T) {
	s, err := New("Compressed", nil, "a description")
	if err != nil {
		t.Fatal(err)
	}
	node, err := s.Node(true)
	if err != nil {
		t.Fatal(err)
	}
	if node.Get("Filter") != pdf.Name("FlateDecode") {
		t.Errorf("missing filter, got %v", node.Get("Filter"))
	}
	zData, _ := node.Stream()
	body, err := pdf.Inflate(zData)
	if err != nil {
		t.Fatal(err)
	}
	other, err := Read(body)
	if err != nil {
		t.Fatal(err)
	}
	var want, got xmp.DublinCore
	s.Data.Get(&want)
	other.Data.Get(&got)
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("metadata changed by compression (-got +want):\n%s", diff)
	}
}
