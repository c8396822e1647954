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

package tounicode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeRuns(t *testing.T) {
	mm := []Mapping{
		{Code: 'A', Unicode: 'A'},
		{Code: 'B', Unicode: 'B'},
		{Code: 'C', Unicode: 'C'},
		{Code: 'E', Unicode: 'E'},
		{Code: 0x80, Unicode: '€'},
		{Code: 0x82, Unicode: '‚'},
		{Code: 0x83, Unicode: 'ƒ'},
		{Code: 0xFE, Unicode: 'þ'},
		{Code: 0xFF, Unicode: 'ÿ'},
	}
	got := MakeRuns(mm)
	want := []Run{
		{First: 'A', Last: 'C', Unicode: 'A'},
		{First: 'E', Last: 'E', Unicode: 'E'},
		{First: 0x80, Last: 0x80, Unicode: '€'},
		{First: 0x82, Last: 0x82, Unicode: '‚'},
		{First: 0x83, Last: 0x83, Unicode: 'ƒ'},
		{First: 0xFE, Last: 0xFF, Unicode: 'þ'},
	}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("unexpected runs (-got +want):\n%s", d)
	}
}

func TestWrite(t *testing.T) {
	runs := []Run{
		{First: 0x20, Last: 0x7E, Unicode: ' '},
		{First: 0x80, Last: 0x80, Unicode: '€'},
		{First: 0xA0, Last: 0xA0, Unicode: 0x1F600},
	}
	buf := &bytes.Buffer{}
	err := Write(buf, runs)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"1 begincodespacerange\n<00> <FF>\nendcodespacerange\n",
		"2 beginbfchar\n<80> <20AC>\n<A0> <D83DDE00>\nendbfchar\n",
		"1 beginbfrange\n<20> <7E> <0020>\nendbfrange\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestChunks(t *testing.T) {
	runs := make([]Run, 250)
	cc := chunks(runs)
	var sizes []int
	for _, c := range cc {
		sizes = append(sizes, len(c))
	}
	if d := cmp.Diff(sizes, []int{100, 100, 50}); d != "" {
		t.Errorf("chunk sizes (-got +want):\n%s", d)
	}
}
