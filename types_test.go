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
	"errors"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(0.5), "0.5"},
		{String("hello"), "(hello)"},
		{String("a(b)c"), "(a(b)c)"},
		{String("a) b (c d"), `(a\) b \(c d)`},
		{String("back\\slash\n"), `(back\\slash\n)`},
		{String("\x00\x01\x02"), "<000102>"},
		{String("Gr\xf6\xdfe Stra\xdfe"), `(Gr\366\337e Stra\337e)`},
		{String(""), "()"},
		{String("a(b"), `(a\(b)`},
		{String("tab\there\x7f"), `(tab\there\177)`},
		{String("\r\f\bx"), "<0d0c0878>"},
		{Bool(false), "false"},
		{Real(-2.25), "-2.25"},
		{Dict(nil), "null"},
		{Name("Type"), "/Type"},
		{Name("A B#C"), "/A#20B#23C"},
		{Name("x/y"), "/x#2fy"},
		{Array{Integer(1), nil, Name("N")}, "[1 null /N]"},
		{Array{}, "[]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Reference{Number: 12}, "12 0 R"},
	}
	for _, test := range cases {
		out, err := Format(test.in)
		if err != nil {
			t.Errorf("%v: %v", test.in, err)
			continue
		}
		if out != test.out {
			t.Errorf("Format(%#v) = %q, want %q", test.in, out, test.out)
		}
	}
}

func TestTextString(t *testing.T) {
	if s := TextString("Hello World"); string(s) != "Hello World" {
		t.Errorf("ASCII text changed to %q", s)
	}
	s := TextString("Grüße")
	want := "\xfe\xff\x00G\x00r\x00\xfc\x00\xdf\x00e"
	if string(s) != want {
		t.Errorf("TextString(Grüße) = %q, want %q", s, want)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("", 2*3600)
	d := Date(time.Date(2024, 3, 5, 14, 30, 0, 0, loc))
	if string(d) != "D:20240305143000+02'00" {
		t.Errorf("wrong date string %q", d)
	}
}

func TestVersion(t *testing.T) {
	for _, s := range []string{"1.0", "1.4", "1.7", "2.0"} {
		ver, err := ParseVersion(s)
		if err != nil {
			t.Fatal(err)
		}
		if ver.String() != s {
			t.Errorf("%s: round trip gave %s", s, ver)
		}
	}
	_, err := ParseVersion("1.8")
	if err == nil {
		t.Error("invalid version accepted")
	}
}

func TestDanglingReference(t *testing.T) {
	n := NewNode("Font")
	_, err := Format(Array{n.Ref()})
	var dangling *DanglingReferenceError
	if !errors.As(err, &dangling) || dangling.Type != "Font" {
		t.Errorf("expected DanglingReferenceError, got %v", err)
	}

	g := NewGraph()
	g.Add(n)
	out, err := Format(Array{n.Ref()})
	if err != nil {
		t.Fatal(err)
	}
	if out != "[1 0 R]" {
		t.Errorf("got %q", out)
	}
}
