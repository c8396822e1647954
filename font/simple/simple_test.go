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

package simple

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/font/gofont/goregular"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/encoding"
	"seehuhn.de/go/pdfgen/font/truetype"
)

func TestCoreFonts(t *testing.T) {
	f, err := HelveticaBold.New()
	if err != nil {
		t.Fatal(err)
	}
	node := f.Node()
	if node.Type != "Font" {
		t.Errorf("wrong type %q", node.Type)
	}
	want := map[pdf.Name]pdf.Object{
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica-Bold"),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	for key, val := range want {
		if got := node.Get(key); got != val {
			t.Errorf("/%s: got %v, want %v", key, got, val)
		}
	}
	if got := f.Encode("Grüße"); string(got) != "Gr\xfc\xdfe" {
		t.Errorf("wrong encoding %q", got)
	}

	sym, err := Symbol.New()
	if err != nil {
		t.Fatal(err)
	}
	if sym.Node().Get("Encoding") != nil {
		t.Error("Symbol font has an /Encoding entry")
	}

	_, err = Core("Arial").New()
	if err == nil {
		t.Error("non-standard font accepted")
	}
}

func TestTrueTypeEmbed(t *testing.T) {
	tt, err := NewTrueType(goregular.TTF, &TrueTypeOptions{Compress: true})
	if err != nil {
		t.Fatal(err)
	}
	node := tt.Node()
	if node.Get("Subtype") != pdf.Name("TrueType") {
		t.Errorf("wrong subtype %v", node.Get("Subtype"))
	}
	baseFont, _ := node.Get("BaseFont").(pdf.Name)
	pat := regexp.MustCompile(`^[A-Z]{6}\+`)
	if !pat.MatchString(string(baseFont)) ||
		!strings.HasSuffix(string(baseFont), "+"+tt.Metrics.FontName) {
		t.Errorf("unexpected font name %q", baseFont)
	}
	widths, _ := node.Get("Widths").(pdf.Array)
	if len(widths) != 224 {
		t.Fatalf("wrong number of widths: %d", len(widths))
	}
	if widths['A'-32] != pdf.Integer(tt.Metrics.CharWidths['A']) {
		t.Errorf("wrong width for A: %v", widths['A'-32])
	}
	if tt.Width("AA", 10) != float64(tt.Metrics.CharWidths['A'])/50 {
		t.Errorf("wrong string width %g", tt.Width("AA", 10))
	}

	sub, err := truetype.Parse(tt.FontData())
	if err != nil {
		t.Fatal(err)
	}
	orig, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if sub.NumGlyphs() >= orig.NumGlyphs() {
		t.Errorf("subset has %d glyphs, original %d",
			sub.NumGlyphs(), orig.NumGlyphs())
	}

	g := pdf.NewGraph()
	g.SetRoot(node)
	buf := &bytes.Buffer{}
	err = pdf.Serialize(buf, g, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, " 0 obj\n"); n != 4 {
		t.Errorf("expected 4 objects, got %d", n)
	}
	for _, key := range []string{"/FontDescriptor 2 0 R", "/ToUnicode 3 0 R", "/FontFile2 4 0 R", "/Length1 "} {
		if !strings.Contains(out, key) {
			t.Errorf("%q not found in output", key)
		}
	}
}

func TestEncodingObject(t *testing.T) {
	for name, want := range map[string]pdf.Name{
		"cp1252":   "WinAnsiEncoding",
		"macroman": "MacRomanEncoding",
	} {
		enc, err := encoding.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := encodingObject(enc); got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}

	enc, err := encoding.Lookup("iso-8859-2")
	if err != nil {
		t.Fatal(err)
	}
	dict, ok := encodingObject(enc).(pdf.Dict)
	if !ok {
		t.Fatalf("expected a dictionary, got %T", encodingObject(enc))
	}
	if dict["BaseEncoding"] != pdf.Name("WinAnsiEncoding") {
		t.Errorf("wrong base encoding %v", dict["BaseEncoding"])
	}
	diff, _ := dict["Differences"].(pdf.Array)
	if len(diff) < 2 {
		t.Fatalf("short differences array %v", diff)
	}
	if d := cmp.Diff(pdf.Array{pdf.Integer(0xA1), pdf.Name("Aogonek")}, diff[:2]); d != "" {
		t.Errorf("wrong differences (-want +got):\n%s", d)
	}
}

func TestTrueTypeCache(t *testing.T) {
	dir := t.TempDir()
	opt := &TrueTypeOptions{Encoding: "latin2", CacheDir: dir}

	first, err := NewTrueType(goregular.TTF, opt)
	if err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one cache file, found %d", len(entries))
	}
	enc, err := encoding.Lookup("latin2")
	if err != nil {
		t.Fatal(err)
	}
	info, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	wantName := truetype.CacheName(info.Metrics().FontName, enc.Name, goregular.TTF)
	if got := entries[0].Name(); got != wantName {
		t.Errorf("cache file %q, want %q", got, wantName)
	}
	if !strings.HasPrefix(entries[0].Name(), first.Metrics.FontName+"-") {
		t.Errorf("cache file %q is not named after the font", entries[0].Name())
	}

	second, err := NewTrueType(goregular.TTF, opt)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.FontData(), second.FontData()) {
		t.Error("cached font data differs")
	}
	if d := cmp.Diff(first.Metrics, second.Metrics, cmpopts.IgnoreUnexported(truetype.Metrics{})); d != "" {
		t.Errorf("cached metrics differ (-first +second):\n%s", d)
	}
	if first.Node().Get("BaseFont") != second.Node().Get("BaseFont") {
		t.Error("cached font has a different name")
	}
}
