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

// Package tounicode writes ToUnicode CMaps for simple fonts.
//
// A ToUnicode CMap maps single-byte character codes back to Unicode text,
// so that PDF viewers can extract and search the text of a document.
package tounicode

import (
	"fmt"
	"io"
	"text/template"
	"unicode/utf16"
)

// Run maps the consecutive character codes First, ..., Last to the
// consecutive code points Unicode, ..., Unicode+(Last-First).
type Run struct {
	First   byte
	Last    byte
	Unicode rune
}

// Mapping is a single character code together with its code point.
type Mapping struct {
	Code    byte
	Unicode rune
}

// MakeRuns merges mappings into runs.  The mappings must be sorted by
// character code.  A run continues while both the character code and the
// code point of the next mapping exceed those of the previous mapping by
// exactly one.
func MakeRuns(mm []Mapping) []Run {
	var res []Run
	for _, m := range mm {
		n := len(res)
		if n > 0 {
			last := &res[n-1]
			prevUnicode := last.Unicode + rune(last.Last-last.First)
			if last.Last != 0xFF && m.Code == last.Last+1 && m.Unicode == prevUnicode+1 {
				last.Last = m.Code
				continue
			}
		}
		res = append(res, Run{First: m.Code, Last: m.Code, Unicode: m.Unicode})
	}
	return res
}

// Write writes a ToUnicode CMap for the given runs.
func Write(w io.Writer, runs []Run) error {
	var single, ranges []Run
	for _, r := range runs {
		if r.First == r.Last {
			single = append(single, r)
		} else {
			ranges = append(ranges, r)
		}
	}
	data := struct {
		Singles [][]Run
		Ranges  [][]Run
	}{
		Singles: chunks(single),
		Ranges:  chunks(ranges),
	}
	return toUnicodeTmpl.Execute(w, data)
}

const chunkSize = 100

func chunks(x []Run) [][]Run {
	var res [][]Run
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

func formatText(r rune) string {
	var text []byte
	for _, x := range utf16.Encode([]rune{r}) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%02X>", text)
}

func formatSingle(r Run) string {
	return fmt.Sprintf("<%02X> %s", r.First, formatText(r.Unicode))
}

func formatRange(r Run) string {
	return fmt.Sprintf("<%02X> <%02X> %s", r.First, r.Last, formatText(r.Unicode))
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"Single": formatSingle,
	"Range":  formatRange,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<00> <FF>
endcodespacerange
{{range .Singles -}}
{{len .}} beginbfchar
{{range . -}}
{{Single .}}
{{end -}}
endbfchar
{{end -}}
{{range .Ranges -}}
{{len .}} beginbfrange
{{range . -}}
{{Range .}}
{{end -}}
endbfrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
