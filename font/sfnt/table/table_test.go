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

package table

import "testing"

func TestChecksum(t *testing.T) {
	cases := []struct {
		Body     []byte
		Expected uint32
	}{
		{[]byte{0, 0, 0, 0}, 0},
		{[]byte{0, 0, 0, 1}, 1},
		{[]byte{0, 1, 2, 3}, 0x00010203},
		{[]byte{0, 1, 2, 3, 4, 5, 6, 7}, 0x0406080a},
		{[]byte{1}, 0x01000000},
		{[]byte{1, 2, 3}, 0x01020300},
		{[]byte{1, 0, 0, 0, 1}, 0x02000000},
		{[]byte{0, 0, 0xFF, 0xFF, 0, 0, 0, 1}, 0x00010000},
		{[]byte{255, 255, 255, 255, 0, 0, 0, 1}, 0},
	}

	for i, test := range cases {
		computed := Checksum(test.Body)
		if computed != test.Expected {
			t.Errorf("test %d failed: %08x != %08x",
				i+1, computed, test.Expected)
		}
	}
}

func TestSub32(t *testing.T) {
	cases := []struct{ a, b uint32 }{
		{0xB1B0AFBA, 0},
		{0xB1B0AFBA, 0xB1B0AFBA},
		{0xB1B0AFBA, 0xFFFFFFFF},
		{0, 1},
		{0x00010000, 0x0000FFFF},
		{0x12345678, 0x9ABCDEF0},
	}
	for _, test := range cases {
		got := Sub32(test.a, test.b)
		if got != test.a-test.b {
			t.Errorf("Sub32(%08x, %08x) = %08x, want %08x",
				test.a, test.b, got, test.a-test.b)
		}
	}
}

func TestNewRaw(t *testing.T) {
	raw := NewRaw(MakeTag("test"), []byte{1, 2, 3, 4, 5})
	if raw.Length != 5 {
		t.Errorf("wrong length %d", raw.Length)
	}
	if len(raw.Data) != 8 {
		t.Errorf("data not padded: %d bytes", len(raw.Data))
	}
	if raw.Checksum != 0x06020304 {
		t.Errorf("wrong checksum %08x", raw.Checksum)
	}
	if raw.Tag.String() != "test" {
		t.Errorf("wrong tag %q", raw.Tag)
	}
}

func TestSearchParams(t *testing.T) {
	cases := []struct {
		n, unit    int
		sr, es, rs uint16
	}{
		{1, 2, 2, 0, 0},
		{2, 2, 4, 1, 0},
		{3, 2, 4, 1, 2},
		{39, 2, 64, 5, 14},
		{9, 16, 128, 3, 16},
		{12, 16, 128, 3, 64},
		{16, 16, 256, 4, 0},
	}
	for _, test := range cases {
		sr, es, rs := SearchParams(test.n, test.unit)
		if sr != test.sr || es != test.es || rs != test.rs {
			t.Errorf("SearchParams(%d, %d) = %d, %d, %d, want %d, %d, %d",
				test.n, test.unit, sr, es, rs, test.sr, test.es, test.rs)
		}
	}
}
