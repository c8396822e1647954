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

package cursor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfgen/font/sfnt/fonterror"
)

func TestReadBigEndian(t *testing.T) {
	c := New([]byte{0x00, 0x01, 0xFF, 0xFE, 0x80, 0x00, 0x00, 0x01, 0xFF, 0xFF, 0xFF, 0xFF})

	u16, err := c.ReadUint16()
	if err != nil || u16 != 1 {
		t.Fatalf("ReadUint16: got %d, %v", u16, err)
	}
	i16, err := c.ReadInt16()
	if err != nil || i16 != -2 {
		t.Fatalf("ReadInt16: got %d, %v", i16, err)
	}
	u32, err := c.ReadUint32()
	if err != nil || u32 != 0x80000001 {
		t.Fatalf("ReadUint32: got %x, %v", u32, err)
	}
	i32, err := c.ReadInt32()
	if err != nil || i32 != -1 {
		t.Fatalf("ReadInt32: got %d, %v", i32, err)
	}
	if c.Pos() != 12 {
		t.Errorf("wrong position %d", c.Pos())
	}
}

func TestTruncated(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if err := c.Skip(2); err != nil {
		t.Fatal(err)
	}
	_, err := c.ReadUint16()

	var truncated *fonterror.TruncatedStreamError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedStreamError, got %v", err)
	}
	if truncated.Pos != 2 || truncated.Want != 2 || truncated.Have != 1 {
		t.Errorf("wrong error details: %+v", truncated)
	}
	if c.Pos() != 2 {
		t.Errorf("failed read moved the cursor to %d", c.Pos())
	}
}

func TestMarks(t *testing.T) {
	c := New(make([]byte, 16))
	c.Skip(4)
	c.SetMark("here")
	c.SetMarkAt("there", 10)

	c.SeekTo(0)
	if err := c.SeekMark("here"); err != nil {
		t.Fatal(err)
	}
	if c.Pos() != 4 {
		t.Errorf("SeekMark(here): got %d, want 4", c.Pos())
	}
	pos, err := c.Mark("there")
	if err != nil || pos != 10 {
		t.Errorf("Mark(there): got %d, %v", pos, err)
	}

	_, err = c.Mark("nowhere")
	var unknown *fonterror.UnknownMarkerError
	if !errors.As(err, &unknown) || unknown.Name != "nowhere" {
		t.Errorf("expected UnknownMarkerError, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	c := New(nil)
	c.WriteUint32(0x00010000)
	c.WriteUint16(0xABCD)
	c.WriteInt16(-1)

	c.SeekTo(4)
	c.WriteUint16(0x1234)

	want := []byte{0, 1, 0, 0, 0x12, 0x34, 0xFF, 0xFF}
	if d := cmp.Diff(c.Bytes(), want); d != "" {
		t.Errorf("unexpected bytes (-got +want):\n%s", d)
	}
	if c.Pos() != 6 {
		t.Errorf("wrong position %d", c.Pos())
	}
}
