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

// Package fonterror defines the errors reported while reading, subsetting
// and rebuilding TrueType fonts.
//
// All errors are concrete pointer types, so that callers can use
// [errors.As] to distinguish the different failure modes.
package fonterror

import "fmt"

// TruncatedStreamError is returned when fewer bytes are available than
// a fixed-size field requires.
type TruncatedStreamError struct {
	Pos  int64 // offset where the read started
	Want int   // number of bytes requested
	Have int   // number of bytes available
}

func (err *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated stream at offset %d: need %d bytes, have %d",
		err.Pos, err.Want, err.Have)
}

// UnrecognizedFormatError indicates that the sfnt version tag is not
// 0x00010000.
type UnrecognizedFormatError struct {
	Version uint32
}

func (err *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized font format 0x%08x", err.Version)
}

// InvalidMagicNumberError indicates a corrupt "head" table.
type InvalidMagicNumberError struct {
	Magic uint32
}

func (err *InvalidMagicNumberError) Error() string {
	return fmt.Sprintf("invalid head magic number 0x%08x", err.Magic)
}

// UnsupportedEncodingError is returned when the font has no usable
// Windows Unicode BMP "cmap" subtable.
type UnsupportedEncodingError struct {
	Reason string
}

func (err *UnsupportedEncodingError) Error() string {
	return "unsupported cmap encoding: " + err.Reason
}

// MissingFontNameError is returned when the "name" table has no PostScript
// name record.
type MissingFontNameError struct{}

func (err *MissingFontNameError) Error() string {
	return "font has no PostScript name"
}

// GlyphNotFoundError indicates a glyph index outside the range of glyphs
// present in the font.
type GlyphNotFoundError struct {
	GID       int
	NumGlyphs int
}

func (err *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("glyph %d not found (font has %d glyphs)",
		err.GID, err.NumGlyphs)
}

// UnknownEncodingError is returned for legacy encoding names without a
// mapping table.
type UnknownEncodingError struct {
	Name string
}

func (err *UnknownEncodingError) Error() string {
	return fmt.Sprintf("unknown encoding %q", err.Name)
}

// UnknownMarkerError indicates the use of a named offset which was never set.
type UnknownMarkerError struct {
	Name string
}

func (err *UnknownMarkerError) Error() string {
	return fmt.Sprintf("unknown marker %q", err.Name)
}

// TableError adds the table name and position to an error found while
// decoding a font table.
type TableError struct {
	Table string
	Pos   int64
	Err   error
}

func (err *TableError) Error() string {
	return fmt.Sprintf("%q table, offset %d: %v", err.Table, err.Pos, err.Err)
}

func (err *TableError) Unwrap() error {
	return err.Err
}
