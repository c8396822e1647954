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

package document

import (
	"fmt"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font/simple"
)

// ResourcePool holds the fonts of a document.  Each font is loaded at most
// once and keeps its resource name for the whole document.
type ResourcePool struct {
	cacheDir string
	compress bool

	core     map[simple.Core]*simple.CoreFont
	trueType map[string]*simple.TrueType
	names    map[simple.Font]pdf.Name
}

// NewResourcePool creates an empty resource pool.  If cacheDir is not
// empty, font subsets are cached there.
func NewResourcePool(cacheDir string, compress bool) *ResourcePool {
	return &ResourcePool{
		cacheDir: cacheDir,
		compress: compress,
		core:     make(map[simple.Core]*simple.CoreFont),
		trueType: make(map[string]*simple.TrueType),
		names:    make(map[simple.Font]pdf.Name),
	}
}

// CoreFont returns one of the 14 standard fonts.
func (r *ResourcePool) CoreFont(name simple.Core) (*simple.CoreFont, error) {
	if f, ok := r.core[name]; ok {
		return f, nil
	}
	f, err := name.New()
	if err != nil {
		return nil, err
	}
	r.core[name] = f
	return f, nil
}

// TrueType loads a TrueType font from a file, for the given encoding.
func (r *ResourcePool) TrueType(path, enc string) (*simple.TrueType, error) {
	key := path + "\x00" + enc
	if f, ok := r.trueType[key]; ok {
		return f, nil
	}
	f, err := simple.LoadTrueType(path, r.trueTypeOptions(enc))
	if err != nil {
		return nil, err
	}
	r.trueType[key] = f
	return f, nil
}

// TrueTypeData uses in-memory TrueType font data.  The key identifies the
// font data within the pool.
func (r *ResourcePool) TrueTypeData(key string, data []byte, enc string) (*simple.TrueType, error) {
	key = "\x00" + key + "\x00" + enc
	if f, ok := r.trueType[key]; ok {
		return f, nil
	}
	f, err := simple.NewTrueType(data, r.trueTypeOptions(enc))
	if err != nil {
		return nil, err
	}
	r.trueType[key] = f
	return f, nil
}

func (r *ResourcePool) trueTypeOptions(enc string) *simple.TrueTypeOptions {
	return &simple.TrueTypeOptions{
		Encoding: enc,
		CacheDir: r.cacheDir,
		Compress: r.compress,
	}
}

// FontName returns the resource name of a font.  Names are allocated as
// /F1, /F2, ... in the order the fonts are first used.
func (r *ResourcePool) FontName(f simple.Font) pdf.Name {
	if name, ok := r.names[f]; ok {
		return name
	}
	name := pdf.Name(fmt.Sprintf("F%d", len(r.names)+1))
	r.names[f] = name
	return name
}
