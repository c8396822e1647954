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

package truetype

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCacheRoundTrip(t *testing.T) {
	f, err := Parse(makeTestFont(nil))
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Subset(mustEncoding(t, "cp1252"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	m := s.Metrics()

	dir := t.TempDir()
	path := filepath.Join(dir, CacheName(m.FontName, "cp1252", data))
	err = SaveCache(path, m, data)
	if err != nil {
		t.Fatal(err)
	}

	m2, data2, ok, err := LoadCache(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("cache entry not found")
	}
	if d := cmp.Diff(m2, m, cmpopts.IgnoreUnexported(Metrics{})); d != "" {
		t.Errorf("metrics (-got +want):\n%s", d)
	}
	if d := cmp.Diff(data2, data); d != "" {
		t.Errorf("font data differs (-got +want):\n%s", d)
	}
}

func TestCacheMissing(t *testing.T) {
	m, data, ok, err := LoadCache(filepath.Join(t.TempDir(), "missing.cache"))
	if err != nil || ok || m != nil || data != nil {
		t.Errorf("got %v %v %t %v", m, data, ok, err)
	}
}

func TestCacheCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cache")
	for _, body := range []string{
		"",
		"\x00\x00\x00\x10abc",
		"\x00\x00\x00\x04!!!!\x00\x00\x00\x00",
	} {
		err := os.WriteFile(path, []byte(body), 0o644)
		if err != nil {
			t.Fatal(err)
		}
		_, _, ok, err := LoadCache(path)
		if ok || !errors.Is(err, errCorruptCache) {
			t.Errorf("%q: got %t, %v", body, ok, err)
		}
	}
}

func TestCacheName(t *testing.T) {
	a := CacheName("Go Regular/x", "cp1252", []byte{1, 2, 3})
	b := CacheName("Go Regular/x", "cp1252", []byte{1, 2, 4})
	if a == b {
		t.Error("cache name does not depend on the font data")
	}
	if strings.ContainsAny(a, " /") || !strings.HasPrefix(a, "Go_Regular_x-cp1252-") {
		t.Errorf("bad cache name %q", a)
	}
}
