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
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// The font cache stores the metrics and the font program of a subset, so
// that unchanged fonts need not be parsed and subset again.  A cache file
// consists of a four-byte big-endian length, the base64 encoded JSON
// representation of the metrics, a four-byte big-endian length and the
// font program.

// CacheName returns the file name under which a subset of the font data for
// the given encoding is cached.
func CacheName(fontName, encodingName string, fontData []byte) string {
	sum := sha256.Sum256(fontData)
	name := strings.Map(func(r rune) rune {
		if r < '!' || r > '~' || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, fontName)
	return fmt.Sprintf("%s-%s-%x.cache", name, encodingName, sum[:8])
}

// SaveCache writes metrics and font data to a cache file.
func SaveCache(path string, m *Metrics, fontData []byte) error {
	js, err := json.Marshal(m)
	if err != nil {
		return err
	}
	blob := base64.StdEncoding.EncodeToString(js)

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(len(blob)))
	buf.WriteString(blob)
	binary.Write(buf, binary.BigEndian, uint32(len(fontData)))
	buf.Write(fontData)

	logger.Debugf("writing font cache %s", path)
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

var errCorruptCache = errors.New("corrupt font cache file")

// LoadCache reads a cache file written by [SaveCache].
// If the file does not exist, ok is false and no error is returned.
func LoadCache(path string) (m *Metrics, fontData []byte, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, false, nil
	} else if err != nil {
		return nil, nil, false, err
	}

	next := func() ([]byte, error) {
		if len(data) < 4 {
			return nil, errCorruptCache
		}
		n := binary.BigEndian.Uint32(data)
		data = data[4:]
		if uint64(n) > uint64(len(data)) {
			return nil, errCorruptCache
		}
		res := data[:n]
		data = data[n:]
		return res, nil
	}

	blob, err := next()
	if err != nil {
		return nil, nil, false, err
	}
	js, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %v", errCorruptCache, err)
	}
	m = &Metrics{}
	err = json.Unmarshal(js, m)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %v", errCorruptCache, err)
	}
	fontData, err = next()
	if err != nil {
		return nil, nil, false, err
	}
	if len(data) != 0 {
		return nil, nil, false, errCorruptCache
	}

	logger.Debugf("loaded font cache %s", path)
	return m, fontData, true, nil
}
