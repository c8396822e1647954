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

// Ttfpdf typesets lines of plain text into a PDF file, using either an
// embedded TrueType font or one of the standard PDF fonts.
//
// Usage:
//
//	ttfpdf [flags] [line ...]
//
// If no lines are given on the command line, the text is read from
// standard input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"

	pdf "seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/document"
	"seehuhn.de/go/pdfgen/font/encoding"
	"seehuhn.de/go/pdfgen/font/simple"
	"seehuhn.de/go/pdfgen/metadata"
)

const margin = 72

type config struct {
	out      string
	font     string
	core     string
	enc      string
	size     float64
	cacheDir string
	compress bool
	version  string
	paper    string
	title    string
	author   string
	xmp      bool
}

func main() {
	cfg := &config{}
	flag.StringVar(&cfg.out, "o", "out.pdf", "output file name, or - for standard output")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	flag.StringVar(&cfg.font, "font", "", "TrueType font file (default: Go Regular)")
	flag.StringVar(&cfg.core, "core", "", "use the named standard font instead of a TrueType font")
	flag.StringVar(&cfg.enc, "enc", "cp1252", "character encoding for TrueType fonts")
	flag.Float64Var(&cfg.size, "size", 12, "font size in points")
	flag.StringVar(&cfg.cacheDir, "cache", "", "directory for cached font subsets")
	flag.BoolVar(&cfg.compress, "z", false, "compress streams")
	flag.StringVar(&cfg.version, "pdf", "1.7", "PDF version of the output file")
	flag.StringVar(&cfg.paper, "paper", "a4", "paper size (a4, a5 or letter)")
	flag.StringVar(&cfg.title, "title", "", "document title")
	flag.StringVar(&cfg.author, "author", "", "document author")
	flag.BoolVar(&cfg.xmp, "xmp", false, "add an XMP metadata stream")
	listEnc := flag.Bool("list-encodings", false, "list the supported encodings and exit")
	verbose := flag.Bool("v", false, "show debug output")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if *listEnc {
		for _, name := range encoding.Names() {
			fmt.Println(name)
		}
		return
	}

	if cfg.out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "error: refusing to write PDF data to a terminal")
			os.Exit(1)
		}
	} else if !*force {
		if _, err := os.Stat(cfg.out); !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "error: output file %q already exists\n", cfg.out)
			os.Exit(1)
		}
	}

	lines := flag.Args()
	if len(lines) == 0 {
		var err error
		lines, err = readLines(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	err := run(cfg, lines)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func run(cfg *config, lines []string) error {
	v, err := pdf.ParseVersion(cfg.version)
	if err != nil {
		return fmt.Errorf("invalid PDF version %q: %w", cfg.version, err)
	}

	opt := &document.Options{
		Version:      v,
		Compress:     cfg.compress,
		FontCacheDir: cfg.cacheDir,
		Info: &document.Info{
			Title:        cfg.title,
			Author:       cfg.author,
			Creator:      "ttfpdf",
			Producer:     "seehuhn.de/go/pdfgen",
			CreationDate: time.Now(),
		},
	}
	switch strings.ToLower(cfg.paper) {
	case "a4":
		opt.PageSize = document.A4
	case "a5":
		opt.PageSize = document.A5
	case "letter":
		opt.PageSize = document.Letter
	default:
		return fmt.Errorf("unknown paper size %q", cfg.paper)
	}
	if cfg.xmp {
		var authors []string
		if cfg.author != "" {
			authors = append(authors, cfg.author)
		}
		opt.Metadata, err = metadata.New(cfg.title, authors, "")
		if err != nil {
			return err
		}
	}

	doc := document.New(opt)
	font, err := loadFont(doc.Resources(), cfg)
	if err != nil {
		return err
	}

	err = typeset(doc, font, cfg.size, opt.PageSize.URy, lines)
	if err != nil {
		return err
	}

	if cfg.out == "-" {
		w := bufio.NewWriter(os.Stdout)
		err = doc.Write(w)
		if err != nil {
			return err
		}
		return w.Flush()
	}
	return doc.WriteFile(cfg.out)
}

func loadFont(pool *document.ResourcePool, cfg *config) (simple.Font, error) {
	switch {
	case cfg.core != "" && cfg.font != "":
		return nil, errors.New("-core and -font cannot be used together")
	case cfg.core != "":
		return pool.CoreFont(simple.Core(cfg.core))
	case cfg.font != "":
		return pool.TrueType(cfg.font, cfg.enc)
	default:
		return pool.TrueTypeData("goregular", goregular.TTF, cfg.enc)
	}
}

// typeset places the lines onto as many pages as needed.
func typeset(doc *document.Document, font simple.Font, size, height float64, lines []string) error {
	leading := 1.2 * size
	perPage := int((height - 2*margin) / leading)
	if perPage < 1 {
		return fmt.Errorf("font size %g too large for the page", size)
	}

	for len(lines) > 0 || doc.NumPages() == 0 {
		n := min(perPage, len(lines))
		page := doc.NewPage()
		page.TextBegin()
		page.TextSetFont(font, size)
		page.TextFirstLine(margin, height-margin-size)
		for i, line := range lines[:n] {
			if i > 0 {
				page.TextFirstLine(0, -leading)
			}
			page.TextShow(line)
		}
		page.TextEnd()
		err := doc.AddPage(page)
		if err != nil {
			return err
		}
		lines = lines[n:]
	}
	return nil
}
