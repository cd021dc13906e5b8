/*
   SSDBuild - Acorn DFS disk image builder
   Copyright (c) 2021, Alexander Vollschwitz

   This file is part of SSDBuild.

   SSDBuild is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   SSDBuild is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with SSDBuild. If not, see <http://www.gnu.org/licenses/>.
*/

package dfs

import (
	"io"

	"github.com/pkg/errors"
)

/*
	Builder assembles DFS disk images. A Builder holds no state between calls
	to Build, so one can be used for any number of images. Progress is an
	optional callback invoked for every content sector emitted.
*/
type Builder struct {
	Title    string
	Boot     BootOption
	Progress func(sector int, e *Entry)
}

//
func NewBuilder(title string, opt BootOption) *Builder {
	return &Builder{Title: title, Boot: opt}
}

/*
	Build lays out files in the given order starting at the first sector after
	the catalog, and encodes catalog and content into a complete image. Either
	a well-formed image is returned, or an error and no image. The files are
	not modified.
*/
func (b *Builder) Build(files []*File) (*Image, error) {

	if len(files) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(files) > MaxFiles {
		return nil, errors.Wrapf(ErrCatalogTooLarge,
			"%d files, at most %d allowed", len(files), MaxFiles)
	}

	entries, used := layout(files)
	if used > SectorCount {
		return nil, errors.Wrapf(ErrSurfaceOverflow,
			"%d sectors needed, %d available", used, SectorCount)
	}

	data, err := encodeCatalog(b.Title, b.Boot, entries)
	if err != nil {
		return nil, err
	}

	if data, err = encodeContent(
		data, FirstFileSector, entries, b.Progress); err != nil {
		return nil, err
	}

	return &Image{title: b.Title, boot: b.Boot, entries: entries, data: data},
		nil
}

// layout assigns consecutive start sectors to files, and returns the
// resulting entries together with the total number of sectors used.
func layout(files []*File) ([]*Entry, int) {
	entries := make([]*Entry, 0, len(files))
	next := FirstFileSector
	for _, f := range files {
		e := newEntry(f, next)
		entries = append(entries, e)
		next += e.SectorCount()
	}
	return entries, next
}

// Build is a shorthand for building an image with a throw-away Builder and
// returning its bytes.
func Build(title string, opt BootOption, files []*File) ([]byte, error) {
	img, err := NewBuilder(title, opt).Build(files)
	if err != nil {
		return nil, err
	}
	return img.Bytes(), nil
}

// Image is a finished disk image.
type Image struct {
	title   string
	boot    BootOption
	entries []*Entry
	data    []byte
}

//
func (i *Image) Title() string {
	return i.title
}

//
func (i *Image) Boot() BootOption {
	return i.boot
}

//
func (i *Image) Entries() []*Entry {
	return i.entries
}

// SectorsUsed returns the number of sectors taken by catalog and files.
func (i *Image) SectorsUsed() int {
	return len(i.data) / BytesPerSector
}

// Bytes returns the image data; callers must not modify it.
func (i *Image) Bytes() []byte {
	return i.data
}

// WriteTo writes the image to w.
func (i *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(i.data)
	return int64(n), err
}
