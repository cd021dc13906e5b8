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
	"fmt"
)

/*
	File is a file to be placed on the disk, as resolved from a file spec.
	Directory defaults to '$' when zero. Name is written as exactly seven
	bytes, space-padded or silently truncated. Addresses are stored with 18
	significant bits.
*/
type File struct {
	Directory byte
	Name      string
	LoadAddr  uint32
	ExecAddr  uint32
	Content   []byte
}

// SectorsFor returns the number of sectors reserved for content of the given
// length. This is always length/256 + 1, so a file whose length is an exact
// multiple of the sector size gets one trailing sector of padding.
func SectorsFor(length int) int {
	return length/BytesPerSector + 1
}

// Entry is the catalog view of a File, placed at a start sector.
type Entry struct {
	file  *File
	start int
}

//
func newEntry(f *File, start int) *Entry {
	return &Entry{file: f, start: start}
}

//
func (e *Entry) Directory() byte {
	if e.file.Directory == 0 {
		return DefaultDir
	}
	return e.file.Directory
}

//
func (e *Entry) Name() string {
	return e.file.Name
}

//
func (e *Entry) LoadAddr() int {
	return int(e.file.LoadAddr)
}

//
func (e *Entry) ExecAddr() int {
	return int(e.file.ExecAddr)
}

//
func (e *Entry) Length() int {
	return len(e.file.Content)
}

//
func (e *Entry) SectorCount() int {
	return SectorsFor(e.Length())
}

//
func (e *Entry) StartSector() int {
	return e.start
}

// Content returns the raw file content; callers must not modify it.
func (e *Entry) Content() []byte {
	return e.file.Content
}

//
func (e *Entry) String() string {
	return fmt.Sprintf("%c.%s", e.Directory(), e.Name())
}
