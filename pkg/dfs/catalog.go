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
	"github.com/pkg/errors"

	"github.com/xelalexv/ssdbuild/pkg/dfs/raw"
)

/*
	encodeCatalog returns the two catalog sectors for the given entries.

	Sector 0:
		&00-&07	first eight bytes of title
		&08-&0E	first file name
		&0F		directory of first file
		...		repeated for up to 31 files

	Sector 1:
		&00-&03	last four bytes of title
		&04		sequence number
		&05		number of catalog entries multiplied by 8
		&06		bits 0,1: sectors on disk, high bits; bits 4,5: boot option
		&07		sectors on disk, low bits
		&08-&09	first file's load address, low bits
		&0A-&0B	first file's exec address, low bits
		&0C-&0D	first file's length, low bits
		&0E		packed high bits of start sector, load address, length,
				and exec address
		&0F		first file's start sector, low bits
		...		repeated for up to 31 files
*/
func encodeCatalog(title string, opt BootOption, entries []*Entry) (
	[]byte, error) {

	if len(entries) > MaxFiles {
		return nil, errors.Wrapf(ErrCatalogTooLarge,
			"%d files, at most %d allowed", len(entries), MaxFiles)
	}

	s0, err := catalogNames(title, entries)
	if err != nil {
		return nil, errors.Wrap(err, "catalog sector 0")
	}

	s1, err := catalogInfo(title, opt, entries)
	if err != nil {
		return nil, errors.Wrap(err, "catalog sector 1")
	}

	return append(s0, s1...), nil
}

//
func catalogNames(title string, entries []*Entry) ([]byte, error) {

	s := raw.NewSector()
	s.String(titleSector0, title, 0)

	for _, e := range entries {
		s.String(NameLength, e.Name(), ' ')
		s.Byte(e.Directory())
	}

	return s.Close()
}

//
func catalogInfo(title string, opt BootOption, entries []*Entry) (
	[]byte, error) {

	s := raw.NewSector()

	rest := ""
	if len(title) > titleSector0 {
		rest = title[titleSector0:]
	}
	s.String(titleSector1, rest, 0)

	s.Byte(sequenceFirst)
	s.Byte(byte(len(entries) * CatalogSlot))
	s.BitPairs(0, int(opt), 0, SectorCount>>8)
	s.Byte(SectorCount & 0xff)

	for _, e := range entries {
		s.Word(e.LoadAddr())
		s.Word(e.ExecAddr())
		s.Word(e.Length())
		s.BitPairs(e.StartSector()>>8, e.LoadAddr()>>16,
			e.Length()>>16, e.ExecAddr()>>16)
		s.Byte(byte(e.StartSector() & 0xff))
	}

	return s.Close()
}
