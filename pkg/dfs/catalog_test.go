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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelalexv/ssdbuild/pkg/dfs/raw"
)

// catalogRecord is what sector 1 says about one file
type catalogRecord struct {
	load, exec, length, start int
}

//
func decodeRecord(s1 []byte, ix int) catalogRecord {
	rec := s1[CatalogSlot*(ix+1) : CatalogSlot*(ix+2)]
	hiStart, hiLoad, hiLength, hiExec := raw.BitUnpack4(rec[6])
	return catalogRecord{
		load:   int(rec[0]) | int(rec[1])<<8 | hiLoad<<16,
		exec:   int(rec[2]) | int(rec[3])<<8 | hiExec<<16,
		length: int(rec[4]) | int(rec[5])<<8 | hiLength<<16,
		start:  int(rec[7]) | hiStart<<8,
	}
}

//
func TestCatalogSector0(t *testing.T) {

	entries, _ := layout([]*File{
		{Name: "SHORT", Content: []byte{1}},
		{Directory: 'B', Name: "WAYTOOLONG", Content: []byte{2}},
	})

	cat, err := encodeCatalog("MYDISK", BootNone, entries)
	require.NoError(t, err)
	require.Len(t, cat, 2*BytesPerSector)

	s0 := cat[:BytesPerSector]
	assert.Equal(t, []byte("MYDISK\x00\x00"), s0[0:8])
	assert.Equal(t, []byte("SHORT  $"), s0[8:16])
	assert.Equal(t, []byte("WAYTOOLB"), s0[16:24])
	assert.Equal(t, make([]byte, BytesPerSector-24), s0[24:])
}

//
func TestCatalogSector1Header(t *testing.T) {

	entries, _ := layout([]*File{
		{Name: "A", Content: make([]byte, 10)},
		{Name: "B", Content: make([]byte, 300)},
	})

	cat, err := encodeCatalog("A LONG TITLE GOES HERE", BootRun, entries)
	require.NoError(t, err)

	s0 := cat[:BytesPerSector]
	s1 := cat[BytesPerSector:]

	assert.Equal(t, []byte("A LONG T"), s0[0:8])
	assert.Equal(t, []byte("ITLE"), s1[0:4])
	assert.Equal(t, byte(0), s1[4], "sequence number")
	assert.Equal(t, byte(16), s1[5], "entries times 8")
	assert.Equal(t, byte(0x23), s1[6], "boot option & sector count high")
	assert.Equal(t, byte(0x20), s1[7], "sector count low")

	_, boot, _, hiSectors := raw.BitUnpack4(s1[6])
	assert.Equal(t, int(BootRun), boot)
	assert.Equal(t, SectorCount, hiSectors<<8|int(s1[7]))

	assert.Equal(t, catalogRecord{length: 10, start: 2}, decodeRecord(s1, 0))
	assert.Equal(t, catalogRecord{length: 300, start: 3}, decodeRecord(s1, 1))
	assert.Equal(t, make([]byte, BytesPerSector-24), s1[24:])
}

//
func TestCatalogShortTitle(t *testing.T) {

	entries, _ := layout([]*File{{Name: "X"}})
	cat, err := encodeCatalog("AB", BootNone, entries)
	require.NoError(t, err)

	assert.Equal(t, []byte("AB\x00\x00\x00\x00\x00\x00"), cat[0:8])
	assert.Equal(t, []byte{0, 0, 0, 0}, cat[BytesPerSector:BytesPerSector+4])
	assert.Equal(t, byte(0x03), cat[BytesPerSector+6])
}

//
func TestCatalogBootOptions(t *testing.T) {

	entries, _ := layout([]*File{{Name: "X"}})

	for opt, want := range map[BootOption]byte{
		BootNone: 0x03, BootLoad: 0x13, BootRun: 0x23, BootExec: 0x33} {
		cat, err := encodeCatalog("", opt, entries)
		require.NoError(t, err)
		assert.Equal(t, want, cat[BytesPerSector+6], "boot option %s", opt)
	}
}

//
func TestCatalogRoundTrip(t *testing.T) {

	files := []*File{
		{Name: "ZERO"},
		{Name: "BASIC", LoadAddr: 0x1900, ExecAddr: 0x8023,
			Content: make([]byte, 0x1234)},
		{Name: "HIGH", LoadAddr: 0x3ffff, ExecAddr: 0x2abcd,
			Content: make([]byte, 0x10001)},
		{Name: "MID", LoadAddr: 0x10000, ExecAddr: 0x30000,
			Content: make([]byte, 256)},
	}

	entries, used := layout(files)
	assert.Equal(t, 2+1+19+257+2, used)

	cat, err := encodeCatalog("ROUNDTRIP", BootExec, entries)
	require.NoError(t, err)
	s1 := cat[BytesPerSector:]

	for ix, e := range entries {
		assert.Equal(t, catalogRecord{
			load:   e.LoadAddr(),
			exec:   e.ExecAddr(),
			length: e.Length(),
			start:  e.StartSector(),
		}, decodeRecord(s1, ix), "entry %s", e)
	}

	// start sector of the third file crosses the 8 bit boundary
	assert.Equal(t, 22, entries[2].StartSector())
	assert.Equal(t, 279, entries[3].StartSector())
	assert.Equal(t, byte(0x40|0x10|0x00|0x03), s1[CatalogSlot*4+6])
}

//
func TestCatalogFull(t *testing.T) {

	files := make([]*File, MaxFiles)
	for ix := range files {
		files[ix] = &File{Name: "F", Content: []byte{byte(ix)}}
	}
	entries, _ := layout(files)

	cat, err := encodeCatalog("FULL", BootNone, entries)
	require.NoError(t, err)
	assert.Equal(t, byte(MaxFiles*CatalogSlot), cat[BytesPerSector+5])
	assert.Equal(t, []byte("F      $"), cat[BytesPerSector-8:BytesPerSector])

	_, err = encodeCatalog("FULL", BootNone,
		append(entries, newEntry(&File{Name: "G"}, 40)))
	assert.True(t, errors.Is(err, ErrCatalogTooLarge))
}

//
func TestCatalogNameAlwaysSevenBytes(t *testing.T) {

	for _, name := range []string{"", "A", "SEVENCH", "EIGHTCHR", "MUCHLONGERNAME"} {
		entries, _ := layout([]*File{{Name: name}})
		cat, err := encodeCatalog("", BootNone, entries)
		require.NoError(t, err)

		field := cat[8:15]
		want := []byte(name + "       ")[:NameLength]
		assert.Equal(t, want, field, "name '%s'", name)
		assert.Equal(t, byte('$'), cat[15])
		assert.Equal(t, bytes.Repeat([]byte{0}, 8), cat[16:24])
	}
}
