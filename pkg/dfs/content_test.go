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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
func TestContentDesync(t *testing.T) {

	tests := []struct {
		name    string
		entries []*Entry
	}{
		{"gap", []*Entry{
			newEntry(&File{Name: "A"}, 2),
			newEntry(&File{Name: "B"}, 4),
		}},
		{"overlap", []*Entry{
			newEntry(&File{Name: "A", Content: make([]byte, 300)}, 2),
			newEntry(&File{Name: "B"}, 3),
		}},
		{"wrong first", []*Entry{
			newEntry(&File{Name: "A"}, 3),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encodeContent(nil, FirstFileSector, tc.entries, nil)
			assert.True(t, errors.Is(err, ErrLayoutDesync), "got %v", err)
		})
	}
}

//
func TestContentSectors(t *testing.T) {

	entries, _ := layout([]*File{
		{Name: "A", Content: pattern(600, 0)},
		{Name: "B", Content: pattern(1, 5)},
	})

	buf, err := encodeContent([]byte{}, FirstFileSector, entries, nil)
	require.NoError(t, err)
	require.Len(t, buf, 4*BytesPerSector)
	assert.Equal(t, pattern(600, 0), buf[:600])
	assert.Equal(t, make([]byte, 3*BytesPerSector-600),
		buf[600:3*BytesPerSector])
	assert.Equal(t, byte(5), buf[3*BytesPerSector])
}

//
func TestEntryDefaults(t *testing.T) {
	e := newEntry(&File{Name: "PROG", Content: make([]byte, 1024)}, 7)
	assert.Equal(t, byte('$'), e.Directory())
	assert.Equal(t, 1024, e.Length())
	assert.Equal(t, 5, e.SectorCount())
	assert.Equal(t, 7, e.StartSector())
	assert.Equal(t, "$.PROG", e.String())
}

//
func TestParseBootOption(t *testing.T) {

	for in, want := range map[string]BootOption{
		"": BootNone, "none": BootNone, "load": BootLoad, "RUN": BootRun,
		" exec ": BootExec} {
		got, err := ParseBootOption(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseBootOption("boot")
	assert.Error(t, err)
	assert.Equal(t, "run", BootRun.String())
}
