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

package filespec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelalexv/ssdbuild/pkg/dfs"
)

//
func TestParse(t *testing.T) {

	tests := []struct {
		in   string
		want Spec
	}{
		{"prog", Spec{Directory: '$', File: "prog", Name: "prog"}},
		{"B.prog", Spec{Directory: 'B', File: "prog", Name: "prog"}},
		{"build/game:1900", Spec{Directory: '$', File: "build/game",
			Name: "game", LoadAddr: 0x1900}},
		{"G.build/game:1900:801F", Spec{Directory: 'G', File: "build/game",
			Name: "game", LoadAddr: 0x1900, ExecAddr: 0x801f}},
		{"game:&FFFF1900:0x8023", Spec{Directory: '$', File: "game",
			Name: "game", LoadAddr: 0xffff1900, ExecAddr: 0x8023}},
		{"game::$3000", Spec{Directory: '$', File: "game", Name: "game",
			ExecAddr: 0x3000}},
		{"R.repo://elite/ELITE:1100:1100", Spec{Directory: 'R',
			File: "repo://elite/ELITE", Name: "ELITE", LoadAddr: 0x1100,
			ExecAddr: 0x1100}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, &tc.want, got)
		})
	}
}

//
func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"", "A.", ":1900", "game:xyz", "game:1900:zz", "game:1:2:3",
		"game:1FFFFFFFF", "repo://:1900"} {
		_, err := Parse(in)
		assert.Error(t, err, "spec '%s'", in)
	}
}

//
func TestLoad(t *testing.T) {

	dir := t.TempDir()
	file := filepath.Join(dir, "hello")
	require.NoError(t, os.WriteFile(file, []byte("PRINT"), 0644))

	s, err := Parse("W." + file + ":E00:E23")
	require.NoError(t, err)
	assert.Equal(t, "W.hello", s.String())

	f, err := s.Load("")
	require.NoError(t, err)
	assert.Equal(t, &dfs.File{Directory: 'W', Name: "hello", LoadAddr: 0xe00,
		ExecAddr: 0xe23, Content: []byte("PRINT")}, f)

	s, err = Parse("repo://hello")
	require.NoError(t, err)
	f, err = s.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []byte("PRINT"), f.Content)

	s, err = Parse(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	_, err = s.Load("")
	assert.Error(t, err)
}
