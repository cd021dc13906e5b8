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

package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
func TestResolve(t *testing.T) {

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "games"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(base, "games", "elite"), []byte("ELITE"), 0644))

	data, err := ReadAll("repo://games/elite", base)
	require.NoError(t, err)
	assert.Equal(t, []byte("ELITE"), data)

	data, err = ReadAll(filepath.Join(base, "games", "elite"), "")
	require.NoError(t, err)
	assert.Equal(t, []byte("ELITE"), data)

	for _, ref := range []string{
		"repo://../outside", "repo://", "repo://games/../../x"} {
		_, err := Resolve(ref, base)
		assert.Error(t, err, ref)
	}

	_, err = Resolve("repo://games/elite", "")
	assert.Error(t, err)

	_, err = ReadAll(filepath.Join(base, "missing"), "")
	assert.Error(t, err)

	assert.True(t, IsReference("repo://x"))
	assert.False(t, IsReference("x"))
}
