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

//
var (
	ErrEmptyCatalog    = errors.New("no files to process")
	ErrCatalogTooLarge = errors.New("too many files for catalog")
	ErrSurfaceOverflow = errors.New("files do not fit on disk surface")
	ErrLayoutDesync    = errors.New("sector layout out of sync")
	ErrSectorOverflow  = raw.ErrSectorOverflow
)
