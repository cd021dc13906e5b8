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
	"github.com/xelalexv/ssdbuild/pkg/dfs/raw"
)

// disk geometry of a single sided 80 track DFS disk
const (
	BytesPerSector  = raw.SectorSize
	SectorsPerTrack = 10
	TrackCount      = 80
	SectorCount     = TrackCount * SectorsPerTrack
)

// sectors 0 and 1 hold the catalog, files start right after
const (
	CatalogSectors  = 2
	FirstFileSector = CatalogSectors
)

//
const (
	MaxFiles    = 31
	CatalogSlot = 8
	TitleLength = 12
	NameLength  = 7
	DefaultDir  = '$'
)

// title is split across both catalog sectors
const (
	titleSector0 = 8
	titleSector1 = TitleLength - titleSector0
)

// only first generation catalogs are written
const sequenceFirst = 0
