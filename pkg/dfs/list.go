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
	"encoding/hex"
	"fmt"
	"io"
)

// List writes a human readable catalog listing of the image to w.
func (i *Image) List(w io.Writer) {

	fmt.Fprintf(w, "\n%s  (boot: %s)\n\n", i.title, i.boot)

	for _, e := range i.entries {
		fmt.Fprintf(w, "%-10s %06X %06X %06X  %03X %4d\n", e, e.LoadAddr(),
			e.ExecAddr(), e.Length(), e.StartSector(), e.SectorCount())
	}

	fmt.Fprintf(w, "\n%d of %d sectors used (%dkb free)\n\n",
		i.SectorsUsed(), SectorCount,
		(SectorCount-i.SectorsUsed())*BytesPerSector/1024)
}

// Emit writes a hex dump of the image to w, one block per sector.
func (i *Image) Emit(w io.Writer) {
	for ix := 0; ix < i.SectorsUsed(); ix++ {
		fmt.Fprintf(w, "\nSECTOR: %03d - track: %d\n", ix, ix/SectorsPerTrack)
		d := hex.Dumper(w)
		d.Write(i.data[ix*BytesPerSector : (ix+1)*BytesPerSector])
		d.Close()
	}
}
