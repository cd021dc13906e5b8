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
	encodeContent emits the content of all entries as consecutive sectors,
	appending them to buf. The first sector emitted has index first. Each entry
	takes exactly SectorCount sectors, the last of which is zero-padded. If an
	entry's start sector does not match the emission position, ErrLayoutDesync
	is returned. progress, when not nil, is called for each emitted sector.
*/
func encodeContent(buf []byte, first int, entries []*Entry,
	progress func(sector int, e *Entry)) ([]byte, error) {

	sector := first

	for _, e := range entries {

		content := e.Content()

		for ix := 0; ix < e.SectorCount(); ix++ {

			if want := e.StartSector() + ix; sector != want {
				return nil, errors.Wrapf(ErrLayoutDesync,
					"file %s: expected sector %d, at sector %d", e, want, sector)
			}

			from := ix * BytesPerSector
			to := from + BytesPerSector
			if to > len(content) {
				to = len(content)
			}

			s := raw.NewSector()
			if from < to {
				s.Write(content[from:to])
			}
			block, err := s.Close()
			if err != nil {
				return nil, errors.Wrapf(err, "file %s, sector %d", e, sector)
			}

			if progress != nil {
				progress(sector, e)
			}

			buf = append(buf, block...)
			sector++
		}
	}

	return buf, nil
}
