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

package raw

import (
	"github.com/pkg/errors"
)

// SectorSize is the number of bytes in a sector
const SectorSize = 256

// ErrSectorOverflow signals that more bytes were written to a sector than it
// can hold.
var ErrSectorOverflow = errors.New("too many bytes in sector")

/*
	Sector accumulates the bytes of exactly one sector. The first write that
	would push the sector past SectorSize records ErrSectorOverflow; any writes
	after that are ignored, and the error is returned by Close.
*/
type Sector struct {
	data    [SectorSize]byte
	written int
	err     error
}

//
func NewSector() *Sector {
	return &Sector{}
}

// Write appends data to the sector.
func (s *Sector) Write(data []byte) {
	if s.err != nil {
		return
	}
	if s.written+len(data) > SectorSize {
		s.err = errors.Wrapf(ErrSectorOverflow,
			"%d bytes written, cannot add %d more", s.written, len(data))
		return
	}
	s.written += copy(s.data[s.written:], data)
}

//
func (s *Sector) Byte(b byte) {
	s.Write([]byte{b})
}

// Word appends the lower 16 bits of w, little endian.
func (s *Sector) Word(w int) {
	s.Write([]byte{byte(w & 0xff), byte((w >> 8) & 0xff)})
}

/*
	String appends str, truncated or right-padded with pad to exactly width
	bytes.
*/
func (s *Sector) String(width int, str string, pad byte) {
	field := make([]byte, width)
	n := copy(field, str)
	for ix := n; ix < width; ix++ {
		field[ix] = pad
	}
	s.Write(field)
}

// BitPairs appends the byte produced by BitPack4 for the given pairs.
func (s *Sector) BitPairs(p3, p2, p1, p0 int) {
	s.Byte(BitPack4(p3, p2, p1, p0))
}

//
func (s *Sector) Written() int {
	return s.written
}

//
func (s *Sector) Err() error {
	return s.err
}

/*
	Close zero-pads the remainder of the sector and returns the completed
	block, which is always SectorSize bytes long. If any write overflowed the
	sector, the overflow error is returned instead.
*/
func (s *Sector) Close() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	// unwritten part of data is still zero
	s.written = SectorSize
	ret := make([]byte, SectorSize)
	copy(ret, s.data[:])
	return ret, nil
}
