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

/*
	BitPack4 packs four 2-bit values into one byte, p3 occupying the most
	significant pair and p0 the least significant one. Bits above the lowest
	two of each value are discarded.
*/
func BitPack4(p3, p2, p1, p0 int) byte {
	return byte((p3&3)<<6 | (p2&3)<<4 | (p1&3)<<2 | p0&3)
}

// BitUnpack4 is the inverse of BitPack4.
func BitUnpack4(b byte) (p3, p2, p1, p0 int) {
	return int(b>>6) & 3, int(b>>4) & 3, int(b>>2) & 3, int(b) & 3
}
