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

package control

import (
	"fmt"
)

// BuildRequest is the body of an image build request
type BuildRequest struct {
	Title string        `json:"title"`
	Boot  string        `json:"boot"`
	Files []FileRequest `json:"files"`
}

/*
	FileRequest describes one file of a build request. Spec follows the
	[DIR.]FILE[:LOADADDR[:EXECADDR]] form. Content is taken from Data when
	present, otherwise the FILE part of Spec needs to be a repo:// reference.
*/
type FileRequest struct {
	Spec string `json:"spec"`
	Data []byte `json:"data,omitempty"`
}

//
type Status struct {
	Version         string `json:"version"`
	BytesPerSector  int    `json:"bytesPerSector"`
	SectorsPerTrack int    `json:"sectorsPerTrack"`
	Tracks          int    `json:"tracks"`
	MaxFiles        int    `json:"maxFiles"`
	Repository      bool   `json:"repository"`
}

//
func (s *Status) String() string {
	repo := "disabled"
	if s.Repository {
		repo = "enabled"
	}
	return fmt.Sprintf(
		"\nSSDBuild %s\n\n%d tracks, %d sectors per track, %d bytes per sector\n"+
			"up to %d files per disk\nrepository %s\n",
		s.Version, s.Tracks, s.SectorsPerTrack, s.BytesPerSector, s.MaxFiles,
		repo)
}
