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
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/ssdbuild/pkg/dfs"
	"github.com/xelalexv/ssdbuild/pkg/repo"
)

/*
	Spec describes a file to put on disk, given as

		[DIR.]FILE[:LOADADDR[:EXECADDR]]

	where DIR is a single character directory, FILE a host file path or a
	repository reference, and the addresses are hexadecimal. The DFS name of
	the file is the base name of FILE.
*/
type Spec struct {
	Directory byte
	File      string
	Name      string
	LoadAddr  uint32
	ExecAddr  uint32
}

//
func Parse(s string) (*Spec, error) {

	ret := &Spec{Directory: dfs.DefaultDir}
	text := s

	if len(s) > 1 && s[1] == '.' {
		ret.Directory = s[0]
		text = s[2:]
	}

	// a repo:// reference carries a colon of its own
	prefix := ""
	if repo.IsReference(text) {
		prefix = repo.PrefixRepoRef
		text = text[len(prefix):]
	}

	args := strings.Split(text, ":")
	if len(args) > 3 {
		return nil, errors.Errorf("invalid file spec '%s': too many fields", s)
	}

	if args[0] == "" {
		return nil, errors.Errorf("invalid file spec '%s': no file", s)
	}

	if prefix != "" {
		ret.Name = path.Base(args[0])
	} else {
		ret.Name = filepath.Base(args[0])
	}
	ret.File = prefix + args[0]

	var err error
	if ret.LoadAddr, err = hexField(args, 1); err != nil {
		return nil, errors.Wrapf(err, "invalid load address in '%s'", s)
	}
	if ret.ExecAddr, err = hexField(args, 2); err != nil {
		return nil, errors.Wrapf(err, "invalid exec address in '%s'", s)
	}

	return ret, nil
}

//
func hexField(args []string, ix int) (uint32, error) {

	if ix >= len(args) {
		return 0, nil
	}

	f := strings.TrimSpace(args[ix])
	for _, prefix := range []string{"&", "$", "0x", "0X"} {
		if strings.HasPrefix(f, prefix) {
			f = f[len(prefix):]
			break
		}
	}
	if f == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(f, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Load reads the content of the file described by this spec.
func (s *Spec) Load(repository string) (*dfs.File, error) {

	data, err := repo.ReadAll(s.File, repository)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"file":   s.File,
		"name":   s.String(),
		"length": len(data),
	}).Debug("file loaded")

	return &dfs.File{
		Directory: s.Directory,
		Name:      s.Name,
		LoadAddr:  s.LoadAddr,
		ExecAddr:  s.ExecAddr,
		Content:   data,
	}, nil
}

//
func (s *Spec) String() string {
	return string([]byte{s.Directory, '.'}) + s.Name
}
