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

package run

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/ssdbuild/pkg/dfs"
	"github.com/xelalexv/ssdbuild/pkg/filespec"
)

//
func NewBuild() *Build {

	b := &Build{}
	b.Runner = *NewRunner(
		`build [-d|--dest {file}] [-t|--title {title}] [-o|--opt {load|run|exec}]
      [-f|--force] [-l|--list] [-x|--dump] [-s|--strict] [-r|--repo {folder}]
      INSPEC ...`,
		"build a DFS .ssd disk image",
		`
Use the build command to create a single sided DFS disk image from a list of
files. Each file is given as an INSPEC of the form

  [DIR.]FILE[:LOADADDR[:EXECADDR]]

where DIR is a one character DFS directory (default $), FILE a host file path or
a repo:// reference, and LOADADDR/EXECADDR are hexadecimal addresses (default 0).
Files are placed on disk in the order given.`,
		"", `- Files that cannot be read are skipped, unless --strict is set.

- A disk holds at most 31 files and 798 sectors of file data.

`+loggingHelp+runnerHelpEpilogue, b.Run)

	b.AddBaseSettings()
	b.AddSetting(&b.Dest, "dest", "d", "SSDBUILD_DEST", "out.ssd",
		".ssd file to write to", false)
	b.AddSetting(&b.Title, "title", "t", "SSDBUILD_TITLE", "XX",
		"disk title (up to 12 characters)", false)
	b.AddSetting(&b.Opt, "opt", "o", "", nil,
		"boot option, 'load', 'run', or 'exec'", false)
	b.AddSetting(&b.Force, "force", "f", "", false,
		"force overwriting destination file", false)
	b.AddSetting(&b.List, "list", "l", "", false,
		"list catalog of the new disk", false)
	b.AddSetting(&b.Dump, "dump", "x", "", false,
		"output hex dump of the new disk", false)
	b.AddSetting(&b.Strict, "strict", "s", "", false,
		"fail when a file cannot be read", false)

	return b
}

//
type Build struct {
	//
	Runner
	//
	Dest   string
	Title  string
	Opt    string
	Force  bool
	List   bool
	Dump   bool
	Strict bool
}

//
func (b *Build) Run() error {

	if err := b.ParseSettings(); err != nil {
		return err
	}

	opt, err := dfs.ParseBootOption(b.Opt)
	if err != nil {
		return err
	}

	if len(b.Title) > dfs.TitleLength {
		log.Warnf("title '%s' is longer than %d characters, truncating",
			b.Title, dfs.TitleLength)
	}

	files, err := b.loadFiles()
	if err != nil {
		return err
	}

	builder := dfs.NewBuilder(b.Title, opt)
	builder.Progress = func(sector int, e *dfs.Entry) {
		log.Tracef("sector %03d (track %02d): %s", sector,
			sector/dfs.SectorsPerTrack, e)
	}

	img, err := builder.Build(files)
	if err != nil {
		return err
	}

	if !b.Force {
		if _, err := os.Stat(b.Dest); err == nil &&
			!GetUserConfirmation("File exists, overwrite?") {
			return nil
		}
	}

	if err := writeImage(img, b.Dest); err != nil {
		return err
	}

	if b.List {
		img.List(os.Stdout)
	}
	if b.Dump {
		img.Emit(os.Stdout)
		fmt.Println()
	}

	fmt.Printf("%d files, %d sectors written to %s\n",
		len(img.Entries()), img.SectorsUsed(), b.Dest)
	return nil
}

//
func (b *Build) loadFiles() ([]*dfs.File, error) {

	var files []*dfs.File

	for _, arg := range b.Args {

		spec, err := filespec.Parse(arg)
		if err != nil {
			return nil, err
		}

		f, err := spec.Load(b.Repository)
		if err != nil {
			if b.Strict {
				return nil, err
			}
			log.Errorf("skipping %s: %v", arg, err)
			continue
		}

		files = append(files, f)
	}

	return files, nil
}

//
func writeImage(img *dfs.Image, file string) error {

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(f)
	if _, err := img.WriteTo(out); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", file)
	}

	if err := out.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", file)
	}

	return f.Close()
}
