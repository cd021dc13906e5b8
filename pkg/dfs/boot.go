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
	"fmt"
	"strings"
)

// BootOption is the 2-bit start-up option stored in the catalog
type BootOption int

const (
	BootNone BootOption = iota
	BootLoad
	BootRun
	BootExec
)

/*
	ParseBootOption converts an option name into a BootOption. The empty string
	and "none" both select BootNone.
*/
func ParseBootOption(opt string) (BootOption, error) {

	switch strings.ToLower(strings.TrimSpace(opt)) {

	case "", "none":
		return BootNone, nil

	case "load":
		return BootLoad, nil

	case "run":
		return BootRun, nil

	case "exec":
		return BootExec, nil

	default:
		return BootNone, fmt.Errorf(
			"invalid boot option: '%s'; valid options are load, run, exec", opt)
	}
}

//
func (b BootOption) String() string {

	switch b {

	case BootNone:
		return "none"

	case BootLoad:
		return "load"

	case BootRun:
		return "run"

	case BootExec:
		return "exec"

	default:
		return "<unknown>"
	}
}
