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

package main

import (
	"fmt"
	"os"

	"github.com/xelalexv/ssdbuild/pkg/run"
)

//
var SSDBuildVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: ssdctl {build|serve|version} ...

run 'ssdctl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nSSDBuild %s\n\n", SSDBuildVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	run.Version = SSDBuildVersion

	switch action {

	case "build":
		run.DieOnError(run.NewBuild().Execute(args))

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
