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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/xelalexv/ssdbuild/pkg/dfs"
	"github.com/xelalexv/ssdbuild/pkg/filespec"
	"github.com/xelalexv/ssdbuild/pkg/repo"
)

//
func (a *api) build(w http.ResponseWriter, req *http.Request) {

	var br BuildRequest
	dec := json.NewDecoder(io.LimitReader(req.Body, maxRequestSize))
	if handleError(dec.Decode(&br), http.StatusBadRequest, w) {
		return
	}
	if handleError(req.Body.Close(), http.StatusInternalServerError, w) {
		return
	}

	opt, err := dfs.ParseBootOption(br.Boot)
	if handleError(err, http.StatusBadRequest, w) {
		return
	}

	files := make([]*dfs.File, 0, len(br.Files))

	for _, fr := range br.Files {
		f, status, err := a.resolveFile(fr)
		if handleError(err, status, w) {
			return
		}
		files = append(files, f)
	}

	img, err := dfs.NewBuilder(br.Title, opt).Build(files)
	if handleError(errors.Wrap(err, "cannot build image"),
		http.StatusUnprocessableEntity, w) {
		return
	}

	if isFlagSet(req, "list") {
		var buf bytes.Buffer
		img.List(&buf)
		sendReply(buf.Bytes(), http.StatusOK, w)
		return
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s\"", imageFileName(br.Title)))
	sendStreamReply(bytes.NewReader(img.Bytes()), http.StatusOK, w)
}

// resolveFile returns the file for fr, or on error the HTTP status to reply
func (a *api) resolveFile(fr FileRequest) (*dfs.File, int, error) {

	spec, err := filespec.Parse(fr.Spec)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	if fr.Data != nil {
		return &dfs.File{
			Directory: spec.Directory,
			Name:      spec.Name,
			LoadAddr:  spec.LoadAddr,
			ExecAddr:  spec.ExecAddr,
			Content:   fr.Data,
		}, http.StatusOK, nil
	}

	// never open host files on behalf of a remote client
	if !repo.IsReference(spec.File) {
		return nil, http.StatusBadRequest, errors.Errorf(
			"file %s: no data given and not a repository reference", spec)
	}

	f, err := spec.Load(a.repository)
	if err != nil {
		return nil, http.StatusNotAcceptable, err
	}
	return f, http.StatusOK, nil
}

//
func imageFileName(title string) string {
	name := make([]byte, 0, len(title))
	for _, c := range []byte(title) {
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
			('0' <= c && c <= '9') || c == '-' || c == '_' {
			name = append(name, c)
		}
	}
	if len(name) == 0 {
		return "disk.ssd"
	}
	return string(name) + ".ssd"
}
