// Copyright (c) 2025 The bastionmod-codec Authors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of bastionmod-codec.
//
// bastionmod-codec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bastionmod-codec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bastionmod-codec.  If not, see <https://www.gnu.org/licenses/>.

package container

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode/v2"
)

// rarArchive provides access to members of a RAR archive. RAR only
// supports sequential reading, so reaching a member's data still
// requires walking the stream from the start. known caches the member
// names and sizes seen by the most recent full scan (from List, or a
// prior Open that walked to the end), so a lookup for a name outside that set can return
// EntryNotFoundError without paying for a rardecode.Reader walk.
type rarArchive struct {
	file  *os.File
	path  string
	known map[string]int64
}

func openRAR(path string) (*rarArchive, error) {
	file, err := os.Open(path) //nolint:gosec // caller-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("open RAR archive: %w", err)
	}
	return &rarArchive{file: file, path: path}, nil
}

func (ra *rarArchive) rescan() ([]Entry, error) {
	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek RAR archive: %w", err)
	}
	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, fmt.Errorf("create RAR reader: %w", err)
	}

	known := make(map[string]int64)
	var entries []Entry //nolint:prealloc // RAR member count unknown until full scan
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read RAR header: %w", err)
		}
		if header.IsDir {
			continue
		}
		known[normalizeMemberPath(header.Name)] = header.UnPackedSize
		entries = append(entries, Entry{Name: header.Name, Size: header.UnPackedSize})
	}
	ra.known = known
	return entries, nil
}

func (ra *rarArchive) List() ([]Entry, error) {
	return ra.rescan()
}

func (ra *rarArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	key := normalizeMemberPath(internalPath)

	if ra.known != nil {
		if _, present := ra.known[key]; !present {
			return nil, 0, EntryNotFoundError{Archive: ra.path, InternalPath: internalPath}
		}
	}

	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek RAR archive: %w", err)
	}
	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, 0, fmt.Errorf("create RAR reader: %w", err)
	}

	known := make(map[string]int64)
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read RAR header: %w", err)
		}
		if header.IsDir {
			continue
		}
		headerKey := normalizeMemberPath(header.Name)
		known[headerKey] = header.UnPackedSize
		if headerKey == key {
			return &rarMemberReader{reader: reader}, header.UnPackedSize, nil
		}
	}

	ra.known = known
	return nil, 0, EntryNotFoundError{Archive: ra.path, InternalPath: internalPath}
}

func (ra *rarArchive) Close() error {
	return ra.file.Close() //nolint:wrapcheck // Close error passthrough is intentional
}

// rarMemberReader wraps a rardecode reader to provide io.ReadCloser.
type rarMemberReader struct {
	reader *rardecode.Reader
}

func (rr *rarMemberReader) Read(p []byte) (int, error) {
	return rr.reader.Read(p) //nolint:wrapcheck // Read error passthrough is intentional
}

func (*rarMemberReader) Close() error {
	return nil
}
