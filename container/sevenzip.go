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
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
)

// sevenZipArchive provides access to members of a 7z archive. Member
// lookup is served from an index built once at open time, keyed by a
// normalized path, rather than rescanning reader.File per Open call.
type sevenZipArchive struct {
	reader *sevenzip.ReadCloser
	path   string
	index  map[string]*sevenzip.File
}

func openSevenZip(path string) (*sevenZipArchive, error) {
	reader, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open 7z archive: %w", err)
	}

	index := make(map[string]*sevenzip.File, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		index[normalizeMemberPath(file.Name)] = file
	}

	return &sevenZipArchive{reader: reader, path: path, index: index}, nil
}

func (sza *sevenZipArchive) List() ([]Entry, error) {
	entries := make([]Entry, 0, len(sza.index))
	for _, file := range sza.index {
		entries = append(entries, Entry{
			Name: file.Name,
			Size: int64(file.UncompressedSize), //nolint:gosec // member sizes don't exceed int64
		})
	}
	return entries, nil
}

func (sza *sevenZipArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	file, ok := sza.index[normalizeMemberPath(internalPath)]
	if !ok {
		return nil, 0, EntryNotFoundError{Archive: sza.path, InternalPath: internalPath}
	}
	reader, err := file.Open()
	if err != nil {
		return nil, 0, fmt.Errorf("open member in 7z: %w", err)
	}
	return reader, int64(file.UncompressedSize), nil //nolint:gosec // member sizes don't exceed int64
}

func (sza *sevenZipArchive) Close() error {
	return sza.reader.Close() //nolint:wrapcheck // Close error passthrough is intentional
}
