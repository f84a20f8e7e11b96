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
	"archive/zip"
	"fmt"
	"io"
)

// zipArchive provides access to members of a ZIP archive. Member lookup
// is served from an index built once at open time, keyed by a
// normalized path, rather than rescanning reader.File per Open call.
type zipArchive struct {
	reader *zip.ReadCloser
	path   string
	index  map[string]*zip.File
}

func openZIP(path string) (*zipArchive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open ZIP archive: %w", err)
	}

	index := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		index[normalizeMemberPath(file.Name)] = file
	}

	return &zipArchive{reader: reader, path: path, index: index}, nil
}

func (za *zipArchive) List() ([]Entry, error) {
	entries := make([]Entry, 0, len(za.index))
	for _, file := range za.index {
		entries = append(entries, Entry{
			Name: file.Name,
			Size: int64(file.UncompressedSize64), //nolint:gosec // member sizes don't exceed int64
		})
	}
	return entries, nil
}

func (za *zipArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	file, ok := za.index[normalizeMemberPath(internalPath)]
	if !ok {
		return nil, 0, EntryNotFoundError{Archive: za.path, InternalPath: internalPath}
	}
	reader, err := file.Open()
	if err != nil {
		return nil, 0, fmt.Errorf("open member in ZIP: %w", err)
	}
	return reader, int64(file.UncompressedSize64), nil //nolint:gosec // member sizes don't exceed int64
}

func (za *zipArchive) Close() error {
	return za.reader.Close() //nolint:wrapcheck // Close error passthrough is intentional
}
