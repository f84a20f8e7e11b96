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

package bundle

import (
	"fmt"
	"io"

	xbinary "github.com/lyrositor/bastionmod-codec/internal/binary"
)

// magic identifies a bundle file: "BDL1".
const magic = "BDL1"

// Entry describes one codec-tagged payload within a bundle file.
type Entry struct {
	Name             string
	Tag              string
	Offset           uint32
	CompressedSize   uint32
	DecompressedSize uint32
}

// Directory is the parsed entry list of a bundle file.
type Directory struct {
	Entries []Entry
}

// ReadDirectory parses a bundle file's header and directory from r.
//
// Layout:
//
//	bytes 0-3   "BDL1" magic
//	bytes 4-7   little-endian entry count
//	per entry:
//	  bytes 0-1   little-endian name length n
//	  bytes 2-n+1 name (UTF-8)
//	  4 bytes     codec tag, NUL-padded ASCII ("lzx\x00", "zstd", "xz\x00\x00", "none")
//	  4 bytes     little-endian payload offset (from the start of the file)
//	  4 bytes     little-endian compressed size
//	  4 bytes     little-endian decompressed size
func ReadDirectory(r io.ReaderAt) (Directory, error) {
	got, err := xbinary.ReadStringAt(r, 0, 4)
	if err != nil {
		return Directory{}, fmt.Errorf("%w: read magic: %w", ErrBundleCorrupt, err)
	}
	if got != magic {
		return Directory{}, fmt.Errorf("%w: bad magic %q", ErrBundleCorrupt, got)
	}

	count, err := xbinary.ReadUint32LEAt(r, 4)
	if err != nil {
		return Directory{}, fmt.Errorf("%w: read entry count: %w", ErrBundleCorrupt, err)
	}
	if count > MaxEntryCount {
		return Directory{}, fmt.Errorf("%w: entry count %d exceeds limit", ErrBundleCorrupt, count)
	}

	dir := Directory{Entries: make([]Entry, 0, count)}
	offset := int64(8)
	for i := uint32(0); i < count; i++ {
		nameLen, err := xbinary.ReadUint16LEAt(r, offset)
		if err != nil {
			return Directory{}, fmt.Errorf("%w: entry %d: read name length: %w", ErrBundleCorrupt, i, err)
		}
		offset += 2

		name, err := xbinary.ReadStringAt(r, offset, int(nameLen))
		if err != nil {
			return Directory{}, fmt.Errorf("%w: entry %d: read name: %w", ErrBundleCorrupt, i, err)
		}
		offset += int64(nameLen)

		tagBytes, err := xbinary.ReadBytesAt(r, offset, 4)
		if err != nil {
			return Directory{}, fmt.Errorf("%w: entry %d: read tag: %w", ErrBundleCorrupt, i, err)
		}
		offset += 4

		payloadOffset, err := xbinary.ReadUint32LEAt(r, offset)
		if err != nil {
			return Directory{}, fmt.Errorf("%w: entry %d: read offset: %w", ErrBundleCorrupt, i, err)
		}
		offset += 4

		compSize, err := xbinary.ReadUint32LEAt(r, offset)
		if err != nil {
			return Directory{}, fmt.Errorf("%w: entry %d: read compressed size: %w", ErrBundleCorrupt, i, err)
		}
		offset += 4

		decompSize, err := xbinary.ReadUint32LEAt(r, offset)
		if err != nil {
			return Directory{}, fmt.Errorf("%w: entry %d: read decompressed size: %w", ErrBundleCorrupt, i, err)
		}
		offset += 4

		dir.Entries = append(dir.Entries, Entry{
			Name:             name,
			Tag:              xbinary.CleanString(tagBytes),
			Offset:           payloadOffset,
			CompressedSize:   compSize,
			DecompressedSize: decompSize,
		})
	}

	return dir, nil
}

// Extract reads e's compressed payload from r and decompresses it.
func Extract(r io.ReaderAt, e Entry) ([]byte, error) {
	src, err := xbinary.ReadBytesAt(r, int64(e.Offset), int(e.CompressedSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read payload: %w", ErrBundleCorrupt, e.Name, err)
	}

	dst := make([]byte, e.DecompressedSize)
	n, err := Decompress(e.Tag, dst, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	return dst[:n], nil
}
