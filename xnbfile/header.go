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

// Package xnbfile parses the fixed preamble of an XNB container: just
// enough to hand the remaining bytes to lzx.Decompress with the right
// output length. It does not parse type readers or the asset graph.
package xnbfile

import (
	"encoding/binary"
	"io"
)

const (
	magic          = "XNB"
	compressedFlag = 0x80
)

// Header is the fixed 10- or 14-byte XNB preamble: magic, platform,
// format version, a compression flag, the total file size, and — only
// when the compression flag is set — the decompressed size.
type Header struct {
	Platform         byte
	Version          byte
	Compressed       bool
	FileSize         uint32
	DecompressedSize uint32
}

// ReadHeader reads exactly the XNB preamble from r: 6 bytes of magic,
// platform, version and flags, then a little-endian file size, then —
// only if the compression flag is set — a little-endian decompressed
// size. It does not read or interpret anything past byte 13.
func ReadHeader(r io.Reader) (Header, error) {
	var pre [6]byte
	if _, err := io.ReadFull(r, pre[:]); err != nil {
		return Header{}, ErrTruncatedHeader
	}
	if string(pre[:3]) != magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Platform:   pre[3],
		Version:    pre[4],
		Compressed: pre[5]&compressedFlag != 0,
	}

	var sizeBuf [4]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return Header{}, ErrTruncatedHeader
	}
	h.FileSize = binary.LittleEndian.Uint32(sizeBuf[:])
	if uint64(h.FileSize) > MaxFileSize {
		return Header{}, ErrFileTooLarge
	}

	if h.Compressed {
		var dsize [4]byte
		if _, err := io.ReadFull(r, dsize[:]); err != nil {
			return Header{}, ErrTruncatedHeader
		}
		h.DecompressedSize = binary.LittleEndian.Uint32(dsize[:])
	}

	return h, nil
}
