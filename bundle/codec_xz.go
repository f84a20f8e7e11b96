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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

func init() {
	RegisterCodec("xz", func() Codec { return xzCodec{} })
}

// xzCodec decompresses "xz"-tagged bundle entries: raw LZMA data with no
// header, the same way CHD's LZMA codec treats hunk data, except the
// decompressed size comes straight from len(dst) rather than a hunk-size
// field, so there is no MAME property byte to reconstruct from.
type xzCodec struct{}

// lzmaDictSize picks a dictionary size large enough to hold decompLen,
// rounded up the way lzma's own encoder normalizes its properties.
func lzmaDictSize(decompLen int) uint32 {
	size := uint32(decompLen) //nolint:gosec // decompLen is bounded by caller-provided dst
	for i := uint32(11); i <= 30; i++ {
		if size <= (2 << i) {
			return 2 << i
		}
		if size <= (3 << i) {
			return 3 << i
		}
	}
	return 1 << 26
}

func (xzCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: xz: empty source", ErrDecompressFailed)
	}

	// Properties byte: lc=3, lp=0, pb=2 -> 3 + 0*9 + 2*45 = 93 = 0x5D.
	const propsLcLpPb = 0x5D

	header := make([]byte, 13)
	header[0] = propsLcLpPb
	binary.LittleEndian.PutUint32(header[1:5], lzmaDictSize(len(dst)))
	binary.LittleEndian.PutUint64(header[5:13], uint64(len(dst)))

	full := make([]byte, 0, 13+len(src))
	full = append(full, header...)
	full = append(full, src...)

	reader, err := lzma.NewReader(bytes.NewReader(full))
	if err != nil {
		return 0, fmt.Errorf("%w: xz init: %w", ErrDecompressFailed, err)
	}

	n, err := io.ReadFull(reader, dst)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, fmt.Errorf("%w: xz read: %w", ErrDecompressFailed, err)
	}
	return n, nil
}
