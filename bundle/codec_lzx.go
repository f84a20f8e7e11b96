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

	"github.com/lyrositor/bastionmod-codec/lzx"
)

func init() {
	RegisterCodec("lzx", func() Codec { return lzxCodec{} })
}

// lzxCodec adapts lzx.Decompress to the bundle Codec interface. Each call
// gets its own fresh decoder, matching lzx.Decompress's own contract that a
// decoder is not reused across independent frame streams.
type lzxCodec struct{}

func (lzxCodec) Decompress(dst, src []byte) (int, error) {
	out, err := lzx.Decompress(uint32(len(dst)), src) //nolint:gosec // len(dst) bounded by caller
	if err != nil {
		return 0, fmt.Errorf("%w: lzx: %w", ErrDecompressFailed, err)
	}
	if len(out) > len(dst) {
		return 0, fmt.Errorf("%w: lzx: output too large", ErrDecompressFailed)
	}
	return copy(dst, out), nil
}
