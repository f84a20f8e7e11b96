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

import "fmt"

func init() {
	RegisterCodec("none", func() Codec { return noneCodec{} })
}

// noneCodec passes uncompressed entries through unchanged.
type noneCodec struct{}

func (noneCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, fmt.Errorf("%w: none: source larger than destination", ErrDecompressFailed)
	}
	return copy(dst, src), nil
}
