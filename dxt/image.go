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

package dxt

import "math/bits"

// ToRGBA decodes a DXT1/3/5 payload into a tightly packed RGBA8888 buffer of
// length 4*width*height. version's low bits select the scheme (Scheme1,
// Scheme3, or Scheme5); exactly one must be set. width and height must be
// nonzero multiples of 4.
func ToRGBA(version, width, height uint32, in []byte) ([]byte, error) {
	scheme := version & (Scheme1 | Scheme3 | Scheme5)
	if bits.OnesCount32(scheme) != 1 {
		return nil, ErrInvalidVersion
	}
	if width == 0 || height == 0 || width%4 != 0 || height%4 != 0 {
		return nil, ErrInvalidDimensions
	}
	if uint64(width)*uint64(height) > MaxPixels {
		return nil, ErrInvalidDimensions
	}

	blocksWide := width / 4
	blocksHigh := height / 4
	bsz := blockSize(scheme)
	need := int(blocksWide) * int(blocksHigh) * bsz
	if len(in) < need {
		return nil, ErrTruncatedInput
	}

	rowStride := int(width) * 4
	out := make([]byte, rowStride*int(height))

	blockIdx := 0
	for by := uint32(0); by < blocksHigh; by++ {
		for bx := uint32(0); bx < blocksWide; bx++ {
			block := in[blockIdx*bsz : blockIdx*bsz+bsz]
			blockIdx++
			pixels := decodeBlock(scheme, block)

			baseY := int(by * 4)
			baseX := int(bx * 4)
			for row := 0; row < 4; row++ {
				rowOff := (baseY+row)*rowStride + baseX*4
				for col := 0; col < 4; col++ {
					p := pixels[row*4+col]
					off := rowOff + col*4
					out[off] = p.R
					out[off+1] = p.G
					out[off+2] = p.B
					out[off+3] = p.A
				}
			}
		}
	}

	return out, nil
}
