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

import (
	"encoding/binary"
	"image/color"
)

// Scheme bit flags, matching the version field's layout: exactly one must
// be set.
const (
	Scheme1 uint32 = 1 << iota // DXT1 (BC1): 8 bytes/block, 1-bit punch-through alpha
	Scheme3                    // DXT3 (BC2): 16 bytes/block, explicit 4-bit alpha
	Scheme5                    // DXT5 (BC3): 16 bytes/block, interpolated 3-bit alpha
)

func blockSize(scheme uint32) int {
	if scheme == Scheme1 {
		return 8
	}
	return 16
}

// decode565 expands a 16-bit RGB565 value into 8-bit-per-channel RGB by
// replicating the high bits into the low bits of each channel.
func decode565(v uint16) (r, g, b uint8) {
	r5 := uint8(v >> 11 & 0x1F)
	g6 := uint8(v >> 5 & 0x3F)
	b5 := uint8(v & 0x1F)
	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return
}

func lerp3(a, b uint8) uint8 {
	return uint8((2*uint16(a) + uint16(b)) / 3)
}

func avg2(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) / 2)
}

// colorPalette builds the 4-entry color table for one block's color
// sub-block (the 8 bytes shared by all three schemes: two RGB565 endpoints
// plus 32 bits of 2-bit indices). DXT1 alone picks the 3-color + transparent
// variant when c0 <= c1; DXT3/5 always use the 4-color interpolation, their
// alpha carried separately.
func colorPalette(scheme uint32, raw0, raw1 uint16) (pal [4]color.RGBA) {
	r0, g0, b0 := decode565(raw0)
	r1, g1, b1 := decode565(raw1)
	pal[0] = color.RGBA{R: r0, G: g0, B: b0, A: 255}
	pal[1] = color.RGBA{R: r1, G: g1, B: b1, A: 255}

	if scheme == Scheme1 && raw0 <= raw1 {
		pal[2] = color.RGBA{
			R: avg2(r0, r1), G: avg2(g0, g1), B: avg2(b0, b1), A: 255,
		}
		pal[3] = color.RGBA{} // transparent black
		return
	}

	pal[2] = color.RGBA{R: lerp3(r0, r1), G: lerp3(g0, g1), B: lerp3(b0, b1), A: 255}
	pal[3] = color.RGBA{R: lerp3(r1, r0), G: lerp3(g1, g0), B: lerp3(b1, b0), A: 255}
	return
}

// dxt5AlphaPalette builds the 8-entry alpha table for a DXT5 block's alpha
// sub-block, per the standard BC3 interpolation rules.
func dxt5AlphaPalette(a0, a1 uint8) (pal [8]uint8) {
	pal[0], pal[1] = a0, a1
	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			pal[1+i] = uint8((uint16(7-i)*uint16(a0) + uint16(i)*uint16(a1)) / 7)
		}
		return
	}
	for i := 1; i <= 4; i++ {
		pal[1+i] = uint8((uint16(5-i)*uint16(a0) + uint16(i)*uint16(a1)) / 5)
	}
	pal[6] = 0
	pal[7] = 255
	return
}

// decodeBlock decodes one 4x4 compressed block into 16 RGBA pixels in
// row-major order (pixel index = row*4+col). in must hold exactly
// blockSize(scheme) bytes: the color sub-block is read from its last 8.
func decodeBlock(scheme uint32, in []byte) [16]color.RGBA {
	var out [16]color.RGBA

	colorBlock := in[len(in)-8:]
	raw0 := binary.LittleEndian.Uint16(colorBlock[0:2])
	raw1 := binary.LittleEndian.Uint16(colorBlock[2:4])
	indexBits := binary.LittleEndian.Uint32(colorBlock[4:8])
	pal := colorPalette(scheme, raw0, raw1)

	for i := range out {
		idx := indexBits >> uint(2*i) & 0x3
		out[i] = pal[idx]
	}

	switch scheme {
	case Scheme3:
		for row := 0; row < 4; row++ {
			word := binary.LittleEndian.Uint16(in[2*row : 2*row+2])
			for col := 0; col < 4; col++ {
				nibble := uint8(word>>uint(4*col)) & 0xF
				out[row*4+col].A = nibble * 17
			}
		}
	case Scheme5:
		a0, a1 := in[0], in[1]
		alphaPal := dxt5AlphaPalette(a0, a1)
		var bits uint64
		for i := 0; i < 6; i++ {
			bits |= uint64(in[2+i]) << uint(8*i)
		}
		for i := range out {
			idx := bits >> uint(3*i) & 0x7
			out[i].A = alphaPal[idx]
		}
	}

	return out
}
