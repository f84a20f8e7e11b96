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

package lzx

import "encoding/binary"

// defaultFrameSize is the output size of a frame whose chunk header omits
// an explicit frame size (the short form), and what XNB callers always use.
const defaultFrameSize = 0x8000

// intelE8Cutoff bounds how many frames get the E8 post-pass: the reference
// decoder stops translating after this many frames regardless of
// intel_filesize.
const intelE8Cutoff = 32768

// SetIntelFilesize enables the Intel E8 call-translation post-pass with the
// given executable size. XNB's chunk header never conveys this value (the
// bits are read and discarded in DecodeFrame), so it defaults to 0 — the
// pass is a no-op unless a caller opts in explicitly.
func (d *Decoder) SetIntelFilesize(size int32) {
	d.intelFilesize = size
}

// applyIntelE8 rewrites CALL-instruction displacements in out in place, for
// 0xE8 bytes followed by a 4-byte little-endian absolute target that falls
// within [-curpos, filesize). Runs only while frames_read < intelE8Cutoff
// and intel_filesize != 0.
func (d *Decoder) applyIntelE8(out []byte) {
	defer func() {
		d.framesRead++
		d.intelCurpos += int32(len(out))
	}()

	if d.framesRead >= intelE8Cutoff || d.intelFilesize == 0 {
		return
	}

	limit := len(out) - 11
	for p := 0; p <= limit; p++ {
		if out[p] != 0xE8 {
			continue
		}
		abs := int32(binary.LittleEndian.Uint32(out[p+1 : p+5]))
		if abs >= -d.intelCurpos && abs < d.intelFilesize {
			var rel int32
			if abs >= 0 {
				rel = abs - d.intelCurpos
			} else {
				rel = abs + d.intelFilesize
			}
			binary.LittleEndian.PutUint32(out[p+1:p+5], uint32(rel))
		}
		p += 4
	}
}

// Decompress decodes a chunk-framed LZX byte stream (the XNB wire format)
// into outLen bytes: concatenated frames, each 0x8000 bytes unless its
// header says otherwise, decompressed over a W=15 window, each preceded by
// a 2- or 5-byte chunk header.
//
// Long-form headers (5 bytes) begin with 0xFF followed by a big-endian
// frame size and a big-endian block size; short-form headers (2 bytes) are
// just a big-endian block size, with the frame size defaulting to 0x8000.
// A zero frame or block size ends the stream.
func Decompress(outLen uint32, in []byte) ([]byte, error) {
	d, err := NewDecoder(MinWindowBits)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, outLen)
	pos := 0

	for pos < len(in) {
		frameSize := uint32(defaultFrameSize)
		var blockSize uint32

		if in[pos] == 0xFF {
			if pos+5 > len(in) {
				return nil, ErrInputExhausted
			}
			frameSize = uint32(in[pos+1])<<8 | uint32(in[pos+2])
			blockSize = uint32(in[pos+3])<<8 | uint32(in[pos+4])
			pos += 5
		} else {
			if pos+2 > len(in) {
				return nil, ErrInputExhausted
			}
			blockSize = uint32(in[pos])<<8 | uint32(in[pos+1])
			pos += 2
		}

		if frameSize == 0 || blockSize == 0 {
			break
		}
		if uint32(pos)+blockSize > uint32(len(in)) {
			return nil, ErrInputExhausted
		}

		frame, err := d.DecodeFrame(in[pos:pos+int(blockSize)], frameSize)
		if err != nil {
			return nil, err
		}
		out = append(out, frame...)
		pos += int(blockSize)

		if uint32(len(out)) >= outLen {
			break
		}
	}

	if uint32(len(out)) < outLen {
		return nil, ErrShortOutput
	}
	return out[:outLen], nil
}
