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

import "errors"

// Allocation limits to prevent DoS from malicious or corrupt frame streams.
const (
	// MaxWindowBits is the largest window exponent this decoder accepts (2MiB window).
	MaxWindowBits = 21

	// MinWindowBits is the smallest window exponent this decoder accepts.
	MinWindowBits = 15

	// MaxFrameSize bounds a single requested frame output size (16MiB).
	MaxFrameSize = 16 * 1024 * 1024
)

// Sentinel errors for LZX decoding failures. All are fatal for the current
// frame; the Decoder that produced one should not be reused.
var (
	// ErrInvalidBlockType indicates a block-type header field outside {1,2,3}.
	ErrInvalidBlockType = errors.New("lzx: invalid block type")

	// ErrOverSubscribedCode indicates Huffman code lengths exceed 1.0 without
	// being the degenerate single-symbol case.
	ErrOverSubscribedCode = errors.New("lzx: over-subscribed huffman code")

	// ErrWindowOverflow indicates a block run would write past the window.
	ErrWindowOverflow = errors.New("lzx: window overflow")

	// ErrInputExhausted indicates an UNCOMPRESSED block read past the supplied input.
	ErrInputExhausted = errors.New("lzx: input exhausted")

	// ErrPostBlockBitDrift indicates the bit reader finished a block more than
	// 2 bytes past the expected boundary, or with fewer than 16 bits buffered.
	ErrPostBlockBitDrift = errors.New("lzx: bit reader drifted past block boundary")

	// ErrShortOutput indicates a frame completed before producing outLen bytes.
	ErrShortOutput = errors.New("lzx: frame produced fewer bytes than requested")

	// ErrInvalidWindowBits indicates a window size outside the supported range.
	ErrInvalidWindowBits = errors.New("lzx: invalid window size")
)
