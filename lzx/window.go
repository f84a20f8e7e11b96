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

// slidingWindow is the circular history buffer matches and literals are
// written into. It is pre-filled with 0xDC rather than zero, a deliberate
// marker so reads from untouched regions are visible as a bug indicator
// rather than silently looking like valid decompressed zero bytes.
type slidingWindow struct {
	buf  []byte
	size uint32
	posn uint32
}

func newSlidingWindow(bits int) *slidingWindow {
	size := uint32(1) << uint(bits)
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0xDC
	}
	return &slidingWindow{buf: buf, size: size}
}

// mask wraps posn back into [0, size).
func (w *slidingWindow) mask() {
	w.posn &= w.size - 1
}

func (w *slidingWindow) putLiteral(b byte) {
	w.buf[w.posn] = b
	w.posn++
}

// writeRaw copies data directly into the window at posn, for UNCOMPRESSED
// blocks.
func (w *slidingWindow) writeRaw(data []byte) {
	copy(w.buf[w.posn:], data)
	w.posn += uint32(len(data))
}

// copyMatch copies length bytes from offset bytes behind posn to posn,
// handling the case where the source range wraps across the window's end.
// The caller is responsible for having verified posn+length <= size.
func (w *slidingWindow) copyMatch(length, offset uint32) {
	dest := w.posn
	var src uint32
	remaining := length

	if w.posn >= offset {
		src = dest - offset
	} else {
		src = dest + (w.size - offset)
		copyLen := offset - w.posn
		if copyLen < length {
			for i := uint32(0); i < copyLen; i++ {
				w.buf[dest] = w.buf[src]
				dest++
				src++
			}
			remaining -= copyLen
			src = 0
		}
	}

	for i := uint32(0); i < remaining; i++ {
		w.buf[dest] = w.buf[src]
		dest++
		src++
	}
	w.posn += length
}

// extract returns the last outLen bytes written to the window, i.e. the
// bytes this frame produced.
func (w *slidingWindow) extract(outLen uint32) []byte {
	start := w.posn
	if start == 0 {
		start = w.size
	}
	start -= outLen
	out := make([]byte, outLen)
	copy(out, w.buf[start:start+outLen])
	return out
}
