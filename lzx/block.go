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

// DecodeFrame decompresses one LZX frame of exactly outLen bytes (or returns
// an error), reading its bitstream from the start of in. Frames within
// the same input must be fed to the same Decoder in order — R0/R1/R2 and
// the dynamic trees persist across calls.
func (d *Decoder) DecodeFrame(in []byte, outLen uint32) ([]byte, error) {
	if outLen > MaxFrameSize {
		return nil, ErrShortOutput
	}

	br := newBitReader(in)
	br.init()

	if !d.headerRead {
		if br.read(1) != 0 {
			br.read(16)
			br.read(16)
		}
		d.headerRead = true
	}

	togo := outLen
	for togo > 0 {
		if d.blockRemaining == 0 {
			if err := d.startBlock(br); err != nil {
				return nil, err
			}
		}

		if br.bytePos() > len(in) {
			if br.bytePos() > len(in)+2 || br.bitsLeftCount() < 16 {
				return nil, ErrPostBlockBitDrift
			}
		}

		for d.blockRemaining > 0 && togo > 0 {
			thisRun := d.blockRemaining
			if thisRun > togo {
				thisRun = togo
			}
			togo -= thisRun
			d.blockRemaining -= thisRun

			d.window.mask()
			if d.window.posn+thisRun > d.window.size {
				return nil, ErrWindowOverflow
			}

			var err error
			switch d.blockType {
			case blockVerbatim:
				err = d.decodeRun(br, thisRun, false)
			case blockAligned:
				err = d.decodeRun(br, thisRun, true)
			case blockUncompressed:
				err = d.decodeUncompressedRun(br, thisRun)
			default:
				err = ErrInvalidBlockType
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if togo != 0 {
		return nil, ErrShortOutput
	}

	out := d.window.extract(outLen)
	d.applyIntelE8(out)
	return out, nil
}

// startBlock performs the start-of-block housekeeping: after an
// UNCOMPRESSED block, skipping its odd padding byte and realigning the bit
// reader, then reading the next block's header and dynamic trees.
func (d *Decoder) startBlock(br *bitReader) error {
	if d.blockType == blockUncompressed {
		if d.blockLength&1 == 1 {
			br.skipByte()
		}
		br.init()
	}

	d.blockType = int(br.read(3))
	hi := br.read(16)
	lo := br.read(8)
	d.blockLength = (hi << 8) | lo
	d.blockRemaining = d.blockLength

	switch d.blockType {
	case blockAligned:
		for i := 0; i < alignedMaxSymbols; i++ {
			d.aligned.lengths[i] = byte(br.read(3))
		}
		if err := d.aligned.build(); err != nil {
			return err
		}
		fallthrough

	case blockVerbatim:
		if err := readLengths(d.pretree, d.mainTree.lengths, 0, numChars, br); err != nil {
			return err
		}
		if err := readLengths(d.pretree, d.mainTree.lengths, numChars, d.mainElements, br); err != nil {
			return err
		}
		if err := d.mainTree.build(); err != nil {
			return err
		}
		if d.mainTree.lengths[0xE8] != 0 {
			d.intelStarted = true
		}

		if err := readLengths(d.pretree, d.length.lengths, 0, numSecondaryLengths, br); err != nil {
			return err
		}
		if err := d.length.build(); err != nil {
			return err
		}

	case blockUncompressed:
		d.intelStarted = true
		br.ensure(16)
		if br.bitsLeftCount() > 16 {
			br.rewind(2)
		}
		var words [12]byte
		if err := br.readRaw(words[:]); err != nil {
			return err
		}
		d.r0 = binary.LittleEndian.Uint32(words[0:4])
		d.r1 = binary.LittleEndian.Uint32(words[4:8])
		d.r2 = binary.LittleEndian.Uint32(words[8:12])

	default:
		return ErrInvalidBlockType
	}

	return nil
}

// decodeRun decodes thisRun bytes of a VERBATIM or ALIGNED block's symbol
// stream into the window. The two block types differ only in how offsets
// with slot >= 3 are refined (aligned adds a 3-bit aligned-tree symbol).
func (d *Decoder) decodeRun(br *bitReader, thisRun uint32, aligned bool) error {
	for thisRun > 0 {
		e := d.mainTree.decodeSymbol(br)
		if e < numChars {
			d.window.putLiteral(byte(e))
			thisRun--
			continue
		}

		e -= numChars
		matchLength := uint32(e & numPrimaryLengths)
		if matchLength == numPrimaryLengths {
			matchLength += uint32(d.length.decodeSymbol(br))
		}
		matchLength += minMatch

		slot := uint32(e >> 3)
		offset := d.resolveOffset(br, slot, aligned)

		d.window.copyMatch(matchLength, offset)
		thisRun -= matchLength
	}
	return nil
}

// resolveOffset decodes a match offset for slot and updates R0/R1/R2. Slot
// 0 is a no-op read of R0, slot 1 swaps R0<->R1, slot 2 swaps R0<->R2, and
// slot >= 3 is a full register shift with a freshly decoded offset.
func (d *Decoder) resolveOffset(br *bitReader, slot uint32, aligned bool) uint32 {
	switch slot {
	case 0:
		return d.r0
	case 1:
		offset := d.r1
		d.r1 = d.r0
		d.r0 = offset
		return offset
	case 2:
		offset := d.r2
		d.r2 = d.r0
		d.r0 = offset
		return offset
	}

	var offset uint32
	if aligned {
		offset = d.resolveAlignedOffset(br, slot)
	} else {
		offset = d.resolveVerbatimOffset(br, slot)
	}
	d.r2 = d.r1
	d.r1 = d.r0
	d.r0 = offset
	return offset
}

func (d *Decoder) resolveVerbatimOffset(br *bitReader, slot uint32) uint32 {
	if slot == 3 {
		return 1
	}
	extra := d.extraBits[slot]
	verbatim := br.read(extra)
	return d.positionBase[slot] - 2 + verbatim
}

func (d *Decoder) resolveAlignedOffset(br *bitReader, slot uint32) uint32 {
	extra := d.extraBits[slot]
	offset := d.positionBase[slot] - 2

	switch {
	case extra > 3:
		verbatim := br.read(extra - 3)
		offset += verbatim << 3
		offset += uint32(d.aligned.decodeSymbol(br))
	case extra == 3:
		offset += uint32(d.aligned.decodeSymbol(br))
	case extra > 0:
		offset += br.read(extra)
	default:
		offset = 1
	}
	return offset
}

// decodeUncompressedRun copies thisRun bytes directly from the input
// cursor into the window.
func (d *Decoder) decodeUncompressedRun(br *bitReader, thisRun uint32) error {
	buf := make([]byte, thisRun)
	if err := br.readRaw(buf); err != nil {
		return ErrInputExhausted
	}
	d.window.writeRaw(buf)
	return nil
}
