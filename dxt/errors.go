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

import "errors"

// MaxPixels bounds width*height to prevent DoS from a malicious header.
const MaxPixels = 1 << 26 // 64 Mpixels, 256MiB RGBA output

// Sentinel errors for DXT decoding failures.
var (
	// ErrInvalidVersion indicates the version field selects zero or more
	// than one of the DXT1/3/5 scheme bits.
	ErrInvalidVersion = errors.New("dxt: version selects zero or multiple schemes")

	// ErrInvalidDimensions indicates width or height is zero or not a
	// multiple of 4.
	ErrInvalidDimensions = errors.New("dxt: width and height must be nonzero multiples of 4")

	// ErrTruncatedInput indicates fewer input bytes than width*height/16
	// blocks require.
	ErrTruncatedInput = errors.New("dxt: input shorter than the block grid requires")
)
