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

import "errors"

// MaxEntryCount bounds how many entries a bundle directory may declare,
// preventing a corrupt or hostile entry count from driving a huge allocation.
const MaxEntryCount = 1 << 20

// Sentinel errors for bundle parsing and codec dispatch.
var (
	// ErrUnknownCodec indicates a bundle entry names a codec tag with no
	// registered factory.
	ErrUnknownCodec = errors.New("unknown bundle codec tag")

	// ErrBundleCorrupt indicates the bundle directory failed to parse.
	ErrBundleCorrupt = errors.New("corrupt bundle directory")

	// ErrDecompressFailed indicates a codec's Decompress call failed.
	ErrDecompressFailed = errors.New("decompression failed")
)
