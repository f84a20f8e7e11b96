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

package xnbfile

import "errors"

// MaxFileSize bounds the header's declared file size (4 GiB), rejecting an
// absurd value before it's used to size a read buffer.
const MaxFileSize = 1 << 32

// Sentinel errors for XNB preamble parsing.
var (
	// ErrBadMagic indicates the first 3 bytes are not "XNB".
	ErrBadMagic = errors.New("xnbfile: bad magic")

	// ErrTruncatedHeader indicates fewer bytes than the preamble requires.
	ErrTruncatedHeader = errors.New("xnbfile: truncated header")

	// ErrFileTooLarge indicates the declared file size exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("xnbfile: declared file size too large")
)
