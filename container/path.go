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

package container

import "strings"

// MemberSeparator splits an archive path from an internal member path, e.g.
// "game.zip!assets/texture.xnb".
const MemberSeparator = "!"

// Path is a parsed "archive!member" reference.
type Path struct {
	ArchivePath  string
	InternalPath string
}

// ParsePath splits path on MemberSeparator. It returns ok=false if path
// contains no separator, in which case the caller should treat path as a
// bare file rather than an archive member.
func ParsePath(path string) (p Path, ok bool) {
	idx := strings.Index(path, MemberSeparator)
	if idx < 0 {
		return Path{}, false
	}
	return Path{
		ArchivePath:  path[:idx],
		InternalPath: path[idx+len(MemberSeparator):],
	}, true
}

// normalizeMemberPath canonicalizes an archive member path for lookup.
// XNA/XNB content is routinely packaged on Windows, so member names may
// carry literal backslash separators regardless of the OS extracting
// them later; filepath.ToSlash only converts the host's own separator
// and is a no-op for backslashes on Linux or macOS, so it cannot be
// used here. Lookups are also case-insensitive, matching the teacher's
// strings.EqualFold comparisons.
func normalizeMemberPath(p string) string {
	return strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
}
