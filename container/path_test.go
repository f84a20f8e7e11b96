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

package container_test

import (
	"testing"

	"github.com/lyrositor/bastionmod-codec/container"
)

func TestParsePathSplitsOnSeparator(t *testing.T) {
	t.Parallel()

	p, ok := container.ParsePath("game.zip!assets/texture.xnb")
	if !ok {
		t.Fatal("ParsePath() ok = false, want true")
	}
	if p.ArchivePath != "game.zip" || p.InternalPath != "assets/texture.xnb" {
		t.Fatalf("ParsePath() = %+v, want {game.zip assets/texture.xnb}", p)
	}
}

func TestParsePathNoSeparator(t *testing.T) {
	t.Parallel()

	if _, ok := container.ParsePath("texture.xnb"); ok {
		t.Fatal("ParsePath() ok = true, want false")
	}
}

func TestIsArchiveExtension(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".zip", ".ZIP", ".7z", ".rar"} {
		if !container.IsArchiveExtension(ext) {
			t.Errorf("IsArchiveExtension(%q) = false, want true", ext)
		}
	}
	if container.IsArchiveExtension(".xnb") {
		t.Error("IsArchiveExtension(\".xnb\") = true, want false")
	}
}
