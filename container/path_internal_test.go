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

import "testing"

func TestNormalizeMemberPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "assets/texture.xnb", "assets/texture.xnb"},
		{"windows separators", `assets\textures\Foo.xnb`, "assets/textures/foo.xnb"},
		{"mixed case", "Assets/Textures/Foo.XNB", "assets/textures/foo.xnb"},
		{"mixed separators", `Assets\Textures/Foo.xnb`, "assets/textures/foo.xnb"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeMemberPath(testCase.input); got != testCase.want {
				t.Errorf("normalizeMemberPath(%q) = %q, want %q", testCase.input, got, testCase.want)
			}
		})
	}
}
