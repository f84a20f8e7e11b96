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
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lyrositor/bastionmod-codec/container"
)

func writeTestZIP(t *testing.T, members map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.zip")
	f, err := os.Create(path) //nolint:gosec // test fixture in t.TempDir
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	for name, data := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %q: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("zip write %q: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return path
}

func TestZIPArchiveListAndOpen(t *testing.T) {
	t.Parallel()

	path := writeTestZIP(t, map[string][]byte{
		"assets/texture.xnb": []byte("XNB payload"),
		"assets/sound.xnb":   []byte("more payload"),
	})

	arc, err := container.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = arc.Close() }()

	entries, err := arc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	r, size, err := arc.Open("assets/texture.xnb")
	if err != nil {
		t.Fatalf("Open(member): %v", err)
	}
	defer func() { _ = r.Close() }()

	got := make([]byte, size)
	if _, err := io.ReadFull(r, got); err != nil {
		t.Fatalf("read member: %v", err)
	}
	if !bytes.Equal(got, []byte("XNB payload")) {
		t.Fatalf("member contents = %q, want %q", got, "XNB payload")
	}
}

func TestZIPArchiveOpenNormalizesWindowsMemberPath(t *testing.T) {
	t.Parallel()

	// Archives built by Windows-based XNA tooling can carry literal
	// backslash separators in member names regardless of the host OS
	// later extracting them.
	path := writeTestZIP(t, map[string][]byte{
		`Assets\Textures\Foo.xnb`: []byte("XNB payload"),
	})

	arc, err := container.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = arc.Close() }()

	r, _, err := arc.Open("assets/textures/foo.xnb")
	if err != nil {
		t.Fatalf("Open(member): %v", err)
	}
	defer func() { _ = r.Close() }()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read member: %v", err)
	}
	if !bytes.Equal(got, []byte("XNB payload")) {
		t.Fatalf("member contents = %q, want %q", got, "XNB payload")
	}
}

func TestZIPArchiveOpenMissingMember(t *testing.T) {
	t.Parallel()

	path := writeTestZIP(t, map[string][]byte{"a.xnb": []byte("x")})
	arc, err := container.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = arc.Close() }()

	if _, _, err := arc.Open("missing.xnb"); err == nil {
		t.Fatal("Open(missing) error = nil, want EntryNotFoundError")
	}
}

func TestOpenRejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	if _, err := container.Open("archive.tar"); err == nil {
		t.Fatal("Open(.tar) error = nil, want FormatError")
	}
}

func TestReadMember(t *testing.T) {
	t.Parallel()

	path := writeTestZIP(t, map[string][]byte{"a.xnb": []byte("hello")})
	got, err := container.ReadMember(path, "a.xnb")
	if err != nil {
		t.Fatalf("ReadMember: %v", err)
	}
	if !bytes.Equal(got, []byte("hello")) {
		t.Fatalf("ReadMember = %q, want %q", got, "hello")
	}
}

func TestCacheReusesOpenArchive(t *testing.T) {
	t.Parallel()

	path := writeTestZIP(t, map[string][]byte{"a.xnb": []byte("hello")})
	c, err := container.NewCache(2)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer func() { _ = c.Close() }()

	first, err := c.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	second, err := c.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if first != second {
		t.Fatal("Cache.Open returned a different archive instance on second call")
	}
}
