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

// Package bundle decompresses the codec-tagged payloads of a multi-asset
// bundle file: a small directory of entries, each naming a codec tag
// ("lzx", "zstd", "xz", "none") and pointing at a compressed span.
package bundle

import (
	"fmt"
	"sync"
)

// Codec decompresses one bundle entry's payload.
type Codec interface {
	// Decompress decompresses src into dst. dst must be pre-allocated to
	// the entry's declared decompressed size. Returns the number of
	// bytes written to dst.
	Decompress(dst, src []byte) (int, error)
}

var (
	codecRegistry   = make(map[string]func() Codec)
	codecRegistryMu sync.RWMutex
)

// RegisterCodec registers a codec factory for the given tag. Codec
// implementations call this from an init function.
func RegisterCodec(tag string, factory func() Codec) {
	codecRegistryMu.Lock()
	defer codecRegistryMu.Unlock()
	codecRegistry[tag] = factory
}

// GetCodec returns a new codec instance for the given tag.
func GetCodec(tag string) (Codec, error) {
	codecRegistryMu.RLock()
	factory, ok := codecRegistry[tag]
	codecRegistryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, tag)
	}
	return factory(), nil
}

// Decompress looks up the codec for tag and decompresses src into dst.
func Decompress(tag string, dst, src []byte) (int, error) {
	c, err := GetCodec(tag)
	if err != nil {
		return 0, err
	}
	return c.Decompress(dst, src)
}
