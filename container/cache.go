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

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds how many open archives a Cache keeps around at
// once, evicting the least-recently-used one (closing it) once full.
const defaultCacheSize = 16

// Cache keeps archives open across repeated lookups by path, so a batch run
// over many members of the same archive opens and indexes it once.
type Cache struct {
	archives *lru.Cache[string, Archive]
}

// NewCache creates a Cache holding at most size open archives.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c := &Cache{}
	archives, err := lru.NewWithEvict(size, func(_ string, arc Archive) {
		_ = arc.Close()
	})
	if err != nil {
		return nil, err
	}
	c.archives = archives
	return c, nil
}

// Open returns the archive at path, opening and caching it on first use.
func (c *Cache) Open(path string) (Archive, error) {
	if arc, ok := c.archives.Get(path); ok {
		return arc, nil
	}
	arc, err := Open(path)
	if err != nil {
		return nil, err
	}
	c.archives.Add(path, arc)
	return arc, nil
}

// Close evicts and closes every cached archive.
func (c *Cache) Close() error {
	for _, path := range c.archives.Keys() {
		c.archives.Remove(path)
	}
	return nil
}
