// Copyright 2024 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"strconv"
	"strings"
)

// AliasAllocator generates table and column aliases that are unique within
// one query compilation. Names are compared case-insensitively, the way SQL
// Server compares identifiers. An allocator is owned by a single compilation
// and is not safe for concurrent use.
type AliasAllocator struct {
	used map[string]struct{}
}

// NewAliasAllocator returns an empty allocator.
func NewAliasAllocator() *AliasAllocator {
	return &AliasAllocator{used: make(map[string]struct{})}
}

// Reserve marks the names given as taken, so that Generate never returns them.
func (a *AliasAllocator) Reserve(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		a.used[strings.ToLower(n)] = struct{}{}
	}
}

// IsReserved returns whether the name given is already taken.
func (a *AliasAllocator) IsReserved(name string) bool {
	_, ok := a.used[strings.ToLower(name)]
	return ok
}

// Generate returns a fresh alias built from the prefix given. The first call
// for a prefix returns the prefix itself; later calls append 0, 1, 2...
func (a *AliasAllocator) Generate(prefix string) string {
	alias := prefix
	for i := 0; a.IsReserved(alias); i++ {
		alias = prefix + strconv.Itoa(i)
	}
	a.Reserve(alias)
	return alias
}
