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
	"sort"
	"strings"
)

// Dialect describes the capabilities of the SQL dialect a plan is compiled
// for.
type Dialect struct {
	// Name of the dialect.
	Name string
	// NativeOffset is true when the dialect can express OFFSET directly,
	// e.g. with OFFSET ... FETCH NEXT. Plans compiled for dialects without it
	// have their offsets rewritten into ROW_NUMBER() predicates.
	NativeOffset bool
}

var dialects = map[string]Dialect{
	"mssql2005":   {Name: "mssql2005", NativeOffset: false},
	"mssql2008":   {Name: "mssql2008", NativeOffset: false},
	"mssql2008r2": {Name: "mssql2008r2", NativeOffset: false},
	"mssql2012":   {Name: "mssql2012", NativeOffset: true},
	"mssql":       {Name: "mssql", NativeOffset: true},
	"mysql":       {Name: "mysql", NativeOffset: true},
	"postgres":    {Name: "postgres", NativeOffset: true},
	"sqlite":      {Name: "sqlite", NativeOffset: true},
}

// DefaultDialect is used when no dialect is configured.
var DefaultDialect = dialects["mssql2008"]

// LookupDialect returns the registered dialect with the given name.
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return Dialect{}, ErrUnknownDialect.New(name)
	}
	return d, nil
}

// DialectNames returns the names of all registered dialects, sorted.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
