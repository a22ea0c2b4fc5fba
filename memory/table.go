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

package memory

import (
	"strings"

	"github.com/dolthub/go-sql-paging/sql"
)

// Table is a catalog table known only by its schema. Plans built over it can
// be analyzed and rewritten, never executed.
type Table struct {
	name   string
	schema sql.Schema
}

var _ sql.Table = (*Table)(nil)

// NewTable creates a new Table with the given name and schema. Columns
// without a source are sourced from the table.
func NewTable(name string, schema sql.Schema) *Table {
	s := make(sql.Schema, len(schema))
	for i, col := range schema {
		c := *col
		if c.Source == "" {
			c.Source = name
		}
		s[i] = &c
	}
	return &Table{name: name, schema: s}
}

// Name implements the sql.Table interface.
func (t *Table) Name() string {
	return t.name
}

// Schema implements the sql.Table interface.
func (t *Table) Schema() sql.Schema {
	return t.schema
}

func (t *Table) String() string {
	return t.name
}

// Column returns the column with the name given, compared case-insensitively.
func (t *Table) Column(name string) (int, *sql.Column, bool) {
	for i, c := range t.schema {
		if strings.EqualFold(c.Name, name) {
			return i, c, true
		}
	}
	return -1, nil, false
}
