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
	"sort"
	"strings"

	"github.com/dolthub/go-sql-paging/sql"
)

// Database is a named set of tables.
type Database struct {
	name   string
	tables map[string]*Table
}

// NewDatabase creates a new database with the given name.
func NewDatabase(name string) *Database {
	return &Database{
		name:   name,
		tables: map[string]*Table{},
	}
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.name
}

// AddTable adds a new table to the database.
func (d *Database) AddTable(t *Table) {
	d.tables[strings.ToLower(t.Name())] = t
}

// Table returns the table with the name given, compared case-insensitively.
func (d *Database) Table(name string) (*Table, error) {
	t, ok := d.tables[strings.ToLower(name)]
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}
	return t, nil
}

// TableNames returns the names of every table, sorted.
func (d *Database) TableNames() []string {
	names := make([]string, 0, len(d.tables))
	for _, t := range d.tables {
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names
}
