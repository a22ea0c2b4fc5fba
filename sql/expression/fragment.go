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

package expression

import (
	"github.com/dolthub/go-sql-paging/sql"
)

// SqlFragment is a piece of SQL text that the dialect generator emits
// verbatim, such as the constant "(SELECT 1)" ordering key SQL Server accepts
// where an ORDER BY is mandatory but no order is wanted.
type SqlFragment struct {
	sql       string
	fieldType sql.Type
}

var _ sql.Expression = (*SqlFragment)(nil)

// NewSqlFragment creates a new SqlFragment expression.
func NewSqlFragment(text string, typ sql.Type) *SqlFragment {
	return &SqlFragment{sql: text, fieldType: typ}
}

// ConstantOrderingKey returns the ordering key used when a window function
// needs an ORDER BY but the query has none.
func ConstantOrderingKey() *SqlFragment {
	return NewSqlFragment("(SELECT 1)", sql.Int32)
}

// Sql returns the SQL text of the fragment.
func (f *SqlFragment) Sql() string { return f.sql }

// Resolved implements the Expression interface.
func (*SqlFragment) Resolved() bool { return true }

// IsNullable implements the Expression interface.
func (*SqlFragment) IsNullable() bool { return false }

// Type implements the Expression interface.
func (f *SqlFragment) Type() sql.Type { return f.fieldType }

// Children implements the Expression interface.
func (*SqlFragment) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (f *SqlFragment) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), 0)
	}
	return f, nil
}

func (f *SqlFragment) String() string { return f.sql }
