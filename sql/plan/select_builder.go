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

package plan

import (
	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
)

// SelectBuilder accumulates the parts of a Select and produces the node once
// every part is final. Slices handed to or taken from a builder are copied,
// so built nodes never share state with the builder or with each other.
type SelectBuilder struct {
	sel Select
}

// NewSelectBuilder returns a builder for an empty Select.
func NewSelectBuilder() *SelectBuilder {
	return &SelectBuilder{}
}

// Builder returns a builder initialized with every part of this select.
func (s *Select) Builder() *SelectBuilder {
	return &SelectBuilder{sel: copySelect(s)}
}

// WithProjections replaces the projections.
func (b *SelectBuilder) WithProjections(projections ...sql.Expression) *SelectBuilder {
	b.sel.Projections = copyExpressions(projections)
	return b
}

// AddProjections appends projections to the existing ones.
func (b *SelectBuilder) AddProjections(projections ...sql.Expression) *SelectBuilder {
	b.sel.Projections = copyExpressions(append(b.sel.Projections, projections...))
	return b
}

// WithTables replaces the source relations.
func (b *SelectBuilder) WithTables(tables ...sql.Node) *SelectBuilder {
	b.sel.Tables = copyNodes(tables)
	return b
}

// WithPredicate replaces the WHERE condition. Nil removes it.
func (b *SelectBuilder) WithPredicate(predicate sql.Expression) *SelectBuilder {
	b.sel.Predicate = predicate
	return b
}

// AddPredicate ANDs the condition given to the current WHERE condition.
func (b *SelectBuilder) AddPredicate(predicate sql.Expression) *SelectBuilder {
	b.sel.Predicate = expression.JoinAnd(b.sel.Predicate, predicate)
	return b
}

// WithGroupBy replaces the grouping expressions.
func (b *SelectBuilder) WithGroupBy(groupBy ...sql.Expression) *SelectBuilder {
	b.sel.GroupBy = copyExpressions(groupBy)
	return b
}

// WithHaving replaces the HAVING condition. Nil removes it.
func (b *SelectBuilder) WithHaving(having sql.Expression) *SelectBuilder {
	b.sel.Having = having
	return b
}

// WithOrderings replaces the ORDER BY fields.
func (b *SelectBuilder) WithOrderings(orderings ...sql.SortField) *SelectBuilder {
	b.sel.Orderings = copySortFields(orderings)
	return b
}

// WithLimit replaces the limit. Nil removes it.
func (b *SelectBuilder) WithLimit(limit sql.Expression) *SelectBuilder {
	b.sel.Limit = limit
	return b
}

// WithOffset replaces the offset. Nil removes it.
func (b *SelectBuilder) WithOffset(offset sql.Expression) *SelectBuilder {
	b.sel.Offset = offset
	return b
}

// Build returns the Select with the parts set so far.
func (b *SelectBuilder) Build() *Select {
	sel := copySelect(&b.sel)
	return &sel
}

func copySelect(s *Select) Select {
	return Select{
		Projections: copyExpressions(s.Projections),
		Tables:      copyNodes(s.Tables),
		Predicate:   s.Predicate,
		GroupBy:     copyExpressions(s.GroupBy),
		Having:      s.Having,
		Orderings:   copySortFields(s.Orderings),
		Limit:       s.Limit,
		Offset:      s.Offset,
	}
}

func copyExpressions(exprs []sql.Expression) []sql.Expression {
	if len(exprs) == 0 {
		return nil
	}
	return append([]sql.Expression(nil), exprs...)
}

func copyNodes(nodes []sql.Node) []sql.Node {
	if len(nodes) == 0 {
		return nil
	}
	return append([]sql.Node(nil), nodes...)
}

func copySortFields(fields []sql.SortField) sql.SortFields {
	if len(fields) == 0 {
		return nil
	}
	return append(sql.SortFields(nil), fields...)
}
