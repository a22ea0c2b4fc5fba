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
	"fmt"
	"strings"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

// Select is a single SELECT: projections over a list of source relations,
// with optional filtering, grouping, ordering and paging. Nodes are never
// modified once built; use a SelectBuilder to derive a changed copy.
type Select struct {
	// Projections are the output columns, in order.
	Projections []sql.Expression
	// Tables are the source relations, in order. They are the children of the node.
	Tables []sql.Node
	// Predicate is the WHERE condition, if any.
	Predicate sql.Expression
	// GroupBy are the grouping expressions.
	GroupBy []sql.Expression
	// Having is the HAVING condition, if any.
	Having sql.Expression
	// Orderings are the ORDER BY fields.
	Orderings sql.SortFields
	// Limit is the maximum number of rows returned, if any.
	Limit sql.Expression
	// Offset is the number of rows skipped, if any.
	Offset sql.Expression
}

var _ sql.Node = (*Select)(nil)
var _ sql.Expressioner = (*Select)(nil)

// IsPaged returns whether the select has an offset or a limit.
func (s *Select) IsPaged() bool {
	return s.Offset != nil || s.Limit != nil
}

// Schema implements the Node interface.
func (s *Select) Schema() sql.Schema {
	schema := make(sql.Schema, len(s.Projections))
	for i, p := range s.Projections {
		schema[i] = transform.ExpressionToColumn(p)
	}
	return schema
}

// Resolved implements the Resolvable interface.
func (s *Select) Resolved() bool {
	return sql.NodesResolved(s.Tables...) && sql.ExpressionsResolved(s.Expressions()...)
}

// Children implements the Node interface.
func (s *Select) Children() []sql.Node {
	if len(s.Tables) == 0 {
		return nil
	}
	return append([]sql.Node(nil), s.Tables...)
}

// WithChildren implements the Node interface.
func (s *Select) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != len(s.Tables) {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), len(s.Tables))
	}
	return s.Builder().WithTables(children...).Build(), nil
}

// Expressions implements the Expressioner interface. Projections come first,
// then grouping expressions, then ordering columns, then whichever of
// predicate, having, limit and offset are present, in that order.
func (s *Select) Expressions() []sql.Expression {
	var exprs []sql.Expression
	exprs = append(exprs, s.Projections...)
	exprs = append(exprs, s.GroupBy...)
	exprs = append(exprs, s.Orderings.ToExpressions()...)
	for _, e := range []sql.Expression{s.Predicate, s.Having, s.Limit, s.Offset} {
		if e != nil {
			exprs = append(exprs, e)
		}
	}
	return exprs
}

// WithExpressions implements the Expressioner interface.
func (s *Select) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	expected := len(s.Expressions())
	if len(exprs) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(exprs), expected)
	}

	b := s.Builder()
	i := 0
	next := func(n int) []sql.Expression {
		part := exprs[i : i+n]
		i += n
		return part
	}

	b.WithProjections(next(len(s.Projections))...)
	b.WithGroupBy(next(len(s.GroupBy))...)
	orderings, err := s.Orderings.FromExpressions(next(len(s.Orderings))...)
	if err != nil {
		return nil, err
	}
	b.WithOrderings(orderings...)

	optional := func(e sql.Expression) sql.Expression {
		if e == nil {
			return nil
		}
		return next(1)[0]
	}
	b.WithPredicate(optional(s.Predicate))
	b.WithHaving(optional(s.Having))
	b.WithLimit(optional(s.Limit))
	b.WithOffset(optional(s.Offset))

	return b.Build(), nil
}

func (s *Select) String() string {
	return s.print(false)
}

func (s *Select) DebugString() string {
	return s.print(true)
}

func (s *Select) print(debug bool) string {
	str := func(e sql.Expression) string {
		if debug {
			return sql.DebugString(e)
		}
		return e.String()
	}

	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Select(%s)", strings.Join(expressionsToStrings(s.Projections, debug), ", "))

	var children []string
	if s.Predicate != nil {
		children = append(children, fmt.Sprintf("Where(%s)", str(s.Predicate)))
	}
	if len(s.GroupBy) > 0 {
		children = append(children, fmt.Sprintf("GroupBy(%s)", strings.Join(expressionsToStrings(s.GroupBy, debug), ", ")))
	}
	if s.Having != nil {
		children = append(children, fmt.Sprintf("Having(%s)", str(s.Having)))
	}
	if len(s.Orderings) > 0 {
		children = append(children, fmt.Sprintf("OrderBy(%s)", strings.Join(sortFieldsToStrings(s.Orderings, debug), ", ")))
	}
	if s.Limit != nil {
		children = append(children, fmt.Sprintf("Limit(%s)", str(s.Limit)))
	}
	if s.Offset != nil {
		children = append(children, fmt.Sprintf("Offset(%s)", str(s.Offset)))
	}
	for _, t := range s.Tables {
		if debug {
			children = append(children, sql.DebugString(t))
		} else {
			children = append(children, t.String())
		}
	}
	_ = pr.WriteChildren(children...)
	return pr.String()
}
