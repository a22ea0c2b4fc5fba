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
	"strings"

	"github.com/dolthub/go-sql-paging/sql"
)

// ShapedQuery pairs a query with the shaper expressions that turn its rows
// into the values handed back to the caller. It does not change which rows
// the query returns: the query under a top-level ShapedQuery is still the
// root of the plan.
type ShapedQuery struct {
	UnaryNode
	Shaper []sql.Expression
}

var _ sql.Node = (*ShapedQuery)(nil)
var _ sql.Expressioner = (*ShapedQuery)(nil)

// NewShapedQuery creates a new ShapedQuery node.
func NewShapedQuery(query sql.Node, shaper ...sql.Expression) *ShapedQuery {
	return &ShapedQuery{UnaryNode: UnaryNode{Child: query}, Shaper: copyExpressions(shaper)}
}

// Resolved implements the Resolvable interface.
func (s *ShapedQuery) Resolved() bool {
	return s.Child.Resolved() && sql.ExpressionsResolved(s.Shaper...)
}

// Expressions implements the Expressioner interface.
func (s *ShapedQuery) Expressions() []sql.Expression {
	return copyExpressions(s.Shaper)
}

// WithExpressions implements the Expressioner interface.
func (s *ShapedQuery) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(s.Shaper) {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(exprs), len(s.Shaper))
	}
	return NewShapedQuery(s.Child, exprs...), nil
}

// WithChildren implements the Node interface.
func (s *ShapedQuery) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), 1)
	}
	return NewShapedQuery(children[0], s.Shaper...), nil
}

func (s *ShapedQuery) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("ShapedQuery(%s)", strings.Join(expressionsToStrings(s.Shaper, false), ", "))
	_ = pr.WriteChildren(s.Child.String())
	return pr.String()
}

func (s *ShapedQuery) DebugString() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("ShapedQuery(%s)", strings.Join(expressionsToStrings(s.Shaper, true), ", "))
	_ = pr.WriteChildren(sql.DebugString(s.Child))
	return pr.String()
}
