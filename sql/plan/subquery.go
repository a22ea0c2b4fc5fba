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
)

// Subquery is an expression whose value comes from a nested plan, as in a
// scalar subquery, IN (SELECT ...) or EXISTS (SELECT ...). The nested plan is
// not an expression child; rewrites reach it through Query and WithQuery.
type Subquery struct {
	// The plan of the subquery.
	Query sql.Node
}

var _ sql.Expression = (*Subquery)(nil)

// NewSubquery returns a new subquery expression.
func NewSubquery(node sql.Node) *Subquery {
	return &Subquery{Query: node}
}

// WithQuery returns a copy of the subquery over the plan given.
func (s *Subquery) WithQuery(node sql.Node) *Subquery {
	ns := *s
	ns.Query = node
	return &ns
}

// Type implements the Expression interface. It is the type of the first
// column of the nested plan.
func (s *Subquery) Type() sql.Type {
	schema := s.Query.Schema()
	if len(schema) == 0 {
		return sql.Boolean
	}
	return schema[0].Type
}

// IsNullable implements the Expression interface.
func (s *Subquery) IsNullable() bool {
	return true
}

// Resolved implements the Expression interface.
func (s *Subquery) Resolved() bool {
	return s.Query.Resolved()
}

// Children implements the Expression interface.
func (s *Subquery) Children() []sql.Expression {
	return nil
}

// WithChildren implements the Expression interface.
func (s *Subquery) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), 0)
	}
	return s, nil
}

func (s *Subquery) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Subquery")
	_ = pr.WriteChildren(s.Query.String())
	return pr.String()
}

func (s *Subquery) DebugString() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Subquery")
	_ = pr.WriteChildren(sql.DebugString(s.Query))
	return pr.String()
}
