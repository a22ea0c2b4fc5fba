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
	"fmt"

	"github.com/dolthub/go-sql-paging/sql"
)

// And checks whether two expressions are true.
type And struct {
	BinaryExpression
}

var _ sql.Expression = (*And)(nil)

// NewAnd creates a new And expression.
func NewAnd(left, right sql.Expression) sql.Expression {
	return &And{BinaryExpression{Left: left, Right: right}}
}

// JoinAnd joins several expressions with And. Nil expressions are skipped;
// nil is returned when nothing is left.
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	var result sql.Expression
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if result == nil {
			result = e
			continue
		}
		result = NewAnd(result, e)
	}
	return result
}

// SplitConjunction breaks AND expressions into their left and right parts, recursively
func SplitConjunction(expr sql.Expression) []sql.Expression {
	if expr == nil {
		return nil
	}
	and, ok := expr.(*And)
	if !ok {
		return []sql.Expression{expr}
	}

	return append(
		SplitConjunction(and.Left),
		SplitConjunction(and.Right)...,
	)
}

func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

func (a *And) DebugString() string {
	return fmt.Sprintf("(%s AND %s)", sql.DebugString(a.Left), sql.DebugString(a.Right))
}

// Type implements the Expression interface.
func (*And) Type() sql.Type {
	return sql.Boolean
}

// WithChildren implements the Expression interface.
func (a *And) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewAnd(children[0], children[1]), nil
}

// Or checks whether one of the two given expressions is true.
type Or struct {
	BinaryExpression
}

var _ sql.Expression = (*Or)(nil)

// NewOr creates a new Or expression.
func NewOr(left, right sql.Expression) sql.Expression {
	return &Or{BinaryExpression{Left: left, Right: right}}
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left, o.Right)
}

func (o *Or) DebugString() string {
	return fmt.Sprintf("(%s OR %s)", sql.DebugString(o.Left), sql.DebugString(o.Right))
}

// Type implements the Expression interface.
func (*Or) Type() sql.Type {
	return sql.Boolean
}

// WithChildren implements the Expression interface.
func (o *Or) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(o, len(children), 2)
	}
	return NewOr(children[0], children[1]), nil
}
