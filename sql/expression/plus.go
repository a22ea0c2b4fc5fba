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

// Plus is the + arithmetic operation.
type Plus struct {
	BinaryExpression
}

var _ sql.Expression = (*Plus)(nil)

// NewPlus creates a new Plus sql.Expression.
func NewPlus(left, right sql.Expression) *Plus {
	return &Plus{BinaryExpression{Left: left, Right: right}}
}

func (p *Plus) String() string {
	return fmt.Sprintf("(%s + %s)", p.Left, p.Right)
}

func (p *Plus) DebugString() string {
	return fmt.Sprintf("(%s + %s)", sql.DebugString(p.Left), sql.DebugString(p.Right))
}

// Type returns the widest type of both operands. Integers of different
// widths widen to the larger one; anything involving a float is a double.
func (p *Plus) Type() sql.Type {
	return widerNumberType(p.Left.Type(), p.Right.Type())
}

// WithChildren implements the Expression interface.
func (p *Plus) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 2)
	}
	return NewPlus(children[0], children[1]), nil
}

var integerWidths = map[sql.Type]int{
	sql.Int8:   1,
	sql.Uint8:  1,
	sql.Int16:  2,
	sql.Uint16: 2,
	sql.Int32:  4,
	sql.Uint32: 4,
	sql.Int64:  8,
	sql.Uint64: 8,
}

func widerNumberType(l, r sql.Type) sql.Type {
	if !sql.IsInteger(l) || !sql.IsInteger(r) {
		if sql.IsNumber(l) && sql.IsNumber(r) {
			return sql.Float64
		}
		return l
	}
	if integerWidths[r] > integerWidths[l] {
		return r
	}
	return l
}
