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
	"github.com/spf13/cast"

	"github.com/dolthub/go-sql-paging/sql"
)

// Factory builds the expressions plan rewrites need. Implementations may
// simplify the expressions they build as long as the result is logically
// equivalent.
type Factory interface {
	// GreaterThan returns left > right.
	GreaterThan(left, right sql.Expression) sql.Expression
	// LessThanOrEqual returns left <= right.
	LessThanOrEqual(left, right sql.Expression) sql.Expression
	// Add returns left + right.
	Add(left, right sql.Expression) sql.Expression
	// And returns the conjunction of the given predicates, skipping nil ones.
	And(predicates ...sql.Expression) sql.Expression
}

// DefaultFactory builds plain expressions, folding additions of two integer
// literals into a single literal.
type DefaultFactory struct{}

var _ Factory = DefaultFactory{}

// GreaterThan implements the Factory interface.
func (DefaultFactory) GreaterThan(left, right sql.Expression) sql.Expression {
	return NewGreaterThan(left, right)
}

// LessThanOrEqual implements the Factory interface.
func (DefaultFactory) LessThanOrEqual(left, right sql.Expression) sql.Expression {
	return NewLessThanOrEqual(left, right)
}

// Add implements the Factory interface.
func (DefaultFactory) Add(left, right sql.Expression) sql.Expression {
	if folded, ok := foldIntegerSum(left, right); ok {
		return folded
	}
	return NewPlus(left, right)
}

// And implements the Factory interface.
func (DefaultFactory) And(predicates ...sql.Expression) sql.Expression {
	return JoinAnd(predicates...)
}

func foldIntegerSum(left, right sql.Expression) (sql.Expression, bool) {
	l, ok := left.(*Literal)
	if !ok || !sql.IsInteger(l.Type()) {
		return nil, false
	}
	r, ok := right.(*Literal)
	if !ok || !sql.IsInteger(r.Type()) {
		return nil, false
	}

	typ := widerNumberType(l.Type(), r.Type())
	if typ.(sql.NumberType).IsUnsigned() {
		lv, err := cast.ToUint64E(l.Value())
		if err != nil {
			return nil, false
		}
		rv, err := cast.ToUint64E(r.Value())
		if err != nil {
			return nil, false
		}
		sum := lv + rv
		if sum < lv {
			return nil, false
		}
		return fittingLiteral(sum, typ, sql.Uint64)
	}

	lv, err := cast.ToInt64E(l.Value())
	if err != nil {
		return nil, false
	}
	rv, err := cast.ToInt64E(r.Value())
	if err != nil {
		return nil, false
	}
	sum := lv + rv
	if (rv > 0 && sum < lv) || (rv < 0 && sum > lv) {
		return nil, false
	}
	return fittingLiteral(sum, typ, sql.Int64)
}

// fittingLiteral returns a literal of type typ holding v, or of type wide
// when v is out of the range of typ.
func fittingLiteral(v interface{}, typ, wide sql.Type) (sql.Expression, bool) {
	converted, err := typ.Convert(v)
	if err == nil && cast.ToString(converted) == cast.ToString(v) {
		return NewLiteral(converted, typ), true
	}
	converted, err = wide.Convert(v)
	if err != nil {
		return nil, false
	}
	return NewLiteral(converted, wide), true
}
