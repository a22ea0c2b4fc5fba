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

package analyzer

import (
	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
	"github.com/dolthub/go-sql-paging/sql/plan"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

// validateOffsetAndLimit checks that every limit and offset of the plan is an
// integer and, when it is a literal, that it is not negative.
func validateOffsetAndLimit(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, ctx := ctx.Span("validate_offset_and_limit")
	defer span.Finish()

	err := forEachSelect(n, func(sel *plan.Select) error {
		if sel.Limit != nil {
			if err := validatePagingValue(sel.Limit, sql.ErrInvalidLimitValue); err != nil {
				return err
			}
		}
		if sel.Offset != nil {
			if err := validatePagingValue(sel.Offset, sql.ErrInvalidOffsetValue); err != nil {
				return err
			}
		}
		return nil
	})
	return n, transform.SameTree, err
}

func validatePagingValue(e sql.Expression, kind *errors.Kind) error {
	if !sql.IsInteger(e.Type()) {
		return kind.New(e)
	}

	lit, ok := e.(*expression.Literal)
	if !ok {
		return nil
	}
	if lit.Value() == nil {
		return kind.New(lit)
	}

	if t, ok := lit.Type().(sql.NumberType); ok && t.IsSigned() {
		v, err := cast.ToInt64E(lit.Value())
		if err != nil {
			return kind.New(lit)
		}
		if v < 0 {
			return kind.New(v)
		}
	}
	return nil
}

// validateOffsetSupported fails if an offset survived analysis for a dialect
// that cannot express it.
func validateOffsetSupported(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	if a.Dialect.NativeOffset {
		return n, transform.SameTree, nil
	}

	err := forEachSelect(n, func(sel *plan.Select) error {
		if sel.Offset != nil {
			return sql.ErrOffsetNotSupported.New(a.Dialect.Name)
		}
		return nil
	})
	return n, transform.SameTree, err
}

// forEachSelect calls f on every Select of the plan, including the ones in
// subquery expressions, stopping at the first error.
func forEachSelect(n sql.Node, f func(*plan.Select) error) error {
	var err error
	transform.Inspect(n, func(n sql.Node) bool {
		if sel, ok := n.(*plan.Select); ok {
			err = f(sel)
		}
		return err == nil
	})
	if err != nil {
		return err
	}

	transform.InspectExpressions(n, func(e sql.Expression) bool {
		if err != nil {
			return false
		}
		if sq, ok := e.(*plan.Subquery); ok {
			err = forEachSelect(sq.Query, f)
		}
		return err == nil
	})
	return err
}
