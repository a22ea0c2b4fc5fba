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
	"testing"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
	"github.com/dolthub/go-sql-paging/sql/plan"
)

func paged(limit, offset sql.Expression) *plan.Select {
	return plan.NewSelectBuilder().
		WithProjections(gf(0, "t", "a")).
		WithTables(table(testTable)).
		WithLimit(limit).
		WithOffset(offset).
		Build()
}

func TestValidateOffsetAndLimit(t *testing.T) {
	runTestCases(t, []analyzerFnTestCase{
		{
			name: "valid limit and offset",
			node: paged(lit(10), lit(0)),
		},
		{
			name: "unsigned offset",
			node: paged(nil, expression.NewLiteral(uint64(3), sql.Uint64)),
		},
		{
			name: "column offset",
			node: paged(nil, gf(0, "t", "a")),
		},
		{
			name: "negative limit",
			node: paged(lit(-1), nil),
			err:  sql.ErrInvalidLimitValue,
		},
		{
			name: "negative offset",
			node: paged(nil, lit(-5)),
			err:  sql.ErrInvalidOffsetValue,
		},
		{
			name: "null offset",
			node: paged(nil, expression.NewLiteral(nil, sql.Int64)),
			err:  sql.ErrInvalidOffsetValue,
		},
		{
			name: "text limit",
			node: paged(expression.NewLiteral("10", sql.Text), nil),
			err:  sql.ErrInvalidLimitValue,
		},
		{
			name: "float offset",
			node: paged(nil, expression.NewLiteral(1.5, sql.Float64)),
			err:  sql.ErrInvalidOffsetValue,
		},
		{
			name: "negative offset in a subquery expression",
			node: plan.NewSelectBuilder().
				WithProjections(gf(0, "t", "a")).
				WithTables(table(testTable)).
				WithPredicate(eq(gf(0, "t", "a"), plan.NewSubquery(paged(nil, lit(-1))))).
				Build(),
			err: sql.ErrInvalidOffsetValue,
		},
	}, getRule(validateOffsetAndLimitId))
}

func TestValidateOffsetSupported(t *testing.T) {
	postgres, err := sql.LookupDialect("postgres")
	if err != nil {
		t.Fatal(err)
	}

	runTestCases(t, []analyzerFnTestCase{
		{
			name: "limit only",
			node: paged(lit(10), nil),
		},
		{
			name:    "offset with native support",
			node:    paged(lit(10), lit(5)),
			dialect: &postgres,
		},
		{
			name: "offset left in the plan",
			node: paged(lit(10), lit(5)),
			err:  sql.ErrOffsetNotSupported,
		},
		{
			name: "offset left in a subquery expression",
			node: plan.NewSelectBuilder().
				WithProjections(gf(0, "t", "a")).
				WithTables(table(testTable)).
				WithPredicate(eq(gf(0, "t", "a"), plan.NewSubquery(paged(nil, lit(1))))).
				Build(),
			err: sql.ErrOffsetNotSupported,
		},
	}, getRule(validateOffsetSupportedId))
}
