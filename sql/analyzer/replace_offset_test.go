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

	"github.com/dolthub/go-sql-paging/memory"
	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/plan"
)

func TestReplaceOffsetWithRowNumber(t *testing.T) {
	ta := gf(0, "t", "a")
	ux := gf(0, "u", "x")

	mssql2012, err := sql.LookupDialect("mssql2012")
	if err != nil {
		t.Fatal(err)
	}

	pagedByA := func(orderings ...sql.SortField) *plan.Select {
		return plan.NewSelectBuilder().
			WithProjections(ta).
			WithTables(table(testTable)).
			WithOrderings(orderings...).
			WithOffset(lit(5)).
			Build()
	}

	// pagedByAResult is pagedByA rewritten with the aliases given.
	pagedByAResult := func(sq, row string, keepOrderings bool, orderings ...sql.SortField) *plan.Select {
		ranking := orderings
		if len(ranking) == 0 {
			ranking = []sql.SortField{constantOrder()}
		}
		b := plan.NewSelectBuilder().
			WithProjections(gf(0, sq, "a")).
			WithTables(plan.NewSubqueryAlias(sq, plan.NewSelectBuilder().
				WithProjections(ta, rowNumber(row, ranking...)).
				WithTables(table(testTable)).
				Build())).
			WithPredicate(gt(gf(1, sq, row), lit(5)))
		if keepOrderings {
			var outer []sql.SortField
			for _, o := range orderings {
				outer = append(outer, sql.SortField{Column: gf(0, sq, "a"), Order: o.Order, NullOrdering: o.NullOrdering})
			}
			b.WithOrderings(outer...)
		}
		return b.Build()
	}

	subquery := plan.NewSelectBuilder().
		WithProjections(ux).
		WithTables(table(otherTable)).
		WithLimit(lit(1)).
		WithOffset(lit(1)).
		Build()
	subqueryResult := plan.NewSelectBuilder().
		WithProjections(gf(0, "s", "x")).
		WithTables(plan.NewSubqueryAlias("s", plan.NewSelectBuilder().
			WithProjections(ux, rowNumber("row", constantOrder())).
			WithTables(table(otherTable)).
			Build())).
		WithPredicate(and(gt(gf(1, "s", "row"), lit(1)), lte(gf(1, "s", "row"), lit(2)))).
		Build()

	collidingTable := memory.NewTable("s", sql.Schema{{Name: "row", Type: sql.Int64}})
	sRow := gf(0, "s", "row")

	runTestCases(t, []analyzerFnTestCase{
		{
			name:    "dialect with native offset",
			node:    pagedByA(asc(ta)),
			dialect: &mssql2012,
		},
		{
			name: "no offset",
			node: plan.NewSelectBuilder().
				WithProjections(ta).
				WithTables(table(testTable)).
				WithOrderings(asc(ta)).
				WithLimit(lit(3)).
				Build(),
		},
		{
			name:     "root select",
			node:     pagedByA(asc(ta)),
			expected: pagedByAResult("s", "row", true, asc(ta)),
		},
		{
			name:     "root select under a shaped query",
			node:     plan.NewShapedQuery(pagedByA(desc(ta)), gf(0, "", "a")),
			expected: plan.NewShapedQuery(pagedByAResult("s", "row", true, desc(ta)), gf(0, "", "a")),
		},
		{
			name: "select in a derived table is not the root",
			node: plan.NewSelectBuilder().
				WithProjections(gf(0, "q", "a")).
				WithTables(plan.NewSubqueryAlias("q", pagedByA(desc(ta)))).
				Build(),
			expected: plan.NewSelectBuilder().
				WithProjections(gf(0, "q", "a")).
				WithTables(plan.NewSubqueryAlias("q", pagedByAResult("s", "row", false, desc(ta)))).
				Build(),
		},
		{
			name: "union arms are not the root",
			node: plan.NewShapedQuery(plan.NewUnion(pagedByA(asc(ta)), pagedByA(), false)),
			expected: plan.NewShapedQuery(plan.NewUnion(
				pagedByAResult("s", "row", false, asc(ta)),
				pagedByAResult("s0", "row0", false),
				false,
			)),
		},
		{
			name: "generated aliases avoid names used by the query",
			node: plan.NewSelectBuilder().
				WithProjections(sRow).
				WithTables(table(collidingTable)).
				WithOrderings(asc(sRow)).
				WithLimit(lit(2)).
				WithOffset(lit(1)).
				Build(),
			expected: plan.NewSelectBuilder().
				WithProjections(gf(0, "s0", "row")).
				WithTables(plan.NewSubqueryAlias("s0", plan.NewSelectBuilder().
					WithProjections(sRow, rowNumber("row0", asc(sRow))).
					WithTables(table(collidingTable)).
					Build())).
				WithPredicate(gt(gf(1, "s0", "row0"), lit(1))).
				WithOrderings(asc(gf(0, "s0", "row"))).
				WithLimit(lit(2)).
				Build(),
		},
		{
			name: "select in a subquery expression",
			node: plan.NewSelectBuilder().
				WithProjections(ta).
				WithTables(table(testTable)).
				WithPredicate(eq(ta, plan.NewSubquery(subquery))).
				Build(),
			expected: plan.NewSelectBuilder().
				WithProjections(ta).
				WithTables(table(testTable)).
				WithPredicate(eq(ta, plan.NewSubquery(subqueryResult))).
				Build(),
		},
		{
			name: "subquery expression is rewritten before its select",
			node: plan.NewSelectBuilder().
				WithProjections(ta).
				WithTables(table(testTable)).
				WithPredicate(eq(ta, plan.NewSubquery(subquery))).
				WithOrderings(asc(ta)).
				WithOffset(lit(2)).
				Build(),
			expected: plan.NewSelectBuilder().
				WithProjections(gf(0, "s0", "a")).
				WithTables(plan.NewSubqueryAlias("s0", plan.NewSelectBuilder().
					WithProjections(ta, rowNumber("row0", asc(ta))).
					WithTables(table(testTable)).
					WithPredicate(eq(ta, plan.NewSubquery(subqueryResult))).
					Build())).
				WithPredicate(gt(gf(1, "s0", "row0"), lit(2))).
				WithOrderings(asc(gf(0, "s0", "a"))).
				Build(),
		},
	}, getRule(replaceOffsetWithRowNumberId))
}
