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
	"fmt"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-paging/memory"
	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
	"github.com/dolthub/go-sql-paging/sql/expression/function/aggregation/window"
	"github.com/dolthub/go-sql-paging/sql/plan"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

var testTable = memory.NewTable("t", sql.Schema{
	{Name: "a", Type: sql.Int64},
	{Name: "b", Type: sql.Text, Nullable: true},
})

var otherTable = memory.NewTable("u", sql.Schema{
	{Name: "x", Type: sql.Int64},
})

func gt(left, right sql.Expression) sql.Expression {
	return expression.NewGreaterThan(left, right)
}

func lte(left, right sql.Expression) sql.Expression {
	return expression.NewLessThanOrEqual(left, right)
}

func and(left, right sql.Expression) sql.Expression {
	return expression.NewAnd(left, right)
}

func eq(left, right sql.Expression) sql.Expression {
	return expression.NewEquals(left, right)
}

func lit(n int64) sql.Expression {
	return expression.NewLiteral(n, sql.Int64)
}

func gf(idx int, table, name string) *expression.GetField {
	return expression.NewGetFieldWithTable(idx, sql.Int64, table, name, false)
}

func asc(e sql.Expression) sql.SortField {
	return sql.NewSortField(e, sql.Ascending)
}

func desc(e sql.Expression) sql.SortField {
	return sql.NewSortField(e, sql.Descending)
}

// rowNumber returns the ranking projection the paging rewrite adds, typed as a bigint.
func rowNumber(alias string, orderBy ...sql.SortField) sql.Expression {
	rn, err := window.NewRowNumber().WithType(sql.Int64).WithWindow(sql.NewWindow(nil, orderBy))
	if err != nil {
		panic(err)
	}
	return expression.NewAlias(alias, rn)
}

// constantOrder is the ranking order used when the select has no ordering.
func constantOrder() sql.SortField {
	return asc(expression.ConstantOrderingKey())
}

func table(t sql.Table) sql.Node {
	return plan.NewResolvedTable(t)
}

// Common test struct for analyzer transformation tests. Name and node are required, other fields are optional.
// The expected node is optional: if omitted, the tests asserts that input == output. The optional err field is the
// kind of error expected, if any.
type analyzerFnTestCase struct {
	name     string
	node     sql.Node
	dialect  *sql.Dialect
	expected sql.Node
	err      *errors.Kind
}

func runTestCases(t *testing.T, testCases []analyzerFnTestCase, f Rule) {
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			d := sql.DefaultDialect
			if tt.dialect != nil {
				d = *tt.dialect
			}
			a, err := NewDefault(d)
			require.NoError(t, err)

			result, same, err := f.Apply(sql.NewEmptyContext(), a, tt.node)
			if tt.err != nil {
				require.Error(t, err)
				require.True(t, tt.err.Is(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)

			expected := tt.expected
			if expected == nil {
				expected = tt.node
				require.Equal(t, transform.SameTree, same)
			}

			assertNodesEqualWithDiff(t, expected, result)
		})
	}
}

func getRule(id RuleId) Rule {
	for _, rules := range [][]Rule{OnceBeforeDefault, DefaultRules, OnceAfterDefault, DefaultValidationRules} {
		for _, rule := range rules {
			if rule.Id == id {
				return rule
			}
		}
	}

	panic("missing rule")
}

// assertNodesEqualWithDiff asserts the two nodes given to be equal and prints any diff according to their DebugString
// methods.
func assertNodesEqualWithDiff(t *testing.T, expected, actual sql.Node) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(sql.DebugString(expected)),
		B:        difflib.SplitLines(sql.DebugString(actual)),
		FromFile: "expected",
		FromDate: "",
		ToFile:   "actual",
		ToDate:   "",
		Context:  1,
	})
	require.NoError(t, err)

	if len(diff) > 0 {
		fmt.Println(diff)
	}

	assert.Equal(t, expected, actual)
}
