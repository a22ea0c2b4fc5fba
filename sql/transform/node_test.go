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

package transform_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sql-paging/memory"
	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
	"github.com/dolthub/go-sql-paging/sql/plan"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

var (
	tTable = memory.NewTable("t", sql.Schema{{Name: "a", Type: sql.Int64}})
	uTable = memory.NewTable("u", sql.Schema{{Name: "a", Type: sql.Int64}})
)

func lit(n int64) sql.Expression {
	return expression.NewLiteral(n, sql.Int64)
}

func col(table string) sql.Expression {
	return expression.NewGetFieldWithTable(0, sql.Int64, table, "a", false)
}

// sel returns SELECT <from>.a FROM <from>.
func sel(from sql.Node) *plan.Select {
	name := "s"
	if n, ok := from.(sql.Nameable); ok {
		name = n.Name()
	}
	return plan.NewSelectBuilder().WithProjections(col(name)).WithTables(from).Build()
}

// unionTree returns
//
//	ShapedQuery
//	 └─ Union
//	     ├─ Select(t)
//	     └─ Select(SubqueryAlias(s, Select(t)))
func unionTree() *plan.ShapedQuery {
	return plan.NewShapedQuery(plan.NewUnion(
		sel(plan.NewResolvedTable(tTable)),
		sel(plan.NewSubqueryAlias("s", sel(plan.NewResolvedTable(tTable)))),
		false,
	))
}

// tToU replaces every read of table t with a read of table u.
func tToU(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	if rt, ok := n.(*plan.ResolvedTable); ok && rt.Name() == "t" {
		return plan.NewResolvedTable(uTable), transform.NewTree, nil
	}
	return n, transform.SameTree, nil
}

// doubleLiterals multiplies every int64 literal by two.
func doubleLiterals(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	if l, ok := e.(*expression.Literal); ok {
		return lit(l.Value().(int64) * 2), transform.NewTree, nil
	}
	return e, transform.SameTree, nil
}

func TestNode(t *testing.T) {
	require := require.New(t)

	input := unionTree()
	result, same, err := transform.Node(input, tToU)
	require.NoError(err)
	require.Equal(transform.NewTree, same)
	require.Equal(plan.NewShapedQuery(plan.NewUnion(
		sel(plan.NewResolvedTable(uTable)),
		sel(plan.NewSubqueryAlias("s", sel(plan.NewResolvedTable(uTable)))),
		false,
	)), result)
	require.Equal(unionTree(), input, "input was modified")

	result, same, err = transform.Node(input, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		return n, transform.SameTree, nil
	})
	require.NoError(err)
	require.Equal(transform.SameTree, same)
	require.Same(input, result)

	_, _, err = transform.Node(input, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		if _, ok := n.(*plan.SubqueryAlias); ok {
			return nil, transform.SameTree, sql.ErrInvalidType.New("subquery alias")
		}
		return n, transform.SameTree, nil
	})
	require.Error(err)
	require.True(sql.ErrInvalidType.Is(err))
}

func TestNodeWithCtx(t *testing.T) {
	require := require.New(t)

	input := unionTree()
	union := input.Child.(*plan.Union)
	left, right := union.Left().(*plan.Select), union.Right().(*plan.Select)
	derived := right.Tables[0].(*plan.SubqueryAlias)
	inner := derived.Child.(*plan.Select)

	type visit struct {
		node     string
		parent   sql.Node
		childNum int
	}
	var visits []visit
	result, same, err := transform.NodeWithCtx(input, nil, func(c transform.Context) (sql.Node, transform.TreeIdentity, error) {
		visits = append(visits, visit{fmt.Sprintf("%T", c.Node), c.Parent, c.ChildNum})
		return tToU(c.Node)
	})
	require.NoError(err)
	require.Equal(transform.NewTree, same)
	require.Equal(plan.NewShapedQuery(plan.NewUnion(
		sel(plan.NewResolvedTable(uTable)),
		sel(plan.NewSubqueryAlias("s", sel(plan.NewResolvedTable(uTable)))),
		false,
	)), result)

	require.Equal([]visit{
		{"*plan.ResolvedTable", left, 0},
		{"*plan.Select", union, 0},
		{"*plan.ResolvedTable", inner, 0},
		{"*plan.Select", derived, 0},
		{"*plan.SubqueryAlias", right, 0},
		{"*plan.Select", union, 1},
		{"*plan.Union", input, 0},
		{"*plan.ShapedQuery", nil, -1},
	}, visits)
}

func TestNodeWithCtxParentIsOriginal(t *testing.T) {
	require := require.New(t)

	input := unionTree()
	union := input.Child

	// Children of the union are rebuilt before the union is visited, but
	// every context still points at the parent of the input tree.
	var parents []sql.Node
	_, _, err := transform.NodeWithCtx(input, nil, func(c transform.Context) (sql.Node, transform.TreeIdentity, error) {
		switch c.Node.(type) {
		case *plan.Union, *plan.Select:
			if c.Parent == union || c.Parent == sql.Node(input) {
				parents = append(parents, c.Parent)
			}
		}
		return tToU(c.Node)
	})
	require.NoError(err)
	require.Len(parents, 3)
	require.Same(union, parents[0])
	require.Same(union, parents[1])
	require.Same(input, parents[2])
}

func TestNodeWithCtxRootSelect(t *testing.T) {
	require := require.New(t)

	outer := sel(plan.NewSubqueryAlias("s", sel(plan.NewResolvedTable(tTable))))
	for _, input := range []sql.Node{outer, plan.NewShapedQuery(outer)} {
		var roots []sql.Node
		_, _, err := transform.NodeWithCtx(input, nil, func(c transform.Context) (sql.Node, transform.TreeIdentity, error) {
			if _, ok := c.Node.(*plan.Select); ok {
				_, shaped := input.(*plan.ShapedQuery)
				if c.Parent == nil || (shaped && c.Parent == input) {
					roots = append(roots, c.Node)
				}
			}
			return c.Node, transform.SameTree, nil
		})
		require.NoError(err)
		require.Len(roots, 1)
		require.Same(outer, roots[0])
	}
}

func TestNodeWithCtxSelector(t *testing.T) {
	require := require.New(t)

	// Derived tables are not descended into.
	result, same, err := transform.NodeWithCtx(unionTree(), func(c transform.Context) bool {
		_, ok := c.Parent.(*plan.SubqueryAlias)
		return !ok
	}, func(c transform.Context) (sql.Node, transform.TreeIdentity, error) {
		return tToU(c.Node)
	})
	require.NoError(err)
	require.Equal(transform.NewTree, same)
	require.Equal(plan.NewShapedQuery(plan.NewUnion(
		sel(plan.NewResolvedTable(uTable)),
		sel(plan.NewSubqueryAlias("s", sel(plan.NewResolvedTable(tTable)))),
		false,
	)), result)
}

func pagedTree(limit, offset, n int64) *plan.Select {
	return plan.NewSelectBuilder().
		WithProjections(col("s")).
		WithTables(plan.NewSubqueryAlias("s", plan.NewSelectBuilder().
			WithProjections(col("t")).
			WithTables(plan.NewResolvedTable(tTable)).
			WithOffset(lit(offset)).
			Build())).
		WithPredicate(expression.NewGreaterThan(col("s"), lit(n))).
		WithLimit(lit(limit)).
		Build()
}

func TestNodeExprs(t *testing.T) {
	require := require.New(t)

	input := pagedTree(10, 5, 1)
	result, same, err := transform.NodeExprs(input, doubleLiterals)
	require.NoError(err)
	require.Equal(transform.NewTree, same)
	require.Equal(pagedTree(20, 10, 2), result)

	noLiterals := sel(plan.NewResolvedTable(tTable))
	result, same, err = transform.NodeExprs(noLiterals, doubleLiterals)
	require.NoError(err)
	require.Equal(transform.SameTree, same)
	require.Same(noLiterals, result)
}

func TestOneNodeExprs(t *testing.T) {
	require := require.New(t)

	result, same, err := transform.OneNodeExprs(pagedTree(10, 5, 1), doubleLiterals)
	require.NoError(err)
	require.Equal(transform.NewTree, same)
	require.Equal(pagedTree(20, 5, 2), result)

	rt := plan.NewResolvedTable(tTable)
	n, same, err := transform.OneNodeExprs(rt, doubleLiterals)
	require.NoError(err)
	require.Equal(transform.SameTree, same)
	require.Same(rt, n)
}
