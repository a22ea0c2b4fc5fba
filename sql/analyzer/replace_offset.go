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
	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/plan"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

// replaceOffsetWithRowNumber rewrites every Select with an offset, including
// the ones nested in subquery expressions, when the dialect cannot express
// OFFSET. Selects are visited bottom up, so a rewritten inner query is never
// rewritten again as part of its parent.
func replaceOffsetWithRowNumber(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	if a.Dialect.NativeOffset {
		return n, transform.SameTree, nil
	}

	span, ctx := ctx.Span("replace_offset_with_row_number")
	defer span.Finish()

	// Generated aliases must not shadow anything the query already names.
	transform.Walk(nameReserver{ctx.Aliases()}, n)

	return rewriteOffsets(ctx, a, n, true)
}

// rewriteOffsets rewrites the Selects in the plan given. Only the top Select
// of the outermost plan, or the Select directly under its ShapedQuery, is
// the root of the query.
func rewriteOffsets(ctx *sql.Context, a *Analyzer, n sql.Node, outermost bool) (sql.Node, transform.TreeIdentity, error) {
	_, shaped := n.(*plan.ShapedQuery)
	return transform.NodeWithCtx(n, nil, func(c transform.Context) (sql.Node, transform.TreeIdentity, error) {
		node, sameExprs, err := transform.OneNodeExprs(c.Node, func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			sq, ok := e.(*plan.Subquery)
			if !ok {
				return e, transform.SameTree, nil
			}
			query, same, err := rewriteOffsets(ctx, a, sq.Query, false)
			if err != nil || same {
				return e, transform.SameTree, err
			}
			return sq.WithQuery(query), transform.NewTree, nil
		})
		if err != nil {
			return nil, transform.SameTree, err
		}

		sel, ok := node.(*plan.Select)
		if !ok {
			return node, sameExprs, nil
		}

		isRoot := outermost && (c.Parent == nil || (shaped && c.Parent == n))
		result, same, err := a.Paging.Rewrite(ctx, sel, isRoot)
		if err != nil {
			return nil, transform.SameTree, err
		}
		if !same {
			a.Log("replaced offset %s of select with a row number predicate (root: %t)", sel.Offset, isRoot)
		}
		return result, sameExprs && same, nil
	})
}

// nameReserver reserves every table, alias and column name of a plan.
type nameReserver struct {
	aliases *sql.AliasAllocator
}

func (r nameReserver) Visit(n sql.Node) transform.Visitor {
	if named, ok := n.(sql.Nameable); ok {
		r.aliases.Reserve(named.Name())
	}
	for _, col := range n.Schema() {
		r.aliases.Reserve(col.Name, col.Source)
	}

	if ne, ok := n.(sql.Expressioner); ok {
		for _, e := range ne.Expressions() {
			transform.InspectExpr(e, r.reserveExpr)
		}
	}
	return r
}

func (r nameReserver) reserveExpr(e sql.Expression) bool {
	if named, ok := e.(sql.Nameable); ok {
		r.aliases.Reserve(named.Name())
	}
	if t, ok := e.(sql.Tableable); ok {
		r.aliases.Reserve(t.Table())
	}
	if sq, ok := e.(*plan.Subquery); ok {
		transform.Walk(r, sq.Query)
	}
	return false
}
