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

	"github.com/dolthub/go-sql-paging/memory"
	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
	"github.com/dolthub/go-sql-paging/sql/expression/function/aggregation/window"
	"github.com/dolthub/go-sql-paging/sql/plan"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

// rowNumberAlias is the prefix of the ranking column added by the rewrite.
const rowNumberAlias = "row"

// PagingRewriter rewrites the OFFSET of a Select into a ranking predicate, for
// dialects that can only limit the number of rows returned:
//
//	SELECT a FROM t ORDER BY a LIMIT 10 OFFSET 5
//
// becomes
//
//	SELECT s.a FROM (
//	  SELECT t.a, ROW_NUMBER() OVER (ORDER BY t.a) AS row FROM t
//	) s WHERE s.row > 5 ORDER BY s.a LIMIT 10
//
// A PagingRewriter holds no per-query state and may be shared between
// concurrent compilations. Aliases come from the allocator of the context
// given to Rewrite.
type PagingRewriter struct {
	subqueries plan.SubqueryBuilder
	exprs      expression.Factory
}

// NewPagingRewriter returns a rewriter using the collaborators given. The
// subquery builder is exercised against a probe plan: if it does not behave
// the way the rewrite needs, ErrHostAPIIncompatible is returned.
func NewPagingRewriter(sb plan.SubqueryBuilder, f expression.Factory) (*PagingRewriter, error) {
	if sb == nil {
		return nil, sql.ErrHostAPIIncompatible.New("no subquery builder")
	}
	if f == nil {
		return nil, sql.ErrHostAPIIncompatible.New("no expression factory")
	}
	if err := probeSubqueryBuilder(sb); err != nil {
		return nil, err
	}
	return &PagingRewriter{subqueries: sb, exprs: f}, nil
}

var probeTable = memory.NewTable("probe", sql.Schema{{Name: "id", Type: sql.Int64}})

func probeSubqueryBuilder(sb plan.SubqueryBuilder) error {
	ctx := sql.NewEmptyContext()
	sel := plan.NewSelectBuilder().
		WithProjections(expression.NewGetFieldWithTable(0, sql.Int64, probeTable.Name(), "id", false)).
		WithTables(plan.NewResolvedTable(probeTable)).
		WithOrderings(sql.NewSortField(expression.NewGetFieldWithTable(0, sql.Int64, probeTable.Name(), "id", false), sql.Ascending)).
		Build()

	outer, err := sb.Pushdown(ctx, sel)
	if err != nil {
		return sql.ErrHostAPIIncompatible.Wrap(err, "Pushdown failed on a plain select")
	}
	sq, err := derivedTable(outer)
	if err != nil {
		return sql.ErrHostAPIIncompatible.Wrap(err, "Pushdown did not produce a derived table")
	}

	_, col, err := sb.GenerateOuterColumn(ctx, sq, expression.NewLiteral(int64(1), sql.Int64), "probe_column")
	if err != nil {
		return sql.ErrHostAPIIncompatible.Wrap(err, "GenerateOuterColumn failed on a derived table")
	}
	if _, ok := col.(*expression.GetField); !ok {
		return sql.ErrHostAPIIncompatible.New(fmt.Sprintf("GenerateOuterColumn returned %T, expected a column", col))
	}
	return nil
}

// derivedTable returns the single derived table a pushed down select reads from.
func derivedTable(outer *plan.Select) (*plan.SubqueryAlias, error) {
	if outer == nil || len(outer.Tables) != 1 {
		return nil, sql.ErrUnsupportedPlanShape.New("pushdown", "expected a single derived table")
	}
	sq, ok := outer.Tables[0].(*plan.SubqueryAlias)
	if !ok {
		return nil, sql.ErrUnsupportedPlanShape.New("pushdown", fmt.Sprintf("expected a derived table, got %T", outer.Tables[0]))
	}
	return sq, nil
}

// Rewrite returns the select given with its offset replaced by a predicate on
// a ROW_NUMBER() column computed in a derived table. Selects without an
// offset are returned untouched. isRoot tells whether the select produces the
// rows of the whole query, in which case its ordering is kept even when there
// is no limit.
func (p *PagingRewriter) Rewrite(ctx *sql.Context, sel *plan.Select, isRoot bool) (*plan.Select, transform.TreeIdentity, error) {
	if sel.Offset == nil {
		return sel, transform.SameTree, nil
	}
	if len(sel.Projections) == 0 {
		return nil, transform.SameTree, sql.ErrUnsupportedPlanShape.New("offset", "select has no projections")
	}

	offset, limit, orderings := sel.Offset, sel.Limit, sel.Orderings
	if !sql.IsInteger(offset.Type()) {
		return nil, transform.SameTree, sql.ErrUnsupportedPlanShape.New("offset", fmt.Sprintf("offset %s has type %s", offset, offset.Type()))
	}

	// Without a limit the order of a nested result is meaningless, only the
	// rows it returns matter.
	keepOrderings := limit != nil || isRoot

	ib := sel.Builder().WithLimit(nil).WithOffset(nil)
	if !keepOrderings {
		ib.WithOrderings()
	}
	inner := ib.Build()

	rankingOrder := orderings
	if len(rankingOrder) == 0 {
		rankingOrder = sql.SortFields{sql.NewSortField(expression.ConstantOrderingKey(), sql.Ascending)}
	}

	outer, err := p.subqueries.Pushdown(ctx, inner)
	if err != nil {
		return nil, transform.SameTree, err
	}
	sq, err := derivedTable(outer)
	if err != nil {
		return nil, transform.SameTree, err
	}

	rowNumber, err := window.NewRowNumber().
		WithType(offset.Type()).
		WithWindow(sql.NewWindow(nil, rankingOrder))
	if err != nil {
		return nil, transform.SameTree, err
	}

	sq, row, err := p.subqueries.GenerateOuterColumn(ctx, sq, rowNumber, ctx.Aliases().Generate(rowNumberAlias))
	if err != nil {
		return nil, transform.SameTree, err
	}

	predicate := p.exprs.GreaterThan(row, offset)
	b := outer.Builder().WithTables(sq)
	if limit != nil {
		if len(orderings) == 0 {
			predicate = p.exprs.And(predicate, p.exprs.LessThanOrEqual(row, p.exprs.Add(offset, limit)))
		} else {
			b.WithLimit(limit)
		}
	}

	return b.AddPredicate(predicate).Build(), transform.NewTree, nil
}
