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

package plan

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
)

const (
	subqueryAliasPrefix = "s"
	columnAliasPrefix   = "c"
)

// SubqueryBuilder holds the plan primitives used to move a Select into a
// derived table and expose new columns from it.
type SubqueryBuilder interface {
	// Pushdown wraps the select given as the single table of a new outer
	// Select that projects every column of the inner one unchanged. The
	// orderings of the inner select are moved to the outer one.
	Pushdown(ctx *sql.Context, sel *Select) (*Select, error)
	// GenerateOuterColumn adds e, named alias, to the projections of the
	// select under the subquery given, and returns the updated subquery along
	// with the column expression referencing the new projection from the
	// outer scope.
	GenerateOuterColumn(ctx *sql.Context, subquery *SubqueryAlias, e sql.Expression, alias string) (*SubqueryAlias, sql.Expression, error)
}

// DefaultSubqueryBuilder is the SubqueryBuilder for Select plans. Aliases
// come from the allocator of the context.
type DefaultSubqueryBuilder struct{}

var _ SubqueryBuilder = DefaultSubqueryBuilder{}

// Pushdown implements the SubqueryBuilder interface.
//
// Derived tables need every column named, and named uniquely, so unnamed or
// repeated projections get an alias from the allocator; the outer select
// re-aliases them to their original name when they had one. An ordering that
// is not one of the projections is added to the inner projections so that
// the outer select can order by it. The inner select keeps its orderings only
// if it is paged itself.
func (DefaultSubqueryBuilder) Pushdown(ctx *sql.Context, sel *Select) (*Select, error) {
	if len(sel.Projections) == 0 {
		return nil, sql.ErrUnsupportedPlanShape.New("pushdown", "select has no projections")
	}

	aliases := ctx.Aliases()
	seen := make(map[string]struct{}, len(sel.Projections))
	inner := make([]sql.Expression, len(sel.Projections))
	originalNames := make([]string, len(sel.Projections))
	for i, p := range sel.Projections {
		name := ""
		if n, ok := p.(sql.Nameable); ok {
			name = n.Name()
		}
		originalNames[i] = name

		_, dup := seen[strings.ToLower(name)]
		if name == "" || dup {
			p = expression.NewAlias(aliases.Generate(columnAliasPrefix), expression.Unalias(p))
		}
		seen[strings.ToLower(p.(sql.Nameable).Name())] = struct{}{}
		inner[i] = p
	}

	subqueryName := aliases.Generate(subqueryAliasPrefix)

	outerColumn := func(i int, p sql.Expression) *expression.GetField {
		return expression.NewGetFieldWithTable(i, p.Type(), subqueryName, p.(sql.Nameable).Name(), p.IsNullable())
	}

	outerProjections := make([]sql.Expression, len(inner))
	for i, p := range inner {
		var e sql.Expression = outerColumn(i, p)
		if originalNames[i] != "" && originalNames[i] != p.(sql.Nameable).Name() {
			e = expression.NewAlias(originalNames[i], e)
		}
		outerProjections[i] = e
	}

	var outerOrderings sql.SortFields
	for _, o := range sel.Orderings {
		idx := projectionIndex(inner, o.Column)
		if idx < 0 {
			inner = append(inner, expression.NewAlias(aliases.Generate(columnAliasPrefix), o.Column))
			idx = len(inner) - 1
		}
		outerOrderings = append(outerOrderings, sql.SortField{
			Column:       outerColumn(idx, inner[idx]),
			Order:        o.Order,
			NullOrdering: o.NullOrdering,
		})
	}

	innerBuilder := sel.Builder().WithProjections(inner...)
	if !sel.IsPaged() {
		innerBuilder.WithOrderings()
	}

	return NewSelectBuilder().
		WithProjections(outerProjections...).
		WithTables(NewSubqueryAlias(subqueryName, innerBuilder.Build())).
		WithOrderings(outerOrderings...).
		Build(), nil
}

// GenerateOuterColumn implements the SubqueryBuilder interface.
func (DefaultSubqueryBuilder) GenerateOuterColumn(ctx *sql.Context, subquery *SubqueryAlias, e sql.Expression, alias string) (*SubqueryAlias, sql.Expression, error) {
	inner, ok := subquery.Child.(*Select)
	if !ok {
		return nil, nil, sql.ErrUnsupportedPlanShape.New(subquery.Name(), fmt.Sprintf("derived table over %T", subquery.Child))
	}

	idx := len(inner.Projections)
	inner = inner.Builder().AddProjections(expression.NewAlias(alias, e)).Build()
	column := expression.NewGetFieldWithTable(idx, e.Type(), subquery.Name(), alias, e.IsNullable())
	return NewSubqueryAlias(subquery.Name(), inner), column, nil
}

// projectionIndex returns the position of the projection computing e, or -1.
func projectionIndex(projections []sql.Expression, e sql.Expression) int {
	for i, p := range projections {
		if reflect.DeepEqual(p, e) || reflect.DeepEqual(expression.Unalias(p), e) {
			return i
		}
	}
	return -1
}
