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

package sql

import (
	"strings"
)

// A Window specifies the window parameters of a window function
type Window struct {
	PartitionBy []Expression
	OrderBy     SortFields
}

func NewWindow(partitionBy []Expression, orderBy []SortField) *Window {
	if len(partitionBy) == 0 {
		partitionBy = nil
	}
	if len(orderBy) == 0 {
		orderBy = nil
	}
	return &Window{PartitionBy: partitionBy, OrderBy: orderBy}
}

// ToExpressions returns the partition expressions followed by the order by
// columns of this window.
func (w *Window) ToExpressions() []Expression {
	if w == nil {
		return nil
	}
	var exprs []Expression
	exprs = append(exprs, w.PartitionBy...)
	exprs = append(exprs, w.OrderBy.ToExpressions()...)
	return exprs
}

// FromExpressions returns a copy of this window with the given expressions
// taken as the new partitions and order by columns, in the order returned by
// ToExpressions.
func (w *Window) FromExpressions(children []Expression) (*Window, error) {
	if w == nil {
		if len(children) != 0 {
			return nil, ErrInvalidChildrenNumber.New(w, len(children), 0)
		}
		return nil, nil
	}

	if len(children) != len(w.PartitionBy)+len(w.OrderBy) {
		return nil, ErrInvalidChildrenNumber.New(w, len(children), len(w.PartitionBy)+len(w.OrderBy))
	}

	nw := *w
	if len(w.PartitionBy) > 0 {
		nw.PartitionBy = append([]Expression(nil), children[:len(w.PartitionBy)]...)
	}
	orderBy, err := w.OrderBy.FromExpressions(children[len(w.PartitionBy):]...)
	if err != nil {
		return nil, err
	}
	nw.OrderBy = orderBy
	return &nw, nil
}

func (w *Window) String() string {
	if w == nil {
		return ""
	}
	sb := strings.Builder{}
	sb.WriteString("over (")
	if len(w.PartitionBy) > 0 {
		sb.WriteString("partition by ")
		for i, expression := range w.PartitionBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(expression.String())
		}
	}
	if len(w.OrderBy) > 0 {
		if len(w.PartitionBy) > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("order by ")
		for i, ob := range w.OrderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ob.String())
		}
	}
	sb.WriteString(")")
	return sb.String()
}

func (w *Window) DebugString() string {
	if w == nil {
		return ""
	}
	sb := strings.Builder{}
	sb.WriteString("over (")
	if len(w.PartitionBy) > 0 {
		sb.WriteString("partition by ")
		for i, expression := range w.PartitionBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(DebugString(expression))
		}
	}
	if len(w.OrderBy) > 0 {
		if len(w.PartitionBy) > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("order by ")
		for i, ob := range w.OrderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(DebugString(ob))
		}
	}
	sb.WriteString(")")
	return sb.String()
}
