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

import "fmt"

// SortOrder represents the order of the sort (ascending or descending).
type SortOrder byte

const (
	// Ascending order.
	Ascending SortOrder = 1
	// Descending order.
	Descending SortOrder = 2
)

func (s SortOrder) String() string {
	switch s {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return "invalid SortOrder"
	}
}

// NullOrdering represents how to order based on null values.
type NullOrdering byte

const (
	// NullsFirst puts the null values before any other values.
	NullsFirst NullOrdering = iota
	// NullsLast puts the null values after all other values.
	NullsLast NullOrdering = 2
)

// SortField is a field by which a query will be sorted.
type SortField struct {
	// Column to order by.
	Column Expression
	// Order type.
	Order SortOrder
	// NullOrdering defining how nulls will be ordered.
	NullOrdering NullOrdering
}

// NewSortField returns a SortField for the expression and order given, with
// nulls ordered the way SQL Server does for that order.
func NewSortField(e Expression, order SortOrder) SortField {
	nulls := NullsFirst
	if order == Descending {
		nulls = NullsLast
	}
	return SortField{Column: e, Order: order, NullOrdering: nulls}
}

func (s SortField) String() string {
	return fmt.Sprintf("%s %s", s.Column, s.Order)
}

func (s SortField) DebugString() string {
	nullOrdering := "nullsFirst"
	if s.NullOrdering == NullsLast {
		nullOrdering = "nullsLast"
	}
	return fmt.Sprintf("%s %s %s", DebugString(s.Column), s.Order, nullOrdering)
}

// SortFields is an ordered list of sort fields.
type SortFields []SortField

// ToExpressions returns the column expressions of the sort fields.
func (sf SortFields) ToExpressions() []Expression {
	if len(sf) == 0 {
		return nil
	}
	es := make([]Expression, len(sf))
	for i, f := range sf {
		es[i] = f.Column
	}
	return es
}

// FromExpressions returns a copy of the sort fields with their columns
// replaced by the expressions given, in order.
func (sf SortFields) FromExpressions(exprs ...Expression) (SortFields, error) {
	if len(exprs) != len(sf) {
		return nil, ErrInvalidChildrenNumber.New(sf, len(exprs), len(sf))
	}
	if len(sf) == 0 {
		return nil, nil
	}
	fields := make(SortFields, len(sf))
	for i, expr := range exprs {
		fields[i] = SortField{
			Column:       expr,
			Order:        sf[i].Order,
			NullOrdering: sf[i].NullOrdering,
		}
	}
	return fields, nil
}
