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

package window

import (
	"strings"

	"github.com/dolthub/go-sql-paging/sql"
)

// RowNumber is ROW_NUMBER(): the 1-based position of a row within its
// partition, in the order of the window.
type RowNumber struct {
	window *sql.Window
	typ    sql.Type
}

var _ Function = (*RowNumber)(nil)

// NewRowNumber returns a ROW_NUMBER() over an empty window, typed as a bigint.
func NewRowNumber() *RowNumber {
	return &RowNumber{typ: sql.Int64}
}

// Window implements Function
func (r *RowNumber) Window() *sql.Window {
	return r.window
}

// Resolved implements sql.Expression
func (r *RowNumber) Resolved() bool {
	return windowResolved(r.window)
}

func (r *RowNumber) String() string {
	sb := strings.Builder{}
	sb.WriteString("row_number()")
	if r.window != nil {
		sb.WriteString(" ")
		sb.WriteString(r.window.String())
	}
	return sb.String()
}

func (r *RowNumber) DebugString() string {
	sb := strings.Builder{}
	sb.WriteString("row_number()")
	if r.window != nil {
		sb.WriteString(" ")
		sb.WriteString(sql.DebugString(r.window))
	}
	return sb.String()
}

// FunctionName implements Function
func (r *RowNumber) FunctionName() string {
	return "ROW_NUMBER"
}

// Type implements sql.Expression
func (r *RowNumber) Type() sql.Type {
	return r.typ
}

// WithType returns a copy of this function producing values of the type
// given. The numbering itself does not change.
func (r *RowNumber) WithType(typ sql.Type) *RowNumber {
	nr := *r
	nr.typ = typ
	return &nr
}

// IsNullable implements sql.Expression
func (r *RowNumber) IsNullable() bool {
	return false
}

// Children implements sql.Expression
func (r *RowNumber) Children() []sql.Expression {
	return r.window.ToExpressions()
}

// WithChildren implements sql.Expression
func (r *RowNumber) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	window, err := r.window.FromExpressions(children)
	if err != nil {
		return nil, err
	}

	return r.WithWindow(window)
}

// WithWindow implements Function
func (r *RowNumber) WithWindow(window *sql.Window) (Function, error) {
	nr := *r
	nr.window = window
	return &nr, nil
}
