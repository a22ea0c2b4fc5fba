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

package expression

import (
	"fmt"

	"github.com/dolthub/go-sql-paging/sql"
)

// Literal represents a literal expression (string, number, bool, ...).
type Literal struct {
	value     interface{}
	fieldType sql.Type
}

var _ sql.Expression = &Literal{}

// NewLiteral creates a new Literal expression.
func NewLiteral(value interface{}, fieldType sql.Type) *Literal {
	return &Literal{
		value:     value,
		fieldType: fieldType,
	}
}

// Resolved implements the Expression interface.
func (p *Literal) Resolved() bool {
	return true
}

// IsNullable implements the Expression interface.
func (p *Literal) IsNullable() bool {
	return p.value == nil
}

// Type implements the Expression interface.
func (p *Literal) Type() sql.Type {
	return p.fieldType
}

// Value returns the literal value.
func (p *Literal) Value() interface{} {
	return p.value
}

func (p *Literal) String() string {
	switch v := p.value.(type) {
	case nil:
		return "NULL"
	case string:
		return fmt.Sprintf("'%s'", v)
	case []byte:
		return "BLOB"
	default:
		return fmt.Sprint(v)
	}
}

func (p *Literal) DebugString() string {
	typeStr := "<nil>"
	if p.fieldType != nil {
		typeStr = p.fieldType.String()
	}
	return fmt.Sprintf("%s (%s)", p, typeStr)
}

// WithChildren implements the Expression interface.
func (p *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 0)
	}
	return p, nil
}

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression {
	return nil
}
