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
	"github.com/dolthub/go-sql-paging/sql"
)

// Union is a set operation over the rows of two plans. Neither side of a
// union is the root of the query, even when the union itself is.
type Union struct {
	BinaryNode
	Distinct bool
}

var _ sql.Node = (*Union)(nil)

// NewUnion creates a new Union node with the given children.
func NewUnion(left, right sql.Node, distinct bool) *Union {
	return &Union{
		BinaryNode: BinaryNode{left: left, right: right},
		Distinct:   distinct,
	}
}

// Schema implements the Node interface. The left side names the columns.
func (u *Union) Schema() sql.Schema {
	return u.left.Schema()
}

// WithChildren implements the Node interface.
func (u *Union) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(u, len(children), 2)
	}
	return NewUnion(children[0], children[1], u.Distinct), nil
}

func (u *Union) String() string {
	return u.print(u.left.String(), u.right.String())
}

func (u *Union) DebugString() string {
	return u.print(sql.DebugString(u.left), sql.DebugString(u.right))
}

func (u *Union) print(left, right string) string {
	pr := sql.NewTreePrinter()
	if u.Distinct {
		_ = pr.WriteNode("Union distinct")
	} else {
		_ = pr.WriteNode("Union all")
	}
	_ = pr.WriteChildren(left, right)
	return pr.String()
}
