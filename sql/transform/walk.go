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

package transform

import (
	"github.com/dolthub/go-sql-paging/sql"
)

// Visitor visits nodes in the plan.
type Visitor interface {
	// Visit method is invoked for each node encountered by Walk.
	// If the result Visitor is not nil, Walk visits each of the children
	// of the node with that visitor.
	Visit(node sql.Node) Visitor
}

// Walk traverses the plan tree in depth-first order. It starts by calling v.Visit(node); node must not be nil. If the
// visitor returned by v.Visit(node) is not nil, Walk is invoked recursively with the returned visitor for each
// children of the node.
func Walk(v Visitor, node sql.Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	for _, child := range node.Children() {
		Walk(v, child)
	}
}

// Inspect performs a pre-order traversal of the sql.Node tree;
// First, it does f(node) and if cont = true, then Inspect is recursively called on node's children.
func Inspect(node sql.Node, f func(sql.Node) bool) (cont bool) {
	if !f(node) {
		return false
	}

	for _, child := range node.Children() {
		if !Inspect(child, f) {
			return false
		}
	}
	return true
}

// InspectExpressions traverses the plan and calls f on every expression it
// finds, parents before children. If f returns false the children of that
// expression are skipped.
func InspectExpressions(node sql.Node, f func(sql.Expression) bool) {
	Inspect(node, func(node sql.Node) bool {
		if n, ok := node.(sql.Expressioner); ok {
			for _, e := range n.Expressions() {
				inspectExprDown(e, f)
			}
		}
		return true
	})
}

func inspectExprDown(e sql.Expression, f func(sql.Expression) bool) {
	if !f(e) {
		return
	}
	for _, child := range e.Children() {
		inspectExprDown(child, f)
	}
}
