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

// TreeIdentity tracks modifications to node and expression trees
type TreeIdentity bool

const (
	SameTree TreeIdentity = true
	NewTree  TreeIdentity = false
)

// NodeFunc is a function that given a node will return that node
// as is or transformed, a TreeIdentity to indicate whether the
// node was modified, and an error or nil.
type NodeFunc func(n sql.Node) (sql.Node, TreeIdentity, error)

// ExprFunc is a function that given an expression will return that
// expression as is or transformed, a TreeIdentity to indicate
// whether the expression was modified, and an error or nil.
type ExprFunc func(e sql.Expression) (sql.Expression, TreeIdentity, error)

// Context provides additional metadata to a SelectorFunc
type Context struct {
	// Node is the currently visited node which will be transformed.
	Node sql.Node
	// Parent is the current parent of the transforming node, as it was
	// before any of its children were transformed. It is nil for the root.
	Parent sql.Node
	// ChildNum is the index of Node in Parent.Children(), or -1 for the root.
	ChildNum int
}

// CtxFunc is a function which will return new sql.Node values for a given
// Context.
type CtxFunc func(Context) (sql.Node, TreeIdentity, error)

// SelectorFunc is a function which will allow NodeWithCtx to not
// traverse past a certain Context. If this function returns |false|
// for a given Context, the subtree is not transformed and the child
// is kept in its existing place in the parent as-is.
type SelectorFunc func(Context) bool

// NodeWithCtx transforms |n| from the bottom up, left to right, by passing
// each node to |f|. If |s| is non-nil, does not descend into children where
// |s| returns false.
func NodeWithCtx(n sql.Node, s SelectorFunc, f CtxFunc) (sql.Node, TreeIdentity, error) {
	return transformUpWithParentCtx(Context{Node: n, ChildNum: -1}, s, f)
}

func transformUpWithParentCtx(c Context, s SelectorFunc, f CtxFunc) (sql.Node, TreeIdentity, error) {
	node := c.Node
	children := node.Children()
	if len(children) == 0 {
		return f(c)
	}

	var (
		newChildren []sql.Node
		err         error
	)

	for i := range children {
		child := Context{Node: children[i], Parent: node, ChildNum: i}
		if s != nil && !s(child) {
			continue
		}
		newChild, same, err := transformUpWithParentCtx(child, s, f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]sql.Node, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = newChild
		}
	}

	sameC := SameTree
	if len(newChildren) > 0 {
		sameC = NewTree
		node, err = node.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
	}

	newN, sameN, err := f(Context{Node: node, Parent: c.Parent, ChildNum: c.ChildNum})
	if err != nil {
		return nil, SameTree, err
	}
	return newN, sameC && sameN, nil
}

// Node applies a transformation function to the given tree from the
// bottom up.
func Node(node sql.Node, f NodeFunc) (sql.Node, TreeIdentity, error) {
	children := node.Children()
	if len(children) == 0 {
		return f(node)
	}

	var (
		newChildren []sql.Node
		err         error
	)

	for i := range children {
		c, same, err := Node(children[i], f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]sql.Node, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = c
		}
	}

	sameC := SameTree
	if len(newChildren) > 0 {
		sameC = NewTree
		node, err = node.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
	}

	node, sameN, err := f(node)
	if err != nil {
		return nil, SameTree, err
	}
	return node, sameC && sameN, nil
}

// NodeExprs applies a transformation function to all expressions
// on the given plan tree from the bottom up.
func NodeExprs(node sql.Node, f ExprFunc) (sql.Node, TreeIdentity, error) {
	return Node(node, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		return OneNodeExprs(n, f)
	})
}

// OneNodeExprs applies a transformation function to all expressions
// on the specified node. It does not traverse the children of the
// specified node.
func OneNodeExprs(n sql.Node, f ExprFunc) (sql.Node, TreeIdentity, error) {
	ne, ok := n.(sql.Expressioner)
	if !ok {
		return n, SameTree, nil
	}

	exprs := ne.Expressions()
	if len(exprs) == 0 {
		return n, SameTree, nil
	}

	var (
		newExprs []sql.Expression
		err      error
	)

	for i := range exprs {
		e, same, err := Expr(exprs[i], f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newExprs == nil {
				newExprs = make([]sql.Expression, len(exprs))
				copy(newExprs, exprs)
			}
			newExprs[i] = e
		}
	}

	if len(newExprs) > 0 {
		n, err = ne.WithExpressions(newExprs...)
		if err != nil {
			return nil, SameTree, err
		}
		return n, NewTree, nil
	}
	return n, SameTree, nil
}
