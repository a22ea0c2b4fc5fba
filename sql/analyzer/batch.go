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
	"reflect"

	"github.com/opentracing/opentracing-go"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

// RuleFunc is the function to be applied in a rule.
type RuleFunc func(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error)

// Rule to transform nodes.
type Rule struct {
	// Id to identify the rule.
	Id RuleId
	// Apply transforms a node.
	Apply RuleFunc
}

// Batch executes a set of rules a specific number of times.
// When this number of times is reached, the actual node
// and ErrMaxAnalysisIters is returned.
type Batch struct {
	Desc       string
	Iterations int
	Rules      []Rule
}

// Eval executes the actual rules the specified number of times on the Batch.
// If max number of iterations is reached, this method will return the actual
// processed Node and ErrMaxAnalysisIters error.
func (b *Batch) Eval(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	if b.Iterations == 0 || len(b.Rules) == 0 {
		return n, transform.SameTree, nil
	}

	cur, same, err := b.evalOnce(ctx, a, n)
	if err != nil {
		return nil, transform.SameTree, err
	}

	if b.Iterations == 1 || same {
		return cur, same, nil
	}

	allSame := same
	for i := 1; ; {
		prev := cur
		cur, same, err = b.evalOnce(ctx, a, cur)
		if err != nil {
			return nil, transform.SameTree, err
		}
		if bool(same) || nodesEqual(prev, cur) {
			return cur, allSame, nil
		}
		allSame = transform.NewTree

		i++
		if i >= b.Iterations {
			return cur, allSame, ErrMaxAnalysisIters.New(b.Iterations)
		}
	}
}

func (b *Batch) evalOnce(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	result := n
	allSame := transform.SameTree
	for _, rule := range b.Rules {
		span, ctx := ctx.Span(rule.Id.String(), opentracing.Tags{"batch": b.Desc})

		a.Log("evaluating rule %s", rule.Id)
		next, same, err := rule.Apply(ctx, a, result)
		span.Finish()
		if err != nil {
			return nil, transform.SameTree, err
		}

		if !same {
			a.Log("rule %s changed the plan", rule.Id)
			a.LogNode(next)
			result = next
		}
		allSame = allSame && same
	}

	return result, allSame, nil
}

func nodesEqual(a, b sql.Node) bool {
	return reflect.DeepEqual(a, b)
}
