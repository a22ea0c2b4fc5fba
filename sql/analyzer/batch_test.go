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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/plan"
	"github.com/dolthub/go-sql-paging/sql/transform"
)

func TestBatchEval(t *testing.T) {
	node := plan.NewResolvedTable(testTable)

	testCases := []struct {
		name       string
		iterations int
		apply      func(n sql.Node) (sql.Node, transform.TreeIdentity)
		runs       int
		same       transform.TreeIdentity
		err        bool
	}{
		{
			name:       "unchanged plan stops after one pass",
			iterations: 4,
			apply:      func(n sql.Node) (sql.Node, transform.TreeIdentity) { return n, transform.SameTree },
			runs:       1,
			same:       transform.SameTree,
		},
		{
			name:       "equal plan stops after two passes",
			iterations: 4,
			apply:      func(n sql.Node) (sql.Node, transform.TreeIdentity) { return n, transform.NewTree },
			runs:       2,
			same:       transform.NewTree,
		},
		{
			name:       "growing plan hits the iteration limit",
			iterations: 3,
			apply: func(n sql.Node) (sql.Node, transform.TreeIdentity) {
				return plan.NewShapedQuery(n), transform.NewTree
			},
			runs: 3,
			same: transform.NewTree,
			err:  true,
		},
		{
			name:       "single iteration",
			iterations: 1,
			apply: func(n sql.Node) (sql.Node, transform.TreeIdentity) {
				return plan.NewShapedQuery(n), transform.NewTree
			},
			runs: 1,
			same: transform.NewTree,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			a, err := NewDefault(sql.DefaultDialect)
			require.NoError(err)

			var runs int
			b := &Batch{
				Desc:       "test",
				Iterations: tt.iterations,
				Rules: []Rule{{Id: RuleId(100), Apply: func(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
					runs++
					next, same := tt.apply(n)
					return next, same, nil
				}}},
			}

			result, same, err := b.Eval(sql.NewEmptyContext(), a, node)
			if tt.err {
				require.Error(err)
				require.True(ErrMaxAnalysisIters.Is(err))
			} else {
				require.NoError(err)
			}
			require.NotNil(result)
			require.Equal(tt.runs, runs)
			require.Equal(tt.same, same)
		})
	}
}

func TestBatchEvalWithoutRules(t *testing.T) {
	node := plan.NewResolvedTable(testTable)

	result, same, err := (&Batch{Desc: "empty", Iterations: 3}).Eval(sql.NewEmptyContext(), nil, node)
	require.NoError(t, err)
	require.Equal(t, transform.SameTree, same)
	require.Equal(t, node, result)
}
