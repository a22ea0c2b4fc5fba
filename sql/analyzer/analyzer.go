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
	"os"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/expression"
	"github.com/dolthub/go-sql-paging/sql/plan"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

const maxAnalysisIterations = 8

// ErrMaxAnalysisIters is thrown when the analysis iterations are exceeded
var ErrMaxAnalysisIters = errors.NewKind("exceeded max analysis iterations (%d)")

// Builder provides an easy way to generate Analyzer with custom rules and options.
type Builder struct {
	preAnalyzeRules     []Rule
	postAnalyzeRules    []Rule
	preValidationRules  []Rule
	postValidationRules []Rule
	dialect             sql.Dialect
	subqueries          plan.SubqueryBuilder
	exprs               expression.Factory
	debug               bool
	verbose             bool
}

// NewBuilder creates a new Builder for the dialect given.
// This builder allow us add custom Rules and modify some internal properties.
func NewBuilder(d sql.Dialect) *Builder {
	return &Builder{
		dialect:    d,
		subqueries: plan.DefaultSubqueryBuilder{},
		exprs:      expression.DefaultFactory{},
	}
}

// WithDebug activates debug on the Analyzer.
func (ab *Builder) WithDebug() *Builder {
	ab.debug = true
	return ab
}

// WithVerbose makes the Analyzer log the plan every time a rule changes it.
func (ab *Builder) WithVerbose() *Builder {
	ab.verbose = true
	return ab
}

// WithSubqueryBuilder replaces the plan primitives used to build derived tables.
func (ab *Builder) WithSubqueryBuilder(sb plan.SubqueryBuilder) *Builder {
	ab.subqueries = sb
	return ab
}

// WithExpressionFactory replaces the factory used to build the predicates of
// rewritten plans.
func (ab *Builder) WithExpressionFactory(f expression.Factory) *Builder {
	ab.exprs = f
	return ab
}

// AddPreAnalyzeRule adds a new rule to the analyze before the standard analyzer rules.
func (ab *Builder) AddPreAnalyzeRule(id RuleId, fn RuleFunc) *Builder {
	ab.preAnalyzeRules = append(ab.preAnalyzeRules, Rule{id, fn})
	return ab
}

// AddPostAnalyzeRule adds a new rule to the analyzer after standard analyzer rules.
func (ab *Builder) AddPostAnalyzeRule(id RuleId, fn RuleFunc) *Builder {
	ab.postAnalyzeRules = append(ab.postAnalyzeRules, Rule{id, fn})
	return ab
}

// AddPreValidationRule adds a new rule to the analyzer before standard validation rules.
func (ab *Builder) AddPreValidationRule(id RuleId, fn RuleFunc) *Builder {
	ab.preValidationRules = append(ab.preValidationRules, Rule{id, fn})
	return ab
}

// AddPostValidationRule adds a new rule to the analyzer after standard validation rules.
func (ab *Builder) AddPostValidationRule(id RuleId, fn RuleFunc) *Builder {
	ab.postValidationRules = append(ab.postValidationRules, Rule{id, fn})
	return ab
}

// Build creates a new Analyzer using all previous data setted to the Builder.
// It fails if the plan primitives configured cannot support the rewrites.
func (ab *Builder) Build() (*Analyzer, error) {
	paging, err := NewPagingRewriter(ab.subqueries, ab.exprs)
	if err != nil {
		return nil, err
	}

	_, debug := os.LookupEnv(debugAnalyzerKey)
	var batches = []*Batch{
		{
			Desc:       "pre-analyzer",
			Iterations: maxAnalysisIterations,
			Rules:      ab.preAnalyzeRules,
		},
		{
			Desc:       "once-before",
			Iterations: 1,
			Rules:      OnceBeforeDefault,
		},
		{
			Desc:       "default-rules",
			Iterations: maxAnalysisIterations,
			Rules:      DefaultRules,
		},
		{
			Desc:       "once-after",
			Iterations: 1,
			Rules:      OnceAfterDefault,
		},
		{
			Desc:       "post-analyzer",
			Iterations: maxAnalysisIterations,
			Rules:      ab.postAnalyzeRules,
		},
		{
			Desc:       "pre-validation",
			Iterations: 1,
			Rules:      ab.preValidationRules,
		},
		{
			Desc:       "validation",
			Iterations: 1,
			Rules:      DefaultValidationRules,
		},
		{
			Desc:       "post-validation",
			Iterations: 1,
			Rules:      ab.postValidationRules,
		},
	}

	return &Analyzer{
		Debug:   debug || ab.debug,
		Verbose: ab.verbose,
		Dialect: ab.dialect,
		Batches: batches,
		Paging:  paging,
	}, nil
}

// Analyzer analyzes nodes of the logical plan and applies rules and validations
// to them. An Analyzer may be shared by concurrent compilations, each one with
// its own context.
type Analyzer struct {
	// Whether to log various debugging messages
	Debug bool
	// Whether to output the query plan at each step of the analyzer
	Verbose bool
	// Dialect the plans are analyzed for.
	Dialect sql.Dialect
	// Batches of Rules to apply.
	Batches []*Batch
	// Paging rewrites offsets for dialects that lack them.
	Paging *PagingRewriter
}

// NewDefault creates a default Analyzer instance with all default Rules and configuration.
// To add custom rules, the easiest way is use the Builder.
func NewDefault(d sql.Dialect) (*Analyzer, error) {
	return NewBuilder(d).Build()
}

// Log prints an INFO message with the given message and args
// if the analyzer is in debug mode.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a != nil && a.Debug {
		logrus.WithField("dialect", a.Dialect.Name).Infof(msg, args...)
	}
}

// LogNode prints the node given if Verbose logging is enabled.
func (a *Analyzer) LogNode(n sql.Node) {
	if a != nil && n != nil && a.Verbose {
		logrus.WithField("dialect", a.Dialect.Name).Info(strings.TrimRight(sql.DebugString(n), "\n"))
	}
}

// Analyze the node and all its children.
func (a *Analyzer) Analyze(ctx *sql.Context, n sql.Node) (sql.Node, error) {
	span, ctx := ctx.Span("analyze", opentracing.Tags{
		"plan":    n.String(),
		"dialect": a.Dialect.Name,
	})
	defer span.Finish()

	a.Log("starting analysis of node of type: %T", n)
	cur := n
	for _, batch := range a.Batches {
		next, _, err := batch.Eval(ctx, a, cur)
		if ErrMaxAnalysisIters.Is(err) {
			a.Log(err.Error())
			cur = next
			continue
		}
		if err != nil {
			span.SetTag("error", true)
			return nil, err
		}
		cur = next
	}

	span.SetTag("IsResolved", cur.Resolved())
	return cur, nil
}
