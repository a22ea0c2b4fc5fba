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

package paging

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-sql-paging/sql"
	"github.com/dolthub/go-sql-paging/sql/analyzer"
)

// Engine compiles logical plans for a single target dialect.
type Engine struct {
	Analyzer *analyzer.Analyzer
	Config   *Config
	Logger   *logrus.Logger
}

// New creates a new Engine from the given configuration. A nil configuration
// compiles for the default dialect.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = new(Config)
	}

	d, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	b := analyzer.NewBuilder(d)
	if cfg.Debug {
		b = b.WithDebug()
	}
	if cfg.Verbose {
		b = b.WithVerbose()
	}

	a, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &Engine{Analyzer: a, Config: cfg, Logger: newLogger(lvl)}, nil
}

// NewContext returns a compilation context that logs through the engine
// logger.
func (e *Engine) NewContext(ctx context.Context, opts ...sql.ContextOption) *sql.Context {
	opts = append([]sql.ContextOption{sql.WithLogger(logrus.NewEntry(e.Logger))}, opts...)
	return sql.NewContext(ctx, opts...)
}

// Compile rewrites the given plan for the engine dialect. Every call uses its
// own alias allocator, so compilations sharing a context or running
// concurrently never hand out names to each other.
func (e *Engine) Compile(ctx *sql.Context, n sql.Node) (sql.Node, error) {
	ctx = ctx.WithNewAliases()
	logger := ctx.GetLogger().WithField(DialectLogField, e.Analyzer.Dialect.Name)

	span, ctx := ctx.Span("compile")
	defer span.Finish()

	start := time.Now()
	analyzed, err := e.Analyzer.Analyze(ctx, n)
	logger = logger.WithField(CompileTimeLogKey, time.Since(start))
	if err != nil {
		span.SetTag("error", true)
		logger.WithError(err).Warn("plan compilation failed")
		return nil, err
	}

	logger.Debug("plan compiled")
	return analyzed, nil
}
