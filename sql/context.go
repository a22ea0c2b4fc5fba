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

import (
	"context"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// QueryIDLogField is the log field holding the id of the query being compiled.
const QueryIDLogField = "queryID"

// Context of a query compilation. A Context is never shared between
// compilations: it owns the alias allocator used by the rewrites of the plan.
type Context struct {
	context.Context
	queryID   string
	queryTime time.Time
	logger    *logrus.Entry
	tracer    opentracing.Tracer
	rootSpan  opentracing.Span
	aliases   *AliasAllocator
}

// ContextOption is a function to configure the context.
type ContextOption func(*Context)

// WithTracer adds the given tracer to the context.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithLogger sets the logger entry used by the context.
func WithLogger(l *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = l
	}
}

// WithQueryID sets the query id of the context.
func WithQueryID(id string) ContextOption {
	return func(ctx *Context) {
		ctx.queryID = id
	}
}

// WithRootSpan sets the root span of the context.
func WithRootSpan(s opentracing.Span) ContextOption {
	return func(ctx *Context) {
		ctx.rootSpan = s
	}
}

// WithAliasAllocator sets the alias allocator of the context.
func WithAliasAllocator(a *AliasAllocator) ContextOption {
	return func(ctx *Context) {
		ctx.aliases = a
	}
}

// NewContext creates a new query context. Options can be passed to configure
// the context. If some aspect of the context is not configured, the default
// value will be used.
// By default, the context will have a random query id, a logger derived from
// the standard logrus logger, a noop tracer and a fresh alias allocator.
func NewContext(
	ctx context.Context,
	opts ...ContextOption,
) *Context {
	c := &Context{
		Context:   ctx,
		queryTime: time.Now(),
		tracer:    opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.queryID == "" {
		c.queryID = uuid.NewV4().String()
	}

	if c.logger == nil {
		c.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	c.logger = c.logger.WithField(QueryIDLogField, c.queryID)

	if c.aliases == nil {
		c.aliases = NewAliasAllocator()
	}

	return c
}

// NewEmptyContext returns a default context with default values.
func NewEmptyContext() *Context { return NewContext(context.TODO()) }

// QueryID returns the id of the query being compiled.
func (c *Context) QueryID() string { return c.queryID }

// QueryTime returns the time.Time when the context associated with this query was created
func (c *Context) QueryTime() time.Time {
	return c.queryTime
}

// GetLogger returns the logger for this context.
func (c *Context) GetLogger() *logrus.Entry {
	return c.logger
}

// Aliases returns the alias allocator owned by this compilation.
func (c *Context) Aliases() *AliasAllocator {
	return c.aliases
}

// WithNewAliases returns a copy of the context with an empty alias
// allocator, for a new compilation.
func (c *Context) WithNewAliases() *Context {
	nc := *c
	nc.aliases = NewAliasAllocator()
	return &nc
}

// Span creates a new tracing span with the given context.
// It will return the span and a new context that should be passed to all
// children of this span.
func (c *Context) Span(
	opName string,
	opts ...opentracing.StartSpanOption,
) (opentracing.Span, *Context) {
	parentSpan := opentracing.SpanFromContext(c.Context)
	if parentSpan != nil {
		opts = append(opts, opentracing.ChildOf(parentSpan.Context()))
	}
	span := c.tracer.StartSpan(opName, opts...)
	ctx := opentracing.ContextWithSpan(c.Context, span)

	return span, c.WithContext(ctx)
}

// WithContext returns a new context with the given underlying context.
func (c *Context) WithContext(ctx context.Context) *Context {
	nc := *c
	nc.Context = ctx
	return &nc
}

// RootSpan returns the root span, if any.
func (c *Context) RootSpan() opentracing.Span {
	return c.rootSpan
}
