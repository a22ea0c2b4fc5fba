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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidType is thrown when there is an unexpected type at some part of
	// the plan tree.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrInvalidChildType is returned when the WithChildren method of a
	// node or expression is called with an invalid child type. This error is indicative of a bug.
	ErrInvalidChildType = errors.NewKind("%T: invalid child type, got %T, expected %T")

	// ErrTableNotFound is returned when the table is not available from the
	// current scope.
	ErrTableNotFound = errors.NewKind("table not found: %s")

	// ErrUnknownDialect is returned when a dialect name is not registered.
	ErrUnknownDialect = errors.NewKind("unknown SQL dialect: %s")

	// ErrHostAPIIncompatible is returned when the plan manipulation primitives
	// a rewrite depends on are missing or do not behave as expected. It is
	// detected when the component is built, never per query.
	ErrHostAPIIncompatible = errors.NewKind("plan API incompatible: %s")

	// ErrUnsupportedPlanShape is returned when a node claims to be paged but
	// lacks the structure needed to rewrite it.
	ErrUnsupportedPlanShape = errors.NewKind("unsupported plan shape for %s: %s")

	// ErrInvalidOffsetValue is returned when an OFFSET is not a non-negative integer.
	ErrInvalidOffsetValue = errors.NewKind("invalid value for OFFSET: %v")

	// ErrInvalidLimitValue is returned when a LIMIT is not a non-negative integer.
	ErrInvalidLimitValue = errors.NewKind("invalid value for LIMIT: %v")

	// ErrOffsetNotSupported is returned when a plan still carries an OFFSET
	// after analysis for a dialect that cannot express it.
	ErrOffsetNotSupported = errors.NewKind("dialect %s does not support OFFSET")
)
