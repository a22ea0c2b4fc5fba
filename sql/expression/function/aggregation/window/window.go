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

package window

import (
	"github.com/dolthub/go-sql-paging/sql"
)

// Function is a window function: an expression computed over a window of
// rows without collapsing them.
type Function interface {
	sql.Expression
	// FunctionName returns the SQL name of the function.
	FunctionName() string
	// Window returns the window the function is computed over.
	Window() *sql.Window
	// WithWindow returns a copy of the function over the window given.
	WithWindow(window *sql.Window) (Function, error)
}

func windowResolved(window *sql.Window) bool {
	if window == nil {
		return true
	}
	return sql.ExpressionsResolved(append(window.OrderBy.ToExpressions(), window.PartitionBy...)...)
}
