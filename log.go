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
	"github.com/sirupsen/logrus"
)

const (
	// DialectLogField is the log field holding the target dialect.
	DialectLogField = "dialect"
	// CompileTimeLogKey is the log field holding how long a compilation took.
	CompileTimeLogKey = "compileTime"
)

// newLogger returns the logger of an engine. It writes where the standard
// logger does, with its own level and its own copy of the standard hooks.
func newLogger(level logrus.Level) *logrus.Logger {
	std := logrus.StandardLogger()
	hooks := make(logrus.LevelHooks)
	for lvl, hs := range std.Hooks {
		hooks[lvl] = append([]logrus.Hook(nil), hs...)
	}
	return &logrus.Logger{
		Out:       std.Out,
		Hooks:     hooks,
		Formatter: std.Formatter,
		Level:     level,
		ExitFunc:  std.ExitFunc,
	}
}
