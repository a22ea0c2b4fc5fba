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
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/go-sql-paging/sql"
)

// ErrInvalidConfig is returned when a configuration cannot be read or has
// values the engine does not understand.
var ErrInvalidConfig = errors.NewKind("invalid configuration: %s")

// Config is the configuration of an Engine, usually read from a YAML file:
//
//	dialect: mssql2008
//	native_offset: false
//	debug: true
//	verbose: false
//	log_level: debug
type Config struct {
	// DialectName is the name of the target dialect. The default dialect is
	// used when empty.
	DialectName string `yaml:"dialect"`
	// NativeOffset overrides whether the dialect can express OFFSET.
	NativeOffset *bool `yaml:"native_offset,omitempty"`
	// Debug logs every analyzer step.
	Debug bool `yaml:"debug"`
	// Verbose logs the plan every time an analyzer rule changes it.
	Verbose bool `yaml:"verbose"`
	// LogLevel is the logrus level of the engine logger. Defaults to info.
	LogLevel string `yaml:"log_level"`
}

// ParseConfig reads a YAML configuration. Unknown keys are an error.
func ParseConfig(data []byte) (*Config, error) {
	cfg := new(Config)
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, ErrInvalidConfig.Wrap(err, err.Error())
	}
	return cfg, nil
}

// LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, ErrInvalidConfig.Wrap(err, err.Error())
	}
	return ParseConfig(buf)
}

// Dialect returns the dialect plans are compiled for, with the native
// offset override applied.
func (c *Config) Dialect() (sql.Dialect, error) {
	d := sql.DefaultDialect
	if c.DialectName != "" {
		var err error
		d, err = sql.LookupDialect(c.DialectName)
		if err != nil {
			return sql.Dialect{}, err
		}
	}

	if c.NativeOffset != nil {
		d.NativeOffset = *c.NativeOffset
	}
	return d, nil
}

// Level returns the log level of the engine logger.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, ErrInvalidConfig.Wrap(err, err.Error())
	}
	return lvl, nil
}
