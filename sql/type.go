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
	"fmt"

	"github.com/spf13/cast"
)

// Type represents a SQL type.
type Type interface {
	fmt.Stringer
	// Convert a value of a compatible type to the most accurate type.
	Convert(interface{}) (interface{}, error)
	// Zero returns the golang zero value for this type.
	Zero() interface{}
}

var (
	// Boolean is a synonym for TINYINT, the way SQL Server's BIT is handled here.
	Boolean Type = booleanType{}
	// Text is a string type.
	Text Type = textType{}
)

// IsInteger checks if t is a signed or unsigned integer type.
func IsInteger(t Type) bool {
	nt, ok := t.(numberTypeImpl)
	return ok && nt.baseType != baseFloat32 && nt.baseType != baseFloat64
}

// IsNumber checks if t is a number type.
func IsNumber(t Type) bool {
	_, ok := t.(numberTypeImpl)
	return ok
}

// IsText checks if t is a text type.
func IsText(t Type) bool {
	return t == Text
}

type booleanType struct{}

func (booleanType) String() string { return "boolean" }

func (booleanType) Convert(v interface{}) (interface{}, error) {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%v cannot be converted to boolean", v))
	}
	return b, nil
}

func (booleanType) Zero() interface{} { return false }

type textType struct{}

func (textType) String() string { return "text" }

func (textType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%v cannot be converted to text", v))
	}
	return s, nil
}

func (textType) Zero() interface{} { return "" }
