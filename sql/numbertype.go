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

type numberBaseType byte

const (
	baseInt8 numberBaseType = iota + 1
	baseUint8
	baseInt16
	baseUint16
	baseInt32
	baseUint32
	baseInt64
	baseUint64
	baseFloat32
	baseFloat64
)

var numberBaseTypeNames = map[numberBaseType]string{
	baseInt8:    "tinyint",
	baseUint8:   "tinyint unsigned",
	baseInt16:   "smallint",
	baseUint16:  "smallint unsigned",
	baseInt32:   "int",
	baseUint32:  "int unsigned",
	baseInt64:   "bigint",
	baseUint64:  "bigint unsigned",
	baseFloat32: "float",
	baseFloat64: "double",
}

var (
	// Int8 is an integer of 8 bits
	Int8 = MustCreateNumberType(baseInt8)
	// Uint8 is an unsigned integer of 8 bits
	Uint8 = MustCreateNumberType(baseUint8)
	// Int16 is an integer of 16 bits
	Int16 = MustCreateNumberType(baseInt16)
	// Uint16 is an unsigned integer of 16 bits
	Uint16 = MustCreateNumberType(baseUint16)
	// Int32 is an integer of 32 bits.
	Int32 = MustCreateNumberType(baseInt32)
	// Uint32 is an unsigned integer of 32 bits.
	Uint32 = MustCreateNumberType(baseUint32)
	// Int64 is an integer of 64 bits.
	Int64 = MustCreateNumberType(baseInt64)
	// Uint64 is an unsigned integer of 64 bits.
	Uint64 = MustCreateNumberType(baseUint64)
	// Float32 is a floating point number of 32 bits.
	Float32 = MustCreateNumberType(baseFloat32)
	// Float64 is a floating point number of 64 bits.
	Float64 = MustCreateNumberType(baseFloat64)
)

// NumberType represents all integer and floating point types.
type NumberType interface {
	Type
	IsUnsigned() bool
	IsSigned() bool
}

type numberTypeImpl struct {
	baseType numberBaseType
}

// CreateNumberType creates a NumberType.
func CreateNumberType(baseType numberBaseType) (NumberType, error) {
	if _, ok := numberBaseTypeNames[baseType]; !ok {
		return nil, fmt.Errorf("%d is not a valid number base type", baseType)
	}
	return numberTypeImpl{baseType: baseType}, nil
}

// MustCreateNumberType is the same as CreateNumberType except it panics on errors.
func MustCreateNumberType(baseType numberBaseType) NumberType {
	nt, err := CreateNumberType(baseType)
	if err != nil {
		panic(err)
	}
	return nt
}

// Convert implements Type interface.
func (t numberTypeImpl) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	switch t.baseType {
	case baseInt8:
		return cast.ToInt8E(v)
	case baseUint8:
		return cast.ToUint8E(v)
	case baseInt16:
		return cast.ToInt16E(v)
	case baseUint16:
		return cast.ToUint16E(v)
	case baseInt32:
		return cast.ToInt32E(v)
	case baseUint32:
		return cast.ToUint32E(v)
	case baseInt64:
		return cast.ToInt64E(v)
	case baseUint64:
		return cast.ToUint64E(v)
	case baseFloat32:
		return cast.ToFloat32E(v)
	case baseFloat64:
		return cast.ToFloat64E(v)
	}
	return nil, ErrInvalidType.New(t.String())
}

// Zero implements Type interface.
func (t numberTypeImpl) Zero() interface{} {
	v, _ := t.Convert(0)
	return v
}

// IsUnsigned implements NumberType interface.
func (t numberTypeImpl) IsUnsigned() bool {
	switch t.baseType {
	case baseUint8, baseUint16, baseUint32, baseUint64:
		return true
	}
	return false
}

// IsSigned implements NumberType interface.
func (t numberTypeImpl) IsSigned() bool {
	return !t.IsUnsigned()
}

// String implements Type interface.
func (t numberTypeImpl) String() string {
	return numberBaseTypeNames[t.baseType]
}
