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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberTypeConvert(t *testing.T) {
	tests := []struct {
		typ      Type
		val      interface{}
		expected interface{}
		err      bool
	}{
		{Int64, "15", int64(15), false},
		{Int64, 15.0, int64(15), false},
		{Int32, int64(3), int32(3), false},
		{Uint64, 7, uint64(7), false},
		{Float64, "1.5", 1.5, false},
		{Int64, "a lot", nil, true},
		{Int64, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			v, err := tt.typ.Convert(tt.val)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestTypeClassification(t *testing.T) {
	require := require.New(t)

	require.True(IsInteger(Int8))
	require.True(IsInteger(Uint64))
	require.False(IsInteger(Float64))
	require.False(IsInteger(Text))
	require.True(IsNumber(Float32))
	require.False(IsNumber(Boolean))
	require.True(IsText(Text))
	require.Equal(int64(0), Int64.Zero())
	require.Equal("", Text.Zero())
}
