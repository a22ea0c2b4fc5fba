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

func TestAliasAllocator(t *testing.T) {
	require := require.New(t)

	a := NewAliasAllocator()
	require.Equal("s", a.Generate("s"))
	require.Equal("s0", a.Generate("s"))
	require.Equal("s1", a.Generate("s"))
	require.Equal("row", a.Generate("row"))

	a.Reserve("C", "c0", "")
	require.True(a.IsReserved("c"))
	require.False(a.IsReserved(""))
	require.Equal("c1", a.Generate("c"))
}

func TestAliasAllocatorsAreIndependent(t *testing.T) {
	require := require.New(t)

	ctx1 := NewEmptyContext()
	ctx2 := NewEmptyContext()
	require.NotSame(ctx1.Aliases(), ctx2.Aliases())

	require.Equal("row", ctx1.Aliases().Generate("row"))
	require.Equal("row", ctx2.Aliases().Generate("row"))
	require.Equal("row0", ctx1.Aliases().Generate("row"))
}
