// Copyright 2020-2021 Dolthub, Inc.
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

package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestOutputPartitioningSameKeySetIgnoresOrder(t *testing.T) {
	require := require.New(t)

	a := sql.NewSymbol("a", sql.BasicType("int"))
	b := sql.NewSymbol("b", sql.BasicType("int"))

	p1 := fragment.Hash(sql.SymbolList{a, b}, nil)
	p2 := fragment.Hash(sql.SymbolList{b, a}, nil)

	require.True(p1.SameKeySet(p2))
}

func TestOutputPartitioningSameKeySetRejectsDifferentSets(t *testing.T) {
	require := require.New(t)

	a := sql.NewSymbol("a", sql.BasicType("int"))
	b := sql.NewSymbol("b", sql.BasicType("int"))
	c := sql.NewSymbol("c", sql.BasicType("int"))

	p1 := fragment.Hash(sql.SymbolList{a, b}, nil)
	p2 := fragment.Hash(sql.SymbolList{a, c}, nil)

	require.False(p1.SameKeySet(p2))
}

func TestOutputPartitioningSameKeySetRequiresBothHash(t *testing.T) {
	require := require.New(t)

	a := sql.NewSymbol("a", sql.BasicType("int"))

	hashed := fragment.Hash(sql.SymbolList{a}, nil)
	none := fragment.None()

	require.False(hashed.SameKeySet(none))
	require.False(none.SameKeySet(hashed))
}
