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

package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestSymbolIdentity(t *testing.T) {
	require := require.New(t)

	a := sql.NewSymbol("a", sql.BasicType("int"))
	b := sql.NewSymbol("a", sql.BasicType("int"))

	require.True(sql.SymbolList{a}.Contains(a))
	require.False(sql.SymbolList{a}.Contains(b), "symbols with the same name are not the same column")
}

func TestSymbolListContainsAll(t *testing.T) {
	require := require.New(t)

	a := sql.NewSymbol("a", sql.BasicType("int"))
	b := sql.NewSymbol("b", sql.BasicType("int"))
	c := sql.NewSymbol("c", sql.BasicType("int"))

	list := sql.SymbolList{a, b}
	require.True(list.ContainsAll([]*sql.Symbol{a}))
	require.True(list.ContainsAll([]*sql.Symbol{a, b}))
	require.False(list.ContainsAll([]*sql.Symbol{a, c}))
}

func TestNewSymbolAllocatorGeneratesUniqueNames(t *testing.T) {
	require := require.New(t)

	alloc := sql.NewSymbolAllocator()
	x := alloc.NewSymbol("x", sql.BasicType("int"))
	y := alloc.NewSymbol("x", sql.BasicType("int"))

	require.NotEqual(x.Name(), y.Name())
}
