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

// Package fixture is test-only scaffolding for building plan trees and
// catalogs without a real query planner: the same role the teacher's
// memory package plays for go-mysql-server's own test suite
// (memory.NewTable, memory.NewDatabase), generalized here to plan.Node
// trees and a minimal sql.Catalog instead of actual storage.
package fixture

import "github.com/dolthub/go-mysql-server-fragmenter/sql"

// Table is a named, opaque handle satisfying plan.Table and
// plan.CommitTarget.
type Table struct {
	name string
}

func NewTable(name string) *Table { return &Table{name: name} }

func (t *Table) Name() string { return t.name }

// Index is a named, opaque handle satisfying plan.IndexSource.
type Index struct {
	name string
}

func NewIndex(name string) *Index { return &Index{name: name} }

func (i *Index) Name() string { return i.name }

// Cols allocates a fresh SymbolList of the given names, all of BasicType
// "unknown", via a private SymbolAllocator. Tests that need the allocator
// itself (e.g. to assert that the fragmenter's own, separately-supplied
// allocator never collides with one the test built its fixture plan with)
// should build their own sql.SymbolAllocator instead.
func Cols(names ...string) sql.SymbolList {
	alloc := sql.NewSymbolAllocator()
	out := make(sql.SymbolList, len(names))
	for i, n := range names {
		out[i] = alloc.NewSymbol(n, sql.BasicType("unknown"))
	}
	return out
}
