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

package fragment

import (
	"fmt"
	"sort"

	"github.com/mitchellh/hashstructure"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// PartitioningKind distinguishes an unpartitioned sink from a hash-sharded
// one (spec §3).
type PartitioningKind int

const (
	NoPartitioning PartitioningKind = iota
	HashPartitioning
)

// OutputPartitioning describes how a sealed fragment's Sink distributes its
// rows to the consuming Exchange (spec §3). Only sealed fragments carry
// one; an open FragmentBuilder's pending partitioning is set via
// SetHashOutputPartitioning and observed by build().
type OutputPartitioning struct {
	Kind PartitioningKind
	By   sql.SymbolList
	Hash *sql.Symbol // optional: a precomputed hash column, if one exists
}

func None() OutputPartitioning {
	return OutputPartitioning{Kind: NoPartitioning}
}

func Hash(by sql.SymbolList, hash *sql.Symbol) OutputPartitioning {
	return OutputPartitioning{Kind: HashPartitioning, By: by, Hash: hash}
}

func (p OutputPartitioning) String() string {
	if p.Kind == NoPartitioning {
		return "NONE"
	}
	return fmt.Sprintf("HASH(%s)", p.By)
}

// symbolSetSignature returns a content hash of syms treated as an unordered
// set, used to compare two key sets for equality regardless of order
// (MarkDistinct's already-partitioned test, spec §4.3). Symbol pointers are compared and
// hashed by their string Name() — two distinct *Symbol values never collide
// in a real plan because the symbol allocator guarantees unique names.
func symbolSetSignature(syms sql.SymbolList) (uint64, error) {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name()
	}
	sort.Strings(names)
	return hashstructure.Hash(names, nil)
}

// SameKeySet reports whether p and other are both HASH partitionings over
// exactly the same set of symbols, ignoring order. Used by the MarkDistinct
// rule's "already partitioned" check (spec §4.3, and the open question in
// spec §9: only a FIXED builder's HASH partitioning is ever compared this
// way, never a SOURCE fragment's).
func (p OutputPartitioning) SameKeySet(other OutputPartitioning) bool {
	if p.Kind != HashPartitioning || other.Kind != HashPartitioning {
		return false
	}
	if len(p.By) != len(other.By) {
		return false
	}
	a, errA := symbolSetSignature(p.By)
	b, errB := symbolSetSignature(other.By)
	if errA != nil || errB != nil {
		return false
	}
	return a == b
}
