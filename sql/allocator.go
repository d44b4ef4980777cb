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

package sql

import (
	"fmt"
	"sync/atomic"
)

// PlanNodeId is the stable opaque id every plan.Node carries (spec §3).
type PlanNodeId int64

// PlanFragmentId identifies a sealed Fragment. Assigned in visitation order
// of fragment creation (spec §5) — monotonic, never reused, never a random
// UUID, since the ordering itself is a guarantee the test suite may rely
// on (see DESIGN.md's note on why satori/go.uuid was not wired in here).
type PlanFragmentId int64

// FragmentIdAllocator hands out PlanFragmentIds in creation order.
type FragmentIdAllocator struct {
	next int64
}

func NewFragmentIdAllocator() *FragmentIdAllocator {
	return &FragmentIdAllocator{}
}

func (a *FragmentIdAllocator) NextId() PlanFragmentId {
	return PlanFragmentId(atomic.AddInt64(&a.next, 1))
}

// Count returns the number of ids handed out so far.
func (a *FragmentIdAllocator) Count() int64 {
	return atomic.LoadInt64(&a.next)
}

// NodeIdAllocator hands out monotonically increasing PlanNodeIds. It is the
// "node-id allocator" external collaborator of spec §6, consulted for every
// operator the fragmenter synthesizes (Sink, Exchange, PARTIAL/FINAL
// Aggregation halves, merge operators, and so on).
type NodeIdAllocator struct {
	next int64
}

// NewNodeIdAllocator returns an allocator whose first id is 1.
func NewNodeIdAllocator() *NodeIdAllocator {
	return &NodeIdAllocator{}
}

// NextId returns a fresh, previously unused PlanNodeId. Safe for concurrent
// use, though the fragmenter itself is single-threaded (spec §5).
func (a *NodeIdAllocator) NextId() PlanNodeId {
	return PlanNodeId(atomic.AddInt64(&a.next, 1))
}

// SymbolAllocator is the "symbol allocator" external collaborator of spec
// §6: a fresh-name service the fragmenter draws on exclusively when
// splitting a decomposable aggregate into its PARTIAL and FINAL halves,
// where it needs a symbol for each aggregate's intermediate value.
type SymbolAllocator struct {
	next int64
}

// NewSymbolAllocator returns an allocator that has not yet minted any names.
func NewSymbolAllocator() *SymbolAllocator {
	return &SymbolAllocator{}
}

// NewSymbol mints a fresh Symbol of the given Type; prefix appears in the
// generated name purely for readability in logs and String() output.
func (a *SymbolAllocator) NewSymbol(prefix string, typ Type) *Symbol {
	n := atomic.AddInt64(&a.next, 1)
	return NewSymbol(fmt.Sprintf("%s_%d", prefix, n), typ)
}
