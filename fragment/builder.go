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

	"github.com/pkg/errors"

	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// Builder is the mutable accumulator for one not-yet-sealed fragment (spec
// §3's FragmentBuilder, §4.1). Its root is replaced monotonically as the
// rewrite descends back up the tree; child fragments only ever accumulate.
// A Builder is consumed exactly once by Build().
type Builder struct {
	ids *sql.FragmentIdAllocator

	id                  sql.PlanFragmentId
	distribution        Distribution
	root                plan.Node
	partitionedSourceId *sql.PlanNodeId
	children            []*Fragment

	pendingPartitioning *OutputPartitioning

	built  bool
	sealed *Fragment
}

func newBuilder(ids *sql.FragmentIdAllocator, dist Distribution) *Builder {
	return &Builder{ids: ids, id: ids.NextId(), distribution: dist}
}

// NewSingleNode opens a NONE-distribution builder.
func NewSingleNode(ids *sql.FragmentIdAllocator) *Builder {
	return newBuilder(ids, None)
}

// NewFixed opens a FIXED-distribution builder.
func NewFixed(ids *sql.FragmentIdAllocator) *Builder {
	return newBuilder(ids, Fixed)
}

// NewSource opens a SOURCE-distribution builder rooted (eventually) at a
// TableScan, remembering sourceId as the fragment's PartitionedSourceId.
func NewSource(ids *sql.FragmentIdAllocator, sourceId sql.PlanNodeId) *Builder {
	b := newBuilder(ids, Source)
	b.partitionedSourceId = &sourceId
	return b
}

// NewCoordinatorOnly opens a COORDINATOR_ONLY-distribution builder.
func NewCoordinatorOnly(ids *sql.FragmentIdAllocator) *Builder {
	return newBuilder(ids, CoordinatorOnly)
}

func (b *Builder) ID() sql.PlanFragmentId   { return b.id }
func (b *Builder) Distribution() Distribution { return b.distribution }
func (b *Builder) IsDistributed() bool      { return b.distribution.IsDistributed() }
func (b *Builder) Root() plan.Node          { return b.root }
func (b *Builder) Children() []*Fragment    { return b.children }

// SetRoot replaces the builder's current root. op's input subtree must
// already reference the previous root (directly, as an immediate child) or
// be a fresh leaf/Exchange when this is the first call (spec §4.1).
func (b *Builder) SetRoot(op plan.Node) error {
	if b.built {
		return errors.Wrap(sql.ErrSanityCheck.New("SetRoot called on a sealed builder"), "fragment.Builder")
	}
	if b.root != nil {
		found := false
		for _, c := range op.Children() {
			if c == b.root {
				found = true
				break
			}
		}
		if !found {
			return errors.Wrapf(
				sql.ErrSanityCheck.New(fmt.Sprintf("SetRoot(%T) does not reference the prior root", op)),
				"fragment.Builder(%d)", b.id,
			)
		}
	}
	b.root = op
	return nil
}

// SetHashOutputPartitioning records that this fragment's Sink will
// hash-partition its rows by symbols. May be called at most once before
// sealing with effect; a later call only overwrites if the partitioning has
// not yet been observed by a consumer, i.e. has not yet been sealed into a
// Fragment via Build() (spec §4.1).
func (b *Builder) SetHashOutputPartitioning(symbols sql.SymbolList, hashSymbol *sql.Symbol) error {
	if b.built {
		return nil
	}
	if !b.root.Output().ContainsAll(symbols) {
		return errors.Wrapf(
			sql.ErrSanityCheck.New("SetHashOutputPartitioning: symbol not in current root's output"),
			"fragment.Builder(%d)", b.id,
		)
	}
	p := Hash(symbols, hashSymbol)
	b.pendingPartitioning = &p
	return nil
}

// AddChild appends a sealed child fragment.
func (b *Builder) AddChild(child *Fragment) {
	b.children = append(b.children, child)
}

// SetChildren replaces the full child list.
func (b *Builder) SetChildren(children []*Fragment) {
	b.children = children
}

// Build seals the builder into an immutable Fragment. Idempotent: calling
// Build twice returns the same Fragment both times without re-validating.
func (b *Builder) Build() (*Fragment, error) {
	if b.built {
		return b.sealed, nil
	}
	if b.root == nil {
		return nil, sql.ErrSanityCheck.New("build() called on a builder with no root")
	}
	if b.distribution == Fixed && len(b.children) != 1 {
		return nil, sql.ErrSanityCheck.New(fmt.Sprintf(
			"FIXED fragment %d must have exactly one child, has %d", b.id, len(b.children)))
	}
	out := None()
	if b.pendingPartitioning != nil {
		out = *b.pendingPartitioning
	}
	f := &Fragment{
		ID:                  b.id,
		Root:                b.root,
		Distribution:        b.distribution,
		OutputPartitioning:  out,
		PartitionedSourceId: b.partitionedSourceId,
		Children:            b.children,
	}
	b.built = true
	b.sealed = f
	return f, nil
}
