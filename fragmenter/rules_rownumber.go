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

package fragmenter

import (
	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
)

// rewriteRowNumber numbers rows within each PartitionBy group. No
// PartitionBy means the whole result is one group, so a distributed child
// must first be merged onto a single instance; a non-empty PartitionBy
// instead re-hashes by those keys, which is sufficient to number correctly
// per-group without forcing everything through one instance (spec §4.3).
func rewriteRowNumber(st *rewriteState, n *plan.RowNumber) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if cb.IsDistributed() {
		if len(n.PartitionBy) == 0 {
			cb, err = mergeUpward(st, cb)
		} else {
			cb, err = rehash(st, cb, n.PartitionBy, nil)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := cb.SetRoot(plan.NewRowNumber(n.ID(), n.PartitionBy, n.Output_, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}

// rewriteTopNRowNumber places a single non-partial TopNRowNumber on a
// non-distributed child. On a distributed child it splits into a partial
// TopNRowNumber on the child fragment and a non-partial merge TopNRowNumber
// that re-ranks across partitions. The merge fragment is NONE when there is
// no PartitionBy and FIXED, re-hashed by PartitionBy, otherwise (spec §4.3).
func rewriteTopNRowNumber(st *rewriteState, n *plan.TopNRowNumber) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if !cb.IsDistributed() {
		final := plan.NewTopNRowNumber(n.ID(), n.PartitionBy, n.Order, n.Count, n.Output_, false, cb.Root())
		if err := cb.SetRoot(final); err != nil {
			return nil, err
		}
		return cb, nil
	}

	partial := plan.NewTopNRowNumber(n.ID(), n.PartitionBy, n.Order, n.Count, n.Output_, true, cb.Root())
	if err := cb.SetRoot(partial); err != nil {
		return nil, err
	}

	dist := fragment.None
	if len(n.PartitionBy) > 0 {
		dist = fragment.Fixed
		if err := cb.SetHashOutputPartitioning(n.PartitionBy, nil); err != nil {
			return nil, err
		}
	}

	capped, err := capWithSink(st, cb)
	if err != nil {
		return nil, err
	}
	nb, err := startNewOverExchange(st, dist, capped)
	if err != nil {
		return nil, err
	}
	final := plan.NewTopNRowNumber(st.f.nodeIds.NextId(), n.PartitionBy, n.Order, n.Count, n.Output_, false, nb.Root())
	if err := nb.SetRoot(final); err != nil {
		return nil, err
	}
	sealAndAttach(nb, capped)
	return nb, nil
}
