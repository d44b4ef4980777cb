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

// rewriteLimit places a local Limit wherever the child runs. If that leaves
// the fragment distributed, a second, identically-counted Limit is placed on
// a merged NONE fragment to enforce the true global count (spec §4.3).
func rewriteLimit(st *rewriteState, n *plan.Limit) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewLimit(n.ID(), n.Count, cb.Root())); err != nil {
		return nil, err
	}
	if !cb.IsDistributed() {
		return cb, nil
	}
	return mergeLimit(st, cb, n.Count)
}

func mergeLimit(st *rewriteState, cb *fragment.Builder, count int64) (*fragment.Builder, error) {
	capped, err := capWithSink(st, cb)
	if err != nil {
		return nil, err
	}
	nb, err := startNewOverExchange(st, fragment.None, capped)
	if err != nil {
		return nil, err
	}
	if err := nb.SetRoot(plan.NewLimit(st.f.nodeIds.NextId(), count, nb.Root())); err != nil {
		return nil, err
	}
	sealAndAttach(nb, capped)
	return nb, nil
}

// rewriteDistinctLimit has the same partial/merge shape as Limit.
func rewriteDistinctLimit(st *rewriteState, n *plan.DistinctLimit) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewDistinctLimit(n.ID(), n.Count, cb.Root())); err != nil {
		return nil, err
	}
	if !cb.IsDistributed() {
		return cb, nil
	}
	capped, err := capWithSink(st, cb)
	if err != nil {
		return nil, err
	}
	nb, err := startNewOverExchange(st, fragment.None, capped)
	if err != nil {
		return nil, err
	}
	if err := nb.SetRoot(plan.NewDistinctLimit(st.f.nodeIds.NextId(), n.Count, nb.Root())); err != nil {
		return nil, err
	}
	sealAndAttach(nb, capped)
	return nb, nil
}

// rewriteTopN marks the per-fragment TopN partial whenever the child is
// distributed, then adds a non-partial merge TopN on a new NONE fragment to
// re-sort across the partials (spec §4.3).
func rewriteTopN(st *rewriteState, n *plan.TopN) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	distributed := cb.IsDistributed()
	if err := cb.SetRoot(plan.NewTopN(n.ID(), n.Count, n.Order, distributed, cb.Root())); err != nil {
		return nil, err
	}
	if !distributed {
		return cb, nil
	}
	capped, err := capWithSink(st, cb)
	if err != nil {
		return nil, err
	}
	nb, err := startNewOverExchange(st, fragment.None, capped)
	if err != nil {
		return nil, err
	}
	if err := nb.SetRoot(plan.NewTopN(st.f.nodeIds.NextId(), n.Count, n.Order, false, nb.Root())); err != nil {
		return nil, err
	}
	sealAndAttach(nb, capped)
	return nb, nil
}
