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
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// rewriteJoin supports INNER, LEFT and RIGHT only; anything else is a fatal
// ErrUnsupportedJoinType (spec §4.3). When neither side is distributed, the
// two sides are simply sealed as siblings under one new NONE fragment.
// Otherwise one side (the build side) is shipped via Sink+Exchange to
// wherever the other side (the probe side) runs: the right side for
// INNER/LEFT, the left side for RIGHT, mirroring how each join type reads
// its smaller side. The DistributedJoins option additionally hash-partitions
// both sides by their join keys instead of leaving the probe side wherever
// it already was.
func rewriteJoin(st *rewriteState, n *plan.Join) (*fragment.Builder, error) {
	if n.Type != plan.InnerJoin && n.Type != plan.LeftJoin && n.Type != plan.RightJoin {
		return nil, sql.ErrUnsupportedJoinType.New(n.Type.String())
	}

	leftB, err := rewrite(st, n.Left)
	if err != nil {
		return nil, err
	}
	rightB, err := rewrite(st, n.Right)
	if err != nil {
		return nil, err
	}

	if !leftB.IsDistributed() && !rightB.IsDistributed() {
		nb := fragment.NewSingleNode(st.fragIds)
		joinOp := plan.NewJoin(n.ID(), n.Type, leftB.Root(), rightB.Root(), n.LeftJoinSymbols, n.RightJoinSymbols, n.Filter)
		if err := nb.SetRoot(joinOp); err != nil {
			return nil, err
		}
		leftFrag, err := leftB.Build()
		if err != nil {
			return nil, err
		}
		rightFrag, err := rightB.Build()
		if err != nil {
			return nil, err
		}
		nb.SetChildren([]*fragment.Fragment{leftFrag, rightFrag})
		return nb, nil
	}

	if n.Type == plan.RightJoin {
		return shipBuildSide(st, n, rightB, leftB, n.RightJoinSymbols, n.LeftJoinSymbols, true)
	}
	return shipBuildSide(st, n, leftB, rightB, n.LeftJoinSymbols, n.RightJoinSymbols, false)
}

// shipBuildSide caps buildB with a Sink and ships it to probeB via a fresh
// Exchange, attaching the sealed build fragment as a child of the returned
// (probe-side) builder. When DistributedJoins is set, both sides are
// hash-redistributed by their join keys first instead.
func shipBuildSide(st *rewriteState, n *plan.Join, probeB, buildB *fragment.Builder, probeKeys, buildKeys sql.SymbolList, buildIsLeft bool) (*fragment.Builder, error) {
	if st.f.options.DistributedJoins {
		if err := buildB.SetHashOutputPartitioning(buildKeys, nil); err != nil {
			return nil, err
		}
	}
	buildFrag, err := capWithSink(st, buildB)
	if err != nil {
		return nil, err
	}

	if st.f.options.DistributedJoins {
		probeB, err = rehash(st, probeB, probeKeys, nil)
		if err != nil {
			return nil, err
		}
	}

	ex := plan.NewExchange(st.f.nodeIds.NextId(), []sql.PlanFragmentId{buildFrag.ID}, buildFrag.Root.Output())

	var joinOp *plan.Join
	if buildIsLeft {
		joinOp = plan.NewJoin(n.ID(), n.Type, ex, probeB.Root(), n.LeftJoinSymbols, n.RightJoinSymbols, n.Filter)
	} else {
		joinOp = plan.NewJoin(n.ID(), n.Type, probeB.Root(), ex, n.LeftJoinSymbols, n.RightJoinSymbols, n.Filter)
	}
	if err := probeB.SetRoot(joinOp); err != nil {
		return nil, err
	}
	sealAndAttach(probeB, buildFrag)
	return probeB, nil
}

// rewriteSemiJoin ships the filtering side to the source side the same way
// rewriteJoin ships a build side, when either side is distributed (spec
// §4.3).
func rewriteSemiJoin(st *rewriteState, n *plan.SemiJoin) (*fragment.Builder, error) {
	sourceB, err := rewrite(st, n.Source)
	if err != nil {
		return nil, err
	}
	filterB, err := rewrite(st, n.FilteringSource)
	if err != nil {
		return nil, err
	}

	if !sourceB.IsDistributed() && !filterB.IsDistributed() {
		nb := fragment.NewSingleNode(st.fragIds)
		joinOp := plan.NewSemiJoin(n.ID(), sourceB.Root(), filterB.Root(), n.SourceJoinSymbols, n.FilteringJoinSymbols)
		if err := nb.SetRoot(joinOp); err != nil {
			return nil, err
		}
		sourceFrag, err := sourceB.Build()
		if err != nil {
			return nil, err
		}
		filterFrag, err := filterB.Build()
		if err != nil {
			return nil, err
		}
		nb.SetChildren([]*fragment.Fragment{sourceFrag, filterFrag})
		return nb, nil
	}

	filterFrag, err := capWithSink(st, filterB)
	if err != nil {
		return nil, err
	}
	ex := plan.NewExchange(st.f.nodeIds.NextId(), []sql.PlanFragmentId{filterFrag.ID}, filterFrag.Root.Output())
	joinOp := plan.NewSemiJoin(n.ID(), sourceB.Root(), ex, n.SourceJoinSymbols, n.FilteringJoinSymbols)
	if err := sourceB.SetRoot(joinOp); err != nil {
		return nil, err
	}
	sealAndAttach(sourceB, filterFrag)
	return sourceB, nil
}

// rewriteIndexJoin only rewrites the probe side; the index side is an
// opaque per-row lookup plan, never itself fragmented (spec §4.3). The
// DistributedIndexJoins option re-hashes a distributed probe side by its
// join keys before probing.
func rewriteIndexJoin(st *rewriteState, n *plan.IndexJoin) (*fragment.Builder, error) {
	probeB, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if st.f.options.DistributedIndexJoins && probeB.IsDistributed() {
		probeB, err = rehash(st, probeB, n.ProbeJoinSymbols, nil)
		if err != nil {
			return nil, err
		}
	}
	newOp := plan.NewIndexJoin(n.ID(), probeB.Root(), n.Index, n.ProbeJoinSymbols, n.Output())
	if err := probeB.SetRoot(newOp); err != nil {
		return nil, err
	}
	return probeB, nil
}
