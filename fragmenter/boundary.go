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
	"github.com/pkg/errors"

	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// The three boundary gestures of spec §4.2, plus the two convenience
// compositions ("merge upward" and "re-hash") that drive most rules.

// capWithSink wraps b's current root in a Sink and seals the builder. The
// Sink's output symbols equal the prior root's, by construction.
func capWithSink(st *rewriteState, b *fragment.Builder) (*fragment.Fragment, error) {
	sink := plan.NewSink(st.f.nodeIds.NextId(), b.Root())
	if err := b.SetRoot(sink); err != nil {
		return nil, errors.Wrap(err, "capWithSink")
	}
	return b.Build()
}

// startNewOverExchange opens a fresh builder of the given distribution,
// rooted at an Exchange referencing capped's id and carrying capped's
// output columns.
func startNewOverExchange(st *rewriteState, dist fragment.Distribution, capped *fragment.Fragment) (*fragment.Builder, error) {
	return startNewOverExchangeMulti(st, dist, []*fragment.Fragment{capped})
}

// startNewOverExchangeMulti is the Union generalization: one Exchange whose
// SourceFragmentIds names every capped source (spec §4.3's Union rule).
func startNewOverExchangeMulti(st *rewriteState, dist fragment.Distribution, capped []*fragment.Fragment) (*fragment.Builder, error) {
	var nb *fragment.Builder
	switch dist {
	case fragment.None:
		nb = fragment.NewSingleNode(st.fragIds)
	case fragment.Fixed:
		nb = fragment.NewFixed(st.fragIds)
	case fragment.CoordinatorOnly:
		nb = fragment.NewCoordinatorOnly(st.fragIds)
	default:
		return nil, sql.ErrSanityCheck.New("startNewOverExchange: unsupported distribution for a synthesized fragment")
	}

	ids := make([]sql.PlanFragmentId, len(capped))
	var output sql.SymbolList
	for i, c := range capped {
		ids[i] = c.ID
		output = append(output, c.Root.Output()...)
	}
	ex := plan.NewExchange(st.f.nodeIds.NextId(), ids, output)
	if err := nb.SetRoot(ex); err != nil {
		return nil, errors.Wrap(err, "startNewOverExchange")
	}
	return nb, nil
}

// sealAndAttach attaches capped as a child of nb.
func sealAndAttach(nb *fragment.Builder, capped *fragment.Fragment) {
	nb.AddChild(capped)
}

// mergeUpward is "cap, open new NONE builder over Exchange, seal+attach":
// used whenever an upstream fragment's multiple partitions must be
// consumed by exactly one downstream instance (spec §4.2).
func mergeUpward(st *rewriteState, b *fragment.Builder) (*fragment.Builder, error) {
	capped, err := capWithSink(st, b)
	if err != nil {
		return nil, err
	}
	nb, err := startNewOverExchange(st, fragment.None, capped)
	if err != nil {
		return nil, err
	}
	sealAndAttach(nb, capped)
	return nb, nil
}

// rehash is "set hash output partitioning, cap with Sink, open new FIXED
// builder over Exchange, seal+attach": used whenever the downstream
// operator requires co-location by a key set (spec §4.2).
func rehash(st *rewriteState, b *fragment.Builder, keys sql.SymbolList, hashSymbol *sql.Symbol) (*fragment.Builder, error) {
	if err := b.SetHashOutputPartitioning(keys, hashSymbol); err != nil {
		return nil, err
	}
	capped, err := capWithSink(st, b)
	if err != nil {
		return nil, err
	}
	nb, err := startNewOverExchange(st, fragment.Fixed, capped)
	if err != nil {
		return nil, err
	}
	sealAndAttach(nb, capped)
	return nb, nil
}
