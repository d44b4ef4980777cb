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

// rewriteAggregation places a single SINGLE-step Aggregation directly when
// the child isn't distributed. When it is distributed, every aggregate must
// be catalog-decomposable or the whole group collapses onto one instance
// with a SINGLE-step Aggregation; otherwise the call splits into a PARTIAL
// half on the child fragment and a FINAL half on a merged fragment (NONE
// with no GroupingKeys, FIXED re-hashed by GroupingKeys otherwise) that
// recombines the PARTIAL intermediates (spec §4.3).
func rewriteAggregation(st *rewriteState, n *plan.Aggregation) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}

	if !cb.IsDistributed() {
		if err := cb.SetRoot(plan.NewAggregation(n.ID(), n.GroupingKeys, singleStepCalls(n.Aggregates), cb.Root())); err != nil {
			return nil, err
		}
		return cb, nil
	}

	decomposable, err := allDecomposable(st, n.Aggregates)
	if err != nil {
		return nil, err
	}
	if !decomposable {
		nb, err := mergeUpward(st, cb)
		if err != nil {
			return nil, err
		}
		if err := nb.SetRoot(plan.NewAggregation(n.ID(), n.GroupingKeys, singleStepCalls(n.Aggregates), nb.Root())); err != nil {
			return nil, err
		}
		return nb, nil
	}

	partialCalls, finalCalls, err := splitDecomposable(st, n.Aggregates)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewAggregation(n.ID(), n.GroupingKeys, partialCalls, cb.Root())); err != nil {
		return nil, err
	}

	var nb *fragment.Builder
	if len(n.GroupingKeys) == 0 {
		nb, err = mergeUpward(st, cb)
	} else {
		nb, err = rehash(st, cb, n.GroupingKeys, nil)
	}
	if err != nil {
		return nil, err
	}
	if err := nb.SetRoot(plan.NewAggregation(st.f.nodeIds.NextId(), n.GroupingKeys, finalCalls, nb.Root())); err != nil {
		return nil, err
	}
	return nb, nil
}

func singleStepCalls(calls []plan.AggregateCall) []plan.AggregateCall {
	out := make([]plan.AggregateCall, len(calls))
	for i, c := range calls {
		c.Step = plan.SINGLE
		out[i] = c
	}
	return out
}

func allDecomposable(st *rewriteState, calls []plan.AggregateCall) (bool, error) {
	for _, c := range calls {
		fi, err := st.f.catalog.ResolveFunction(c.Func)
		if err != nil {
			return false, sql.ErrUnknownFunction.New(c.Func)
		}
		if !fi.IsDecomposable() {
			return false, nil
		}
	}
	return true, nil
}

// splitDecomposable builds the PARTIAL and FINAL halves of every call,
// minting one fresh intermediate symbol per call via the Fragmenter's
// SymbolAllocator. Masks and sample weights are carried on PARTIAL only and
// dropped from FINAL (spec §4.3).
func splitDecomposable(st *rewriteState, calls []plan.AggregateCall) ([]plan.AggregateCall, []plan.AggregateCall, error) {
	partial := make([]plan.AggregateCall, len(calls))
	final := make([]plan.AggregateCall, len(calls))
	for i, c := range calls {
		fi, err := st.f.catalog.ResolveFunction(c.Func)
		if err != nil {
			return nil, nil, sql.ErrUnknownFunction.New(c.Func)
		}
		intermediate := st.f.symbols.NewSymbol(c.Func+"_partial", fi.IntermediateType())
		partial[i] = plan.AggregateCall{
			Func:         c.Func,
			Args:         c.Args,
			Mask:         c.Mask,
			SampleWeight: c.SampleWeight,
			Output:       intermediate,
			Step:         plan.PARTIAL,
		}
		final[i] = plan.AggregateCall{
			Func:   c.Func,
			Args:   []*sql.Symbol{intermediate},
			Output: c.Output,
			Step:   plan.FINAL,
		}
	}
	return partial, final, nil
}
