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

// rewriteUnion has two distinct shapes (spec §4.3). Under single-node mode
// every branch is recursed and sealed as a sibling, and a literal Union
// operator sits over all of their roots in a new NONE fragment. Otherwise
// every branch is aligned to its declared column layout, capped with a
// Sink, and the branches are fanned into one Exchange with every capped
// fragment as a source: the Exchange itself is the union point, so no
// Union operator is needed on top of it.
func rewriteUnion(st *rewriteState, n *plan.Union) (*fragment.Builder, error) {
	if st.f.options.CreateSingleNodePlan {
		builders := make([]*fragment.Builder, len(n.Sources))
		roots := make([]plan.Node, len(n.Sources))
		for i, s := range n.Sources {
			b, err := rewrite(st, s)
			if err != nil {
				return nil, err
			}
			builders[i] = b
			roots[i] = b.Root()
		}
		nb := fragment.NewSingleNode(st.fragIds)
		if err := nb.SetRoot(plan.NewUnion(n.ID(), roots, n.SourceOutputs, n.Output())); err != nil {
			return nil, err
		}
		children := make([]*fragment.Fragment, len(builders))
		for i, b := range builders {
			f, err := b.Build()
			if err != nil {
				return nil, err
			}
			children[i] = f
		}
		nb.SetChildren(children)
		return nb, nil
	}

	capped := make([]*fragment.Fragment, len(n.Sources))
	for i, s := range n.Sources {
		b, err := rewrite(st, s)
		if err != nil {
			return nil, err
		}
		if b, err = alignUnionBranch(st, b, n.SourceOutputs[i]); err != nil {
			return nil, err
		}
		f, err := capWithSink(st, b)
		if err != nil {
			return nil, err
		}
		capped[i] = f
	}

	nb, err := startNewOverExchangeMulti(st, fragment.None, capped)
	if err != nil {
		return nil, err
	}
	for _, f := range capped {
		sealAndAttach(nb, f)
	}
	return nb, nil
}

// alignUnionBranch inserts a reordering Project in front of b's root when
// its current output doesn't already match want, column-for-column.
func alignUnionBranch(st *rewriteState, b *fragment.Builder, want sql.SymbolList) (*fragment.Builder, error) {
	if sameOrder(b.Root().Output(), want) {
		return b, nil
	}
	items := make([]plan.ProjectItem, len(want))
	for i, sym := range want {
		items[i] = plan.ProjectItem{Output: sym, Expr: plan.NewRef(sym)}
	}
	proj := plan.NewProject(st.f.nodeIds.NextId(), items, b.Root())
	if err := b.SetRoot(proj); err != nil {
		return nil, err
	}
	return b, nil
}

func sameOrder(a, want sql.SymbolList) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range a {
		if a[i] != want[i] {
			return false
		}
	}
	return true
}
