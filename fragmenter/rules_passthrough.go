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

// These five operators never insert a fragment boundary of their own; they
// always run wherever their child already runs (spec §4.3's straight-through
// group).

func rewriteFilter(st *rewriteState, n *plan.Filter) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewFilter(n.ID(), n.Predicate, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}

func rewriteProject(st *rewriteState, n *plan.Project) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewProject(n.ID(), n.Items, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}

func rewriteSample(st *rewriteState, n *plan.Sample) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewSample(n.ID(), n.Percentage, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}

func rewriteUnnest(st *rewriteState, n *plan.Unnest) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewUnnest(n.ID(), n.UnnestSymbols, n.Added(), cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}

func rewriteTableWriter(st *rewriteState, n *plan.TableWriter) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if err := cb.SetRoot(plan.NewTableWriter(n.ID(), n.Target, n.Output(), cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}
