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

// rewriteSort merges a distributed child up to a single instance first, then
// sorts on top of the merged fragment (spec §4.3: Sort never splits into a
// partial/merge pair the way TopN does).
func rewriteSort(st *rewriteState, n *plan.Sort) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if cb.IsDistributed() {
		cb, err = mergeUpward(st, cb)
		if err != nil {
			return nil, err
		}
	}
	if err := cb.SetRoot(plan.NewSort(n.ID(), n.Order, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}

// rewriteOutput has the same merge-first shape as Sort: the client-facing
// root must run on a single instance.
func rewriteOutput(st *rewriteState, n *plan.Output) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}
	if cb.IsDistributed() {
		cb, err = mergeUpward(st, cb)
		if err != nil {
			return nil, err
		}
	}
	if err := cb.SetRoot(plan.NewOutput(n.ID(), n.ColumnNames, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}
