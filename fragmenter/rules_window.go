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

// rewriteWindow mirrors RowNumber's placement logic: an empty PartitionBy
// forces a merge to a single instance, a non-empty one only requires a
// re-hash by those keys (spec §4.3).
func rewriteWindow(st *rewriteState, n *plan.Window) (*fragment.Builder, error) {
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
	if err := cb.SetRoot(plan.NewWindow(n.ID(), n.Functions, n.PartitionBy, n.Order, cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}
