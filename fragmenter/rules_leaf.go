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

// rewriteTableScan opens a new builder rooted at the scan. Single-node mode
// forces NONE; otherwise the fragment is SOURCE and remembers the scan's id
// as its PartitionedSourceId (spec §4.3).
func rewriteTableScan(st *rewriteState, n *plan.TableScan) (*fragment.Builder, error) {
	var b *fragment.Builder
	if st.f.options.CreateSingleNodePlan {
		b = fragment.NewSingleNode(st.fragIds)
	} else {
		b = fragment.NewSource(st.fragIds, n.ID())
	}
	if err := b.SetRoot(n); err != nil {
		return nil, err
	}
	return b, nil
}

// rewriteValues opens a new single-node builder rooted at the literal rows.
func rewriteValues(st *rewriteState, n *plan.Values) (*fragment.Builder, error) {
	b := fragment.NewSingleNode(st.fragIds)
	if err := b.SetRoot(n); err != nil {
		return nil, err
	}
	return b, nil
}
