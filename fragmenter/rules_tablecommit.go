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

// rewriteTableCommit forces its fragment onto the coordinator unless it's
// already COORDINATOR_ONLY or single-node mode has already pinned it to
// NONE (spec §4.3).
func rewriteTableCommit(st *rewriteState, n *plan.TableCommit) (*fragment.Builder, error) {
	cb, err := rewrite(st, n.Child)
	if err != nil {
		return nil, err
	}

	if cb.Distribution() != fragment.CoordinatorOnly && !st.f.options.CreateSingleNodePlan {
		capped, err := capWithSink(st, cb)
		if err != nil {
			return nil, err
		}
		nb, err := startNewOverExchange(st, fragment.CoordinatorOnly, capped)
		if err != nil {
			return nil, err
		}
		sealAndAttach(nb, capped)
		cb = nb
	}

	if err := cb.SetRoot(plan.NewTableCommit(n.ID(), n.Target, n.Output(), cb.Root())); err != nil {
		return nil, err
	}
	return cb, nil
}
