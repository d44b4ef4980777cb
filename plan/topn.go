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

package plan

import (
	"fmt"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// TopN keeps the first Count rows under Order. Partial is true for a
// per-fragment local TopN that still needs re-sorting against the other
// fragments' local TopNs at a merge stage; the merge-stage TopN re-sorts,
// which is what makes the partial/merge split correctness-preserving
// (spec §4.3).
type TopN struct {
	UnaryNode
	id      sql.PlanNodeId
	Count   int64
	Order   []SortItem
	Partial bool
}

func NewTopN(id sql.PlanNodeId, count int64, order []SortItem, partial bool, child Node) *TopN {
	return &TopN{UnaryNode: UnaryNode{Child: child}, id: id, Count: count, Order: order, Partial: partial}
}

func (n *TopN) ID() sql.PlanNodeId     { return n.id }
func (n *TopN) Output() sql.SymbolList { return n.Child.Output() }
func (n *TopN) isPlanNode()            {}
func (n *TopN) String() string {
	return fmt.Sprintf("TopN(%d, [%s], partial=%v)%s", n.Count, sortItemsString(n.Order), n.Partial, childStrings(n.Children()))
}
