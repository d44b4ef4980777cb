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

// Limit caps the row count at Count. When placed below a fragment boundary
// it is a local, partial cap; the coordinator-side merge Limit enforces the
// true global count (spec §4.3).
type Limit struct {
	UnaryNode
	id    sql.PlanNodeId
	Count int64
}

func NewLimit(id sql.PlanNodeId, count int64, child Node) *Limit {
	return &Limit{UnaryNode: UnaryNode{Child: child}, id: id, Count: count}
}

func (n *Limit) ID() sql.PlanNodeId     { return n.id }
func (n *Limit) Output() sql.SymbolList { return n.Child.Output() }
func (n *Limit) isPlanNode()            {}
func (n *Limit) String() string {
	return fmt.Sprintf("Limit(%d)%s", n.Count, childStrings(n.Children()))
}

// DistinctLimit caps the row count at Count after deduplicating on the full
// row. Same partial/merge shape as Limit.
type DistinctLimit struct {
	UnaryNode
	id    sql.PlanNodeId
	Count int64
}

func NewDistinctLimit(id sql.PlanNodeId, count int64, child Node) *DistinctLimit {
	return &DistinctLimit{UnaryNode: UnaryNode{Child: child}, id: id, Count: count}
}

func (n *DistinctLimit) ID() sql.PlanNodeId     { return n.id }
func (n *DistinctLimit) Output() sql.SymbolList { return n.Child.Output() }
func (n *DistinctLimit) isPlanNode()            {}
func (n *DistinctLimit) String() string {
	return fmt.Sprintf("DistinctLimit(%d)%s", n.Count, childStrings(n.Children()))
}
