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

// RowNumber assigns a dense sequence number to each row, optionally reset
// per PartitionBy group. No PartitionBy means the whole result is one
// partition and must be numbered on a single instance (spec §4.3).
type RowNumber struct {
	UnaryNode
	id          sql.PlanNodeId
	PartitionBy sql.SymbolList
	Output_     *sql.Symbol
}

func NewRowNumber(id sql.PlanNodeId, partitionBy sql.SymbolList, output *sql.Symbol, child Node) *RowNumber {
	return &RowNumber{UnaryNode: UnaryNode{Child: child}, id: id, PartitionBy: partitionBy, Output_: output}
}

func (n *RowNumber) ID() sql.PlanNodeId { return n.id }
func (n *RowNumber) Output() sql.SymbolList {
	return append(append(sql.SymbolList{}, n.Child.Output()...), n.Output_)
}
func (n *RowNumber) isPlanNode() {}
func (n *RowNumber) String() string {
	return fmt.Sprintf("RowNumber(partitionBy=%s)%s", n.PartitionBy, childStrings(n.Children()))
}

// TopNRowNumber keeps only the first Count rows of each PartitionBy group
// under Order. Partial is true for the per-fragment local half of a
// distributed split; the merge-stage TopNRowNumber (Partial=false) re-ranks
// across fragments (spec §4.3).
type TopNRowNumber struct {
	UnaryNode
	id          sql.PlanNodeId
	PartitionBy sql.SymbolList
	Order       []SortItem
	Count       int64
	Output_     *sql.Symbol
	Partial     bool
}

func NewTopNRowNumber(id sql.PlanNodeId, partitionBy sql.SymbolList, order []SortItem, count int64, output *sql.Symbol, partial bool, child Node) *TopNRowNumber {
	return &TopNRowNumber{UnaryNode: UnaryNode{Child: child}, id: id, PartitionBy: partitionBy, Order: order, Count: count, Output_: output, Partial: partial}
}

func (n *TopNRowNumber) ID() sql.PlanNodeId { return n.id }
func (n *TopNRowNumber) Output() sql.SymbolList {
	return append(append(sql.SymbolList{}, n.Child.Output()...), n.Output_)
}
func (n *TopNRowNumber) isPlanNode() {}
func (n *TopNRowNumber) String() string {
	return fmt.Sprintf("TopNRowNumber(%d, partitionBy=%s, partial=%v)%s", n.Count, n.PartitionBy, n.Partial, childStrings(n.Children()))
}
