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

// WindowFunction is one function computed over a Window's frame.
type WindowFunction struct {
	Func   string
	Args   sql.SymbolList
	Output *sql.Symbol
}

// Window computes one or more WindowFunctions over frames grouped by
// PartitionBy and ordered by Order. No PartitionBy forces a single-instance
// frame (spec §4.3), same reasoning as RowNumber.
type Window struct {
	UnaryNode
	id          sql.PlanNodeId
	Functions   []WindowFunction
	PartitionBy sql.SymbolList
	Order       []SortItem
}

func NewWindow(id sql.PlanNodeId, functions []WindowFunction, partitionBy sql.SymbolList, order []SortItem, child Node) *Window {
	return &Window{UnaryNode: UnaryNode{Child: child}, id: id, Functions: functions, PartitionBy: partitionBy, Order: order}
}

func (n *Window) ID() sql.PlanNodeId { return n.id }
func (n *Window) Output() sql.SymbolList {
	out := append(sql.SymbolList{}, n.Child.Output()...)
	for _, f := range n.Functions {
		out = append(out, f.Output)
	}
	return out
}
func (n *Window) isPlanNode() {}
func (n *Window) String() string {
	return fmt.Sprintf("Window(partitionBy=%s)%s", n.PartitionBy, childStrings(n.Children()))
}
