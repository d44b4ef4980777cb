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

// Sort globally orders its input. The fragmenter never splits a Sort into
// partial/merge halves the way it does TopN: a distributed child is merged
// up to a single node first (spec §4.3), and Sort itself sits on top of the
// resulting single-instance fragment.
type Sort struct {
	UnaryNode
	id    sql.PlanNodeId
	Order []SortItem
}

func NewSort(id sql.PlanNodeId, order []SortItem, child Node) *Sort {
	return &Sort{UnaryNode: UnaryNode{Child: child}, id: id, Order: order}
}

func (n *Sort) ID() sql.PlanNodeId     { return n.id }
func (n *Sort) Output() sql.SymbolList { return n.Child.Output() }
func (n *Sort) isPlanNode()            {}
func (n *Sort) String() string {
	return fmt.Sprintf("Sort([%s])%s", sortItemsString(n.Order), childStrings(n.Children()))
}

// Output is the root-most operator of a query: the set of columns handed
// back to the client, under their final presentation names. Like Sort, a
// distributed child is first merged to a single node.
type Output struct {
	UnaryNode
	id          sql.PlanNodeId
	ColumnNames []string
}

func NewOutput(id sql.PlanNodeId, columnNames []string, child Node) *Output {
	return &Output{UnaryNode: UnaryNode{Child: child}, id: id, ColumnNames: columnNames}
}

func (n *Output) ID() sql.PlanNodeId     { return n.id }
func (n *Output) Output() sql.SymbolList { return n.Child.Output() }
func (n *Output) isPlanNode()            {}
func (n *Output) String() string {
	return fmt.Sprintf("Output(%v)%s", n.ColumnNames, childStrings(n.Children()))
}
