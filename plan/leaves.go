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

// Table is the opaque handle a TableScan reads from. Physical storage and
// split placement are out of scope (spec §1); the fragmenter only needs a
// stable name for diagnostics. The source rule remembers the scan's own
// PlanNodeId, not anything from the Table, as the PartitionedSourceId.
type Table interface {
	Name() string
}

// TableScan reads a (possibly partitioned) base table.
type TableScan struct {
	id     sql.PlanNodeId
	Table  Table
	output sql.SymbolList
}

func NewTableScan(id sql.PlanNodeId, table Table, output sql.SymbolList) *TableScan {
	return &TableScan{id: id, Table: table, output: output}
}

func (n *TableScan) ID() sql.PlanNodeId   { return n.id }
func (n *TableScan) Output() sql.SymbolList { return n.output }
func (n *TableScan) Children() []Node      { return nil }
func (n *TableScan) isPlanNode()           {}
func (n *TableScan) String() string {
	return fmt.Sprintf("TableScan(%s) => %s", n.Table.Name(), n.output)
}

// Values is a leaf operator producing a fixed, literal set of rows, always
// single-node (spec §4.3).
type Values struct {
	id     sql.PlanNodeId
	Rows   [][]Expr
	output sql.SymbolList
}

func NewValues(id sql.PlanNodeId, rows [][]Expr, output sql.SymbolList) *Values {
	return &Values{id: id, Rows: rows, output: output}
}

func (n *Values) ID() sql.PlanNodeId     { return n.id }
func (n *Values) Output() sql.SymbolList { return n.output }
func (n *Values) Children() []Node       { return nil }
func (n *Values) isPlanNode()            {}
func (n *Values) String() string {
	return fmt.Sprintf("Values(%d rows) => %s", len(n.Rows), n.output)
}
