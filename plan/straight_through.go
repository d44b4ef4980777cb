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

// Filter keeps rows matching Predicate. Never inserts a fragment boundary.
type Filter struct {
	UnaryNode
	id        sql.PlanNodeId
	Predicate Expr
}

func NewFilter(id sql.PlanNodeId, predicate Expr, child Node) *Filter {
	return &Filter{UnaryNode: UnaryNode{Child: child}, id: id, Predicate: predicate}
}

func (n *Filter) ID() sql.PlanNodeId     { return n.id }
func (n *Filter) Output() sql.SymbolList { return n.Child.Output() }
func (n *Filter) isPlanNode()            {}
func (n *Filter) String() string {
	return fmt.Sprintf("Filter(%s)%s", n.Predicate, childStrings(n.Children()))
}

// ProjectItem computes one output column from the child's output.
type ProjectItem struct {
	Output *sql.Symbol
	Expr   Expr
}

// Project computes a new, possibly reordered/derived, set of output columns.
type Project struct {
	UnaryNode
	id      sql.PlanNodeId
	Items   []ProjectItem
}

func NewProject(id sql.PlanNodeId, items []ProjectItem, child Node) *Project {
	return &Project{UnaryNode: UnaryNode{Child: child}, id: id, Items: items}
}

func (n *Project) ID() sql.PlanNodeId { return n.id }
func (n *Project) Output() sql.SymbolList {
	out := make(sql.SymbolList, len(n.Items))
	for i, it := range n.Items {
		out[i] = it.Output
	}
	return out
}
func (n *Project) isPlanNode() {}
func (n *Project) String() string {
	return fmt.Sprintf("Project(%s)%s", n.Output(), childStrings(n.Children()))
}

// Sample randomly retains a fraction of rows.
type Sample struct {
	UnaryNode
	id         sql.PlanNodeId
	Percentage float64
}

func NewSample(id sql.PlanNodeId, percentage float64, child Node) *Sample {
	return &Sample{UnaryNode: UnaryNode{Child: child}, id: id, Percentage: percentage}
}

func (n *Sample) ID() sql.PlanNodeId     { return n.id }
func (n *Sample) Output() sql.SymbolList { return n.Child.Output() }
func (n *Sample) isPlanNode()            {}
func (n *Sample) String() string {
	return fmt.Sprintf("Sample(%.4f)%s", n.Percentage, childStrings(n.Children()))
}

// Unnest expands one or more array/map-valued input symbols into new rows.
type Unnest struct {
	UnaryNode
	id            sql.PlanNodeId
	UnnestSymbols sql.SymbolList
	output        sql.SymbolList
}

func NewUnnest(id sql.PlanNodeId, unnestSymbols, output sql.SymbolList, child Node) *Unnest {
	return &Unnest{UnaryNode: UnaryNode{Child: child}, id: id, UnnestSymbols: unnestSymbols, output: output}
}

func (n *Unnest) ID() sql.PlanNodeId     { return n.id }
func (n *Unnest) Output() sql.SymbolList { return append(n.Child.Output(), n.output...) }

// Added returns just the new symbols this Unnest introduces, i.e. Output()
// without the passed-through child columns.
func (n *Unnest) Added() sql.SymbolList { return n.output }
func (n *Unnest) isPlanNode()           {}
func (n *Unnest) String() string {
	return fmt.Sprintf("Unnest(%s)%s", n.UnnestSymbols, childStrings(n.Children()))
}

// TableWriter writes the child's rows to Target. Always straight-through;
// distributed resource placement of the write is out of scope (spec §1).
type TableWriter struct {
	UnaryNode
	id     sql.PlanNodeId
	Target Table
	output sql.SymbolList
}

func NewTableWriter(id sql.PlanNodeId, target Table, output sql.SymbolList, child Node) *TableWriter {
	return &TableWriter{UnaryNode: UnaryNode{Child: child}, id: id, Target: target, output: output}
}

func (n *TableWriter) ID() sql.PlanNodeId     { return n.id }
func (n *TableWriter) Output() sql.SymbolList { return n.output }
func (n *TableWriter) isPlanNode()            {}
func (n *TableWriter) String() string {
	return fmt.Sprintf("TableWriter(%s)%s", n.Target.Name(), childStrings(n.Children()))
}
