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

// Union concatenates the rows of all Sources under one shared output
// schema. SourceOutputs[i] is Sources[i]'s column layout mapped
// positionally onto Output, since two branches may order or name their
// columns differently before alignment (spec §4.3).
type Union struct {
	id            sql.PlanNodeId
	Sources       []Node
	SourceOutputs []sql.SymbolList
	output        sql.SymbolList
}

func NewUnion(id sql.PlanNodeId, sources []Node, sourceOutputs []sql.SymbolList, output sql.SymbolList) *Union {
	return &Union{id: id, Sources: sources, SourceOutputs: sourceOutputs, output: output}
}

func (n *Union) ID() sql.PlanNodeId     { return n.id }
func (n *Union) Output() sql.SymbolList { return n.output }
func (n *Union) Children() []Node       { return n.Sources }
func (n *Union) isPlanNode()            {}
func (n *Union) String() string {
	return fmt.Sprintf("Union(%d sources) => %s%s", len(n.Sources), n.output, childStrings(n.Children()))
}
