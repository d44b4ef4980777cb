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
	"strings"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// Sink is the fragmenter-inserted marker operator terminating a fragment:
// it hands the fragment's rows to cross-fragment transport. A Sink is
// always the root of the fragment it caps (spec §3, §4.2 "Cap-with-Sink").
type Sink struct {
	UnaryNode
	id sql.PlanNodeId
}

func NewSink(id sql.PlanNodeId, child Node) *Sink {
	return &Sink{UnaryNode: UnaryNode{Child: child}, id: id}
}

func (n *Sink) ID() sql.PlanNodeId     { return n.id }
func (n *Sink) Output() sql.SymbolList { return n.Child.Output() }
func (n *Sink) isPlanNode()            {}
func (n *Sink) String() string {
	return fmt.Sprintf("Sink%s", childStrings(n.Children()))
}

// Exchange is the fragmenter-inserted marker operator sourcing a fragment:
// it consumes rows shipped from one or more already-sealed child fragments
// (spec §3, §4.2 "Start-new-over-Exchange"). A Union point is the one case
// where SourceFragmentIds has more than one entry.
type Exchange struct {
	id                sql.PlanNodeId
	SourceFragmentIds []sql.PlanFragmentId
	output            sql.SymbolList
}

func NewExchange(id sql.PlanNodeId, sourceFragmentIds []sql.PlanFragmentId, output sql.SymbolList) *Exchange {
	return &Exchange{id: id, SourceFragmentIds: sourceFragmentIds, output: output}
}

func (n *Exchange) ID() sql.PlanNodeId     { return n.id }
func (n *Exchange) Output() sql.SymbolList { return n.output }
func (n *Exchange) Children() []Node       { return nil }
func (n *Exchange) isPlanNode()            {}
func (n *Exchange) String() string {
	ids := make([]string, len(n.SourceFragmentIds))
	for i, id := range n.SourceFragmentIds {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("Exchange([%s]) => %s", strings.Join(ids, ", "), n.output)
}
