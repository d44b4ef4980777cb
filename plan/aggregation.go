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

// AggStep records which half of a decomposed aggregate a given
// AggregateCall computes (spec §4.3's Aggregation rule).
type AggStep int

const (
	// SINGLE computes the whole aggregate in one step; used when the child
	// is non-distributed, or when any aggregate is non-decomposable.
	SINGLE AggStep = iota
	// PARTIAL computes the per-partition intermediate value.
	PARTIAL
	// FINAL combines PARTIAL intermediates from every partition.
	FINAL
)

func (s AggStep) String() string {
	switch s {
	case PARTIAL:
		return "PARTIAL"
	case FINAL:
		return "FINAL"
	default:
		return "SINGLE"
	}
}

// AggregateCall is one aggregate function invocation inside an Aggregation.
type AggregateCall struct {
	Func string
	// Args are the input symbols for a SINGLE/PARTIAL call, or the single
	// intermediate symbol for a FINAL call (spec §4.3).
	Args []*sql.Symbol
	// Mask, if non-nil, is a boolean symbol gating which rows contribute;
	// carried through on PARTIAL only, dropped on FINAL (spec §4.3).
	Mask *sql.Symbol
	// SampleWeight, if non-nil, weights each row's contribution; consumed
	// by PARTIAL and dropped from FINAL (spec §4.3).
	SampleWeight *sql.Symbol
	Output       *sql.Symbol
	Step         AggStep
}

func (c AggregateCall) symbols() sql.SymbolList {
	out := append(sql.SymbolList{}, c.Args...)
	if c.Mask != nil {
		out = append(out, c.Mask)
	}
	if c.SampleWeight != nil {
		out = append(out, c.SampleWeight)
	}
	return out
}

func (c AggregateCall) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)[%s]=%s", c.Func, strings.Join(args, ", "), c.Step, c.Output)
}

// Aggregation groups by GroupingKeys (empty means a single global group)
// and computes Aggregates over each group.
type Aggregation struct {
	UnaryNode
	id           sql.PlanNodeId
	GroupingKeys sql.SymbolList
	Aggregates   []AggregateCall
}

func NewAggregation(id sql.PlanNodeId, groupingKeys sql.SymbolList, aggregates []AggregateCall, child Node) *Aggregation {
	return &Aggregation{UnaryNode: UnaryNode{Child: child}, id: id, GroupingKeys: groupingKeys, Aggregates: aggregates}
}

func (n *Aggregation) ID() sql.PlanNodeId { return n.id }
func (n *Aggregation) Output() sql.SymbolList {
	out := append(sql.SymbolList{}, n.GroupingKeys...)
	for _, a := range n.Aggregates {
		out = append(out, a.Output)
	}
	return out
}
func (n *Aggregation) isPlanNode() {}
func (n *Aggregation) String() string {
	parts := make([]string, len(n.Aggregates))
	for i, a := range n.Aggregates {
		parts[i] = a.String()
	}
	return fmt.Sprintf("Aggregation(group=%s, [%s])%s", n.GroupingKeys, strings.Join(parts, ", "), childStrings(n.Children()))
}
