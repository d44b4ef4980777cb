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

// JoinType enumerates the join kinds the input tree may carry. Only INNER,
// LEFT and RIGHT are supported by the fragmenter's Join rule (spec §4.3);
// any other value is a fatal ErrUnsupportedJoinType.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin // unsupported; exists so callers can construct (and the rule can reject) it
	CrossJoin
)

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "INNER"
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	case FullJoin:
		return "FULL"
	case CrossJoin:
		return "CROSS"
	default:
		return "UNKNOWN"
	}
}

// Join implements INNER/LEFT/RIGHT equi-joins (plus an optional residual
// Filter). LeftJoinSymbols and RightJoinSymbols are the equi-join key
// columns, one-to-one, drawn from Left.Output() and Right.Output()
// respectively.
type Join struct {
	BinaryNode
	id               sql.PlanNodeId
	Type             JoinType
	LeftJoinSymbols  sql.SymbolList
	RightJoinSymbols sql.SymbolList
	Filter           Expr // optional non-equi residual predicate
}

func NewJoin(id sql.PlanNodeId, typ JoinType, left, right Node, leftKeys, rightKeys sql.SymbolList, filter Expr) *Join {
	return &Join{
		BinaryNode:       BinaryNode{Left: left, Right: right},
		id:               id,
		Type:             typ,
		LeftJoinSymbols:  leftKeys,
		RightJoinSymbols: rightKeys,
		Filter:           filter,
	}
}

func (n *Join) ID() sql.PlanNodeId { return n.id }
func (n *Join) Output() sql.SymbolList {
	return append(append(sql.SymbolList{}, n.Left.Output()...), n.Right.Output()...)
}
func (n *Join) isPlanNode() {}
func (n *Join) String() string {
	return fmt.Sprintf("Join(%s, %s=%s)%s", n.Type, n.LeftJoinSymbols, n.RightJoinSymbols, childStrings(n.Children()))
}

// SemiJoin keeps rows from Source that find at least one match in
// FilteringSource, without duplicating rows or adding FilteringSource's
// columns to the output.
type SemiJoin struct {
	id                     sql.PlanNodeId
	Source                 Node
	FilteringSource        Node
	SourceJoinSymbols      sql.SymbolList
	FilteringJoinSymbols   sql.SymbolList
}

func NewSemiJoin(id sql.PlanNodeId, source, filteringSource Node, sourceKeys, filteringKeys sql.SymbolList) *SemiJoin {
	return &SemiJoin{id: id, Source: source, FilteringSource: filteringSource, SourceJoinSymbols: sourceKeys, FilteringJoinSymbols: filteringKeys}
}

func (n *SemiJoin) ID() sql.PlanNodeId     { return n.id }
func (n *SemiJoin) Output() sql.SymbolList { return n.Source.Output() }
func (n *SemiJoin) Children() []Node       { return []Node{n.Source, n.FilteringSource} }
func (n *SemiJoin) isPlanNode()            {}
func (n *SemiJoin) String() string {
	return fmt.Sprintf("SemiJoin(%s=%s)%s", n.SourceJoinSymbols, n.FilteringJoinSymbols, childStrings(n.Children()))
}

// IndexSource is the opaque per-row lookup plan on the index side of an
// IndexJoin; it is never fragmented (spec §4.3 treats it as a black box).
type IndexSource interface {
	Name() string
}

// IndexJoin probes IndexSource once per row of Probe (its only fragmented
// child) via an equi-join on ProbeJoinSymbols.
type IndexJoin struct {
	UnaryNode // Child is the probe side
	id               sql.PlanNodeId
	Index            IndexSource
	ProbeJoinSymbols sql.SymbolList
	output           sql.SymbolList
}

func NewIndexJoin(id sql.PlanNodeId, probe Node, index IndexSource, probeKeys sql.SymbolList, output sql.SymbolList) *IndexJoin {
	return &IndexJoin{UnaryNode: UnaryNode{Child: probe}, id: id, Index: index, ProbeJoinSymbols: probeKeys, output: output}
}

func (n *IndexJoin) ID() sql.PlanNodeId     { return n.id }
func (n *IndexJoin) Output() sql.SymbolList { return n.output }
func (n *IndexJoin) isPlanNode()            {}
func (n *IndexJoin) String() string {
	return fmt.Sprintf("IndexJoin(%s, probeKeys=%s)%s", n.Index.Name(), n.ProbeJoinSymbols, childStrings(n.Children()))
}
