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

// MarkDistinct adds a boolean Marker column that is true the first time a
// given value of DistinctSymbols is seen. Whether this forces a re-hash
// boundary depends on whether the child is already co-located by exactly
// DistinctSymbols (spec §4.3, and the open question in spec §9).
type MarkDistinct struct {
	UnaryNode
	id              sql.PlanNodeId
	DistinctSymbols sql.SymbolList
	Marker          *sql.Symbol
}

func NewMarkDistinct(id sql.PlanNodeId, distinctSymbols sql.SymbolList, marker *sql.Symbol, child Node) *MarkDistinct {
	return &MarkDistinct{UnaryNode: UnaryNode{Child: child}, id: id, DistinctSymbols: distinctSymbols, Marker: marker}
}

func (n *MarkDistinct) ID() sql.PlanNodeId { return n.id }
func (n *MarkDistinct) Output() sql.SymbolList {
	return append(append(sql.SymbolList{}, n.Child.Output()...), n.Marker)
}
func (n *MarkDistinct) isPlanNode() {}
func (n *MarkDistinct) String() string {
	return fmt.Sprintf("MarkDistinct(%s)%s", n.DistinctSymbols, childStrings(n.Children()))
}
