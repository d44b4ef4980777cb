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

// CommitTarget is the opaque handle identifying which write(s) TableCommit
// finalizes.
type CommitTarget interface {
	Name() string
}

// TableCommit finalizes the writes performed by its child's TableWriter(s).
// It must run on the coordinator unless the whole plan is already
// coordinator-only or single-node (spec §4.3).
type TableCommit struct {
	UnaryNode
	id     sql.PlanNodeId
	Target CommitTarget
	output sql.SymbolList
}

func NewTableCommit(id sql.PlanNodeId, target CommitTarget, output sql.SymbolList, child Node) *TableCommit {
	return &TableCommit{UnaryNode: UnaryNode{Child: child}, id: id, Target: target, output: output}
}

func (n *TableCommit) ID() sql.PlanNodeId     { return n.id }
func (n *TableCommit) Output() sql.SymbolList { return n.output }
func (n *TableCommit) isPlanNode()            {}
func (n *TableCommit) String() string {
	return fmt.Sprintf("TableCommit(%s)%s", n.Target.Name(), childStrings(n.Children()))
}
