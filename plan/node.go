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

// Package plan defines the closed set of relational plan operators the
// fragmenter rewrites, plus the two boundary markers (Sink, Exchange) it
// inserts. It plays the role the teacher's own sql/plan package plays for
// go-mysql-server: one Node interface, one struct per operator variant, and
// exhaustive type switches downstream instead of open visitor polymorphism
// (see spec §9's design note on this).
package plan

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// Node is the tagged union of plan operators. The unexported marker method
// seals the set to this package, the same closure-by-construction trick the
// teacher's own sql.Node achieves through its RowIter/Resolved methods: only
// types declared here can appear in a plan tree, so a type switch over Node
// in the fragmenter's dispatch is exhaustive by construction.
type Node interface {
	fmt.Stringer

	// ID is this operator's stable opaque PlanNodeId.
	ID() sql.PlanNodeId

	// Output is this operator's ordered output schema.
	Output() sql.SymbolList

	// Children returns this operator's direct inputs, in rewrite order
	// (first child rewritten before second, spec §5).
	Children() []Node

	isPlanNode()
}

// UnaryNode is embedded by every single-input operator; it supplies
// Children() and leaves Output()/String() to the embedding type. Mirrors
// the teacher's UnaryNode/BinaryNode embedding convention visible across
// sql/plan's operator constructors.
type UnaryNode struct {
	Child Node
}

func (n UnaryNode) Children() []Node {
	if n.Child == nil {
		return nil
	}
	return []Node{n.Child}
}

// BinaryNode is embedded by Join. SemiJoin, the other two-input operator,
// keeps its inputs in its own Source/FilteringSource fields instead.
type BinaryNode struct {
	Left, Right Node
}

func (n BinaryNode) Children() []Node {
	return []Node{n.Left, n.Right}
}

// indent renders child.String() indented two spaces per level, used by
// every operator's multi-line String() implementation.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func childStrings(children []Node) string {
	var b strings.Builder
	for _, c := range children {
		if c == nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(indent(c.String()))
	}
	return b.String()
}
