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

package fragment

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// Fragment is a sealed, immutable maximal subtree executed together on one
// worker instance (or a set of instances when distributed): spec §3.
type Fragment struct {
	ID sql.PlanFragmentId

	// Root is this fragment's operator tree. A fragment consumed through a
	// parent's Exchange is topped by a plan.Sink (Exchange-Sink pairing, spec
	// invariant 4). The sibling children that the Join and SemiJoin rules
	// (neither side distributed) and the single-node Union rule attach are
	// sealed without a Sink; their operator trees also appear inline under
	// the parent fragment's root.
	Root plan.Node

	Distribution Distribution

	// OutputPartitioning describes how this fragment's Sink distributes
	// rows to the parent's Exchange. Zero-value (None()) for the root
	// fragment, which has no parent to ship to.
	OutputPartitioning OutputPartitioning

	// PartitionedSourceId is the PlanNodeId of this fragment's TableScan,
	// if it has one. Carried through even under single-node mode (spec §9,
	// second open question), uninterpreted by this package.
	PartitionedSourceId *sql.PlanNodeId

	// Children are this fragment's sealed inputs, referenced from Root's
	// Exchange node(s) by PlanFragmentId.
	Children []*Fragment
}

func (f *Fragment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fragment[%d](%s, out=%s)\n", f.ID, f.Distribution, f.OutputPartitioning)
	b.WriteString(indent(f.Root.String()))
	for _, c := range f.Children {
		b.WriteString("\n")
		b.WriteString(indent(c.String()))
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// childByID finds a direct child fragment by id, or nil.
func (f *Fragment) childByID(id sql.PlanFragmentId) *Fragment {
	for _, c := range f.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}
