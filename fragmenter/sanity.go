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

package fragmenter

import (
	"fmt"

	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
	"github.com/dolthub/go-mysql-server-fragmenter/transform"
)

// checkSanity verifies the finished fragment DAG: every Exchange resolves to
// an actual child fragment and carries that child's exact output symbols,
// every child of a FIXED fragment ships a non-empty HASH OutputPartitioning,
// and the DAG contains no cycles. Symbol flow between operators inside one
// fragment is not checked. A failure here always indicates a bug in a
// rewrite rule, never a malformed input plan (see sql.ErrSanityCheck).
func checkSanity(sp *fragment.SubPlan) error {
	if sp == nil || sp.Root == nil {
		return sql.ErrSanityCheck.New("subplan has no root fragment")
	}
	return checkFragment(sp.Root, map[sql.PlanFragmentId]bool{})
}

func checkFragment(f *fragment.Fragment, ancestors map[sql.PlanFragmentId]bool) error {
	if ancestors[f.ID] {
		return sql.ErrSanityCheck.New(fmt.Sprintf("fragment %d participates in a cycle", f.ID))
	}

	byID := make(map[sql.PlanFragmentId]*fragment.Fragment, len(f.Children))
	for _, c := range f.Children {
		byID[c.ID] = c
		if f.Distribution == fragment.Fixed &&
			(c.OutputPartitioning.Kind != fragment.HashPartitioning || len(c.OutputPartitioning.By) == 0) {
			return sql.ErrSanityCheck.New(fmt.Sprintf(
				"FIXED fragment %d consumes fragment %d, which is not HASH-partitioned", f.ID, c.ID))
		}
	}

	err := transform.Inspect(f.Root, func(node plan.Node) error {
		ex, ok := node.(*plan.Exchange)
		if !ok {
			return nil
		}
		if len(ex.SourceFragmentIds) == 0 {
			return sql.ErrSanityCheck.New(fmt.Sprintf("Exchange in fragment %d has no source fragments", f.ID))
		}
		var expected sql.SymbolList
		for _, id := range ex.SourceFragmentIds {
			child, ok := byID[id]
			if !ok {
				return sql.ErrSanityCheck.New(fmt.Sprintf(
					"Exchange in fragment %d references fragment %d, which is not its child", f.ID, id))
			}
			expected = append(expected, child.Root.Output()...)
		}
		if !sameSymbols(expected, ex.Output()) {
			return sql.ErrSanityCheck.New(fmt.Sprintf(
				"Exchange output in fragment %d does not match its source fragments' output", f.ID))
		}
		return nil
	})
	if err != nil {
		return err
	}

	descendants := make(map[sql.PlanFragmentId]bool, len(ancestors)+1)
	for id := range ancestors {
		descendants[id] = true
	}
	descendants[f.ID] = true

	for _, c := range f.Children {
		if err := checkFragment(c, descendants); err != nil {
			return err
		}
	}
	return nil
}

func sameSymbols(a, b sql.SymbolList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
