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

// SubPlan is the fragmenter's final output: the root Fragment plus its
// transitive children, viewed as the fragment DAG rooted at it (spec §3).
type SubPlan struct {
	Root *Fragment
}

func NewSubPlan(root *Fragment) *SubPlan {
	return &SubPlan{Root: root}
}

func (s *SubPlan) String() string {
	if s == nil || s.Root == nil {
		return "<empty SubPlan>"
	}
	return s.Root.String()
}

// Stats summarizes a finished SubPlan for logging and tests (SPEC_FULL.md
// supplemental feature, grounded on the teacher's read-only sql/stats
// package convention).
type Stats struct {
	FragmentCount     int
	MaxDepth          int
	DistributedCount  int
}

// ComputeStats walks the fragment DAG once, counting distinct fragments by
// id so a fragment referenced from more than one Exchange (not possible
// today since children are tree-shaped per parent, but defensive against
// future DAG-sharing) is not double-counted.
func ComputeStats(sp *SubPlan) Stats {
	if sp == nil || sp.Root == nil {
		return Stats{}
	}
	seen := map[PlanFragmentKey]bool{}
	var stats Stats
	var walk func(f *Fragment, depth int)
	walk = func(f *Fragment, depth int) {
		key := PlanFragmentKey(f.ID)
		if seen[key] {
			return
		}
		seen[key] = true
		stats.FragmentCount++
		if f.Distribution.IsDistributed() {
			stats.DistributedCount++
		}
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		for _, c := range f.Children {
			walk(c, depth+1)
		}
	}
	walk(sp.Root, 0)
	return stats
}

// PlanFragmentKey is a map-friendly alias for sql.PlanFragmentId used only
// for dedup bookkeeping inside this package.
type PlanFragmentKey int64
