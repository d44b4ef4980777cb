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

package fragment_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fixture"
	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestFragmentStringIncludesDistributionAndChildren(t *testing.T) {
	require := require.New(t)

	ids := sql.NewFragmentIdAllocator()
	cols := fixture.Cols("a")

	child := fragment.NewSource(ids, 1)
	require.NoError(child.SetRoot(plan.NewTableScan(1, fixture.NewTable("t"), cols)))
	childFrag, err := child.Build()
	require.NoError(err)

	root := fragment.NewSingleNode(ids)
	ex := plan.NewExchange(2, []sql.PlanFragmentId{childFrag.ID}, cols)
	require.NoError(root.SetRoot(ex))
	root.AddChild(childFrag)
	rootFrag, err := root.Build()
	require.NoError(err)

	s := rootFrag.String()
	require.True(strings.Contains(s, "NONE"))
	require.True(strings.Contains(s, "SOURCE"))
}

func TestComputeStatsCountsDistributedFragmentsOnce(t *testing.T) {
	require := require.New(t)

	ids := sql.NewFragmentIdAllocator()
	cols := fixture.Cols("a")

	child := fragment.NewSource(ids, 1)
	require.NoError(child.SetRoot(plan.NewTableScan(1, fixture.NewTable("t"), cols)))
	childFrag, err := child.Build()
	require.NoError(err)

	root := fragment.NewSingleNode(ids)
	ex := plan.NewExchange(2, []sql.PlanFragmentId{childFrag.ID}, cols)
	require.NoError(root.SetRoot(ex))
	root.AddChild(childFrag)
	rootFrag, err := root.Build()
	require.NoError(err)

	stats := fragment.ComputeStats(fragment.NewSubPlan(rootFrag))
	want := fragment.Stats{FragmentCount: 2, DistributedCount: 1, MaxDepth: 1}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("ComputeStats mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatsEmptySubPlan(t *testing.T) {
	require.New(t).Equal(fragment.Stats{}, fragment.ComputeStats(nil))
}
