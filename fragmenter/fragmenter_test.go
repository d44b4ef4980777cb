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

package fragmenter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fixture"
	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/fragmenter"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func newFragmenter(t *testing.T, opts fragmenter.Options) *fragmenter.Fragmenter {
	t.Helper()
	f, err := fragmenter.New(
		sql.NewMapSession(nil),
		fixture.NewCatalog(fixture.FunctionInfo{FuncName: "sum", Decomposable: true, Intermediate: sql.BasicType("double")}),
		sql.NewSymbolAllocator(),
		sql.NewNodeIdAllocator(),
		opts,
		fragmenter.Config{},
	)
	require.NoError(t, err)
	return f
}

func TestFragmentSingleNodePlanIsOneFragment(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	cols := fixture.Cols("a", "b")
	scan := plan.NewTableScan(ids.NextId(), fixture.NewTable("t"), cols)
	filter := plan.NewFilter(ids.NextId(), plan.NewRef(cols[0]), scan)
	output := plan.NewOutput(ids.NextId(), []string{"a", "b"}, filter)

	f := newFragmenter(t, fragmenter.Options{CreateSingleNodePlan: true})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	stats := fragment.ComputeStats(sp)
	require.Equal(1, stats.FragmentCount)
	require.Equal(0, stats.DistributedCount)
	require.Equal(fragment.None, sp.Root.Distribution)
	require.Empty(sp.Root.Children)
}

func TestFragmentDistributedScanMergesAtOutput(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	cols := fixture.Cols("a", "b")
	scan := plan.NewTableScan(ids.NextId(), fixture.NewTable("t"), cols)
	filter := plan.NewFilter(ids.NextId(), plan.NewRef(cols[0]), scan)
	output := plan.NewOutput(ids.NextId(), []string{"a", "b"}, filter)

	f := newFragmenter(t, fragmenter.Options{})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	stats := fragment.ComputeStats(sp)
	require.Equal(2, stats.FragmentCount)
	require.Equal(1, stats.DistributedCount)
	require.Equal(fragment.None, sp.Root.Distribution)
	require.Len(sp.Root.Children, 1)
	require.True(sp.Root.Children[0].Distribution.IsDistributed())
}

func TestFragmentLimitOverDistributedScanDoesNotDoubleMerge(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	cols := fixture.Cols("a")
	scan := plan.NewTableScan(ids.NextId(), fixture.NewTable("t"), cols)
	limit := plan.NewLimit(ids.NextId(), 10, scan)
	output := plan.NewOutput(ids.NextId(), []string{"a"}, limit)

	f := newFragmenter(t, fragmenter.Options{})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	stats := fragment.ComputeStats(sp)
	require.Equal(2, stats.FragmentCount, "Limit's own merge already satisfies Output, no second merge fragment")
	require.Equal(1, stats.DistributedCount)
}

func TestFragmentDecomposableAggregationSplitsPartialFinal(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	cols := fixture.Cols("g", "x")
	g, x := cols[0], cols[1]
	scan := plan.NewTableScan(ids.NextId(), fixture.NewTable("t"), cols)

	sum := fixture.Cols("sum")[0]
	agg := plan.NewAggregation(ids.NextId(), sql.SymbolList{g}, []plan.AggregateCall{
		{Func: "sum", Args: []*sql.Symbol{x}, Output: sum, Step: plan.SINGLE},
	}, scan)
	output := plan.NewOutput(ids.NextId(), []string{"g", "sum"}, agg)

	f := newFragmenter(t, fragmenter.Options{})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	require.Equal(fragment.None, sp.Root.Distribution)
	require.Len(sp.Root.Children, 1)

	final := sp.Root.Children[0]
	require.Equal(fragment.Fixed, final.Distribution)
	require.Len(final.Children, 1)

	finalAgg, ok := final.Root.Children()[0].(*plan.Aggregation)
	require.True(ok, "beneath its Sink, the merge fragment should hold the FINAL half of the split aggregation")
	require.Len(finalAgg.Aggregates, 1)
	require.Equal(plan.FINAL, finalAgg.Aggregates[0].Step)

	partial := final.Children[0]
	require.True(partial.Distribution.IsDistributed())
}

func TestFragmentJoinShipsBuildSideToProbeSide(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	leftCols := fixture.Cols("lk", "lv")
	rightCols := fixture.Cols("rk", "rv")
	left := plan.NewTableScan(ids.NextId(), fixture.NewTable("l"), leftCols)
	right := plan.NewTableScan(ids.NextId(), fixture.NewTable("r"), rightCols)

	join := plan.NewJoin(ids.NextId(), plan.InnerJoin, left, right,
		sql.SymbolList{leftCols[0]}, sql.SymbolList{rightCols[0]}, nil)
	output := plan.NewOutput(ids.NextId(), []string{"lk", "lv", "rk", "rv"}, join)

	f := newFragmenter(t, fragmenter.Options{})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	require.Equal(fragment.None, sp.Root.Distribution)
	require.Len(sp.Root.Children, 1, "the right (build) side ships via one Exchange into the probe fragment")
	require.True(sp.Root.Children[0].Distribution.IsDistributed())
}

func TestFragmentUnionFansIntoSingleExchange(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	aCols := fixture.Cols("a")
	bCols := fixture.Cols("b")
	scanA := plan.NewTableScan(ids.NextId(), fixture.NewTable("a"), aCols)
	scanB := plan.NewTableScan(ids.NextId(), fixture.NewTable("b"), bCols)

	unionOut := fixture.Cols("u")
	union := plan.NewUnion(ids.NextId(), []plan.Node{scanA, scanB},
		[]sql.SymbolList{aCols, bCols}, unionOut)
	output := plan.NewOutput(ids.NextId(), []string{"u"}, union)

	f := newFragmenter(t, fragmenter.Options{})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	require.Equal(fragment.None, sp.Root.Distribution)
	require.Len(sp.Root.Children, 2, "both capped union branches are direct children of the root fragment")
	require.Len(sp.Root.Root.Children()[0].(*plan.Exchange).SourceFragmentIds, 2, "the root's single Exchange is fed by both capped branches")
}

func TestFragmentRejectsUnsupportedJoinType(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	leftCols := fixture.Cols("lk")
	rightCols := fixture.Cols("rk")
	left := plan.NewTableScan(ids.NextId(), fixture.NewTable("l"), leftCols)
	right := plan.NewTableScan(ids.NextId(), fixture.NewTable("r"), rightCols)

	join := plan.NewJoin(ids.NextId(), plan.FullJoin, left, right, leftCols, rightCols, nil)
	output := plan.NewOutput(ids.NextId(), []string{"lk", "rk"}, join)

	f := newFragmenter(t, fragmenter.Options{})
	_, err := f.Fragment(context.Background(), output)
	require.Error(err)
	require.True(sql.ErrUnsupportedJoinType.Is(err))
}

func TestFragmentSingleNodeOptionOverridesDistributedCatalog(t *testing.T) {
	require := require.New(t)

	ids := sql.NewNodeIdAllocator()
	cols := fixture.Cols("g", "x")
	g, x := cols[0], cols[1]
	scan := plan.NewTableScan(ids.NextId(), fixture.NewTable("t"), cols)

	sum := fixture.Cols("sum")[0]
	agg := plan.NewAggregation(ids.NextId(), sql.SymbolList{g}, []plan.AggregateCall{
		{Func: "sum", Args: []*sql.Symbol{x}, Output: sum, Step: plan.SINGLE},
	}, scan)
	output := plan.NewOutput(ids.NextId(), []string{"g", "sum"}, agg)

	f := newFragmenter(t, fragmenter.Options{CreateSingleNodePlan: true})
	sp, err := f.Fragment(context.Background(), output)
	require.NoError(err)

	stats := fragment.ComputeStats(sp)
	require.Equal(1, stats.FragmentCount)
	require.Equal(0, stats.DistributedCount)
}
