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

	"github.com/opentracing/opentracing-go"

	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// rewrite dispatches on node's concrete type to its per-operator rewrite
// rule (spec §4.3). This switch is exhaustive over the closed Node set
// declared in package plan; the default case is the one fallthrough, and it
// is always a fatal ErrUnsupportedOperator (spec §9's design note:
// exhaustiveness checking replaces the "not yet implemented" fallthrough of
// the source's open visitor).
func rewrite(st *rewriteState, node plan.Node) (*fragment.Builder, error) {
	span := st.f.tracer.StartSpan(
		"plan.fragment.rewrite",
		opentracing.ChildOf(st.span.Context()),
		opentracing.Tag{Key: "operator", Value: fmt.Sprintf("%T", node)},
	)
	defer span.Finish()

	st.f.log.Debugf("rewriting %T", node)

	switch n := node.(type) {
	case *plan.TableScan:
		return rewriteTableScan(st, n)
	case *plan.Values:
		return rewriteValues(st, n)
	case *plan.Filter:
		return rewriteFilter(st, n)
	case *plan.Project:
		return rewriteProject(st, n)
	case *plan.Sample:
		return rewriteSample(st, n)
	case *plan.Unnest:
		return rewriteUnnest(st, n)
	case *plan.TableWriter:
		return rewriteTableWriter(st, n)
	case *plan.Limit:
		return rewriteLimit(st, n)
	case *plan.DistinctLimit:
		return rewriteDistinctLimit(st, n)
	case *plan.TopN:
		return rewriteTopN(st, n)
	case *plan.Sort:
		return rewriteSort(st, n)
	case *plan.Output:
		return rewriteOutput(st, n)
	case *plan.RowNumber:
		return rewriteRowNumber(st, n)
	case *plan.TopNRowNumber:
		return rewriteTopNRowNumber(st, n)
	case *plan.Window:
		return rewriteWindow(st, n)
	case *plan.MarkDistinct:
		return rewriteMarkDistinct(st, n)
	case *plan.Aggregation:
		return rewriteAggregation(st, n)
	case *plan.Join:
		return rewriteJoin(st, n)
	case *plan.SemiJoin:
		return rewriteSemiJoin(st, n)
	case *plan.IndexJoin:
		return rewriteIndexJoin(st, n)
	case *plan.Union:
		return rewriteUnion(st, n)
	case *plan.TableCommit:
		return rewriteTableCommit(st, n)
	default:
		return nil, sql.ErrUnsupportedOperator.New(node)
	}
}
