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

package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fixture"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
	"github.com/dolthub/go-mysql-server-fragmenter/transform"
)

func TestInspectVisitsChildrenBeforeParent(t *testing.T) {
	require := require.New(t)

	cols := fixture.Cols("a")
	scan := plan.NewTableScan(1, fixture.NewTable("t"), cols)
	filter := plan.NewFilter(2, plan.NewRef(cols[0]), scan)

	var order []sql.PlanNodeId
	err := transform.Inspect(filter, func(n plan.Node) error {
		order = append(order, n.ID())
		return nil
	})
	require.NoError(err)
	require.Equal([]sql.PlanNodeId{1, 2}, order, "the scan must be visited before the filter that wraps it")
}

func TestInspectStopsAndPropagatesFirstError(t *testing.T) {
	require := require.New(t)

	cols := fixture.Cols("a")
	scan := plan.NewTableScan(1, fixture.NewTable("t"), cols)
	filter := plan.NewFilter(2, plan.NewRef(cols[0]), scan)

	boom := errors.New("boom")
	visited := 0
	err := transform.Inspect(filter, func(n plan.Node) error {
		visited++
		if n.ID() == 1 {
			return boom
		}
		return nil
	})
	require.Equal(boom, err)
	require.Equal(1, visited, "the parent's visit must be skipped once a child returns an error")
}
