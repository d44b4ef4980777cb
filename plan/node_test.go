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

package plan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fixture"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestFilterOutputPassesThroughChild(t *testing.T) {
	require := require.New(t)

	cols := fixture.Cols("a", "b")
	scan := plan.NewTableScan(1, fixture.NewTable("t"), cols)
	filter := plan.NewFilter(2, plan.NewRef(cols[0]), scan)

	require.Equal(cols, filter.Output())
	require.Equal([]plan.Node{scan}, filter.Children())
}

func TestUnnestAddedExcludesPassthroughColumns(t *testing.T) {
	require := require.New(t)

	cols := fixture.Cols("a")
	added := fixture.Cols("elem")
	scan := plan.NewTableScan(1, fixture.NewTable("t"), cols)
	unnest := plan.NewUnnest(2, cols, added, scan)

	require.Equal(added, unnest.Added())
	require.Equal(append(append(sql.SymbolList{}, cols...), added...), unnest.Output())
}

func TestStringRendersNestedChildrenIndented(t *testing.T) {
	require := require.New(t)

	cols := fixture.Cols("a")
	scan := plan.NewTableScan(1, fixture.NewTable("t"), cols)
	filter := plan.NewFilter(2, plan.NewRef(cols[0]), scan)
	output := plan.NewOutput(3, []string{"a"}, filter)

	s := output.String()
	require.True(strings.Contains(s, "Filter"))
	require.True(strings.Contains(s, "TableScan") || strings.Contains(s, scan.String()))
}
