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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fixture"
	"github.com/dolthub/go-mysql-server-fragmenter/fragment"
	"github.com/dolthub/go-mysql-server-fragmenter/plan"
	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestBuilderSetRootRejectsUnrelatedOp(t *testing.T) {
	require := require.New(t)

	ids := sql.NewFragmentIdAllocator()
	b := fragment.NewSingleNode(ids)

	cols := fixture.Cols("a")
	scan := plan.NewTableScan(1, fixture.NewTable("t"), cols)
	require.NoError(b.SetRoot(scan))

	unrelated := plan.NewTableScan(2, fixture.NewTable("u"), fixture.Cols("b"))
	filter := plan.NewFilter(3, plan.NewRef(cols[0]), unrelated)
	err := b.SetRoot(filter)
	require.Error(err, "SetRoot must reject an op that doesn't reference the prior root")
}

func TestBuilderBuildIsIdempotent(t *testing.T) {
	require := require.New(t)

	ids := sql.NewFragmentIdAllocator()
	b := fragment.NewSingleNode(ids)
	require.NoError(b.SetRoot(plan.NewValues(1, nil, nil)))

	f1, err := b.Build()
	require.NoError(err)
	f2, err := b.Build()
	require.NoError(err)
	require.True(f1 == f2, "Build must return the same *Fragment on repeated calls")
}

func TestBuilderFixedRequiresExactlyOneChild(t *testing.T) {
	require := require.New(t)

	ids := sql.NewFragmentIdAllocator()
	b := fragment.NewFixed(ids)
	require.NoError(b.SetRoot(plan.NewValues(1, nil, nil)))

	_, err := b.Build()
	require.Error(err, "a FIXED fragment with zero children must fail to build")
}

func TestBuilderBuildRejectsMissingRoot(t *testing.T) {
	require := require.New(t)

	ids := sql.NewFragmentIdAllocator()
	b := fragment.NewSingleNode(ids)

	_, err := b.Build()
	require.Error(err)
}
