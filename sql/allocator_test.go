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

package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestFragmentIdAllocatorCountsAndOrders(t *testing.T) {
	require := require.New(t)

	alloc := sql.NewFragmentIdAllocator()
	require.EqualValues(0, alloc.Count())

	first := alloc.NextId()
	second := alloc.NextId()

	require.Equal(sql.PlanFragmentId(1), first)
	require.Equal(sql.PlanFragmentId(2), second)
	require.EqualValues(2, alloc.Count())
}

func TestFragmentIdAllocatorsAreIndependentPerInstance(t *testing.T) {
	require := require.New(t)

	a := sql.NewFragmentIdAllocator()
	b := sql.NewFragmentIdAllocator()

	a.NextId()
	a.NextId()
	first := b.NextId()

	require.Equal(sql.PlanFragmentId(1), first, "a fresh allocator always starts counting from 1")
}

func TestNodeIdAllocatorNextId(t *testing.T) {
	require := require.New(t)

	alloc := sql.NewNodeIdAllocator()
	require.Equal(sql.PlanNodeId(1), alloc.NextId())
	require.Equal(sql.PlanNodeId(2), alloc.NextId())
}
